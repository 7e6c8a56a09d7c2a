//go:build amd64

package cordic

import "golang.org/x/sys/cpu"

func init() {
	fastBitOps = cpu.X86.HasAVX2
}
