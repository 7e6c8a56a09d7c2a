//go:build !amd64

package cordic

func init() {
	fastBitOps = false
}
