// Command libqdemo exercises the libq fixed-point library end to end:
// inspecting a format's static properties, evaluating a two-operand
// expression in one of the library's named formats, and sweeping the
// CORDIC engine across fractional widths to report worst-case error.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "libqdemo",
		Short: "Inspect and exercise libq fixed-point formats",
	}

	rootCmd.AddCommand(newInspectCmd(), newEvalCmd(), newBenchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
