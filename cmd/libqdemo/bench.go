package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"github.com/thesyncim/libq/internal/cordic"
)

func newBenchCmd() *cobra.Command {
	var widths []int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Sweep the CORDIC engine across fractional widths, reporting max absolute error",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, f := range widths {
				fmt.Fprintf(out, "f=%d\n", f)
				for _, row := range benchRows(f) {
					fmt.Fprintf(out, "  %-6s max|err|=%.3e\n", row.name, row.maxAbsErr)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&widths, "widths", []int{8, 16, 24, 32, 40}, "fractional widths to sweep")
	return cmd
}

type benchRow struct {
	name      string
	maxAbsErr float64
}

func benchRows(f int) []benchRow {
	scale := math.Ldexp(1, f)
	toFixed := func(x float64) int64 { return int64(math.Round(x * scale)) }
	toFloat := func(v int64) float64 { return float64(v) / scale }

	sweep := func(lo, hi float64, n int, eval func(x float64) (got, want float64)) float64 {
		maxErr := 0.0
		for i := 0; i < n; i++ {
			x := lo + (hi-lo)*float64(i)/float64(n-1)
			got, want := eval(x)
			if e := math.Abs(got - want); e > maxErr {
				maxErr = e
			}
		}
		return maxErr
	}

	return []benchRow{
		{"sin", sweep(-3, 3, 64, func(x float64) (float64, float64) {
			sin, _ := cordic.SinCos(toFixed(x), f)
			return toFloat(sin), math.Sin(x)
		})},
		{"cos", sweep(-3, 3, 64, func(x float64) (float64, float64) {
			_, cos := cordic.SinCos(toFixed(x), f)
			return toFloat(cos), math.Cos(x)
		})},
		{"atan", sweep(-10, 10, 64, func(x float64) (float64, float64) {
			return toFloat(cordic.Atan(toFixed(x), f)), math.Atan(x)
		})},
		{"exp", sweep(-2, 2, 64, func(x float64) (float64, float64) {
			return toFloat(cordic.Exp(toFixed(x), f)), math.Exp(x)
		})},
		{"ln", sweep(0.1, 10, 64, func(x float64) (float64, float64) {
			return toFloat(cordic.Ln(toFixed(x), f)), math.Log(x)
		})},
		{"sqrt", sweep(0.01, 100, 64, func(x float64) (float64, float64) {
			return toFloat(cordic.Sqrt(toFixed(x), f)), math.Sqrt(x)
		})},
	}
}
