package main

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thesyncim/libq"
)

func newInspectCmd() *cobra.Command {
	var unsigned bool
	var overflow string
	var underflow string
	var scaleExp int

	cmd := &cobra.Command{
		Use:   "inspect <n> <f>",
		Short: "Print a Q(n, f) format's descriptor and limits report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid n: %w", err)
			}
			f, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid f: %w", err)
			}

			op, err := parsePolicy(overflow)
			if err != nil {
				return fmt.Errorf("--overflow: %w", err)
			}
			up, err := parsePolicy(underflow)
			if err != nil {
				return fmt.Errorf("--underflow: %w", err)
			}

			d := libq.Descriptor{
				IntBits:   n,
				FracBits:  f,
				ScaleExp:  scaleExp,
				Signed:    !unsigned,
				Overflow:  op,
				Underflow: up,
			}
			printDescriptorReport(cmd, d)
			return nil
		},
	}

	cmd.Flags().BoolVar(&unsigned, "unsigned", false, "format is unsigned")
	cmd.Flags().StringVar(&overflow, "overflow", "saturate", "overflow policy: ignore, saturate, raise")
	cmd.Flags().StringVar(&underflow, "underflow", "saturate", "underflow policy: ignore, saturate, raise")
	cmd.Flags().IntVar(&scaleExp, "e", 0, "external scaling exponent")

	return cmd
}

func parsePolicy(s string) (libq.Policy, error) {
	switch s {
	case "ignore":
		return libq.PolicyIgnore, nil
	case "saturate":
		return libq.PolicySaturate, nil
	case "raise":
		return libq.PolicyRaise, nil
	default:
		return 0, fmt.Errorf("unknown policy %q (want ignore, saturate, or raise)", s)
	}
}

func printDescriptorReport(cmd *cobra.Command, d libq.Descriptor) {
	out := cmd.OutOrStdout()
	sign := "signed"
	if !d.Signed {
		sign = "unsigned"
	}
	fmt.Fprintf(out, "Q(%d, %d), e=%d, %s, overflow=%s, underflow=%s\n",
		d.IntBits, d.FracBits, d.ScaleExp, sign, d.Overflow, d.Underflow)
	fmt.Fprintf(out, "  scale            2^%-3d = %s\n", d.FracBits, humanize.Comma(int64(d.Scale())))
	fmt.Fprintf(out, "  scaling factor   2^%-3d = %v\n", -d.ScaleExp, d.ScalingFactor())
	fmt.Fprintf(out, "  precision        %v\n", d.Precision())
	lo, hi := d.Bounds()
	fmt.Fprintf(out, "  stored bounds    [%s, %s]\n", humanize.Comma(lo), humanize.Comma(hi))
	fmt.Fprintf(out, "  real bounds      [%v, %v]\n", d.ToReal(lo), d.ToReal(hi))
	fmt.Fprintf(out, "  dynamic range    %.2f dB\n", d.DynamicRangeDB())
}
