package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thesyncim/libq"
)

func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <format> <a> <op> <b>",
		Short: "Evaluate a op b in one of libq's named formats",
		Long: "Supported formats: q10_20, q11_20r, q5_10r, q8_24, uq4_28r, q3_28.\n" +
			"Supported operators: + - * /",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid a: %w", err)
			}
			b, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("invalid b: %w", err)
			}
			op := args[2]

			result, err := evalNamed(args[0], a, op, b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
	return cmd
}

// evalNamed dispatches to the generic arithmetic core for one of libq's
// hand-instantiated named formats (formats.go) — Go's generics are
// resolved at compile time, so a runtime format name needs exactly this
// kind of small dispatch table rather than reflection.
func evalNamed(format string, a float64, op string, b float64) (string, error) {
	switch format {
	case "q10_20":
		return evalFormat[libq.Q10_20](a, op, b)
	case "q11_20r":
		return evalFormat[libq.Q11_20Raise](a, op, b)
	case "q5_10r":
		return evalFormat[libq.Q5_10Raise](a, op, b)
	case "q8_24":
		return evalFormat[libq.Q8_24](a, op, b)
	case "uq4_28r":
		return evalFormat[libq.UQ4_28Raise](a, op, b)
	case "q3_28":
		return evalFormat[libq.Q3_28](a, op, b)
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

func evalFormat[F libq.Format](a float64, op string, b float64) (string, error) {
	av, err := libq.New[F](a)
	if err != nil {
		return "", fmt.Errorf("constructing a: %w", err)
	}
	bv, err := libq.New[F](b)
	if err != nil {
		return "", fmt.Errorf("constructing b: %w", err)
	}

	var result libq.Number[F]
	switch op {
	case "+":
		result, err = libq.Add[F, F, F](av, bv)
	case "-":
		result, err = libq.Sub[F, F, F](av, bv)
	case "*":
		result, err = libq.Mul[F, F, F](av, bv)
	case "/":
		result, err = libq.Div[F, F, F](av, bv)
	default:
		return "", fmt.Errorf("unknown operator %q (want + - * /)", op)
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v (stored=%d)", result.Float(), result.Value()), nil
}
