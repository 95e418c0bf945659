package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/neurosym/internal/logic"
	"github.com/born-ml/neurosym/internal/tensor"
)

func logicCmd() *cobra.Command {
	var inputs []string

	cmd := &cobra.Command{
		Use:   "logic RULE",
		Short: "Apply a fuzzy logic rule (and, or, not, implies)",
		Long: `Applies a fuzzy logic rule element-wise. Each --input is a vector
("0.8,0.5") or a matrix with rows separated by ';' ("1,0;0,1").`,
		Example: `  neurosym logic and --input 0.8,0.5,0.3 --input 0.6,0.9,0.4
  neurosym logic implies --input 1,1,0,0 --input 1,0,1,0`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"and", "or", "not", "implies"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := logic.ParseRule(args[0])
			if err != nil {
				return err
			}

			operands := make([]*tensor.Tensor, 0, len(inputs))
			for i, in := range inputs {
				t, err := parseTensor(in)
				if err != nil {
					return fmt.Errorf("input %d: %w", i, err)
				}
				operands = append(operands, t)
			}

			out, err := logic.Apply(rule, operands...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Values())
			return nil
		},
	}
	// StringArray keeps commas inside a single operand.
	cmd.Flags().StringArrayVarP(&inputs, "input", "i", nil, "Operand tensor (repeatable)")

	return cmd
}

func matmulCmd() *cobra.Command {
	var a, b string

	cmd := &cobra.Command{
		Use:     "matmul",
		Short:   "Multiply two matrices",
		Example: `  neurosym matmul --a "1,2,3;4,5,6" --b "7,8;9,10;11,12"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := parseTensor(a)
			if err != nil {
				return fmt.Errorf("--a: %w", err)
			}
			right, err := parseTensor(b)
			if err != nil {
				return fmt.Errorf("--b: %w", err)
			}

			out, err := tensor.Multiply(left, right)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Values())
			return nil
		},
	}
	cmd.Flags().StringVar(&a, "a", "", "Left matrix, rows separated by ';'")
	cmd.Flags().StringVar(&b, "b", "", "Right matrix, rows separated by ';'")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")

	return cmd
}

// parseTensor reads "1,2,3" as a vector and "1,2;3,4" as a matrix.
// A value containing ';' is always a matrix, so "1,2;" is a 1×2 matrix.
func parseTensor(s string) (*tensor.Tensor, error) {
	if !strings.Contains(s, ";") {
		row, err := parseRow(s)
		if err != nil {
			return nil, err
		}
		return tensor.Vector(row...)
	}

	var rows [][]float64
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		row, err := parseRow(part)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return tensor.Matrix(rows)
}

func parseRow(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	row := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", f, err)
		}
		row = append(row, v)
	}
	return row, nil
}
