package logic

import (
	"fmt"

	"github.com/born-ml/neurosym/internal/tensor"
)

// Apply evaluates rule element-wise over inputs.
//
// AND and OR take two or more operands, IMPLIES takes exactly two, and NOT
// negates the first operand and ignores the rest. The result has the first
// input's shape.
//
// Example:
//
//	a, _ := tensor.Vector(0.8, 0.5, 0.3)
//	b, _ := tensor.Vector(0.6, 0.9, 0.4)
//	c, _ := logic.Apply(logic.And, a, b) // [0.6 0.5 0.3]
func Apply(rule Rule, inputs ...*tensor.Tensor) (*tensor.Tensor, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%s: %w", rule, ErrEmptyInput)
	}

	switch rule {
	case And:
		if err := atLeast(rule, inputs, 2); err != nil {
			return nil, err
		}
		return tensor.Apply(inputs, minOf)
	case Or:
		if err := atLeast(rule, inputs, 2); err != nil {
			return nil, err
		}
		return tensor.Apply(inputs, maxOf)
	case Not:
		return tensor.Apply(inputs[:1], complement)
	case Implies:
		if len(inputs) != 2 {
			return nil, fmt.Errorf("%s: %w: need exactly 2 operands, got %d", rule, ErrArity, len(inputs))
		}
		return tensor.Apply(inputs, implication)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownRule, rule)
	}
}

func atLeast(rule Rule, inputs []*tensor.Tensor, n int) error {
	if len(inputs) < n {
		return fmt.Errorf("%s: %w: need at least %d operands, got %d", rule, ErrArity, n, len(inputs))
	}
	return nil
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func complement(values []float64) float64 {
	return 1 - values[0]
}

// implication is material implication: max(1 - a, b).
func implication(values []float64) float64 {
	return max(1-values[0], values[1])
}
