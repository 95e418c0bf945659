// Package logic implements element-wise fuzzy logic over tensors.
//
// Truth values are continuous, conventionally in [0, 1], and are never
// clamped. Conjunction is min, disjunction is max, negation is 1 - x and
// implication is max(1 - a, b).
package logic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/born-ml/neurosym/internal/tensor"
)

// Logic errors.
var (
	ErrEmptyInput  = tensor.ErrEmptyInput
	ErrArity       = errors.New("wrong number of operands")
	ErrUnknownRule = errors.New("unknown logic rule")
)

// Rule identifies a fuzzy logic connective.
type Rule int

// Supported rules.
const (
	And Rule = iota
	Or
	Not
	Implies
)

// Rules lists every supported rule in declaration order.
var Rules = []Rule{And, Or, Not, Implies}

// String returns the canonical upper-case rule name.
func (r Rule) String() string {
	switch r {
	case And:
		return "AND"
	case Or:
		return "OR"
	case Not:
		return "NOT"
	case Implies:
		return "IMPLIES"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// ParseRule maps a case-insensitive rule name to a Rule.
func ParseRule(name string) (Rule, error) {
	for _, r := range Rules {
		if strings.EqualFold(name, r.String()) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRule, name)
}
