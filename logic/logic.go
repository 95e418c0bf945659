// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package logic applies fuzzy logic rules element-wise to tensors.
//
// Example:
//
//	a, _ := tensor.Vector(0.8, 0.5, 0.3)
//	b, _ := tensor.Vector(0.6, 0.9, 0.4)
//	c, _ := logic.Apply(logic.And, a, b) // [0.6 0.5 0.3]
package logic

import (
	"github.com/born-ml/neurosym/internal/logic"
	"github.com/born-ml/neurosym/tensor"
)

// Rule identifies a fuzzy logic connective.
type Rule = logic.Rule

// Supported rules.
const (
	And     Rule = logic.And     // min over two or more inputs
	Or      Rule = logic.Or      // max over two or more inputs
	Not     Rule = logic.Not     // 1 - x on the first input
	Implies Rule = logic.Implies // max(1 - a, b) on exactly two inputs
)

// Errors returned by Apply and ParseRule.
var (
	ErrEmptyInput  = logic.ErrEmptyInput
	ErrArity       = logic.ErrArity
	ErrUnknownRule = logic.ErrUnknownRule
)

// Apply evaluates rule element-wise over inputs.
func Apply(rule Rule, inputs ...*tensor.Tensor) (*tensor.Tensor, error) {
	return logic.Apply(rule, inputs...)
}

// ParseRule maps a case-insensitive rule name ("and", "OR", ...) to a Rule.
func ParseRule(name string) (Rule, error) {
	return logic.ParseRule(name)
}
