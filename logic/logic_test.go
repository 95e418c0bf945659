// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package logic_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/born-ml/neurosym/logic"
	"github.com/born-ml/neurosym/tensor"
)

func TestApplyArity(t *testing.T) {
	a, err := tensor.Vector(1, 0)
	if err != nil {
		t.Fatalf("Vector failed: %v", err)
	}

	if _, err := logic.Apply(logic.And, a); !errors.Is(err, logic.ErrArity) {
		t.Errorf("And(single) error = %v, want ErrArity", err)
	}
	if _, err := logic.Apply(logic.Or); !errors.Is(err, logic.ErrEmptyInput) {
		t.Errorf("Or() error = %v, want ErrEmptyInput", err)
	}
}

func ExampleApply() {
	a, _ := tensor.Vector(1, 1, 0, 0)
	b, _ := tensor.Vector(1, 0, 1, 0)

	for _, rule := range []logic.Rule{logic.And, logic.Or, logic.Implies} {
		out, _ := logic.Apply(rule, a, b)
		fmt.Println(rule, out.Values())
	}
	not, _ := logic.Apply(logic.Not, a)
	fmt.Println(logic.Not, not.Values())
	// Output:
	// AND [1 0 0 0]
	// OR [1 1 1 0]
	// IMPLIES [1 0 1 1]
	// NOT [0 0 1 1]
}
