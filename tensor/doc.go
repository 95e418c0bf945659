// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense tensors for the neurosym toolkit.
//
// # Overview
//
// A Tensor holds float64 values in row-major order and has rank 1 (vector)
// or rank 2 (matrix). The package provides:
//   - Construction from nested Go slices, with zero-fill when no values are given
//   - Rank-2 matrix multiplication
//   - Element-wise combination of same-shaped tensors
//
// # Basic Usage
//
//	import "github.com/born-ml/neurosym/tensor"
//
//	func main() {
//	    a, _ := tensor.Create(tensor.Shape{2, 3}, [][]float64{{1, 2, 3}, {4, 5, 6}})
//	    b, _ := tensor.Create(tensor.Shape{3, 2}, [][]float64{{7, 8}, {9, 10}, {11, 12}})
//	    c, _ := tensor.Multiply(a, b) // [[58 64] [139 154]]
//	}
//
// # Size
//
// Size reports the sum of the dimensions, not the element count:
// a 2×3 tensor has Size 5 and NumElements 6.
//
// # Errors
//
// Operations return errors wrapping ErrInvalidShape, ErrIncompatibleTypes,
// ErrIncompatibleShape, ErrUnsupportedRank, ErrValueMismatch or ErrEmptyInput.
// Test for them with errors.Is.
package tensor
