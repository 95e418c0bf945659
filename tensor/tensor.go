// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/neurosym/internal/tensor"
)

// Tensor is a dense float64 tensor of rank 1 or 2.
type Tensor = tensor.Tensor

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} is a matrix with 2 rows and 3 columns.
type Shape = tensor.Shape

// MaxRank is the highest supported rank.
const MaxRank = tensor.MaxRank

// Errors returned by tensor operations.
var (
	ErrInvalidShape      = tensor.ErrInvalidShape
	ErrIncompatibleTypes = tensor.ErrIncompatibleTypes
	ErrIncompatibleShape = tensor.ErrIncompatibleShape
	ErrUnsupportedRank   = tensor.ErrUnsupportedRank
	ErrValueMismatch     = tensor.ErrValueMismatch
	ErrEmptyInput        = tensor.ErrEmptyInput
)

// Creation functions

// Create builds a tensor with the given shape, zero-filled when values is nil.
//
// Example:
//
//	m, err := tensor.Create(tensor.Shape{2, 2}, [][]float64{{1, 0}, {0, 1}})
func Create(shape Shape, values any) (*Tensor, error) {
	return tensor.Create(shape, values)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) (*Tensor, error) {
	return tensor.Zeros(shape)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) (*Tensor, error) {
	return tensor.Full(shape, value)
}

// FromSlice creates a tensor from a flat row-major slice.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Vector creates a rank-1 tensor.
func Vector(values ...float64) (*Tensor, error) {
	return tensor.Vector(values...)
}

// Matrix creates a rank-2 tensor from equal-length rows.
func Matrix(rows [][]float64) (*Tensor, error) {
	return tensor.Matrix(rows)
}

// Identity creates an n×n identity matrix.
func Identity(n int) (*Tensor, error) {
	return tensor.Identity(n)
}

// Operations

// Multiply performs matrix multiplication: (M, K) @ (K, N) -> (M, N).
func Multiply(a, b *Tensor) (*Tensor, error) {
	return tensor.Multiply(a, b)
}

// Apply combines same-shaped tensors element-wise with op.
func Apply(inputs []*Tensor, op func(values []float64) float64) (*Tensor, error) {
	return tensor.Apply(inputs, op)
}

// Transpose swaps rows and columns of a matrix.
func Transpose(t *Tensor) (*Tensor, error) {
	return tensor.Transpose(t)
}
