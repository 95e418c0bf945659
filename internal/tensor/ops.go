package tensor

import "fmt"

// Multiply performs matrix multiplication: (M, K) @ (K, N) -> (M, N).
//
// Both operands must be rank 2. The sum for each output element is
// accumulated row-major with k ascending, so results are deterministic for a
// given input.
//
// Example:
//
//	a, _ := tensor.Matrix([][]float64{{1, 2, 3}, {4, 5, 6}})
//	b, _ := tensor.Matrix([][]float64{{7, 8}, {9, 10}, {11, 12}})
//	c, _ := tensor.Multiply(a, b) // [[58 64] [139 154]]
func Multiply(a, b *Tensor) (*Tensor, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("matmul: %w: operand is not a tensor", ErrIncompatibleTypes)
	}
	if a.Rank() != 2 || b.Rank() != 2 {
		return nil, fmt.Errorf("matmul: %w: only 2D tensors supported, got %dD and %dD",
			ErrUnsupportedRank, a.Rank(), b.Rank())
	}

	m, k := a.shape[0], a.shape[1]
	kAlt, n := b.shape[0], b.shape[1]
	if k != kAlt {
		return nil, fmt.Errorf("matmul: %w: [%d,%d] @ [%d,%d]", ErrIncompatibleShape, m, k, kAlt, n)
	}

	result := newTensor(Shape{m, n})
	matmulFloat64(result.data, a.data, b.data, m, k, n)
	return result, nil
}

// matmulFloat64 computes C[i,j] = sum_k A[i,k] * B[k,j].
func matmulFloat64(c, a, b []float64, m, k, n int) {
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum := float64(0)
			for kIdx := 0; kIdx < k; kIdx++ {
				sum += a[i*k+kIdx] * b[kIdx*n+j]
			}
			c[i*n+j] = sum
		}
	}
}

// Apply combines tensors element-wise.
//
// For every coordinate, op receives the values found at that coordinate in
// each input, in input order, and its return value becomes the output element.
// All inputs must share the first input's shape, and only ranks 1 and 2 are
// supported. The values slice passed to op is reused between calls.
//
// Example:
//
//	sum, _ := tensor.Apply([]*tensor.Tensor{a, b}, func(v []float64) float64 {
//	    return v[0] + v[1]
//	})
func Apply(inputs []*Tensor, op func(values []float64) float64) (*Tensor, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("apply: %w", ErrEmptyInput)
	}
	for i, t := range inputs {
		if t == nil {
			return nil, fmt.Errorf("apply: %w: input %d is not a tensor", ErrIncompatibleTypes, i)
		}
	}

	shape := inputs[0].shape
	if r := shape.Rank(); r < 1 || r > MaxRank {
		return nil, fmt.Errorf("apply: %w: rank %d", ErrUnsupportedRank, r)
	}
	for i, t := range inputs[1:] {
		if !t.shape.Equal(shape) {
			return nil, fmt.Errorf("apply: %w: input %d has shape %v, expected %v",
				ErrIncompatibleShape, i+1, t.shape, shape)
		}
	}

	result := newTensor(shape)
	values := make([]float64, len(inputs))
	for idx := range result.data {
		for i, t := range inputs {
			values[i] = t.data[idx]
		}
		result.data[idx] = op(values)
	}
	return result, nil
}

// Transpose returns a new tensor with rows and columns swapped.
// A rank-1 tensor is returned as a copy.
func Transpose(t *Tensor) (*Tensor, error) {
	if t == nil {
		return nil, fmt.Errorf("transpose: %w: operand is not a tensor", ErrIncompatibleTypes)
	}
	if t.Rank() == 1 {
		return t.Clone(), nil
	}

	rows, cols := t.shape[0], t.shape[1]
	result := newTensor(Shape{cols, rows})
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			result.data[j*rows+i] = t.data[i*cols+j]
		}
	}
	return result, nil
}
