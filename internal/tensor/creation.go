package tensor

import "fmt"

// Create builds a tensor with the given shape.
//
// If values is nil the tensor is zero-filled. Otherwise values must be nested
// exactly like shape: a flat sequence of shape[0] numbers for rank 1, or
// shape[0] rows of shape[1] numbers for rank 2. Accepted forms are []float64,
// [][]float64, []int, [][]int and []any nestings of Go numbers.
//
// Example:
//
//	t, err := tensor.Create(tensor.Shape{2, 3}, [][]float64{{1, 2, 3}, {4, 5, 6}})
func Create(shape Shape, values any) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	t := newTensor(shape)
	if values == nil {
		return t, nil
	}

	if err := fill(t.data, shape, values); err != nil {
		return nil, err
	}
	return t, nil
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) (*Tensor, error) {
	return Create(shape, nil)
}

// Full creates a tensor filled with a specific value.
func Full(shape Shape, value float64) (*Tensor, error) {
	t, err := Zeros(shape)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = value
	}
	return t, nil
}

// FromSlice creates a tensor from a flat row-major slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, but got %d",
			ErrValueMismatch, shape, shape.NumElements(), len(data))
	}

	t := newTensor(shape)
	copy(t.data, data)
	return t, nil
}

// Vector creates a rank-1 tensor holding values.
func Vector(values ...float64) (*Tensor, error) {
	return FromSlice(values, Shape{len(values)})
}

// Matrix creates a rank-2 tensor from rows. All rows must have equal length.
func Matrix(rows [][]float64) (*Tensor, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: matrix has no rows", ErrInvalidShape)
	}
	return Create(Shape{len(rows), len(rows[0])}, rows)
}

// Identity creates an n×n identity matrix.
func Identity(n int) (*Tensor, error) {
	t, err := Zeros(Shape{n, n})
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		t.data[i*n+i] = 1
	}
	return t, nil
}

// fill copies nested values into dst, checking them against shape.
func fill(dst []float64, shape Shape, values any) error {
	if len(shape) == 1 {
		return fillRow(dst, shape[0], values, "")
	}

	rows, cols := shape[0], shape[1]
	var get func(i int) any
	var n int
	switch v := values.(type) {
	case [][]float64:
		n, get = len(v), func(i int) any { return v[i] }
	case [][]int:
		n, get = len(v), func(i int) any { return v[i] }
	case []any:
		n, get = len(v), func(i int) any { return v[i] }
	default:
		return fmt.Errorf("%w: expected %d rows, got %T", ErrValueMismatch, rows, values)
	}
	if n != rows {
		return fmt.Errorf("%w: expected %d rows, got %d", ErrValueMismatch, rows, n)
	}
	for i := 0; i < rows; i++ {
		if err := fillRow(dst[i*cols:(i+1)*cols], cols, get(i), fmt.Sprintf("row %d: ", i)); err != nil {
			return err
		}
	}
	return nil
}

func fillRow(dst []float64, n int, values any, where string) error {
	switch v := values.(type) {
	case []float64:
		if len(v) != n {
			return fmt.Errorf("%w: %sexpected %d values, got %d", ErrValueMismatch, where, n, len(v))
		}
		copy(dst, v)
	case []int:
		if len(v) != n {
			return fmt.Errorf("%w: %sexpected %d values, got %d", ErrValueMismatch, where, n, len(v))
		}
		for i, x := range v {
			dst[i] = float64(x)
		}
	case []any:
		if len(v) != n {
			return fmt.Errorf("%w: %sexpected %d values, got %d", ErrValueMismatch, where, n, len(v))
		}
		for i, x := range v {
			f, ok := toFloat(x)
			if !ok {
				return fmt.Errorf("%w: %svalue %d is %T, not a number", ErrValueMismatch, where, i, x)
			}
			dst[i] = f
		}
	default:
		return fmt.Errorf("%w: %sexpected %d values, got %T", ErrValueMismatch, where, n, values)
	}
	return nil
}

func toFloat(x any) (float64, bool) {
	switch v := x.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint8:
		return float64(v), true
	default:
		return 0, false
	}
}
