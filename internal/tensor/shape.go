package tensor

import "fmt"

// MaxRank is the highest rank the engine supports.
const MaxRank = 2

// Shape represents the dimensions of a tensor.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Size returns the sum of the dimensions.
//
// This is a descriptive field carried over from the tensor record format and
// is NOT the element count: Shape{2, 3}.Size() == 5. Use NumElements for the
// number of stored values.
func (s Shape) Size() int {
	n := 0
	for _, dim := range s {
		n += dim
	}
	return n
}

// Validate checks that the shape is non-empty, every dimension is > 0, and the
// rank does not exceed MaxRank.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty dimension list", ErrInvalidShape)
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension at index %d is %d (must be > 0)", ErrInvalidShape, i, dim)
		}
	}
	if len(s) > MaxRank {
		return fmt.Errorf("%w: rank %d (max %d)", ErrUnsupportedRank, len(s), MaxRank)
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}
