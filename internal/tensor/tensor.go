package tensor

import (
	"fmt"
	"math"
	"strings"
)

// Tensor is a dense float64 tensor of rank 1 or 2.
//
// Values are stored row-major in a flat slice. Every engine operation returns
// a freshly allocated Tensor; Set is the only in-place mutation.
//
// Example:
//
//	m, err := tensor.Create(tensor.Shape{2, 2}, [][]float64{{1, 2}, {3, 4}})
//	v := m.At(1, 0) // 3
type Tensor struct {
	shape  Shape
	stride []int
	data   []float64
}

// newTensor allocates a zero-filled tensor for an already validated shape.
func newTensor(shape Shape) *Tensor {
	return &Tensor{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   make([]float64, shape.NumElements()),
	}
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// Rank returns the number of dimensions.
func (t *Tensor) Rank() int {
	return len(t.shape)
}

// Size returns the sum of the dimensions. See Shape.Size.
func (t *Tensor) Size() int {
	return t.shape.Size()
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// Data returns the flat row-major backing slice.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	t, _ := tensor.Zeros(tensor.Shape{3, 4})
//	value := t.At(1, 2) // Row 1, column 2
func (t *Tensor) At(indices ...int) float64 {
	return t.data[t.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) Set(value float64, indices ...int) {
	t.data[t.offset(indices)] = value
}

func (t *Tensor) offset(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * t.stride[i]
	}
	return offset
}

// Row returns a copy of row i of a rank-2 tensor.
func (t *Tensor) Row(i int) []float64 {
	if len(t.shape) != 2 {
		panic(fmt.Sprintf("Row() only works for rank-2 tensors, got shape %v", t.shape))
	}
	if i < 0 || i >= t.shape[0] {
		panic(fmt.Sprintf("row %d out of bounds (rows %d)", i, t.shape[0]))
	}
	cols := t.shape[1]
	row := make([]float64, cols)
	copy(row, t.data[i*cols:(i+1)*cols])
	return row
}

// Values returns a nested copy of the tensor's values:
// []float64 for rank 1 and [][]float64 for rank 2.
func (t *Tensor) Values() any {
	if len(t.shape) == 1 {
		out := make([]float64, len(t.data))
		copy(out, t.data)
		return out
	}
	rows := make([][]float64, t.shape[0])
	for i := range rows {
		rows[i] = t.Row(i)
	}
	return rows
}

// Clone creates a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	clone := newTensor(t.shape)
	copy(clone.data, t.data)
	return clone
}

// Equal reports whether both tensors have the same shape and identical values.
func (t *Tensor) Equal(other *Tensor) bool {
	return t.AllClose(other, 0)
}

// AllClose reports whether both tensors have the same shape and every pair of
// elements differs by at most tol.
func (t *Tensor) AllClose(other *Tensor, tol float64) bool {
	if other == nil || !t.shape.Equal(other.shape) {
		return false
	}
	for i, v := range t.data {
		if math.Abs(v-other.data[i]) > tol {
			return false
		}
	}
	return true
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tensor%v", t.shape)
	if len(t.shape) == 1 {
		fmt.Fprintf(&sb, "%v", t.data)
		return sb.String()
	}
	sb.WriteByte('[')
	for i := 0; i < t.shape[0]; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", t.Row(i))
	}
	sb.WriteByte(']')
	return sb.String()
}
