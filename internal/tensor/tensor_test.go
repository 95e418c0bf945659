package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertEqualShape(t *testing.T, expected, actual Shape, msg string) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("%s: expected shape %v, got %v", msg, expected, actual)
	}
}

func mustMatrix(t *testing.T, rows [][]float64) *Tensor {
	t.Helper()
	m, err := Matrix(rows)
	require.NoError(t, err)
	return m
}

func TestTensorAtSet(t *testing.T) {
	m, err := Zeros(Shape{2, 3})
	require.NoError(t, err)

	m.Set(7, 1, 2)
	assert.Equal(t, 7.0, m.At(1, 2))
	assert.Equal(t, 7.0, m.Data()[5])
}

func TestTensorAtPanics(t *testing.T) {
	m, err := Zeros(Shape{2, 2})
	require.NoError(t, err)

	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.At(0) })
	assert.Panics(t, func() { m.Set(1, -1, 0) })
}

func TestTensorCloneIsDeep(t *testing.T) {
	m := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	c.Set(9, 0, 0)

	assert.Equal(t, 1.0, m.At(0, 0))
	assertEqualShape(t, m.Shape(), c.Shape(), "clone shape")
}

func TestTensorValuesAreCopies(t *testing.T) {
	m := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	rows := m.Values().([][]float64)
	rows[0][0] = 100

	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestTensorAllClose(t *testing.T) {
	x, y := 0.1, 0.2
	a := mustMatrix(t, [][]float64{{x + y}})
	b := mustMatrix(t, [][]float64{{0.3}})

	assert.False(t, a.Equal(b))
	assert.True(t, a.AllClose(b, 1e-12))
	assert.False(t, a.AllClose(nil, 1))

	v, err := Vector(0.3)
	require.NoError(t, err)
	assert.False(t, b.AllClose(v, math.Inf(1)), "shape mismatch is never close")
}

func TestTensorString(t *testing.T) {
	v, err := Vector(1, 0.5)
	require.NoError(t, err)
	assert.Equal(t, "Tensor[2][1 0.5]", v.String())

	m := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	assert.Equal(t, "Tensor[2 2][[1 2] [3 4]]", m.String())
}
