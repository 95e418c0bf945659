package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiply(t *testing.T) {
	a := mustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustMatrix(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := Multiply(a, b)
	require.NoError(t, err)

	assertEqualShape(t, Shape{2, 2}, c.Shape(), "matmul shape")
	assert.Equal(t, [][]float64{{58, 64}, {139, 154}}, c.Values())
}

func TestMultiplyIdentity(t *testing.T) {
	m := mustMatrix(t, [][]float64{{0.5, -1, 2}, {3, 0, 0.25}, {7, 8, 9}})
	id, err := Identity(3)
	require.NoError(t, err)

	left, err := Multiply(id, m)
	require.NoError(t, err)
	right, err := Multiply(m, id)
	require.NoError(t, err)

	assert.True(t, left.Equal(m), "I x M = %v", left)
	assert.True(t, right.Equal(m), "M x I = %v", right)
}

func TestMultiplyDoesNotAliasInputs(t *testing.T) {
	m := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	id, err := Identity(2)
	require.NoError(t, err)

	c, err := Multiply(m, id)
	require.NoError(t, err)
	c.Set(100, 0, 0)

	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestMultiplyErrors(t *testing.T) {
	m := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})
	v, err := Vector(1, 2)
	require.NoError(t, err)
	wide := mustMatrix(t, [][]float64{{1, 2, 3}})

	_, err = Multiply(nil, m)
	require.ErrorIs(t, err, ErrIncompatibleTypes)

	_, err = Multiply(m, nil)
	require.ErrorIs(t, err, ErrIncompatibleTypes)

	_, err = Multiply(m, v)
	require.ErrorIs(t, err, ErrUnsupportedRank)

	_, err = Multiply(m, wide)
	require.ErrorIs(t, err, ErrIncompatibleShape)
}

func TestApply(t *testing.T) {
	a, err := Vector(1, 2, 3)
	require.NoError(t, err)
	b, err := Vector(10, 20, 30)
	require.NoError(t, err)

	var seen [][]float64
	out, err := Apply([]*Tensor{a, b}, func(v []float64) float64 {
		seen = append(seen, append([]float64(nil), v...))
		return v[0] - v[1]
	})
	require.NoError(t, err)

	assert.Equal(t, []float64{-9, -18, -27}, out.Values())
	assert.Equal(t, [][]float64{{1, 10}, {2, 20}, {3, 30}}, seen, "values keep input order")
}

func TestApplyMatrix(t *testing.T) {
	m := mustMatrix(t, [][]float64{{1, 2}, {3, 4}})

	out, err := Apply([]*Tensor{m}, func(v []float64) float64 { return v[0] * 2 })
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{2, 4}, {6, 8}}, out.Values())
	assert.Equal(t, 1.0, m.At(0, 0), "inputs are not modified")
}

func TestApplyErrors(t *testing.T) {
	v2, err := Vector(1, 2)
	require.NoError(t, err)
	v3, err := Vector(1, 2, 3)
	require.NoError(t, err)
	identity := func(v []float64) float64 { return v[0] }

	_, err = Apply(nil, identity)
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = Apply([]*Tensor{v2, v3}, identity)
	require.ErrorIs(t, err, ErrIncompatibleShape)

	_, err = Apply([]*Tensor{v2, nil}, identity)
	require.ErrorIs(t, err, ErrIncompatibleTypes)
}

func TestTranspose(t *testing.T) {
	m := mustMatrix(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	tr, err := Transpose(m)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, tr.Values())

	v, err := Vector(1, 2)
	require.NoError(t, err)
	vt, err := Transpose(v)
	require.NoError(t, err)
	assert.True(t, vt.Equal(v))

	_, err = Transpose(nil)
	require.ErrorIs(t, err, ErrIncompatibleTypes)
}

func BenchmarkMultiply(b *testing.B) {
	a, _ := Full(Shape{64, 64}, 0.5)
	c, _ := Full(Shape{64, 64}, 0.25)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Multiply(a, c)
	}
}
