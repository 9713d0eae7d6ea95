package ndarray

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparisons(t *testing.T) {
	a := sampleMatrix(t)
	three := Scalar[int32](3)

	tests := []struct {
		name string
		fn   func(x, y *NdArray[int32]) (*NdArray[bool], error)
		want []bool
	}{
		{"equal", Equal[int32], []bool{false, false, true, false, false, false}},
		{"not equal", NotEqual[int32], []bool{true, true, false, true, true, true}},
		{"less", Less[int32], []bool{true, true, false, false, false, false}},
		{"less equal", LessEqual[int32], []bool{true, true, true, false, false, false}},
		{"greater", Greater[int32], []bool{false, false, false, true, true, true}},
		{"greater equal", GreaterEqual[int32], []bool{false, false, true, true, true, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(a, three)
			require.NoError(t, err)
			assert.Equal(t, a.Shape(), got.Shape())
			assert.Equal(t, tt.want, got.Data())
		})
	}

	_, err := Less(a, a.Transpose())
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestLogical(t *testing.T) {
	a, err := FromSlice([]float64{0, 1, 2, 0})
	require.NoError(t, err)
	b, err := FromSlice([]float64{0, 0, 3, 4})
	require.NoError(t, err)

	and, err := LogicalAnd(a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true, false}, and.Data())

	or, err := LogicalOr(a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true, true}, or.Data())

	assert.Equal(t, []bool{true, false, false, true}, LogicalNot(a).Data())

	flags, err := FromSlice([]bool{true, false})
	require.NoError(t, err)
	both, err := LogicalAnd(flags, Scalar(true))
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, both.Data())
}

func TestReductions(t *testing.T) {
	a, err := FromSlice([]int{0, 3, 0, 5})
	require.NoError(t, err)
	assert.False(t, All(a))
	assert.True(t, Any(a))
	assert.Equal(t, 2, CountNonZero(a))

	empty := Empty[int]()
	assert.True(t, All(empty))
	assert.False(t, Any(empty))
	assert.Equal(t, 0, CountNonZero(empty))
}

func TestArrayEqual(t *testing.T) {
	a := sampleMatrix(t)
	assert.True(t, ArrayEqual(a, a.Clone()))
	assert.True(t, ArrayEqual(Empty[int32](), Empty[int32]()))

	flat := a.Flatten()
	assert.False(t, ArrayEqual(a, flat), "same elements in a different shape are not equal")

	b := a.Clone()
	require.NoError(t, b.Set(-1, 0))
	assert.False(t, ArrayEqual(a, b))

	assert.False(t, ArrayEqual(Scalar(7.0), mustFromRows(t, [][]float64{{7, 7}})),
		"array equality does not broadcast")

	nan := Scalar(math.NaN())
	assert.False(t, ArrayEqual(nan, nan.Clone()))
}
