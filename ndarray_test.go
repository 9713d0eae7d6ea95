// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray_test

import (
	"bytes"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray"
)

// TestTwoByThreeScenario walks the 2x3 matrix {{1,2,3},{4,5,6}} through the
// public API.
func TestTwoByThreeScenario(t *testing.T) {
	a, err := ndarray.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	tr := a.Transpose()
	assert.Equal(t, ndarray.Shape{Rows: 3, Cols: 2}, tr.Shape())
	v01, err := tr.AtRC(0, 1)
	require.NoError(t, err)
	v10, err := a.AtRC(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, v01)
	assert.Equal(t, v10, v01)

	reshaped := a.Clone()
	require.NoError(t, reshaped.Reshape(ndarray.Shape{Rows: 3, Cols: 2}))
	v21, err := reshaped.AtRC(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 6, v21)

	assert.Equal(t, []int{1, 4, 2, 5, 3, 6}, slices.Collect(a.ColumnValues()))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, slices.Collect(a.Values()))
}

func TestReshapePreservesFlatOrder(t *testing.T) {
	a, err := ndarray.Arange(0, 12, 1)
	require.NoError(t, err)
	want := slices.Collect(a.Values())

	for _, s := range []ndarray.Shape{{Rows: 2, Cols: 6}, {Rows: 3, Cols: 4}, {Rows: 12, Cols: 1}, {Rows: 4, Cols: 3}} {
		require.NoError(t, a.Reshape(s))
		assert.Equal(t, 12, a.Size())
		assert.Equal(t, want, slices.Collect(a.Values()), "shape %v", s)
	}
}

func TestBroadcastScalar(t *testing.T) {
	a, err := ndarray.FromRows([][]float64{{1.5, -2}, {0, 8}})
	require.NoError(t, err)

	sum, err := ndarray.Add(a, ndarray.Scalar(0.5))
	require.NoError(t, err)
	for i, v := range a.All() {
		got, err := sum.At(i)
		require.NoError(t, err)
		assert.Equal(t, v+0.5, got)
	}

	b, err := ndarray.New[float64](1, 4)
	require.NoError(t, err)
	_, err = ndarray.Add(a, b)
	assert.ErrorIs(t, err, ndarray.ErrShapeMismatch)
}

func TestOwnershipPolicies(t *testing.T) {
	p := []uint32{1, 2, 3, 4}

	shell, err := ndarray.FromBufferShape(p, 2, 2, ndarray.Shell)
	require.NoError(t, err)
	owned, err := ndarray.FromBufferShape(p, 2, 2, ndarray.Copy)
	require.NoError(t, err)

	p[3] = 40
	sv, _ := shell.Back()
	ov, _ := owned.Back()
	assert.Equal(t, uint32(40), sv)
	assert.Equal(t, uint32(4), ov)
}

func TestSerializationRoundTrip(t *testing.T) {
	ints, err := ndarray.FromRows([][]int32{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ndarray.Dump(&buf, ints, ndarray.DefaultOptions()))
	got, err := ndarray.Load[int32](&buf)
	require.NoError(t, err)
	assert.True(t, ndarray.ArrayEqual(ints, got))

	path := filepath.Join(t.TempDir(), "c.ndar")
	c, err := ndarray.FromSlice([]complex128{1 + 1i, -2i})
	require.NoError(t, err)
	require.NoError(t, ndarray.ToFile(path, c, ndarray.Options{ByteOrder: ndarray.Big, Checksum: true}))
	back, err := ndarray.FromFile[complex128](path)
	require.NoError(t, err)
	assert.True(t, ndarray.ArrayEqual(c, back))

	_, err = ndarray.FromFile[float64](path)
	assert.ErrorIs(t, err, ndarray.ErrDTypeMismatch)
}

func TestReductionsThroughFacade(t *testing.T) {
	scores, err := ndarray.FromRows([][]float64{{0.2, 0.9, 0.4}, {0.7, 0.1, 0.3}})
	require.NoError(t, err)

	best, err := ndarray.ArgMax(scores, ndarray.AxisCol)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, best.Data())

	totals, err := ndarray.Sum(scores, ndarray.AxisRow)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.9, 1.0, 0.7}, totals.Data(), 1e-12)

	clipped, err := ndarray.Clip(scores, 0.25, 0.75)
	require.NoError(t, err)
	high, err := ndarray.GreaterEqual(clipped, ndarray.Scalar(0.7))
	require.NoError(t, err)
	picked, err := clipped.GetByMask(high)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.75, 0.7}, picked.Data())

	votes := ndarray.AsType[int](ndarray.Round(scores, 0))
	assert.Equal(t, []int{0, 1, 0, 1, 0, 0}, votes.Data())

	order, err := ndarray.ArgSort(scores, ndarray.AxisNone)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 0, 5, 2, 3, 1}, order.Data())

	mid, err := ndarray.Median(scores, ndarray.AxisCol)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.4, 0.3}, mid.Data())
}
