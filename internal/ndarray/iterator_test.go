package ndarray

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T Element](it *Iterator[T]) []T {
	var out []T
	for ; it.Valid(); it.Next() {
		out = append(out, it.Value())
	}
	return out
}

func TestFlatIterator(t *testing.T) {
	a := sampleMatrix(t)
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6}, collect(a.Begin()))
	assert.Equal(t, []int32{4, 5, 6}, collect(a.BeginRow(1)))
	assert.Empty(t, collect(a.BeginRow(2)))
	assert.Empty(t, collect(a.BeginRow(-1)))
}

func TestColumnIterator(t *testing.T) {
	a := sampleMatrix(t)
	assert.Equal(t, []int32{1, 4, 2, 5, 3, 6}, collect(a.ColBegin()))
	assert.Equal(t, []int32{2, 5}, collect(a.ColBeginCol(1)))
	assert.Empty(t, collect(a.ColBeginCol(3)))

	it := a.ColBegin()
	it.Advance(3)
	assert.Equal(t, 3, it.Position())
	assert.Equal(t, 4, it.Offset())
	assert.Equal(t, int32(5), it.Value())
}

func TestMutableIterators(t *testing.T) {
	a := sampleMatrix(t)
	for it := a.BeginMut(); it.Valid(); it.Next() {
		it.Set(it.Value() * 10)
	}
	assert.Equal(t, []int32{10, 20, 30, 40, 50, 60}, a.Data())

	for it := a.ColBeginMutCol(0); it.Valid(); it.Next() {
		*it.Ref() = 0
	}
	assert.Equal(t, [][]int32{{0, 20, 30}, {0, 50, 60}}, a.ToRows())

	for it := a.BeginMutRow(1); it.Valid(); it.Next() {
		it.Set(-1)
	}
	assert.Equal(t, [][]int32{{0, 20, 30}, {-1, -1, -1}}, a.ToRows())

	k := int32(0)
	for it := a.ColBeginMut(); it.Valid(); it.Next() {
		it.Set(k)
		k++
	}
	assert.Equal(t, [][]int32{{0, 2, 4}, {1, 3, 5}}, a.ToRows())
}

func TestIteratorNavigation(t *testing.T) {
	a := sampleMatrix(t)
	it := a.Begin()
	assert.Equal(t, 6, it.Remaining())

	it.Advance(4)
	assert.Equal(t, 2, it.Remaining())
	it.Advance(-2)
	assert.Equal(t, int32(3), it.Value())

	other := a.Begin()
	other.Advance(2)
	assert.True(t, it.Equal(other))
	assert.False(t, it.Equal(a.ColBegin()), "different traversal orders never compare equal")

	b := a.Clone()
	cloned := b.Begin()
	cloned.Advance(2)
	assert.False(t, it.Equal(cloned), "iterators over different buffers differ")

	it.Advance(-3)
	assert.False(t, it.Valid())
	assert.Equal(t, 0, it.Remaining())

	it.Advance(10)
	assert.False(t, it.Valid())
	assert.Panics(t, func() { it.Value() })
}

func TestIteratorOverEmpty(t *testing.T) {
	a := Empty[float32]()
	assert.False(t, a.Begin().Valid())
	assert.False(t, a.ColBegin().Valid())
	assert.False(t, a.Begin().Equal(a.ColBegin()))
	assert.True(t, a.Begin().Equal(Empty[float32]().Begin()))

	col := a.ColBegin()
	assert.Equal(t, 0, col.Offset())
	assert.Equal(t, 0, col.Remaining())
	assert.Equal(t, 0, a.ColBeginMut().Offset())

	wide, err := New[float32](0, 4)
	require.NoError(t, err)
	it := wide.ColBeginCol(2)
	assert.False(t, it.Valid())
	assert.NotPanics(t, func() { _ = it.Offset() })
	assert.Empty(t, slices.Collect(wide.ColumnValues()))
}

func TestSequences(t *testing.T) {
	a := sampleMatrix(t)
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6}, slices.Collect(a.Values()))
	assert.Equal(t, []int32{1, 4, 2, 5, 3, 6}, slices.Collect(a.ColumnValues()))
	assert.Equal(t, []int32{1, 2, 3}, slices.Collect(a.RowValues(0)))
	assert.Empty(t, slices.Collect(a.RowValues(5)))

	pairs := maps.Collect(a.All())
	assert.Len(t, pairs, 6)
	assert.Equal(t, int32(5), pairs[4])

	var first []int32
	for v := range a.ColumnValues() {
		first = append(first, v)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []int32{1, 4}, first)
}

func TestIteratorSeesShellWrites(t *testing.T) {
	buf := []int64{1, 2, 3, 4}
	a, err := FromBufferShape(buf, 2, 2, Shell)
	require.NoError(t, err)

	it := a.ColBegin()
	buf[0] = 7
	assert.Equal(t, int64(7), it.Value())
}
