package ndarray

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustFromRows builds an array from nested rows, failing the test on error.
func mustFromRows[T Element](t *testing.T, rows [][]T) *NdArray[T] {
	t.Helper()
	a, err := FromRows(rows)
	require.NoError(t, err)
	return a
}

func TestNewSize(t *testing.T) {
	for rows := 0; rows < 5; rows++ {
		for cols := 0; cols < 5; cols++ {
			a, err := New[float64](rows, cols)
			require.NoError(t, err)
			assert.Equal(t, rows*cols, a.Size())
			assert.Equal(t, a.Size() == 0, a.IsEmpty())
			assert.Equal(t, Shape{Rows: rows, Cols: cols}, a.Shape())
			assert.Equal(t, Copy, a.Policy())
		}
	}
}

func TestNewInvalid(t *testing.T) {
	_, err := New[int32](-1, 3)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = FromShape[int32](Shape{Rows: 2, Cols: -2})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestAllocationFailure(t *testing.T) {
	_, err := New[float64](math.MaxInt/4, 4)
	assert.ErrorIs(t, err, ErrAllocationFailure)

	_, err = New[int8](1<<40, 1<<40)
	assert.ErrorIs(t, err, ErrAllocationFailure)
}

func TestEmpty(t *testing.T) {
	a := Empty[int32]()
	assert.True(t, a.IsEmpty())
	assert.True(t, a.Shape().IsNull())
	assert.Nil(t, a.Data())
	assert.Equal(t, "[]", a.String())
}

func TestConstructors(t *testing.T) {
	sq, err := NewSquare[int64](3)
	require.NoError(t, err)
	assert.Equal(t, Shape{Rows: 3, Cols: 3}, sq.Shape())

	full, err := Full(Shape{Rows: 2, Cols: 2}, float32(2.5))
	require.NoError(t, err)
	assert.Equal(t, []float32{2.5, 2.5, 2.5, 2.5}, full.Data())

	ones, err := Ones[complex128](Shape{Rows: 1, Cols: 2})
	require.NoError(t, err)
	assert.Equal(t, []complex128{1, 1}, ones.Data())

	eye, err := Identity[float64](3)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, eye.Data())

	s := Scalar(int16(7))
	assert.True(t, s.IsScalar())
	v, err := s.Item()
	require.NoError(t, err)
	assert.Equal(t, int16(7), v)
}

func TestArange(t *testing.T) {
	up, err := Arange(0, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4}, up.Data())
	assert.Equal(t, Shape{Rows: 1, Cols: 3}, up.Shape())

	down, err := Arange(5.0, 0.0, -2.0)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 3, 1}, down.Data())

	_, err = Arange(0, 5, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFromRows(t *testing.T) {
	a := mustFromRows(t, [][]int32{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, Shape{Rows: 2, Cols: 3}, a.Shape())
	assert.Equal(t, []int32{1, 2, 3, 4, 5, 6}, a.Data())
	assert.Equal(t, [][]int32{{1, 2, 3}, {4, 5, 6}}, a.ToRows())
	assert.Equal(t, "[[1, 2, 3]\n [4, 5, 6]]", a.String())

	_, err := FromRows([][]int32{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	empty, err := FromRows[int32](nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestFromSeq(t *testing.T) {
	a, err := FromSeq(slices.Values([]uint8{3, 1, 2}))
	require.NoError(t, err)
	assert.Equal(t, Shape{Rows: 1, Cols: 3}, a.Shape())
	assert.Equal(t, []uint8{3, 1, 2}, a.Data())
	assert.Equal(t, Copy, a.Policy())
}

func TestShellAliasesCallerMemory(t *testing.T) {
	buf := []int32{1, 2, 3, 4}
	a, err := FromBufferShape(buf, 2, 2, Shell)
	require.NoError(t, err)
	assert.Equal(t, Shell, a.Policy())
	assert.False(t, a.OwnsData())

	buf[0] = 99
	v, err := a.AtRC(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(99), v, "external write must be visible through a shell")

	require.NoError(t, a.SetRC(1, 1, -4))
	assert.Equal(t, int32(-4), buf[3], "shell write must reach the caller's buffer")
}

func TestCopyDoesNotAliasCallerMemory(t *testing.T) {
	buf := []int32{1, 2, 3, 4}
	a, err := FromBufferShape(buf, 2, 2, Copy)
	require.NoError(t, err)
	assert.Equal(t, Copy, a.Policy())

	buf[0] = 99
	v, err := a.AtRC(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(1), v, "external write must not be visible through a copy")
}

func TestFromBufferShortBuffer(t *testing.T) {
	_, err := FromBufferShape([]float64{1, 2, 3}, 2, 2, Shell)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = FromBufferShape([]float64{1, 2, 3, 4}, 2, 2, PointerPolicy(7))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEmptyShellKeepsPolicy(t *testing.T) {
	a, err := FromBuffer[float64](nil, Shell)
	require.NoError(t, err)
	assert.True(t, a.IsEmpty())
	assert.Equal(t, Shell, a.Policy())
	assert.False(t, a.OwnsData())

	_, err = a.DataRelease()
	assert.ErrorIs(t, err, ErrInvalidArgument)

	b, err := FromBufferShape([]int8{1, 2}, 0, 2, Shell)
	require.NoError(t, err)
	assert.Equal(t, Shell, b.Policy())

	b.Release()
	assert.Equal(t, Copy, b.Policy())
}

func TestAdopt(t *testing.T) {
	buf := []int16{1, 2, 3, 4, 5, 6}
	a, err := Adopt(buf, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, Copy, a.Policy())
	assert.Equal(t, [][]int16{{1, 2, 3}, {4, 5, 6}}, a.ToRows())

	buf[0] = 9
	v, err := a.At(0)
	require.NoError(t, err)
	assert.Equal(t, int16(9), v, "adopted buffer is used without copying")

	released, err := a.DataRelease()
	require.NoError(t, err)
	assert.Len(t, released, 6)

	_, err = Adopt([]int16{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, ErrInvalidSize)
	_, err = Adopt([]int16{1, 2, 3, 4, 5}, 2, 2)
	assert.ErrorIs(t, err, ErrInvalidSize)
	_, err = Adopt[int16](nil, -1, 2)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	empty, err := Adopt[int16](nil, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, Shape{Rows: 0, Cols: 4}, empty.Shape())
	assert.True(t, empty.OwnsData())
}

func TestFromBufferUsesPrefix(t *testing.T) {
	buf := []float64{1, 2, 3, 4, 5}
	a, err := FromBufferShape(buf, 2, 2, Shell)
	require.NoError(t, err)
	assert.Len(t, a.Data(), 4)

	flat, err := FromBuffer(buf, Shell)
	require.NoError(t, err)
	assert.Equal(t, Shape{Rows: 1, Cols: 5}, flat.Shape())
}

func TestCloneAlwaysOwns(t *testing.T) {
	buf := []float64{1, 2, 3, 4}
	shell, err := FromBufferShape(buf, 2, 2, Shell)
	require.NoError(t, err)

	c := shell.Clone()
	assert.Equal(t, Copy, c.Policy())
	assert.Equal(t, shell.Data(), c.Data())

	buf[0] = 42
	v, _ := c.At(0)
	assert.Equal(t, 1.0, v)

	var dst NdArray[float64]
	require.NoError(t, dst.CopyFrom(shell))
	assert.Equal(t, Copy, dst.Policy())
	assert.Equal(t, Shape{Rows: 2, Cols: 2}, dst.Shape())
	buf[1] = 42
	v, _ = dst.At(1)
	assert.Equal(t, 2.0, v)

	require.NoError(t, shell.CopyFrom(shell))
	assert.Equal(t, Copy, shell.Policy(), "self-assignment of a shell detaches into an owned copy")
}

func TestMoveTransfersOwnership(t *testing.T) {
	buf := []int64{5, 6}
	shell, err := FromBuffer(buf, Shell)
	require.NoError(t, err)

	moved := shell.Move()
	assert.True(t, shell.IsEmpty())
	assert.Nil(t, shell.Data())
	assert.Equal(t, Shell, moved.Policy(), "move keeps the shell policy")
	buf[0] = 50
	v, _ := moved.At(0)
	assert.Equal(t, int64(50), v)

	owned := Scalar(int64(1))
	var dst NdArray[int64]
	dst.MoveFrom(owned)
	assert.True(t, owned.IsEmpty())
	assert.Equal(t, Copy, dst.Policy())
	assert.Equal(t, 1, dst.Size())

	dst.MoveFrom(&dst)
	assert.Equal(t, 1, dst.Size(), "self-move is a no-op")
}

func TestDataRelease(t *testing.T) {
	shell, err := FromBuffer([]uint16{1, 2}, Shell)
	require.NoError(t, err)
	_, err = shell.DataRelease()
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, 2, shell.Size(), "failed release leaves the array intact")

	owned, err := FromSlice([]uint16{1, 2, 3})
	require.NoError(t, err)
	data, err := owned.DataRelease()
	require.NoError(t, err)
	assert.Equal(t, []uint16{1, 2, 3}, data)
	assert.True(t, owned.IsEmpty())
}

func TestRelease(t *testing.T) {
	buf := []int32{1, 2, 3}
	shell, err := FromBuffer(buf, Shell)
	require.NoError(t, err)
	shell.Release()
	assert.True(t, shell.IsEmpty())
	assert.Equal(t, []int32{1, 2, 3}, buf, "releasing a shell leaves caller memory alone")

	owned, err := New[int32](2, 2)
	require.NoError(t, err)
	owned.Release()
	assert.True(t, owned.IsEmpty())
	assert.Equal(t, Copy, owned.Policy())
}
