package ndarray

import (
	"cmp"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranspose(t *testing.T) {
	a := sampleMatrix(t)
	tr := a.Transpose()
	assert.Equal(t, Shape{Rows: 3, Cols: 2}, tr.Shape())

	v, err := tr.AtRC(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(4), v)
	assert.Equal(t, [][]int32{{1, 4}, {2, 5}, {3, 6}}, tr.ToRows())

	assert.True(t, ArrayEqual(a, tr.Transpose()))
	assert.True(t, Empty[float64]().Transpose().IsEmpty())
}

func TestReshape(t *testing.T) {
	a := sampleMatrix(t)
	before := a.ToSlice()

	require.NoError(t, a.ReshapeRC(3, 2))
	v, err := a.AtRC(2, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(6), v)
	assert.Equal(t, before, a.ToSlice(), "reshape keeps flat order")

	require.NoError(t, a.ReshapeRC(-1, 1))
	assert.Equal(t, Shape{Rows: 6, Cols: 1}, a.Shape())

	require.NoError(t, a.Reshape(Shape{Rows: 2, Cols: -1}))
	assert.Equal(t, Shape{Rows: 2, Cols: 3}, a.Shape())

	assert.ErrorIs(t, a.ReshapeRC(4, 2), ErrInvalidSize)
	assert.ErrorIs(t, a.ReshapeRC(-1, 4), ErrInvalidSize)
	assert.ErrorIs(t, a.ReshapeRC(-1, -1), ErrInvalidArgument)
	assert.Equal(t, Shape{Rows: 2, Cols: 3}, a.Shape(), "failed reshape leaves the shape alone")

	flat := a.Flatten()
	assert.Equal(t, Shape{Rows: 1, Cols: 6}, flat.Shape())
	assert.Equal(t, Shape{Rows: 2, Cols: 3}, a.Shape())

	a.Ravel()
	assert.Equal(t, Shape{Rows: 1, Cols: 6}, a.Shape())
}

func TestSort(t *testing.T) {
	rows := [][]int{{4, 2}, {1, 3}}
	tests := []struct {
		axis Axis
		want [][]int
	}{
		{AxisNone, [][]int{{1, 2}, {3, 4}}},
		{AxisCol, [][]int{{2, 4}, {1, 3}}},
		{AxisRow, [][]int{{1, 2}, {4, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.axis.String(), func(t *testing.T) {
			a := mustFromRows(t, rows)
			require.NoError(t, Sort(a, tt.axis))
			assert.Equal(t, tt.want, a.ToRows())
		})
	}

	a := mustFromRows(t, rows)
	require.NoError(t, a.SortFunc(AxisNone, func(x, y int) int { return cmp.Compare(y, x) }))
	assert.Equal(t, []int{4, 3, 2, 1}, a.Data())
	assert.ErrorIs(t, a.SortFunc(Axis(9), cmp.Compare[int]), ErrInvalidArgument)
}

func TestSwap(t *testing.T) {
	a := sampleMatrix(t)
	require.NoError(t, a.SwapRows(0, 1))
	assert.Equal(t, [][]int32{{4, 5, 6}, {1, 2, 3}}, a.ToRows())

	require.NoError(t, a.SwapCols(0, 2))
	assert.Equal(t, [][]int32{{6, 5, 4}, {3, 2, 1}}, a.ToRows())

	assert.ErrorIs(t, a.SwapRows(0, 2), ErrOutOfRange)
	assert.ErrorIs(t, a.SwapCols(-1, 0), ErrOutOfRange)
}

func TestFillAndReplace(t *testing.T) {
	a := sampleMatrix(t)
	a.Replace(2, 20)
	assert.Equal(t, []int32{1, 20, 3, 4, 5, 6}, a.Data())
	a.Fill(7)
	assert.Equal(t, []int32{7, 7, 7, 7, 7, 7}, a.Data())
}

func TestResize(t *testing.T) {
	buf := []float64{1, 2, 3, 4}
	a, err := FromBufferShape(buf, 2, 2, Shell)
	require.NoError(t, err)

	require.NoError(t, a.ResizeSlow(Shape{Rows: 3, Cols: 1}))
	assert.Equal(t, Copy, a.Policy(), "resize always ends with an owned buffer")
	assert.Equal(t, []float64{1, 3, 0}, a.Data())
	assert.Equal(t, []float64{1, 2, 3, 4}, buf)

	require.NoError(t, a.ResizeFast(Shape{Rows: 2, Cols: 2}))
	assert.Equal(t, []float64{0, 0, 0, 0}, a.Data())

	assert.ErrorIs(t, a.ResizeFast(Shape{Rows: -1, Cols: 2}), ErrInvalidArgument)
	assert.Equal(t, Shape{Rows: 2, Cols: 2}, a.Shape())
}

func TestByteswap(t *testing.T) {
	a, err := FromSlice([]int32{0x01020304})
	require.NoError(t, err)
	a.Byteswap()
	v, _ := a.Item()
	assert.Equal(t, int32(0x04030201), v)
	assert.NotEqual(t, Native.Resolve(), a.Endian().Resolve())

	a.Byteswap()
	v, _ = a.Item()
	assert.Equal(t, int32(0x01020304), v)
	assert.Equal(t, Native.Resolve(), a.Endian().Resolve())

	b, err := FromSlice([]uint8{1, 2})
	require.NoError(t, err)
	b.Byteswap()
	assert.Equal(t, []uint8{1, 2}, b.Data())
}

func TestByteswapComplex(t *testing.T) {
	c, err := FromSlice([]complex64{complex(1, 2)})
	require.NoError(t, err)
	c.Byteswap()
	c.Byteswap()
	v, _ := c.Item()
	assert.Equal(t, complex64(complex(1, 2)), v)

	raw := AsBytes(c.Data())
	c.Byteswap()
	var foreign binary.ByteOrder = binary.BigEndian
	if !IsLittleEndian() {
		foreign = binary.LittleEndian
	}
	assert.Equal(t, float32(1), math.Float32frombits(foreign.Uint32(raw[0:4])), "real part swapped in place")
	assert.Equal(t, float32(2), math.Float32frombits(foreign.Uint32(raw[4:8])), "imaginary part swapped in place")
}

func TestNewByteOrder(t *testing.T) {
	a, err := FromSlice([]uint16{0x0102})
	require.NoError(t, err)

	foreign := Big
	if !IsLittleEndian() {
		foreign = Little
	}
	swapped, err := a.NewByteOrder(foreign)
	require.NoError(t, err)
	assert.Equal(t, foreign, swapped.Endian())
	v, _ := swapped.Item()
	assert.Equal(t, uint16(0x0201), v)

	orig, _ := a.Item()
	assert.Equal(t, uint16(0x0102), orig, "the source is untouched")

	same, err := a.NewByteOrder(Native.Resolve())
	require.NoError(t, err)
	v, _ = same.Item()
	assert.Equal(t, uint16(0x0102), v)

	back, err := swapped.NewByteOrder(Native)
	require.NoError(t, err)
	v, _ = back.Item()
	assert.Equal(t, uint16(0x0102), v)

	_, err = a.NewByteOrder(Endian(5))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
