// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"iter"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// Type aliases for public API

// Element is the constraint satisfied by every supported element type:
// bool and all Go integer, floating-point and complex kinds.
type Element = ndarray.Element

// Number is Element without bool.
type Number = ndarray.Number

// Real is Number without the complex kinds.
type Real = ndarray.Real

// Ordered admits the element types that support < and sorting.
type Ordered = ndarray.Ordered

// Integer admits the signed and unsigned integer kinds.
type Integer = ndarray.Integer

// Float admits float32 and float64.
type Float = ndarray.Float

// Complex admits complex64 and complex128.
type Complex = ndarray.Complex

// DataType is the runtime tag of an element type.
type DataType = ndarray.DataType

// Data type constants.
const (
	Bool       DataType = ndarray.Bool
	Int8       DataType = ndarray.Int8
	Int16      DataType = ndarray.Int16
	Int32      DataType = ndarray.Int32
	Int64      DataType = ndarray.Int64
	Int        DataType = ndarray.Int
	Uint8      DataType = ndarray.Uint8
	Uint16     DataType = ndarray.Uint16
	Uint32     DataType = ndarray.Uint32
	Uint64     DataType = ndarray.Uint64
	Uint       DataType = ndarray.Uint
	Uintptr    DataType = ndarray.Uintptr
	Float32    DataType = ndarray.Float32
	Float64    DataType = ndarray.Float64
	Complex64  DataType = ndarray.Complex64
	Complex128 DataType = ndarray.Complex128
)

// DataTypeOf returns the runtime tag for T.
func DataTypeOf[T Element]() DataType {
	return ndarray.DataTypeOf[T]()
}

// Shape is the (rows, cols) extent of an array.
type Shape = ndarray.Shape

// NewShape returns a validated shape.
func NewShape(rows, cols int) (Shape, error) {
	return ndarray.NewShape(rows, cols)
}

// SquareShape returns the n x n shape.
func SquareShape(n int) (Shape, error) {
	return ndarray.SquareShape(n)
}

// Slice selects indices along one dimension with Python slice semantics.
type Slice = ndarray.Slice

// NewSlice returns the slice [start:stop].
func NewSlice(start, stop int) Slice { return ndarray.NewSlice(start, stop) }

// NewSliceStep returns the slice [start:stop:step].
func NewSliceStep(start, stop, step int) Slice { return ndarray.NewSliceStep(start, stop, step) }

// SliceAll returns the slice [:].
func SliceAll() Slice { return ndarray.SliceAll() }

// SliceFrom returns the slice [start:].
func SliceFrom(start int) Slice { return ndarray.SliceFrom(start) }

// SliceTo returns the slice [:stop].
func SliceTo(stop int) Slice { return ndarray.SliceTo(stop) }

// PointerPolicy tells whether an array owns its buffer.
type PointerPolicy = ndarray.PointerPolicy

// Pointer policies.
const (
	Copy  PointerPolicy = ndarray.Copy
	Shell PointerPolicy = ndarray.Shell
)

// Endian is the byte order tag of an array's buffer.
type Endian = ndarray.Endian

// Byte orders.
const (
	Native Endian = ndarray.Native
	Little Endian = ndarray.Little
	Big    Endian = ndarray.Big
)

// IsLittleEndian reports whether the host is little-endian.
func IsLittleEndian() bool {
	return ndarray.IsLittleEndian()
}

// Axis selects the direction of an axis-wise operation.
type Axis = ndarray.Axis

// Axes.
const (
	AxisNone Axis = ndarray.AxisNone
	AxisRow  Axis = ndarray.AxisRow
	AxisCol  Axis = ndarray.AxisCol
)

// NdArray is a dense, row-major, two-dimensional array of T.
//
// Example:
//
//	a, _ := ndarray.FromRows([][]int32{{1, 2, 3}, {4, 5, 6}})
//	v, _ := a.AtRC(1, 0) // 4
//	t := a.Transpose()   // 3x2
type NdArray[T Element] = ndarray.NdArray[T]

// Iterator is a read-only cursor over an array in flat or column order.
type Iterator[T Element] = ndarray.Iterator[T]

// MutIterator is an Iterator with write access to the current element.
type MutIterator[T Element] = ndarray.MutIterator[T]

// Errors.
var (
	ErrInvalidArgument   = ndarray.ErrInvalidArgument
	ErrOutOfRange        = ndarray.ErrOutOfRange
	ErrShapeMismatch     = ndarray.ErrShapeMismatch
	ErrInvalidSize       = ndarray.ErrInvalidSize
	ErrAllocationFailure = ndarray.ErrAllocationFailure
	ErrDivideByZero      = ndarray.ErrDivideByZero
)

// Creation functions

// Empty returns an empty 0x0 array.
func Empty[T Element]() *NdArray[T] {
	return ndarray.Empty[T]()
}

// New returns a zero-filled rows x cols array.
//
// Example:
//
//	a, err := ndarray.New[float64](3, 4)
func New[T Element](rows, cols int) (*NdArray[T], error) {
	return ndarray.New[T](rows, cols)
}

// NewSquare returns a zero-filled n x n array.
func NewSquare[T Element](n int) (*NdArray[T], error) {
	return ndarray.NewSquare[T](n)
}

// FromShape returns a zero-filled array of the given shape.
func FromShape[T Element](shape Shape) (*NdArray[T], error) {
	return ndarray.FromShape[T](shape)
}

// Zeros returns a zero-filled array of the given shape.
func Zeros[T Element](shape Shape) (*NdArray[T], error) {
	return ndarray.Zeros[T](shape)
}

// Ones returns an array of the given shape filled with ones.
func Ones[T Number](shape Shape) (*NdArray[T], error) {
	return ndarray.Ones[T](shape)
}

// Full returns an array of the given shape with every element set to value.
func Full[T Element](shape Shape, value T) (*NdArray[T], error) {
	return ndarray.Full(shape, value)
}

// Identity returns the n x n identity matrix.
func Identity[T Number](n int) (*NdArray[T], error) {
	return ndarray.Identity[T](n)
}

// Scalar returns a 1x1 array holding v.
func Scalar[T Element](v T) *NdArray[T] {
	return ndarray.Scalar(v)
}

// Arange returns a 1xN row holding start, start+step, ... up to stop.
func Arange[T Real](start, stop, step T) (*NdArray[T], error) {
	return ndarray.Arange(start, stop, step)
}

// FromSlice returns a 1xN array holding a copy of values.
func FromSlice[T Element](values []T) (*NdArray[T], error) {
	return ndarray.FromSlice(values)
}

// FromBuffer wraps buf as a 1xlen(buf) array under the given policy.
func FromBuffer[T Element](buf []T, policy PointerPolicy) (*NdArray[T], error) {
	return ndarray.FromBuffer(buf, policy)
}

// FromBufferShape wraps the first rows*cols elements of buf under the given policy.
//
// Example:
//
//	buf := make([]float32, 6)
//	a, err := ndarray.FromBufferShape(buf, 2, 3, ndarray.Shell) // aliases buf
func FromBufferShape[T Element](buf []T, rows, cols int, policy PointerPolicy) (*NdArray[T], error) {
	return ndarray.FromBufferShape(buf, rows, cols, policy)
}

// Adopt makes buf the owned buffer of a rows x cols array without copying.
// len(buf) must equal rows*cols, and the caller must not use buf afterwards.
func Adopt[T Element](buf []T, rows, cols int) (*NdArray[T], error) {
	return ndarray.Adopt(buf, rows, cols)
}

// FromRows builds an array from nested rows of equal length.
func FromRows[T Element](rows [][]T) (*NdArray[T], error) {
	return ndarray.FromRows(rows)
}

// FromSeq collects an iterator into a 1xN array.
func FromSeq[T Element](seq iter.Seq[T]) (*NdArray[T], error) {
	return ndarray.FromSeq(seq)
}

// Sort sorts a in ascending order along axis.
func Sort[T Ordered](a *NdArray[T], axis Axis) error {
	return ndarray.Sort(a, axis)
}
