package ndarray

import (
	"fmt"
	"iter"
)

// Empty returns an empty 0x0 array with no storage.
func Empty[T Element]() *NdArray[T] {
	return &NdArray[T]{}
}

// New returns a zero-filled rows x cols array that owns its buffer.
//
// Example:
//
//	a, err := ndarray.New[float64](3, 4)
func New[T Element](rows, cols int) (*NdArray[T], error) {
	shape, err := NewShape(rows, cols)
	if err != nil {
		return nil, err
	}
	return FromShape[T](shape)
}

// NewSquare returns a zero-filled n x n array.
func NewSquare[T Element](n int) (*NdArray[T], error) {
	return New[T](n, n)
}

// FromShape returns a zero-filled array of the given shape.
func FromShape[T Element](shape Shape) (*NdArray[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.Rows != 0 && shape.Size()/shape.Rows != shape.Cols {
		return nil, fmt.Errorf("shape %v overflows: %w", shape, ErrAllocationFailure)
	}
	st, err := ownedStorage[T](shape.Size())
	if err != nil {
		return nil, fmt.Errorf("shape %v: %w", shape, err)
	}
	return &NdArray[T]{shape: shape, store: st}, nil
}

// Zeros is FromShape under the name callers expect.
func Zeros[T Element](shape Shape) (*NdArray[T], error) {
	return FromShape[T](shape)
}

// Full returns an array of the given shape with every element set to value.
func Full[T Element](shape Shape, value T) (*NdArray[T], error) {
	a, err := FromShape[T](shape)
	if err != nil {
		return nil, err
	}
	a.Fill(value)
	return a, nil
}

// Ones returns an array of the given shape filled with ones.
func Ones[T Number](shape Shape) (*NdArray[T], error) {
	return Full[T](shape, 1)
}

// Identity returns the n x n identity matrix.
func Identity[T Number](n int) (*NdArray[T], error) {
	a, err := NewSquare[T](n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		a.store.data[i*n+i] = 1
	}
	return a, nil
}

// Scalar returns a 1x1 array holding v. It is the broadcast operand for the
// scalar forms of every operator.
func Scalar[T Element](v T) *NdArray[T] {
	return &NdArray[T]{shape: Shape{Rows: 1, Cols: 1}, store: storage[T]{data: []T{v}, policy: Copy}}
}

// Arange returns a 1xN row with values start, start+step, ... < stop
// (or > stop for a negative step).
func Arange[T Real](start, stop, step T) (*NdArray[T], error) {
	var zero T
	if step == zero {
		return nil, fmt.Errorf("arange step cannot be zero: %w", ErrInvalidArgument)
	}
	var values []T
	if step > zero {
		for v := start; v < stop; v += step {
			values = append(values, v)
		}
	} else {
		for v := start; v > stop; v += step {
			values = append(values, v)
		}
	}
	return FromSlice(values)
}

// FromSlice returns a 1xN array holding a copy of values.
func FromSlice[T Element](values []T) (*NdArray[T], error) {
	return FromBuffer(values, Copy)
}

// FromBuffer wraps buf as a 1xlen(buf) array. With Copy the data is copied
// into an owned buffer; with Shell the array aliases buf, so writes through
// either side are visible to the other.
func FromBuffer[T Element](buf []T, policy PointerPolicy) (*NdArray[T], error) {
	return FromBufferShape(buf, 1, len(buf), policy)
}

// FromBufferShape wraps the first rows*cols elements of buf as a rows x cols array.
// buf must hold at least rows*cols elements. A Shell over an empty buffer
// stays a Shell, so DataRelease on it fails like on any other Shell.
func FromBufferShape[T Element](buf []T, rows, cols int, policy PointerPolicy) (*NdArray[T], error) {
	shape, err := NewShape(rows, cols)
	if err != nil {
		return nil, err
	}
	n := shape.Size()
	if len(buf) < n {
		return nil, fmt.Errorf("buffer of %d elements is too short for shape %v: %w", len(buf), shape, ErrInvalidSize)
	}
	switch policy {
	case Copy:
		st, err := copiedStorage(buf[:n])
		if err != nil {
			return nil, err
		}
		return &NdArray[T]{shape: shape, store: st}, nil
	case Shell:
		return &NdArray[T]{shape: shape, store: shellStorage(buf[:n:n])}, nil
	default:
		return nil, fmt.Errorf("unknown pointer policy %d: %w", policy, ErrInvalidArgument)
	}
}

// Adopt makes buf the owned buffer of a rows x cols array without copying.
// The caller hands buf over and must not use it afterwards. It is meant for
// decoders that fill a buffer before the array exists.
func Adopt[T Element](buf []T, rows, cols int) (*NdArray[T], error) {
	shape, err := NewShape(rows, cols)
	if err != nil {
		return nil, err
	}
	if n := shape.Size(); len(buf) != n {
		return nil, fmt.Errorf("buffer of %d elements does not match shape %v: %w", len(buf), shape, ErrInvalidSize)
	}
	if shape.Size() == 0 {
		buf = nil
	}
	return &NdArray[T]{shape: shape, store: storage[T]{data: buf, policy: Copy}}, nil
}

// FromRows builds an array from nested rows, copying the values.
// Every row must have the same length.
//
// Example:
//
//	a, err := ndarray.FromRows([][]int32{{1, 2, 3}, {4, 5, 6}}) // 2x3
func FromRows[T Element](rows [][]T) (*NdArray[T], error) {
	if len(rows) == 0 {
		return Empty[T](), nil
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d elements, expected %d: %w", i, len(row), cols, ErrInvalidArgument)
		}
	}
	a, err := New[T](len(rows), cols)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		copy(a.store.data[r*cols:], row)
	}
	return a, nil
}

// FromSeq collects an iterator into a 1xN array.
func FromSeq[T Element](seq iter.Seq[T]) (*NdArray[T], error) {
	var values []T
	for v := range seq {
		values = append(values, v)
	}
	return FromSlice(values)
}
