package ndarray

import (
	"cmp"
	"fmt"
	"slices"
)

// Axis selects the direction of an axis-wise operation.
type Axis int

const (
	// AxisNone treats the array as one flat sequence.
	AxisNone Axis = iota
	// AxisRow runs down each column (across rows).
	AxisRow
	// AxisCol runs along each row (across columns).
	AxisCol
)

// String returns the axis name.
func (ax Axis) String() string {
	switch ax {
	case AxisNone:
		return "NONE"
	case AxisRow:
		return "ROW"
	case AxisCol:
		return "COL"
	default:
		return "UNKNOWN"
	}
}

// Fill sets every element to value.
func (a *NdArray[T]) Fill(value T) {
	for i := range a.store.data {
		a.store.data[i] = value
	}
}

// Replace substitutes newValue for every element equal to oldValue.
func (a *NdArray[T]) Replace(oldValue, newValue T) {
	for i, v := range a.store.data {
		if v == oldValue {
			a.store.data[i] = newValue
		}
	}
}

// SortFunc sorts the array in place with compare. AxisNone sorts the whole
// buffer, AxisCol sorts each row, AxisRow sorts each column.
func (a *NdArray[T]) SortFunc(axis Axis, compare func(x, y T) int) error {
	switch axis {
	case AxisNone:
		slices.SortFunc(a.store.data, compare)
	case AxisCol:
		for r := 0; r < a.shape.Rows; r++ {
			slices.SortFunc(a.rowData(r), compare)
		}
	case AxisRow:
		t := a.Transpose()
		for r := 0; r < t.shape.Rows; r++ {
			slices.SortFunc(t.rowData(r), compare)
		}
		t.transposeInto(a.store.data)
	default:
		return fmt.Errorf("unknown axis %d: %w", axis, ErrInvalidArgument)
	}
	return nil
}

// Sort sorts a in ascending order along axis.
func Sort[T Ordered](a *NdArray[T], axis Axis) error {
	return a.SortFunc(axis, cmp.Compare[T])
}

// SwapRows exchanges rows i and j in place.
func (a *NdArray[T]) SwapRows(i, j int) error {
	rows := a.shape.Rows
	if i < 0 || i >= rows || j < 0 || j >= rows {
		return fmt.Errorf("row indices (%d, %d) are out of bounds for shape %v: %w", i, j, a.shape, ErrOutOfRange)
	}
	ri, rj := a.rowData(i), a.rowData(j)
	for c := range ri {
		ri[c], rj[c] = rj[c], ri[c]
	}
	return nil
}

// SwapCols exchanges columns i and j in place.
func (a *NdArray[T]) SwapCols(i, j int) error {
	cols := a.shape.Cols
	if i < 0 || i >= cols || j < 0 || j >= cols {
		return fmt.Errorf("column indices (%d, %d) are out of bounds for shape %v: %w", i, j, a.shape, ErrOutOfRange)
	}
	data := a.store.data
	for r := 0; r < a.shape.Rows; r++ {
		base := r * cols
		data[base+i], data[base+j] = data[base+j], data[base+i]
	}
	return nil
}

// Transpose returns a new cols x rows array with element (r, c) moved to (c, r).
// Row-major layout rules out an in-place transpose for non-square shapes.
func (a *NdArray[T]) Transpose() *NdArray[T] {
	out := &NdArray[T]{shape: Shape{Rows: a.shape.Cols, Cols: a.shape.Rows}, endian: a.endian}
	buf, err := allocate[T](a.Size())
	if err != nil {
		panic(err)
	}
	out.store = storage[T]{data: buf, policy: Copy}
	a.transposeInto(buf)
	return out
}

// transposeInto writes the transpose of a into dst, which must not alias a.
func (a *NdArray[T]) transposeInto(dst []T) {
	rows, cols := a.shape.Rows, a.shape.Cols
	src := a.store.data
	if len(src) == 0 {
		return
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			dst[c*rows+r] = src[r*cols+c]
		}
	}
}

// Reshape changes the shape in place. The element count must not change;
// flat iteration order is preserved.
func (a *NdArray[T]) Reshape(shape Shape) error {
	return a.ReshapeRC(shape.Rows, shape.Cols)
}

// ReshapeRC changes the shape in place to rows x cols. One of rows or cols
// may be -1, in which case it is inferred from the element count.
func (a *NdArray[T]) ReshapeRC(rows, cols int) error {
	n := a.Size()
	switch {
	case rows < 0 && cols < 0:
		return fmt.Errorf("cannot infer both dimensions for array of size %d: %w", n, ErrInvalidArgument)
	case rows < 0:
		if rows != -1 || cols == 0 || n%cols != 0 {
			return fmt.Errorf("cannot reshape array of size %d into a shape with %d columns: %w", n, cols, ErrInvalidSize)
		}
		rows = n / cols
	case cols < 0:
		if cols != -1 || rows == 0 || n%rows != 0 {
			return fmt.Errorf("cannot reshape array of size %d into a shape with %d rows: %w", n, rows, ErrInvalidSize)
		}
		cols = n / rows
	}
	shape := Shape{Rows: rows, Cols: cols}
	if shape.Size() != n {
		return fmt.Errorf("cannot reshape array of size %d into shape %v: %w", n, shape, ErrInvalidSize)
	}
	a.shape = shape
	return nil
}

// Flatten returns an owned 1xN copy of the array.
func (a *NdArray[T]) Flatten() *NdArray[T] {
	out := a.Clone()
	out.shape = Shape{Rows: 1, Cols: a.Size()}
	return out
}

// Ravel reshapes the array in place to 1xN.
func (a *NdArray[T]) Ravel() {
	a.shape = Shape{Rows: 1, Cols: a.Size()}
}

// ResizeFast replaces the buffer with a zeroed owned buffer of the new shape.
// Previous contents are discarded; a Shell array becomes Copy.
func (a *NdArray[T]) ResizeFast(shape Shape) error {
	fresh, err := FromShape[T](shape)
	if err != nil {
		return err
	}
	a.shape = fresh.shape
	a.store = fresh.store
	a.endian = Native
	return nil
}

// ResizeSlow reallocates to the new shape, keeping the overlapping top-left
// block and zero-filling the rest. The result always owns its buffer.
func (a *NdArray[T]) ResizeSlow(shape Shape) error {
	fresh, err := FromShape[T](shape)
	if err != nil {
		return err
	}
	rows := min(shape.Rows, a.shape.Rows)
	cols := min(shape.Cols, a.shape.Cols)
	for r := 0; r < rows; r++ {
		copy(fresh.rowData(r)[:cols], a.rowData(r)[:cols])
	}
	a.shape = fresh.shape
	a.store = fresh.store
	return nil
}

// Byteswap reverses the bytes of every element in place and flips the byte
// order tag. Complex elements have each component swapped independently.
func (a *NdArray[T]) Byteswap() {
	dt := a.DType()
	SwapBytes(asBytes(a.store.data), dt.WordSize())
	switch a.endian {
	case Native:
		if nativeIsLittle {
			a.endian = Big
		} else {
			a.endian = Little
		}
	case Little:
		a.endian = Big
	case Big:
		a.endian = Little
	}
}

// NewByteOrder returns an owned copy whose buffer is laid out in the given
// byte order. When the order already matches, the result is a plain copy.
func (a *NdArray[T]) NewByteOrder(order Endian) (*NdArray[T], error) {
	switch order {
	case Native, Little, Big:
	default:
		return nil, fmt.Errorf("unknown byte order %d: %w", order, ErrInvalidArgument)
	}
	out := a.Clone()
	if a.endian.Resolve() != order.Resolve() {
		SwapBytes(asBytes(out.store.data), a.DType().WordSize())
	}
	out.endian = order
	return out, nil
}
