package ndarray

import (
	"fmt"
	"strings"
)

// NdArray is a dense, row-major, two-dimensional array of T.
//
// Element (r, c) lives at flat offset r*NumCols()+c. The buffer is either
// owned by the array (Copy) or borrowed from the caller (Shell); both behave
// identically through this API. An array is either empty (0 elements, no
// buffer) or allocated.
//
// NdArray is not safe for concurrent mutation.
//
// Example:
//
//	a, _ := ndarray.FromRows([][]int32{{1, 2, 3}, {4, 5, 6}})
//	v, _ := a.AtRC(1, 0) // 4
//	t := a.Transpose()   // 3x2
type NdArray[T Element] struct {
	shape  Shape
	store  storage[T]
	endian Endian
}

// Shape returns the array's shape.
func (a *NdArray[T]) Shape() Shape {
	return a.shape
}

// Size returns the total number of elements.
func (a *NdArray[T]) Size() int {
	return a.shape.Size()
}

// NumRows returns the number of rows.
func (a *NdArray[T]) NumRows() int {
	return a.shape.Rows
}

// NumCols returns the number of columns.
func (a *NdArray[T]) NumCols() int {
	return a.shape.Cols
}

// IsEmpty reports whether the array holds no elements.
func (a *NdArray[T]) IsEmpty() bool {
	return a.Size() == 0
}

// IsScalar reports whether the array is 1x1.
func (a *NdArray[T]) IsScalar() bool {
	return a.shape.Rows == 1 && a.shape.Cols == 1
}

// IsFlat reports whether the array is a single row or a single column.
func (a *NdArray[T]) IsFlat() bool {
	return !a.IsEmpty() && (a.shape.Rows == 1 || a.shape.Cols == 1)
}

// IsSquare reports whether the array is non-empty and rows == cols.
func (a *NdArray[T]) IsSquare() bool {
	return !a.IsEmpty() && a.shape.IsSquare()
}

// Policy returns the buffer ownership policy.
func (a *NdArray[T]) Policy() PointerPolicy {
	return a.store.policy
}

// OwnsData reports whether the array owns its buffer.
func (a *NdArray[T]) OwnsData() bool {
	return a.store.owns()
}

// Endian returns the byte order tag of the buffer.
func (a *NdArray[T]) Endian() Endian {
	return a.endian
}

// DType returns the runtime data type.
func (a *NdArray[T]) DType() DataType {
	return DataTypeOf[T]()
}

// Data returns the backing buffer (zero-copy).
//
// WARNING: Modifications to the returned slice modify the array, and for a
// Shell array, the caller's memory.
func (a *NdArray[T]) Data() []T {
	return a.store.data
}

// DataRelease hands the owned buffer to the caller and leaves the array empty.
// It fails for Shell arrays, which never owned their memory.
func (a *NdArray[T]) DataRelease() ([]T, error) {
	if !a.store.owns() {
		return nil, fmt.Errorf("data release requires an owning array, policy is %s: %w",
			a.store.policy, ErrInvalidArgument)
	}
	data := a.store.data
	a.reset()
	return data, nil
}

// Clone returns a deep copy that owns its buffer, whatever the source policy.
func (a *NdArray[T]) Clone() *NdArray[T] {
	st, err := copiedStorage(a.store.data)
	if err != nil {
		// The source already holds this many elements, so the request is satisfiable.
		panic(err)
	}
	return &NdArray[T]{shape: a.shape, store: st, endian: a.endian}
}

// CopyFrom replaces the receiver's contents with an owned copy of src.
func (a *NdArray[T]) CopyFrom(src *NdArray[T]) error {
	if a == src && a.store.owns() {
		return nil
	}
	st, err := copiedStorage(src.store.data)
	if err != nil {
		return err
	}
	a.shape = src.shape
	a.store = st
	a.endian = src.endian
	return nil
}

// Move transfers the buffer, policy and byte order to a new array and leaves
// the receiver empty. No elements are copied.
func (a *NdArray[T]) Move() *NdArray[T] {
	out := &NdArray[T]{shape: a.shape, store: a.store, endian: a.endian}
	a.reset()
	return out
}

// MoveFrom takes over src's buffer, policy and byte order, leaving src empty.
func (a *NdArray[T]) MoveFrom(src *NdArray[T]) {
	if a == src {
		return
	}
	a.shape = src.shape
	a.store = src.store
	a.endian = src.endian
	src.reset()
}

// Release drops the buffer and leaves the array empty. An owned buffer
// becomes garbage; a Shell array just stops referencing the caller's memory.
func (a *NdArray[T]) Release() {
	a.reset()
}

func (a *NdArray[T]) reset() {
	a.shape = Shape{}
	a.store.release()
	a.endian = Native
}

// ToSlice returns a copy of the elements in row-major order.
func (a *NdArray[T]) ToSlice() []T {
	out := make([]T, a.Size())
	copy(out, a.store.data)
	return out
}

// ToRows returns a copy of the elements as a slice of rows.
func (a *NdArray[T]) ToRows() [][]T {
	rows := make([][]T, a.shape.Rows)
	for r := range rows {
		rows[r] = append([]T(nil), a.rowData(r)...)
	}
	return rows
}

// rowData returns the backing elements of row r (zero-copy, unchecked).
func (a *NdArray[T]) rowData(r int) []T {
	cols := a.shape.Cols
	return a.store.data[r*cols : (r+1)*cols]
}

// String returns a human-readable, row-by-row representation.
func (a *NdArray[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for r := 0; r < a.shape.Rows; r++ {
		if r > 0 {
			sb.WriteString("\n ")
		}
		sb.WriteByte('[')
		for c, v := range a.rowData(r) {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprint(&sb, v)
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}
