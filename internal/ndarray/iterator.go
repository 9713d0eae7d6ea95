package ndarray

import "iter"

// order is the traversal order an iterator walks.
type order uint8

const (
	rowMajor order = iota // physical order, stride 1
	colMajor              // down each column, stride numCols
)

// Iterator is a read-only cursor over an array's elements. It walks a half-open
// range of logical positions [pos, end) in either row-major or column-major
// order; column-major position p maps to physical offset (p%rows)*cols + p/rows.
//
// Flat and column iterators share this type; the traversal order is a field
// so no per-element dynamic dispatch happens.
//
// Example:
//
//	for it := a.ColBegin(); it.Valid(); it.Next() {
//	    fmt.Println(it.Value())
//	}
type Iterator[T Element] struct {
	data            []T
	start, pos, end int
	rows, cols      int
	order           order
}

// MutIterator extends Iterator with write access to the current element.
type MutIterator[T Element] struct {
	Iterator[T]
}

func newIterator[T Element](a *NdArray[T], o order, pos, end int) Iterator[T] {
	return Iterator[T]{
		data:  a.store.data,
		start: pos,
		pos:   pos,
		end:   end,
		rows:  a.shape.Rows,
		cols:  a.shape.Cols,
		order: o,
	}
}

// Valid reports whether the iterator points at an element of its range.
func (it *Iterator[T]) Valid() bool {
	return it.pos >= it.start && it.pos < it.end
}

// Next advances by one element.
func (it *Iterator[T]) Next() {
	it.pos++
}

// Advance moves n positions; negative n moves backwards. Leaving the range
// makes the iterator invalid rather than failing.
func (it *Iterator[T]) Advance(n int) {
	it.pos += n
}

// Position returns the logical position within the traversal.
func (it *Iterator[T]) Position() int {
	return it.pos
}

// Remaining returns how many elements are left, including the current one.
func (it *Iterator[T]) Remaining() int {
	if !it.Valid() {
		return 0
	}
	return it.end - it.pos
}

// Offset returns the physical row-major offset of the current element.
// An invalid iterator reports its logical position instead.
func (it *Iterator[T]) Offset() int {
	if it.order == colMajor && it.Valid() {
		return (it.pos%it.rows)*it.cols + it.pos/it.rows
	}
	return it.pos
}

// Value returns the current element. It panics if the iterator is not Valid.
func (it *Iterator[T]) Value() T {
	if !it.Valid() {
		panic("ndarray: iterator is past the end")
	}
	return it.data[it.Offset()]
}

// Equal reports whether two iterators traverse the same buffer in the same
// order and currently sit at the same position.
func (it *Iterator[T]) Equal(other *Iterator[T]) bool {
	if it.order != other.order || it.pos != other.pos {
		return false
	}
	if len(it.data) == 0 || len(other.data) == 0 {
		return len(it.data) == len(other.data)
	}
	return &it.data[0] == &other.data[0]
}

// Ref returns a pointer to the current element.
func (it *MutIterator[T]) Ref() *T {
	if !it.Valid() {
		panic("ndarray: iterator is past the end")
	}
	return &it.data[it.Offset()]
}

// Set overwrites the current element.
func (it *MutIterator[T]) Set(v T) {
	*it.Ref() = v
}

// Begin returns a read-only row-major iterator over the whole array.
func (a *NdArray[T]) Begin() *Iterator[T] {
	it := newIterator(a, rowMajor, 0, a.Size())
	return &it
}

// BeginRow returns a read-only iterator over row r.
// An out-of-range row yields an iterator that is immediately invalid.
func (a *NdArray[T]) BeginRow(r int) *Iterator[T] {
	pos, end := a.rowRange(r)
	it := newIterator(a, rowMajor, pos, end)
	return &it
}

// BeginMut returns a mutable row-major iterator over the whole array.
func (a *NdArray[T]) BeginMut() *MutIterator[T] {
	return &MutIterator[T]{newIterator(a, rowMajor, 0, a.Size())}
}

// BeginMutRow returns a mutable iterator over row r.
func (a *NdArray[T]) BeginMutRow(r int) *MutIterator[T] {
	pos, end := a.rowRange(r)
	return &MutIterator[T]{newIterator(a, rowMajor, pos, end)}
}

// ColBegin returns a read-only column-major iterator over the whole array.
// It strides through the buffer without copying.
func (a *NdArray[T]) ColBegin() *Iterator[T] {
	it := newIterator(a, colMajor, 0, a.Size())
	return &it
}

// ColBeginCol returns a read-only iterator down column c.
func (a *NdArray[T]) ColBeginCol(c int) *Iterator[T] {
	pos, end := a.colRange(c)
	it := newIterator(a, colMajor, pos, end)
	return &it
}

// ColBeginMut returns a mutable column-major iterator over the whole array.
func (a *NdArray[T]) ColBeginMut() *MutIterator[T] {
	return &MutIterator[T]{newIterator(a, colMajor, 0, a.Size())}
}

// ColBeginMutCol returns a mutable iterator down column c.
func (a *NdArray[T]) ColBeginMutCol(c int) *MutIterator[T] {
	pos, end := a.colRange(c)
	return &MutIterator[T]{newIterator(a, colMajor, pos, end)}
}

func (a *NdArray[T]) rowRange(r int) (int, int) {
	if r < 0 || r >= a.shape.Rows {
		return 0, 0
	}
	return r * a.shape.Cols, (r + 1) * a.shape.Cols
}

func (a *NdArray[T]) colRange(c int) (int, int) {
	if c < 0 || c >= a.shape.Cols {
		return 0, 0
	}
	return c * a.shape.Rows, (c + 1) * a.shape.Rows
}

// Values returns an iterator over the elements in row-major order.
func (a *NdArray[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.store.data {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns an iterator over (flat offset, value) pairs in row-major order.
func (a *NdArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.store.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// RowValues returns an iterator over row r. An out-of-range row yields nothing.
func (a *NdArray[T]) RowValues(r int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := a.BeginRow(r); it.Valid(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// ColumnValues returns an iterator over the elements in column-major order.
func (a *NdArray[T]) ColumnValues() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := a.ColBegin(); it.Valid(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
