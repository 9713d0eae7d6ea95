package ndarray

import "fmt"

// flatIndex resolves a possibly negative flat index.
func (a *NdArray[T]) flatIndex(i int) (int, error) {
	n := a.Size()
	idx := i
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return 0, fmt.Errorf("index %d is out of bounds for array of size %d: %w", i, n, ErrOutOfRange)
	}
	return idx, nil
}

// offsetOf resolves a possibly negative (row, col) pair to a flat offset.
func (a *NdArray[T]) offsetOf(row, col int) (int, error) {
	rows, cols := a.shape.Rows, a.shape.Cols
	if row < 0 {
		row += rows
	}
	if col < 0 {
		col += cols
	}
	if row < 0 || row >= rows {
		return 0, fmt.Errorf("row index %d is out of bounds for shape %v: %w", row, a.shape, ErrOutOfRange)
	}
	if col < 0 || col >= cols {
		return 0, fmt.Errorf("column index %d is out of bounds for shape %v: %w", col, a.shape, ErrOutOfRange)
	}
	return row*cols + col, nil
}

// At returns the element at flat offset i. Negative offsets count from the end.
func (a *NdArray[T]) At(i int) (T, error) {
	idx, err := a.flatIndex(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.store.data[idx], nil
}

// AtRC returns the element at (row, col). Negative indices count from the end.
func (a *NdArray[T]) AtRC(row, col int) (T, error) {
	off, err := a.offsetOf(row, col)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.store.data[off], nil
}

// Set stores v at flat offset i.
func (a *NdArray[T]) Set(i int, v T) error {
	idx, err := a.flatIndex(i)
	if err != nil {
		return err
	}
	a.store.data[idx] = v
	return nil
}

// SetRC stores v at (row, col).
func (a *NdArray[T]) SetRC(row, col int, v T) error {
	off, err := a.offsetOf(row, col)
	if err != nil {
		return err
	}
	a.store.data[off] = v
	return nil
}

// Item returns the only element of a 1x1 array.
func (a *NdArray[T]) Item() (T, error) {
	if a.Size() != 1 {
		var zero T
		return zero, fmt.Errorf("item requires a single element, shape is %v: %w", a.shape, ErrInvalidSize)
	}
	return a.store.data[0], nil
}

// Front returns the first element.
func (a *NdArray[T]) Front() (T, error) {
	return a.At(0)
}

// Back returns the last element.
func (a *NdArray[T]) Back() (T, error) {
	return a.At(-1)
}

// Slice returns the flat elements selected by s as a new 1xN array.
func (a *NdArray[T]) Slice(s Slice) (*NdArray[T], error) {
	indices, err := s.ToIndices(a.Size())
	if err != nil {
		return nil, err
	}
	return a.Take(indices)
}

// Take returns the elements at the given flat offsets as a new 1xN array.
func (a *NdArray[T]) Take(indices []int) (*NdArray[T], error) {
	out, err := New[T](1, len(indices))
	if err != nil {
		return nil, err
	}
	for k, i := range indices {
		idx, err := a.flatIndex(i)
		if err != nil {
			return nil, err
		}
		out.store.data[k] = a.store.data[idx]
	}
	return out, nil
}

// SliceRC returns the sub-array selected by a row slice and a column slice.
// The result always owns its buffer.
//
// Example:
//
//	// every other column of the last two rows
//	sub, err := a.SliceRC(ndarray.SliceFrom(-2), ndarray.SliceAll().WithStep(2))
func (a *NdArray[T]) SliceRC(rows, cols Slice) (*NdArray[T], error) {
	rowIdx, err := rows.ToIndices(a.shape.Rows)
	if err != nil {
		return nil, fmt.Errorf("row slice: %w", err)
	}
	colIdx, err := cols.ToIndices(a.shape.Cols)
	if err != nil {
		return nil, fmt.Errorf("column slice: %w", err)
	}
	out, err := New[T](len(rowIdx), len(colIdx))
	if err != nil {
		return nil, err
	}
	k := 0
	for _, r := range rowIdx {
		src := a.rowData(r)
		for _, c := range colIdx {
			out.store.data[k] = src[c]
			k++
		}
	}
	return out, nil
}

// Row returns a copy of row r as a 1xN array.
func (a *NdArray[T]) Row(r int) (*NdArray[T], error) {
	if r < 0 {
		r += a.shape.Rows
	}
	if r < 0 || r >= a.shape.Rows {
		return nil, fmt.Errorf("row index %d is out of bounds for shape %v: %w", r, a.shape, ErrOutOfRange)
	}
	return a.SliceRC(NewSlice(r, r+1), SliceAll())
}

// Column returns a copy of column c as an Nx1 array.
func (a *NdArray[T]) Column(c int) (*NdArray[T], error) {
	if c < 0 {
		c += a.shape.Cols
	}
	if c < 0 || c >= a.shape.Cols {
		return nil, fmt.Errorf("column index %d is out of bounds for shape %v: %w", c, a.shape, ErrOutOfRange)
	}
	return a.SliceRC(SliceAll(), NewSlice(c, c+1))
}

// Put sets every flat element selected by s to v.
func (a *NdArray[T]) Put(s Slice, v T) error {
	indices, err := s.ToIndices(a.Size())
	if err != nil {
		return err
	}
	for _, i := range indices {
		a.store.data[i] = v
	}
	return nil
}

// PutRC sets every element selected by a row slice and a column slice to v.
func (a *NdArray[T]) PutRC(rows, cols Slice, v T) error {
	rowIdx, err := rows.ToIndices(a.shape.Rows)
	if err != nil {
		return fmt.Errorf("row slice: %w", err)
	}
	colIdx, err := cols.ToIndices(a.shape.Cols)
	if err != nil {
		return fmt.Errorf("column slice: %w", err)
	}
	for _, r := range rowIdx {
		dst := a.rowData(r)
		for _, c := range colIdx {
			dst[c] = v
		}
	}
	return nil
}

// PutMask sets every element whose mask entry is true to v.
// The mask must have the same shape as the array.
func (a *NdArray[T]) PutMask(mask *NdArray[bool], v T) error {
	if mask.shape != a.shape {
		return fmt.Errorf("mask shape %v does not match array shape %v: %w", mask.shape, a.shape, ErrShapeMismatch)
	}
	for i, m := range mask.store.data {
		if m {
			a.store.data[i] = v
		}
	}
	return nil
}
