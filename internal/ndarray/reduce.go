package ndarray

import (
	"fmt"
	"math"
	"slices"
)

// lanes returns the runs an axis-wise operation visits: the whole buffer for
// AxisNone, each row for AxisCol, and each column for AxisRow. Columns come
// from a transposed copy, so lanes never alias the array for AxisRow.
func (a *NdArray[T]) lanes(axis Axis) ([][]T, error) {
	switch axis {
	case AxisNone:
		return [][]T{a.store.data}, nil
	case AxisCol:
		out := make([][]T, a.shape.Rows)
		for r := range out {
			out[r] = a.rowData(r)
		}
		return out, nil
	case AxisRow:
		t := a.Transpose()
		out := make([][]T, t.shape.Rows)
		for r := range out {
			out[r] = t.rowData(r)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown axis %d: %w", axis, ErrInvalidArgument)
	}
}

// reduceLanes folds every lane to one value. The result is 1x1 for AxisNone,
// 1xRows for AxisCol and 1xCols for AxisRow.
func reduceLanes[T, R Element](a *NdArray[T], axis Axis, fn func([]T) (R, error)) (*NdArray[R], error) {
	lanes, err := a.lanes(axis)
	if err != nil {
		return nil, err
	}
	out, err := New[R](1, len(lanes))
	if err != nil {
		return nil, err
	}
	for i, lane := range lanes {
		v, err := fn(lane)
		if err != nil {
			return nil, err
		}
		out.store.data[i] = v
	}
	return out, nil
}

// scanLanes replaces every lane with fn's running result. AxisNone yields a
// 1xN array; the other axes keep the shape.
func scanLanes[T Element](a *NdArray[T], axis Axis, fn func(dst, src []T)) (*NdArray[T], error) {
	switch axis {
	case AxisNone:
		out := a.Flatten()
		fn(out.store.data, a.store.data)
		return out, nil
	case AxisCol:
		out := a.Clone()
		for r := 0; r < a.shape.Rows; r++ {
			fn(out.rowData(r), a.rowData(r))
		}
		return out, nil
	case AxisRow:
		t := a.Transpose()
		for r := 0; r < t.shape.Rows; r++ {
			row := t.rowData(r)
			fn(row, row)
		}
		return t.Transpose(), nil
	default:
		return nil, fmt.Errorf("unknown axis %d: %w", axis, ErrInvalidArgument)
	}
}

func emptyLane(op string) error {
	return fmt.Errorf("%s of an empty sequence: %w", op, ErrInvalidSize)
}

// Sum adds the elements along axis. Empty lanes sum to zero.
func Sum[T Number](a *NdArray[T], axis Axis) (*NdArray[T], error) {
	return reduceLanes(a, axis, func(lane []T) (T, error) {
		var s T
		for _, v := range lane {
			s += v
		}
		return s, nil
	})
}

// Prod multiplies the elements along axis. Empty lanes give one.
func Prod[T Number](a *NdArray[T], axis Axis) (*NdArray[T], error) {
	return reduceLanes(a, axis, func(lane []T) (T, error) {
		p := T(1)
		for _, v := range lane {
			p *= v
		}
		return p, nil
	})
}

// Mean averages the elements along axis. Empty lanes fail with ErrInvalidSize.
func Mean[T Float](a *NdArray[T], axis Axis) (*NdArray[T], error) {
	return reduceLanes(a, axis, func(lane []T) (T, error) {
		if len(lane) == 0 {
			return 0, emptyLane("mean")
		}
		var s T
		for _, v := range lane {
			s += v
		}
		return s / T(len(lane)), nil
	})
}

// Median returns the middle element along axis; even-length lanes average
// the two middle elements (integer division for integer types).
func Median[T Real](a *NdArray[T], axis Axis) (*NdArray[T], error) {
	return reduceLanes(a, axis, func(lane []T) (T, error) {
		if len(lane) == 0 {
			return 0, emptyLane("median")
		}
		sorted := slices.Clone(lane)
		slices.Sort(sorted)
		mid := len(sorted) / 2
		if len(sorted)%2 == 0 {
			return (sorted[mid-1] + sorted[mid]) / 2, nil
		}
		return sorted[mid], nil
	})
}

// argBest returns the index of the first element that better prefers over
// every earlier candidate.
func argBest[T Ordered](lane []T, better func(x, y T) bool) int {
	best := 0
	for i := 1; i < len(lane); i++ {
		if better(lane[i], lane[best]) {
			best = i
		}
	}
	return best
}

func less[T Ordered](x, y T) bool    { return x < y }
func greater[T Ordered](x, y T) bool { return x > y }

// Min returns the smallest element along axis.
func Min[T Ordered](a *NdArray[T], axis Axis) (*NdArray[T], error) {
	return reduceLanes(a, axis, func(lane []T) (T, error) {
		if len(lane) == 0 {
			return 0, emptyLane("min")
		}
		return lane[argBest(lane, less[T])], nil
	})
}

// Max returns the largest element along axis.
func Max[T Ordered](a *NdArray[T], axis Axis) (*NdArray[T], error) {
	return reduceLanes(a, axis, func(lane []T) (T, error) {
		if len(lane) == 0 {
			return 0, emptyLane("max")
		}
		return lane[argBest(lane, greater[T])], nil
	})
}

// ArgMin returns the index of the first smallest element along axis.
// Indices are flat for AxisNone and positions within the lane otherwise.
func ArgMin[T Ordered](a *NdArray[T], axis Axis) (*NdArray[int], error) {
	return reduceLanes(a, axis, func(lane []T) (int, error) {
		if len(lane) == 0 {
			return 0, emptyLane("argmin")
		}
		return argBest(lane, less[T]), nil
	})
}

// ArgMax returns the index of the first largest element along axis.
func ArgMax[T Ordered](a *NdArray[T], axis Axis) (*NdArray[int], error) {
	return reduceLanes(a, axis, func(lane []T) (int, error) {
		if len(lane) == 0 {
			return 0, emptyLane("argmax")
		}
		return argBest(lane, greater[T]), nil
	})
}

// Ptp returns max - min (peak to peak) along axis.
func Ptp[T Ordered](a *NdArray[T], axis Axis) (*NdArray[T], error) {
	return reduceLanes(a, axis, func(lane []T) (T, error) {
		if len(lane) == 0 {
			return 0, emptyLane("ptp")
		}
		return lane[argBest(lane, greater[T])] - lane[argBest(lane, less[T])], nil
	})
}

// CumSum returns the running sum along axis.
func CumSum[T Number](a *NdArray[T], axis Axis) (*NdArray[T], error) {
	return scanLanes(a, axis, func(dst, src []T) {
		var s T
		for i, v := range src {
			s += v
			dst[i] = s
		}
	})
}

// CumProd returns the running product along axis.
func CumProd[T Number](a *NdArray[T], axis Axis) (*NdArray[T], error) {
	return scanLanes(a, axis, func(dst, src []T) {
		p := T(1)
		for i, v := range src {
			p *= v
			dst[i] = p
		}
	})
}

// AllAxis reports, per lane, whether every element is non-zero.
func AllAxis[T Element](a *NdArray[T], axis Axis) (*NdArray[bool], error) {
	var zero T
	return reduceLanes(a, axis, func(lane []T) (bool, error) {
		return !slices.Contains(lane, zero), nil
	})
}

// AnyAxis reports, per lane, whether some element is non-zero.
func AnyAxis[T Element](a *NdArray[T], axis Axis) (*NdArray[bool], error) {
	var zero T
	return reduceLanes(a, axis, func(lane []T) (bool, error) {
		return slices.ContainsFunc(lane, func(v T) bool { return v != zero }), nil
	})
}

// NoneAxis reports, per lane, whether every element is zero.
func NoneAxis[T Element](a *NdArray[T], axis Axis) (*NdArray[bool], error) {
	anyNZ, err := AnyAxis(a, axis)
	if err != nil {
		return nil, err
	}
	return LogicalNot(anyNZ), nil
}

// Contains reports, per lane, whether value occurs.
func Contains[T Element](a *NdArray[T], value T, axis Axis) (*NdArray[bool], error) {
	return reduceLanes(a, axis, func(lane []T) (bool, error) {
		return slices.Contains(lane, value), nil
	})
}

// IsSorted reports, per lane, whether the elements are in ascending order.
func IsSorted[T Ordered](a *NdArray[T], axis Axis) (*NdArray[bool], error) {
	return reduceLanes(a, axis, func(lane []T) (bool, error) {
		return slices.IsSorted(lane), nil
	})
}

// ArgSort returns the indices that would sort a stably along axis. AxisNone
// gives a 1xN array of flat indices; the other axes keep the shape and hold
// positions within each row (AxisCol) or column (AxisRow).
func ArgSort[T Ordered](a *NdArray[T], axis Axis) (*NdArray[int], error) {
	sortLane := func(dst []int, lane []T) {
		for i := range dst {
			dst[i] = i
		}
		slices.SortStableFunc(dst, func(i, j int) int {
			switch {
			case lane[i] < lane[j]:
				return -1
			case lane[j] < lane[i]:
				return 1
			default:
				return 0
			}
		})
	}

	switch axis {
	case AxisNone:
		out, err := New[int](1, a.Size())
		if err != nil {
			return nil, err
		}
		sortLane(out.store.data, a.store.data)
		return out, nil
	case AxisCol:
		out, err := FromShape[int](a.shape)
		if err != nil {
			return nil, err
		}
		for r := 0; r < a.shape.Rows; r++ {
			sortLane(out.rowData(r), a.rowData(r))
		}
		return out, nil
	case AxisRow:
		t := a.Transpose()
		idx, err := ArgSort(t, AxisCol)
		if err != nil {
			return nil, err
		}
		return idx.Transpose(), nil
	default:
		return nil, fmt.Errorf("unknown axis %d: %w", axis, ErrInvalidArgument)
	}
}

// Clip returns a copy with every element limited to [lo, hi].
func Clip[T Ordered](a *NdArray[T], lo, hi T) (*NdArray[T], error) {
	if hi < lo {
		return nil, fmt.Errorf("clip bounds [%v, %v] are reversed: %w", lo, hi, ErrInvalidArgument)
	}
	return Map(a, func(v T) T { return min(max(v, lo), hi) }), nil
}

// Round rounds every element to decimals places, halves to even.
func Round[T Float](a *NdArray[T], decimals int) *NdArray[T] {
	scale := math.Pow(10, float64(decimals))
	return Map(a, func(v T) T {
		return T(math.RoundToEven(float64(v)*scale) / scale)
	})
}

// AsType converts every element to another real type with Go's conversion rules.
func AsType[R, T Real](a *NdArray[T]) *NdArray[R] {
	return Map(a, func(v T) R { return R(v) })
}

// AsComplexType converts between complex precisions.
func AsComplexType[R, T Complex](a *NdArray[T]) *NdArray[R] {
	return Map(a, func(v T) R { return R(v) })
}

// NonZero returns the row and column indices of the non-zero elements, in
// row-major order, as two 1xN arrays.
func NonZero[T Element](a *NdArray[T]) (rows, cols *NdArray[int]) {
	var zero T
	var rs, cs []int
	for i, v := range a.store.data {
		if v != zero {
			rs = append(rs, i/a.shape.Cols)
			cs = append(cs, i%a.shape.Cols)
		}
	}
	return sliceRow(rs), sliceRow(cs)
}

// FlatNonZero returns the flat indices of the non-zero elements as a 1xN array.
func FlatNonZero[T Element](a *NdArray[T]) *NdArray[int] {
	var zero T
	var idx []int
	for i, v := range a.store.data {
		if v != zero {
			idx = append(idx, i)
		}
	}
	return sliceRow(idx)
}

// sliceRow adopts values as a 1xN owned array, or returns an empty one.
func sliceRow[T Element](values []T) *NdArray[T] {
	if len(values) == 0 {
		return Empty[T]()
	}
	return &NdArray[T]{shape: Shape{Rows: 1, Cols: len(values)}, store: storage[T]{data: values, policy: Copy}}
}

// GetByMask returns the elements where mask is true as a 1xN array.
// mask must have the array's shape.
func (a *NdArray[T]) GetByMask(mask *NdArray[bool]) (*NdArray[T], error) {
	if mask.shape != a.shape {
		return nil, fmt.Errorf("mask shape %v does not match array shape %v: %w", mask.shape, a.shape, ErrShapeMismatch)
	}
	var out []T
	for i, m := range mask.store.data {
		if m {
			out = append(out, a.store.data[i])
		}
	}
	return sliceRow(out), nil
}

// Diagonal returns a diagonal as a 1xN array. With AxisRow, offset k selects
// the elements (i, i+k), so positive offsets lie above the main diagonal;
// with AxisCol it selects (i+k, i).
func (a *NdArray[T]) Diagonal(offset int, axis Axis) (*NdArray[T], error) {
	var rowStep, colStep int
	switch axis {
	case AxisRow:
		colStep = offset
	case AxisCol:
		rowStep = offset
	default:
		return nil, fmt.Errorf("diagonal needs AxisRow or AxisCol, got %s: %w", axis, ErrInvalidArgument)
	}
	var out []T
	for i := max(0, -rowStep, -colStep); i+rowStep < a.shape.Rows && i+colStep < a.shape.Cols; i++ {
		out = append(out, a.store.data[(i+rowStep)*a.shape.Cols+i+colStep])
	}
	return sliceRow(out), nil
}

// Trace sums the diagonal selected by offset and axis, as Diagonal does.
func Trace[T Number](a *NdArray[T], offset int, axis Axis) (T, error) {
	d, err := a.Diagonal(offset, axis)
	if err != nil {
		return 0, err
	}
	var s T
	for _, v := range d.store.data {
		s += v
	}
	return s, nil
}

// Repeat tiles the whole array rows times down and cols times across.
func (a *NdArray[T]) Repeat(rows, cols int) (*NdArray[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("repeat counts (%d, %d) must not be negative: %w", rows, cols, ErrInvalidArgument)
	}
	out, err := New[T](a.shape.Rows*rows, a.shape.Cols*cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < out.shape.Rows; r++ {
		src := a.rowData(r % a.shape.Rows)
		dst := out.rowData(r)
		for c := 0; c < cols; c++ {
			copy(dst[c*a.shape.Cols:], src)
		}
	}
	return out, nil
}
