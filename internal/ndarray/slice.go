package ndarray

import (
	"fmt"
	"iter"
)

// Slice selects a range of indices along one dimension using Python slicing
// rules: negative bounds count from the end, out-of-range bounds are clamped,
// and a negative step walks backwards. Start and stop may be left open.
//
// Example:
//
//	s := ndarray.NewSlice(-3, -1)  // size 10 -> 7, 8
//	t := ndarray.NewSliceStep(2, 8, 2) // size 10 -> 2, 4, 6
//	r := ndarray.SliceAll().WithStep(-1) // reversed
type Slice struct {
	start, stop       int
	step              int
	hasStart, hasStop bool
}

// NewSlice returns the slice [start:stop].
func NewSlice(start, stop int) Slice {
	return Slice{start: start, stop: stop, step: 1, hasStart: true, hasStop: true}
}

// NewSliceStep returns the slice [start:stop:step].
func NewSliceStep(start, stop, step int) Slice {
	return Slice{start: start, stop: stop, step: step, hasStart: true, hasStop: true}
}

// SliceAll returns the slice [:].
func SliceAll() Slice {
	return Slice{step: 1}
}

// SliceFrom returns the slice [start:].
func SliceFrom(start int) Slice {
	return Slice{start: start, step: 1, hasStart: true}
}

// SliceTo returns the slice [:stop].
func SliceTo(stop int) Slice {
	return Slice{stop: stop, step: 1, hasStop: true}
}

// WithStep returns a copy of s with the given step.
func (s Slice) WithStep(step int) Slice {
	s.step = step
	return s
}

// Step returns the configured step.
func (s Slice) Step() int {
	return s.step
}

// Indices resolves the slice against a dimension of the given size.
// The returned bounds describe the half-open walk start, start+step, ...
// that stops before reaching stop.
func (s Slice) Indices(size int) (start, stop, step int, err error) {
	if s.step == 0 {
		return 0, 0, 0, fmt.Errorf("slice %v: step cannot be zero: %w", s, ErrInvalidArgument)
	}
	if size < 0 {
		return 0, 0, 0, fmt.Errorf("slice %v: negative size %d: %w", s, size, ErrInvalidArgument)
	}
	step = s.step

	lower, upper := 0, size
	if step < 0 {
		lower, upper = -1, size-1
	}

	resolve := func(v int, set bool, def int) int {
		if !set {
			return def
		}
		if v < 0 {
			v += size
			if v < lower {
				v = lower
			}
			return v
		}
		if v > upper {
			v = upper
		}
		return v
	}

	if step > 0 {
		start = resolve(s.start, s.hasStart, lower)
		stop = resolve(s.stop, s.hasStop, upper)
	} else {
		start = resolve(s.start, s.hasStart, upper)
		stop = resolve(s.stop, s.hasStop, lower)
	}
	return start, stop, step, nil
}

// NumElements returns how many indices the slice selects in a dimension of size.
func (s Slice) NumElements(size int) (int, error) {
	start, stop, step, err := s.Indices(size)
	if err != nil {
		return 0, err
	}
	return countSteps(start, stop, step), nil
}

func countSteps(start, stop, step int) int {
	switch {
	case step > 0 && start < stop:
		return (stop-start-1)/step + 1
	case step < 0 && stop < start:
		return (start-stop-1)/(-step) + 1
	default:
		return 0
	}
}

// ToIndices materializes the selected indices.
func (s Slice) ToIndices(size int) ([]int, error) {
	start, stop, step, err := s.Indices(size)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, countSteps(start, stop, step))
	for i := range walk(start, stop, step) {
		out = append(out, i)
	}
	return out, nil
}

// All returns an iterator over the selected indices without materializing them.
func (s Slice) All(size int) (iter.Seq[int], error) {
	start, stop, step, err := s.Indices(size)
	if err != nil {
		return nil, err
	}
	return walk(start, stop, step), nil
}

func walk(start, stop, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		n := countSteps(start, stop, step)
		for k, i := 0, start; k < n; k, i = k+1, i+step {
			if !yield(i) {
				return
			}
		}
	}
}

// String returns the slice as "[start:stop:step]" with open bounds left blank.
func (s Slice) String() string {
	start, stop := "", ""
	if s.hasStart {
		start = fmt.Sprint(s.start)
	}
	if s.hasStop {
		stop = fmt.Sprint(s.stop)
	}
	return fmt.Sprintf("[%s:%s:%d]", start, stop, s.step)
}
