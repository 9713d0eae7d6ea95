package ndarray

import "fmt"

// Combine applies op elementwise to a and b under the two broadcasting rules:
//
//  1. equal shapes combine pairwise and keep that shape;
//  2. a 1x1 operand is repeated against every element of the other.
//
// Anything else fails with ErrShapeMismatch. The result owns a new buffer.
// Every binary operator in this package is built on Combine.
//
// Example:
//
//	sum, err := ndarray.Combine(a, ndarray.Scalar(10), func(x, y int32) int32 { return x + y })
func Combine[A, B, R Element](a *NdArray[A], b *NdArray[B], op func(A, B) R) (*NdArray[R], error) {
	switch {
	case a.shape == b.shape:
		out, err := FromShape[R](a.shape)
		if err != nil {
			return nil, err
		}
		dst, x, y := out.store.data, a.store.data, b.store.data
		for i := range dst {
			dst[i] = op(x[i], y[i])
		}
		return out, nil
	case b.IsScalar():
		out, err := FromShape[R](a.shape)
		if err != nil {
			return nil, err
		}
		dst, x, v := out.store.data, a.store.data, b.store.data[0]
		for i := range dst {
			dst[i] = op(x[i], v)
		}
		return out, nil
	case a.IsScalar():
		out, err := FromShape[R](b.shape)
		if err != nil {
			return nil, err
		}
		dst, v, y := out.store.data, a.store.data[0], b.store.data
		for i := range dst {
			dst[i] = op(v, y[i])
		}
		return out, nil
	default:
		return nil, mismatch(a.shape, b.shape)
	}
}

// CombineInto applies op elementwise in place: dst[i] = op(dst[i], b[i]).
// b must have the same shape as dst or be 1x1.
func CombineInto[T, B Element](dst *NdArray[T], b *NdArray[B], op func(T, B) T) error {
	x := dst.store.data
	switch {
	case dst.shape == b.shape:
		y := b.store.data
		for i := range x {
			x[i] = op(x[i], y[i])
		}
	case b.IsScalar():
		v := b.store.data[0]
		for i := range x {
			x[i] = op(x[i], v)
		}
	default:
		return mismatch(dst.shape, b.shape)
	}
	return nil
}

// Map returns a new array with fn applied to every element.
func Map[T, R Element](a *NdArray[T], fn func(T) R) *NdArray[R] {
	out := &NdArray[R]{shape: a.shape}
	buf, err := allocate[R](a.Size())
	if err != nil {
		panic(err)
	}
	out.store = storage[R]{data: buf, policy: Copy}
	for i, v := range a.store.data {
		buf[i] = fn(v)
	}
	return out
}

func mismatch(a, b Shape) error {
	return fmt.Errorf("operands could not be broadcast together with shapes %v and %v: %w", a, b, ErrShapeMismatch)
}
