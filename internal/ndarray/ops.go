package ndarray

import (
	"fmt"
	"math"
)

// Add returns a + b elementwise.
//
// Example:
//
//	c, err := ndarray.Add(a, b)
//	d, err := ndarray.Add(a, ndarray.Scalar[float64](1)) // broadcast
func Add[T Number](a, b *NdArray[T]) (*NdArray[T], error) {
	return Combine(a, b, add[T])
}

// Sub returns a - b elementwise.
func Sub[T Number](a, b *NdArray[T]) (*NdArray[T], error) {
	return Combine(a, b, sub[T])
}

// Mul returns a * b elementwise.
func Mul[T Number](a, b *NdArray[T]) (*NdArray[T], error) {
	return Combine(a, b, mul[T])
}

// Div returns a / b elementwise. Integer division by zero fails with
// ErrDivideByZero; floating-point division follows IEEE 754.
func Div[T Number](a, b *NdArray[T]) (*NdArray[T], error) {
	if err := checkDivisor(b); err != nil {
		return nil, err
	}
	return Combine(a, b, div[T])
}

// Mod returns the remainder of a / b elementwise. Integers use Go's %, which
// truncates toward zero; floats use math.Mod.
func Mod[T Real](a, b *NdArray[T]) (*NdArray[T], error) {
	if err := checkDivisor(b); err != nil {
		return nil, err
	}
	return Combine(a, b, modFunc[T]())
}

// Negate returns -a.
func Negate[T Number](a *NdArray[T]) *NdArray[T] {
	return Map(a, func(v T) T { return -v })
}

// AddScalar returns a + v.
func AddScalar[T Number](a *NdArray[T], v T) (*NdArray[T], error) {
	return Add(a, Scalar(v))
}

// SubScalar returns a - v.
func SubScalar[T Number](a *NdArray[T], v T) (*NdArray[T], error) {
	return Sub(a, Scalar(v))
}

// ScalarSub returns v - a.
func ScalarSub[T Number](v T, a *NdArray[T]) (*NdArray[T], error) {
	return Sub(Scalar(v), a)
}

// MulScalar returns a * v.
func MulScalar[T Number](a *NdArray[T], v T) (*NdArray[T], error) {
	return Mul(a, Scalar(v))
}

// DivScalar returns a / v.
func DivScalar[T Number](a *NdArray[T], v T) (*NdArray[T], error) {
	return Div(a, Scalar(v))
}

// ScalarDiv returns v / a.
func ScalarDiv[T Number](v T, a *NdArray[T]) (*NdArray[T], error) {
	return Div(Scalar(v), a)
}

// AddAssign performs a += b in place. b must match a's shape or be 1x1.
func AddAssign[T Number](a, b *NdArray[T]) error {
	return CombineInto(a, b, add[T])
}

// SubAssign performs a -= b in place.
func SubAssign[T Number](a, b *NdArray[T]) error {
	return CombineInto(a, b, sub[T])
}

// MulAssign performs a *= b in place.
func MulAssign[T Number](a, b *NdArray[T]) error {
	return CombineInto(a, b, mul[T])
}

// DivAssign performs a /= b in place. a is left untouched on error.
func DivAssign[T Number](a, b *NdArray[T]) error {
	if err := checkDivisor(b); err != nil {
		return err
	}
	return CombineInto(a, b, div[T])
}

// ModAssign performs a %= b in place.
func ModAssign[T Real](a, b *NdArray[T]) error {
	if err := checkDivisor(b); err != nil {
		return err
	}
	return CombineInto(a, b, modFunc[T]())
}

func add[T Number](x, y T) T { return x + y }
func sub[T Number](x, y T) T { return x - y }
func mul[T Number](x, y T) T { return x * y }
func div[T Number](x, y T) T { return x / y }

// modFunc picks the remainder operation for T once, outside the element loop.
// % is not defined on the Real type set, so integers go through 64-bit values.
func modFunc[T Real]() func(x, y T) T {
	switch dt := DataTypeOf[T](); {
	case dt == Uint8 || dt == Uint16 || dt == Uint32 || dt == Uint64 || dt == Uint || dt == Uintptr:
		return func(x, y T) T { return T(uint64(x) % uint64(y)) }
	case dt.IsInteger():
		return func(x, y T) T { return T(int64(x) % int64(y)) }
	default:
		return func(x, y T) T { return T(math.Mod(float64(x), float64(y))) }
	}
}

// checkDivisor rejects integer divisors that contain a zero.
func checkDivisor[T Element](b *NdArray[T]) error {
	if !isIntegral[T]() {
		return nil
	}
	var zero T
	for i, v := range b.store.data {
		if v == zero {
			return fmt.Errorf("divisor element %d of shape %v is zero: %w", i, b.shape, ErrDivideByZero)
		}
	}
	return nil
}
