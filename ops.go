// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import "github.com/born-ml/ndarray/internal/ndarray"

// Combine applies op elementwise to a and b. Shapes must be equal, or one
// operand must be 1x1; anything else fails with ErrShapeMismatch.
//
// Example:
//
//	dist, err := ndarray.Combine(xs, ys, func(x, y float64) float64 { return math.Hypot(x, y) })
func Combine[A, B, R Element](a *NdArray[A], b *NdArray[B], op func(A, B) R) (*NdArray[R], error) {
	return ndarray.Combine(a, b, op)
}

// CombineInto applies op elementwise in place. b must match dst's shape or be 1x1.
func CombineInto[T, B Element](dst *NdArray[T], b *NdArray[B], op func(T, B) T) error {
	return ndarray.CombineInto(dst, b, op)
}

// Map returns a new array with fn applied to every element.
func Map[T, R Element](a *NdArray[T], fn func(T) R) *NdArray[R] {
	return ndarray.Map(a, fn)
}

// Arithmetic

// Add returns a + b elementwise.
func Add[T Number](a, b *NdArray[T]) (*NdArray[T], error) {
	return ndarray.Add(a, b)
}

// Sub returns a - b elementwise.
func Sub[T Number](a, b *NdArray[T]) (*NdArray[T], error) {
	return ndarray.Sub(a, b)
}

// Mul returns a * b elementwise.
func Mul[T Number](a, b *NdArray[T]) (*NdArray[T], error) {
	return ndarray.Mul(a, b)
}

// Div returns a / b elementwise. Integer division by zero fails with ErrDivideByZero.
func Div[T Number](a, b *NdArray[T]) (*NdArray[T], error) {
	return ndarray.Div(a, b)
}

// Mod returns the remainder of a / b elementwise.
func Mod[T Real](a, b *NdArray[T]) (*NdArray[T], error) {
	return ndarray.Mod(a, b)
}

// Negate returns -a.
func Negate[T Number](a *NdArray[T]) *NdArray[T] {
	return ndarray.Negate(a)
}

// AddScalar returns a + v.
func AddScalar[T Number](a *NdArray[T], v T) (*NdArray[T], error) {
	return ndarray.AddScalar(a, v)
}

// SubScalar returns a - v.
func SubScalar[T Number](a *NdArray[T], v T) (*NdArray[T], error) {
	return ndarray.SubScalar(a, v)
}

// ScalarSub returns v - a.
func ScalarSub[T Number](v T, a *NdArray[T]) (*NdArray[T], error) {
	return ndarray.ScalarSub(v, a)
}

// MulScalar returns a * v.
func MulScalar[T Number](a *NdArray[T], v T) (*NdArray[T], error) {
	return ndarray.MulScalar(a, v)
}

// DivScalar returns a / v.
func DivScalar[T Number](a *NdArray[T], v T) (*NdArray[T], error) {
	return ndarray.DivScalar(a, v)
}

// ScalarDiv returns v / a.
func ScalarDiv[T Number](v T, a *NdArray[T]) (*NdArray[T], error) {
	return ndarray.ScalarDiv(v, a)
}

// AddAssign performs a += b in place.
func AddAssign[T Number](a, b *NdArray[T]) error {
	return ndarray.AddAssign(a, b)
}

// SubAssign performs a -= b in place.
func SubAssign[T Number](a, b *NdArray[T]) error {
	return ndarray.SubAssign(a, b)
}

// MulAssign performs a *= b in place.
func MulAssign[T Number](a, b *NdArray[T]) error {
	return ndarray.MulAssign(a, b)
}

// DivAssign performs a /= b in place.
func DivAssign[T Number](a, b *NdArray[T]) error {
	return ndarray.DivAssign(a, b)
}

// ModAssign performs a %= b in place.
func ModAssign[T Real](a, b *NdArray[T]) error {
	return ndarray.ModAssign(a, b)
}

// Mixed real and complex arithmetic

// ToComplex converts a real array into a complex one.
func ToComplex[C Complex, R Real](a *NdArray[R]) *NdArray[C] {
	return ndarray.ToComplex[C](a)
}

// RealPart returns the real parts of a complex array.
func RealPart[F Float, C Complex](a *NdArray[C]) *NdArray[F] {
	return ndarray.RealPart[F](a)
}

// ImagPart returns the imaginary parts of a complex array.
func ImagPart[F Float, C Complex](a *NdArray[C]) *NdArray[F] {
	return ndarray.ImagPart[F](a)
}

// AddRealComplex returns a + b for a real a and a complex b.
func AddRealComplex[R Real, C Complex](a *NdArray[R], b *NdArray[C]) (*NdArray[C], error) {
	return ndarray.AddRealComplex(a, b)
}

// AddComplexReal returns a + b for a complex a and a real b.
func AddComplexReal[C Complex, R Real](a *NdArray[C], b *NdArray[R]) (*NdArray[C], error) {
	return ndarray.AddComplexReal(a, b)
}

// SubRealComplex returns a - b for a real a and a complex b.
func SubRealComplex[R Real, C Complex](a *NdArray[R], b *NdArray[C]) (*NdArray[C], error) {
	return ndarray.SubRealComplex(a, b)
}

// SubComplexReal returns a - b for a complex a and a real b.
func SubComplexReal[C Complex, R Real](a *NdArray[C], b *NdArray[R]) (*NdArray[C], error) {
	return ndarray.SubComplexReal(a, b)
}

// MulRealComplex returns a * b for a real a and a complex b.
func MulRealComplex[R Real, C Complex](a *NdArray[R], b *NdArray[C]) (*NdArray[C], error) {
	return ndarray.MulRealComplex(a, b)
}

// MulComplexReal returns a * b for a complex a and a real b.
func MulComplexReal[C Complex, R Real](a *NdArray[C], b *NdArray[R]) (*NdArray[C], error) {
	return ndarray.MulComplexReal(a, b)
}

// DivRealComplex returns a / b for a real a and a complex b.
func DivRealComplex[R Real, C Complex](a *NdArray[R], b *NdArray[C]) (*NdArray[C], error) {
	return ndarray.DivRealComplex(a, b)
}

// DivComplexReal returns a / b for a complex a and a real b.
func DivComplexReal[C Complex, R Real](a *NdArray[C], b *NdArray[R]) (*NdArray[C], error) {
	return ndarray.DivComplexReal(a, b)
}

// Bitwise

// BitAnd returns a & b elementwise.
func BitAnd[T Integer](a, b *NdArray[T]) (*NdArray[T], error) {
	return ndarray.BitAnd(a, b)
}

// BitOr returns a | b elementwise.
func BitOr[T Integer](a, b *NdArray[T]) (*NdArray[T], error) {
	return ndarray.BitOr(a, b)
}

// BitXor returns a ^ b elementwise.
func BitXor[T Integer](a, b *NdArray[T]) (*NdArray[T], error) {
	return ndarray.BitXor(a, b)
}

// BitNot returns ^a.
func BitNot[T Integer](a *NdArray[T]) *NdArray[T] {
	return ndarray.BitNot(a)
}

// ShiftLeft returns a << n.
func ShiftLeft[T Integer](a *NdArray[T], n uint) *NdArray[T] {
	return ndarray.ShiftLeft(a, n)
}

// ShiftRight returns a >> n.
func ShiftRight[T Integer](a *NdArray[T], n uint) *NdArray[T] {
	return ndarray.ShiftRight(a, n)
}

// Comparison and logic (return NdArray[bool])

// Equal returns a == b elementwise.
func Equal[T Element](a, b *NdArray[T]) (*NdArray[bool], error) {
	return ndarray.Equal(a, b)
}

// NotEqual returns a != b elementwise.
func NotEqual[T Element](a, b *NdArray[T]) (*NdArray[bool], error) {
	return ndarray.NotEqual(a, b)
}

// Less returns a < b elementwise.
func Less[T Ordered](a, b *NdArray[T]) (*NdArray[bool], error) {
	return ndarray.Less(a, b)
}

// LessEqual returns a <= b elementwise.
func LessEqual[T Ordered](a, b *NdArray[T]) (*NdArray[bool], error) {
	return ndarray.LessEqual(a, b)
}

// Greater returns a > b elementwise.
func Greater[T Ordered](a, b *NdArray[T]) (*NdArray[bool], error) {
	return ndarray.Greater(a, b)
}

// GreaterEqual returns a >= b elementwise.
func GreaterEqual[T Ordered](a, b *NdArray[T]) (*NdArray[bool], error) {
	return ndarray.GreaterEqual(a, b)
}

// LogicalAnd returns a != 0 && b != 0 elementwise.
func LogicalAnd[T Element](a, b *NdArray[T]) (*NdArray[bool], error) {
	return ndarray.LogicalAnd(a, b)
}

// LogicalOr returns a != 0 || b != 0 elementwise.
func LogicalOr[T Element](a, b *NdArray[T]) (*NdArray[bool], error) {
	return ndarray.LogicalOr(a, b)
}

// LogicalNot returns a == 0 elementwise.
func LogicalNot[T Element](a *NdArray[T]) *NdArray[bool] {
	return ndarray.LogicalNot(a)
}

// ArrayEqual reports whether a and b have the same shape and elements.
func ArrayEqual[T Element](a, b *NdArray[T]) bool {
	return ndarray.ArrayEqual(a, b)
}

// All reports whether every element is non-zero.
func All[T Element](a *NdArray[T]) bool {
	return ndarray.All(a)
}

// Any reports whether at least one element is non-zero.
func Any[T Element](a *NdArray[T]) bool {
	return ndarray.Any(a)
}

// CountNonZero returns the number of non-zero elements.
func CountNonZero[T Element](a *NdArray[T]) int {
	return ndarray.CountNonZero(a)
}
