package ndarray

// Mixed real/complex arithmetic. Go has no implicit numeric promotion, so each
// combination is spelled out; the real operand is widened to the complex
// type's component precision, never the other way round.

func promote[R Real, C Complex](x R) C {
	return C(complex(float64(x), 0))
}

// ToComplex converts a real array into a complex one with zero imaginary parts.
func ToComplex[C Complex, R Real](a *NdArray[R]) *NdArray[C] {
	return Map(a, promote[R, C])
}

// RealPart returns the real parts of a complex array.
func RealPart[F Float, C Complex](a *NdArray[C]) *NdArray[F] {
	return Map(a, func(v C) F { return F(real(complex128(v))) })
}

// ImagPart returns the imaginary parts of a complex array.
func ImagPart[F Float, C Complex](a *NdArray[C]) *NdArray[F] {
	return Map(a, func(v C) F { return F(imag(complex128(v))) })
}

// AddRealComplex returns a + b for a real a and a complex b.
func AddRealComplex[R Real, C Complex](a *NdArray[R], b *NdArray[C]) (*NdArray[C], error) {
	return Combine(a, b, func(x R, y C) C { return promote[R, C](x) + y })
}

// AddComplexReal returns a + b for a complex a and a real b.
func AddComplexReal[C Complex, R Real](a *NdArray[C], b *NdArray[R]) (*NdArray[C], error) {
	return Combine(a, b, func(x C, y R) C { return x + promote[R, C](y) })
}

// SubRealComplex returns a - b for a real a and a complex b.
func SubRealComplex[R Real, C Complex](a *NdArray[R], b *NdArray[C]) (*NdArray[C], error) {
	return Combine(a, b, func(x R, y C) C { return promote[R, C](x) - y })
}

// SubComplexReal returns a - b for a complex a and a real b.
func SubComplexReal[C Complex, R Real](a *NdArray[C], b *NdArray[R]) (*NdArray[C], error) {
	return Combine(a, b, func(x C, y R) C { return x - promote[R, C](y) })
}

// MulRealComplex returns a * b for a real a and a complex b.
func MulRealComplex[R Real, C Complex](a *NdArray[R], b *NdArray[C]) (*NdArray[C], error) {
	return Combine(a, b, func(x R, y C) C { return promote[R, C](x) * y })
}

// MulComplexReal returns a * b for a complex a and a real b.
func MulComplexReal[C Complex, R Real](a *NdArray[C], b *NdArray[R]) (*NdArray[C], error) {
	return Combine(a, b, func(x C, y R) C { return x * promote[R, C](y) })
}

// DivRealComplex returns a / b for a real a and a complex b.
func DivRealComplex[R Real, C Complex](a *NdArray[R], b *NdArray[C]) (*NdArray[C], error) {
	return Combine(a, b, func(x R, y C) C { return promote[R, C](x) / y })
}

// DivComplexReal returns a / b for a complex a and a real b.
func DivComplexReal[C Complex, R Real](a *NdArray[C], b *NdArray[R]) (*NdArray[C], error) {
	return Combine(a, b, func(x C, y R) C { return x / promote[R, C](y) })
}
