package ndarray

// BitAnd returns a & b elementwise.
func BitAnd[T Integer](a, b *NdArray[T]) (*NdArray[T], error) {
	return Combine(a, b, func(x, y T) T { return x & y })
}

// BitOr returns a | b elementwise.
func BitOr[T Integer](a, b *NdArray[T]) (*NdArray[T], error) {
	return Combine(a, b, func(x, y T) T { return x | y })
}

// BitXor returns a ^ b elementwise.
func BitXor[T Integer](a, b *NdArray[T]) (*NdArray[T], error) {
	return Combine(a, b, func(x, y T) T { return x ^ y })
}

// BitNot returns ^a elementwise.
func BitNot[T Integer](a *NdArray[T]) *NdArray[T] {
	return Map(a, func(x T) T { return ^x })
}

// ShiftLeft returns a << n elementwise.
func ShiftLeft[T Integer](a *NdArray[T], n uint) *NdArray[T] {
	return Map(a, func(x T) T { return x << n })
}

// ShiftRight returns a >> n elementwise.
func ShiftRight[T Integer](a *NdArray[T], n uint) *NdArray[T] {
	return Map(a, func(x T) T { return x >> n })
}
