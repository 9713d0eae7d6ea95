package ndarray

// Equal returns a boolean array holding a[i] == b[i].
func Equal[T Element](a, b *NdArray[T]) (*NdArray[bool], error) {
	return Combine(a, b, func(x, y T) bool { return x == y })
}

// NotEqual returns a boolean array holding a[i] != b[i].
func NotEqual[T Element](a, b *NdArray[T]) (*NdArray[bool], error) {
	return Combine(a, b, func(x, y T) bool { return x != y })
}

// Less returns a boolean array holding a[i] < b[i].
func Less[T Ordered](a, b *NdArray[T]) (*NdArray[bool], error) {
	return Combine(a, b, func(x, y T) bool { return x < y })
}

// LessEqual returns a boolean array holding a[i] <= b[i].
func LessEqual[T Ordered](a, b *NdArray[T]) (*NdArray[bool], error) {
	return Combine(a, b, func(x, y T) bool { return x <= y })
}

// Greater returns a boolean array holding a[i] > b[i].
func Greater[T Ordered](a, b *NdArray[T]) (*NdArray[bool], error) {
	return Combine(a, b, func(x, y T) bool { return x > y })
}

// GreaterEqual returns a boolean array holding a[i] >= b[i].
func GreaterEqual[T Ordered](a, b *NdArray[T]) (*NdArray[bool], error) {
	return Combine(a, b, func(x, y T) bool { return x >= y })
}

// LogicalAnd returns a boolean array holding a[i] != 0 && b[i] != 0.
func LogicalAnd[T Element](a, b *NdArray[T]) (*NdArray[bool], error) {
	var zero T
	return Combine(a, b, func(x, y T) bool { return x != zero && y != zero })
}

// LogicalOr returns a boolean array holding a[i] != 0 || b[i] != 0.
func LogicalOr[T Element](a, b *NdArray[T]) (*NdArray[bool], error) {
	var zero T
	return Combine(a, b, func(x, y T) bool { return x != zero || y != zero })
}

// LogicalNot returns a boolean array holding a[i] == 0.
func LogicalNot[T Element](a *NdArray[T]) *NdArray[bool] {
	var zero T
	return Map(a, func(x T) bool { return x == zero })
}

// ArrayEqual reports whether a and b have the same shape and elements.
// NaN elements never compare equal.
func ArrayEqual[T Element](a, b *NdArray[T]) bool {
	if a.shape != b.shape {
		return false
	}
	eq, err := Equal(a, b)
	if err != nil {
		return false
	}
	return All(eq)
}

// All reports whether every element is non-zero. It is true for an empty array.
func All[T Element](a *NdArray[T]) bool {
	var zero T
	for _, v := range a.store.data {
		if v == zero {
			return false
		}
	}
	return true
}

// Any reports whether at least one element is non-zero.
func Any[T Element](a *NdArray[T]) bool {
	return CountNonZero(a) > 0
}

// CountNonZero returns the number of non-zero elements.
func CountNonZero[T Element](a *NdArray[T]) int {
	var zero T
	n := 0
	for _, v := range a.store.data {
		if v != zero {
			n++
		}
	}
	return n
}
