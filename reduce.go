// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import "github.com/born-ml/ndarray/internal/ndarray"

// Sum adds the elements along axis. Empty lanes sum to zero.
func Sum[T Number](a *NdArray[T], axis Axis) (*NdArray[T], error) {
	return ndarray.Sum(a, axis)
}

// Prod multiplies the elements along axis.
func Prod[T Number](a *NdArray[T], axis Axis) (*NdArray[T], error) {
	return ndarray.Prod(a, axis)
}

// Mean averages the elements along axis.
func Mean[T Float](a *NdArray[T], axis Axis) (*NdArray[T], error) {
	return ndarray.Mean(a, axis)
}

// Median returns the middle element along axis, averaging even-length lanes.
func Median[T Real](a *NdArray[T], axis Axis) (*NdArray[T], error) {
	return ndarray.Median(a, axis)
}

// Min returns the smallest element along axis.
func Min[T Ordered](a *NdArray[T], axis Axis) (*NdArray[T], error) {
	return ndarray.Min(a, axis)
}

// Max returns the largest element along axis.
func Max[T Ordered](a *NdArray[T], axis Axis) (*NdArray[T], error) {
	return ndarray.Max(a, axis)
}

// ArgMin returns the index of the first smallest element along axis.
func ArgMin[T Ordered](a *NdArray[T], axis Axis) (*NdArray[int], error) {
	return ndarray.ArgMin(a, axis)
}

// ArgMax returns the index of the first largest element along axis.
func ArgMax[T Ordered](a *NdArray[T], axis Axis) (*NdArray[int], error) {
	return ndarray.ArgMax(a, axis)
}

// Ptp returns max - min along axis.
func Ptp[T Ordered](a *NdArray[T], axis Axis) (*NdArray[T], error) {
	return ndarray.Ptp(a, axis)
}

// CumSum returns the running sum along axis.
func CumSum[T Number](a *NdArray[T], axis Axis) (*NdArray[T], error) {
	return ndarray.CumSum(a, axis)
}

// CumProd returns the running product along axis.
func CumProd[T Number](a *NdArray[T], axis Axis) (*NdArray[T], error) {
	return ndarray.CumProd(a, axis)
}

// AllAxis reports, per lane, whether every element is non-zero.
func AllAxis[T Element](a *NdArray[T], axis Axis) (*NdArray[bool], error) {
	return ndarray.AllAxis(a, axis)
}

// AnyAxis reports, per lane, whether some element is non-zero.
func AnyAxis[T Element](a *NdArray[T], axis Axis) (*NdArray[bool], error) {
	return ndarray.AnyAxis(a, axis)
}

// NoneAxis reports, per lane, whether every element is zero.
func NoneAxis[T Element](a *NdArray[T], axis Axis) (*NdArray[bool], error) {
	return ndarray.NoneAxis(a, axis)
}

// Contains reports, per lane, whether value occurs.
func Contains[T Element](a *NdArray[T], value T, axis Axis) (*NdArray[bool], error) {
	return ndarray.Contains(a, value, axis)
}

// IsSorted reports, per lane, whether the elements ascend.
func IsSorted[T Ordered](a *NdArray[T], axis Axis) (*NdArray[bool], error) {
	return ndarray.IsSorted(a, axis)
}

// ArgSort returns the indices that would sort a stably along axis.
func ArgSort[T Ordered](a *NdArray[T], axis Axis) (*NdArray[int], error) {
	return ndarray.ArgSort(a, axis)
}

// Clip returns a copy with every element limited to [lo, hi].
func Clip[T Ordered](a *NdArray[T], lo, hi T) (*NdArray[T], error) {
	return ndarray.Clip(a, lo, hi)
}

// Round rounds every element to decimals places, halves to even.
func Round[T Float](a *NdArray[T], decimals int) *NdArray[T] {
	return ndarray.Round(a, decimals)
}

// AsType converts every element to another real type.
//
// Example:
//
//	f := ndarray.AsType[float64](counts)
func AsType[R, T Real](a *NdArray[T]) *NdArray[R] {
	return ndarray.AsType[R](a)
}

// AsComplexType converts between complex precisions.
func AsComplexType[R, T Complex](a *NdArray[T]) *NdArray[R] {
	return ndarray.AsComplexType[R](a)
}

// NonZero returns the row and column indices of the non-zero elements.
func NonZero[T Element](a *NdArray[T]) (rows, cols *NdArray[int]) {
	return ndarray.NonZero(a)
}

// FlatNonZero returns the flat indices of the non-zero elements.
func FlatNonZero[T Element](a *NdArray[T]) *NdArray[int] {
	return ndarray.FlatNonZero(a)
}

// Trace sums the diagonal selected by offset and axis.
func Trace[T Number](a *NdArray[T], offset int, axis Axis) (T, error) {
	return ndarray.Trace(a, offset, axis)
}
