// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package interop exchanges float64 arrays with gonum's mat package,
// sharing buffers where ownership allows.
//
// Example:
//
//	d, err := interop.DenseView(a) // *mat.Dense over a's buffer
//	var inv mat.Dense
//	err = inv.Inverse(d)
//	b, err := interop.FromMatrix(&inv)
package interop

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ndarray"
	"github.com/born-ml/ndarray/internal/interop"
)

// DenseView returns a mat.Dense that shares a's buffer.
func DenseView(a *ndarray.NdArray[float64]) (*mat.Dense, error) {
	return interop.DenseView(a)
}

// FromMatrix copies any gonum matrix into a new owning array.
func FromMatrix(m mat.Matrix) (*ndarray.NdArray[float64], error) {
	return interop.FromMatrix(m)
}

// ShellFromDense wraps a contiguous mat.Dense as a Shell array.
func ShellFromDense(d *mat.Dense) (*ndarray.NdArray[float64], error) {
	return interop.ShellFromDense(d)
}

// Dot returns the matrix product a·b.
func Dot(a, b *ndarray.NdArray[float64]) (*ndarray.NdArray[float64], error) {
	return interop.Dot(a, b)
}
