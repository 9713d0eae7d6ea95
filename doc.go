// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides dense, row-major, two-dimensional typed arrays.
//
// # Overview
//
// NdArray[T] stores rows*cols elements of T contiguously, row after row.
// This package provides:
//   - Generic arrays over every Go numeric kind and bool
//   - Python-style slicing with negative indices and steps
//   - Flat and column iterators, read-only and mutable
//   - Elementwise operators with scalar broadcasting
//   - A binary file format with checksums and byte-order control
//
// # Basic Usage
//
//	import "github.com/born-ml/ndarray"
//
//	func main() {
//	    a, _ := ndarray.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
//
//	    v, _ := a.AtRC(1, 0)                       // 4
//	    t := a.Transpose()                         // 3x2
//	    b, _ := ndarray.Add(a, ndarray.Scalar(10.0)) // broadcast
//	}
//
// # Ownership
//
// An array either owns its buffer (Copy) or borrows the caller's slice
// (Shell). Both behave the same through this API:
//
//	buf := []float64{1, 2, 3, 4}
//	view, _ := ndarray.FromBufferShape(buf, 2, 2, ndarray.Shell)
//	buf[0] = 10 // visible through view
//
// Clone always produces an owning copy. Move transfers the buffer and its
// policy, leaving the source empty. Release drops the buffer; for a Shell
// it only forgets the caller's slice.
//
// # Broadcasting
//
// Binary operators accept operands of equal shape, or a 1x1 operand on
// either side. Any other combination fails with ErrShapeMismatch:
//
//	c, err := ndarray.Mul(a, b)                    // a, b both 2x3
//	d, err := ndarray.Sub(ndarray.Scalar(1.0), a)  // 1x1 against 2x3
//
// # Errors
//
// Failures are reported with sentinel errors (ErrInvalidArgument,
// ErrOutOfRange, ErrShapeMismatch, ErrInvalidSize, ErrAllocationFailure,
// ErrDivideByZero) wrapped with context; match them with errors.Is.
//
// # Serialization
//
//	err := ndarray.ToFile("a.ndar", a, ndarray.DefaultOptions())
//	b, err := ndarray.FromFile[float64]("a.ndar")
//
// Arrays are not safe for concurrent mutation.
package ndarray
