// Package interop bridges arrays to gonum's mat package.
//
// Arrays and mat.Dense share the same row-major float64 layout, so the
// bridge shares buffers instead of copying wherever ownership allows.
package interop

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// DenseView returns a mat.Dense backed by a's buffer (zero-copy).
// Writes through either side are visible to the other. mat.Dense cannot
// represent an empty matrix, so empty arrays fail with ErrInvalidSize.
func DenseView(a *ndarray.NdArray[float64]) (*mat.Dense, error) {
	if a.IsEmpty() {
		return nil, fmt.Errorf("dense view of %v array: %w", a.Shape(), ndarray.ErrInvalidSize)
	}
	if a.Endian().Resolve() != ndarray.Native.Resolve() {
		return nil, fmt.Errorf("dense view needs native byte order, array is %s: %w", a.Endian(), ndarray.ErrInvalidArgument)
	}
	return mat.NewDense(a.NumRows(), a.NumCols(), a.Data()), nil
}

// FromMatrix copies any gonum matrix into a new array that owns its buffer.
func FromMatrix(m mat.Matrix) (*ndarray.NdArray[float64], error) {
	rows, cols := m.Dims()
	out, err := ndarray.New[float64](rows, cols)
	if err != nil {
		return nil, err
	}
	if d, ok := m.(mat.RawMatrixer); ok {
		raw := d.RawMatrix()
		dst := out.Data()
		for r := 0; r < rows; r++ {
			copy(dst[r*cols:(r+1)*cols], raw.Data[r*raw.Stride:r*raw.Stride+cols])
		}
		return out, nil
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if err := out.SetRC(r, c, m.At(r, c)); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// ShellFromDense wraps d's backing slice as a Shell array (zero-copy).
// The dense must be contiguous: a view produced by Slice on a wider matrix
// has a stride larger than its column count and is rejected.
func ShellFromDense(d *mat.Dense) (*ndarray.NdArray[float64], error) {
	raw := d.RawMatrix()
	if raw.Stride != raw.Cols {
		return nil, fmt.Errorf("dense %dx%d has stride %d, need a contiguous matrix: %w",
			raw.Rows, raw.Cols, raw.Stride, ndarray.ErrInvalidArgument)
	}
	return ndarray.FromBufferShape(raw.Data, raw.Rows, raw.Cols, ndarray.Shell)
}

// Dot returns the matrix product a·b. The product is written by gonum
// straight into the result's owned buffer.
func Dot(a, b *ndarray.NdArray[float64]) (*ndarray.NdArray[float64], error) {
	if a.NumCols() != b.NumRows() {
		return nil, fmt.Errorf("dot: inner dimensions differ for shapes %v and %v: %w",
			a.Shape(), b.Shape(), ndarray.ErrShapeMismatch)
	}
	out, err := ndarray.New[float64](a.NumRows(), b.NumCols())
	if err != nil {
		return nil, err
	}
	if out.IsEmpty() || a.NumCols() == 0 {
		// Zero-length operands leave the zeroed result as is.
		return out, nil
	}

	av, err := DenseView(a)
	if err != nil {
		return nil, fmt.Errorf("dot: left operand: %w", err)
	}
	bv, err := DenseView(b)
	if err != nil {
		return nil, fmt.Errorf("dot: right operand: %w", err)
	}
	dst := mat.NewDense(out.NumRows(), out.NumCols(), out.Data())
	dst.Mul(av, bv)
	return out, nil
}
