package ndarray

import "fmt"

// Shape represents the dimensions of a two-dimensional array.
// The zero value is the null 0x0 shape.
type Shape struct {
	Rows int
	Cols int
}

// NewShape returns a rows x cols shape.
func NewShape(rows, cols int) (Shape, error) {
	s := Shape{Rows: rows, Cols: cols}
	if err := s.Validate(); err != nil {
		return Shape{}, err
	}
	return s, nil
}

// SquareShape returns an n x n shape.
func SquareShape(n int) (Shape, error) {
	return NewShape(n, n)
}

// Validate checks that both dimensions are non-negative.
func (s Shape) Validate() error {
	if s.Rows < 0 || s.Cols < 0 {
		return fmt.Errorf("shape %v has a negative dimension: %w", s, ErrInvalidArgument)
	}
	return nil
}

// Size returns the total number of elements.
func (s Shape) Size() int {
	return s.Rows * s.Cols
}

// IsNull reports whether the shape is 0x0.
func (s Shape) IsNull() bool {
	return s.Rows == 0 && s.Cols == 0
}

// IsSquare reports whether rows == cols.
func (s Shape) IsSquare() bool {
	return s.Rows == s.Cols
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	return s == other
}

// String returns the shape as "[rows, cols]".
func (s Shape) String() string {
	return fmt.Sprintf("[%d, %d]", s.Rows, s.Cols)
}
