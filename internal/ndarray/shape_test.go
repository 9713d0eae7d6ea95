package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	s, err := NewShape(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, s.Size())
	assert.False(t, s.IsNull())
	assert.False(t, s.IsSquare())
	assert.Equal(t, "[3, 4]", s.String())

	sq, err := SquareShape(5)
	require.NoError(t, err)
	assert.True(t, sq.IsSquare())
	assert.Equal(t, 25, sq.Size())

	assert.True(t, Shape{}.IsNull())
	assert.True(t, s.Equal(Shape{Rows: 3, Cols: 4}))
	assert.False(t, s.Equal(Shape{Rows: 4, Cols: 3}))
}

func TestShapeValidation(t *testing.T) {
	for _, s := range []Shape{{-1, 2}, {2, -1}, {-3, -3}} {
		_, err := NewShape(s.Rows, s.Cols)
		assert.ErrorIs(t, err, ErrInvalidArgument, "shape %v", s)
	}
	for _, s := range []Shape{{0, 0}, {0, 7}, {1, 1}, {10, 3}} {
		assert.NoError(t, s.Validate(), "shape %v", s)
	}
}
