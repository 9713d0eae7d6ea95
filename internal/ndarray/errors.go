package ndarray

import "errors"

// Sentinel errors. Every message is prefixed with "ndarray: " so failures are
// easy to grep. Operations wrap them with the offending shapes or indices via
// fmt.Errorf("...: %w", ErrX); callers match with errors.Is.
var (
	// ErrInvalidArgument covers malformed inputs such as a zero slice step,
	// negative dimensions, or ragged nested rows.
	ErrInvalidArgument = errors.New("ndarray: invalid argument")

	// ErrOutOfRange indicates an index or slice beyond the array bounds.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrShapeMismatch indicates operand shapes that are neither equal nor 1x1-compatible.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrInvalidSize indicates an element-count mismatch (reshape, short buffers).
	ErrInvalidSize = errors.New("ndarray: invalid size")

	// ErrAllocationFailure indicates backing memory could not be obtained.
	ErrAllocationFailure = errors.New("ndarray: allocation failure")

	// ErrDivideByZero indicates integer division or modulo by zero.
	ErrDivideByZero = errors.New("ndarray: integer division by zero")
)
