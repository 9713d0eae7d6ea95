package serialization

import (
	"errors"
	"fmt"
	"io"
)

// Common errors.
var (
	ErrInvalidMagic       = errors.New("invalid magic bytes")
	ErrUnsupportedVersion = errors.New("unsupported format version")
	ErrInvalidHeader      = errors.New("invalid header")
	ErrHeaderTooLarge     = errors.New("header describes a payload that exceeds the maximum size")
	ErrDTypeMismatch      = errors.New("data type mismatch")
	ErrTruncated          = errors.New("unexpected end of data")
	ErrChecksumMismatch   = errors.New("checksum mismatch: file may be corrupted")
	ErrInvalidPayload     = errors.New("invalid payload")
)

// ValidationError provides detailed information about a rejected header field
// or payload. It unwraps to one of the sentinel errors above.
type ValidationError struct {
	Field   string // Header field or payload region (e.g., "dtype", "rows")
	Details string // Additional details
	Err     error  // Sentinel describing the failure class
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%v: %s: %s", e.Err, e.Field, e.Details)
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Details)
}

// Unwrap returns the sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// truncated converts a short read into ErrTruncated, keeping other I/O errors.
func truncated(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("failed to read %s: %w", what, ErrTruncated)
	}
	return fmt.Errorf("failed to read %s: %w", what, err)
}
