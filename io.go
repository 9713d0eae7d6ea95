// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"io"

	"github.com/born-ml/ndarray/internal/serialization"
)

// Options configures how arrays are written: payload byte order and checksum.
type Options = serialization.Options

// DefaultOptions returns options that write native byte order with a checksum.
func DefaultOptions() Options {
	return serialization.DefaultOptions()
}

// Header describes a serialized array.
type Header = serialization.Header

// Mapping is a memory-mapped array file. Close it when done.
type Mapping[T Element] = serialization.Mapping[T]

// Serialization errors.
var (
	ErrInvalidMagic       = serialization.ErrInvalidMagic
	ErrUnsupportedVersion = serialization.ErrUnsupportedVersion
	ErrInvalidHeader      = serialization.ErrInvalidHeader
	ErrHeaderTooLarge     = serialization.ErrHeaderTooLarge
	ErrDTypeMismatch      = serialization.ErrDTypeMismatch
	ErrTruncated          = serialization.ErrTruncated
	ErrChecksumMismatch   = serialization.ErrChecksumMismatch
	ErrInvalidPayload     = serialization.ErrInvalidPayload
)

// Dump writes a to w in the binary array format.
func Dump[T Element](w io.Writer, a *NdArray[T], opts Options) error {
	return serialization.Dump(w, a, opts)
}

// Load reads an array written by Dump. T must match the stored data type.
func Load[T Element](r io.Reader) (*NdArray[T], error) {
	return serialization.Load[T](r)
}

// ToFile writes a to the file at path.
//
// Example:
//
//	err := ndarray.ToFile("a.ndar", a, ndarray.Options{ByteOrder: ndarray.Big, Checksum: true})
func ToFile[T Element](path string, a *NdArray[T], opts Options) error {
	return serialization.ToFile(path, a, opts)
}

// FromFile reads an array from the file at path.
func FromFile[T Element](path string) (*NdArray[T], error) {
	return serialization.FromFile[T](path)
}

// MapFile memory-maps an array file. The array it exposes is a Shell over
// the mapping and is valid until the Mapping is closed.
//
// Example:
//
//	m, err := ndarray.MapFile[float32]("weights.ndar")
//	if err != nil {
//	    return err
//	}
//	defer m.Close()
//	w := m.Array()
func MapFile[T Element](path string) (*Mapping[T], error) {
	return serialization.MapFile[T](path)
}

// ReadHeader reads and validates the header of a serialized array.
func ReadHeader(r io.Reader) (Header, error) {
	return serialization.ReadHeader(r)
}
