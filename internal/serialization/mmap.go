package serialization

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// Mapping provides memory-mapped access to a serialized array.
// The array it exposes is a Shell over the mapped payload, so loading costs
// no copy and pages are read on demand from the OS page cache.
//
// The mapping is private: writes through the array are visible to this
// process only and never reach the file.
//
// Important: Always call Close() when done to unmap the file (use defer).
// The array is released by Close and must not be used afterwards.
type Mapping[T ndarray.Element] struct {
	file   *os.File
	data   []byte // mmap'd region (private, copy-on-write)
	header Header
	array  *ndarray.NdArray[T]
	closed bool
}

// MapFile memory-maps the file at path and exposes its payload as an array.
// Checksums are verified and a foreign byte order is converted in place on
// the private mapping, so the array is always in native order.
func MapFile[T ndarray.Element](path string) (*Mapping[T], error) {
	file, err := Open(path)
	if err != nil {
		return nil, err
	}
	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	// Memory map the file (platform-specific implementation)
	data, err := mmapFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("mmap failed: %w", err)
	}

	m := &Mapping[T]{file: file, data: data}
	if err := m.init(); err != nil {
		_ = m.Close()
		return nil, err
	}
	return m, nil
}

func (m *Mapping[T]) init() error {
	h, err := parseHeader(m.data[:HeaderSize])
	if err != nil {
		return err
	}
	if err := checkDType[T](&h); err != nil {
		return err
	}
	payload := m.data[HeaderSize : HeaderSize+h.PayloadSize()]
	if err := decodePayload(&h, payload); err != nil {
		return err
	}

	array, err := ndarray.FromBufferShape(viewAs[T](payload), h.Rows, h.Cols, ndarray.Shell)
	if err != nil {
		return err
	}
	m.header = h
	m.array = array
	return nil
}

// Array returns the mapped array. It is a Shell: Clone it to keep the data
// beyond Close.
func (m *Mapping[T]) Array() *ndarray.NdArray[T] {
	return m.array
}

// Header returns the file header.
func (m *Mapping[T]) Header() Header {
	return m.header
}

// Close releases the array, unmaps and closes the file.
func (m *Mapping[T]) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true

	if m.array != nil {
		m.array.Release()
	}

	var err error
	if m.data != nil {
		err = munmapFile(m.data)
		m.data = nil
	}
	if closeErr := m.file.Close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}
	return err
}

// viewAs reinterprets a payload as elements of T (zero-copy).
// The payload must be aligned for T, which the 64-byte header guarantees.
func viewAs[T ndarray.Element](payload []byte) []T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if len(payload) < size {
		return nil
	}
	//nolint:gosec // G103: zero-copy view of the mapped payload, length derived from len(payload)
	return unsafe.Slice((*T)(unsafe.Pointer(&payload[0])), len(payload)/size)
}
