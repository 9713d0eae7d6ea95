package serialization

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// ReadHeader reads and validates the fixed header from r.
// On success r is positioned at the start of the payload.
func ReadHeader(r io.Reader) (Header, error) {
	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Header{}, truncated("header", err)
	}
	return parseHeader(buf)
}

// Load reads an array written by Dump. The element type must match the one
// recorded in the header. The result is in native byte order and owns its buffer.
func Load[T ndarray.Element](r io.Reader) (*ndarray.NdArray[T], error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	if err := checkDType[T](&h); err != nil {
		return nil, err
	}

	data, err := readElements[T](r, h.Rows*h.Cols)
	if err != nil {
		return nil, err
	}
	if err := decodePayload(&h, ndarray.AsBytes(data)); err != nil {
		return nil, err
	}
	return ndarray.Adopt(data, h.Rows, h.Cols)
}

// readChunkSize bounds how far a buffer grows ahead of the bytes actually read.
const readChunkSize = 1 << 20

// readElements reads n elements of T from r. The buffer grows one chunk at a
// time, so a header that promises more than r holds costs at most one chunk
// past the real payload before ErrTruncated.
func readElements[T ndarray.Element](r io.Reader, n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	chunk := max(readChunkSize/ndarray.DataTypeOf[T]().Size(), 1)
	data := make([]T, 0, min(n, chunk))
	for len(data) < n {
		start := len(data)
		k := min(n-start, chunk)
		data = slices.Grow(data, k)[:start+k]
		if _, err := io.ReadFull(r, ndarray.AsBytes(data[start:])); err != nil {
			return nil, truncated("payload", err)
		}
	}
	return data, nil
}

// FromFile reads an array from the file at path.
func FromFile[T ndarray.Element](path string) (*ndarray.NdArray[T], error) {
	file, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }() // Read-only, close error carries no information

	return Load[T](bufio.NewReader(file))
}

// Open opens an array file for reading and checks that it is as long as its
// header promises. The returned file is positioned at the start.
func Open(path string) (*os.File, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for array loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	if err := checkFileSize(file); err != nil {
		_ = file.Close()
		return nil, err
	}
	return file, nil
}

// Verify streams the payload of r through the checksum without keeping it.
// It reports truncation even when the header carries no checksum.
func Verify(r io.Reader) (Header, error) {
	h, err := ReadHeader(r)
	if err != nil {
		return Header{}, err
	}
	sum, err := ComputeChecksumReader(r, int64(h.PayloadSize()))
	if err != nil {
		return h, err
	}
	if h.HasChecksum() {
		if err := ValidateChecksum(sum, h.Checksum); err != nil {
			return h, err
		}
	}
	return h, nil
}

// Reencode copies a serialized array from r to w, rewriting the payload in
// opts.ByteOrder and adding or dropping the checksum. The element type need
// not be known. It returns the header that was written.
func Reencode(r io.Reader, w io.Writer, opts Options) (Header, error) {
	if err := opts.validate(); err != nil {
		return Header{}, err
	}
	h, err := ReadHeader(r)
	if err != nil {
		return Header{}, err
	}

	// The output checksum precedes the payload, so the payload is buffered.
	payload, err := readElements[byte](r, h.PayloadSize())
	if err != nil {
		return Header{}, err
	}
	if err := verifyPayload(&h, payload); err != nil {
		return Header{}, err
	}
	if err := checkBools(&h, payload); err != nil {
		return Header{}, err
	}
	if h.ByteOrder() != opts.ByteOrder.Resolve() {
		ndarray.SwapBytes(payload, h.DType.WordSize())
	}
	if err := writeRecord(w, &h, payload, opts); err != nil {
		return Header{}, err
	}
	return h, nil
}

// checkDType rejects headers whose data type differs from T.
func checkDType[T ndarray.Element](h *Header) error {
	want := ndarray.DataTypeOf[T]()
	if h.DType != want {
		return &ValidationError{
			Field:   "dtype",
			Details: fmt.Sprintf("file holds %s, requested %s", h.DType, want),
			Err:     ErrDTypeMismatch,
		}
	}
	return nil
}

// decodePayload verifies the checksum, converts the payload to native byte
// order in place and checks boolean payloads hold only 0 and 1.
func decodePayload(h *Header, payload []byte) error {
	if err := verifyPayload(h, payload); err != nil {
		return err
	}
	if h.ByteOrder() != ndarray.Native.Resolve() {
		ndarray.SwapBytes(payload, h.DType.WordSize())
	}
	return checkBools(h, payload)
}

// checkBools rejects boolean payloads holding bytes other than 0 and 1.
func checkBools(h *Header, payload []byte) error {
	if h.DType != ndarray.Bool {
		return nil
	}
	for i, b := range payload {
		if b > 1 {
			return &ValidationError{
				Field:   "payload",
				Details: fmt.Sprintf("byte %d holds %d, not a boolean", i, b),
				Err:     ErrInvalidPayload,
			}
		}
	}
	return nil
}

// checkFileSize compares the file length with the size its header promises,
// so a truncated file fails before the payload is allocated.
func checkFileSize(file *os.File) error {
	stat, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	h, err := ReadHeader(file)
	if err != nil {
		return err
	}
	if want := int64(HeaderSize) + int64(h.PayloadSize()); stat.Size() < want {
		return fmt.Errorf("file has %d bytes, header needs %d: %w", stat.Size(), want, ErrTruncated)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek to start: %w", err)
	}
	return nil
}
