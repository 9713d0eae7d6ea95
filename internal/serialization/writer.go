package serialization

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// Options configures how arrays are written.
type Options struct {
	ByteOrder ndarray.Endian // Payload byte order; Native resolves to the host order
	Checksum  bool           // Store a SHA-256 checksum of the payload
}

// DefaultOptions returns options that write native byte order with a checksum.
func DefaultOptions() Options {
	return Options{
		ByteOrder: ndarray.Native,
		Checksum:  true,
	}
}

func (o Options) validate() error {
	switch o.ByteOrder {
	case ndarray.Native, ndarray.Little, ndarray.Big:
		return nil
	default:
		return fmt.Errorf("unknown byte order %d: %w", o.ByteOrder, ndarray.ErrInvalidArgument)
	}
}

// Dump writes a to w: a fixed header followed by the payload in opts.ByteOrder.
// The array itself is never modified, whatever its current byte order tag.
func Dump[T ndarray.Element](w io.Writer, a *ndarray.NdArray[T], opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}

	dt := a.DType()
	payload := ndarray.AsBytes(a.Data())
	if a.Endian().Resolve() != opts.ByteOrder.Resolve() {
		swapped := make([]byte, len(payload))
		copy(swapped, payload)
		ndarray.SwapBytes(swapped, dt.WordSize())
		payload = swapped
	}

	h := Header{
		Version:  FormatVersion,
		DType:    dt,
		ElemSize: dt.Size(),
		Rows:     a.NumRows(),
		Cols:     a.NumCols(),
	}
	return writeRecord(w, &h, payload, opts)
}

// ToFile writes a to the file at path, creating or truncating it.
func ToFile[T ndarray.Element](path string, a *ndarray.NdArray[T], opts Options) (err error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for array saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close file: %w", closeErr)
		}
	}()

	bw := bufio.NewWriter(file)
	if err := Dump(bw, a, opts); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush file: %w", err)
	}
	return nil
}

// writeRecord fills in the flags and checksum for payload and writes both parts.
func writeRecord(w io.Writer, h *Header, payload []byte, opts Options) error {
	h.Flags = 0
	if opts.ByteOrder.Resolve() == ndarray.Big {
		h.Flags |= FlagBigEndian
	}
	h.Checksum = [32]byte{}
	if opts.Checksum {
		h.Flags |= FlagHasChecksum
		h.Checksum = ComputeChecksum(payload)
	}

	if _, err := w.Write(h.encode()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}
	return nil
}
