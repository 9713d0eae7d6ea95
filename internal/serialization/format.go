package serialization

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/born-ml/ndarray/internal/ndarray"
)

// Format constants.
const (
	MagicBytes     = "NDAR"
	FormatVersion  = 1
	HeaderSize     = 64   // Fixed header size; the payload starts 64-byte aligned
	ChecksumOffset = 0x20 // Checksum offset in the fixed header
	ChecksumSize   = 32   // SHA-256 checksum size (32 bytes)
)

// Validation limits for resource protection.
const (
	MaxPayloadSize = 1 << 36 // 64GB - maximum payload a header may describe
)

// payloadLimit is MaxPayloadSize clamped to what an int can index.
const payloadLimit uint64 = min(MaxPayloadSize, math.MaxInt)

// Flags for the header.
const (
	FlagBigEndian   uint32 = 1 << 0 // bit 0: payload is big-endian
	FlagHasChecksum uint32 = 1 << 1 // bit 1: checksum field is valid

	knownFlags = FlagBigEndian | FlagHasChecksum
)

// Header describes a serialized array.
type Header struct {
	Version  uint32           // Format version
	Flags    uint32           // Flags bitfield
	DType    ndarray.DataType // Element data type
	ElemSize int              // Element size in bytes, as written
	Rows     int              // Number of rows
	Cols     int              // Number of columns
	Checksum [32]byte         // SHA-256 of the payload (valid when HasChecksum)
}

// ByteOrder returns the payload byte order (Little or Big).
func (h *Header) ByteOrder() ndarray.Endian {
	if h.Flags&FlagBigEndian != 0 {
		return ndarray.Big
	}
	return ndarray.Little
}

// HasChecksum reports whether the checksum field is valid.
func (h *Header) HasChecksum() bool {
	return h.Flags&FlagHasChecksum != 0
}

// Shape returns the array shape.
func (h *Header) Shape() ndarray.Shape {
	return ndarray.Shape{Rows: h.Rows, Cols: h.Cols}
}

// PayloadSize returns the payload length in bytes.
func (h *Header) PayloadSize() int {
	return h.Rows * h.Cols * h.ElemSize
}

// encode serializes the header into its fixed 64-byte form.
func (h *Header) encode() []byte {
	buf := make([]byte, HeaderSize)
	copy(buf[0:4], MagicBytes)
	binary.LittleEndian.PutUint32(buf[4:8], h.Version)
	binary.LittleEndian.PutUint32(buf[8:12], h.Flags)
	binary.LittleEndian.PutUint16(buf[12:14], uint16(h.DType))    //nolint:gosec // G115: data type codes are small
	binary.LittleEndian.PutUint16(buf[14:16], uint16(h.ElemSize)) //nolint:gosec // G115: element size is at most 16
	binary.LittleEndian.PutUint64(buf[16:24], uint64(h.Rows))     //nolint:gosec // G115: shape is non-negative
	binary.LittleEndian.PutUint64(buf[24:32], uint64(h.Cols))     //nolint:gosec // G115: shape is non-negative
	if h.HasChecksum() {
		copy(buf[ChecksumOffset:ChecksumOffset+ChecksumSize], h.Checksum[:])
	}
	return buf
}

// parseHeader decodes and validates a fixed 64-byte header.
func parseHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, fmt.Errorf("header has %d bytes, need %d: %w", len(buf), HeaderSize, ErrTruncated)
	}
	if string(buf[0:4]) != MagicBytes {
		return Header{}, ErrInvalidMagic
	}

	var h Header
	h.Version = binary.LittleEndian.Uint32(buf[4:8])
	if h.Version != FormatVersion {
		return Header{}, fmt.Errorf("%w: got %d, expected %d", ErrUnsupportedVersion, h.Version, FormatVersion)
	}

	h.Flags = binary.LittleEndian.Uint32(buf[8:12])
	if h.Flags&^knownFlags != 0 {
		return Header{}, &ValidationError{
			Field:   "flags",
			Details: fmt.Sprintf("unknown bits 0x%x", h.Flags&^knownFlags),
			Err:     ErrInvalidHeader,
		}
	}

	h.DType = ndarray.DataType(binary.LittleEndian.Uint16(buf[12:14]))
	if !h.DType.Valid() {
		return Header{}, &ValidationError{
			Field:   "dtype",
			Details: fmt.Sprintf("unknown data type code %d", h.DType),
			Err:     ErrInvalidHeader,
		}
	}

	h.ElemSize = int(binary.LittleEndian.Uint16(buf[14:16]))
	if h.ElemSize != h.DType.Size() {
		return Header{}, &ValidationError{
			Field:   "element_size",
			Details: fmt.Sprintf("%s is %d bytes on this platform, file says %d", h.DType, h.DType.Size(), h.ElemSize),
			Err:     ErrDTypeMismatch,
		}
	}

	rows := binary.LittleEndian.Uint64(buf[16:24])
	cols := binary.LittleEndian.Uint64(buf[24:32])
	if err := checkPayloadSize(rows, cols, uint64(h.ElemSize)); err != nil {
		return Header{}, err
	}
	h.Rows = int(rows) //nolint:gosec // G115: bounded by checkPayloadSize
	h.Cols = int(cols) //nolint:gosec // G115: bounded by checkPayloadSize

	copy(h.Checksum[:], buf[ChecksumOffset:ChecksumOffset+ChecksumSize])
	return h, nil
}

// checkPayloadSize rejects shapes whose payload overflows or exceeds MaxPayloadSize.
func checkPayloadSize(rows, cols, elemSize uint64) error {
	var details string
	switch {
	case rows > math.MaxInt || cols > math.MaxInt:
		details = "dimension does not fit in int"
	case rows != 0 && cols > math.MaxUint64/rows:
		details = "element count overflows"
	case rows*cols != 0 && elemSize > payloadLimit/(rows*cols):
		details = fmt.Sprintf("payload exceeds %d bytes", payloadLimit)
	default:
		return nil
	}
	return &ValidationError{
		Field:   "shape",
		Details: fmt.Sprintf("[%d, %d] x %d bytes: %s", rows, cols, elemSize, details),
		Err:     ErrHeaderTooLarge,
	}
}
