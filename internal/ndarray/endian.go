package ndarray

import "unsafe"

// Endian describes the byte order of an array's buffer.
type Endian int

// Byte orders.
const (
	Native Endian = iota
	Little
	Big
)

// String returns the byte order name.
func (e Endian) String() string {
	switch e {
	case Native:
		return "native"
	case Little:
		return "little"
	case Big:
		return "big"
	default:
		return "unknown"
	}
}

var nativeIsLittle = func() bool {
	x := uint16(1)
	return *(*byte)(unsafe.Pointer(&x)) == 1
}()

// IsLittleEndian reports whether the host is little-endian.
func IsLittleEndian() bool {
	return nativeIsLittle
}

// Resolve maps Native to the concrete host byte order.
func (e Endian) Resolve() Endian {
	if e != Native {
		return e
	}
	if nativeIsLittle {
		return Little
	}
	return Big
}

// SwapBytes reverses the byte order of every element in buf in place.
// wordSize is the element size; complex elements are swapped per half, so
// pass the size of one component (half the element size) for them.
func SwapBytes(buf []byte, wordSize int) {
	if wordSize <= 1 {
		return
	}
	for off := 0; off+wordSize <= len(buf); off += wordSize {
		w := buf[off : off+wordSize]
		for i, j := 0, wordSize-1; i < j; i, j = i+1, j-1 {
			w[i], w[j] = w[j], w[i]
		}
	}
}

// WordSize returns the unit SwapBytes must reverse for dt: the element size,
// or the size of one component for complex types.
func (dt DataType) WordSize() int {
	if dt.IsComplex() {
		return dt.Size() / 2
	}
	return dt.Size()
}

// asBytes reinterprets an element slice as its raw bytes (zero-copy).
func asBytes[T Element](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy byte access, length derived from len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*elemSize[T]())
}

// AsBytes exposes the raw bytes of an element slice without copying.
func AsBytes[T Element](data []T) []byte {
	return asBytes(data)
}
