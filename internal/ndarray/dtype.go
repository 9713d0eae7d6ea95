// Package ndarray provides the dense, row-major, two-dimensional typed array core.
package ndarray

import (
	"reflect"
	"unsafe"
)

// Integer is the constraint for every Go integer kind.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the constraint for floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Complex is the constraint for complex element types.
type Complex interface {
	~complex64 | ~complex128
}

// Real covers the ordered numeric types.
type Real interface {
	Integer | Float
}

// Ordered is the constraint used by sorting and the ordering comparisons.
type Ordered interface {
	Real
}

// Number covers every type that supports + - * /.
type Number interface {
	Real | Complex
}

// Element is the constraint for values an NdArray can hold.
// It uses Go generics to ensure compile-time type safety.
type Element interface {
	~bool | Number
}

// DataType represents runtime type information for arrays.
type DataType int

// Supported data types.
const (
	Bool DataType = iota
	Int8
	Int16
	Int32
	Int64
	Int
	Uint8
	Uint16
	Uint32
	Uint64
	Uint
	Uintptr
	Float32
	Float64
	Complex64
	Complex128
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Bool, Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64, Complex64:
		return 8
	case Int, Uint, Uintptr:
		return int(unsafe.Sizeof(uintptr(0)))
	case Complex128:
		return 16
	default:
		panic("unknown data type")
	}
}

// Valid reports whether dt names a supported data type.
func (dt DataType) Valid() bool {
	return dt >= Bool && dt <= Complex128
}

// IsComplex reports whether elements are made of two floating-point halves.
func (dt DataType) IsComplex() bool {
	return dt == Complex64 || dt == Complex128
}

// IsInteger reports whether the data type is an integer kind.
func (dt DataType) IsInteger() bool {
	switch dt {
	case Int8, Int16, Int32, Int64, Int, Uint8, Uint16, Uint32, Uint64, Uint, Uintptr:
		return true
	default:
		return false
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Bool:
		return "bool"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Int:
		return "int"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Uint:
		return "uint"
	case Uintptr:
		return "uintptr"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

var kindToDataType = map[reflect.Kind]DataType{
	reflect.Bool:       Bool,
	reflect.Int8:       Int8,
	reflect.Int16:      Int16,
	reflect.Int32:      Int32,
	reflect.Int64:      Int64,
	reflect.Int:        Int,
	reflect.Uint8:      Uint8,
	reflect.Uint16:     Uint16,
	reflect.Uint32:     Uint32,
	reflect.Uint64:     Uint64,
	reflect.Uint:       Uint,
	reflect.Uintptr:    Uintptr,
	reflect.Float32:    Float32,
	reflect.Float64:    Float64,
	reflect.Complex64:  Complex64,
	reflect.Complex128: Complex128,
}

// DataTypeOf infers the DataType of T from its underlying kind,
// so named types such as `type Celsius float64` resolve too.
func DataTypeOf[T Element]() DataType {
	dt, ok := kindToDataType[reflect.TypeFor[T]().Kind()]
	if !ok {
		panic("unsupported element type")
	}
	return dt
}

// elemSize returns sizeof(T) in bytes.
func elemSize[T Element]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// isIntegral reports whether T is an integer kind (division by zero is an error).
func isIntegral[T Element]() bool {
	return DataTypeOf[T]().IsInteger()
}
