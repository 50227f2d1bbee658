package format

type (
	PrimitiveType   uint8
	ByteOrder       uint8
	CompressionType uint8
)

// Native primitive types understood by the raw buffer primitive.
// These are the bare type codes; an endianness marker never appears here.
const (
	TypeUint8       PrimitiveType = 0x1 // unsigned 8-bit integer
	TypeInt8        PrimitiveType = 0x2 // signed 8-bit integer
	TypeUint16      PrimitiveType = 0x3 // unsigned 16-bit integer
	TypeInt16       PrimitiveType = 0x4 // signed 16-bit integer
	TypeUint32      PrimitiveType = 0x5 // unsigned 32-bit integer
	TypeInt32       PrimitiveType = 0x6 // signed 32-bit integer
	TypeUint64      PrimitiveType = 0x7 // unsigned 64-bit integer
	TypeInt64       PrimitiveType = 0x8 // signed 64-bit integer
	TypeFloat16     PrimitiveType = 0x9 // IEEE 754 half-precision float
	TypeFloat32     PrimitiveType = 0xA // IEEE 754 single-precision float
	TypeFloat64     PrimitiveType = 0xB // IEEE 754 double-precision float
	TypeBool        PrimitiveType = 0xC // boolean, stored as one byte (0 or 1)
	TypeFixedString PrimitiveType = 0xD // unterminated UTF-8 string
	TypeVarString   PrimitiveType = 0xE // NUL-terminated UTF-8 string
)

// Byte order intent for tagged types.
//
// OrderNative means "do not touch byte order"; it is the classification for
// all untagged primitives and for every float, bool, and string type
// regardless of marker bits.
const (
	OrderNative ByteOrder = 0x0 // host byte order, no conversion
	OrderLittle ByteOrder = 0x1 // force little-endian on the wire
	OrderBig    ByteOrder = 0x2 // force big-endian on the wire
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// Size returns the width of the primitive in bytes.
// Variable-length types (FixedString, VarString) and unknown types return 0.
func (p PrimitiveType) Size() int {
	switch p {
	case TypeUint8, TypeInt8, TypeBool:
		return 1
	case TypeUint16, TypeInt16, TypeFloat16:
		return 2
	case TypeUint32, TypeInt32, TypeFloat32:
		return 4
	case TypeUint64, TypeInt64, TypeFloat64:
		return 8
	default:
		return 0
	}
}

// IsValid reports whether p is one of the defined primitive types.
func (p PrimitiveType) IsValid() bool {
	return p >= TypeUint8 && p <= TypeVarString
}

// IsInteger reports whether p is a fixed-width integer type.
func (p PrimitiveType) IsInteger() bool {
	return p >= TypeUint8 && p <= TypeInt64
}

// IsString reports whether p is a string type.
func (p PrimitiveType) IsString() bool {
	return p == TypeFixedString || p == TypeVarString
}

// IsSwappable reports whether p is subject to byte-order conversion:
// a 16-, 32-, or 64-bit integer type. Floats, bools, and strings always
// pass through untouched, as do single-byte integers.
func (p PrimitiveType) IsSwappable() bool {
	return p.IsInteger() && p.Size() >= 2
}

func (p PrimitiveType) String() string {
	switch p {
	case TypeUint8:
		return "Uint8"
	case TypeInt8:
		return "Int8"
	case TypeUint16:
		return "Uint16"
	case TypeInt16:
		return "Int16"
	case TypeUint32:
		return "Uint32"
	case TypeInt32:
		return "Int32"
	case TypeUint64:
		return "Uint64"
	case TypeInt64:
		return "Int64"
	case TypeFloat16:
		return "Float16"
	case TypeFloat32:
		return "Float32"
	case TypeFloat64:
		return "Float64"
	case TypeBool:
		return "Bool"
	case TypeFixedString:
		return "FixedString"
	case TypeVarString:
		return "VarString"
	default:
		return "Unknown"
	}
}

func (o ByteOrder) String() string {
	switch o {
	case OrderNative:
		return "Native"
	case OrderLittle:
		return "Little"
	case OrderBig:
		return "Big"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
