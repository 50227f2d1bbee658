package format

// Tag is a logical type descriptor: a native primitive type combined with
// an explicit byte order intent, packed into a single uint16.
//
// The primitive code occupies bits 0-7 and the order marker occupies
// bits 8-9. The two fields live in disjoint bit ranges, so masking off the
// marker always yields exactly the primitive code; a marker can never
// collide with a primitive's bit pattern.
//
// Tags are plain values. They are constructed once (usually from the
// predefined constants below), never mutated, and never outlive the call
// they are passed to.
type Tag uint16

const (
	// PrimitiveMask selects the native primitive code (bits 0-7).
	PrimitiveMask = 0x00FF
	// OrderMask selects the byte order marker (bits 8-9).
	OrderMask = 0x0300

	orderShift = 8
)

// NewTag packs a primitive type and a byte order intent into a Tag.
//
// Any primitive may be combined with any order; classification in Intent
// collapses the order to native for primitives that are not subject to
// byte-order conversion.
func NewTag(p PrimitiveType, o ByteOrder) Tag {
	return Tag(uint16(p) | uint16(o)<<orderShift)
}

// Plain tags, one per primitive type. These carry no order marker and
// always classify as native.
const (
	TagUint8       = Tag(TypeUint8)
	TagInt8        = Tag(TypeInt8)
	TagUint16      = Tag(TypeUint16)
	TagInt16       = Tag(TypeInt16)
	TagUint32      = Tag(TypeUint32)
	TagInt32       = Tag(TypeInt32)
	TagUint64      = Tag(TypeUint64)
	TagInt64       = Tag(TypeInt64)
	TagFloat16     = Tag(TypeFloat16)
	TagFloat32     = Tag(TypeFloat32)
	TagFloat64     = Tag(TypeFloat64)
	TagBool        = Tag(TypeBool)
	TagFixedString = Tag(TypeFixedString)
	TagVarString   = Tag(TypeVarString)
)

// Order-tagged integer types. Signed 64-bit order tags are intentionally
// not defined; compose one with NewTag if needed.
const (
	TagUint16LE = Tag(TypeUint16) | Tag(OrderLittle)<<orderShift
	TagUint16BE = Tag(TypeUint16) | Tag(OrderBig)<<orderShift
	TagInt16LE  = Tag(TypeInt16) | Tag(OrderLittle)<<orderShift
	TagInt16BE  = Tag(TypeInt16) | Tag(OrderBig)<<orderShift
	TagUint32LE = Tag(TypeUint32) | Tag(OrderLittle)<<orderShift
	TagUint32BE = Tag(TypeUint32) | Tag(OrderBig)<<orderShift
	TagInt32LE  = Tag(TypeInt32) | Tag(OrderLittle)<<orderShift
	TagInt32BE  = Tag(TypeInt32) | Tag(OrderBig)<<orderShift
	TagUint64LE = Tag(TypeUint64) | Tag(OrderLittle)<<orderShift
	TagUint64BE = Tag(TypeUint64) | Tag(OrderBig)<<orderShift
)

// Native returns the bare primitive type with the order marker stripped.
// This is the only value that may be passed to the raw buffer primitive.
func (t Tag) Native() PrimitiveType {
	return PrimitiveType(t & PrimitiveMask)
}

// Order returns the raw order marker as encoded in the tag, without
// classification. Most callers want Intent instead.
func (t Tag) Order() ByteOrder {
	return ByteOrder((t & OrderMask) >> orderShift)
}

// Intent classifies the tag's byte order intent.
//
// Tags with no marker, and all float, bool, and string tags regardless of
// marker, classify as OrderNative: their byte order is never touched.
// Only marked 16-, 32-, and 64-bit integer tags classify as OrderLittle
// or OrderBig.
func (t Tag) Intent() ByteOrder {
	if !t.Native().IsSwappable() {
		return OrderNative
	}

	o := t.Order()
	if o != OrderLittle && o != OrderBig {
		return OrderNative
	}

	return o
}

// IsValid reports whether masking off the order marker yields a defined
// primitive type and no bits outside the two fields are set.
func (t Tag) IsValid() bool {
	if uint16(t) & ^uint16(PrimitiveMask|OrderMask) != 0 {
		return false
	}

	return t.Native().IsValid()
}

func (t Tag) String() string {
	if !t.IsValid() {
		return "Invalid"
	}

	switch t.Intent() {
	case OrderLittle:
		return t.Native().String() + "LE"
	case OrderBig:
		return t.Native().String() + "BE"
	default:
		return t.Native().String()
	}
}
