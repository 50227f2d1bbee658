package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// taggedIntegers lists every predefined order-tagged integer tag with its
// expected primitive and order.
var taggedIntegers = []struct {
	tag       Tag
	primitive PrimitiveType
	order     ByteOrder
}{
	{TagUint16LE, TypeUint16, OrderLittle},
	{TagUint16BE, TypeUint16, OrderBig},
	{TagInt16LE, TypeInt16, OrderLittle},
	{TagInt16BE, TypeInt16, OrderBig},
	{TagUint32LE, TypeUint32, OrderLittle},
	{TagUint32BE, TypeUint32, OrderBig},
	{TagInt32LE, TypeInt32, OrderLittle},
	{TagInt32BE, TypeInt32, OrderBig},
	{TagUint64LE, TypeUint64, OrderLittle},
	{TagUint64BE, TypeUint64, OrderBig},
}

func TestTagRoundTrip(t *testing.T) {
	// Masking the order marker off any tagged integer tag must reproduce
	// exactly the corresponding untagged primitive type. This guards the
	// structural guarantee that marker bits never collide with primitive
	// codes.
	for _, tt := range taggedIntegers {
		t.Run(tt.tag.String(), func(t *testing.T) {
			require := require.New(t)

			require.Equal(tt.primitive, tt.tag.Native())
			require.Equal(Tag(tt.primitive), tt.tag&PrimitiveMask)
			require.Equal(tt.order, tt.tag.Order())
			require.Equal(tt.order, tt.tag.Intent())
			require.True(tt.tag.IsValid())

			// Reconstructing through NewTag yields the identical tag.
			require.Equal(tt.tag, NewTag(tt.primitive, tt.order))
		})
	}
}

func TestTagMarkerDisjointFromPrimitives(t *testing.T) {
	require := require.New(t)

	// The marker field and the primitive field occupy disjoint bit ranges.
	require.Zero(PrimitiveMask & OrderMask)

	// No defined primitive code reaches into the marker bits.
	for p := TypeUint8; p <= TypeVarString; p++ {
		require.Zero(uint16(p) & OrderMask, "primitive %s overlaps order marker bits", p)
	}
}

func TestPlainTagsClassifyNative(t *testing.T) {
	plain := []Tag{
		TagUint8, TagInt8, TagUint16, TagInt16, TagUint32, TagInt32,
		TagUint64, TagInt64, TagFloat16, TagFloat32, TagFloat64,
		TagBool, TagFixedString, TagVarString,
	}
	for _, tag := range plain {
		t.Run(tag.String(), func(t *testing.T) {
			require := require.New(t)
			require.True(tag.IsValid())
			require.Equal(OrderNative, tag.Order())
			require.Equal(OrderNative, tag.Intent())
		})
	}
}

func TestNonSwappableMarkersCollapseToNative(t *testing.T) {
	// Order markers on float, bool, string, and single-byte integer tags
	// are meaningless; classification must collapse them to native intent
	// so the values are never swapped.
	primitives := []PrimitiveType{
		TypeUint8, TypeInt8, TypeFloat16, TypeFloat32, TypeFloat64,
		TypeBool, TypeFixedString, TypeVarString,
	}
	for _, p := range primitives {
		for _, o := range []ByteOrder{OrderLittle, OrderBig} {
			tag := NewTag(p, o)
			require.Equal(t, OrderNative, tag.Intent(), "marked %s tag must classify native", p)
			require.Equal(t, p, tag.Native())
		}
	}
}

func TestComposedInt64OrderTags(t *testing.T) {
	require := require.New(t)

	// No TagInt64LE/BE constants exist, but NewTag composes them; the swap
	// operates on raw bits, so signedness does not matter.
	tag := NewTag(TypeInt64, OrderBig)
	require.True(tag.IsValid())
	require.Equal(TypeInt64, tag.Native())
	require.Equal(OrderBig, tag.Intent())
}

func TestInvalidTags(t *testing.T) {
	require := require.New(t)

	require.False(Tag(0).IsValid(), "zero primitive code is not defined")
	require.False(Tag(0x00FF).IsValid(), "undefined primitive code")
	require.False(Tag(0x1000).IsValid(), "bits outside tag fields")
	require.False((TagUint32BE | Tag(0x8000)).IsValid(), "stray high bit")
	require.Equal("Invalid", Tag(0).String())
}

func TestTagString(t *testing.T) {
	require := require.New(t)

	require.Equal("Uint32BE", TagUint32BE.String())
	require.Equal("Int16LE", TagInt16LE.String())
	require.Equal("Uint64", TagUint64.String())
	require.Equal("Float64", NewTag(TypeFloat64, OrderBig).String(), "marked float renders as native")
}
