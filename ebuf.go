// Package ebuf provides an endianness-aware binary codec over a raw byte
// buffer primitive.
//
// Callers declare the desired on-the-wire byte order for fixed-width
// integer values independently of the host machine's native byte order by
// passing a format.Tag (a native primitive type plus an explicit order)
// instead of a bare primitive type. The facade converts values between the
// host order and the declared order transparently on every fill, peek,
// poke, read, and write, then delegates to the raw buffer primitive using
// only the bare native type — the order intent never reaches the buffer.
//
// # Basic Usage
//
//	buf, _ := buffer.New(64)
//
//	// Write 0x11223344 big-endian regardless of host order.
//	_ = ebuf.Write(buf, format.TagUint32BE, 0x11223344)
//
//	// Read it back with the same tag; the original value returns on any
//	// host.
//	buf.Rewind()
//	v, _ := ebuf.Read(buf, format.TagUint32BE)
//
// Values travel as uint64 raw bit patterns: integers are truncated to the
// primitive's width, floats are carried via math.Float64bits and friends,
// bools as 0 or 1. Float, bool, and string tags always pass through
// unconverted; only 16-, 32-, and 64-bit integer tags are subject to byte
// order conversion.
//
// # Error Handling
//
// The facade introduces exactly one error of its own: errs.ErrInvalidTypeTag
// for tags whose primitive code is unrecognized, reported before any buffer
// access. Every other failure is whatever the raw buffer primitive
// signals, propagated unchanged.
package ebuf

import (
	"github.com/arloliu/ebuf/endian"
	"github.com/arloliu/ebuf/errs"
	"github.com/arloliu/ebuf/format"
)

// RawBuffer is the raw buffer primitive the facade delegates to: an opaque
// byte region plus a cursor, addressed with bare native primitive types in
// host byte order. buffer.Buffer is the canonical implementation.
type RawBuffer interface {
	// Fill replicates value across size bytes starting at offset.
	// The cursor is not moved.
	Fill(offset int, typ format.PrimitiveType, value uint64, size int) error
	// Peek reads a value at offset without moving the cursor.
	Peek(offset int, typ format.PrimitiveType) (uint64, error)
	// Poke writes a value at offset without moving the cursor.
	Poke(offset int, typ format.PrimitiveType, value uint64) error
	// Read reads a value at the cursor and advances it by the type width.
	Read(typ format.PrimitiveType) (uint64, error)
	// Write writes a value at the cursor and advances it by the type width.
	Write(typ format.PrimitiveType, value uint64) error
}

// StringBuffer is the optional string surface of a raw buffer primitive.
// String types are endian-neutral, so the facade delegates these verbatim.
type StringBuffer interface {
	PokeString(offset int, typ format.PrimitiveType, s string) error
	PeekString(offset int, typ format.PrimitiveType, size int) (string, error)
	WriteString(typ format.PrimitiveType, s string) error
	ReadString(typ format.PrimitiveType, size int) (string, error)
}

// swapRequired is the single byte-order policy shared by every operation:
//
//   - native intent: never swap
//   - force-little: swap iff the host is not little-endian
//   - force-big: swap iff the host is little-endian
//
// Tag.Intent already collapses non-swappable primitives to native.
func swapRequired(tag format.Tag) bool {
	switch tag.Intent() {
	case format.OrderLittle:
		return !endian.IsNativeLittleEndian()
	case format.OrderBig:
		return endian.IsNativeLittleEndian()
	default:
		return false
	}
}

// Transform converts a value between the host byte order and the order the
// tag declares. It is its own inverse, so the same call serves both the
// write path (before delegating) and the read path (after delegating).
//
// Values whose tag classifies as native — unmarked tags and all float,
// bool, and string tags — are returned unchanged. The swap is a pure bit
// permutation over the primitive's width; the bits outside that width are
// cleared for 16- and 32-bit primitives.
//
// Returns errs.ErrInvalidTypeTag if the tag's primitive code is not a
// recognized native type.
func Transform(tag format.Tag, value uint64) (uint64, error) {
	if !tag.IsValid() {
		return 0, errs.ErrInvalidTypeTag
	}

	if !swapRequired(tag) {
		return value, nil
	}

	switch tag.Native().Size() {
	case 2:
		return uint64(endian.Swap16(uint16(value))), nil
	case 4:
		return uint64(endian.Swap32(uint32(value))), nil
	default:
		return endian.Swap64(value), nil
	}
}

// Fill converts value to the tag's declared byte order, then replicates it
// across size bytes starting at offset. The cursor is not moved.
func Fill(buf RawBuffer, offset int, tag format.Tag, value uint64, size int) error {
	v, err := Transform(tag, value)
	if err != nil {
		return err
	}

	return buf.Fill(offset, tag.Native(), v, size)
}

// Peek reads a value at offset without moving the cursor and converts it
// from the tag's declared byte order to the host order.
func Peek(buf RawBuffer, offset int, tag format.Tag) (uint64, error) {
	if !tag.IsValid() {
		return 0, errs.ErrInvalidTypeTag
	}

	v, err := buf.Peek(offset, tag.Native())
	if err != nil {
		return 0, err
	}

	return Transform(tag, v)
}

// Poke converts value to the tag's declared byte order and writes it at
// offset. The cursor is not moved.
func Poke(buf RawBuffer, offset int, tag format.Tag, value uint64) error {
	v, err := Transform(tag, value)
	if err != nil {
		return err
	}

	return buf.Poke(offset, tag.Native(), v)
}

// Read reads a value at the cursor, advances the cursor, and converts the
// value from the tag's declared byte order to the host order.
func Read(buf RawBuffer, tag format.Tag) (uint64, error) {
	if !tag.IsValid() {
		return 0, errs.ErrInvalidTypeTag
	}

	v, err := buf.Read(tag.Native())
	if err != nil {
		return 0, err
	}

	return Transform(tag, v)
}

// Write converts value to the tag's declared byte order, writes it at the
// cursor, and advances the cursor.
func Write(buf RawBuffer, tag format.Tag, value uint64) error {
	v, err := Transform(tag, value)
	if err != nil {
		return err
	}

	return buf.Write(tag.Native(), v)
}

// WriteString writes a string at the cursor. String types are
// endian-neutral; the call delegates verbatim.
func WriteString(buf StringBuffer, tag format.Tag, s string) error {
	if !tag.IsValid() {
		return errs.ErrInvalidTypeTag
	}

	return buf.WriteString(tag.Native(), s)
}

// ReadString reads a string at the cursor. For format.TagFixedString,
// size is the byte length to read; for format.TagVarString it is ignored.
func ReadString(buf StringBuffer, tag format.Tag, size int) (string, error) {
	if !tag.IsValid() {
		return "", errs.ErrInvalidTypeTag
	}

	return buf.ReadString(tag.Native(), size)
}

// PokeString writes a string at offset without moving the cursor.
func PokeString(buf StringBuffer, offset int, tag format.Tag, s string) error {
	if !tag.IsValid() {
		return errs.ErrInvalidTypeTag
	}

	return buf.PokeString(offset, tag.Native(), s)
}

// PeekString reads a string at offset without moving the cursor.
func PeekString(buf StringBuffer, offset int, tag format.Tag, size int) (string, error) {
	if !tag.IsValid() {
		return "", errs.ErrInvalidTypeTag
	}

	return buf.PeekString(offset, tag.Native(), size)
}
