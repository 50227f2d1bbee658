package buffer

import (
	"github.com/arloliu/ebuf/errs"
	"github.com/arloliu/ebuf/format"
)

// String operations for the two string primitives:
//
//   - TypeVarString: UTF-8 bytes followed by a single NUL terminator.
//     Reads scan forward to the terminator; the terminator is consumed but
//     not returned.
//   - TypeFixedString: UTF-8 bytes with no terminator. Reads take an
//     explicit byte count since the buffer carries no length information.
//
// Strings are endian-neutral byte sequences; the ebuf facade delegates
// these operations verbatim with no byte order transform.

// stringType rejects non-string primitives.
func stringType(typ format.PrimitiveType) error {
	if !typ.IsValid() {
		return errs.ErrInvalidPrimitiveType
	}
	if !typ.IsString() {
		return errs.ErrTypeMismatch
	}

	return nil
}

// stringWidth returns the number of bytes the string occupies in the
// buffer, including the NUL terminator for TypeVarString.
func stringWidth(typ format.PrimitiveType, s string) int {
	if typ == format.TypeVarString {
		return len(s) + 1
	}

	return len(s)
}

// pokeString stores the string at offset. Bounds must already be checked.
func (b *Buffer) pokeString(offset int, typ format.PrimitiveType, s string) {
	n := copy(b.data[offset:], s)
	if typ == format.TypeVarString {
		b.data[offset+n] = 0
	}
}

// peekString loads a string at offset. For TypeVarString, size is ignored
// and the string runs to the NUL terminator. Returns the string and the
// number of buffer bytes it occupied.
func (b *Buffer) peekString(offset int, typ format.PrimitiveType, size int) (string, int, error) {
	if typ == format.TypeVarString {
		for i := offset; i < len(b.data); i++ {
			if b.data[i] == 0 {
				return string(b.data[offset:i]), i - offset + 1, nil
			}
		}

		return "", 0, errs.ErrShortBuffer
	}

	if err := b.checkRegion(offset, size); err != nil {
		return "", 0, err
	}

	return string(b.data[offset : offset+size]), size, nil
}

// PokeString writes a string at the given offset without moving the
// cursor.
func (b *Buffer) PokeString(offset int, typ format.PrimitiveType, s string) error {
	if err := stringType(typ); err != nil {
		return err
	}
	if err := b.checkRegion(offset, stringWidth(typ, s)); err != nil {
		return err
	}
	b.pokeString(offset, typ, s)

	return nil
}

// PeekString reads a string at the given offset without moving the cursor.
// For TypeFixedString, size is the byte length to read; for TypeVarString
// it is ignored.
func (b *Buffer) PeekString(offset int, typ format.PrimitiveType, size int) (string, error) {
	if err := stringType(typ); err != nil {
		return "", err
	}
	if offset < 0 || offset > len(b.data) {
		return "", errs.ErrOffsetOutOfRange
	}

	s, _, err := b.peekString(offset, typ, size)

	return s, err
}

// WriteString writes a string at the cursor and advances the cursor past
// it (including the NUL terminator for TypeVarString).
func (b *Buffer) WriteString(typ format.PrimitiveType, s string) error {
	if err := stringType(typ); err != nil {
		return err
	}

	width := stringWidth(typ, s)
	if err := b.checkRegion(b.pos, width); err != nil {
		return err
	}
	b.pokeString(b.pos, typ, s)
	b.pos += width

	return nil
}

// ReadString reads a string at the cursor and advances the cursor past it.
// For TypeFixedString, size is the byte length to read; for TypeVarString
// it is ignored and the cursor stops after the NUL terminator.
func (b *Buffer) ReadString(typ format.PrimitiveType, size int) (string, error) {
	if err := stringType(typ); err != nil {
		return "", err
	}

	s, n, err := b.peekString(b.pos, typ, size)
	if err != nil {
		return "", err
	}
	b.pos += n

	return s, nil
}
