// Package buffer implements the raw buffer primitive: a fixed-size byte
// region with a read/write cursor and typed accessors for the native
// primitive types.
//
// All multi-byte values are stored in the host's native byte order. The
// package knows nothing about byte order intent; callers that need an
// explicit on-the-wire order go through the ebuf facade, which converts
// values before or after delegating here.
//
// Numeric values travel as uint64 raw bit patterns: integers are truncated
// to the primitive's width on write and zero-extended on read, floats are
// carried as their IEEE 754 bit patterns (math.Float64bits and friends),
// and bools as 0 or 1. String types use the dedicated string operations.
//
// Buffers never grow. Allocation happens once in New or FromBytes; every
// operation that would touch bytes past the end fails with
// errs.ErrShortBuffer before any mutation.
package buffer

import (
	"github.com/arloliu/ebuf/endian"
	"github.com/arloliu/ebuf/errs"
	"github.com/arloliu/ebuf/format"
)

// Buffer is a fixed-size byte region with a cursor.
//
// Read and Write operate at the cursor and advance it by the width of the
// primitive. Peek, Poke, and Fill address the buffer by explicit offset
// and leave the cursor untouched.
type Buffer struct {
	data []byte
	pos  int
}

// New creates a zero-filled buffer of the given size in bytes with the
// cursor at offset 0.
func New(size int) (*Buffer, error) {
	if size <= 0 {
		return nil, errs.ErrInvalidBufferSize
	}

	return &Buffer{data: make([]byte, size)}, nil
}

// FromBytes wraps an existing byte slice without copying. The buffer and
// the caller share the underlying storage; the cursor starts at offset 0.
func FromBytes(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns the underlying byte slice. The returned slice shares
// storage with the buffer; the caller should not resize it.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the buffer size in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Pos returns the current cursor position.
func (b *Buffer) Pos() int {
	return b.pos
}

// Remaining returns the number of bytes between the cursor and the end of
// the buffer.
func (b *Buffer) Remaining() int {
	return len(b.data) - b.pos
}

// Seek moves the cursor to an absolute byte offset. Seeking to Len() is
// allowed and leaves the buffer with zero remaining bytes.
func (b *Buffer) Seek(pos int) error {
	if pos < 0 || pos > len(b.data) {
		return errs.ErrOffsetOutOfRange
	}
	b.pos = pos

	return nil
}

// Rewind moves the cursor back to offset 0.
func (b *Buffer) Rewind() {
	b.pos = 0
}

// checkRegion validates an [offset, offset+size) region against the
// buffer bounds.
func (b *Buffer) checkRegion(offset, size int) error {
	if offset < 0 || offset > len(b.data) {
		return errs.ErrOffsetOutOfRange
	}
	if size < 0 || offset+size > len(b.data) {
		return errs.ErrShortBuffer
	}

	return nil
}

// numericWidth returns the byte width of a numeric primitive, rejecting
// string and unknown types.
func numericWidth(typ format.PrimitiveType) (int, error) {
	if !typ.IsValid() {
		return 0, errs.ErrInvalidPrimitiveType
	}
	if typ.IsString() {
		return 0, errs.ErrTypeMismatch
	}

	return typ.Size(), nil
}

// put stores a value of the given width at offset in native byte order.
// Bounds must already be checked.
func (b *Buffer) put(offset, width int, typ format.PrimitiveType, value uint64) {
	engine := endian.NativeEngine()

	switch width {
	case 1:
		if typ == format.TypeBool && value != 0 {
			value = 1
		}
		b.data[offset] = byte(value)
	case 2:
		engine.PutUint16(b.data[offset:], uint16(value))
	case 4:
		engine.PutUint32(b.data[offset:], uint32(value))
	case 8:
		engine.PutUint64(b.data[offset:], value)
	}
}

// get loads a value of the given width from offset in native byte order,
// zero-extended to uint64. Bounds must already be checked.
func (b *Buffer) get(offset, width int) uint64 {
	engine := endian.NativeEngine()

	switch width {
	case 1:
		return uint64(b.data[offset])
	case 2:
		return uint64(engine.Uint16(b.data[offset:]))
	case 4:
		return uint64(engine.Uint32(b.data[offset:]))
	default:
		return engine.Uint64(b.data[offset:])
	}
}

// Fill replicates value across the region of size bytes starting at
// offset, writing complete elements of the primitive's width. The region
// size must be a non-negative multiple of the width; a partial trailing
// element would be ambiguous and is rejected with errs.ErrInvalidFillSize.
// The cursor is not moved.
func (b *Buffer) Fill(offset int, typ format.PrimitiveType, value uint64, size int) error {
	width, err := numericWidth(typ)
	if err != nil {
		return err
	}
	if size < 0 || size%width != 0 {
		return errs.ErrInvalidFillSize
	}
	if err := b.checkRegion(offset, size); err != nil {
		return err
	}

	for end := offset + size; offset < end; offset += width {
		b.put(offset, width, typ, value)
	}

	return nil
}

// Peek reads a value at the given offset without moving the cursor.
func (b *Buffer) Peek(offset int, typ format.PrimitiveType) (uint64, error) {
	width, err := numericWidth(typ)
	if err != nil {
		return 0, err
	}
	if err := b.checkRegion(offset, width); err != nil {
		return 0, err
	}

	return b.get(offset, width), nil
}

// Poke writes a value at the given offset without moving the cursor.
func (b *Buffer) Poke(offset int, typ format.PrimitiveType, value uint64) error {
	width, err := numericWidth(typ)
	if err != nil {
		return err
	}
	if err := b.checkRegion(offset, width); err != nil {
		return err
	}
	b.put(offset, width, typ, value)

	return nil
}

// Read reads a value at the cursor and advances the cursor by the
// primitive's width.
func (b *Buffer) Read(typ format.PrimitiveType) (uint64, error) {
	width, err := numericWidth(typ)
	if err != nil {
		return 0, err
	}
	if err := b.checkRegion(b.pos, width); err != nil {
		return 0, err
	}

	v := b.get(b.pos, width)
	b.pos += width

	return v, nil
}

// Write writes a value at the cursor and advances the cursor by the
// primitive's width.
func (b *Buffer) Write(typ format.PrimitiveType, value uint64) error {
	width, err := numericWidth(typ)
	if err != nil {
		return err
	}
	if err := b.checkRegion(b.pos, width); err != nil {
		return err
	}
	b.put(b.pos, width, typ, value)
	b.pos += width

	return nil
}
