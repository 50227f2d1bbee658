package section

import (
	"github.com/arloliu/ebuf/errs"
)

// SnapshotHeader represents the fixed-size header section at the start of
// a buffer snapshot.
//
// Layout (24 bytes):
//
//	offset 0-1:   Flag.Options (always little-endian, parsed first to
//	              determine the byte order of the remaining fields)
//	offset 2:     Flag.CompressionType
//	offset 3:     reserved, must be 0
//	offset 4-7:   PayloadLength
//	offset 8-11:  OriginalLength
//	offset 12-15: CursorPos
//	offset 16-23: Checksum
type SnapshotHeader struct {
	// PayloadLength is the number of payload bytes following the header,
	// after compression if any.
	PayloadLength uint32
	// OriginalLength is the buffer length in bytes before compression.
	OriginalLength uint32
	// CursorPos is the buffer's cursor position at snapshot time.
	CursorPos uint32
	// Checksum is the xxhash64 digest of the uncompressed payload,
	// 0 when the checksum flag is disabled.
	Checksum uint64

	// Flag is a packed field for various flags and the magic number.
	Flag SnapshotFlag
}

// NewSnapshotHeader creates a SnapshotHeader with default flags.
// The lengths, cursor position, and checksum are set by the snapshot
// encoder.
func NewSnapshotHeader() *SnapshotHeader {
	return &SnapshotHeader{
		Flag: NewSnapshotFlag(),
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 24 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 24 bytes, or flag
//     validation errors
func (h *SnapshotHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Parse options first to determine endianness (the Options field
	// itself is always little-endian)
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.CompressionType = data[2]

	if err := h.Flag.Validate(); err != nil {
		return err
	}
	if data[3] != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	engine := h.Flag.GetEndianEngine()

	h.PayloadLength = engine.Uint32(data[4:8])
	h.OriginalLength = engine.Uint32(data[8:12])
	h.CursorPos = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	return nil
}

// Bytes serializes the SnapshotHeader into a byte slice.
func (h *SnapshotHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.Flag.GetEndianEngine()

	// The Options field is self-describing, always little-endian.
	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.CompressionType
	b[3] = 0

	engine.PutUint32(b[4:8], h.PayloadLength)
	engine.PutUint32(b[8:12], h.OriginalLength)
	engine.PutUint32(b[12:16], h.CursorPos)
	engine.PutUint64(b[16:24], h.Checksum)

	return b
}

// ParseSnapshotHeader parses a SnapshotHeader from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 24 bytes)
//
// Returns:
//   - SnapshotHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize or flag validation errors
func ParseSnapshotHeader(data []byte) (SnapshotHeader, error) {
	if len(data) < HeaderSize {
		return SnapshotHeader{}, errs.ErrInvalidHeaderSize
	}

	h := SnapshotHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return SnapshotHeader{}, err
	}

	return h, nil
}
