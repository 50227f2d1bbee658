package section

import (
	"github.com/arloliu/ebuf/endian"
	"github.com/arloliu/ebuf/errs"
	"github.com/arloliu/ebuf/format"
)

// SnapshotFlag represents the packed field for various flags in the
// snapshot header.
type SnapshotFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is the checksum flag, 0 means no checksum, 1 means the header
	// carries an xxhash64 digest of the uncompressed payload.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means
	// big-endian header fields.
	// Bits 2-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number identifying the snapshot format:
	//   - 0xEB10 (0b1110_1011_0001_0000): Buffer snapshot format v1
	Options uint16

	// CompressionType is an enum indicating the compression applied to the
	// snapshot payload.
	CompressionType uint8
}

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

// NewSnapshotFlag creates a new SnapshotFlag with default settings:
// little-endian header fields, checksum enabled, no compression.
func NewSnapshotFlag() SnapshotFlag {
	flag := SnapshotFlag{
		Options:         MagicSnapshotV1Opt,
		CompressionType: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()
	flag.SetChecksum(true)

	return flag
}

// HasChecksum returns whether the header carries a payload digest.
func (f SnapshotFlag) HasChecksum() bool {
	return (f.Options & ChecksumMask) != 0
}

// SetChecksum enables or disables the payload digest.
func (f *SnapshotFlag) SetChecksum(enabled bool) {
	if enabled {
		f.Options |= ChecksumMask
	} else {
		f.Options &^= ChecksumMask
	}
}

// IsLittleEndian returns whether the header fields are little-endian.
func (f SnapshotFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the header fields are big-endian.
func (f SnapshotFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian header field order.
func (f *SnapshotFlag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian header field order.
func (f *SnapshotFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f SnapshotFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Compression returns the payload compression type.
func (f SnapshotFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *SnapshotFlag) SetCompression(compression format.CompressionType) {
	f.CompressionType = uint8(compression)
}

// IsValidMagicNumber checks if the magic number is valid.
func (f SnapshotFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicSnapshotV1Opt
}

// IsValidCompression checks if the compression type is valid.
func (f SnapshotFlag) IsValidCompression() bool {
	_, ok := validCompressions[f.CompressionType]
	return ok
}

// Validate checks if the flag contains valid values.
func (f SnapshotFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	if (f.Options & ReservedBitsMask) != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.IsValidCompression() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// GetEndianEngine returns the appropriate endian engine based on the flag.
func (f SnapshotFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
