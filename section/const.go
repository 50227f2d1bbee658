package section

const (
	// Bit masks for the packed snapshot flag word
	ChecksumMask     = 0x0001 // Mask for checksum bit (bit 0)
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicSnapshotV1Opt is the version 1 magic number for the ebuf buffer
	// snapshot format (bits 4-15).
	MagicSnapshotV1Opt = 0xEB10
)

// Snapshot layout constants.
const (
	// HeaderSize is the fixed snapshot header size in bytes.
	HeaderSize = 24
	// PayloadOffset is the byte offset where the payload starts.
	PayloadOffset = HeaderSize
)
