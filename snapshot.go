package ebuf

import (
	"fmt"

	"github.com/arloliu/ebuf/buffer"
	"github.com/arloliu/ebuf/compress"
	"github.com/arloliu/ebuf/errs"
	"github.com/arloliu/ebuf/format"
	"github.com/arloliu/ebuf/internal/hash"
	"github.com/arloliu/ebuf/internal/options"
	"github.com/arloliu/ebuf/internal/pool"
	"github.com/arloliu/ebuf/section"
)

// snapshotConfig holds the snapshot encoder configuration assembled from
// functional options.
type snapshotConfig struct {
	header *section.SnapshotHeader
}

// SnapshotOption represents a functional option for configuring Snapshot.
type SnapshotOption = options.Option[*snapshotConfig]

// WithSnapshotCompression sets the payload compression algorithm.
// The default is format.CompressionNone.
func WithSnapshotCompression(compression format.CompressionType) SnapshotOption {
	return options.New(func(c *snapshotConfig) error {
		c.header.Flag.SetCompression(compression)
		if !c.header.Flag.IsValidCompression() {
			return fmt.Errorf("%w: compression %s", errs.ErrInvalidHeaderFlags, compression)
		}

		return nil
	})
}

// WithSnapshotLittleEndian stores the header fields little-endian.
// This is the default.
func WithSnapshotLittleEndian() SnapshotOption {
	return options.NoError(func(c *snapshotConfig) {
		c.header.Flag.WithLittleEndian()
	})
}

// WithSnapshotBigEndian stores the header fields big-endian, for snapshots
// consumed primarily on big-endian systems.
func WithSnapshotBigEndian() SnapshotOption {
	return options.NoError(func(c *snapshotConfig) {
		c.header.Flag.WithBigEndian()
	})
}

// WithoutSnapshotChecksum omits the xxhash64 payload digest.
// Restore then skips integrity verification.
func WithoutSnapshotChecksum() SnapshotOption {
	return options.NoError(func(c *snapshotConfig) {
		c.header.Flag.SetChecksum(false)
	})
}

// Snapshot serializes a buffer into a self-describing byte slice:
// a fixed 24-byte header followed by the buffer contents, optionally
// compressed. The header records the buffer length, the cursor position,
// the compression algorithm, and an xxhash64 digest of the uncompressed
// contents, so Restore needs nothing but the snapshot bytes.
//
// The buffer is not modified; the returned slice is newly allocated and
// owned by the caller.
func Snapshot(buf *buffer.Buffer, opts ...SnapshotOption) ([]byte, error) {
	cfg := &snapshotConfig{header: section.NewSnapshotHeader()}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	header := cfg.header
	payload := buf.Bytes()

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("snapshot compression failed: %w", err)
	}

	header.OriginalLength = uint32(len(payload))
	header.PayloadLength = uint32(len(compressed))
	header.CursorPos = uint32(buf.Pos())
	if header.Flag.HasChecksum() {
		header.Checksum = hash.Sum64(payload)
	}

	scratch := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(scratch)

	scratch.MustWrite(header.Bytes())
	scratch.MustWrite(compressed)

	return scratch.CopyBytes(), nil
}

// Restore rebuilds a buffer from snapshot bytes produced by Snapshot.
//
// The header is validated (magic number, flags, payload length), the
// payload is decompressed, and when the snapshot carries a digest the
// uncompressed contents are verified against it before a buffer is
// constructed. The cursor is restored to its position at snapshot time.
func Restore(data []byte) (*buffer.Buffer, error) {
	header, err := section.ParseSnapshotHeader(data)
	if err != nil {
		return nil, err
	}

	if len(data) < section.PayloadOffset+int(header.PayloadLength) {
		return nil, errs.ErrSnapshotTooShort
	}
	compressed := data[section.PayloadOffset : section.PayloadOffset+int(header.PayloadLength)]

	codec, err := compress.GetCodec(header.Flag.Compression())
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("snapshot decompression failed: %w", err)
	}

	if len(payload) != int(header.OriginalLength) {
		return nil, errs.ErrSnapshotTooShort
	}
	if header.Flag.HasChecksum() && hash.Sum64(payload) != header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}
	if int(header.CursorPos) > len(payload) {
		return nil, errs.ErrOffsetOutOfRange
	}

	// Copy out of the snapshot (and out of any codec-shared slice) so the
	// restored buffer owns its storage.
	contents := make([]byte, len(payload))
	copy(contents, payload)

	buf := buffer.FromBytes(contents)
	if err := buf.Seek(int(header.CursorPos)); err != nil {
		return nil, err
	}

	return buf, nil
}
