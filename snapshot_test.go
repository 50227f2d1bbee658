package ebuf

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ebuf/buffer"
	"github.com/arloliu/ebuf/errs"
	"github.com/arloliu/ebuf/format"
	"github.com/arloliu/ebuf/section"
)

// makeSnapshotBuffer builds a buffer with a mixed payload and a non-zero
// cursor for snapshot tests.
func makeSnapshotBuffer(t *testing.T) *buffer.Buffer {
	t.Helper()

	buf, err := buffer.New(64)
	require.NoError(t, err)
	require.NoError(t, Write(buf, format.TagUint32BE, 0x11223344))
	require.NoError(t, Write(buf, format.TagUint64LE, 0x8899AABBCCDDEEFF))
	require.NoError(t, WriteString(buf, format.TagVarString, "snapshot"))
	require.NoError(t, Fill(buf, 32, format.TagUint16LE, 0xABCD, 16))

	return buf
}

func TestSnapshotRoundTrip(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, compression := range compressions {
		t.Run(compression.String(), func(t *testing.T) {
			require := require.New(t)

			buf := makeSnapshotBuffer(t)
			data, err := Snapshot(buf, WithSnapshotCompression(compression))
			require.NoError(err)
			require.GreaterOrEqual(len(data), section.HeaderSize)

			restored, err := Restore(data)
			require.NoError(err)
			require.Equal(buf.Bytes(), restored.Bytes())
			require.Equal(buf.Pos(), restored.Pos(), "cursor position survives the round trip")

			// The restored buffer is fully usable.
			v, err := Peek(restored, 0, format.TagUint32BE)
			require.NoError(err)
			require.Equal(uint64(0x11223344), v)
		})
	}
}

func TestSnapshotHeaderFields(t *testing.T) {
	require := require.New(t)

	buf := makeSnapshotBuffer(t)
	data, err := Snapshot(buf)
	require.NoError(err)

	header, err := section.ParseSnapshotHeader(data)
	require.NoError(err)
	require.True(header.Flag.IsValidMagicNumber())
	require.True(header.Flag.HasChecksum())
	require.Equal(format.CompressionNone, header.Flag.Compression())
	require.Equal(uint32(buf.Len()), header.OriginalLength)
	require.Equal(uint32(buf.Pos()), header.CursorPos)
	require.NotZero(header.Checksum)
}

func TestSnapshotBigEndianHeader(t *testing.T) {
	require := require.New(t)

	buf := makeSnapshotBuffer(t)
	data, err := Snapshot(buf, WithSnapshotBigEndian())
	require.NoError(err)

	header, err := section.ParseSnapshotHeader(data)
	require.NoError(err)
	require.True(header.Flag.IsBigEndian())
	require.Equal(uint32(buf.Len()), header.OriginalLength)

	restored, err := Restore(data)
	require.NoError(err)
	require.Equal(buf.Bytes(), restored.Bytes())
}

func TestSnapshotWithoutChecksum(t *testing.T) {
	require := require.New(t)

	buf := makeSnapshotBuffer(t)
	data, err := Snapshot(buf, WithoutSnapshotChecksum())
	require.NoError(err)

	header, err := section.ParseSnapshotHeader(data)
	require.NoError(err)
	require.False(header.Flag.HasChecksum())
	require.Zero(header.Checksum)

	// Without a digest, a payload flip goes undetected by Restore; the
	// caller opted out of integrity verification.
	data[section.PayloadOffset] ^= 0xFF
	_, err = Restore(data)
	require.NoError(err)
}

func TestRestoreDetectsCorruption(t *testing.T) {
	require := require.New(t)

	buf := makeSnapshotBuffer(t)
	data, err := Snapshot(buf)
	require.NoError(err)

	data[section.PayloadOffset] ^= 0xFF
	_, err = Restore(data)
	require.ErrorIs(err, errs.ErrChecksumMismatch)
}

func TestRestoreRejectsBadMagic(t *testing.T) {
	require := require.New(t)

	buf := makeSnapshotBuffer(t)
	data, err := Snapshot(buf)
	require.NoError(err)

	data[1] ^= 0xF0 // clobber the magic number bits
	_, err = Restore(data)
	require.ErrorIs(err, errs.ErrInvalidMagicNumber)
}

func TestRestoreRejectsTruncatedData(t *testing.T) {
	require := require.New(t)

	buf := makeSnapshotBuffer(t)
	data, err := Snapshot(buf)
	require.NoError(err)

	_, err = Restore(data[:section.HeaderSize-1])
	require.ErrorIs(err, errs.ErrInvalidHeaderSize)

	_, err = Restore(data[:len(data)-1])
	require.ErrorIs(err, errs.ErrSnapshotTooShort)
}

func TestSnapshotInvalidCompressionOption(t *testing.T) {
	buf := makeSnapshotBuffer(t)
	_, err := Snapshot(buf, WithSnapshotCompression(format.CompressionType(0xAA)))
	require.ErrorIs(t, err, errs.ErrInvalidHeaderFlags)
}

func TestSnapshotDoesNotAliasBuffer(t *testing.T) {
	require := require.New(t)

	buf := makeSnapshotBuffer(t)
	data, err := Snapshot(buf)
	require.NoError(err)

	restored, err := Restore(data)
	require.NoError(err)

	// Mutating the original buffer must not leak into the restored copy.
	require.NoError(Poke(buf, 0, format.TagUint32BE, 0xFFFFFFFF))
	v, err := Peek(restored, 0, format.TagUint32BE)
	require.NoError(err)
	require.Equal(uint64(0x11223344), v)
}
