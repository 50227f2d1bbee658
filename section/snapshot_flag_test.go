package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ebuf/endian"
	"github.com/arloliu/ebuf/errs"
	"github.com/arloliu/ebuf/format"
)

func TestNewSnapshotFlag(t *testing.T) {
	require := require.New(t)

	flag := NewSnapshotFlag()
	require.True(flag.IsValidMagicNumber())
	require.Equal(uint16(MagicSnapshotV1Opt), flag.GetMagicNumber())
	require.True(flag.IsLittleEndian())
	require.False(flag.IsBigEndian())
	require.True(flag.HasChecksum())
	require.Equal(format.CompressionNone, flag.Compression())
	require.NoError(flag.Validate())
}

func TestSnapshotFlagEndianness(t *testing.T) {
	require := require.New(t)

	flag := NewSnapshotFlag()

	flag.WithBigEndian()
	require.True(flag.IsBigEndian())
	require.Equal(endian.GetBigEndianEngine(), flag.GetEndianEngine())

	flag.WithLittleEndian()
	require.True(flag.IsLittleEndian())
	require.Equal(endian.GetLittleEndianEngine(), flag.GetEndianEngine())

	// Toggling endianness must not disturb the magic number.
	require.True(flag.IsValidMagicNumber())
}

func TestSnapshotFlagChecksumToggle(t *testing.T) {
	require := require.New(t)

	flag := NewSnapshotFlag()
	flag.SetChecksum(false)
	require.False(flag.HasChecksum())
	flag.SetChecksum(true)
	require.True(flag.HasChecksum())
}

func TestSnapshotFlagCompression(t *testing.T) {
	require := require.New(t)

	flag := NewSnapshotFlag()
	for _, compression := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd,
		format.CompressionS2, format.CompressionLZ4,
	} {
		flag.SetCompression(compression)
		require.Equal(compression, flag.Compression())
		require.True(flag.IsValidCompression())
		require.NoError(flag.Validate())
	}

	flag.SetCompression(format.CompressionType(0x9))
	require.False(flag.IsValidCompression())
	require.ErrorIs(flag.Validate(), errs.ErrInvalidHeaderFlags)
}

func TestSnapshotFlagValidate(t *testing.T) {
	require := require.New(t)

	flag := NewSnapshotFlag()
	flag.Options = (flag.Options & ^uint16(MagicNumberMask)) | 0x1230
	require.ErrorIs(flag.Validate(), errs.ErrInvalidMagicNumber)

	flag = NewSnapshotFlag()
	flag.Options |= 0x0004 // reserved bit
	require.ErrorIs(flag.Validate(), errs.ErrInvalidHeaderFlags)
}
