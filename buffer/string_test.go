package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ebuf/errs"
	"github.com/arloliu/ebuf/format"
)

func TestVarStringRoundTrip(t *testing.T) {
	require := require.New(t)

	buf, err := New(16)
	require.NoError(err)

	require.NoError(buf.WriteString(format.TypeVarString, "hello"))
	require.Equal(6, buf.Pos(), "cursor advances past the NUL terminator")

	buf.Rewind()
	s, err := buf.ReadString(format.TypeVarString, 0)
	require.NoError(err)
	require.Equal("hello", s)
	require.Equal(6, buf.Pos())

	// Raw layout: bytes then terminator.
	require.Equal([]byte{'h', 'e', 'l', 'l', 'o', 0}, buf.Bytes()[:6])
}

func TestVarStringEmpty(t *testing.T) {
	require := require.New(t)

	buf, err := New(4)
	require.NoError(err)

	require.NoError(buf.WriteString(format.TypeVarString, ""))
	require.Equal(1, buf.Pos())

	buf.Rewind()
	s, err := buf.ReadString(format.TypeVarString, 0)
	require.NoError(err)
	require.Equal("", s)
}

func TestVarStringMissingTerminator(t *testing.T) {
	require := require.New(t)

	buf := FromBytes([]byte{'a', 'b', 'c'})
	_, err := buf.ReadString(format.TypeVarString, 0)
	require.ErrorIs(err, errs.ErrShortBuffer, "unterminated var string must fail")
}

func TestFixedStringRoundTrip(t *testing.T) {
	require := require.New(t)

	buf, err := New(8)
	require.NoError(err)

	require.NoError(buf.WriteString(format.TypeFixedString, "abcd"))
	require.Equal(4, buf.Pos(), "no terminator for fixed strings")

	buf.Rewind()
	s, err := buf.ReadString(format.TypeFixedString, 4)
	require.NoError(err)
	require.Equal("abcd", s)
	require.Equal(4, buf.Pos())
}

func TestPeekPokeStringDoNotMoveCursor(t *testing.T) {
	require := require.New(t)

	buf, err := New(16)
	require.NoError(err)

	require.NoError(buf.PokeString(2, format.TypeVarString, "xy"))
	require.Equal(0, buf.Pos())

	s, err := buf.PeekString(2, format.TypeVarString, 0)
	require.NoError(err)
	require.Equal("xy", s)
	require.Equal(0, buf.Pos())

	s, err = buf.PeekString(2, format.TypeFixedString, 2)
	require.NoError(err)
	require.Equal("xy", s)
}

func TestStringBounds(t *testing.T) {
	require := require.New(t)

	buf, err := New(4)
	require.NoError(err)

	require.ErrorIs(buf.WriteString(format.TypeVarString, "abcd"), errs.ErrShortBuffer,
		"terminator must also fit")
	require.NoError(buf.WriteString(format.TypeFixedString, "abcd"))

	_, err = buf.PeekString(2, format.TypeFixedString, 4)
	require.ErrorIs(err, errs.ErrShortBuffer)
	_, err = buf.PeekString(-1, format.TypeFixedString, 2)
	require.ErrorIs(err, errs.ErrOffsetOutOfRange)
}

func TestStringTypeFaults(t *testing.T) {
	require := require.New(t)

	buf, err := New(4)
	require.NoError(err)

	require.ErrorIs(buf.WriteString(format.TypeUint32, "abc"), errs.ErrTypeMismatch)
	_, err = buf.ReadString(format.PrimitiveType(0xAA), 0)
	require.ErrorIs(err, errs.ErrInvalidPrimitiveType)
}
