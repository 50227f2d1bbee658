package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferBasics(t *testing.T) {
	require := require.New(t)

	bb := NewByteBuffer(64)
	require.Equal(0, bb.Len())

	bb.MustWrite([]byte{1, 2, 3})
	require.Equal(3, bb.Len())
	require.Equal([]byte{1, 2, 3}, bb.Bytes())

	bb.Reset()
	require.Equal(0, bb.Len())
	require.GreaterOrEqual(cap(bb.B), 64, "reset keeps the allocation")
}

func TestByteBufferCopyBytes(t *testing.T) {
	require := require.New(t)

	bb := NewByteBuffer(8)
	bb.MustWrite([]byte{1, 2, 3})

	out := bb.CopyBytes()
	require.Equal([]byte{1, 2, 3}, out)

	// The copy must not alias the pooled storage.
	bb.B[0] = 9
	require.Equal(byte(1), out[0])
}

func TestByteBufferPoolReuse(t *testing.T) {
	require := require.New(t)

	p := NewByteBufferPool(32, 1024)

	bb := p.Get()
	require.NotNil(bb)
	bb.MustWrite([]byte{1, 2, 3})
	p.Put(bb)

	got := p.Get()
	require.NotNil(got)
	require.Equal(0, got.Len(), "pooled buffers come back empty")
}

func TestByteBufferPoolDiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	bb.B = make([]byte, 0, 128)
	p.Put(bb) // over threshold, dropped without panicking

	p.Put(nil) // nil is ignored
}

func TestSnapshotBufferHelpers(t *testing.T) {
	require := require.New(t)

	bb := GetSnapshotBuffer()
	require.NotNil(bb)
	require.Equal(0, bb.Len())
	bb.MustWrite([]byte{1})
	PutSnapshotBuffer(bb)
}
