package compress

// ZstdCompressor provides Zstandard compression for snapshot payloads.
//
// Zstd favors compression ratio over speed, making it the right choice for
// snapshots kept around for a while: archived buffer states, fixtures, or
// payloads shipped over constrained links.
//
// Two implementations back this type, selected at build time:
//   - cgo builds use valyala/gozstd (libzstd bindings)
//   - pure Go builds use klauspost/compress/zstd
//
// Both emit standard Zstandard frames, so snapshots compress and restore
// interchangeably across build modes.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
