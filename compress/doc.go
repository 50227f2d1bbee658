// Package compress provides compression and decompression codecs for ebuf
// buffer snapshot payloads.
//
// Compression is applied at the payload level: the snapshot encoder hands
// the raw buffer contents to a Codec and stores the result after the fixed
// snapshot header. Which algorithm to use is recorded in the header flags,
// so Restore can pick the matching codec without caller input.
//
// Supported algorithms:
//   - None: no compression (fastest, largest)
//   - Zstd: excellent compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fast decompression, moderate compression
//
// The Zstd codec has two implementations selected by build tags: a cgo
// binding (valyala/gozstd) when cgo is available, and a pure Go fallback
// (klauspost/compress/zstd) otherwise. Both produce standard Zstandard
// frames and interoperate freely.
//
// All codecs are stateless values, safe for concurrent use; internal
// encoder/decoder state is pooled with sync.Pool.
package compress
