// Package errs defines the sentinel errors shared across ebuf packages.
//
// All errors are plain sentinel values so callers can classify failures
// with errors.Is. Packages may wrap them with fmt.Errorf("...: %w", err)
// to add context; the sentinel always remains reachable.
package errs

import "errors"

// Type tag and primitive type errors.
var (
	// ErrInvalidTypeTag indicates a type tag whose primitive code, after
	// masking off the order marker, is not a recognized primitive type.
	// This is a caller error and is reported before any buffer access.
	ErrInvalidTypeTag = errors.New("invalid type tag")

	// ErrInvalidPrimitiveType indicates an unrecognized native primitive
	// type passed to the raw buffer primitive.
	ErrInvalidPrimitiveType = errors.New("invalid primitive type")

	// ErrTypeMismatch indicates a primitive type used with the wrong
	// operation class, such as a string type on a numeric operation.
	ErrTypeMismatch = errors.New("primitive type mismatch")
)

// Raw buffer faults.
var (
	// ErrOffsetOutOfRange indicates an offset or seek position outside the
	// buffer bounds.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrShortBuffer indicates an operation that would extend past the end
	// of the buffer.
	ErrShortBuffer = errors.New("insufficient buffer space")

	// ErrInvalidFillSize indicates a fill region size that is negative or
	// not a multiple of the element width.
	ErrInvalidFillSize = errors.New("invalid fill region size")

	// ErrInvalidBufferSize indicates a non-positive buffer allocation size.
	ErrInvalidBufferSize = errors.New("invalid buffer size")
)

// Snapshot format errors.
var (
	// ErrInvalidHeaderSize indicates a snapshot header shorter than the
	// fixed header size.
	ErrInvalidHeaderSize = errors.New("invalid snapshot header size")

	// ErrInvalidMagicNumber indicates a snapshot header whose magic number
	// does not identify the ebuf snapshot format.
	ErrInvalidMagicNumber = errors.New("invalid magic number")

	// ErrInvalidHeaderFlags indicates a snapshot header with unknown flag
	// bits or an unsupported compression type.
	ErrInvalidHeaderFlags = errors.New("invalid snapshot header flags")

	// ErrChecksumMismatch indicates a snapshot payload whose xxhash64
	// digest does not match the digest recorded in the header.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")

	// ErrSnapshotTooShort indicates snapshot data truncated before the end
	// of the payload declared by the header.
	ErrSnapshotTooShort = errors.New("snapshot data too short")
)
