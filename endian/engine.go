// Package endian provides byte order detection, byte-swap primitives, and
// byte order engines for ebuf's binary buffer operations.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine
// interface, and adds the host-order detection and byte-swap routines that
// the endianness-aware facade builds on.
//
// # Native Order Detection
//
// The host's byte order is detected once per process and cached:
//
//	if endian.IsNativeLittleEndian() {
//	    // host stores the LSB at the lowest address
//	}
//
// Detection is idempotent and side-effect-free; the byte order of a running
// process never changes, so the cached result is valid for the process
// lifetime.
//
// # Byte Swapping
//
// Swap16, Swap32, and Swap64 are pure bit permutations that mirror every
// byte lane. They are involutions: Swap(Swap(v)) == v for all v. They are
// type-agnostic and trust their caller; the decision of whether a value
// needs swapping belongs one layer up.
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"sync"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for convenient byte order
// operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian
// from the standard library, making it fully compatible with existing Go
// code while providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// detectByteOrder probes the host byte order by writing a known 16-bit
// pattern to a 2-byte scratch region and inspecting the byte at the lowest
// address. The scratch region lives on the stack, so there is nothing to
// release and the probe cannot fail.
func detectByteOrder() binary.ByteOrder {
	// 0x0005: a little-endian host stores the LSB (0x05) first,
	// a big-endian host stores the MSB (0x00) first.
	var probe uint16 = 0x0005

	b := (*[2]byte)(unsafe.Pointer(&probe))
	if b[0] == 0x05 {
		return binary.LittleEndian
	}

	return binary.BigEndian
}

// nativeOrder memoizes the probe. Detection is referentially transparent,
// so a racing first use at worst repeats the probe, never observes a
// different result.
var nativeOrder = sync.OnceValue(detectByteOrder)

// CheckEndianness returns the host machine's native byte order.
// The result is computed once per process and cached.
func CheckEndianness() binary.ByteOrder {
	return nativeOrder()
}

// IsNativeLittleEndian reports whether the host stores multi-byte integers
// least-significant byte first.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// IsNativeBigEndian reports whether the host stores multi-byte integers
// most-significant byte first.
func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// CompareNativeEndian reports whether the given engine matches the host's
// native byte order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// NativeEngine returns the engine matching the host's native byte order.
// Writing through it reproduces the host's own in-memory representation.
func NativeEngine() EndianEngine {
	engine, _ := CheckEndianness().(EndianEngine)
	return engine
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Swap16 reverses the byte order of a 16-bit value.
func Swap16(v uint16) uint16 {
	return (v<<8)&0xFF00 | (v>>8)&0x00FF
}

// Swap32 reverses the byte order of a 32-bit value.
func Swap32(v uint32) uint32 {
	return (v<<24)&0xFF000000 |
		(v<<8)&0x00FF0000 |
		(v>>8)&0x0000FF00 |
		(v>>24)&0x000000FF
}

// Swap64 reverses the byte order of a 64-bit value.
func Swap64(v uint64) uint64 {
	return (v<<56)&0xFF00000000000000 |
		(v<<40)&0x00FF000000000000 |
		(v<<24)&0x0000FF0000000000 |
		(v<<8)&0x000000FF00000000 |
		(v>>8)&0x00000000FF000000 |
		(v>>24)&0x0000000000FF0000 |
		(v>>40)&0x000000000000FF00 |
		(v>>56)&0x00000000000000FF
}
