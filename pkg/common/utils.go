// Package common provides common utilities for XSR1d dump operations.
// This file contains helpers for decoding little-endian fields from
// raw byte slices.
package common

// Uint32LE decodes a 4-byte little-endian field at offset off
func Uint32LE(data []byte, off int) uint32 {
	return uint32(data[off]) |
		uint32(data[off+1])<<8 |
		uint32(data[off+2])<<16 |
		uint32(data[off+3])<<24
}

// Uint24LE decodes a 3-byte little-endian field at offset off
func Uint24LE(data []byte, off int) uint32 {
	return uint32(data[off]) |
		uint32(data[off+1])<<8 |
		uint32(data[off+2])<<16
}

// IsErased reports whether every byte of data carries the erased-flash
// value 0xFF
func IsErased(data []byte) bool {
	for _, b := range data {
		if b != 0xFF {
			return false
		}
	}
	return true
}
