// Package common provides common utilities for XSR1d dump operations.
// This file contains the fixed geometry constants of the XSR1d flash
// translation layer format.
package common

// XSRMagic is the signature marking the start of an XSR1d FTL region.
const XSRMagic = "XSR1d"

// XSR1d geometry. These values are fixed by the format and are not
// configurable: a block is 64 pages, each page is 2048 bytes of data
// followed by a 64-byte out-of-band spare area holding one 16-byte tag
// per 512-byte sector.
const (
	SectorSize      = 512
	PageSize        = 2048
	PageSpareSize   = 64
	PagesPerBlock   = 64
	SectorSpareSize = 16
	SectorsPerPage  = PageSize / SectorSize

	// PageStride is the on-dump distance between consecutive pages: the
	// spare area is stored directly after its page data.
	PageStride = PageSize + PageSpareSize

	// BlockStride is the on-dump distance between consecutive blocks.
	BlockStride = PagesPerBlock * PageStride
)

// Offsets of the block metadata fields within the first page of a block,
// both 4-byte little-endian.
const (
	BlockVersionOffset = 16
	BlockNumberOffset  = 20
)

// Offset and width of the logical sector number field within each
// 16-byte sector tag, little-endian.
const (
	LSNOffset = 2
	LSNSize   = 3
)
