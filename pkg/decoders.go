// Package pkg provides functionality for processing XSR1d flash translation
// layer dumps. This file contains the decoders that extract block and sector
// metadata from a raw dump.
package pkg

import (
	"bytes"
	"errors"

	"xsrtools/pkg/common"
)

// ErrSignatureNotFound is returned by ScanImage when the dump does not
// contain the XSR1d signature anywhere.
var ErrSignatureNotFound = errors.New(common.ErrSignatureNotFound)

// XSRImageDecoder implements the XSRDecoder interface
type XSRImageDecoder struct{}

// NewXSRDecoder creates a new XSR1d dump decoder instance
func NewXSRDecoder() *XSRImageDecoder {
	return &XSRImageDecoder{}
}

// ParseBlockHeader extracts the block metadata from the first page of a
// block. The version and block number are fixed 4-byte little-endian
// fields; no validation is performed here, a malformed header only shows
// up downstream as an inconsistent sector map.
func (d *XSRImageDecoder) ParseBlockHeader(firstPage []byte, blockStart uint64) BlockHeader {
	return BlockHeader{
		Version:     common.Uint32LE(firstPage, common.BlockVersionOffset),
		BlockNumber: common.Uint32LE(firstPage, common.BlockNumberOffset),
		StartOffset: blockStart,
	}
}

// ParseSectorTags decodes the four per-sector tags in one page's spare
// region. pageStart is the physical offset of the page's first sector in
// the dump. A tag whose LSN field is all 0xFF marks an unoccupied sector
// and yields no record; the sector sharing the block's start offset is
// the block header sector and is never mapped to an LSN.
func (d *XSRImageDecoder) ParseSectorTags(spare []byte, block BlockHeader, blockIndex int, pageStart uint64) []SectorRecord {
	var records []SectorRecord

	for i := 0; i < common.SectorsPerPage; i++ {
		tag := spare[i*common.SectorSpareSize : (i+1)*common.SectorSpareSize]
		lsnField := tag[common.LSNOffset : common.LSNOffset+common.LSNSize]
		if common.IsErased(lsnField) {
			// Unoccupied sector, ignore
			continue
		}

		sectorStart := pageStart + uint64(i*common.SectorSize)
		if sectorStart == block.StartOffset {
			// First sector of every block holds the block header and
			// doesn't belong to the filesystem
			continue
		}

		record := SectorRecord{
			LSN:            common.Uint24LE(tag, common.LSNOffset),
			Block:          blockIndex,
			PhysicalOffset: sectorStart,
		}
		common.LogDebug(common.DebugSectorRecord, record.PhysicalOffset, record.LSN, blockIndex)
		records = append(records, record)
	}

	return records
}

// ScanBlock parses one block's raw bytes: the block header from the first
// page, then the spare region of every page in the block. blockStart is
// the block's physical offset in the dump.
func (d *XSRImageDecoder) ScanBlock(block []byte, blockStart uint64, blockIndex int) (BlockHeader, []SectorRecord) {
	header := d.ParseBlockHeader(block[:common.PageSize], blockStart)

	var records []SectorRecord
	for page := 0; page < common.PagesPerBlock; page++ {
		pageOffset := page * common.PageStride
		spare := block[pageOffset+common.PageSize : pageOffset+common.PageStride]
		pageStart := blockStart + uint64(pageOffset)
		records = append(records, d.ParseSectorTags(spare, header, blockIndex, pageStart)...)
	}

	common.LogDebug(common.DebugBlockParsed, blockIndex, blockStart, header.BlockNumber, header.Version, len(records))
	return header, records
}

// ScanImage locates the XSR1d region by its signature and scans every
// whole block after it. A partial trailing block is dropped. Returns
// ErrSignatureNotFound when the signature is absent from the dump.
func (d *XSRImageDecoder) ScanImage(data []byte) (*ScanResult, error) {
	start := bytes.Index(data, []byte(common.XSRMagic))
	if start < 0 {
		return nil, ErrSignatureNotFound
	}

	blockCount := (len(data) - start) / common.BlockStride
	if remainder := (len(data) - start) % common.BlockStride; remainder != 0 {
		common.LogDebug(common.DebugPartialBlock, remainder)
	}
	common.LogInfo(common.InfoRegionFound, start, len(data), blockCount)

	result := &ScanResult{
		StartOffset: uint64(start),
		BlockStride: common.BlockStride,
	}
	for i := 0; i < blockCount; i++ {
		blockStart := start + i*common.BlockStride
		header, records := d.ScanBlock(data[blockStart:blockStart+common.BlockStride], uint64(blockStart), i)
		result.Blocks = append(result.Blocks, header)
		result.Sectors = append(result.Sectors, records...)
	}

	return result, nil
}
