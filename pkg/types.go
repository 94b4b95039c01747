package pkg

// BlockHeader holds the metadata stored in the first page of an XSR1d
// block. Version is the wear-leveling generation counter; a higher value
// means the block's sectors were written later.
type BlockHeader struct {
	Version     uint32 // Wear-leveling generation of the block
	BlockNumber uint32 // Logical block number recorded by the FTL
	StartOffset uint64 // Physical offset of the block within the dump
}

// SectorRecord is one occupied data sector discovered in the dump.
// Block indexes the scan's BlockHeader slice; many records share the
// same header and headers are never looked up independently, so an
// index keeps the relationship trivial to reason about.
type SectorRecord struct {
	LSN            uint32 // Logical sector number from the out-of-band tag
	Block          int    // Index of the owning block in ScanResult.Blocks
	PhysicalOffset uint64 // Physical offset of the sector data in the dump
}

// ScanResult is the complete output of scanning a dump: every block
// header and every occupied sector, plus where the region was found.
// StartOffset and BlockStride are diagnostic only.
type ScanResult struct {
	StartOffset uint64
	BlockStride int
	Blocks      []BlockHeader
	Sectors     []SectorRecord
}

// SectorMap maps each logical sector number to its candidate physical
// copies. Slots is indexed by LSN and contiguous from 0 to the highest
// observed LSN; a nil slot means the LSN was never observed.
type SectorMap struct {
	Slots [][]SectorRecord
}

// Len returns the number of LSN slots (max observed LSN + 1), or 0 when
// no sectors were observed.
func (m *SectorMap) Len() int {
	return len(m.Slots)
}

// XSRDecoder interface defines methods for scanning XSR1d dumps
type XSRDecoder interface {
	ParseBlockHeader(firstPage []byte, blockStart uint64) BlockHeader
	ParseSectorTags(spare []byte, block BlockHeader, blockIndex int, pageStart uint64) []SectorRecord
	ScanBlock(block []byte, blockStart uint64, blockIndex int) (BlockHeader, []SectorRecord)
	ScanImage(data []byte) (*ScanResult, error)
}

// XSRExporter interface defines methods for exporting dump metadata
type XSRExporter interface {
	BuildReport(scan *ScanResult, sectorMap *SectorMap) *FTLReport
	ExportReport(report *FTLReport, outputFile string) error
}
