// Package pkg provides functionality for processing XSR1d flash translation
// layer dumps. This file contains exporters for converting scanned dump
// metadata to YAML reports.
package pkg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"xsrtools/pkg/common"
)

// BlockEntry describes one scanned block in an FTL report
type BlockEntry struct {
	Index         int    `yaml:"index"`
	Offset        uint64 `yaml:"offset"`
	BlockNumber   uint32 `yaml:"block_number"`
	BlockVersion  uint32 `yaml:"block_version"`
	MappedSectors int    `yaml:"mapped_sectors"`
}

// ConflictEntry describes an LSN present in more than one physical
// location, with the copy that wins conflict resolution
type ConflictEntry struct {
	LSN          uint32 `yaml:"lsn"`
	Copies       int    `yaml:"copies"`
	WinnerOffset uint64 `yaml:"winner_offset"`
	WinnerBlock  int    `yaml:"winner_block"`
}

// FTLReport is the complete metadata summary of a scanned XSR1d dump
type FTLReport struct {
	RegionOffset uint64          `yaml:"region_offset"`
	BlockStride  int             `yaml:"block_stride"`
	TotalBlocks  int             `yaml:"total_blocks"`
	TotalSectors int             `yaml:"total_sectors"`
	MaxLSN       uint32          `yaml:"max_lsn"`
	ImageSize    uint64          `yaml:"image_size"`
	Blocks       []BlockEntry    `yaml:"blocks"`
	Conflicts    []ConflictEntry `yaml:"conflicts,omitempty"`
}

// FTLReportExporter implements the XSRExporter interface and provides
// functionality to export scanned dump metadata as YAML.
type FTLReportExporter struct{}

// NewFTLReportExporter creates a new FTL report exporter instance.
// Returns a pointer to an FTLReportExporter ready for use.
func NewFTLReportExporter() *FTLReportExporter {
	return &FTLReportExporter{}
}

// BuildReport summarizes a scan into an FTLReport: per-block metadata,
// totals and the list of LSNs with wear-leveling duplicates including
// their resolved winners.
func (e *FTLReportExporter) BuildReport(scan *ScanResult, sectorMap *SectorMap) *FTLReport {
	report := &FTLReport{
		RegionOffset: scan.StartOffset,
		BlockStride:  scan.BlockStride,
		TotalBlocks:  len(scan.Blocks),
		TotalSectors: len(scan.Sectors),
		ImageSize:    uint64(sectorMap.Len()) * common.SectorSize,
	}
	if sectorMap.Len() > 0 {
		report.MaxLSN = uint32(sectorMap.Len() - 1)
	}

	sectorsPerBlock := make([]int, len(scan.Blocks))
	for _, record := range scan.Sectors {
		sectorsPerBlock[record.Block]++
	}
	for i, header := range scan.Blocks {
		report.Blocks = append(report.Blocks, BlockEntry{
			Index:         i,
			Offset:        header.StartOffset,
			BlockNumber:   header.BlockNumber,
			BlockVersion:  header.Version,
			MappedSectors: sectorsPerBlock[i],
		})
	}

	for lsn, candidates := range sectorMap.Slots {
		if len(candidates) < 2 {
			continue
		}
		winner := ResolveWinner(candidates, scan.Blocks)
		report.Conflicts = append(report.Conflicts, ConflictEntry{
			LSN:          uint32(lsn),
			Copies:       len(candidates),
			WinnerOffset: winner.PhysicalOffset,
			WinnerBlock:  winner.Block,
		})
	}

	return report
}

// ExportReport writes an FTLReport to outputFile as YAML
func (e *FTLReportExporter) ExportReport(report *FTLReport, outputFile string) error {
	writer, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("%s: %w", common.ErrFailedToCreateReport, err)
	}
	defer writer.Close()

	encoder := yaml.NewEncoder(writer)
	defer encoder.Close()
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("%s: %w", common.ErrFailedToEncodeReport, err)
	}

	common.LogInfo(common.InfoReportWritten, outputFile)
	return nil
}
