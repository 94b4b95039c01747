// Package pkg provides functionality for processing XSR1d flash translation
// layer dumps. This file contains the processor tying file IO to the
// scan/map/assemble pipeline.
package pkg

import (
	"fmt"
	"os"

	"xsrtools/pkg/common"
)

// FTLProcessor handles XSR1d dump operations (rebuild/info)
type FTLProcessor struct {
	decoder  *XSRImageDecoder
	exporter *FTLReportExporter
}

// NewFTLProcessor creates a new FTL processor instance
func NewFTLProcessor() *FTLProcessor {
	return &FTLProcessor{
		decoder:  NewXSRDecoder(),
		exporter: NewFTLReportExporter(),
	}
}

// Rebuild reads an XSR1d dump and writes the reconstructed linear image.
// The pipeline is a single deterministic pass: scan the dump's metadata,
// group sectors by LSN, then assemble the image in ascending LSN order.
func (p *FTLProcessor) Rebuild(inputFile, outputFile string) error {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("%s: %w", common.ErrFailedToReadInput, err)
	}

	scan, err := p.decoder.ScanImage(data)
	if err != nil {
		return fmt.Errorf("%s: %w", common.ErrFailedToScanDump, err)
	}

	sectorMap := BuildSectorMap(scan.Sectors)
	if sectorMap.Len() == 0 {
		common.LogWarn(common.WarnNoSectorsMapped)
	}

	image, err := AssembleImage(data, sectorMap, scan.Blocks)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputFile, image, 0o644); err != nil {
		return fmt.Errorf("%s: %w", common.ErrFailedToWriteImage, err)
	}

	common.LogInfo(common.InfoRebuildComplete, sectorMap.Len(), len(image), outputFile)
	return nil
}

// Info scans an XSR1d dump's metadata without assembling the image and
// prints a summary. When reportFile is non-empty the full block and
// conflict listing is additionally exported as YAML.
func (p *FTLProcessor) Info(inputFile, reportFile string) error {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("%s: %w", common.ErrFailedToReadInput, err)
	}

	scan, err := p.decoder.ScanImage(data)
	if err != nil {
		return fmt.Errorf("%s: %w", common.ErrFailedToScanDump, err)
	}

	sectorMap := BuildSectorMap(scan.Sectors)
	report := p.exporter.BuildReport(scan, sectorMap)

	common.LogInfo(common.InfoDumpSummary, report.TotalBlocks, report.TotalSectors,
		report.MaxLSN, report.ImageSize)
	common.LogInfo(common.InfoConflictSummary, len(report.Conflicts))

	if reportFile != "" {
		if err := p.exporter.ExportReport(report, reportFile); err != nil {
			return err
		}
	}

	return nil
}
