// Package pkg provides end-to-end tests for the FTL processor
package pkg

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
	"xsrtools/pkg/common"
)

func TestNewFTLProcessor(t *testing.T) {
	processor := NewFTLProcessor()
	if processor == nil {
		t.Error("NewFTLProcessor() returned nil")
	}
}

func TestFTLProcessor_Rebuild_SingleSector(t *testing.T) {
	dump := buildTestDump(t, nil, testBlockSpec{
		version: 1,
		number:  0,
		sectors: map[int]uint32{4: 0},
		fill:    map[int]byte{4: 0xAB},
	})

	dir := t.TempDir()
	inputFile := filepath.Join(dir, "dump.bin")
	outputFile := filepath.Join(dir, "image.img")
	if err := os.WriteFile(inputFile, dump, 0o644); err != nil {
		t.Fatalf("failed to write dump fixture: %v", err)
	}

	processor := NewFTLProcessor()
	if err := processor.Rebuild(inputFile, outputFile); err != nil {
		t.Fatalf("Rebuild() failed: %v", err)
	}

	image, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("failed to read output image: %v", err)
	}
	if !bytes.Equal(image, bytes.Repeat([]byte{0xAB}, common.SectorSize)) {
		t.Errorf("image = %d bytes, want exactly one sector of 0xAB", len(image))
	}
}

func TestFTLProcessor_Rebuild_VersionConflict(t *testing.T) {
	// Both blocks carry a copy of LSN 5; the version 2 block must win
	dump := buildTestDump(t, nil,
		testBlockSpec{
			version: 1,
			number:  0,
			sectors: map[int]uint32{4: 5},
			fill:    map[int]byte{4: 0x11},
		},
		testBlockSpec{
			version: 2,
			number:  0,
			sectors: map[int]uint32{4: 5},
			fill:    map[int]byte{4: 0x22},
		},
	)

	dir := t.TempDir()
	inputFile := filepath.Join(dir, "dump.bin")
	outputFile := filepath.Join(dir, "image.img")
	if err := os.WriteFile(inputFile, dump, 0o644); err != nil {
		t.Fatalf("failed to write dump fixture: %v", err)
	}

	processor := NewFTLProcessor()
	if err := processor.Rebuild(inputFile, outputFile); err != nil {
		t.Fatalf("Rebuild() failed: %v", err)
	}

	image, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("failed to read output image: %v", err)
	}

	if len(image) != 6*common.SectorSize {
		t.Fatalf("len(image) = %d, want %d", len(image), 6*common.SectorSize)
	}
	winner := image[5*common.SectorSize:]
	if !bytes.Equal(winner, bytes.Repeat([]byte{0x22}, common.SectorSize)) {
		t.Error("sector 5 is not the copy from the highest-version block")
	}
	filler := bytes.Repeat([]byte{0xFF}, common.SectorSize)
	for lsn := 0; lsn < 5; lsn++ {
		if !bytes.Equal(image[lsn*common.SectorSize:(lsn+1)*common.SectorSize], filler) {
			t.Errorf("unobserved sector %d is not 0xFF filler", lsn)
		}
	}
}

func TestFTLProcessor_Rebuild_Idempotent(t *testing.T) {
	dump := buildTestDump(t, bytes.Repeat([]byte{0x00}, 64),
		testBlockSpec{
			version: 3,
			number:  1,
			sectors: map[int]uint32{1: 0, 2: 3, 7: 1},
			fill:    map[int]byte{1: 0x01, 2: 0x02, 7: 0x03},
		},
	)

	dir := t.TempDir()
	inputFile := filepath.Join(dir, "dump.bin")
	if err := os.WriteFile(inputFile, dump, 0o644); err != nil {
		t.Fatalf("failed to write dump fixture: %v", err)
	}

	processor := NewFTLProcessor()
	first := filepath.Join(dir, "first.img")
	second := filepath.Join(dir, "second.img")
	if err := processor.Rebuild(inputFile, first); err != nil {
		t.Fatalf("first Rebuild() failed: %v", err)
	}
	if err := processor.Rebuild(inputFile, second); err != nil {
		t.Fatalf("second Rebuild() failed: %v", err)
	}

	firstImage, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("failed to read first image: %v", err)
	}
	secondImage, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("failed to read second image: %v", err)
	}
	if !bytes.Equal(firstImage, secondImage) {
		t.Error("rebuilding the same dump twice produced different images")
	}
}

func TestFTLProcessor_Rebuild_SignatureNotFound(t *testing.T) {
	dir := t.TempDir()
	inputFile := filepath.Join(dir, "dump.bin")
	outputFile := filepath.Join(dir, "image.img")
	if err := os.WriteFile(inputFile, []byte("no signature here"), 0o644); err != nil {
		t.Fatalf("failed to write dump fixture: %v", err)
	}

	processor := NewFTLProcessor()
	err := processor.Rebuild(inputFile, outputFile)
	if !errors.Is(err, ErrSignatureNotFound) {
		t.Errorf("Rebuild() error = %v, want ErrSignatureNotFound", err)
	}
}

func TestFTLProcessor_Info_ReportExport(t *testing.T) {
	prefix := bytes.Repeat([]byte{0x00}, 32)
	dump := buildTestDump(t, prefix,
		testBlockSpec{
			version: 1,
			number:  0,
			sectors: map[int]uint32{4: 5},
		},
		testBlockSpec{
			version: 2,
			number:  0,
			sectors: map[int]uint32{4: 5, 5: 2},
		},
	)

	dir := t.TempDir()
	inputFile := filepath.Join(dir, "dump.bin")
	reportFile := filepath.Join(dir, "report.yaml")
	if err := os.WriteFile(inputFile, dump, 0o644); err != nil {
		t.Fatalf("failed to write dump fixture: %v", err)
	}

	processor := NewFTLProcessor()
	if err := processor.Info(inputFile, reportFile); err != nil {
		t.Fatalf("Info() failed: %v", err)
	}

	reportData, err := os.ReadFile(reportFile)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	var report FTLReport
	if err := yaml.Unmarshal(reportData, &report); err != nil {
		t.Fatalf("failed to parse report YAML: %v", err)
	}

	if report.RegionOffset != 32 {
		t.Errorf("RegionOffset = %d, want 32", report.RegionOffset)
	}
	if report.TotalBlocks != 2 {
		t.Errorf("TotalBlocks = %d, want 2", report.TotalBlocks)
	}
	if report.TotalSectors != 3 {
		t.Errorf("TotalSectors = %d, want 3", report.TotalSectors)
	}
	if report.MaxLSN != 5 {
		t.Errorf("MaxLSN = %d, want 5", report.MaxLSN)
	}
	if report.ImageSize != 6*common.SectorSize {
		t.Errorf("ImageSize = %d, want %d", report.ImageSize, 6*common.SectorSize)
	}
	if len(report.Conflicts) != 1 {
		t.Fatalf("len(Conflicts) = %d, want 1", len(report.Conflicts))
	}
	conflict := report.Conflicts[0]
	if conflict.LSN != 5 || conflict.Copies != 2 {
		t.Errorf("conflict = %+v, want LSN 5 with 2 copies", conflict)
	}
	if conflict.WinnerBlock != 1 {
		t.Errorf("WinnerBlock = %d, want 1 (highest version)", conflict.WinnerBlock)
	}
}
