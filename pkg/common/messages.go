package common

import (
	"fmt"
	"log"
)

// Global variable to control debug output
var VerboseMode bool = false

// SetVerboseMode enables or disables verbose/debug output
func SetVerboseMode(verbose bool) {
	VerboseMode = verbose
}

// Error messages
const (
	ErrFailedToReadInput    = "failed to read input dump"
	ErrFailedToScanDump     = "failed to scan dump"
	ErrFailedToWriteImage   = "failed to write output image"
	ErrFailedToCreateReport = "failed to create report file"
	ErrFailedToEncodeReport = "failed to encode report"
	ErrSignatureNotFound    = "XSR1d signature not found in dump"
	ErrImageTooLarge        = "reconstructed image does not fit in memory"
)

// Info messages
const (
	InfoRegionFound     = "XSR1d region found at offset %d, dump size: %d, blocks: %d"
	InfoRebuildComplete = "Rebuilt image: %d logical sectors, %d bytes -> %s"
	InfoReportWritten   = "Report written to: %s"
	InfoDumpSummary     = "Blocks: %d, mapped sectors: %d, max LSN: %d, image size: %d bytes"
	InfoConflictSummary = "LSNs with multiple copies: %d"
)

// Debug messages
const (
	DebugBlockParsed    = "Block %d at 0x%X: number=%d version=%d sectors=%d"
	DebugSectorRecord   = "Sector at 0x%X: LSN %d (block %d)"
	DebugPartialBlock   = "Dropping partial trailing block: %d bytes"
	DebugConflictWinner = "LSN %d: %d copies, winner at 0x%X (block version %d)"
)

// Warning messages
const (
	WarnSourceRangeOverrun = "Sector for LSN %d at 0x%X extends %d bytes past end of dump; clamped and padded"
	WarnNoSectorsMapped    = "No occupied sectors found in dump; output image is empty"
)

// LogInfo logs an informational message
func LogInfo(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[INFO] "+message, args...)
	} else {
		log.Printf("[INFO] %s", message)
	}
}

// LogWarn logs a warning message
func LogWarn(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[WARN] "+message, args...)
	} else {
		log.Printf("[WARN] %s", message)
	}
}

// LogError logs an error message
func LogError(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Printf("[ERROR] "+message, args...)
	} else {
		log.Printf("[ERROR] %s", message)
	}
}

// LogDebug logs a debug message (only if VerboseMode is enabled)
func LogDebug(message string, args ...interface{}) {
	if !VerboseMode {
		return
	}
	if len(args) > 0 {
		log.Printf("[DEBUG] "+message, args...)
	} else {
		log.Printf("[DEBUG] %s", message)
	}
}

// FormatError creates a formatted error with additional context
func FormatError(baseMessage string, details interface{}) error {
	if err, ok := details.(error); ok {
		return fmt.Errorf("%s: %w", baseMessage, err)
	}
	return fmt.Errorf("%s: %v", baseMessage, details)
}
