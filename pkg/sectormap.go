// Package pkg provides functionality for processing XSR1d flash translation
// layer dumps. This file groups scanned sectors by logical sector number and
// resolves wear-leveling duplicates.
package pkg

import "xsrtools/pkg/common"

// BuildSectorMap groups sector records by LSN. Two passes: the first
// finds the highest observed LSN so the slot slice is allocated once,
// the second appends every record to its slot. Candidate order within a
// slot is arrival order and carries no meaning; ResolveWinner is
// deterministic regardless of it.
func BuildSectorMap(records []SectorRecord) *SectorMap {
	if len(records) == 0 {
		return &SectorMap{}
	}

	var maxLSN uint32
	for _, record := range records {
		if record.LSN > maxLSN {
			maxLSN = record.LSN
		}
	}

	slots := make([][]SectorRecord, maxLSN+1)
	for _, record := range records {
		slots[record.LSN] = append(slots[record.LSN], record)
	}

	return &SectorMap{Slots: slots}
}

// ResolveWinner selects the authoritative copy among a slot's candidates:
// the record written by the block with the highest version wins, ties go
// to the higher physical offset (the later-written location within a
// wear-leveled region). candidates must be non-empty.
func ResolveWinner(candidates []SectorRecord, blocks []BlockHeader) SectorRecord {
	winner := candidates[0]
	for _, candidate := range candidates[1:] {
		cv := blocks[candidate.Block].Version
		wv := blocks[winner.Block].Version
		if cv > wv || (cv == wv && candidate.PhysicalOffset > winner.PhysicalOffset) {
			winner = candidate
		}
	}

	if len(candidates) > 1 {
		common.LogDebug(common.DebugConflictWinner, winner.LSN, len(candidates),
			winner.PhysicalOffset, blocks[winner.Block].Version)
	}
	return winner
}
