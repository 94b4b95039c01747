// Package pkg provides functionality for processing XSR1d flash translation
// layer dumps. This file contains the assembler that emits the final
// LSN-ordered image.
package pkg

import (
	"bytes"
	"fmt"

	"xsrtools/pkg/common"
)

// AssembleImage emits the defragmented image: one 512-byte sector per
// LSN slot in ascending order. An empty slot becomes a sector of 0xFF
// filler. When a winning sector's byte range extends past the end of the
// dump, the copy is clamped to the available bytes and the remainder of
// that sector is padded with 0xFF; the reconstruction continues.
func AssembleImage(data []byte, sectorMap *SectorMap, blocks []BlockHeader) ([]byte, error) {
	imageSize, err := common.SafeUint64ToInt(uint64(sectorMap.Len()) * common.SectorSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", common.ErrImageTooLarge, err)
	}

	filler := bytes.Repeat([]byte{0xFF}, common.SectorSize)
	image := make([]byte, 0, imageSize)

	for lsn, candidates := range sectorMap.Slots {
		if len(candidates) == 0 {
			image = append(image, filler...)
			continue
		}

		winner := ResolveWinner(candidates, blocks)
		start := winner.PhysicalOffset
		end := start + common.SectorSize

		if end > uint64(len(data)) {
			// Truncated source sector: copy what exists, pad the rest
			common.LogWarn(common.WarnSourceRangeOverrun, lsn, start, end-uint64(len(data)))
			available := []byte{}
			if start < uint64(len(data)) {
				available = data[start:]
			}
			image = append(image, available...)
			image = append(image, filler[:common.SectorSize-len(available)]...)
			continue
		}

		image = append(image, data[start:end]...)
	}

	return image, nil
}
