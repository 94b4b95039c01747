package common

import (
	"fmt"
	"math"
)

// SafeUint64ToInt safely converts uint64 to int with bounds checking
func SafeUint64ToInt(value uint64) (int, error) {
	if value > uint64(math.MaxInt) {
		return 0, fmt.Errorf("value %d out of range for int (0-%d)", value, math.MaxInt)
	}
	return int(value), nil
}

// SafeIntToUint32 safely converts int to uint32 with bounds checking
func SafeIntToUint32(value int) (uint32, error) {
	if value < 0 {
		return 0, fmt.Errorf("value %d is negative, cannot convert to uint32", value)
	}
	if value > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of range for uint32 (0-%d)", value, math.MaxUint32)
	}
	return uint32(value), nil
}
