// Package common provides tests for bounds-checked integer conversions
package common

import (
	"math"
	"testing"
)

func TestSafeUint64ToInt(t *testing.T) {
	if got, err := SafeUint64ToInt(1024); err != nil || got != 1024 {
		t.Errorf("SafeUint64ToInt(1024) = %d, %v; want 1024, nil", got, err)
	}

	if _, err := SafeUint64ToInt(math.MaxUint64); err == nil {
		t.Error("SafeUint64ToInt(MaxUint64) should fail")
	}
}

func TestSafeIntToUint32(t *testing.T) {
	if got, err := SafeIntToUint32(42); err != nil || got != 42 {
		t.Errorf("SafeIntToUint32(42) = %d, %v; want 42, nil", got, err)
	}

	if _, err := SafeIntToUint32(-1); err == nil {
		t.Error("SafeIntToUint32(-1) should fail")
	}
}
