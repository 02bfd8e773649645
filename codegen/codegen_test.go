// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package codegen

import "testing"

func TestHangoutCodeRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code, err := HangoutCode()
		if err != nil {
			t.Fatalf("HangoutCode() error: %v", err)
		}
		if code < 10000 || code > 99999 {
			t.Fatalf("HangoutCode() = %d, want 5-digit code", code)
		}
	}
}

func TestHangoutCodeVariety(t *testing.T) {
	seen := make(map[int]bool)
	for i := 0; i < 100; i++ {
		code, err := HangoutCode()
		if err != nil {
			t.Fatalf("HangoutCode() error: %v", err)
		}
		seen[code] = true
	}

	// 100 draws from a 90k space collapsing to a handful of values
	// would mean the generator is broken.
	if len(seen) < 50 {
		t.Errorf("Expected varied codes, got %d distinct values in 100 draws", len(seen))
	}
}
