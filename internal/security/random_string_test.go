package security

import (
	"strings"
	"testing"
)

func TestRandomStringLengthAndAlphabet(t *testing.T) {
	value, err := RandomString(64, ReportIDAlphabet)
	if err != nil {
		t.Fatalf("RandomString() unexpected error: %v", err)
	}
	if len(value) != 64 {
		t.Fatalf("expected length 64, got %d", len(value))
	}
	for _, char := range value {
		if !strings.ContainsRune(ReportIDAlphabet, char) {
			t.Fatalf("character %q not in alphabet", char)
		}
	}
}

func TestRandomStringZeroLength(t *testing.T) {
	value, err := RandomString(0, ReportIDAlphabet)
	if err != nil {
		t.Fatalf("RandomString() unexpected error: %v", err)
	}
	if value != "" {
		t.Fatalf("expected empty string, got %q", value)
	}
}

func TestRandomStringRejectsBadInput(t *testing.T) {
	if _, err := RandomString(-1, ReportIDAlphabet); err == nil {
		t.Fatalf("expected error for negative length")
	}
	if _, err := RandomString(8, ""); err == nil {
		t.Fatalf("expected error for empty alphabet")
	}
}

func TestNewReportIDIsUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id, err := NewReportID()
		if err != nil {
			t.Fatalf("NewReportID() unexpected error: %v", err)
		}
		if len(id) != reportIDLength {
			t.Fatalf("expected id length %d, got %d", reportIDLength, len(id))
		}
		if _, duplicate := seen[id]; duplicate {
			t.Fatalf("duplicate report id %q", id)
		}
		seen[id] = struct{}{}
	}
}
