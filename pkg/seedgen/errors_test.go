package seedgen

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorWrappingMatchesSentinel(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"slot exhaustion", errNotEnoughSlots("Sword"), ErrSlotExhaustion},
		{"configuration mismatch", errShopMissingPrice(UberIdentifier{Group: 1, ID: 999}), ErrConfigurationMismatch},
		{"numeric overflow", errOverflow("spirit light", 1e9), ErrNumericOverflow},
		{"solver contradiction", errContradiction("door A"), ErrSolverContradiction},
		{"logic exhaustion (anything)", errFailedToReachAnything(), ErrLogicExhaustion},
		{"logic exhaustion (all)", errFailedToReachAll([]string{"A", "B"}), ErrLogicExhaustion},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !errors.Is(c.err, c.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", c.err, c.sentinel)
			}
		})
	}
}

func TestFormatIdentifiersShortList(t *testing.T) {
	got := formatIdentifiers([]string{"A", "B", "C"})
	if got != "A, B, C" {
		t.Errorf("formatIdentifiers = %q, want %q", got, "A, B, C")
	}
}

func TestFormatIdentifiersTruncatesLongList(t *testing.T) {
	ids := make([]string, 25)
	for i := range ids {
		ids[i] = "X"
	}
	got := formatIdentifiers(ids)
	if !strings.HasSuffix(got, "... (25 total)") {
		t.Errorf("formatIdentifiers did not truncate long list: %q", got)
	}
	if strings.Count(got, "X") != 20 {
		t.Errorf("expected 20 identifiers before the truncation suffix, got %q", got)
	}
}
