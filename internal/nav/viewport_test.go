package nav

import "testing"

func TestActiveSectionRoundsAndClamps(t *testing.T) {
	cases := []struct {
		name     string
		offset   float64
		size     float64
		sections int
		want     int
	}{
		{"settled at zero", 0, 100, 6, 0},
		{"just under half", 149, 100, 6, 1},
		{"rounds up", 150, 100, 6, 2},
		{"settled mid deck", 300, 100, 6, 3},
		{"past the end", 900, 100, 6, 5},
		{"negative offset", -40, 100, 6, 0},
	}
	for _, tc := range cases {
		if got := ActiveSection(tc.offset, tc.size, tc.sections, Lock{}); got != tc.want {
			t.Fatalf("%s: expected section %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestActiveSectionPrefersLockTarget(t *testing.T) {
	lock := Lock{Held: true, Target: 4, Source: SourceInput}
	// Mid-animation offsets are transient; the target must win.
	if got := ActiveSection(120, 100, 6, lock); got != 4 {
		t.Fatalf("expected locked target 4, got %d", got)
	}
	// Even a target outside the range comes back clamped.
	lock.Target = 11
	if got := ActiveSection(0, 100, 6, lock); got != 5 {
		t.Fatalf("expected clamped target 5, got %d", got)
	}
}

func TestActiveSectionZeroViewportSize(t *testing.T) {
	if got := ActiveSection(500, 0, 6, Lock{}); got != 0 {
		t.Fatalf("expected section 0 for zero size, got %d", got)
	}
}
