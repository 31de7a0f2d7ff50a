package state

import "testing"

func sampleEntries() []Entry {
	return []Entry{
		{Index: 0, ID: "overview", Title: "Overview"},
		{Index: 1, ID: "navigation", Title: "Navigation"},
		{Index: 2, ID: "sections", Title: "Sections"},
		{Index: 3, ID: "picker", Title: "Quick jump"},
		{Index: 4, ID: "preferences", Title: "Preferences"},
		{Index: 5, ID: "colophon", Title: "Colophon"},
	}
}

func TestNewPickerStartsUnfiltered(t *testing.T) {
	p := NewPicker(sampleEntries())
	if len(p.Items) != 6 {
		t.Fatalf("expected full list, got %d items", len(p.Items))
	}
	if p.Filter != "" || p.Cursor != 0 {
		t.Fatalf("expected empty filter at cursor 0, got %q/%d", p.Filter, p.Cursor)
	}
}

func TestSetFilterNarrowsAndSelectsBestMatch(t *testing.T) {
	p := NewPicker(sampleEntries())
	p.SetFilter("nav", 3)
	if len(p.Items) == 0 {
		t.Fatalf("expected matches for %q", "nav")
	}
	sel, ok := p.Selected()
	if !ok {
		t.Fatalf("expected a selection")
	}
	if sel.ID != "navigation" {
		t.Fatalf("expected navigation selected, got %q", sel.ID)
	}
}

func TestClearingFilterRestoresCursor(t *testing.T) {
	p := NewPicker(sampleEntries())
	p.Cursor = 4
	p.SetFilter("col", 3)
	if sel, _ := p.Selected(); sel.ID != "colophon" {
		t.Fatalf("expected colophon while filtered, got %q", sel.ID)
	}
	p.SetFilter("", 0)
	if p.Cursor != 4 {
		t.Fatalf("expected cursor restored to 4, got %d", p.Cursor)
	}
}

func TestFilterWithNoMatches(t *testing.T) {
	p := NewPicker(sampleEntries())
	p.SetFilter("zzz", 3)
	if len(p.Items) != 0 {
		t.Fatalf("expected no matches, got %d", len(p.Items))
	}
	if _, ok := p.Selected(); ok {
		t.Fatalf("expected no selection on empty list")
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	p := NewPicker(sampleEntries())
	if !p.InsertFilterText("pre") {
		t.Fatalf("expected insert to report a change")
	}
	if p.Filter != "pre" || p.FilterCursorPos() != 3 {
		t.Fatalf("unexpected filter state %q/%d", p.Filter, p.FilterCursorPos())
	}
	if !p.DeleteFilterRuneBackward() {
		t.Fatalf("expected delete to report a change")
	}
	if p.Filter != "pr" {
		t.Fatalf("expected %q, got %q", "pr", p.Filter)
	}
	if p.DeleteFilterRuneBackward() && p.DeleteFilterRuneBackward() && p.DeleteFilterRuneBackward() {
		t.Fatalf("expected delete at start of empty filter to report no change")
	}
}

func TestDeleteFilterWordBackward(t *testing.T) {
	p := NewPicker(sampleEntries())
	p.SetFilter("quick jump", 10)
	if !p.DeleteFilterWordBackward() {
		t.Fatalf("expected word delete to report a change")
	}
	if p.Filter != "quick " {
		t.Fatalf("expected %q, got %q", "quick ", p.Filter)
	}
}

func TestFilterCursorRuneMoves(t *testing.T) {
	p := NewPicker(sampleEntries())
	p.SetFilter("nav", 3)
	if p.MoveFilterCursorRuneForward() {
		t.Fatalf("expected forward at end to report no change")
	}
	if !p.MoveFilterCursorRuneBackward() || p.FilterCursorPos() != 2 {
		t.Fatalf("expected cursor at 2, got %d", p.FilterCursorPos())
	}
}

func TestCursorMovesClamp(t *testing.T) {
	p := NewPicker(sampleEntries())
	if p.MoveCursorUp() {
		t.Fatalf("expected up at top to report no change")
	}
	if !p.MoveCursorDown() || p.Cursor != 1 {
		t.Fatalf("expected cursor at 1, got %d", p.Cursor)
	}
	if !p.MoveCursorEnd() || p.Cursor != 5 {
		t.Fatalf("expected cursor at end, got %d", p.Cursor)
	}
	if p.MoveCursorDown() {
		t.Fatalf("expected down at end to report no change")
	}
	if !p.MoveCursorHome() || p.Cursor != 0 {
		t.Fatalf("expected cursor home, got %d", p.Cursor)
	}
}

func TestEnsureCursorVisible(t *testing.T) {
	p := NewPicker(sampleEntries())
	p.Cursor = 5
	p.EnsureCursorVisible(3)
	if p.ViewportOffset != 3 {
		t.Fatalf("expected offset 3, got %d", p.ViewportOffset)
	}
	p.Cursor = 0
	p.EnsureCursorVisible(3)
	if p.ViewportOffset != 0 {
		t.Fatalf("expected offset 0, got %d", p.ViewportOffset)
	}
}

func TestResetKeepsCurrentSectionSelected(t *testing.T) {
	p := NewPicker(sampleEntries())
	p.SetFilter("nav", 3)
	p.Reset(4)
	if p.Filter != "" {
		t.Fatalf("expected filter cleared, got %q", p.Filter)
	}
	if len(p.Items) != 6 {
		t.Fatalf("expected full list restored, got %d", len(p.Items))
	}
	if sel, _ := p.Selected(); sel.Index != 4 {
		t.Fatalf("expected entry 4 selected, got %d", sel.Index)
	}
}

func TestBestMatchIndexPrefersExactThenPrefix(t *testing.T) {
	entries := sampleEntries()
	if idx := BestMatchIndex(entries, "Sections"); idx != 2 {
		t.Fatalf("expected exact title match at 2, got %d", idx)
	}
	if idx := BestMatchIndex(entries, "pre"); idx != 4 {
		t.Fatalf("expected prefix match at 4, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "x"); idx != -1 {
		t.Fatalf("expected -1 for empty entries, got %d", idx)
	}
}

func TestFilterEntriesFallsBackToSubstring(t *testing.T) {
	entries := sampleEntries()
	got := FilterEntries(entries, "jump")
	if len(got) != 1 || got[0].ID != "picker" {
		t.Fatalf("expected single substring match on picker, got %v", got)
	}
}
