// Package state holds the plain-data model behind the jump picker:
// filter text, cursor, and the visible slice of section entries. The
// Bubble Tea layer renders it; nothing here touches the terminal.
package state

import (
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Entry is one pickable section.
type Entry struct {
	Index int
	ID    string
	Title string
}

// Picker narrows a fixed entry list by a typed query.
type Picker struct {
	Full  []Entry
	Items []Entry

	Filter       string
	FilterCursor int

	Cursor         int
	LastCursor     int
	ViewportOffset int
}

// NewPicker builds a picker over the full entry list with an empty
// filter.
func NewPicker(entries []Entry) *Picker {
	p := &Picker{Full: cloneEntries(entries), LastCursor: -1}
	p.Items = cloneEntries(entries)
	return p
}

// Reset clears the filter and restores the full list, leaving the
// cursor on the given entry index when present.
func (p *Picker) Reset(index int) {
	p.Filter = ""
	p.FilterCursor = 0
	p.LastCursor = -1
	p.Items = cloneEntries(p.Full)
	p.Cursor = 0
	for i, e := range p.Items {
		if e.Index == index {
			p.Cursor = i
			break
		}
	}
	p.ViewportOffset = 0
}

// Selected returns the entry under the cursor.
func (p *Picker) Selected() (Entry, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Items) {
		return Entry{}, false
	}
	return p.Items[p.Cursor], true
}

// SetFilter updates the filter query and cursor position.
func (p *Picker) SetFilter(query string, cursor int) {
	trimmed := strings.TrimSpace(query)
	prevTrimmed := strings.TrimSpace(p.Filter)
	restore := -1
	p.Filter = query
	runes := []rune(p.Filter)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(runes) {
		cursor = len(runes)
	}
	p.FilterCursor = cursor
	if trimmed != "" {
		if prevTrimmed == "" {
			p.LastCursor = p.Cursor
		}
		p.Cursor = 0
	} else if prevTrimmed != "" {
		restore = p.LastCursor
	}
	p.applyFilter()
	if trimmed != "" && len(p.Items) > 0 {
		if idx := BestMatchIndex(p.Items, trimmed); idx >= 0 {
			p.Cursor = idx
		}
	}
	if trimmed == "" && prevTrimmed != "" {
		if restore >= 0 && restore < len(p.Items) {
			p.Cursor = restore
		} else if len(p.Items) > 0 {
			p.Cursor = len(p.Items) - 1
		}
		p.LastCursor = -1
	}
}

func (p *Picker) applyFilter() {
	p.Items = FilterEntries(p.Full, p.Filter)
	if len(p.Items) == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	if p.Cursor < 0 || p.Cursor >= len(p.Items) {
		p.Cursor = len(p.Items) - 1
	}
	if p.ViewportOffset > len(p.Items)-1 {
		p.ViewportOffset = 0
	}
}

// FilterCursorPos returns the rune offset of the filter cursor.
func (p *Picker) FilterCursorPos() int {
	runes := []rune(p.Filter)
	if p.FilterCursor < 0 {
		return 0
	}
	if p.FilterCursor > len(runes) {
		return len(runes)
	}
	return p.FilterCursor
}

// InsertFilterText inserts text into the filter at the cursor position.
func (p *Picker) InsertFilterText(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(p.Filter)
	pos := p.FilterCursorPos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	p.SetFilter(string(updated), pos+len(insert))
	return true
}

// DeleteFilterRuneBackward deletes a rune before the filter cursor.
func (p *Picker) DeleteFilterRuneBackward() bool {
	runes := []rune(p.Filter)
	pos := p.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	p.SetFilter(string(updated), pos-1)
	return true
}

// DeleteFilterWordBackward deletes the word preceding the cursor.
func (p *Picker) DeleteFilterWordBackward() bool {
	runes := []rune(p.Filter)
	pos := p.FilterCursorPos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	updated := append(runes[:i], runes[pos:]...)
	p.SetFilter(string(updated), i)
	return true
}

// MoveFilterCursorRuneBackward moves the filter cursor one rune backward.
func (p *Picker) MoveFilterCursorRuneBackward() bool {
	if p.FilterCursorPos() == 0 {
		return false
	}
	p.FilterCursor = p.FilterCursorPos() - 1
	return true
}

// MoveFilterCursorRuneForward moves the filter cursor one rune forward.
func (p *Picker) MoveFilterCursorRuneForward() bool {
	pos := p.FilterCursorPos()
	if pos >= len([]rune(p.Filter)) {
		return false
	}
	p.FilterCursor = pos + 1
	return true
}

// MoveCursorUp moves the selection cursor up one entry.
func (p *Picker) MoveCursorUp() bool {
	return p.moveCursorBy(-1)
}

// MoveCursorDown moves the selection cursor down one entry.
func (p *Picker) MoveCursorDown() bool {
	return p.moveCursorBy(1)
}

// MoveCursorHome moves the cursor to the first entry.
func (p *Picker) MoveCursorHome() bool {
	if len(p.Items) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = 0
	return old != p.Cursor
}

// MoveCursorEnd moves the cursor to the last entry.
func (p *Picker) MoveCursorEnd() bool {
	n := len(p.Items)
	if n == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = n - 1
	return old != p.Cursor
}

func (p *Picker) moveCursorBy(delta int) bool {
	if len(p.Items) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	p.Cursor += delta
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Items) {
		p.Cursor = len(p.Items) - 1
	}
	return p.Cursor != old
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays
// within a window of maxVisible entries.
func (p *Picker) EnsureCursorVisible(maxVisible int) {
	if len(p.Items) == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Items) {
		p.Cursor = len(p.Items) - 1
	}
	if maxVisible <= 0 {
		p.ViewportOffset = 0
		return
	}
	maxOffset := len(p.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.ViewportOffset > maxOffset {
		p.ViewportOffset = maxOffset
	}
	if p.ViewportOffset < 0 {
		p.ViewportOffset = 0
	}
	if p.Cursor < p.ViewportOffset {
		p.ViewportOffset = p.Cursor
	}
	upper := p.ViewportOffset + maxVisible - 1
	if p.Cursor > upper {
		p.ViewportOffset = p.Cursor - maxVisible + 1
		if p.ViewportOffset < 0 {
			p.ViewportOffset = 0
		}
		if p.ViewportOffset > maxOffset {
			p.ViewportOffset = maxOffset
		}
	}
}

// FilterEntries returns entries matching the supplied query.
func FilterEntries(entries []Entry, query string) []Entry {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return cloneEntries(entries)
	}
	titles := make([]string, len(entries))
	for i, e := range entries {
		titles[i] = e.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, titles)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Entry, 0, len(matches))
		for idx, e := range entries {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, e)
			}
		}
		if len(filtered) > 0 {
			return filtered
		}
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Title), lower) || strings.Contains(strings.ToLower(e.ID), lower) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// BestMatchIndex returns the best index for the query among the
// provided entries.
func BestMatchIndex(entries []Entry, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		if len(entries) == 0 {
			return -1
		}
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, e := range entries {
		if strings.EqualFold(e.Title, trimmed) || strings.EqualFold(e.ID, trimmed) {
			return i
		}
	}
	for i, e := range entries {
		if strings.HasPrefix(strings.ToLower(e.Title), lower) {
			return i
		}
	}
	for i, e := range entries {
		if strings.HasPrefix(strings.ToLower(e.ID), lower) {
			return i
		}
	}
	for i, e := range entries {
		if strings.Contains(strings.ToLower(e.Title), lower) {
			return i
		}
	}
	titles := make([]string, len(entries))
	for i, e := range entries {
		titles[i] = e.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, titles)
	if len(ranks) == 0 {
		if len(entries) == 0 {
			return -1
		}
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(entries) {
		return 0
	}
	return best.OriginalIndex
}

func cloneEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
