// Package nav resolves a continuous stream of wheel-style input into
// discrete navigation decisions over a horizontally sectioned deck.
// It is pure state plus arithmetic: the host UI feeds it events and a
// snapshot, and acts on the decisions it returns.
package nav

import "time"

// Mode is the two-value UI mode.
type Mode int

const (
	// ModeLanding is the entry screen; content is not independently
	// scrollable until the user commits to browsing.
	ModeLanding Mode = iota
	// ModeBrowsing is normal section traversal.
	ModeBrowsing
)

func (m Mode) String() string {
	switch m {
	case ModeLanding:
		return "landing"
	case ModeBrowsing:
		return "browsing"
	}
	return "unknown"
}

// Source tags who initiated a navigation.
type Source int

const (
	SourceNone Source = iota
	// SourceInput marks wheel/scroll driven navigation, subject to the
	// cooldown window.
	SourceInput
	// SourceControl marks navigation from an explicit control (picker,
	// section key). While a control-driven transition is in flight all
	// input events are suppressed outright.
	SourceControl
)

func (s Source) String() string {
	switch s {
	case SourceInput:
		return "input"
	case SourceControl:
		return "control"
	}
	return "none"
}

// Lock is the mutual-exclusion flag preventing overlapping section
// transitions. While held, the recorded target is authoritative and all
// further navigation requests are dropped, not queued.
type Lock struct {
	Held   bool
	Target int
	Source Source
}

// Session is the single explicit state holder for the engine: mode,
// settled index, lock, and the cooldown stamp. It lives for the process
// lifetime and is mutated only by the Controller.
type Session struct {
	Sections int
	Mode     Mode
	Index    int
	Lock     Lock
	// Reduced marks the reduced-capability device class (narrow
	// viewport): no landing screen, no custom wheel routing.
	Reduced bool

	lastAccepted time.Time
	hasAccepted  bool
}

// Snapshot is an immutable view of the session handed to the classifier.
type Snapshot struct {
	Mode     Mode
	Index    int
	Sections int
	Lock     Lock
	Reduced  bool
	// SinceAccepted is the elapsed time since the last accepted
	// input-driven navigation. Before any acceptance it is reported as
	// larger than any sane cooldown window.
	SinceAccepted time.Duration
	Cooldown      time.Duration
}

// clampIndex keeps a section index inside [0, sections-1].
func clampIndex(index, sections int) int {
	if sections < 1 {
		return 0
	}
	if index < 0 {
		return 0
	}
	if index > sections-1 {
		return sections - 1
	}
	return index
}
