package nav

import "time"

// Event is the minimal value form of one wheel/scroll input. Delta is the
// signed magnitude along the content axis: positive moves into/through the
// content ("forward"), negative moves back toward the start. InPane says
// whether the event originated inside a tracked content region; events
// from unrelated chrome (a language switcher, the footer) must keep their
// native behaviour.
type Event struct {
	Delta  float64
	InPane bool
	When   time.Time
}

// Action is the classifier's verdict for one event.
type Action int

const (
	// ActionPassThrough leaves the event to native handling.
	ActionPassThrough Action = iota
	// ActionSuppress swallows the event with no state change.
	ActionSuppress
	// ActionEnterBrowsing switches landing -> browsing at the currently
	// derived section.
	ActionEnterBrowsing
	// ActionReturnToLanding switches browsing -> landing.
	ActionReturnToLanding
	// ActionNavigatePrev / ActionNavigateNext request an input-driven
	// horizontal move; the controller still applies lock and range rules.
	ActionNavigatePrev
	ActionNavigateNext
)

func (a Action) String() string {
	switch a {
	case ActionPassThrough:
		return "pass-through"
	case ActionSuppress:
		return "suppress"
	case ActionEnterBrowsing:
		return "enter-browsing"
	case ActionReturnToLanding:
		return "return-to-landing"
	case ActionNavigatePrev:
		return "navigate-prev"
	case ActionNavigateNext:
		return "navigate-next"
	}
	return "unknown"
}

// Decision pairs the action with the rule that produced it. Reason feeds
// diagnostic tracing only; no behaviour hangs off it.
type Decision struct {
	Action Action
	Reason string
}

// Classify resolves one input event against the session snapshot and the
// active pane's boundary state. Rules apply in order; the first match
// wins.
//
// Dropped events are policy, not errors: a rejected wheel tick during a
// control-driven transition or inside the cooldown window simply produces
// no visible change.
func Classify(ev Event, snap Snapshot, b Boundary) Decision {
	// 1. A control-initiated transition must run to completion without
	// residual wheel momentum compounding it.
	if snap.Lock.Held && snap.Lock.Source == SourceControl {
		return Decision{ActionSuppress, "control-lock"}
	}
	// 2. Any in-flight transition suppresses further input.
	if snap.Lock.Held {
		return Decision{ActionSuppress, "animation-lock"}
	}
	// 3. Reduced-capability devices keep native scrolling end to end.
	if snap.Reduced {
		return Decision{ActionPassThrough, "reduced"}
	}
	// 4. Landing mode: forward commits to browsing, backward is a no-op.
	if snap.Mode == ModeLanding {
		if ev.Delta > 0 {
			return Decision{ActionEnterBrowsing, "landing-forward"}
		}
		if ev.InPane {
			return Decision{ActionSuppress, "landing-backward"}
		}
		return Decision{ActionPassThrough, "landing-outside"}
	}
	// 5. Events outside tracked regions are never hijacked.
	if !ev.InPane {
		return Decision{ActionPassThrough, "outside"}
	}
	if b.CanScroll {
		// 6. Boundary arrival, not rest: only the sign of the delta
		// pushing past the edge counts. Sitting at the edge is fine.
		if ev.Delta < 0 && b.AtTop {
			// Scrolling past the top always exits to the landing
			// screen, whatever the section index. The previous-section
			// move never fires from a scrollable pane's top edge.
			return Decision{ActionReturnToLanding, "top-exit"}
		}
		if ev.Delta > 0 && b.AtBottom {
			if snap.SinceAccepted < snap.Cooldown {
				return Decision{ActionSuppress, "cooldown"}
			}
			return Decision{ActionNavigateNext, "bottom-advance"}
		}
		// Mid-range motion belongs to the pane.
		return Decision{ActionPassThrough, "in-range"}
	}
	// 7. Non-scrollable pane: the delta maps straight to horizontal
	// navigation under the same cooldown rule.
	if ev.Delta == 0 {
		return Decision{ActionPassThrough, "zero-delta"}
	}
	if snap.SinceAccepted < snap.Cooldown {
		return Decision{ActionSuppress, "cooldown"}
	}
	if ev.Delta < 0 {
		return Decision{ActionNavigatePrev, "static-prev"}
	}
	return Decision{ActionNavigateNext, "static-next"}
}
