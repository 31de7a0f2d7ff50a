package nav

import (
	"testing"
	"time"
)

func browsingSnap() Snapshot {
	return Snapshot{
		Mode:          ModeBrowsing,
		Index:         2,
		Sections:      6,
		SinceAccepted: time.Hour,
		Cooldown:      DefaultCooldown,
	}
}

func scrollableMid() Boundary  { return Boundary{CanScroll: true} }
func scrollableTop() Boundary  { return Boundary{CanScroll: true, AtTop: true} }
func scrollableEnd() Boundary  { return Boundary{CanScroll: true, AtBottom: true} }
func staticBoundary() Boundary { return Boundary{CanScroll: false, AtTop: true, AtBottom: true} }

func TestClassifyControlLockSuppressesEverything(t *testing.T) {
	snap := browsingSnap()
	snap.Lock = Lock{Held: true, Target: 3, Source: SourceControl}
	for _, delta := range []float64{-1, 0, 1} {
		d := Classify(Event{Delta: delta, InPane: true}, snap, scrollableMid())
		if d.Action != ActionSuppress || d.Reason != "control-lock" {
			t.Fatalf("delta %v: expected control-lock suppress, got %+v", delta, d)
		}
	}
	// Events outside the pane are suppressed too: a control-driven
	// transition blocks default scroll everywhere.
	d := Classify(Event{Delta: 1, InPane: false}, snap, scrollableMid())
	if d.Action != ActionSuppress {
		t.Fatalf("expected suppress outside pane during control lock, got %+v", d)
	}
}

func TestClassifyAnimationLockSuppresses(t *testing.T) {
	snap := browsingSnap()
	snap.Lock = Lock{Held: true, Target: 3, Source: SourceInput}
	d := Classify(Event{Delta: 1, InPane: true}, snap, scrollableMid())
	if d.Action != ActionSuppress || d.Reason != "animation-lock" {
		t.Fatalf("expected animation-lock suppress, got %+v", d)
	}
}

func TestClassifyReducedBypassesRouting(t *testing.T) {
	snap := browsingSnap()
	snap.Reduced = true
	d := Classify(Event{Delta: 1, InPane: true}, snap, staticBoundary())
	if d.Action != ActionPassThrough {
		t.Fatalf("expected pass-through on reduced device, got %+v", d)
	}
}

func TestClassifyLandingForwardEntersBrowsing(t *testing.T) {
	snap := browsingSnap()
	snap.Mode = ModeLanding
	d := Classify(Event{Delta: 1, InPane: true}, snap, scrollableTop())
	if d.Action != ActionEnterBrowsing {
		t.Fatalf("expected enter-browsing, got %+v", d)
	}
	// Forward deltas outside tracked regions still commit: the landing
	// screen owns the whole surface.
	d = Classify(Event{Delta: 3, InPane: false}, snap, scrollableTop())
	if d.Action != ActionEnterBrowsing {
		t.Fatalf("expected enter-browsing from outside region, got %+v", d)
	}
}

func TestClassifyLandingBackward(t *testing.T) {
	snap := browsingSnap()
	snap.Mode = ModeLanding
	d := Classify(Event{Delta: -1, InPane: true}, snap, scrollableTop())
	if d.Action != ActionSuppress {
		t.Fatalf("expected suppress for backward delta in pane, got %+v", d)
	}
	d = Classify(Event{Delta: -1, InPane: false}, snap, scrollableTop())
	if d.Action != ActionPassThrough {
		t.Fatalf("expected pass-through for backward delta outside, got %+v", d)
	}
}

func TestClassifyOutsideTrackedRegionPassesThrough(t *testing.T) {
	d := Classify(Event{Delta: 1, InPane: false}, browsingSnap(), scrollableMid())
	if d.Action != ActionPassThrough || d.Reason != "outside" {
		t.Fatalf("expected outside pass-through, got %+v", d)
	}
}

func TestClassifyTopBoundaryReturnsToLanding(t *testing.T) {
	// Scrolling past the top exits to the landing screen from any
	// section, including mid-deck. There is no previous-section move
	// from a scrollable pane's top edge.
	for _, index := range []int{0, 2, 5} {
		snap := browsingSnap()
		snap.Index = index
		d := Classify(Event{Delta: -1, InPane: true}, snap, scrollableTop())
		if d.Action != ActionReturnToLanding {
			t.Fatalf("index %d: expected return-to-landing, got %+v", index, d)
		}
	}
}

func TestClassifyRestingAtBoundaryDoesNotNavigate(t *testing.T) {
	// Arrival matters, not residence: a zero delta while parked on a
	// boundary must not trigger anything.
	d := Classify(Event{Delta: 0, InPane: true}, browsingSnap(), scrollableEnd())
	if d.Action != ActionPassThrough {
		t.Fatalf("expected pass-through for zero delta at bottom, got %+v", d)
	}
	// Scrolling away from the boundary stays native as well.
	d = Classify(Event{Delta: -1, InPane: true}, browsingSnap(), scrollableEnd())
	if d.Action != ActionPassThrough {
		t.Fatalf("expected pass-through scrolling up from bottom, got %+v", d)
	}
}

func TestClassifyBottomBoundaryAdvances(t *testing.T) {
	d := Classify(Event{Delta: 1, InPane: true}, browsingSnap(), scrollableEnd())
	if d.Action != ActionNavigateNext {
		t.Fatalf("expected navigate-next at bottom, got %+v", d)
	}
}

func TestClassifyBottomBoundaryCooldown(t *testing.T) {
	snap := browsingSnap()
	snap.SinceAccepted = 10 * time.Millisecond
	d := Classify(Event{Delta: 1, InPane: true}, snap, scrollableEnd())
	if d.Action != ActionSuppress || d.Reason != "cooldown" {
		t.Fatalf("expected cooldown suppress, got %+v", d)
	}
	// At exactly the window the event is accepted again.
	snap.SinceAccepted = snap.Cooldown
	d = Classify(Event{Delta: 1, InPane: true}, snap, scrollableEnd())
	if d.Action != ActionNavigateNext {
		t.Fatalf("expected navigate-next at cooldown expiry, got %+v", d)
	}
}

func TestClassifyMidRangePassesThrough(t *testing.T) {
	for _, delta := range []float64{-2, 2} {
		d := Classify(Event{Delta: delta, InPane: true}, browsingSnap(), scrollableMid())
		if d.Action != ActionPassThrough {
			t.Fatalf("delta %v: expected pass-through mid-range, got %+v", delta, d)
		}
	}
}

func TestClassifyStaticPane(t *testing.T) {
	d := Classify(Event{Delta: 1, InPane: true}, browsingSnap(), staticBoundary())
	if d.Action != ActionNavigateNext {
		t.Fatalf("expected navigate-next for static pane, got %+v", d)
	}
	d = Classify(Event{Delta: -1, InPane: true}, browsingSnap(), staticBoundary())
	if d.Action != ActionNavigatePrev {
		t.Fatalf("expected navigate-prev for static pane, got %+v", d)
	}
	d = Classify(Event{Delta: 0, InPane: true}, browsingSnap(), staticBoundary())
	if d.Action != ActionPassThrough {
		t.Fatalf("expected pass-through for zero delta, got %+v", d)
	}
}

func TestClassifyStaticPaneCooldown(t *testing.T) {
	snap := browsingSnap()
	snap.SinceAccepted = 10 * time.Millisecond
	d := Classify(Event{Delta: 1, InPane: true}, snap, staticBoundary())
	if d.Action != ActionSuppress || d.Reason != "cooldown" {
		t.Fatalf("expected cooldown suppress, got %+v", d)
	}
}
