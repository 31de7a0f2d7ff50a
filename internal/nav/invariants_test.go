package nav

import (
	"testing"
	"time"

	"pgregory.net/rapid"
)

// Property: whatever sequence of requests arrives, the settled index
// stays in [0, N-1], at most one lock is held, and a locked target is
// never disturbed by later requests.
func TestControllerInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		sections := rapid.IntRange(1, 9).Draw(rt, "sections")
		clk := newFakeClock()
		c := NewController(Config{Sections: sections, Clock: clk})

		var pending []Transition
		steps := rapid.IntRange(1, 60).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 6).Draw(rt, "op") {
			case 0:
				idx := rapid.IntRange(-3, sections+3).Draw(rt, "target")
				src := SourceInput
				if rapid.Bool().Draw(rt, "control") {
					src = SourceControl
				}
				lockedTarget := c.Snapshot().Lock
				if tr, ok := c.GoTo(idx, src); ok {
					pending = append(pending, tr)
				} else if lockedTarget.Held {
					if got := c.Snapshot().Lock.Target; got != lockedTarget.Target {
						rt.Fatalf("rejected request moved the locked target from %d to %d", lockedTarget.Target, got)
					}
				}
			case 1:
				if tr, ok := c.Next(SourceInput); ok {
					pending = append(pending, tr)
				}
			case 2:
				if tr, ok := c.Previous(SourceInput); ok {
					pending = append(pending, tr)
				}
			case 3:
				if len(pending) > 0 {
					// Release an arbitrary pending transition; only the
					// newest sequence may actually unlock.
					pick := rapid.IntRange(0, len(pending)-1).Draw(rt, "release")
					c.Release(pending[pick].Seq)
				}
			case 4:
				idx := rapid.IntRange(-1, sections).Draw(rt, "enter")
				if tr, ok := c.EnterBrowsing(idx, SourceInput); ok {
					pending = append(pending, tr)
				}
			case 5:
				c.ReturnToLanding()
			case 6:
				clk.advance(time.Duration(rapid.Int64Range(0, 300).Draw(rt, "ms")) * time.Millisecond)
			}

			snap := c.Snapshot()
			if snap.Index < 0 || snap.Index > sections-1 {
				rt.Fatalf("settled index %d escaped [0,%d]", snap.Index, sections-1)
			}
			if snap.Lock.Held && (snap.Lock.Target < 0 || snap.Lock.Target > sections-1) {
				rt.Fatalf("locked target %d escaped [0,%d]", snap.Lock.Target, sections-1)
			}
		}
	})
}

// Property: after an accepted input navigation at time t, every input
// request strictly inside (t, t+W) classifies as a cooldown drop, and a
// request at or after t+W is accepted.
func TestCooldownWindowProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		clk := newFakeClock()
		c := NewController(Config{Sections: 6, Clock: clk})
		c.SetMode(ModeBrowsing)

		tr, ok := c.Next(SourceInput)
		if !ok {
			rt.Fatalf("setup navigation rejected")
		}
		c.Release(tr.Seq)

		boundary := Boundary{AtTop: true, AtBottom: true}
		within := time.Duration(rapid.Int64Range(0, int64(DefaultCooldown)-1).Draw(rt, "within"))
		clk.advance(within)
		d := Classify(Event{Delta: 1, InPane: true}, c.Snapshot(), boundary)
		if d.Action != ActionSuppress {
			rt.Fatalf("request %v after acceptance must be dropped, got %+v", within, d)
		}

		clk.advance(DefaultCooldown - within)
		d = Classify(Event{Delta: 1, InPane: true}, c.Snapshot(), boundary)
		if d.Action != ActionNavigateNext {
			rt.Fatalf("request at window expiry must be accepted, got %+v", d)
		}
	})
}
