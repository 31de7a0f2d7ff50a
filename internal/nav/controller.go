package nav

import "time"

// Reference timing for the engine. The cooldown window throttles
// input-driven navigation bursts (trackpad momentum); the transition
// durations bound how long the lock is held.
const (
	DefaultCooldown          = 100 * time.Millisecond
	DefaultTransition        = 800 * time.Millisecond
	DefaultReducedTransition = 50 * time.Millisecond
)

// Config parameterizes a Controller. Zero values fall back to the
// reference timings and the system clock.
type Config struct {
	Sections          int
	Cooldown          time.Duration
	Transition        time.Duration
	ReducedTransition time.Duration
	// ReducedMotion shortens every transition to ReducedTransition,
	// honouring a user motion preference.
	ReducedMotion bool
	Clock         Clock
}

func (c Config) withDefaults() Config {
	if c.Sections < 1 {
		c.Sections = 1
	}
	if c.Cooldown <= 0 {
		c.Cooldown = DefaultCooldown
	}
	if c.Transition <= 0 {
		c.Transition = DefaultTransition
	}
	if c.ReducedTransition <= 0 {
		c.ReducedTransition = DefaultReducedTransition
	}
	if c.Clock == nil {
		c.Clock = SystemClock{}
	}
	return c
}

// Transition describes one accepted navigation. The caller schedules its
// completion (a timer firing after Duration) and hands the sequence
// number back to Release. Sequence numbers increase monotonically so a
// newer transition's completion always supersedes a stale timer.
type Transition struct {
	Seq      uint64
	From     int
	To       int
	Source   Source
	Duration time.Duration
	// ModeChange marks landing<->browsing transitions, which animate a
	// vertical reveal rather than a horizontal slide.
	ModeChange bool
}

// Controller owns the session state and serializes section transitions.
// It is the only writer of mode, index, lock, and the cooldown stamp.
// Rejections are silent no-ops by design; callers trace them.
type Controller struct {
	cfg     Config
	clock   Clock
	seq     uint64
	session Session
}

// NewController builds a controller with the given configuration. The
// session starts at section 0 in landing mode; callers on narrow
// viewports follow up with HandleResize to force browsing.
func NewController(cfg Config) *Controller {
	cfg = cfg.withDefaults()
	return &Controller{
		cfg:   cfg,
		clock: cfg.Clock,
		session: Session{
			Sections: cfg.Sections,
			Mode:     ModeLanding,
			Index:    0,
		},
	}
}

// Snapshot returns the immutable classifier view of the session.
func (c *Controller) Snapshot() Snapshot {
	since := time.Duration(1<<62 - 1)
	if c.session.hasAccepted {
		since = c.clock.Now().Sub(c.session.lastAccepted)
	}
	return Snapshot{
		Mode:          c.session.Mode,
		Index:         c.session.Index,
		Sections:      c.session.Sections,
		Lock:          c.session.Lock,
		Reduced:       c.session.Reduced,
		SinceAccepted: since,
		Cooldown:      c.cfg.Cooldown,
	}
}

// Mode returns the current UI mode.
func (c *Controller) Mode() Mode { return c.session.Mode }

// Index returns the settled (or locked target) section index.
func (c *Controller) Index() int { return c.session.Index }

// Sections returns the fixed section count.
func (c *Controller) Sections() int { return c.session.Sections }

// Locked reports whether a transition is in flight.
func (c *Controller) Locked() bool { return c.session.Lock.Held }

// Reduced reports the reduced-capability device class.
func (c *Controller) Reduced() bool { return c.session.Reduced }

// GoTo requests a move to the given section. It rejects silently when a
// lock is already held, when the device is reduced-capability, or when
// the clamped index equals the settled section. Acceptance acquires the
// lock and, for input-driven moves, stamps the cooldown window.
func (c *Controller) GoTo(index int, src Source) (Transition, bool) {
	if c.session.Lock.Held || c.session.Reduced {
		return Transition{}, false
	}
	index = clampIndex(index, c.session.Sections)
	if index == c.session.Index {
		return Transition{}, false
	}
	return c.acquire(index, src, false), true
}

// Next moves to the adjacent section after the settled one; it no-ops at
// the end of the range.
func (c *Controller) Next(src Source) (Transition, bool) {
	return c.GoTo(c.session.Index+1, src)
}

// Previous moves to the adjacent section before the settled one; it
// no-ops at the start of the range.
func (c *Controller) Previous(src Source) (Transition, bool) {
	return c.GoTo(c.session.Index-1, src)
}

// Release completes the transition identified by seq. Stale sequence
// numbers (a superseded timer firing late) are ignored. On release the
// scheduled target is confirmed as the settled section: trusting the
// target rather than re-measuring the offset avoids races with rounding
// residue mid-settle.
func (c *Controller) Release(seq uint64) bool {
	if !c.session.Lock.Held || seq != c.seq {
		return false
	}
	c.session.Index = clampIndex(c.session.Lock.Target, c.session.Sections)
	c.session.Lock = Lock{}
	return true
}

// SetMode switches the UI mode. Idempotent: re-asserting the current
// mode changes nothing.
func (c *Controller) SetMode(mode Mode) bool {
	if c.session.Mode == mode {
		return false
	}
	c.session.Mode = mode
	return true
}

// EnterBrowsing leaves the landing screen targeted at the given section.
// The reveal runs under the lock like any other transition so residual
// wheel momentum cannot double-fire it. On reduced-capability devices
// the mode flips without a transition.
func (c *Controller) EnterBrowsing(index int, src Source) (Transition, bool) {
	if c.session.Lock.Held {
		return Transition{}, false
	}
	c.SetMode(ModeBrowsing)
	index = clampIndex(index, c.session.Sections)
	if c.session.Reduced {
		c.session.Index = index
		return Transition{}, false
	}
	return c.acquire(index, src, true), true
}

// ReturnToLanding switches back to the landing screen. Mode only; the
// settled section is kept so browsing resumes where it left off.
func (c *Controller) ReturnToLanding() bool {
	if c.session.Reduced {
		return false
	}
	return c.SetMode(ModeLanding)
}

// HandleResize applies a capability re-evaluation after the viewport
// settles. Reduced-capability devices get no landing screen, so crossing
// into the narrow class forces browsing mode.
func (c *Controller) HandleResize(reduced bool) {
	c.session.Reduced = reduced
	if reduced {
		c.SetMode(ModeBrowsing)
	}
}

func (c *Controller) acquire(target int, src Source, modeChange bool) Transition {
	from := c.session.Index
	c.seq++
	c.session.Lock = Lock{Held: true, Target: target, Source: src}
	if src == SourceInput {
		c.session.lastAccepted = c.clock.Now()
		c.session.hasAccepted = true
	}
	dur := c.cfg.Transition
	if c.cfg.ReducedMotion {
		dur = c.cfg.ReducedTransition
	}
	return Transition{
		Seq:        c.seq,
		From:       from,
		To:         target,
		Source:     src,
		Duration:   dur,
		ModeChange: modeChange,
	}
}
