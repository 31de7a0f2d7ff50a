package nav

// Pane is the minimal read surface of a vertically scrollable content
// region. Offsets and extents share one abstract unit; the detector never
// assumes pixels or rows.
type Pane interface {
	// ScrollTop is the current vertical offset from the top.
	ScrollTop() float64
	// ScrollExtent is the total content height.
	ScrollExtent() float64
	// ViewExtent is the visible height.
	ViewExtent() float64
}

// Boundary reports where a pane sits in its vertical scroll range.
type Boundary struct {
	CanScroll bool
	AtTop     bool
	AtBottom  bool
}

// Detector probes panes for boundary state. ScrollSlack absorbs rounding
// residue when deciding whether a pane can scroll at all; EdgeSlack
// widens the top/bottom bands so that subpixel rounding and late layout
// settling (an image finishing its load, a font swap) cannot leave a pane
// stranded a few units short of "at the boundary".
type Detector struct {
	ScrollSlack float64
	EdgeSlack   float64
}

// Reference tolerances, in abstract scroll units.
const (
	DefaultScrollSlack = 2
	DefaultEdgeSlack   = 8
)

// DefaultDetector returns a detector with the reference tolerances.
func DefaultDetector() Detector {
	return Detector{ScrollSlack: DefaultScrollSlack, EdgeSlack: DefaultEdgeSlack}
}

// Probe derives the boundary state for a pane. A nil pane means the
// section has no resolvable content region; it reports as non-scrollable
// and at both boundaries so navigation proceeds instead of jamming.
// State is computed fresh per call — content height changes at runtime,
// so callers must not cache the result across events.
func (d Detector) Probe(p Pane) Boundary {
	if p == nil {
		return Boundary{CanScroll: false, AtTop: true, AtBottom: true}
	}
	extent := p.ScrollExtent()
	view := p.ViewExtent()
	if extent <= view+d.ScrollSlack {
		return Boundary{CanScroll: false, AtTop: true, AtBottom: true}
	}
	top := p.ScrollTop()
	return Boundary{
		CanScroll: true,
		AtTop:     top <= d.EdgeSlack,
		AtBottom:  top >= extent-view-d.EdgeSlack,
	}
}
