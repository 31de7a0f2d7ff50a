package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sixfold/wheelhouse/internal/logging/events"
	"github.com/sixfold/wheelhouse/internal/nav"
)

// paneAdapter exposes a viewport's scroll geometry to the boundary
// detector.
type paneAdapter struct {
	vp *viewport.Model
}

func (p paneAdapter) ScrollTop() float64    { return float64(p.vp.YOffset) }
func (p paneAdapter) ScrollExtent() float64 { return float64(p.vp.TotalLineCount()) }
func (p paneAdapter) ViewExtent() float64   { return float64(p.vp.Height) }

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.pickerOpen {
		return m.handlePickerKey(keyMsg)
	}
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "esc":
		return m.requestReturnToLanding()
	case "enter":
		if m.ctrl.Mode() == nav.ModeLanding {
			return m.requestEnterBrowsing(m.ctrl.Index(), nav.SourceControl)
		}
		return nil
	case "/":
		m.openPicker()
		return nil
	case "l":
		m.toggleLanguage()
		return nil
	case "left", "h":
		return m.requestStep(-1, nav.SourceControl)
	case "right":
		return m.requestStep(1, nav.SourceControl)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		target := int(keyMsg.String()[0] - '1')
		return m.requestJump(target, nav.SourceControl)
	case "down", "j":
		return m.dispatchScroll(1, true)
	case "up", "k":
		return m.dispatchScroll(-1, true)
	case "pgdown":
		return m.dispatchScroll(wheelStep, true)
	case "pgup":
		return m.dispatchScroll(-wheelStep, true)
	}
	return nil
}

// handleMouseMsg turns wheel events into classified scroll intents. Any
// other mouse activity is ignored.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	var delta float64
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		delta = -wheelStep
	case tea.MouseButtonWheelDown:
		delta = wheelStep
	default:
		return nil
	}
	return m.dispatchScroll(delta, m.inPane(ev.Y))
}

// inPane reports whether a terminal row falls inside the content pane.
// Header and footer chrome keep their native (no-op) behaviour.
func (m *Model) inPane(y int) bool {
	if m.ctrl.Reduced() || m.ctrl.Mode() == nav.ModeLanding {
		return true
	}
	top := m.headerHeight()
	return y >= top && y < top+m.paneHeight()
}

// dispatchScroll runs one scroll event through the classifier and applies
// the verdict.
func (m *Model) dispatchScroll(delta float64, inPane bool) tea.Cmd {
	snap := m.ctrl.Snapshot()
	boundary := nav.Boundary{}
	if snap.Mode == nav.ModeBrowsing && !snap.Reduced {
		boundary = m.detector.Probe(paneAdapter{vp: &m.panes[m.visibleIndex()]})
	}
	ev := nav.Event{Delta: delta, InPane: inPane, When: m.clock.Now()}
	dec := nav.Classify(ev, snap, boundary)
	events.Input.Classified(dec.Action.String(), dec.Reason, delta, inPane)

	switch dec.Action {
	case nav.ActionSuppress:
		return nil
	case nav.ActionPassThrough:
		m.applyNativeScroll(snap, boundary, delta, inPane)
		return nil
	case nav.ActionEnterBrowsing:
		return m.requestEnterBrowsing(snap.Index, nav.SourceInput)
	case nav.ActionReturnToLanding:
		return m.requestReturnToLanding()
	case nav.ActionNavigatePrev:
		return m.requestStep(-1, nav.SourceInput)
	case nav.ActionNavigateNext:
		return m.requestStep(1, nav.SourceInput)
	}
	return nil
}

// applyNativeScroll is the pass-through arm: the event still moves
// whatever pane owns it.
func (m *Model) applyNativeScroll(snap nav.Snapshot, b nav.Boundary, delta float64, inPane bool) {
	if snap.Reduced {
		scrollViewport(&m.stacked, delta)
		return
	}
	if snap.Mode == nav.ModeBrowsing && inPane && b.CanScroll {
		scrollViewport(&m.panes[m.visibleIndex()], delta)
	}
}

func scrollViewport(vp *viewport.Model, delta float64) {
	if delta > 0 {
		vp.LineDown(int(delta))
	} else if delta < 0 {
		vp.LineUp(int(-delta))
	}
}
