package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sixfold/wheelhouse/internal/logging/events"
	"github.com/sixfold/wheelhouse/internal/nav"
)

func (m *Model) requestStep(dir int, src nav.Source) tea.Cmd {
	if m.ctrl.Reduced() {
		m.scrollStackedBy(dir)
		return nil
	}
	var (
		t  nav.Transition
		ok bool
	)
	if dir < 0 {
		t, ok = m.ctrl.Previous(src)
	} else {
		t, ok = m.ctrl.Next(src)
	}
	if !ok {
		events.Nav.Reject(m.ctrl.Index()+dir, src.String())
		return nil
	}
	return m.startTransition(t)
}

func (m *Model) requestJump(target int, src nav.Source) tea.Cmd {
	if m.ctrl.Reduced() {
		m.jumpStackedTo(target)
		return nil
	}
	if m.ctrl.Mode() == nav.ModeLanding {
		return m.requestEnterBrowsing(target, src)
	}
	t, ok := m.ctrl.GoTo(target, src)
	if !ok {
		events.Nav.Reject(target, src.String())
		return nil
	}
	return m.startTransition(t)
}

func (m *Model) requestEnterBrowsing(target int, src nav.Source) tea.Cmd {
	wasLanding := m.ctrl.Mode() == nav.ModeLanding
	t, ok := m.ctrl.EnterBrowsing(target, src)
	if !ok {
		if wasLanding && m.ctrl.Mode() == nav.ModeBrowsing {
			// Reduced-capability path: the mode flips without a lock.
			events.Mode.Switch(nav.ModeLanding.String(), nav.ModeBrowsing.String())
		}
		return nil
	}
	return m.startTransition(t)
}

func (m *Model) requestReturnToLanding() tea.Cmd {
	if m.ctrl.Locked() {
		return nil
	}
	if m.ctrl.ReturnToLanding() {
		events.Mode.Switch(nav.ModeBrowsing.String(), nav.ModeLanding.String())
	}
	return nil
}

// startTransition traces an accepted move, shows the target section from
// its top, and schedules the lock release.
func (m *Model) startTransition(t nav.Transition) tea.Cmd {
	events.Nav.Accept(t.From, t.To, t.Source.String(), t.Seq)
	if t.ModeChange {
		events.Mode.Switch(nav.ModeLanding.String(), nav.ModeBrowsing.String())
	}
	if t.From != t.To && t.To >= 0 && t.To < len(m.panes) {
		m.panes[t.To].GotoTop()
	}
	return transitionTimer(t.Seq, t.Duration)
}

func (m *Model) handleTransitionDoneMsg(msg tea.Msg) tea.Cmd {
	doneMsg, ok := msg.(transitionDoneMsg)
	if !ok {
		return nil
	}
	if m.ctrl.Release(doneMsg.seq) {
		events.Nav.Release(doneMsg.seq, m.ctrl.Index())
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	sizeMsg, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = sizeMsg.Width
	m.height = sizeMsg.Height
	events.App.Resize(m.width, m.height, m.isNarrow())
	m.layout()
	// Capability class re-evaluation waits for the resize burst to end;
	// the visual layout above tracks every intermediate size.
	m.resizeSeq++
	return resizeSettleTimer(m.resizeSeq, m.resizeDebounce)
}

func (m *Model) handleResizeSettledMsg(msg tea.Msg) tea.Cmd {
	settledMsg, ok := msg.(resizeSettledMsg)
	if !ok {
		return nil
	}
	if settledMsg.seq != m.resizeSeq {
		return nil
	}
	events.App.ResizeDebounced(settledMsg.seq)
	reduced := m.isNarrow()
	wasReduced := m.ctrl.Reduced()
	m.ctrl.HandleResize(reduced)
	if reduced && !wasReduced {
		events.Mode.Forced(nav.ModeBrowsing.String(), "narrow-viewport")
		m.jumpStackedTo(m.ctrl.Index())
	}
	return nil
}

func (m *Model) isNarrow() bool {
	return m.narrowWidth > 0 && m.width > 0 && m.width < m.narrowWidth
}

func (m *Model) scrollStackedBy(dir int) {
	scrollViewport(&m.stacked, float64(dir*wheelStep))
}

// jumpStackedTo scrolls the stacked fallback pane to a section's first
// line.
func (m *Model) jumpStackedTo(target int) {
	if target < 0 || target >= len(m.stackedAnchors) {
		return
	}
	m.stacked.SetYOffset(m.stackedAnchors[target])
}
