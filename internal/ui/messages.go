package ui

import (
	"time"

	"github.com/sixfold/wheelhouse/internal/prefs"
	tea "github.com/charmbracelet/bubbletea"
)

// transitionDoneMsg fires when a section transition's timer elapses. The
// sequence number lets a superseded timer be recognised and dropped.
type transitionDoneMsg struct {
	seq uint64
}

func transitionTimer(seq uint64, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return transitionDoneMsg{seq: seq}
	})
}

// resizeSettledMsg fires once the resize burst has been quiet for the
// debounce interval. Only the latest sequence number is honoured.
type resizeSettledMsg struct {
	seq int
}

func resizeSettleTimer(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return resizeSettledMsg{seq: seq}
	})
}

type prefsEventMsg struct {
	event prefs.Event
}

type prefsDoneMsg struct{}

func waitForPrefsEvent(w *prefs.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return prefsDoneMsg{}
		}
		return prefsEventMsg{event: evt}
	}
}
