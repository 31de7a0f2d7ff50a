package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sixfold/wheelhouse/internal/content"
	"github.com/sixfold/wheelhouse/internal/logging/events"
	"github.com/sixfold/wheelhouse/internal/nav"
	"github.com/sixfold/wheelhouse/internal/prefs"
	"github.com/sixfold/wheelhouse/internal/theme"
	uistate "github.com/sixfold/wheelhouse/internal/ui/state"
)

var styles = theme.Default()

// wheelStep is the number of content rows one wheel notch moves.
const wheelStep = 3

const (
	defaultResizeDebounce = 250 * time.Millisecond
	pickerMaxVisible      = 6
)

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Language      prefs.Language
	Cooldown      time.Duration
	Transition    time.Duration
	ReducedMotion bool
	// NarrowWidth is the terminal width below which the deck collapses
	// into a single natively scrolling pane.
	NarrowWidth int
	ShowFooter  bool

	// Store and Watcher are optional; without a store the language
	// toggle is session-only.
	Store   *prefs.Store
	Watcher *prefs.Watcher

	ResizeDebounce time.Duration
	Clock          nav.Clock
}

// Model implements the Bubble Tea model for the deck browser.
type Model struct {
	ctrl     *nav.Controller
	detector nav.Detector
	clock    nav.Clock

	lang    prefs.Language
	deck    []content.Section
	store   *prefs.Store
	watcher *prefs.Watcher

	panes []viewport.Model
	// stacked is the reduced-capability fallback: every section in one
	// natively scrolling pane.
	stacked        viewport.Model
	stackedAnchors []int

	picker     *uistate.Picker
	pickerOpen bool

	width       int
	height      int
	narrowWidth int
	showFooter  bool
	errMsg      string

	resizeSeq      int
	resizeDebounce time.Duration

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the deck browser in landing mode at section 0.
func NewModel(opts Options) *Model {
	if opts.Clock == nil {
		opts.Clock = nav.SystemClock{}
	}
	if opts.ResizeDebounce <= 0 {
		opts.ResizeDebounce = defaultResizeDebounce
	}
	if _, ok := prefs.ParseLanguage(string(opts.Language)); !ok {
		opts.Language = prefs.DefaultLanguage
	}

	deck := content.Deck(opts.Language)
	m := &Model{
		ctrl: nav.NewController(nav.Config{
			Sections:      len(deck),
			Cooldown:      opts.Cooldown,
			Transition:    opts.Transition,
			ReducedMotion: opts.ReducedMotion,
			Clock:         opts.Clock,
		}),
		// Terminal rows are discrete, so edge detection needs no slack.
		detector:       nav.Detector{},
		clock:          opts.Clock,
		lang:           opts.Language,
		deck:           deck,
		store:          opts.Store,
		watcher:        opts.Watcher,
		panes:          make([]viewport.Model, len(deck)),
		narrowWidth:    opts.NarrowWidth,
		showFooter:     opts.ShowFooter,
		resizeDebounce: opts.ResizeDebounce,
	}
	m.picker = uistate.NewPicker(m.pickerEntries())
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.watcher != nil {
		return waitForPrefsEvent(m.watcher)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(transitionDoneMsg{}): m.handleTransitionDoneMsg,
		reflect.TypeOf(resizeSettledMsg{}):  m.handleResizeSettledMsg,
		reflect.TypeOf(prefsEventMsg{}):     m.handlePrefsEventMsg,
		reflect.TypeOf(prefsDoneMsg{}):      m.handlePrefsDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// visibleIndex is the section currently on screen: the lock target while
// a transition is in flight, the settled index otherwise. Sections are
// unit-width in a snap-rendered TUI, so the settled index doubles as the
// horizontal offset.
func (m *Model) visibleIndex() int {
	snap := m.ctrl.Snapshot()
	return nav.ActiveSection(float64(snap.Index), 1, snap.Sections, snap.Lock)
}

func (m *Model) pickerEntries() []uistate.Entry {
	entries := make([]uistate.Entry, len(m.deck))
	for i, sec := range m.deck {
		entries[i] = uistate.Entry{Index: i, ID: sec.ID, Title: sec.Title}
	}
	return entries
}

func (m *Model) handlePrefsEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(prefsEventMsg)
	if !ok {
		return nil
	}
	evt := eventMsg.event
	if evt.Err != nil {
		events.Prefs.Error(evt.Err)
		m.errMsg = evt.Err.Error()
	} else if evt.Language != m.lang {
		m.setLanguage(evt.Language)
		events.Prefs.Changed(string(evt.Language))
	}
	if m.watcher != nil {
		return waitForPrefsEvent(m.watcher)
	}
	return nil
}

func (m *Model) handlePrefsDoneMsg(tea.Msg) tea.Cmd {
	m.watcher = nil
	return nil
}

// setLanguage swaps the deck translation in place, keeping every pane's
// scroll position.
func (m *Model) setLanguage(lang prefs.Language) {
	m.lang = lang
	m.deck = content.Deck(lang)
	m.picker = uistate.NewPicker(m.pickerEntries())
	m.layout()
}

func (m *Model) toggleLanguage() {
	next := m.lang.Toggle()
	m.setLanguage(next)
	if m.store == nil {
		return
	}
	if err := m.store.Set(next); err != nil {
		events.Prefs.Error(err)
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
	events.Prefs.Saved(string(next))
}
