package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/sixfold/wheelhouse/internal/content"
	"github.com/sixfold/wheelhouse/internal/nav"
	"github.com/sixfold/wheelhouse/internal/prefs"
)

func (m *Model) headerHeight() int { return 3 }

func (m *Model) footerHeight() int {
	n := 1
	if m.showFooter {
		n++
	}
	return n
}

func (m *Model) paneHeight() int {
	h := m.height - m.headerHeight() - m.footerHeight()
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) contentWrapWidth() int {
	w := m.width - 2
	if w < 20 {
		w = 20
	}
	return w
}

// layout re-derives every pane's size and content from the current
// terminal geometry, keeping scroll positions.
func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	for i := range m.panes {
		offset := m.panes[i].YOffset
		m.panes[i].Width = m.width
		m.panes[i].Height = m.paneHeight()
		m.panes[i].SetContent(m.renderSection(m.deck[i]))
		m.panes[i].SetYOffset(offset)
	}
	m.layoutStacked()
}

func (m *Model) layoutStacked() {
	offset := m.stacked.YOffset
	m.stacked.Width = m.width
	h := m.height - 1
	if m.showFooter {
		h--
	}
	if h < 1 {
		h = 1
	}
	m.stacked.Height = h

	var b strings.Builder
	anchors := make([]int, 0, len(m.deck))
	lines := 0
	for i, sec := range m.deck {
		if i > 0 {
			b.WriteString("\n\n")
			lines += 2
		}
		anchors = append(anchors, lines)
		header := styles.SectionTitle.Render(sec.Title) + "  " + styles.SectionTagline.Render(sec.Tagline)
		b.WriteString(truncate.StringWithTail(header, uint(m.contentWrapWidth()), "…"))
		b.WriteString("\n")
		lines++
		body := m.renderSection(sec)
		b.WriteString(body)
		lines += strings.Count(body, "\n") + 1
	}
	m.stackedAnchors = anchors
	m.stacked.SetContent(b.String())
	m.stacked.SetYOffset(offset)
}

func (m *Model) renderSection(sec content.Section) string {
	wrap := m.contentWrapWidth()
	var b strings.Builder
	for i, para := range sec.Body {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(styles.Body.Render(wordwrap.String(para, wrap)))
	}
	for i, card := range sec.Cards {
		if i == 0 {
			b.WriteString("\n")
		}
		line := styles.CardTitle.Render(card.Title) + "  " + styles.CardDetail.Render(card.Detail)
		b.WriteString("\n")
		b.WriteString(truncate.StringWithTail(line, uint(wrap), "…"))
	}
	return b.String()
}

// View renders the UI.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.pickerOpen {
		return m.pickerView()
	}
	if m.ctrl.Reduced() {
		return m.reducedView()
	}
	if m.ctrl.Mode() == nav.ModeLanding {
		return m.landingView()
	}
	return m.browsingView()
}

func (m *Model) landingView() string {
	lines := []string{
		styles.LandingTitle.Render(content.DeckTitle(m.lang)),
		"",
		styles.LandingTagline.Render(m.deck[m.ctrl.Index()].Tagline),
		m.dotsRow(),
		"",
		styles.LandingHint.Render(m.landingHint()),
	}
	if m.errMsg != "" {
		lines = append(lines, "", styles.Error.Render(m.errMsg))
	}
	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, block)
}

func (m *Model) browsingView() string {
	idx := m.visibleIndex()
	sec := m.deck[idx]
	header := styles.SectionTitle.Render(sec.Title) + "  " + styles.SectionTagline.Render(sec.Tagline)

	rows := []string{
		truncate.StringWithTail(header, uint(m.width), "…"),
		m.dotsRow(),
		"",
		m.panes[idx].View(),
		m.scrollHintRow(idx),
	}
	if m.showFooter {
		rows = append(rows, m.footerRow())
	}
	return strings.Join(rows, "\n")
}

func (m *Model) reducedView() string {
	rows := []string{
		truncate.StringWithTail(styles.SectionTitle.Render(content.DeckTitle(m.lang)), uint(m.width), "…"),
		m.stacked.View(),
	}
	if m.showFooter {
		rows = append(rows, m.footerRow())
	}
	return strings.Join(rows, "\n")
}

func (m *Model) landingHint() string {
	if m.lang == prefs.LanguageGerman {
		return "Scrollen zum Start · / Sprung · q Beenden"
	}
	return "scroll to begin · / jump · q quit"
}

func (m *Model) dotsRow() string {
	idx := m.visibleIndex()
	dots := make([]string, len(m.deck))
	for i := range m.deck {
		if i == idx {
			dots[i] = styles.ActiveDot.Render("●")
		} else {
			dots[i] = styles.Dot.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

// scrollHintRow shows a "more below" nudge only while the pane is
// scrollable and still at its top.
func (m *Model) scrollHintRow(idx int) string {
	b := m.detector.Probe(paneAdapter{vp: &m.panes[idx]})
	if b.CanScroll && b.AtTop && !b.AtBottom {
		hint := "↓ more"
		if m.lang == prefs.LanguageGerman {
			hint = "↓ mehr"
		}
		return styles.ScrollHint.Render(hint)
	}
	return ""
}

func (m *Model) footerRow() string {
	if m.errMsg != "" {
		return truncate.StringWithTail(styles.Error.Render(m.errMsg), uint(m.width), "…")
	}
	var hints string
	if m.lang == prefs.LanguageGerman {
		hints = "Rad/j/k scrollen · ←/→ Abschnitte · 1-6 springen · / suchen · l English · esc zurück · q beenden"
	} else {
		hints = "wheel/j/k scroll · ←/→ sections · 1-6 jump · / find · l Deutsch · esc back · q quit"
	}
	return truncate.StringWithTail(styles.Footer.Render(hints), uint(m.width), "…")
}
