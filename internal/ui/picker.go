package ui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sixfold/wheelhouse/internal/nav"
	"github.com/sixfold/wheelhouse/internal/prefs"
)

func (m *Model) openPicker() {
	m.picker.Reset(m.ctrl.Index())
	m.pickerOpen = true
}

func (m *Model) closePicker() {
	m.pickerOpen = false
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) tea.Cmd {
	p := m.picker
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		m.closePicker()
		return nil
	case "enter":
		sel, ok := p.Selected()
		m.closePicker()
		if !ok {
			return nil
		}
		return m.requestJump(sel.Index, nav.SourceControl)
	case "up", "ctrl+p":
		p.MoveCursorUp()
		p.EnsureCursorVisible(pickerMaxVisible)
		return nil
	case "down", "ctrl+n":
		p.MoveCursorDown()
		p.EnsureCursorVisible(pickerMaxVisible)
		return nil
	case "home":
		p.MoveCursorHome()
		p.EnsureCursorVisible(pickerMaxVisible)
		return nil
	case "end":
		p.MoveCursorEnd()
		p.EnsureCursorVisible(pickerMaxVisible)
		return nil
	case "ctrl+u":
		p.SetFilter("", 0)
		p.EnsureCursorVisible(pickerMaxVisible)
		return nil
	case "ctrl+w":
		if p.DeleteFilterWordBackward() {
			p.EnsureCursorVisible(pickerMaxVisible)
		}
		return nil
	case "left":
		p.MoveFilterCursorRuneBackward()
		return nil
	case "right":
		p.MoveFilterCursorRuneForward()
		return nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if p.DeleteFilterRuneBackward() {
			p.EnsureCursorVisible(pickerMaxVisible)
		}
	case tea.KeySpace:
		p.InsertFilterText(" ")
		p.EnsureCursorVisible(pickerMaxVisible)
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		p.InsertFilterText(string(msg.Runes))
		p.EnsureCursorVisible(pickerMaxVisible)
	}
	return nil
}

func (m *Model) pickerView() string {
	p := m.picker

	prompt := styles.PickerPrompt.Render("» ")
	var input string
	if p.Filter == "" {
		placeholder := "type a section name"
		if m.lang == prefs.LanguageGerman {
			placeholder = "Abschnittsname eingeben"
		}
		input = styles.PickerPlaceholder.Render(placeholder)
	} else {
		input = styles.PickerInput.Render(p.Filter)
	}

	rows := []string{prompt + input, ""}
	if len(p.Items) == 0 {
		empty := "no matches"
		if m.lang == prefs.LanguageGerman {
			empty = "keine Treffer"
		}
		rows = append(rows, styles.PickerPlaceholder.Render(empty))
	}
	end := p.ViewportOffset + pickerMaxVisible
	if end > len(p.Items) {
		end = len(p.Items)
	}
	for i := p.ViewportOffset; i < end; i++ {
		entry := p.Items[i]
		line := truncate.StringWithTail(entry.Title, 32, "…")
		if i == p.Cursor {
			rows = append(rows, styles.PickerSelected.Render("> "+line))
		} else {
			rows = append(rows, styles.PickerItem.Render("  "+line))
		}
	}
	panel := styles.PickerFrame.Render(strings.Join(rows, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}
