package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	LandingTitle   *lipgloss.Style
	LandingTagline *lipgloss.Style
	LandingHint    *lipgloss.Style

	SectionTitle   *lipgloss.Style
	SectionTagline *lipgloss.Style
	Dot            *lipgloss.Style
	ActiveDot      *lipgloss.Style

	Body       *lipgloss.Style
	CardTitle  *lipgloss.Style
	CardDetail *lipgloss.Style

	Footer     *lipgloss.Style
	ScrollHint *lipgloss.Style
	Error      *lipgloss.Style

	PickerPrompt      *lipgloss.Style
	PickerInput       *lipgloss.Style
	PickerPlaceholder *lipgloss.Style
	PickerItem        *lipgloss.Style
	PickerSelected    *lipgloss.Style
	PickerFrame       *lipgloss.Style
}

var defaultStyles = Styles{
	LandingTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	LandingTagline: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	),
	LandingHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	SectionTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	SectionTagline: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	),
	Dot: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	ActiveDot: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	Body: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	CardTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	CardDetail: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ScrollHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	PickerPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	PickerInput: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	PickerPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	PickerItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	PickerSelected: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	PickerFrame: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
