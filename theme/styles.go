package theme

import "github.com/charmbracelet/lipgloss"

// Styles groups the text styles a widget draws with. Widgets copy the
// value, so callers can tweak a field without affecting other instances.
type Styles struct {
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Header      lipgloss.Style
	HeaderFocus lipgloss.Style
	SortActive  lipgloss.Style
	SortIdle    lipgloss.Style
	Cursor      lipgloss.Style
	Selected    lipgloss.Style
	Border      lipgloss.Style
	Label       lipgloss.Style
	Helper      lipgloss.Style
	Error       lipgloss.Style
	Spinner     lipgloss.Style
	Control     lipgloss.Style
	Placeholder lipgloss.Style
}

// Default returns the styles used when a widget is built without overrides.
func Default() Styles {
	return Styles{
		Text:        lipgloss.NewStyle().Foreground(Text),
		Muted:       lipgloss.NewStyle().Foreground(Muted),
		Header:      lipgloss.NewStyle().Foreground(Subtext0).Bold(true),
		HeaderFocus: lipgloss.NewStyle().Foreground(Text).Bold(true).Underline(true),
		SortActive:  lipgloss.NewStyle().Foreground(Primary),
		SortIdle:    lipgloss.NewStyle().Foreground(Surface2),
		Cursor:      lipgloss.NewStyle().Background(Surface0),
		Selected:    lipgloss.NewStyle().Background(PrimarySoft).Foreground(Text),
		Border:      lipgloss.NewStyle().Foreground(Border),
		Label:       lipgloss.NewStyle().Foreground(Text).Bold(true),
		Helper:      lipgloss.NewStyle().Foreground(Muted),
		Error:       lipgloss.NewStyle().Foreground(Destructive),
		Spinner:     lipgloss.NewStyle().Foreground(Primary),
		Control:     lipgloss.NewStyle().Foreground(Overlay2),
		Placeholder: lipgloss.NewStyle().Foreground(Overlay0),
	}
}
