package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/tuikit/theme"
)

// List is a titled column of items with one highlighted entry. Selected
// below zero highlights nothing.
type List struct {
	Title    string
	Items    []string
	Selected int
}

func (l List) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	title := lipgloss.NewStyle().Foreground(theme.Subtext0).Bold(true)
	active := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	idle := lipgloss.NewStyle().Foreground(theme.Overlay2)

	rows := make([]string, 0, len(l.Items)+1)
	rows = append(rows, title.Render(l.Title))

	// Keep the highlighted entry on screen.
	start := 0
	if visible := height - 1; l.Selected >= visible && visible > 0 {
		start = l.Selected - visible + 1
	}
	for i := start; i < len(l.Items); i++ {
		if i == l.Selected {
			rows = append(rows, padRight(active.Render("› "+l.Items[i]), width))
			continue
		}
		rows = append(rows, padRight(idle.Render("  "+l.Items[i]), width))
	}
	if len(rows) > height {
		rows = rows[:height]
	}
	return strings.Join(rows, "\n")
}
