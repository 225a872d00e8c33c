package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/tuikit/theme"
)

// Badge renders a short label on a colored background. Unknown variants
// fall back to "default".
func Badge(label, variant string) string {
	colors := theme.BadgeColors()
	bg, ok := colors[variant]
	if !ok {
		bg = colors["default"]
	}
	fg := theme.Crust
	if variant == "secondary" || variant == "outline" {
		fg = theme.Text
	}
	return lipgloss.NewStyle().Background(bg).Foreground(fg).Padding(0, 1).Render(label)
}
