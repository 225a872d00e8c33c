package inputfield

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/tuikit/theme"
)

const (
	defaultWidth = 32
	minInner     = 4

	clearGlyph = "×"
	showGlyph  = "show"
	hideGlyph  = "hide"
)

// View renders label, framed input and message.
func (m *Model) View() string {
	var lines []string
	if m.label != "" {
		lines = append(lines, m.labelStyle().Render(m.label))
	}

	frame := m.frameStyle()
	width := m.outerWidth()
	inner := m.innerWidth()
	controls := m.controls()

	content := m.input.View()
	if controls != "" {
		gap := max(1, inner-ansi.StringWidth(content)-ansi.StringWidth(controls))
		content += strings.Repeat(" ", gap) + controls
	}
	lines = append(lines, frame.Width(max(minInner, width-2)).Render(content))

	if msg := m.Message(); msg != "" {
		style := m.styles.Helper
		if m.Invalid() {
			style = m.styles.Error
		}
		lines = append(lines, style.Render(ansi.Truncate(msg, width, "…")))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) outerWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

// innerWidth is the space inside the frame border and padding.
func (m *Model) innerWidth() int {
	_, padH := m.size.padding()
	return m.outerWidth() - 2 - padH*2
}

// layout sizes the text input to the space left beside the controls.
// It runs whenever something that affects that space changes.
func (m *Model) layout() {
	m.input.Width = max(minInner, m.innerWidth()-ansi.StringWidth(m.controls())-1)
}

// controls renders the right-hand affordances. Loading takes the whole
// slot; otherwise clear comes before the visibility toggle.
func (m *Model) controls() string {
	if m.loading {
		return m.spinner.View()
	}
	var parts []string
	if m.ClearVisible() {
		parts = append(parts, m.styles.Control.Render(clearGlyph))
	}
	if m.VisibilityToggleVisible() {
		glyph := showGlyph
		if m.showPassword {
			glyph = hideGlyph
		}
		parts = append(parts, m.styles.Control.Render(glyph))
	}
	return strings.Join(parts, " ")
}

func (m *Model) labelStyle() lipgloss.Style {
	style := m.styles.Label
	switch m.size {
	case Small:
		style = style.Bold(false)
	case Large:
		style = style.Underline(true)
	}
	if m.Invalid() {
		style = style.Foreground(theme.Destructive)
	}
	if m.disabled {
		style = style.Faint(true)
	}
	return style
}

func (m *Model) frameStyle() lipgloss.Style {
	padV, padH := m.size.padding()
	style := lipgloss.NewStyle().Padding(padV, padH)

	border := lipgloss.Color(theme.Border)
	switch {
	case m.Invalid():
		border = theme.Destructive
	case m.focus:
		border = theme.Focus
	}

	switch m.variant {
	case Filled:
		style = style.Background(theme.Surface0)
		if !m.focus && !m.Invalid() {
			border = theme.Surface0
		}
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(border)
	case Ghost:
		if m.focus || m.Invalid() {
			style = style.Border(lipgloss.RoundedBorder()).BorderForeground(border)
		} else {
			style = style.Border(lipgloss.HiddenBorder())
		}
	default:
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(border)
	}

	if !m.Editable() {
		style = style.Faint(true)
	}
	return style
}
