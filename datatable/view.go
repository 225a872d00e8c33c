package datatable

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	columnGap       = 2
	maxAutoWidth    = 40
	checkboxWidth   = 3
	loadingHeight   = 5
	sortIndicatorsW = 3 // " ▲▼"
)

const (
	checkboxOn    = "[x]"
	checkboxOff   = "[ ]"
	checkboxMixed = "[-]"
)

// View renders the table.
func (m *Model[T]) View() string {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Border.GetForeground())

	if m.loading {
		return frame.Render(m.loadingView())
	}

	cells := m.cells()
	widths := m.columnWidths(cells)
	total := m.totalWidth(widths)

	if len(m.order) == 0 {
		// The placeholder spans the table's width, or fits the message
		// when no width is set.
		span := max(total, ansi.StringWidth(m.emptyMessage))
		if m.width > 2 {
			span = m.width - 2
		}
		msg := ansi.Truncate(m.emptyMessage, span, "…")
		lines := []string{
			m.headerLine(widths),
			m.styles.Border.Render(strings.Repeat("─", span)),
			"",
			m.styles.Muted.Render(lipgloss.PlaceHorizontal(span, lipgloss.Center, msg)),
			"",
		}
		return frame.Render(strings.Join(lines, "\n"))
	}

	lines := []string{m.headerLine(widths), m.styles.Border.Render(strings.Repeat("─", total))}

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		lines = append(lines, m.rowLine(i, cells[i], widths, total))
	}
	return frame.Render(strings.Join(lines, "\n"))
}

func (m *Model[T]) loadingView() string {
	width := m.width - 2
	if width <= 0 {
		width = m.totalWidth(m.columnWidths(nil))
	}
	label := m.spinner.View() + " " + m.styles.Muted.Render("Loading...")
	return lipgloss.Place(width, loadingHeight, lipgloss.Center, lipgloss.Center, label)
}

// cells renders every displayed row once; index i is display order.
func (m *Model[T]) cells() [][]string {
	out := make([][]string, len(m.order))
	for i, idx := range m.order {
		row := m.data[idx]
		rendered := make([]string, len(m.columns))
		for c, col := range m.columns {
			rendered[c] = col.cell(row, i)
		}
		out[i] = rendered
	}
	return out
}

func (m *Model[T]) columnWidths(cells [][]string) []int {
	widths := make([]int, len(m.columns))
	for c, col := range m.columns {
		if col.Width > 0 {
			widths[c] = col.Width
			continue
		}
		w := ansi.StringWidth(col.Title)
		if col.sortable() {
			w += sortIndicatorsW
		}
		for _, row := range cells {
			w = max(w, ansi.StringWidth(firstLine(row[c])))
		}
		widths[c] = min(w, maxAutoWidth)
	}
	return widths
}

func (m *Model[T]) totalWidth(widths []int) int {
	total := 0
	n := len(widths)
	if m.selectable {
		total += checkboxWidth
		n++
	}
	for _, w := range widths {
		total += w
	}
	if n > 1 {
		total += columnGap * (n - 1)
	}
	if m.width > 2 && total > m.width-2 {
		total = m.width - 2
	}
	return max(total, 1)
}

func (m *Model[T]) headerLine(widths []int) string {
	parts := make([]string, 0, len(widths)+1)
	if m.selectable {
		box := checkboxOff
		switch {
		case m.AllSelected():
			box = checkboxOn
		case m.Indeterminate():
			box = checkboxMixed
		}
		parts = append(parts, m.styles.Header.Render(box))
	}
	for c, col := range m.columns {
		title := col.Title
		style := m.styles.Header
		if m.focus && c == m.colCursor {
			style = m.styles.HeaderFocus
		}
		indicator := ""
		if col.sortable() {
			indicator = " " + m.sortIndicator(col.Key)
		}
		room := max(widths[c]-ansi.StringWidth(indicator), 0)
		title = ansi.Truncate(title, room, "…")
		parts = append(parts, align(style.Render(title)+indicator, widths[c], col.Align))
	}
	return strings.Join(parts, strings.Repeat(" ", columnGap))
}

func (m *Model[T]) sortIndicator(key string) string {
	up, down := m.styles.SortIdle, m.styles.SortIdle
	if m.sort.Key == key {
		switch m.sort.Direction {
		case Ascending:
			up = m.styles.SortActive
		case Descending:
			down = m.styles.SortActive
		}
	}
	return up.Render("▲") + down.Render("▼")
}

func (m *Model[T]) rowLine(i int, row []string, widths []int, total int) string {
	selected := m.IsSelected(i)
	parts := make([]string, 0, len(row)+1)
	if m.selectable {
		box := checkboxOff
		if selected {
			box = checkboxOn
		}
		parts = append(parts, box)
	}
	for c, cell := range row {
		parts = append(parts, align(firstLine(cell), widths[c], m.columns[c].Align))
	}
	line := ansi.Truncate(strings.Join(parts, strings.Repeat(" ", columnGap)), total, "")
	line = padRight(line, total)
	switch {
	case m.focus && i == m.cursor:
		return m.styles.Cursor.Render(line)
	case selected:
		return m.styles.Selected.Render(line)
	}
	return m.styles.Text.Render(line)
}

func (m *Model[T]) visibleRange() (int, int) {
	if m.height <= 0 || m.height >= len(m.order) {
		return 0, len(m.order)
	}
	start := clamp(m.offset, 0, len(m.order)-m.height)
	return start, start + m.height
}

func align(s string, width int, a Align) string {
	s = ansi.Truncate(s, width, "…")
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	switch a {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	}
	return s + strings.Repeat(" ", gap)
}

func padRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
