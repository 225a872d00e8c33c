package gallery

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/tuikit/datatable"
	"github.com/jask/tuikit/inputfield"
	"github.com/jask/tuikit/keys"
)

// Item is one widget placed in a scene. Items without a focus hook are
// display-only and skipped by focus cycling.
type Item struct {
	Title string
	// Scope names the key scope shown in the footer while focused.
	Scope string

	init   func() tea.Cmd
	update func(tea.Msg) tea.Cmd
	view   func() string
	focus  func() tea.Cmd
	blur   func()
	resize func(width int)
}

func (it Item) Focusable() bool { return it.focus != nil }

// TableItem places a table in a scene.
func TableItem[T any](title string, t *datatable.Model[T]) Item {
	return Item{
		Title:  title,
		Scope:  keys.ScopeTable,
		init:   t.Init,
		update: t.Update,
		view:   t.View,
		focus:  func() tea.Cmd { t.Focus(); return nil },
		blur:   t.Blur,
		resize: t.SetWidth,
	}
}

// InputItem places a field in a scene. Disabled fields still take focus
// so the disabled state can be inspected.
func InputItem(title string, f *inputfield.Model) Item {
	return Item{
		Title:  title,
		Scope:  keys.ScopeInput,
		init:   f.Init,
		update: f.Update,
		view:   f.View,
		focus:  f.Focus,
		blur:   f.Blur,
		resize: func(w int) { f.SetWidth(min(w, maxFieldWidth)) },
	}
}

// TextItem places computed text in a scene.
func TextItem(title string, view func() string) Item {
	return Item{Title: title, view: view}
}

// RowItem renders fields side by side. Only tick messages reach them.
func RowItem(title string, fields ...*inputfield.Model) Item {
	return Item{
		Title: title,
		init: func() tea.Cmd {
			cmds := make([]tea.Cmd, 0, len(fields))
			for _, f := range fields {
				cmds = append(cmds, f.Init())
			}
			return tea.Batch(cmds...)
		},
		update: func(msg tea.Msg) tea.Cmd {
			cmds := make([]tea.Cmd, 0, len(fields))
			for _, f := range fields {
				cmds = append(cmds, f.Update(msg))
			}
			return tea.Batch(cmds...)
		},
		view: func() string {
			parts := make([]string, 0, len(fields))
			for _, f := range fields {
				parts = append(parts, f.View())
			}
			return joinColumns(parts, 2)
		},
		resize: func(w int) {
			if len(fields) == 0 {
				return
			}
			each := max(12, (w-2*(len(fields)-1))/len(fields))
			for _, f := range fields {
				f.SetWidth(min(each, maxFieldWidth))
			}
		},
	}
}

const maxFieldWidth = 48

// Scene is the live set of widgets for one story.
type Scene struct {
	Items []Item
	focus int
}

func NewScene(items ...Item) *Scene {
	return &Scene{Items: items, focus: -1}
}

// Init starts the items and focuses the first focusable one when
// nothing has focus yet.
func (s *Scene) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(s.Items)+1)
	for _, it := range s.Items {
		if it.init != nil {
			cmds = append(cmds, it.init())
		}
	}
	if s.focus < 0 {
		cmds = append(cmds, s.Cycle(1))
	}
	return tea.Batch(cmds...)
}

// Update sends key presses to the focused item and everything else to
// all items.
func (s *Scene) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		it, ok := s.Focused()
		if !ok || it.update == nil {
			return nil
		}
		return it.update(msg)
	}
	cmds := make([]tea.Cmd, 0, len(s.Items))
	for _, it := range s.Items {
		if it.update != nil {
			cmds = append(cmds, it.update(msg))
		}
	}
	return tea.Batch(cmds...)
}

// Cycle moves focus by delta focusable items, wrapping around.
func (s *Scene) Cycle(delta int) tea.Cmd {
	n := len(s.Items)
	if n == 0 {
		return nil
	}
	start := s.focus
	if start < 0 && delta < 0 {
		start = 0
	}
	for step := 1; step <= n; step++ {
		i := ((start+delta*step)%n + n) % n
		if !s.Items[i].Focusable() {
			continue
		}
		if i == s.focus {
			return nil
		}
		if cur, ok := s.Focused(); ok {
			cur.blur()
		}
		s.focus = i
		return s.Items[i].focus()
	}
	return nil
}

// Focused returns the focused item.
func (s *Scene) Focused() (Item, bool) {
	if s.focus < 0 || s.focus >= len(s.Items) {
		return Item{}, false
	}
	return s.Items[s.focus], true
}

// FocusIndex is the index of the focused item, -1 when none.
func (s *Scene) FocusIndex() int { return s.focus }

func (s *Scene) SetWidth(width int) {
	for _, it := range s.Items {
		if it.resize != nil {
			it.resize(width)
		}
	}
}

// View stacks item titles and widgets, clipped to width.
func (s *Scene) View(width int) string {
	var b strings.Builder
	for i, it := range s.Items {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if it.Title != "" {
			title := it.Title
			if i == s.focus {
				title = "● " + title
			}
			b.WriteString(headingStyle.Render(title))
			b.WriteString("\n")
		}
		b.WriteString(it.view())
	}
	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	return strings.Join(lines, "\n")
}

func joinColumns(blocks []string, gap int) string {
	split := make([][]string, len(blocks))
	widths := make([]int, len(blocks))
	rows := 0
	for i, b := range blocks {
		split[i] = strings.Split(b, "\n")
		rows = max(rows, len(split[i]))
		for _, l := range split[i] {
			widths[i] = max(widths[i], ansi.StringWidth(l))
		}
	}
	out := make([]string, rows)
	for r := range out {
		var line strings.Builder
		for i := range split {
			cell := ""
			if r < len(split[i]) {
				cell = split[i][r]
			}
			if i < len(split)-1 {
				cell += strings.Repeat(" ", widths[i]-ansi.StringWidth(cell)+gap)
			}
			line.WriteString(cell)
		}
		out[r] = strings.TrimRight(line.String(), " ")
	}
	return strings.Join(out, "\n")
}
