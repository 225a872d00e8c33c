// Package gallery is the interactive story browser for the widgets:
// an overview page plus one page of stories per widget.
package gallery

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/tuikit/keys"
	"github.com/jask/tuikit/theme"
	"github.com/jask/tuikit/widgets"
)

const appName = "tuikit gallery"

const (
	defaultWidth  = 100
	defaultHeight = 32
	navRatio      = 1
	sceneRatio    = 4
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	footerStyle = lipgloss.NewStyle().Foreground(theme.Text).Background(theme.Surface0).Padding(0, 2)
)

// Model is the gallery's bubbletea model.
type Model struct {
	registry *Registry
	env      Env
	help     help.Model

	index    int
	scene    *Scene
	showHelp bool
	status   string

	width  int
	height int
}

// New opens the story at index start.
func New(reg *Registry, env Env, start int) Model {
	if reg == nil {
		reg = NewRegistry()
	}
	if env.Keys == nil {
		env.Keys = keys.NewRegistry()
	}
	if env.Logger == nil {
		env.Logger = slog.New(slog.DiscardHandler)
	}
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Subtext0)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Subtext0)
	m := Model{registry: reg, env: env, help: h}
	m.build(start)
	return m
}

func (m Model) Init() tea.Cmd {
	return m.scene.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scene.SetWidth(m.sceneWidth())
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, m.scene.Update(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	reg := m.env.Keys
	if key.Matches(msg, reg.KeyBinding(keys.ScopeGlobal, keys.ActionQuit)) {
		return m, tea.Quit
	}
	if m.showHelp {
		if key.Matches(msg, reg.KeyBinding(keys.ScopeHelp, keys.ActionClose)) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, reg.KeyBinding(keys.ScopeGlobal, keys.ActionHelp)):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, reg.KeyBinding(keys.ScopeGlobal, keys.ActionNextStory)):
		return m, m.open(m.index + 1)
	case key.Matches(msg, reg.KeyBinding(keys.ScopeGlobal, keys.ActionPrevStory)):
		return m, m.open(m.index - 1)
	case key.Matches(msg, reg.KeyBinding(keys.ScopeGlobal, keys.ActionNextPage)):
		return m, m.open(m.pageStart(1))
	case key.Matches(msg, reg.KeyBinding(keys.ScopeGlobal, keys.ActionPrevPage)):
		return m, m.open(m.pageStart(-1))
	case key.Matches(msg, reg.KeyBinding(keys.ScopeGlobal, keys.ActionFocusNext)):
		return m, m.scene.Cycle(1)
	case key.Matches(msg, reg.KeyBinding(keys.ScopeGlobal, keys.ActionFocusPrev)):
		return m, m.scene.Cycle(-1)
	}
	return m, m.scene.Update(msg)
}

// open switches to the story at i and starts its scene.
func (m *Model) open(i int) tea.Cmd {
	m.build(i)
	return m.scene.Init()
}

// build constructs the story at i, wrapping around the registry.
func (m *Model) build(i int) {
	n := m.registry.Len()
	if n == 0 {
		m.scene = NewScene()
		return
	}
	m.index = ((i % n) + n) % n
	story := m.registry.At(m.index)
	m.scene = story.Build(m.env)
	m.scene.SetWidth(m.sceneWidth())
	m.status = story.ID()
	m.env.Logger.Info("story opened", "story", story.ID())
}

// pageStart returns the first story index of the page delta pages away.
func (m Model) pageStart(delta int) int {
	pages := m.registry.Pages()
	if len(pages) == 0 {
		return 0
	}
	cur := slices.Index(pages, m.Story().Page)
	next := pages[((cur+delta)%len(pages)+len(pages))%len(pages)]
	return m.registry.PageStories(next)[0]
}

// Story is the story on screen.
func (m Model) Story() Story {
	if m.registry.Len() == 0 {
		return Story{}
	}
	return m.registry.At(m.index)
}

// Scene is the live scene of the current story.
func (m Model) Scene() *Scene { return m.scene }

func (m Model) ShowingHelp() bool { return m.showHelp }

func (m Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// sceneWidth is the content width inside the scene pane.
func (m Model) sceneWidth() int {
	w, _ := m.size()
	widths := widgets.SplitWidths(w-1, 2, []float64{navRatio, sceneRatio})
	return max(10, widths[1]-4)
}

func (m Model) View() string {
	width, height := m.size()
	story := m.Story()

	header := titleStyle.Render(appName) + "  " + statusStyle.Render(pageTitle(story.Page))
	statusLine := statusStyle.Render(m.status)
	footer := footerStyle.Width(width).Render(m.help.ShortHelpView(m.footerBindings()))

	var names []string
	selected := 0
	for n, i := range m.registry.PageStories(story.Page) {
		names = append(names, m.registry.At(i).Name)
		if i == m.index {
			selected = n
		}
	}
	navWidth := widgets.SplitWidths(width-1, 2, []float64{navRatio, sceneRatio})[0]
	nav := widgets.Pane{
		Title:   "Stories",
		Content: widgets.List{Title: story.Page, Items: names, Selected: selected}.Render(max(1, navWidth-4), len(names)+1),
	}
	content := statusStyle.Render(story.Description) + "\n\n" + m.scene.View(m.sceneWidth())
	pane := widgets.Pane{Title: story.Name, Content: content, Focused: true}

	bodyHeight := max(3, height-3)
	body := widgets.HStack{
		Widgets: []widgets.Widget{nav, pane},
		Ratios:  []float64{navRatio, sceneRatio},
		Gap:     1,
	}

	// Header, status and footer take one row each; the body gets the rest.
	view := widgets.VStack{
		Widgets: []widgets.Widget{
			widgets.Static(header),
			body,
			widgets.Static(statusLine),
			widgets.Static(footer),
		},
		Ratios: []float64{1, float64(bodyHeight), 1, 1},
	}.Render(width, bodyHeight+3)
	if m.showHelp {
		return widgets.RenderPopup(view, m.helpView(), width, height)
	}
	return view
}

// footerBindings are the global keys plus those of the focused widget.
func (m Model) footerBindings() []key.Binding {
	reg := m.env.Keys
	out := []key.Binding{
		reg.KeyBinding(keys.ScopeGlobal, keys.ActionFocusNext),
		reg.KeyBinding(keys.ScopeGlobal, keys.ActionNextStory),
		reg.KeyBinding(keys.ScopeGlobal, keys.ActionNextPage),
		reg.KeyBinding(keys.ScopeGlobal, keys.ActionHelp),
		reg.KeyBinding(keys.ScopeGlobal, keys.ActionQuit),
	}
	if it, ok := m.scene.Focused(); ok {
		switch it.Scope {
		case keys.ScopeTable:
			out = append(out,
				reg.KeyBinding(keys.ScopeTable, keys.ActionSort),
				reg.KeyBinding(keys.ScopeTable, keys.ActionToggleRow),
			)
		case keys.ScopeInput:
			out = append(out,
				reg.KeyBinding(keys.ScopeInput, keys.ActionClear),
				reg.KeyBinding(keys.ScopeInput, keys.ActionToggleVisibility),
			)
		}
	}
	return out
}

func (m Model) helpView() string {
	reg := m.env.Keys
	groups := [][]key.Binding{
		reg.HelpBindings(keys.ScopeGlobal),
		reg.HelpBindings(keys.ScopeTable),
		reg.HelpBindings(keys.ScopeInput),
	}
	return titleStyle.Render("Keys") + "\n\n" + m.help.FullHelpView(groups)
}

func pageTitle(page string) string {
	if page == "" {
		return ""
	}
	return strings.ToUpper(page[:1]) + page[1:]
}
