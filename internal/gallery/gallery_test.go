package gallery

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/tuikit/internal/config"
	"github.com/jask/tuikit/internal/fixtures"
	"github.com/jask/tuikit/keys"
)

func testEnv() Env {
	return NewEnv(config.UIConfig{Locale: "en", InputVariant: "outlined", InputSize: "md"}, fixtures.Builtin(), keys.NewRegistry(), nil)
}

func press(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func TestRegistryIDsUnique(t *testing.T) {
	reg := NewRegistry()
	seen := map[string]bool{}
	for _, id := range reg.IDs() {
		require.False(t, seen[id], "duplicate story %s", id)
		seen[id] = true
	}
	require.Equal(t, []string{PageOverview, PageInput, PageTable}, reg.Pages())
	require.Len(t, reg.PageStories(PageInput), 10)
	require.Len(t, reg.PageStories(PageTable), 8)
}

func TestRegistryFind(t *testing.T) {
	reg := NewRegistry()

	i, err := reg.Find("Table/Sortable")
	require.NoError(t, err)
	require.Equal(t, "table/sortable", reg.At(i).ID())

	i, err = reg.Find("input")
	require.NoError(t, err)
	require.Equal(t, "input/default", reg.At(i).ID())

	_, err = reg.Find("table/sortble")
	require.True(t, errors.Is(err, ErrUnknownStory))
	require.ErrorContains(t, err, `"table/sortable"`)

	_, err = reg.Find("zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz")
	require.True(t, errors.Is(err, ErrUnknownStory))
	require.NotContains(t, err.Error(), "did you mean")
}

func TestEveryStoryRenders(t *testing.T) {
	env := testEnv()
	for _, s := range Stories() {
		t.Run(s.ID(), func(t *testing.T) {
			scene := s.Build(env)
			scene.Init()
			scene.SetWidth(80)
			require.NotEmpty(t, strings.TrimSpace(ansi.Strip(scene.View(80))))
		})
	}
}

func TestSceneCycleSkipsDisplayItems(t *testing.T) {
	scene := buildOverview(testEnv())
	scene.Init()
	require.Equal(t, 0, scene.FocusIndex())

	scene.Cycle(1)
	require.Equal(t, 1, scene.FocusIndex())
	scene.Cycle(1)
	require.Equal(t, 3, scene.FocusIndex(), "variants row and text items are skipped")
	scene.Cycle(1)
	require.Equal(t, 0, scene.FocusIndex(), "wraps around")
	scene.Cycle(-1)
	require.Equal(t, 3, scene.FocusIndex())
}

func TestOverviewSelectionLine(t *testing.T) {
	scene := buildOverview(testEnv())
	scene.Init()
	selectedItem := scene.Items[4]
	require.Equal(t, "Selected users", selectedItem.Title)
	require.Contains(t, ansi.Strip(selectedItem.view()), "none")

	scene.Cycle(1)
	scene.Cycle(1)
	it, ok := scene.Focused()
	require.True(t, ok)
	require.Equal(t, keys.ScopeTable, it.Scope)

	scene.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	require.Equal(t, "John Doe", selectedItem.view())

	scene.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	require.Equal(t, "John Doe, Jane Smith, Bob Johnson, Alice Williams, Charlie Brown", selectedItem.view())
}

func TestExtendedColumnsSortByJoinDate(t *testing.T) {
	table := testEnv().table(extendedColumns())
	table.Sort("joined")
	var got []string
	for _, u := range table.Rows() {
		got = append(got, u.Name)
	}
	require.Equal(t, []string{"John Doe", "Bob Johnson", "Jane Smith", "Charlie Brown", "Alice Williams"}, got)

	table.SetWidth(140)
	view := ansi.Strip(table.View())
	require.Contains(t, view, "Join Date")
	require.Contains(t, view, "2023-01-15")
	require.Contains(t, view, "2024-01-15 11:00")
}

func TestEmptyStoryMessage(t *testing.T) {
	reg := NewRegistry()
	i, err := reg.Find("table/empty")
	require.NoError(t, err)
	scene := reg.At(i).Build(testEnv())
	scene.SetWidth(80)
	require.Contains(t, ansi.Strip(scene.View(80)), "No users found. Try adjusting your search criteria.")

	env := testEnv()
	env.EmptyMessage = "Nothing here"
	scene = reg.At(i).Build(env)
	scene.SetWidth(80)
	require.Contains(t, ansi.Strip(scene.View(80)), "Nothing here")
}

func TestPasswordWithClearStory(t *testing.T) {
	reg := NewRegistry()
	i, err := reg.Find("input/passwordwithclear")
	require.NoError(t, err)
	scene := reg.At(i).Build(testEnv())
	scene.Init()

	view := ansi.Strip(scene.View(80))
	require.NotContains(t, view, "secretpassword")
	require.Contains(t, view, "×")
	require.Contains(t, view, "show")

	scene.Update(press(tea.KeyCtrlX))
	view = ansi.Strip(scene.View(80))
	require.NotContains(t, view, "×")
	require.Contains(t, view, "show")
}

func TestOverviewEmailClear(t *testing.T) {
	scene := buildOverview(testEnv())
	scene.Init()

	for _, r := range "me@x.io" {
		scene.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	require.Contains(t, ansi.Strip(scene.Items[0].view()), "me@x.io")

	scene.Update(press(tea.KeyCtrlX))
	require.NotContains(t, ansi.Strip(scene.Items[0].view()), "me@x.io")
}

func TestLoadingStoryStartsSpinner(t *testing.T) {
	reg := NewRegistry()
	i, err := reg.Find("table/loading")
	require.NoError(t, err)
	scene := reg.At(i).Build(testEnv())
	require.NotNil(t, scene.Init())
	require.Contains(t, ansi.Strip(scene.View(80)), "Loading...")
}

func TestModelNavigation(t *testing.T) {
	reg := NewRegistry()
	m := New(reg, testEnv(), 0)
	require.Equal(t, "overview/index", m.Story().ID())

	next, _ := m.Update(press(tea.KeyPgDown))
	m = next.(Model)
	require.Equal(t, "input/default", m.Story().ID())

	next, _ = m.Update(press(tea.KeyPgUp))
	m = next.(Model)
	next, _ = m.Update(press(tea.KeyPgUp))
	m = next.(Model)
	require.Equal(t, "table/compact", m.Story().ID(), "wraps to the last story")

	next, _ = m.Update(press(tea.KeyF3))
	m = next.(Model)
	require.Equal(t, "overview/index", m.Story().ID())

	next, _ = m.Update(press(tea.KeyF2))
	m = next.(Model)
	require.Equal(t, "table/default", m.Story().ID())
}

func TestModelHelpOverlay(t *testing.T) {
	m := New(NewRegistry(), testEnv(), 0)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	next, _ = m.Update(press(tea.KeyF1))
	m = next.(Model)
	require.True(t, m.ShowingHelp())
	view := ansi.Strip(m.View())
	require.Contains(t, view, "Keys")
	require.Contains(t, view, "next story")

	// Keys other than close are swallowed while help is open.
	next, _ = m.Update(press(tea.KeyPgDown))
	m = next.(Model)
	require.Equal(t, "overview/index", m.Story().ID())

	next, _ = m.Update(press(tea.KeyEsc))
	m = next.(Model)
	require.False(t, m.ShowingHelp())
}

func TestModelQuit(t *testing.T) {
	m := New(NewRegistry(), testEnv(), 0)
	_, cmd := m.Update(press(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModelViewFitsWindow(t *testing.T) {
	m := New(NewRegistry(), testEnv(), 0)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	view := m.View()
	require.Contains(t, ansi.Strip(view), appName)
	require.Contains(t, ansi.Strip(view), "Selected users")
	for _, line := range strings.Split(view, "\n") {
		require.LessOrEqual(t, ansi.StringWidth(line), 120)
	}
}

func TestModelViewStacksRows(t *testing.T) {
	m := New(NewRegistry(), testEnv(), 0)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	lines := strings.Split(ansi.Strip(m.View()), "\n")
	require.LessOrEqual(t, len(lines), 30)
	require.Contains(t, lines[0], appName)
	require.Contains(t, lines[len(lines)-2], "overview/index")
	require.Contains(t, lines[len(lines)-1], "next widget")
}

func TestModelZeroEnv(t *testing.T) {
	m := New(nil, Env{}, 0)
	require.NotPanics(t, func() {
		next, _ := m.Update(press(tea.KeyPgDown))
		m = next.(Model)
		_ = m.View()
	})
	require.Equal(t, "input/default", m.Story().ID())
}

func TestLoadUsers(t *testing.T) {
	ctx := context.Background()

	users, err := LoadUsers(ctx, config.DataConfig{Source: config.SourceBuiltin}, nil)
	require.NoError(t, err)
	require.Equal(t, fixtures.Builtin(), users)

	path := filepath.Join(t.TempDir(), "users.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[users]]\nname = \"Ann\"\nemail = \"ann@example.com\"\n"), 0o644))
	users, err = LoadUsers(ctx, config.DataConfig{Source: config.SourceTOML, Path: path}, nil)
	require.NoError(t, err)
	require.Len(t, users, 1)

	dbPath := filepath.Join(t.TempDir(), "users.db")
	users, err = LoadUsers(ctx, config.DataConfig{Source: config.SourceSQLite, Path: dbPath}, nil)
	require.NoError(t, err)
	require.Equal(t, fixtures.Builtin(), users)

	_, err = LoadUsers(ctx, config.DataConfig{Source: "csv"}, nil)
	require.True(t, errors.Is(err, ErrUnknownSource))
}
