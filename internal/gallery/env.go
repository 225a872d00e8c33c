package gallery

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/jask/tuikit/datatable"
	"github.com/jask/tuikit/inputfield"
	"github.com/jask/tuikit/internal/config"
	"github.com/jask/tuikit/internal/fixtures"
	"github.com/jask/tuikit/keys"
	"github.com/jask/tuikit/theme"
	"github.com/jask/tuikit/widgets"
)

// Env carries what stories need to build their widgets.
type Env struct {
	Users        []fixtures.User
	Styles       theme.Styles
	Keys         *keys.Registry
	Locale       language.Tag
	EmptyMessage string
	Variant      inputfield.Variant
	Size         inputfield.Size
	Logger       *slog.Logger
}

// NewEnv builds an Env from UI settings. Unparseable variant or size
// names fall back to the defaults.
func NewEnv(ui config.UIConfig, users []fixtures.User, reg *keys.Registry, logger *slog.Logger) Env {
	variant, _ := inputfield.ParseVariant(ui.InputVariant)
	size, _ := inputfield.ParseSize(ui.InputSize)
	if reg == nil {
		reg = keys.NewRegistry()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return Env{
		Users:        users,
		Styles:       theme.Default(),
		Keys:         reg,
		Locale:       ui.Language(),
		EmptyMessage: ui.EmptyMessage,
		Variant:      variant,
		Size:         size,
		Logger:       logger,
	}
}

func (e Env) field(opts ...inputfield.Option) *inputfield.Model {
	base := []inputfield.Option{
		inputfield.WithVariant(e.Variant),
		inputfield.WithSize(e.Size),
		inputfield.WithStyles(e.Styles),
		inputfield.WithKeyMap(e.Keys.InputKeyMap()),
	}
	return inputfield.New(append(base, opts...)...)
}

func (e Env) table(columns []datatable.Column[fixtures.User], opts ...datatable.Option[fixtures.User]) *datatable.Model[fixtures.User] {
	base := []datatable.Option[fixtures.User]{
		datatable.WithRows(e.Users),
		datatable.WithRowKey(datatable.KeyField(func(u fixtures.User) string { return u.ID })),
		datatable.WithStyles[fixtures.User](e.Styles),
		datatable.WithCollator[fixtures.User](e.Locale),
		datatable.WithKeyMap[fixtures.User](e.Keys.TableKeyMap()),
	}
	if e.EmptyMessage != "" {
		base = append(base, datatable.WithEmptyMessage[fixtures.User](e.EmptyMessage))
	}
	return datatable.New(columns, append(base, opts...)...)
}

// userColumns returns Name, Email, Role and Status columns. Status is
// drawn as a badge.
func userColumns(sortable bool) []datatable.Column[fixtures.User] {
	return []datatable.Column[fixtures.User]{
		{Key: "name", Title: "Name", Field: func(u fixtures.User) any { return u.Name }, Sortable: sortable},
		{Key: "email", Title: "Email", Field: func(u fixtures.User) any { return u.Email }, Sortable: sortable},
		{Key: "role", Title: "Role", Field: func(u fixtures.User) any { return u.Role }, Sortable: sortable},
		{
			Key:      "status",
			Title:    "Status",
			Field:    func(u fixtures.User) any { return u.Status },
			Sortable: sortable,
			Render:   statusBadge,
			Width:    10,
		},
	}
}

func statusBadge(value any, u fixtures.User, _ int) string {
	return widgets.Badge(u.Status, fixtures.StatusVariant(u.Status))
}

// selectedLine renders the names of selected users.
func selectedLine(users []fixtures.User) string {
	if len(users) == 0 {
		return mutedStyle.Render("none")
	}
	return strings.Join(userNames(users), ", ")
}

func userNames(users []fixtures.User) []string {
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Name)
	}
	return names
}

var (
	headingStyle = lipgloss.NewStyle().Foreground(theme.Subtext1).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(theme.Muted)
)
