package gallery

import (
	"time"

	"github.com/jask/tuikit/datatable"
	"github.com/jask/tuikit/internal/fixtures"
	"github.com/jask/tuikit/widgets"
)

func tableStories() []Story {
	return []Story{
		{
			Page: PageTable, Name: "Default",
			Description: "Rows in caller order.",
			Build: func(env Env) *Scene {
				return NewScene(TableItem("Users", env.table(userColumns(false))))
			},
		},
		{
			Page: PageTable, Name: "Sortable",
			Description: "Sort cycles ascending, descending, none.",
			Build: func(env Env) *Scene {
				return NewScene(TableItem("Users", env.table(userColumns(true))))
			},
		},
		{
			Page: PageTable, Name: "Selectable",
			Description: "Row checkboxes and a select-all header.",
			Build: func(env Env) *Scene {
				var selected []fixtures.User
				t := env.table(userColumns(true), withSelection(env, &selected))
				return NewScene(
					TableItem("Users", t),
					TextItem("Selected users", func() string { return selectedLine(selected) }),
				)
			},
		},
		{
			Page: PageTable, Name: "ExtendedColumns",
			Description: "Join and last-login dates sort chronologically.",
			Build: func(env Env) *Scene {
				return NewScene(TableItem("Users", env.table(extendedColumns())))
			},
		},
		{
			Page: PageTable, Name: "Loading",
			Description: "A spinner replaces header and rows.",
			Build: func(env Env) *Scene {
				return NewScene(TableItem("Users", env.table(userColumns(true),
					datatable.WithLoading[fixtures.User](true),
				)))
			},
		},
		{
			Page: PageTable, Name: "Empty",
			Description: "No rows shows the empty message.",
			Build: func(env Env) *Scene {
				opts := []datatable.Option[fixtures.User]{datatable.WithRows[fixtures.User](nil)}
				if env.EmptyMessage == "" {
					opts = append(opts, datatable.WithEmptyMessage[fixtures.User](emptyUsersMessage))
				}
				return NewScene(TableItem("Users", env.table(userColumns(true), opts...)))
			},
		},
		{
			Page: PageTable, Name: "CustomRender",
			Description: "Cell renderers draw badges and row actions.",
			Build: func(env Env) *Scene {
				cols := append(userColumns(true), datatable.Column[fixtures.User]{
					Key:    "actions",
					Title:  "Actions",
					Render: actionsCell,
					Align:  datatable.AlignRight,
				})
				return NewScene(TableItem("Users", env.table(cols)))
			},
		},
		{
			Page: PageTable, Name: "Compact",
			Description: "No sortable columns, scrolling two rows at a time.",
			Build: func(env Env) *Scene {
				return NewScene(TableItem("Users", env.table(userColumns(false),
					datatable.WithHeight[fixtures.User](2),
				)))
			},
		},
	}
}

const emptyUsersMessage = "No users found. Try adjusting your search criteria."

// extendedColumns adds Join Date and Last Login to the user columns.
func extendedColumns() []datatable.Column[fixtures.User] {
	return append(userColumns(true),
		datatable.Column[fixtures.User]{
			Key: "joined", Title: "Join Date", Sortable: true,
			Field:  func(u fixtures.User) any { return u.JoinDate },
			Render: timeCell("2006-01-02"),
		},
		datatable.Column[fixtures.User]{
			Key: "last_login", Title: "Last Login", Sortable: true,
			Field:  func(u fixtures.User) any { return u.LastLogin },
			Render: timeCell("2006-01-02 15:04"),
		},
	)
}

func timeCell(layout string) func(any, fixtures.User, int) string {
	return func(v any, _ fixtures.User, _ int) string {
		t, ok := v.(time.Time)
		if !ok || t.IsZero() {
			return ""
		}
		return t.Format(layout)
	}
}

func actionsCell(_ any, u fixtures.User, _ int) string {
	return widgets.Badge("Edit", "outline") + " " + widgets.Badge("Delete", "destructive")
}

// withSelection makes the table selectable and mirrors the selection
// into dst.
func withSelection(env Env, dst *[]fixtures.User) datatable.Option[fixtures.User] {
	return func(m *datatable.Model[fixtures.User]) {
		datatable.WithSelectable[fixtures.User](true)(m)
		datatable.WithOnSelect(func(rows []fixtures.User) {
			*dst = rows
			env.Logger.Info("selection changed", "count", len(rows), "users", userNames(rows))
		})(m)
	}
}
