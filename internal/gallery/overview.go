package gallery

import (
	"github.com/jask/tuikit/inputfield"
	"github.com/jask/tuikit/internal/fixtures"
)

func overviewStories() []Story {
	return []Story{{
		Page:        PageOverview,
		Name:        "Index",
		Description: "Fields and a selectable users table working together.",
		Build:       buildOverview,
	}}
}

func buildOverview(env Env) *Scene {
	var email *inputfield.Model
	email = env.field(
		inputfield.WithType(inputfield.TypeEmail),
		inputfield.WithLabel("Email"),
		inputfield.WithPlaceholder("you@example.com"),
		inputfield.WithHelperText("We'll never share your email."),
		inputfield.WithShowClear(true),
		inputfield.WithOnChange(func(v string) {
			env.Logger.Debug("input changed", "field", "email", "length", len(v))
		}),
		inputfield.WithOnClear(func() {
			env.Logger.Info("input cleared", "field", "email")
			email.SetValue("")
		}),
	)

	var password *inputfield.Model
	password = env.field(
		inputfield.WithType(inputfield.TypePassword),
		inputfield.WithLabel("Password"),
		inputfield.WithPlaceholder("Enter password"),
		inputfield.WithShowClear(true),
		inputfield.WithOnClear(func() {
			env.Logger.Info("input cleared", "field", "password")
			password.SetValue("")
		}),
	)

	variants := variantFields(env)

	var selected []fixtures.User
	table := env.table(userColumns(true),
		withSelection(env, &selected),
	)

	return NewScene(
		InputItem("Email", email),
		InputItem("Password", password),
		RowItem("Variants", variants...),
		TableItem("Users", table),
		TextItem("Selected users", func() string { return selectedLine(selected) }),
	)
}

func variantFields(env Env) []*inputfield.Model {
	variants := []inputfield.Variant{inputfield.Outlined, inputfield.Filled, inputfield.Ghost}
	out := make([]*inputfield.Model, 0, len(variants))
	for _, v := range variants {
		out = append(out, env.field(
			inputfield.WithVariant(v),
			inputfield.WithLabel(v.String()),
			inputfield.WithPlaceholder(v.String()+" input"),
		))
	}
	return out
}
