package gallery

import "github.com/jask/tuikit/inputfield"

func inputStories() []Story {
	return []Story{
		{
			Page: PageInput, Name: "Default",
			Description: "A plain text field.",
			Build: func(env Env) *Scene {
				return NewScene(InputItem("Text", env.field(
					inputfield.WithPlaceholder("Enter text..."),
				)))
			},
		},
		{
			Page: PageInput, Name: "WithHelperText",
			Description: "Helper text sits under the field while it is valid.",
			Build: func(env Env) *Scene {
				return NewScene(InputItem("Username", env.field(
					inputfield.WithLabel("Username"),
					inputfield.WithPlaceholder("Enter username"),
					inputfield.WithHelperText("Must be at least 3 characters long."),
				)))
			},
		},
		{
			Page: PageInput, Name: "ErrorState",
			Description: "An error message replaces the helper text.",
			Build: func(env Env) *Scene {
				return NewScene(InputItem("Email", env.field(
					inputfield.WithType(inputfield.TypeEmail),
					inputfield.WithLabel("Email"),
					inputfield.WithValue("invalid-email"),
					inputfield.WithHelperText("We'll never share your email."),
					inputfield.WithErrorMessage("Please enter a valid email address"),
				)))
			},
		},
		{
			Page: PageInput, Name: "Disabled",
			Description: "Disabled fields ignore edits.",
			Build: func(env Env) *Scene {
				return NewScene(InputItem("Disabled", env.field(
					inputfield.WithLabel("Disabled"),
					inputfield.WithValue("Disabled input"),
					inputfield.WithDisabled(true),
				)))
			},
		},
		{
			Page: PageInput, Name: "Loading",
			Description: "A spinner takes the control slot and edits are ignored.",
			Build: func(env Env) *Scene {
				return NewScene(InputItem("Search", env.field(
					inputfield.WithType(inputfield.TypeSearch),
					inputfield.WithLabel("Search"),
					inputfield.WithValue("tuikit"),
					inputfield.WithLoading(true),
				)))
			},
		},
		{
			Page: PageInput, Name: "Password",
			Description: "Masked entry with a show/hide toggle.",
			Build: func(env Env) *Scene {
				return NewScene(InputItem("Password", env.field(
					inputfield.WithType(inputfield.TypePassword),
					inputfield.WithLabel("Password"),
					inputfield.WithPlaceholder("Enter password"),
				)))
			},
		},
		{
			Page: PageInput, Name: "Variants",
			Description: "Outlined, filled and ghost frames.",
			Build: func(env Env) *Scene {
				fields := variantFields(env)
				items := make([]Item, 0, len(fields))
				for _, f := range fields {
					items = append(items, InputItem(f.Variant().String(), f))
				}
				return NewScene(items...)
			},
		},
		{
			Page: PageInput, Name: "Sizes",
			Description: "Small, medium and large padding.",
			Build: func(env Env) *Scene {
				sizes := []inputfield.Size{inputfield.Small, inputfield.Medium, inputfield.Large}
				items := make([]Item, 0, len(sizes))
				for _, s := range sizes {
					items = append(items, InputItem(s.String(), env.field(
						inputfield.WithSize(s),
						inputfield.WithPlaceholder(s.String()+" input"),
					)))
				}
				return NewScene(items...)
			},
		},
		{
			Page: PageInput, Name: "WithClear",
			Description: "The clear control asks the host to empty the field.",
			Build: func(env Env) *Scene {
				var f *inputfield.Model
				f = env.field(
					inputfield.WithLabel("Clearable"),
					inputfield.WithValue("Clear me"),
					inputfield.WithShowClear(true),
					inputfield.WithOnClear(func() {
						env.Logger.Info("input cleared", "field", "clearable")
						f.SetValue("")
					}),
				)
				return NewScene(InputItem("Clearable", f))
			},
		},
		{
			Page: PageInput, Name: "PasswordWithClear",
			Description: "Clear sits before the show/hide toggle.",
			Build: func(env Env) *Scene {
				var f *inputfield.Model
				f = env.field(
					inputfield.WithType(inputfield.TypePassword),
					inputfield.WithLabel("Password"),
					inputfield.WithPlaceholder("Enter password"),
					inputfield.WithValue("secretpassword"),
					inputfield.WithShowClear(true),
					inputfield.WithOnClear(func() {
						env.Logger.Info("input cleared", "field", "password")
						f.SetValue("")
					}),
				)
				return NewScene(InputItem("Password", f))
			},
		},
	}
}
