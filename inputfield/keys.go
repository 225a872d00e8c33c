package inputfield

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the field's own bindings. Everything else goes to the
// text input.
type KeyMap struct {
	ToggleVisibility key.Binding
	Clear            key.Binding
}

var DefaultKeyMap = KeyMap{
	ToggleVisibility: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("C-r", "show/hide"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("C-x", "clear"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleVisibility, k.Clear}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
