package datatable

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the table's key bindings.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding // Previous header.
	Right     key.Binding // Next header.
	Top       key.Binding
	Bottom    key.Binding
	Sort      key.Binding // Activate the header under the header cursor.
	ToggleRow key.Binding
	ToggleAll key.Binding
}

// DefaultKeyMap is the built-in binding set: vim-style movement
// alongside the arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "prev column"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next column"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	Sort: key.NewBinding(
		key.WithKeys("s", "enter"),
		key.WithHelp("s", "sort"),
	),
	ToggleRow: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "select"),
	),
	ToggleAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "select all"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Sort, k.ToggleRow, k.ToggleAll}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Left, k.Right, k.Sort},
		{k.ToggleRow, k.ToggleAll},
	}
}
