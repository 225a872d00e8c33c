package keys

import (
	"github.com/jask/tuikit/datatable"
	"github.com/jask/tuikit/inputfield"
)

// TableKeyMap builds a datatable key map from the table scope.
func (r *Registry) TableKeyMap() datatable.KeyMap {
	return datatable.KeyMap{
		Up:        r.KeyBinding(ScopeTable, ActionUp),
		Down:      r.KeyBinding(ScopeTable, ActionDown),
		Left:      r.KeyBinding(ScopeTable, ActionLeft),
		Right:     r.KeyBinding(ScopeTable, ActionRight),
		Top:       r.KeyBinding(ScopeTable, ActionTop),
		Bottom:    r.KeyBinding(ScopeTable, ActionBottom),
		Sort:      r.KeyBinding(ScopeTable, ActionSort),
		ToggleRow: r.KeyBinding(ScopeTable, ActionToggleRow),
		ToggleAll: r.KeyBinding(ScopeTable, ActionToggleAll),
	}
}

// InputKeyMap builds an inputfield key map from the input scope.
func (r *Registry) InputKeyMap() inputfield.KeyMap {
	return inputfield.KeyMap{
		ToggleVisibility: r.KeyBinding(ScopeInput, ActionToggleVisibility),
		Clear:            r.KeyBinding(ScopeInput, ActionClear),
	}
}
