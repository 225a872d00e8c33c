// Package keys is the scoped key registry used by the gallery. Bindings
// live in scopes; lookups fall back to the global scope, and user
// overrides from the config replace the keys of existing bindings.
package keys

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

type Binding struct {
	Action Action
	// Keys holds the key names. The first entry doubles as the help label
	// and may be a display form such as "j/k".
	Keys   []string
	Help   string
	Scopes []string
}

// Override replaces the keys of one binding.
type Override struct {
	Scope  string   `mapstructure:"scope" toml:"scope"`
	Action string   `mapstructure:"action" toml:"action"`
	Keys   []string `mapstructure:"keys" toml:"keys"`
}

type Registry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
	scopeOrder      []string
}

const (
	ScopeGlobal = "global"
	ScopeTable  = "table"
	ScopeInput  = "input"
	ScopeHelp   = "help"
)

const (
	ActionQuit      Action = "quit"
	ActionFocusNext Action = "focus_next"
	ActionFocusPrev Action = "focus_prev"
	ActionNextStory Action = "next_story"
	ActionPrevStory Action = "prev_story"
	ActionNextPage  Action = "next_page"
	ActionPrevPage  Action = "prev_page"
	ActionHelp      Action = "help"
	ActionClose     Action = "close"

	ActionUp        Action = "up"
	ActionDown      Action = "down"
	ActionLeft      Action = "left"
	ActionRight     Action = "right"
	ActionTop       Action = "top"
	ActionBottom    Action = "bottom"
	ActionSort      Action = "sort"
	ActionToggleRow Action = "toggle_row"
	ActionToggleAll Action = "toggle_all"

	ActionToggleVisibility Action = "toggle_visibility"
	ActionClear            Action = "clear"
)

func newEmptyRegistry() *Registry {
	return &Registry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}
}

// NewRegistry returns the registry with the built-in bindings.
func NewRegistry() *Registry {
	r := newEmptyRegistry()

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scopes: []string{scope}})
	}

	reg(ScopeGlobal, ActionQuit, []string{"ctrl+c"}, "quit")
	reg(ScopeGlobal, ActionFocusNext, []string{"tab"}, "next widget")
	reg(ScopeGlobal, ActionFocusPrev, []string{"shift+tab"}, "prev widget")
	reg(ScopeGlobal, ActionNextStory, []string{"pgdown"}, "next story")
	reg(ScopeGlobal, ActionPrevStory, []string{"pgup"}, "prev story")
	reg(ScopeGlobal, ActionNextPage, []string{"f3"}, "next page")
	reg(ScopeGlobal, ActionPrevPage, []string{"f2"}, "prev page")
	reg(ScopeGlobal, ActionHelp, []string{"f1"}, "help")

	reg(ScopeTable, ActionUp, []string{"k", "up"}, "up")
	reg(ScopeTable, ActionDown, []string{"j", "down"}, "down")
	reg(ScopeTable, ActionLeft, []string{"h", "left"}, "prev column")
	reg(ScopeTable, ActionRight, []string{"l", "right"}, "next column")
	reg(ScopeTable, ActionTop, []string{"g", "home"}, "top")
	reg(ScopeTable, ActionBottom, []string{"G", "end"}, "bottom")
	reg(ScopeTable, ActionSort, []string{"s", "enter"}, "sort")
	reg(ScopeTable, ActionToggleRow, []string{"space"}, "select")
	reg(ScopeTable, ActionToggleAll, []string{"a"}, "select all")

	reg(ScopeInput, ActionToggleVisibility, []string{"ctrl+r"}, "show/hide")
	reg(ScopeInput, ActionClear, []string{"ctrl+x"}, "clear")

	reg(ScopeHelp, ActionClose, []string{"esc", "f1"}, "close")

	return r
}

func (r *Registry) Register(b Binding) {
	if r == nil {
		return
	}
	for _, scope := range b.Scopes {
		scope = strings.TrimSpace(scope)
		if scope == "" {
			continue
		}
		normKeys := normalizeKeyList(b.Keys)
		if len(normKeys) == 0 {
			continue
		}
		if _, ok := r.bindingsByScope[scope]; !ok {
			r.bindingsByScope[scope] = nil
			r.scopeOrder = append(r.scopeOrder, scope)
		}
		if _, ok := r.indexByScope[scope]; !ok {
			r.indexByScope[scope] = make(map[string]*Binding)
		}
		if r.scopeHasAnyKey(scope, normKeys) {
			continue
		}

		copyBinding := b
		copyBinding.Keys = normKeys
		copyBinding.Scopes = []string{scope}
		r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
		for _, k := range copyBinding.Keys {
			r.indexByScope[scope][k] = &copyBinding
		}
	}
}

// Scopes returns the scope names in registration order.
func (r *Registry) Scopes() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.scopeOrder...)
}

func (r *Registry) BindingsForScope(scope string) []Binding {
	if r == nil {
		return nil
	}
	items := r.bindingsByScope[scope]
	out := make([]Binding, 0, len(items))
	for _, b := range items {
		out = append(out, *b)
	}
	return out
}

// Lookup finds the binding for keyName in scope, then in the global scope.
func (r *Registry) Lookup(keyName, scope string) *Binding {
	if r == nil || keyName == "" {
		return nil
	}
	keyName = normalizeKeyName(keyName)
	if b := r.lookupInScope(keyName, scope); b != nil {
		return b
	}
	if scope != ScopeGlobal {
		if b := r.lookupInScope(keyName, ScopeGlobal); b != nil {
			return b
		}
	}
	return nil
}

// KeyBinding returns the bubbles binding for action in scope. The zero
// binding is returned for unknown actions; it never matches.
func (r *Registry) KeyBinding(scope string, action Action) key.Binding {
	for _, b := range r.BindingsForScope(scope) {
		if b.Action != action {
			continue
		}
		keys := make([]string, len(b.Keys))
		for i, k := range b.Keys {
			keys[i] = teaKeyName(k)
		}
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(b.Keys[0], b.Help))
	}
	return key.NewBinding(key.WithDisabled())
}

func (r *Registry) HelpBindings(scope string) []key.Binding {
	items := r.BindingsForScope(scope)
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

// ApplyConfig replaces the keys of existing bindings. Unknown scopes or
// actions, duplicate entries and keys that end up shared by two actions
// in one scope are errors; on error the registry keeps the overrides
// applied so far.
func (r *Registry) ApplyConfig(items []Override) error {
	if r == nil || len(items) == 0 {
		return nil
	}
	type pair struct {
		scope  string
		action Action
	}
	seenPair := make(map[pair]bool)
	for _, o := range items {
		scope := strings.TrimSpace(o.Scope)
		if scope == "" {
			return fmt.Errorf("key override: scope is required")
		}
		action := Action(strings.TrimSpace(o.Action))
		if action == "" {
			return fmt.Errorf("key override scope=%q: action is required", scope)
		}
		keys := normalizeKeyList(o.Keys)
		if len(keys) == 0 {
			return fmt.Errorf("key override scope=%q action=%q: keys are required", scope, action)
		}

		bindings := r.bindingsByScope[scope]
		if len(bindings) == 0 {
			return fmt.Errorf("key override scope=%q action=%q: unknown scope", scope, action)
		}
		var target *Binding
		for _, b := range bindings {
			if b.Action == action {
				target = b
				break
			}
		}
		if target == nil {
			return fmt.Errorf("key override scope=%q action=%q: unknown action in scope", scope, action)
		}
		p := pair{scope: scope, action: action}
		if seenPair[p] {
			return fmt.Errorf("key override scope=%q action=%q: duplicated override entry", scope, action)
		}
		seenPair[p] = true
		target.Keys = keys
	}

	r.rebuildIndex()
	for scope, bindings := range r.bindingsByScope {
		seen := make(map[string]Action)
		for _, b := range bindings {
			for _, k := range b.Keys {
				if prev, ok := seen[k]; ok {
					return fmt.Errorf("key override conflict in scope=%q: key %q used by both %q and %q", scope, k, prev, b.Action)
				}
				seen[k] = b.Action
			}
		}
	}
	return nil
}

// Export returns every binding as an override entry, sorted by scope and
// action.
func (r *Registry) Export() []Override {
	if r == nil {
		return nil
	}
	var out []Override
	for scope, bindings := range r.bindingsByScope {
		for _, b := range bindings {
			out = append(out, Override{
				Scope:  scope,
				Action: string(b.Action),
				Keys:   append([]string(nil), b.Keys...),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Scope != out[j].Scope {
			return out[i].Scope < out[j].Scope
		}
		return out[i].Action < out[j].Action
	})
	return out
}

func (r *Registry) rebuildIndex() {
	r.indexByScope = make(map[string]map[string]*Binding, len(r.bindingsByScope))
	for scope, bindings := range r.bindingsByScope {
		r.indexByScope[scope] = make(map[string]*Binding)
		for _, b := range bindings {
			for _, k := range b.Keys {
				r.indexByScope[scope][k] = b
			}
		}
	}
}

func (r *Registry) lookupInScope(keyName, scope string) *Binding {
	if scope == "" {
		return nil
	}
	lookup, ok := r.indexByScope[scope]
	if !ok {
		return nil
	}
	return lookup[keyName]
}

func (r *Registry) scopeHasAnyKey(scope string, keys []string) bool {
	lookup := r.indexByScope[scope]
	for _, k := range keys {
		if _, exists := lookup[k]; exists {
			return true
		}
	}
	return false
}

func normalizeKeyList(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]bool)
	for _, k := range keys {
		n := normalizeKeyName(k)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	trimmed := strings.TrimSpace(k)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) == 1 {
		ch := trimmed[0]
		if ch >= 'A' && ch <= 'Z' {
			// Preserve single uppercase rune so uppercase/lowercase bindings
			// can be distinct actions within the same scope.
			return trimmed
		}
	}
	s := strings.ToLower(trimmed)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "ctl+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	s = strings.ReplaceAll(s, "spacebar", "space")
	return s
}

// teaKeyName maps a normalized name back to what tea.KeyMsg.String
// reports.
func teaKeyName(k string) string {
	if k == "space" {
		return " "
	}
	return k
}
