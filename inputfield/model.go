package inputfield

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tuikit/theme"
)

// Model is a single input field.
type Model struct {
	input   textinput.Model
	spinner spinner.Model

	typ          Type
	label        string
	helperText   string
	errorMessage string
	invalid      bool
	showClear    bool
	loading      bool
	disabled     bool
	variant      Variant
	size         Size

	showPassword bool
	focus        bool

	onChange func(string)
	onClear  func()

	keyMap KeyMap
	styles theme.Styles
	width  int
}

// Option configures a Model at construction.
type Option func(*Model)

func WithType(t Type) Option              { return func(m *Model) { m.typ = t } }
func WithLabel(s string) Option           { return func(m *Model) { m.label = s } }
func WithPlaceholder(s string) Option     { return func(m *Model) { m.input.Placeholder = s } }
func WithValue(s string) Option           { return func(m *Model) { m.input.SetValue(s) } }
func WithHelperText(s string) Option      { return func(m *Model) { m.helperText = s } }
func WithErrorMessage(s string) Option    { return func(m *Model) { m.errorMessage = s } }
func WithInvalid(v bool) Option           { return func(m *Model) { m.invalid = v } }
func WithShowClear(v bool) Option         { return func(m *Model) { m.showClear = v } }
func WithLoading(v bool) Option           { return func(m *Model) { m.loading = v } }
func WithDisabled(v bool) Option          { return func(m *Model) { m.disabled = v } }
func WithVariant(v Variant) Option        { return func(m *Model) { m.variant = v } }
func WithSize(s Size) Option              { return func(m *Model) { m.size = s } }
func WithWidth(w int) Option              { return func(m *Model) { m.width = w } }
func WithCharLimit(n int) Option          { return func(m *Model) { m.input.CharLimit = n } }
func WithKeyMap(km KeyMap) Option         { return func(m *Model) { m.keyMap = km } }
func WithStyles(s theme.Styles) Option    { return func(m *Model) { m.styles = s } }
func WithOnChange(fn func(string)) Option { return func(m *Model) { m.onChange = fn } }

// WithOnClear sets the callback for the clear control.
func WithOnClear(fn func()) Option { return func(m *Model) { m.onClear = fn } }

// New builds a field. The default is an outlined, medium text input.
func New(opts ...Option) *Model {
	m := &Model{
		input:  textinput.New(),
		typ:    TypeText,
		keyMap: DefaultKeyMap,
		styles: theme.Default(),
	}
	m.input.Prompt = ""
	for _, opt := range opts {
		opt(m)
	}
	m.input.PlaceholderStyle = m.styles.Placeholder
	m.input.TextStyle = m.styles.Text
	m.spinner = spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(m.styles.Spinner))
	m.applyEcho()
	m.layout()
	return m
}

func (m *Model) Init() tea.Cmd {
	if m.loading {
		return m.spinner.Tick
	}
	return nil
}

// Update handles the field's own keys, forwards editing keys to the text
// input while editable, and animates the spinner while loading.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		if !m.focus {
			return nil
		}
		switch {
		case key.Matches(msg, m.keyMap.ToggleVisibility):
			if m.VisibilityToggleVisible() {
				m.ToggleVisibility()
			}
			return nil
		case key.Matches(msg, m.keyMap.Clear):
			if m.ClearVisible() {
				m.Clear()
			}
			return nil
		}
		if !m.Editable() {
			return nil
		}
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if after := m.input.Value(); after != before {
			m.layout()
			if m.onChange != nil {
				m.onChange(after)
			}
		}
		return cmd
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// SetValue replaces the value without calling OnChange.
func (m *Model) SetValue(s string) {
	m.input.SetValue(s)
	m.layout()
}

func (m *Model) Value() string { return m.input.Value() }

func (m *Model) Type() Type          { return m.typ }
func (m *Model) Label() string       { return m.label }
func (m *Model) Variant() Variant    { return m.variant }
func (m *Model) Size() Size          { return m.size }
func (m *Model) Loading() bool       { return m.loading }
func (m *Model) Disabled() bool      { return m.disabled }
func (m *Model) PasswordShown() bool { return m.showPassword }
func (m *Model) KeyMap() KeyMap      { return m.keyMap }

func (m *Model) SetLabel(s string)           { m.label = s }
func (m *Model) SetPlaceholder(s string)     { m.input.Placeholder = s }
func (m *Model) SetHelperText(s string)      { m.helperText = s }
func (m *Model) SetErrorMessage(s string)    { m.errorMessage = s }
func (m *Model) SetInvalid(v bool)           { m.invalid = v }
func (m *Model) SetVariant(v Variant)        { m.variant = v }
func (m *Model) SetOnChange(fn func(string)) { m.onChange = fn }
func (m *Model) SetOnClear(fn func())        { m.onClear = fn }

func (m *Model) SetShowClear(v bool) {
	m.showClear = v
	m.layout()
}

func (m *Model) SetSize(s Size) {
	m.size = s
	m.layout()
}

// SetWidth sets the outer width including the frame. Zero or less uses
// the default width.
func (m *Model) SetWidth(w int) {
	m.width = w
	m.layout()
}

// SetType changes the declared type. Leaving password resets visibility.
func (m *Model) SetType(t Type) {
	m.typ = t
	if t != TypePassword {
		m.showPassword = false
	}
	m.applyEcho()
	m.layout()
}

// SetDisabled toggles the disabled state.
func (m *Model) SetDisabled(v bool) {
	m.disabled = v
	m.syncInputFocus()
	m.layout()
}

// SetLoading toggles the loading state. Loading disables editing; the
// returned command starts the spinner.
func (m *Model) SetLoading(v bool) tea.Cmd {
	m.loading = v
	m.syncInputFocus()
	m.layout()
	if v {
		return m.spinner.Tick
	}
	return nil
}

// Focus gives the field keyboard focus.
func (m *Model) Focus() tea.Cmd {
	m.focus = true
	if m.Editable() {
		return m.input.Focus()
	}
	return nil
}

func (m *Model) Blur() {
	m.focus = false
	m.input.Blur()
}

func (m *Model) Focused() bool { return m.focus }

// Editable reports whether keystrokes reach the value.
func (m *Model) Editable() bool { return !m.disabled && !m.loading }

// Invalid reports whether the field is drawn in its error treatment.
func (m *Model) Invalid() bool { return m.invalid || m.errorMessage != "" }

// Message is the line under the field: the error message when set,
// otherwise the helper text.
func (m *Model) Message() string {
	if m.errorMessage != "" {
		return m.errorMessage
	}
	return m.helperText
}

// EffectiveType is the type the field behaves as: an unmasked password
// acts as plain text.
func (m *Model) EffectiveType() Type {
	if m.typ == TypePassword && m.showPassword {
		return TypeText
	}
	return m.typ
}

// Masked reports whether the content is currently hidden.
func (m *Model) Masked() bool { return m.EffectiveType() == TypePassword }

// ClearVisible reports whether the clear control is shown.
func (m *Model) ClearVisible() bool {
	return m.showClear && m.input.Value() != "" && !m.disabled && !m.loading
}

// VisibilityToggleVisible reports whether the show/hide control is shown.
func (m *Model) VisibilityToggleVisible() bool {
	return m.typ == TypePassword && !m.loading
}

// ToggleVisibility flips a password field between masked and shown. It
// does nothing for other types.
func (m *Model) ToggleVisibility() {
	if m.typ != TypePassword {
		return
	}
	m.showPassword = !m.showPassword
	m.applyEcho()
	m.layout()
}

// Clear activates the clear control. The value is left alone; the host
// resets it from OnClear.
func (m *Model) Clear() {
	if m.onClear != nil {
		m.onClear()
	}
}

func (m *Model) applyEcho() {
	if m.Masked() {
		m.input.EchoMode = textinput.EchoPassword
		m.input.EchoCharacter = '•'
		return
	}
	m.input.EchoMode = textinput.EchoNormal
}

func (m *Model) syncInputFocus() {
	if m.focus && m.Editable() {
		m.input.Focus()
		return
	}
	m.input.Blur()
}
