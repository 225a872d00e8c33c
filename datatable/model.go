package datatable

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jask/tuikit/theme"
)

// DefaultEmptyMessage is shown in place of rows when the data is empty.
const DefaultEmptyMessage = "No data available"

// Model is a sortable, selectable table of T.
type Model[T any] struct {
	columns []Column[T]
	data    []T
	ids     []any // row identifier per data position
	order   []int // data positions in display order

	sort       SortState
	selection  Selection
	loading    bool
	selectable bool
	onSelect   func([]T)
	rowKey     KeyFunc[T]

	emptyMessage string
	styles       theme.Styles
	collator     *collate.Collator
	keyMap       KeyMap
	spinner      spinner.Model

	focus     bool
	cursor    int // row cursor in display order
	colCursor int
	offset    int
	width     int
	height    int // visible body rows; 0 shows all
}

// Option configures a Model at construction.
type Option[T any] func(*Model[T])

func WithRows[T any](rows []T) Option[T] {
	return func(m *Model[T]) { m.data = rows }
}

func WithLoading[T any](loading bool) Option[T] {
	return func(m *Model[T]) { m.loading = loading }
}

func WithSelectable[T any](selectable bool) Option[T] {
	return func(m *Model[T]) { m.selectable = selectable }
}

// WithOnSelect sets the callback run after every selection change.
func WithOnSelect[T any](fn func(selected []T)) Option[T] {
	return func(m *Model[T]) { m.onSelect = fn }
}

func WithRowKey[T any](fn KeyFunc[T]) Option[T] {
	return func(m *Model[T]) { m.rowKey = fn }
}

func WithEmptyMessage[T any](msg string) Option[T] {
	return func(m *Model[T]) { m.emptyMessage = msg }
}

func WithStyles[T any](s theme.Styles) Option[T] {
	return func(m *Model[T]) { m.styles = s }
}

// WithCollator sets the locale used to order string cells.
func WithCollator[T any](tag language.Tag) Option[T] {
	return func(m *Model[T]) { m.collator = collate.New(tag) }
}

func WithKeyMap[T any](km KeyMap) Option[T] {
	return func(m *Model[T]) { m.keyMap = km }
}

func WithHeight[T any](h int) Option[T] {
	return func(m *Model[T]) { m.height = h }
}

func WithWidth[T any](w int) Option[T] {
	return func(m *Model[T]) { m.width = w }
}

func WithFocused[T any](f bool) Option[T] {
	return func(m *Model[T]) { m.focus = f }
}

// New builds a table over columns.
func New[T any](columns []Column[T], opts ...Option[T]) *Model[T] {
	m := &Model[T]{
		columns:      columns,
		emptyMessage: DefaultEmptyMessage,
		styles:       theme.Default(),
		collator:     collate.New(language.English),
		keyMap:       DefaultKeyMap,
		selection:    NewSelection(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.spinner = spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(m.styles.Spinner))
	m.refresh()
	return m
}

func (m *Model[T]) Init() tea.Cmd {
	if m.loading {
		return m.spinner.Tick
	}
	return nil
}

// Update handles key presses while focused and spinner ticks while
// loading.
func (m *Model[T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		if !m.focus || m.loading {
			return nil
		}
		m.handleKey(msg)
	}
	return nil
}

func (m *Model[T]) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keyMap.Up):
		m.SetCursor(m.cursor - 1)
	case key.Matches(msg, m.keyMap.Down):
		m.SetCursor(m.cursor + 1)
	case key.Matches(msg, m.keyMap.Top):
		m.SetCursor(0)
	case key.Matches(msg, m.keyMap.Bottom):
		m.SetCursor(len(m.order) - 1)
	case key.Matches(msg, m.keyMap.Left):
		if m.colCursor > 0 {
			m.colCursor--
		}
	case key.Matches(msg, m.keyMap.Right):
		if m.colCursor < len(m.columns)-1 {
			m.colCursor++
		}
	case key.Matches(msg, m.keyMap.Sort):
		if m.colCursor >= 0 && m.colCursor < len(m.columns) {
			m.Sort(m.columns[m.colCursor].Key)
		}
	case key.Matches(msg, m.keyMap.ToggleRow):
		if m.selectable {
			m.ToggleRow(m.cursor)
		}
	case key.Matches(msg, m.keyMap.ToggleAll):
		if m.selectable {
			m.ToggleAll()
		}
	}
}

// SetRows replaces the data. The sort state is kept. Identifiers of rows
// that are gone are dropped from the selection, and the callback runs if
// that changed the selection.
func (m *Model[T]) SetRows(rows []T) {
	m.data = rows
	m.refresh()
	keep := make(map[any]struct{}, len(m.ids))
	for _, id := range m.ids {
		keep[id] = struct{}{}
	}
	if m.selection.retain(keep) > 0 {
		m.notify()
	}
}

// SetColumns replaces the columns. A sort on a column that no longer
// exists or is no longer sortable is dropped.
func (m *Model[T]) SetColumns(columns []Column[T]) {
	m.columns = columns
	if m.sort.Active() {
		if c, ok := m.column(m.sort.Key); !ok || !c.sortable() {
			m.sort = SortState{}
		}
	}
	if m.colCursor >= len(columns) {
		m.colCursor = max(0, len(columns)-1)
	}
	m.refresh()
}

// SetLoading toggles the loading placeholder. The returned command starts
// the spinner.
func (m *Model[T]) SetLoading(loading bool) tea.Cmd {
	m.loading = loading
	if loading {
		return m.spinner.Tick
	}
	return nil
}

func (m *Model[T]) SetSelectable(v bool)              { m.selectable = v }
func (m *Model[T]) SetOnSelect(fn func(selected []T)) { m.onSelect = fn }
func (m *Model[T]) SetEmptyMessage(msg string)        { m.emptyMessage = msg }
func (m *Model[T]) SetStyles(s theme.Styles)          { m.styles = s }
func (m *Model[T]) SetWidth(w int)                    { m.width = w }
func (m *Model[T]) SetHeight(h int)                   { m.height = h; m.clampOffset() }

func (m *Model[T]) Loading() bool        { return m.loading }
func (m *Model[T]) Selectable() bool     { return m.selectable }
func (m *Model[T]) SortState() SortState { return m.sort }
func (m *Model[T]) Columns() []Column[T] { return m.columns }
func (m *Model[T]) Len() int             { return len(m.data) }
func (m *Model[T]) Cursor() int          { return m.cursor }
func (m *Model[T]) HeaderCursor() int    { return m.colCursor }
func (m *Model[T]) KeyMap() KeyMap       { return m.keyMap }

func (m *Model[T]) Focus()        { m.focus = true }
func (m *Model[T]) Blur()         { m.focus = false }
func (m *Model[T]) Focused() bool { return m.focus }

// SetCursor moves the row cursor, clamped to the displayed rows.
func (m *Model[T]) SetCursor(n int) {
	m.cursor = clamp(n, 0, len(m.order)-1)
	m.clampOffset()
}

// SetHeaderCursor moves the header cursor, clamped to the columns.
func (m *Model[T]) SetHeaderCursor(n int) {
	m.colCursor = clamp(n, 0, len(m.columns)-1)
}

// Sort activates the header of column key. Unknown and non-sortable
// columns are ignored.
func (m *Model[T]) Sort(key string) {
	c, ok := m.column(key)
	if !ok || !c.sortable() {
		return
	}
	m.sort = NextDirection(m.sort, key)
	m.resort()
}

// Rows returns the data in display order.
func (m *Model[T]) Rows() []T {
	out := make([]T, len(m.order))
	for i, idx := range m.order {
		out[i] = m.data[idx]
	}
	return out
}

// RowID returns the identifier of the row shown at viewIndex.
func (m *Model[T]) RowID(viewIndex int) (any, bool) {
	if viewIndex < 0 || viewIndex >= len(m.order) {
		return nil, false
	}
	return m.ids[m.order[viewIndex]], true
}

// IsSelected reports whether the row shown at viewIndex is selected.
func (m *Model[T]) IsSelected(viewIndex int) bool {
	id, ok := m.RowID(viewIndex)
	return ok && m.selection.Has(id)
}

// ToggleRow flips the selection of the row shown at viewIndex.
func (m *Model[T]) ToggleRow(viewIndex int) {
	id, ok := m.RowID(viewIndex)
	if !ok {
		return
	}
	m.selection.Toggle(id)
	m.notify()
}

// ToggleAll selects every row, or clears the selection when every row is
// already selected.
func (m *Model[T]) ToggleAll() {
	if m.AllSelected() {
		m.selection.Clear()
	} else {
		for _, id := range m.ids {
			m.selection.Add(id)
		}
	}
	m.notify()
}

// SelectRows adds the given identifiers to the selection. Identifiers
// that match no row in the current data are ignored.
func (m *Model[T]) SelectRows(ids ...any) {
	known := make(map[any]struct{}, len(m.ids))
	for _, id := range m.ids {
		known[id] = struct{}{}
	}
	for _, id := range ids {
		if !validKey(id) {
			continue
		}
		if _, ok := known[id]; ok {
			m.selection.Add(id)
		}
	}
	m.notify()
}

func (m *Model[T]) ClearSelection() {
	m.selection.Clear()
	m.notify()
}

// SelectedRows returns the selected rows in the caller's order.
func (m *Model[T]) SelectedRows() []T {
	out := make([]T, 0, m.selection.Len())
	for i, row := range m.data {
		if m.selection.Has(m.ids[i]) {
			out = append(out, row)
		}
	}
	return out
}

// SelectedKeys returns the identifiers of the selected rows in the
// caller's order.
func (m *Model[T]) SelectedKeys() []any {
	out := make([]any, 0, m.selection.Len())
	for _, id := range m.ids {
		if m.selection.Has(id) {
			out = append(out, id)
		}
	}
	return out
}

func (m *Model[T]) AllSelected() bool {
	return len(m.data) > 0 && m.selection.Len() == len(m.data)
}

func (m *Model[T]) Indeterminate() bool {
	n := m.selection.Len()
	return n > 0 && n < len(m.data)
}

func (m *Model[T]) notify() {
	if m.onSelect != nil {
		m.onSelect(m.SelectedRows())
	}
}

func (m *Model[T]) column(key string) (Column[T], bool) {
	for _, c := range m.columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column[T]{}, false
}

func (m *Model[T]) refresh() {
	m.ids = make([]any, len(m.data))
	for i, row := range m.data {
		m.ids[i] = m.identify(row, i)
	}
	m.resort()
}

func (m *Model[T]) resort() {
	var field func(T) any
	dir := None
	if m.sort.Active() {
		if c, ok := m.column(m.sort.Key); ok {
			field, dir = c.Field, m.sort.Direction
		}
	}
	m.order = sortOrder(m.data, field, dir, m.collator)
	m.SetCursor(m.cursor)
}

// position identifies a row that has no usable key. It never compares
// equal to a caller key, even an int one.
type position int

func (m *Model[T]) identify(row T, index int) any {
	if m.rowKey == nil {
		return position(index)
	}
	if k := deref(m.rowKey(row)); validKey(k) {
		return k
	}
	return position(index)
}

func (m *Model[T]) clampOffset() {
	if m.height <= 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
	m.offset = clamp(m.offset, 0, max(0, len(m.order)-m.height))
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
