package datatable

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func plain(s string) string { return ansi.Strip(s) }

func TestViewLoadingSuppressesBody(t *testing.T) {
	m := newUserTable(WithLoading[user](true))
	out := plain(m.View())
	if !strings.Contains(out, "Loading...") {
		t.Fatalf("missing loading label:\n%s", out)
	}
	if strings.Contains(out, "Name") || strings.Contains(out, "John Doe") {
		t.Fatalf("loading view must not render the table:\n%s", out)
	}
}

func TestViewEmptyMessage(t *testing.T) {
	m := New(userColumns())
	out := plain(m.View())
	if !strings.Contains(out, DefaultEmptyMessage) {
		t.Fatalf("missing default empty message:\n%s", out)
	}
	if !strings.Contains(out, "Email") {
		t.Fatalf("header should still render:\n%s", out)
	}

	m.SetEmptyMessage("No users found")
	if out := plain(m.View()); !strings.Contains(out, "No users found") {
		t.Fatalf("missing custom empty message:\n%s", out)
	}
}

func TestViewEmptyMessageWiderThanColumns(t *testing.T) {
	msg := "No users found. Try adjusting your search criteria."
	m := New([]Column[user]{{Key: "id", Title: "ID", Field: func(u user) any { return u.ID }}},
		WithEmptyMessage[user](msg))
	if out := plain(m.View()); !strings.Contains(out, msg) {
		t.Fatalf("empty message cut short:\n%s", out)
	}

	m.SetWidth(20)
	out := plain(m.View())
	if !strings.Contains(out, "…") {
		t.Fatalf("expected truncated message:\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if w := ansi.StringWidth(line); w > 20 {
			t.Fatalf("line width %d > 20: %q", w, line)
		}
	}
}

func TestViewRendersCells(t *testing.T) {
	m := newUserTable()
	out := plain(m.View())
	for _, want := range []string{"Name", "Email", "Role", "John Doe", "alice@example.com", "Manager"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestViewCustomRender(t *testing.T) {
	type call struct {
		value any
		name  string
		index int
	}
	var calls []call
	cols := []Column[user]{
		{Key: "name", Title: "Name", Field: func(u user) any { return u.Name }, Sortable: true},
		{Key: "actions", Title: "Actions", Field: func(u user) any { return u.ID }, Render: func(v any, u user, i int) string {
			calls = append(calls, call{v, u.Name, i})
			return "[Edit] [Delete]"
		}},
	}
	m := New(cols, WithRows(sampleUsers()[:2]))
	m.Sort("name")
	out := plain(m.View())

	if !strings.Contains(out, "[Edit] [Delete]") {
		t.Fatalf("custom content missing:\n%s", out)
	}
	if len(calls) != 2 {
		t.Fatalf("render called %d times", len(calls))
	}
	if calls[0].name != "Jane Smith" || calls[0].index != 0 || calls[0].value != 2 {
		t.Errorf("first call = %+v", calls[0])
	}
	if calls[1].name != "John Doe" || calls[1].index != 1 {
		t.Errorf("second call = %+v", calls[1])
	}
}

func TestViewNilValueRendersEmpty(t *testing.T) {
	type row struct{ Note *string }
	m := New([]Column[row]{{Key: "note", Title: "Note", Field: func(r row) any { return r.Note }}},
		WithRows([]row{{}}))
	out := plain(m.View())
	if strings.Contains(out, "<nil>") {
		t.Fatalf("nil rendered as <nil>:\n%s", out)
	}
}

func TestViewCheckboxStates(t *testing.T) {
	m := newUserTable(WithSelectable[user](true))
	header := func() string { return strings.Split(plain(m.View()), "\n")[1] }

	if !strings.Contains(header(), checkboxOff) {
		t.Fatalf("expected empty header checkbox: %q", header())
	}
	m.ToggleRow(0)
	if !strings.Contains(header(), checkboxMixed) {
		t.Fatalf("expected indeterminate header checkbox: %q", header())
	}
	m.ToggleAll()
	if !strings.Contains(header(), checkboxOn) {
		t.Fatalf("expected checked header checkbox: %q", header())
	}
}

func TestViewSortIndicatorsOnlyOnSortableColumns(t *testing.T) {
	m := newUserTable()
	header := strings.Split(plain(m.View()), "\n")[1]
	if got := strings.Count(header, "▲▼"); got != 2 {
		t.Fatalf("expected 2 sort indicators, got %d in %q", got, header)
	}
}

func TestViewHeightLimitsRows(t *testing.T) {
	m := newUserTable(WithHeight[user](2), WithFocused[user](true))
	out := plain(m.View())
	if strings.Contains(out, "Bob Johnson") {
		t.Fatalf("third row should be scrolled out:\n%s", out)
	}
	m.SetCursor(3)
	out = plain(m.View())
	if !strings.Contains(out, "Alice Williams") || strings.Contains(out, "John Doe") {
		t.Fatalf("cursor should scroll to the last rows:\n%s", out)
	}
}

func TestAlign(t *testing.T) {
	tests := []struct {
		in    string
		width int
		a     Align
		want  string
	}{
		{"ab", 4, AlignLeft, "ab  "},
		{"ab", 4, AlignRight, "  ab"},
		{"ab", 5, AlignCenter, " ab  "},
		{"abcdef", 4, AlignLeft, "abc…"},
	}
	for _, tt := range tests {
		if got := align(tt.in, tt.width, tt.a); got != tt.want {
			t.Errorf("align(%q, %d, %v) = %q, want %q", tt.in, tt.width, tt.a, got, tt.want)
		}
	}
}
