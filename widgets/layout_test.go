package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

type fixedWidget struct{ text string }

func (w fixedWidget) Render(width, height int) string {
	return w.text
}

func TestHStackRespectsRatios(t *testing.T) {
	h := HStack{Widgets: []Widget{fixedWidget{"A"}, fixedWidget{"B"}}, Ratios: []float64{0.75, 0.25}, Gap: 1}
	lines := strings.Split(h.Render(21, 2), "\n")
	if len(lines) != 1 {
		t.Fatalf("line count = %d, want 1", len(lines))
	}
	if idx := strings.Index(lines[0], "B"); idx != 16 {
		t.Fatalf("second column starts at %d, want 16 in %q", idx, lines[0])
	}
}

func TestVStackSpacing(t *testing.T) {
	v := VStack{Widgets: []Widget{fixedWidget{"top"}, fixedWidget{"bottom"}}, Spacing: 1}
	out := v.Render(20, 6)
	if out != "top\n\nbottom" {
		t.Fatalf("got %q", out)
	}
}

func TestSplitWidths(t *testing.T) {
	tests := []struct {
		total, n int
		ratios   []float64
		want     []int
	}{
		{10, 3, nil, []int{4, 3, 3}},
		{20, 2, []float64{3, 1}, []int{15, 5}},
		{9, 2, []float64{0, 0}, []int{5, 4}},
		{5, 0, nil, nil},
	}
	for _, tt := range tests {
		got := SplitWidths(tt.total, tt.n, tt.ratios)
		if len(got) != len(tt.want) {
			t.Fatalf("SplitWidths(%d, %d, %v) = %v, want %v", tt.total, tt.n, tt.ratios, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("SplitWidths(%d, %d, %v) = %v, want %v", tt.total, tt.n, tt.ratios, got, tt.want)
			}
		}
	}
}

func TestSplitWidthsExactShares(t *testing.T) {
	for h := 4; h <= 120; h++ {
		got := SplitWidths(h, 4, []float64{1, float64(h - 3), 1, 1})
		if got[0] != 1 || got[1] != h-3 || got[2] != 1 || got[3] != 1 {
			t.Fatalf("SplitWidths(%d) = %v", h, got)
		}
	}
}

func TestVStackFixedRows(t *testing.T) {
	v := VStack{
		Widgets: []Widget{Static("head\nextra"), Static("a\nb\nc"), Static("foot")},
		Ratios:  []float64{1, 3, 1},
	}
	out := v.Render(10, 5)
	if out != "head\na\nb\nc\nfoot" {
		t.Fatalf("got %q", out)
	}
}

func TestStaticClipsToBox(t *testing.T) {
	out := Static("abcdef\nline2\nline3").Render(3, 2)
	if out != "abc\nlin" {
		t.Fatalf("got %q", out)
	}
}

func TestPaneFrame(t *testing.T) {
	out := ansi.Strip(Pane{Title: "Stories", Content: "one\ntwo", Focused: true}.Render(20, 5))
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("line count = %d, want 5", len(lines))
	}
	if !strings.Contains(lines[0], "● Stories") {
		t.Fatalf("title missing from border: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "│ one") || !strings.HasPrefix(lines[4], "╰") {
		t.Fatalf("unexpected frame:\n%s", out)
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 20 {
			t.Fatalf("line %d width = %d, want 20", i, w)
		}
	}
}

func TestListHighlightsSelection(t *testing.T) {
	out := ansi.Strip(List{Title: "Input", Items: []string{"Default", "Password"}, Selected: 1}.Render(20, 5))
	if !strings.Contains(out, "› Password") || !strings.Contains(out, "  Default") {
		t.Fatalf("got:\n%s", out)
	}
}

func TestListScrollsToSelection(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	out := ansi.Strip(List{Title: "T", Items: items, Selected: 4}.Render(10, 3))
	if !strings.Contains(out, "› e") || strings.Contains(out, "  a") {
		t.Fatalf("got:\n%s", out)
	}
}

func TestBadgeUnknownVariantFallsBack(t *testing.T) {
	if got := ansi.Strip(Badge("active", "nope")); got != " active " {
		t.Fatalf("got %q", got)
	}
}
