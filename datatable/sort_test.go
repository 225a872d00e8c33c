package datatable

import (
	"testing"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type status string

func TestNextDirectionCycle(t *testing.T) {
	s := SortState{}
	want := []SortState{
		{Key: "name", Direction: Ascending},
		{Key: "name", Direction: Descending},
		{},
		{Key: "name", Direction: Ascending},
	}
	for i, w := range want {
		s = NextDirection(s, "name")
		if s != w {
			t.Fatalf("step %d: got %+v, want %+v", i, s, w)
		}
	}
}

func TestNextDirectionOtherColumnStartsAscending(t *testing.T) {
	s := SortState{Key: "name", Direction: Descending}
	got := NextDirection(s, "email")
	if got != (SortState{Key: "email", Direction: Ascending}) {
		t.Fatalf("got %+v", got)
	}
	if NextDirection(s, "") != (SortState{}) {
		t.Fatal("empty key should clear the sort")
	}
}

func TestSortStateInvariant(t *testing.T) {
	s := SortState{}
	for i := 0; i < 9; i++ {
		s = NextDirection(s, []string{"a", "a", "b"}[i%3])
		if (s.Direction == None) != (s.Key == "") {
			t.Fatalf("step %d: direction %v with key %q", i, s.Direction, s.Key)
		}
	}
}

func TestCompare(t *testing.T) {
	c := collate.New(language.English)
	name := "x"
	var nilName *string
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name string
		a, b any
		want int
	}{
		{"both nil", nil, nil, 0},
		{"left nil", nil, 3, 0},
		{"right nil", "a", nil, 0},
		{"nil pointer", nilName, "a", 0},
		{"equal strings", "Ann", "Ann", 0},
		{"locale order ignores case", "apple", "Banana", -1},
		{"locale order reversed", "Banana", "apple", 1},
		{"named string", status("active"), status("pending"), -1},
		{"pointer deref", &name, "y", -1},
		{"ints", 2, 10, -1},
		{"int kinds", int8(5), int64(5), 0},
		{"uints", uint(7), uint32(3), 1},
		{"int and float", 2, 2.5, -1},
		{"negative int and uint", -1, uint(1), -1},
		{"times", now, now.Add(time.Second), -1},
		{"bools", true, false, 1},
		{"mismatched", "10", 9, 0},
		{"unordered", []int{1}, []int{2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b, c); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompareWithoutCollatorIsBytewise(t *testing.T) {
	if got := Compare("apple", "Banana", nil); got != 1 {
		t.Fatalf("got %d, want 1", got)
	}
}

type pair struct {
	id  int
	key string
}

func pairKey(p pair) any { return p.key }

func ids(rows []pair) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.id
	}
	return out
}

func TestSortRowsIsStable(t *testing.T) {
	rows := []pair{{1, "b"}, {2, "a"}, {3, "b"}, {4, "a"}, {5, "b"}}
	c := collate.New(language.English)

	asc := ids(SortRows(rows, pairKey, Ascending, c))
	if want := []int{2, 4, 1, 3, 5}; !equalInts(asc, want) {
		t.Fatalf("asc: got %v, want %v", asc, want)
	}
	desc := ids(SortRows(rows, pairKey, Descending, c))
	if want := []int{1, 3, 5, 2, 4}; !equalInts(desc, want) {
		t.Fatalf("desc: got %v, want %v", desc, want)
	}
	// Re-sorting sorted output must not shuffle ties.
	again := ids(SortRows(SortRows(rows, pairKey, Ascending, c), pairKey, Ascending, c))
	if !equalInts(again, asc) {
		t.Fatalf("resort: got %v, want %v", again, asc)
	}
}

func TestSortRowsNoneCopies(t *testing.T) {
	rows := []pair{{1, "b"}, {2, "a"}}
	out := SortRows(rows, pairKey, None, nil)
	if !equalInts(ids(out), []int{1, 2}) {
		t.Fatalf("got %v", ids(out))
	}
	out[0].id = 99
	if rows[0].id != 1 {
		t.Fatal("SortRows must not alias the input")
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
