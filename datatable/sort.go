package datatable

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
)

// Direction is the sort direction of the active column.
type Direction int

const (
	None Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	}
	return "none"
}

// SortState is the active sort. Direction is None exactly when Key is
// empty; the zero value means the rows are shown in the caller's order.
type SortState struct {
	Key       string
	Direction Direction
}

// Active reports whether a column is currently sorting the rows.
func (s SortState) Active() bool {
	return s.Key != "" && s.Direction != None
}

// NextDirection returns the state after the header of column key is
// activated: the same column steps asc -> desc -> none, any other column
// starts at asc.
func NextDirection(prev SortState, key string) SortState {
	if key == "" {
		return SortState{}
	}
	if prev.Key == key {
		switch prev.Direction {
		case Ascending:
			return SortState{Key: key, Direction: Descending}
		case Descending:
			return SortState{}
		}
	}
	return SortState{Key: key, Direction: Ascending}
}

// Compare orders two cell values. Nil on either side, equal values and
// values of unrelated types compare as equal. Strings use the collator
// when one is given.
func Compare(a, b any, c *collate.Collator) int {
	a, b = deref(a), deref(b)
	if a == nil || b == nil {
		return 0
	}

	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Compare(bt)
		}
		return 0
	}

	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case av.Kind() == reflect.String && bv.Kind() == reflect.String:
		return compareStrings(av.String(), bv.String(), c)
	case av.Kind() == reflect.Bool && bv.Kind() == reflect.Bool:
		x, y := av.Bool(), bv.Bool()
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		}
		return 1
	case isInt(av) && isInt(bv):
		return cmp.Compare(av.Int(), bv.Int())
	case isUint(av) && isUint(bv):
		return cmp.Compare(av.Uint(), bv.Uint())
	case isNumber(av) && isNumber(bv):
		return cmp.Compare(toFloat(av), toFloat(bv))
	}

	as, aok := a.(fmt.Stringer)
	bs, bok := b.(fmt.Stringer)
	if aok && bok {
		return compareStrings(as.String(), bs.String(), c)
	}
	return 0
}

// SortRows returns a copy of rows ordered by field in direction dir. The
// sort is stable, so rows with equal values keep their relative order in
// both directions. None returns the rows unchanged.
func SortRows[T any](rows []T, field func(T) any, dir Direction, c *collate.Collator) []T {
	order := sortOrder(rows, field, dir, c)
	out := make([]T, len(order))
	for i, idx := range order {
		out[i] = rows[idx]
	}
	return out
}

// sortOrder returns the positions of rows in display order.
func sortOrder[T any](rows []T, field func(T) any, dir Direction, c *collate.Collator) []int {
	order := make([]int, len(rows))
	for i := range order {
		order[i] = i
	}
	if dir == None || field == nil || len(rows) < 2 {
		return order
	}
	values := make([]any, len(rows))
	for i, row := range rows {
		values[i] = field(row)
	}
	slices.SortStableFunc(order, func(i, j int) int {
		r := Compare(values[i], values[j], c)
		if dir == Descending {
			return -r
		}
		return r
	})
	return order
}

func compareStrings(a, b string, c *collate.Collator) int {
	if a == b {
		return 0
	}
	if c == nil {
		return strings.Compare(a, b)
	}
	return c.CompareString(a, b)
}

func deref(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isNumber(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	}
	return isInt(v) || isUint(v)
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isInt(v):
		return float64(v.Int())
	case isUint(v):
		return float64(v.Uint())
	}
	return v.Float()
}
