package datatable

import (
	"fmt"
	"reflect"
)

// Align controls horizontal placement of a column's header and cells.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Column describes one column of a table of T.
type Column[T any] struct {
	// Key identifies the column. It must be unique within a table and is
	// what the sort state refers to.
	Key   string
	Title string
	// Field reads the cell value. A nil Field renders empty cells and
	// makes the column unsortable.
	Field    func(T) any
	Sortable bool
	// Render, when set, produces the cell content from the raw value, the
	// whole row and the row's position in the displayed order. Its output
	// is drawn as-is and may contain ANSI styling.
	Render func(value any, row T, index int) string
	// Width is the column width in cells. Zero fits the content.
	Width int
	Align Align
}

func (c Column[T]) value(row T) any {
	if c.Field == nil {
		return nil
	}
	return c.Field(row)
}

func (c Column[T]) cell(row T, index int) string {
	v := c.value(row)
	if c.Render != nil {
		return c.Render(v, row, index)
	}
	return stringify(v)
}

func (c Column[T]) sortable() bool {
	return c.Sortable && c.Field != nil
}

// stringify renders a raw cell value; nil and nil pointers become "".
func stringify(v any) string {
	v = deref(v)
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// KeyFunc derives a row identifier. The returned value must be
// comparable; nil or non-comparable results fall back to the row's
// position in the caller's data.
type KeyFunc[T any] func(T) any

// KeyField adapts a field accessor into a KeyFunc.
func KeyField[T any, K comparable](field func(T) K) KeyFunc[T] {
	return func(row T) any { return field(row) }
}

func validKey(k any) bool {
	if k == nil {
		return false
	}
	// The dynamic value decides: a struct with an interface field is a
	// comparable type but panics when hashed if that field holds a slice.
	v := reflect.ValueOf(k)
	if !v.Comparable() {
		return false
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return false
	}
	return true
}
