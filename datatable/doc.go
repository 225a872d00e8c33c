// Package datatable is a bubbletea table widget with single-column
// sorting and row selection.
//
// Rows are any Go type. Columns read their cell values through typed
// accessors, so a table of structs needs no reflection to sort. Sorting
// cycles ascending, descending and back to the caller's order on repeated
// activation of the same header; activating another header starts over at
// ascending. Selection is tracked by row identifier and reported to an
// optional callback as the full rows, in the caller's order.
//
// The model is owned by a single bubbletea program. It is not safe for
// concurrent use.
package datatable
