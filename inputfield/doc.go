// Package inputfield is a labelled single-line text input for bubbletea
// programs. It wraps the bubbles text input and adds a label, helper and
// error text, visual variants and sizes, a clear control, a loading
// spinner and a password visibility toggle.
//
// The value is controlled by the host: edits are reported through
// OnChange and the clear control only calls OnClear. The only state the
// field keeps for itself is whether a password is currently shown.
package inputfield
