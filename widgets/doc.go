// Package widgets contains dumb render primitives for the gallery.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, popup overlay, badges)
//
// Not allowed here:
// - key handling, focus policy, or story state
package widgets
