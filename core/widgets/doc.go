// Package widgets contains dumb render primitives for the gesture surfaces.
//
// Allowed here:
// - stateless drawing of rows and cards from controller outputs
// - ANSI-aware composition (splicing scaled cards onto a canvas)
//
// Not allowed here:
// - gesture state, commit rules, or any bubbletea message handling
package widgets
