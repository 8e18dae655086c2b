// Package core contains the gesture state machines and settle-animation math.
//
// Allowed here:
// - pointer sample contracts and the per-pointer claim arbiter
// - the reveal-row and carousel controllers and their commit rules
// - spring cells and the one-open-row registry
//
// Not allowed here:
// - bubbletea messages, terminal rendering, styling
// - any knowledge of what is being dragged (a note row, a card)
package core
