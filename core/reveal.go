package core

import (
	"errors"
	"math"
)

// RevealPhase is the observable stage of a reveal row.
type RevealPhase int

const (
	RevealClosed RevealPhase = iota
	RevealDragging
	RevealSettlingOpen
	RevealSettlingClosed
	RevealOpen
)

// RevealAction is one of the targets exposed behind an open row.
type RevealAction int

const (
	RevealActionEdit RevealAction = iota
	RevealActionDelete
)

// ErrRowNotOpen is returned when an action is invoked on a row that is not
// committed open.
var ErrRowNotOpen = errors.New("glide: row is not open")

// RevealConfig holds the policy inputs for one reveal row. The thresholds
// are empirical UI-feel constants carried from the interaction design; they
// are overridable, not derivable.
type RevealConfig struct {
	// PanelWidth is the width of the action panel behind the row; the open
	// offset is -PanelWidth. Required.
	PanelWidth float64
	// VelocityThreshold, in units per millisecond, separates a decisive
	// flick from a hesitant drag. Default 0.3.
	VelocityThreshold float64
	// OpenFraction of PanelWidth is the position threshold for a slow
	// release. Default 1/3.
	OpenFraction float64
	Spring       SpringConfig

	// OnStateChanged fires exactly once per settled transition, never
	// during intermediate drag frames.
	OnStateChanged func(open bool)
	// OnOpenFeedback fires exactly once per transition into open; re-entering
	// open from a partial drag does not fire it again.
	OnOpenFeedback func()
	// OnAction fires after Edit or Delete, once the row has settled closed,
	// so the row never disappears while visibly open.
	OnAction func(RevealAction)
}

// RevealController owns the reveal offset for one list row and resolves the
// end-of-drag state. The offset is continuous during a drag and always
// clamped to [-PanelWidth, 0]; the committed state reflects only the last
// settled transition.
type RevealController struct {
	cfg           RevealConfig
	offset        *Animatable
	committedOpen bool
	dragging      bool
	dragBase      float64
	settlingOpen  bool
	pendingAction *RevealAction
}

func NewRevealController(cfg RevealConfig) (*RevealController, error) {
	if cfg.PanelWidth <= 0 {
		return nil, errors.New("glide: reveal panel width must be positive")
	}
	if cfg.VelocityThreshold <= 0 {
		cfg.VelocityThreshold = 0.3
	}
	if cfg.OpenFraction <= 0 {
		cfg.OpenFraction = 1.0 / 3.0
	}
	return &RevealController{cfg: cfg, offset: NewAnimatable(cfg.Spring)}, nil
}

// Offset is the live horizontal offset, 0 when closed, -PanelWidth when open.
func (c *RevealController) Offset() float64 { return c.offset.Value() }

// Open reports the committed state, not the live offset.
func (c *RevealController) Open() bool { return c.committedOpen }

// Dragging reports whether a claimed drag is in progress.
func (c *RevealController) Dragging() bool { return c.dragging }

// Animating reports whether a settle is in flight.
func (c *RevealController) Animating() bool { return c.offset.Active() }

func (c *RevealController) Phase() RevealPhase {
	switch {
	case c.dragging:
		return RevealDragging
	case c.offset.Active() && c.settlingOpen:
		return RevealSettlingOpen
	case c.offset.Active():
		return RevealSettlingClosed
	case c.committedOpen:
		return RevealOpen
	default:
		return RevealClosed
	}
}

// BeginDrag enters the dragging state once the arbiter has claimed the
// pointer for this row. Any in-flight settle is cancelled first so the
// spring and the drag never write the offset concurrently; the drag bases
// itself on the live offset, so re-closing an already-open row drags
// smoothly from -PanelWidth.
func (c *RevealController) BeginDrag() {
	if c.dragging {
		return
	}
	c.offset.Cancel()
	c.pendingAction = nil
	c.dragBase = c.offset.Value()
	c.dragging = true
}

// Drag tracks the pointer 1:1, clamped to the reveal range.
func (c *RevealController) Drag(s Sample) {
	if !c.dragging {
		return
	}
	c.offset.Snap(clamp(c.dragBase+s.DX, -c.cfg.PanelWidth, 0))
}

// Release runs the commit rule once at end of drag. A fast flick commits in
// the flick's direction regardless of position; a slow release commits by
// position against OpenFraction of the panel width.
func (c *RevealController) Release(s Sample) {
	if !c.dragging {
		return
	}
	c.dragging = false
	var open bool
	if math.Abs(s.VX) >= c.cfg.VelocityThreshold {
		open = s.VX < 0
	} else {
		open = c.offset.Value() < -c.cfg.PanelWidth*c.cfg.OpenFraction
	}
	c.settleTo(open, s.VX*1000)
}

// Cancel resolves a platform-interrupted gesture exactly as a release with
// zero velocity, forcing the position-based commit rule. The offset is never
// left mid-drag.
func (c *RevealController) Cancel() {
	if !c.dragging {
		return
	}
	c.Release(Sample{})
}

// Tap dismisses an open row without invoking edit or delete.
func (c *RevealController) Tap() {
	c.Close()
}

// Close animates the row shut. Used for pass-through dismissal and by the
// one-open-row policy; closing an already-closed row is a no-op and fires no
// callback.
func (c *RevealController) Close() {
	if c.dragging {
		return
	}
	if !c.committedOpen && !c.offset.Active() {
		return
	}
	c.settleTo(false, 0)
}

// Edit requests the edit action. Legal only while committed open; the row
// animates closed first and OnAction fires when the close settles.
func (c *RevealController) Edit() error {
	return c.trigger(RevealActionEdit)
}

// Delete requests the delete action, with the same close-first contract as
// Edit.
func (c *RevealController) Delete() error {
	return c.trigger(RevealActionDelete)
}

func (c *RevealController) trigger(a RevealAction) error {
	if !c.committedOpen || c.dragging {
		return ErrRowNotOpen
	}
	c.pendingAction = &a
	c.settleTo(false, 0)
	return nil
}

// Reset snaps the row to closed without callbacks. Called when the row's
// identity changes, for example after a delete reuses the slot.
func (c *RevealController) Reset() {
	c.offset.Snap(0)
	c.committedOpen = false
	c.dragging = false
	c.settlingOpen = false
	c.pendingAction = nil
}

// Tick advances the settle by one frame and reports whether the row still
// needs frames.
func (c *RevealController) Tick() bool {
	c.offset.Tick()
	return c.offset.Active()
}

func (c *RevealController) settleTo(open bool, velocity float64) {
	target := 0.0
	if open {
		target = -c.cfg.PanelWidth
	}
	c.settlingOpen = open
	if math.Abs(c.offset.Value()-target) < settlePosTolerance && math.Abs(velocity) < 1 {
		c.offset.Snap(target)
		c.finishSettle(open)
		return
	}
	c.offset.Start(target, velocity, func() { c.finishSettle(open) })
}

func (c *RevealController) finishSettle(open bool) {
	was := c.committedOpen
	c.committedOpen = open
	if !open && c.pendingAction != nil {
		act := *c.pendingAction
		c.pendingAction = nil
		if c.cfg.OnAction != nil {
			c.cfg.OnAction(act)
		}
	}
	if open == was {
		return
	}
	if open && c.cfg.OnOpenFeedback != nil {
		c.cfg.OnOpenFeedback()
	}
	if c.cfg.OnStateChanged != nil {
		c.cfg.OnStateChanged(open)
	}
}
