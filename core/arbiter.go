package core

import "math"

// PointerID identifies one active pointer. Pointer 0 is the mouse.
type PointerID int

// ControllerID identifies one gesture-consuming controller instance.
type ControllerID string

// Claim is the arbiter's record for one active pointer. At most one
// controller owns a given pointer at any time.
type Claim struct {
	Owner      ControllerID
	AxisLocked bool
}

// ArbiterConfig holds the empirical claim thresholds. The values are UI-feel
// constants; collaborators may override them but should not infer "better"
// ones.
type ArbiterConfig struct {
	// DeadZone is the displacement below which no claim is made, so taps
	// and scroll starts are not hijacked.
	DeadZone float64
	// AxisRatio is how strongly the horizontal component must dominate the
	// vertical one before a claim.
	AxisRatio float64
	// EarlyDeadZone and EarlyAxisRatio are the stricter thresholds used when
	// a surface must pre-empt an ancestor scroller before it starts moving.
	EarlyDeadZone  float64
	EarlyAxisRatio float64
}

// DefaultArbiterConfig returns the stock thresholds.
func DefaultArbiterConfig() ArbiterConfig {
	return ArbiterConfig{
		DeadZone:       8,
		AxisRatio:      1.5,
		EarlyDeadZone:  12,
		EarlyAxisRatio: 2.0,
	}
}

func (c ArbiterConfig) withDefaults() ArbiterConfig {
	d := DefaultArbiterConfig()
	if c.DeadZone <= 0 {
		c.DeadZone = d.DeadZone
	}
	if c.AxisRatio <= 0 {
		c.AxisRatio = d.AxisRatio
	}
	if c.EarlyDeadZone <= 0 {
		c.EarlyDeadZone = d.EarlyDeadZone
	}
	if c.EarlyAxisRatio <= 0 {
		c.EarlyAxisRatio = d.EarlyAxisRatio
	}
	return c
}

// Arbiter decides which controller owns an active pointer. First claim wins;
// there is no hand-off mid-gesture. All methods are called from the single
// event loop, so no locking is needed.
type Arbiter struct {
	cfg    ArbiterConfig
	claims map[PointerID]*Claim
}

func NewArbiter(cfg ArbiterConfig) *Arbiter {
	return &Arbiter{cfg: cfg.withDefaults(), claims: make(map[PointerID]*Claim)}
}

// ShouldClaim reports whether a drag has shown enough dominant horizontal
// intent to be claimed. Below the dead zone the gesture is still undecided,
// which is a valid state, not an error.
func (a *Arbiter) ShouldClaim(s Sample) bool {
	if s.Distance() < a.cfg.DeadZone {
		return false
	}
	return math.Abs(s.DX) >= a.cfg.AxisRatio*math.Abs(s.DY)
}

// ShouldClaimEarly is the stricter variant for surfaces that must win the
// pointer before an ancestor scroller begins scrolling.
func (a *Arbiter) ShouldClaimEarly(s Sample) bool {
	if s.Distance() < a.cfg.EarlyDeadZone {
		return false
	}
	return math.Abs(s.DX) >= a.cfg.EarlyAxisRatio*math.Abs(s.DY)
}

// Claim grants pointer p to controller c if nobody holds it yet. The grant
// locks the axis: every later sample for p belongs to c until Release.
func (a *Arbiter) Claim(p PointerID, c ControllerID) bool {
	if _, taken := a.claims[p]; taken {
		return false
	}
	a.claims[p] = &Claim{Owner: c, AxisLocked: true}
	return true
}

// Owner returns the controller holding pointer p, if any.
func (a *Arbiter) Owner(p PointerID) (ControllerID, bool) {
	cl, ok := a.claims[p]
	if !ok {
		return "", false
	}
	return cl.Owner, true
}

// AxisLocked reports whether pointer p is locked to its claiming controller.
func (a *Arbiter) AxisLocked(p PointerID) bool {
	cl, ok := a.claims[p]
	return ok && cl.AxisLocked
}

// RequestTermination is the ancestor's plea to revoke a claim mid-gesture.
// Once a drag is owned it runs to completion, so the answer is no while a
// claim exists; content must not snap back under the user's finger.
func (a *Arbiter) RequestTermination(p PointerID) bool {
	_, owned := a.claims[p]
	return !owned
}

// Release destroys the claim for pointer p. Called on pointer up and on
// platform cancellation alike; the owning controller resolves a cancel as a
// release with zero velocity.
func (a *Arbiter) Release(p PointerID) {
	delete(a.claims, p)
}
