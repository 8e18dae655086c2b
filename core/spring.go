package core

import "github.com/charmbracelet/harmonica"

// SpringConfig tunes the settle animation. There is no duration: the spring
// runs until position and velocity land inside the settle tolerance, so the
// motion feels consistent regardless of starting offset.
type SpringConfig struct {
	FPS       int
	Frequency float64 // angular frequency; higher is stiffer
	Damping   float64 // damping ratio; < 1 allows a small overshoot
}

// DefaultSpringConfig returns the stock feel: a slightly underdamped spring
// with a small, consistent overshoot.
func DefaultSpringConfig() SpringConfig {
	return SpringConfig{FPS: 60, Frequency: 7.0, Damping: 0.85}
}

func (c SpringConfig) withDefaults() SpringConfig {
	d := DefaultSpringConfig()
	if c.FPS <= 0 {
		c.FPS = d.FPS
	}
	if c.Frequency <= 0 {
		c.Frequency = d.Frequency
	}
	if c.Damping <= 0 {
		c.Damping = d.Damping
	}
	return c
}

const (
	settlePosTolerance = 0.01
	settleVelTolerance = 0.01
)

// Animatable is a live animated quantity owned by a controller: a position,
// a velocity and a target, advanced one frame per Tick. It decouples the
// settle math from any rendering binding; the render layer only reads Value.
type Animatable struct {
	spring   harmonica.Spring
	pos      float64
	vel      float64
	target   float64
	active   bool
	onSettle func()
}

func NewAnimatable(cfg SpringConfig) *Animatable {
	cfg = cfg.withDefaults()
	return &Animatable{
		spring: harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.Frequency, cfg.Damping),
	}
}

// Value is the current position.
func (a *Animatable) Value() float64 { return a.pos }

// Active reports whether a settle is in flight.
func (a *Animatable) Active() bool { return a.active }

// Snap moves to v immediately, cancelling any in-flight settle without
// firing its callback.
func (a *Animatable) Snap(v float64) {
	a.pos = v
	a.vel = 0
	a.target = v
	a.active = false
	a.onSettle = nil
}

// Cancel stops an in-flight settle at the current position without firing
// its callback. A new gesture must call this before writing the value, so
// the spring and the drag never compete for the same state.
func (a *Animatable) Cancel() {
	a.vel = 0
	a.active = false
	a.onSettle = nil
}

// Start begins a settle from the current position toward target. velocity
// seeds the spring, in units per second, so a flick carries its momentum
// into the animation. onSettle fires exactly once, when the spring lands.
func (a *Animatable) Start(target, velocity float64, onSettle func()) {
	a.target = target
	a.vel = velocity
	a.onSettle = onSettle
	a.active = true
}

// Tick advances one frame. It returns the new position and whether the
// spring settled on this frame. On settle the position snaps to the exact
// target and the callback fires.
func (a *Animatable) Tick() (float64, bool) {
	if !a.active {
		return a.pos, false
	}
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	if abs(a.pos-a.target) < settlePosTolerance && abs(a.vel) < settleVelTolerance {
		a.pos = a.target
		a.vel = 0
		a.active = false
		done := a.onSettle
		a.onSettle = nil
		if done != nil {
			done()
		}
		return a.pos, true
	}
	return a.pos, false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
