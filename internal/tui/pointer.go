package tui

import (
	"time"

	"github.com/jask/glide/core"
)

// velocityWindow bounds how far back position history contributes to the
// velocity estimate; older motion describes a different part of the gesture.
const velocityWindow = 80 * time.Millisecond

const mousePointer core.PointerID = 0

type pointerSample struct {
	x, y int
	at   time.Time
}

// pointerTracker folds terminal mouse events into gesture samples. Terminal
// mice report discrete cell positions with no velocity, so velocity is
// estimated over a short window of recent positions, in cells per
// millisecond to match the controllers' thresholds.
type pointerTracker struct {
	active         bool
	startX, startY int
	history        []pointerSample
	now            func() time.Time
}

func newPointerTracker() *pointerTracker {
	return &pointerTracker{now: time.Now}
}

func (p *pointerTracker) Active() bool { return p.active }

func (p *pointerTracker) Begin(x, y int) {
	p.active = true
	p.startX, p.startY = x, y
	p.history = p.history[:0]
	p.push(x, y)
}

// Move records a motion event and returns the cumulative sample.
func (p *pointerTracker) Move(x, y int) core.Sample {
	if !p.active {
		return core.Sample{}
	}
	p.push(x, y)
	return p.sample(x, y)
}

// End records the release position and stops tracking.
func (p *pointerTracker) End(x, y int) core.Sample {
	if !p.active {
		return core.Sample{}
	}
	p.push(x, y)
	s := p.sample(x, y)
	p.active = false
	return s
}

// Cancel stops tracking and returns the last known displacement with zero
// velocity, matching how the controllers resolve interrupted gestures.
func (p *pointerTracker) Cancel() core.Sample {
	if !p.active {
		return core.Sample{}
	}
	last := p.history[len(p.history)-1]
	p.active = false
	return core.Sample{
		DX: float64(last.x - p.startX),
		DY: float64(last.y - p.startY),
		At: last.at,
	}
}

func (p *pointerTracker) push(x, y int) {
	now := p.now()
	p.history = append(p.history, pointerSample{x: x, y: y, at: now})
	cutoff := now.Add(-velocityWindow)
	trim := 0
	for trim < len(p.history)-1 && p.history[trim].at.Before(cutoff) {
		trim++
	}
	p.history = p.history[trim:]
}

func (p *pointerTracker) sample(x, y int) core.Sample {
	vx, vy := p.velocity()
	last := p.history[len(p.history)-1]
	return core.Sample{
		DX: float64(x - p.startX),
		DY: float64(y - p.startY),
		VX: vx,
		VY: vy,
		At: last.at,
	}
}

func (p *pointerTracker) velocity() (float64, float64) {
	if len(p.history) < 2 {
		return 0, 0
	}
	first, last := p.history[0], p.history[len(p.history)-1]
	ms := float64(last.at.Sub(first.at)) / float64(time.Millisecond)
	if ms <= 0 {
		return 0, 0
	}
	return float64(last.x-first.x) / ms, float64(last.y-first.y) / ms
}
