package core

import (
	"math"
	"time"
)

// Phase is the lifecycle stage of a pointer event relative to gesture start.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseMove
	PhaseEnd
	PhaseCancel
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	case PhaseCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Sample is one observation of an active pointer. DX/DY are cumulative
// displacement from gesture start; VX/VY are instantaneous velocity in
// units per millisecond. Samples are never stored by the controllers.
type Sample struct {
	DX, DY float64
	VX, VY float64
	At     time.Time
}

// Distance is the total displacement from gesture start.
func (s Sample) Distance() float64 {
	return math.Hypot(s.DX, s.DY)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
