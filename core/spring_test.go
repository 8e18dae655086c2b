package core

import (
	"math"
	"testing"
)

// drain advances an animatable until it settles, with a frame cap so a
// broken spring fails the test instead of hanging it.
func drain(t *testing.T, a *Animatable) int {
	t.Helper()
	for frames := 1; frames <= 2000; frames++ {
		if _, settled := a.Tick(); settled {
			return frames
		}
	}
	t.Fatalf("spring did not settle within 2000 frames (value=%v)", a.Value())
	return 0
}

func TestAnimatableSettlesExactlyOnTarget(t *testing.T) {
	a := NewAnimatable(SpringConfig{})
	fired := 0
	a.Start(10, 0, func() { fired++ })

	drain(t, a)
	if a.Value() != 10 {
		t.Fatalf("value = %v, want exactly 10 after settle", a.Value())
	}
	if fired != 1 {
		t.Fatalf("onSettle fired %d times, want 1", fired)
	}
	if a.Active() {
		t.Fatalf("still active after settle")
	}

	// Further ticks are inert and never re-fire.
	for i := 0; i < 10; i++ {
		a.Tick()
	}
	if fired != 1 || a.Value() != 10 {
		t.Fatalf("settled animatable moved: fired=%d value=%v", fired, a.Value())
	}
}

func TestAnimatableOvershootIsSmall(t *testing.T) {
	a := NewAnimatable(DefaultSpringConfig())
	a.Start(10, 0, nil)

	peak := 0.0
	for i := 0; i < 2000 && a.Active(); i++ {
		v, _ := a.Tick()
		if v > peak {
			peak = v
		}
	}
	if peak > 10.5 {
		t.Fatalf("overshoot peak = %v, want <= 10.5", peak)
	}
}

func TestAnimatableCancelSkipsCallback(t *testing.T) {
	a := NewAnimatable(SpringConfig{})
	fired := 0
	a.Start(10, 0, func() { fired++ })
	a.Tick()
	a.Cancel()

	if a.Active() {
		t.Fatalf("active after cancel")
	}
	if fired != 0 {
		t.Fatalf("cancelled settle fired its callback")
	}
	if a.Value() == 0 || a.Value() == 10 {
		t.Fatalf("cancel should hold mid-flight position, got %v", a.Value())
	}
}

func TestAnimatableSnap(t *testing.T) {
	a := NewAnimatable(SpringConfig{})
	a.Start(10, 0, func() { t.Fatalf("snap fired a stale settle callback") })
	a.Snap(-3)
	if a.Value() != -3 || a.Active() {
		t.Fatalf("snap: value=%v active=%v", a.Value(), a.Active())
	}
	a.Tick()
}

func TestAnimatableFlickCarriesMomentum(t *testing.T) {
	a := NewAnimatable(DefaultSpringConfig())
	// Seeded away from the target: the first frames should move with the
	// seed velocity, not against it.
	a.Start(0, 40, nil)
	v, _ := a.Tick()
	if v <= 0 {
		t.Fatalf("first frame ignored the seed velocity: %v", v)
	}
	drain(t, a)
	if math.Abs(a.Value()) > settlePosTolerance {
		t.Fatalf("did not return to target, value=%v", a.Value())
	}
}
