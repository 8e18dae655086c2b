package core

import "testing"

func TestArbiterDeadZoneUndecided(t *testing.T) {
	a := NewArbiter(DefaultArbiterConfig())

	s := Sample{DX: -4, DY: 1}
	if a.ShouldClaim(s) {
		t.Fatalf("claimed inside the dead zone")
	}
	if a.ShouldClaimEarly(s) {
		t.Fatalf("early-claimed inside the dead zone")
	}
}

func TestArbiterAxisDominance(t *testing.T) {
	a := NewArbiter(DefaultArbiterConfig())

	if a.ShouldClaim(Sample{DX: -20, DY: -20}) {
		t.Fatalf("claimed a diagonal drag with no horizontal dominance")
	}
	if !a.ShouldClaim(Sample{DX: -30, DY: -10}) {
		t.Fatalf("refused a clearly horizontal drag")
	}
	if a.ShouldClaim(Sample{DX: 3, DY: 30}) {
		t.Fatalf("claimed a vertical scroll")
	}
}

func TestArbiterEarlyIsStricter(t *testing.T) {
	a := NewArbiter(DefaultArbiterConfig())

	// Past the normal dead zone but not the early one.
	s := Sample{DX: -9, DY: 0}
	if !a.ShouldClaim(s) {
		t.Fatalf("normal claim should pass at 9 units")
	}
	if a.ShouldClaimEarly(s) {
		t.Fatalf("early claim should still be undecided at 9 units")
	}

	// Past both dead zones but only 1.7x horizontal dominance.
	s = Sample{DX: -17, DY: -10}
	if !a.ShouldClaim(s) {
		t.Fatalf("normal ratio should accept 1.7x dominance")
	}
	if a.ShouldClaimEarly(s) {
		t.Fatalf("early ratio should reject 1.7x dominance")
	}

	if !a.ShouldClaimEarly(Sample{DX: -30, DY: -10}) {
		t.Fatalf("early claim should accept 3x dominance past the dead zone")
	}
}

func TestArbiterFirstClaimWins(t *testing.T) {
	a := NewArbiter(ArbiterConfig{})

	if !a.Claim(0, "row-1") {
		t.Fatalf("first claim refused")
	}
	if a.Claim(0, "row-2") {
		t.Fatalf("second claim granted for the same pointer")
	}
	owner, ok := a.Owner(0)
	if !ok || owner != "row-1" {
		t.Fatalf("owner = %q, %v; want row-1", owner, ok)
	}
	if !a.AxisLocked(0) {
		t.Fatalf("grant did not lock the axis")
	}

	// Independent pointers do not contend.
	if !a.Claim(1, "row-2") {
		t.Fatalf("claim refused on an unrelated pointer")
	}

	a.Release(0)
	if _, ok := a.Owner(0); ok {
		t.Fatalf("claim survived release")
	}
	if !a.Claim(0, "row-2") {
		t.Fatalf("claim refused after release")
	}
}

func TestArbiterRefusesTerminationWhileOwned(t *testing.T) {
	a := NewArbiter(ArbiterConfig{})

	if !a.RequestTermination(0) {
		t.Fatalf("termination refused with no claim held")
	}
	a.Claim(0, "deck")
	if a.RequestTermination(0) {
		t.Fatalf("termination granted mid-gesture")
	}
	a.Release(0)
	if !a.RequestTermination(0) {
		t.Fatalf("termination refused after release")
	}
}
