package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestCardScalesFootprint(t *testing.T) {
	full := Card{Title: "Picnic", Body: "pack the blanket", Accent: "#89b4fa", Scale: 1, BaseWidth: 24, BaseHeight: 8}.Render()
	far := Card{Title: "Picnic", Body: "pack the blanket", Accent: "#89b4fa", Scale: 0.72, BaseWidth: 24, BaseHeight: 8}.Render()

	fullLines := strings.Split(full, "\n")
	farLines := strings.Split(far, "\n")
	if len(farLines) >= len(fullLines) {
		t.Fatalf("far card not shorter: %d vs %d lines", len(farLines), len(fullLines))
	}
	if ansi.StringWidth(farLines[0]) >= ansi.StringWidth(fullLines[0]) {
		t.Fatalf("far card not narrower")
	}
	if ansi.StringWidth(fullLines[0]) != 24 {
		t.Fatalf("full card width = %d, want 24", ansi.StringWidth(fullLines[0]))
	}
}

func TestCardZeroScaleRendersNothing(t *testing.T) {
	if out := (Card{Title: "x", Scale: 0, BaseWidth: 20, BaseHeight: 6}).Render(); out != "" {
		t.Fatalf("invisible card rendered %q", out)
	}
}

func TestCompositeOcclusion(t *testing.T) {
	back := "BBBB\nBBBB"
	front := "FF\nFF"
	out := Composite(8, 2, []PlacedCard{{Content: back, X: 0}, {Content: front, X: 1}})
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("canvas lines = %d", len(lines))
	}
	if lines[0] != "BFFB    " {
		t.Fatalf("line 0 = %q, want front card occluding", lines[0])
	}
	for _, l := range lines {
		if ansi.StringWidth(l) != 8 {
			t.Fatalf("canvas line width = %d, want 8", ansi.StringWidth(l))
		}
	}
}

func TestCompositeClipsAtEdges(t *testing.T) {
	out := Composite(6, 1, []PlacedCard{
		{Content: "LLLL", X: -2},
		{Content: "RRRR", X: 4},
	})
	if out != "LL  RR" {
		t.Fatalf("edge clip = %q, want %q", out, "LL  RR")
	}
}

func TestDimTowardFallsBackOnBadHex(t *testing.T) {
	if got := dimToward("notacolor", cardBackground, 0.5); got != "notacolor" {
		t.Fatalf("bad hex should pass through, got %q", got)
	}
	if got := dimToward("#ffffff", cardBackground, 0); got != "#ffffff" {
		t.Fatalf("zero dim changed the color: %q", got)
	}
}
