package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/wordwrap"
)

const cardBackground = "#1e1e2e"

// Card renders one carousel card. Scale drives both its footprint and how
// far its colors are dimmed toward the background, so depth reads even on
// terminals where sub-cell scaling is impossible.
type Card struct {
	Title      string
	Body       string
	Accent     string // hex color of the card at full scale
	Scale      float64
	BaseWidth  int
	BaseHeight int
	Active     bool
}

// Render draws the card at its scaled size.
func (c Card) Render() string {
	scale := c.Scale
	if scale <= 0 {
		return ""
	}
	if scale > 1 {
		scale = 1
	}
	w := maxInt(int(math.Round(float64(c.BaseWidth)*scale)), 8)
	h := maxInt(int(math.Round(float64(c.BaseHeight)*scale)), 3)

	accent := dimToward(c.Accent, cardBackground, 1-scale)
	text := dimToward("#cdd6f4", cardBackground, 1-scale)

	border := lipgloss.RoundedBorder()
	if c.Active {
		border = lipgloss.ThickBorder()
	}
	frame := lipgloss.NewStyle().
		Border(border).
		BorderForeground(lipgloss.Color(accent)).
		Width(w - 2).
		Height(h - 2)

	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true)
	bodyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(text))

	inner := w - 2
	lines := []string{fit(titleStyle.Render(fit(c.Title, inner)), inner)}
	for _, l := range strings.Split(wordwrap.String(c.Body, inner), "\n") {
		if len(lines) >= h-2 {
			break
		}
		lines = append(lines, bodyStyle.Render(fit(l, inner)))
	}
	return frame.Render(strings.Join(lines, "\n"))
}

// dimToward blends a hex color toward the background by t in [0,1],
// over-weighted slightly so far cards recede clearly.
func dimToward(hex, toward string, t float64) string {
	from, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	to, err := colorful.Hex(toward)
	if err != nil {
		return hex
	}
	t = math.Min(math.Max(t*1.6, 0), 1)
	return from.BlendLab(to, t).Hex()
}

// PlacedCard is a pre-rendered card block positioned at a left column.
type PlacedCard struct {
	Content string
	X       int
}

// Composite overlays cards back-to-front onto a blank canvas. Callers pass
// cards in z-order; later cards occlude earlier ones.
func Composite(width, height int, cards []PlacedCard) string {
	canvas := make([]string, height)
	for i := range canvas {
		canvas[i] = strings.Repeat(" ", width)
	}
	for _, card := range cards {
		for li, line := range strings.Split(card.Content, "\n") {
			if li >= height {
				break
			}
			canvas[li] = splice(canvas[li], line, card.X, width)
		}
	}
	return strings.Join(canvas, "\n")
}

// splice overlays one line onto base at column x, clipping at both edges.
func splice(base, overlay string, x, width int) string {
	if x < 0 {
		overlay = ansi.TruncateLeft(overlay, -x, "")
		x = 0
	}
	w := ansi.StringWidth(overlay)
	if x >= width || w == 0 {
		return base
	}
	if x+w > width {
		overlay = ansi.Truncate(overlay, width-x, "")
		w = width - x
	}
	left := ansi.Truncate(base, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	return left + overlay + ansi.TruncateLeft(base, x+w, "")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
