package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
)

var (
	rowTitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	rowBodyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	rowSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	editPanelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#89b4fa")).Align(lipgloss.Center)
	deletePanelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#f38ba8")).Align(lipgloss.Center)
)

// Row renders one swipe-reveal note row: two lines of content shifted left
// by the live reveal offset, with the action panel sliding in from the right
// edge in the vacated space.
type Row struct {
	Title      string
	Body       string
	Offset     float64 // reveal offset, [-PanelWidth, 0]
	PanelWidth int
	Selected   bool
}

// Render draws the row at exactly width columns, two lines tall.
func (r Row) Render(width int) string {
	if width <= 0 {
		return ""
	}
	panelW := r.PanelWidth
	if panelW > width {
		panelW = width
	}
	reveal := int(math.Round(-r.Offset))
	if reveal < 0 {
		reveal = 0
	}
	if reveal > panelW {
		reveal = panelW
	}
	contentW := width - reveal

	titleStyle := rowTitleStyle
	prefix := "  "
	if r.Selected {
		titleStyle = rowSelectedStyle
		prefix = "▶ "
	}
	title := titleStyle.Render(fit(prefix+r.Title, contentW))

	body := ""
	if wrapped := wordwrap.String(r.Body, max(contentW-2, 1)); wrapped != "" {
		body = strings.SplitN(wrapped, "\n", 2)[0]
	}
	body = rowBodyStyle.Render(fit("  "+body, contentW))

	if reveal == 0 {
		return title + "\n" + body
	}
	panelTop, panelBottom := r.panel(panelW, reveal)
	return title + panelTop + "\n" + body + panelBottom
}

// panel returns the rightmost reveal columns of the full action panel, so a
// partial drag shows the panel sliding in rather than popping.
func (r Row) panel(panelW, reveal int) (string, string) {
	editW := panelW / 2
	delW := panelW - editW
	line := editPanelStyle.Width(editW).Render(panelLabel("✎ edit", editW)) +
		deletePanelStyle.Width(delW).Render(panelLabel("✕ delete", delW))
	visible := ansi.TruncateLeft(line, panelW-reveal, "")
	return visible, visible
}

func panelLabel(label string, w int) string {
	if ansi.StringWidth(label) > w {
		return ansi.Truncate(label, w, "")
	}
	return label
}

// fit truncates or pads s to exactly w columns.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if ansi.StringWidth(s) > w {
		s = ansi.Truncate(s, w, "…")
	}
	if pad := w - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
