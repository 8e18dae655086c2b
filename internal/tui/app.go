package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/glide/core"
	"github.com/jask/glide/internal/config"
)

// Tab indices
const (
	tabNotes = 0
	tabIdeas = 1
	tabCount = 2
)

const headerHeight = 2 // tab bar plus separator
const footerHeight = 2 // status plus help line

// App ties the gesture surfaces together: one arbiter shared by every
// surface, one tab of reveal rows, one tab of carousel cards.
type App struct {
	cfg     config.Config
	keys    keyMap
	tab     int
	notes   *notesModel
	ideas   *ideasModel
	width   int
	height  int
	status  string
	ticking bool
}

func New(cfg config.Config, notes []Note, ideas []Idea) *App {
	arbiter := core.NewArbiter(core.ArbiterConfig{
		DeadZone:       cfg.Gesture.DeadZone,
		AxisRatio:      cfg.Gesture.AxisRatio,
		EarlyDeadZone:  cfg.Gesture.EarlyDeadZone,
		EarlyAxisRatio: cfg.Gesture.EarlyAxisRatio,
	})
	return &App{
		cfg:   cfg,
		keys:  newKeyMap(),
		notes: newNotesModel(cfg, arbiter, notes),
		ideas: newIdeasModel(cfg, arbiter, ideas),
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch {
		case keyMatches(msg, a.keys.Quit):
			return a, tea.Quit
		case keyMatches(msg, a.keys.NextTab):
			a.switchTab((a.tab + 1) % tabCount)
		case keyMatches(msg, a.keys.PrevTab):
			a.switchTab((a.tab + tabCount - 1) % tabCount)
		default:
			if a.tab == tabNotes {
				a.notes.handleKey(msg, a.keys, a.contentHeight())
			} else {
				a.ideas.handleKey(msg, a.keys)
			}
		}
		return a, a.ensureTicking()

	case tea.MouseMsg:
		y := msg.Y - headerHeight
		if a.tab == tabNotes {
			a.notes.handleMouse(msg, y)
		} else {
			a.ideas.handleMouse(msg, y)
		}
		a.drainEvents()
		return a, a.ensureTicking()

	case frameMsg:
		animating := false
		if a.notes.tick() {
			animating = true
		}
		if a.ideas.tick() {
			animating = true
		}
		a.drainEvents()
		if animating {
			return a, frameCmd(a.cfg.Spring.FPS)
		}
		a.ticking = false
		return a, nil
	}
	return a, nil
}

// switchTab resolves any in-flight gesture on the outgoing surface first;
// leaving a tab is indistinguishable from a platform interruption.
func (a *App) switchTab(to int) {
	if to == a.tab {
		return
	}
	a.notes.cancelGesture()
	a.ideas.cancelGesture()
	a.tab = to
}

func (a *App) ensureTicking() tea.Cmd {
	if a.ticking {
		return nil
	}
	if !a.notes.animating() && !a.ideas.animating() {
		return nil
	}
	a.ticking = true
	return frameCmd(a.cfg.Spring.FPS)
}

func (a *App) drainEvents() {
	events := append(a.notes.drainEvents(), a.ideas.drainEvents()...)
	if len(events) > 0 {
		a.status = events[len(events)-1]
	}
}

func (a *App) contentHeight() int {
	return maxInt(a.height-headerHeight-footerHeight, 1)
}

func (a *App) View() string {
	if a.width == 0 {
		return "loading..."
	}
	var b strings.Builder
	b.WriteString(a.renderTabs())
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(strings.Repeat("─", a.width)))
	b.WriteString("\n")

	var content string
	if a.tab == tabNotes {
		content = a.notes.view(a.width, a.contentHeight())
	} else {
		content = a.ideas.view(a.width, a.contentHeight())
	}
	b.WriteString(padToHeight(content, a.contentHeight()))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(" " + a.status))
	b.WriteString("\n")
	b.WriteString(a.renderHelp())
	return b.String()
}

func (a *App) renderTabs() string {
	labels := [tabCount]string{"Notes", "Date ideas"}
	parts := make([]string, 0, tabCount)
	for i, l := range labels {
		if i == a.tab {
			parts = append(parts, tabActiveStyle.Render(l))
		} else {
			parts = append(parts, tabInactiveStyle.Render(l))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (a *App) renderHelp() string {
	hints := make([]string, 0, 4)
	for _, b := range a.keys.ShortHelp() {
		hints = append(hints, b.Help().Key+" "+b.Help().Desc)
	}
	return footerStyle.Render(" " + strings.Join(hints, "  ·  "))
}

func padToHeight(content string, height int) string {
	lines := strings.Count(content, "\n") + 1
	if lines >= height {
		return content
	}
	return content + strings.Repeat("\n", height-lines)
}

func keyMatches(msg tea.KeyMsg, b key.Binding) bool {
	return key.Matches(msg, b)
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

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
