package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/glide/core"
	"github.com/jask/glide/core/widgets"
	"github.com/jask/glide/internal/config"
)

// rowHeight is one rendered note row plus its separator line.
const rowHeight = 3

// Note is seed content for the notes screen.
type Note struct {
	Title string
	Body  string
}

type noteRow struct {
	id    string
	title string
	body  string
	ctrl  *core.RevealController
}

type pendingAction struct {
	noteID string
	action core.RevealAction
}

// notesModel hosts the swipe-to-reveal list: each row owns a reveal
// controller, the screen owns the arbiter, tracker and one-open registry.
type notesModel struct {
	cfg      config.Config
	rows     []*noteRow
	registry *core.OpenRowRegistry
	arbiter  *core.Arbiter
	tracker  *pointerTracker

	cursor int
	scroll int

	// live gesture bookkeeping
	gestureRow *noteRow
	claimed    bool
	scrolling  bool
	lastY      int

	events  []string
	pending []pendingAction
}

func newNotesModel(cfg config.Config, arbiter *core.Arbiter, notes []Note) *notesModel {
	m := &notesModel{
		cfg:      cfg,
		registry: core.NewOpenRowRegistry(),
		arbiter:  arbiter,
		tracker:  newPointerTracker(),
	}
	for _, n := range notes {
		m.append(n)
	}
	return m
}

func (m *notesModel) append(n Note) {
	row := &noteRow{id: uuid.NewString(), title: n.Title, body: n.Body}
	ctrl, err := core.NewRevealController(core.RevealConfig{
		PanelWidth:        float64(m.cfg.UI.PanelWidth),
		VelocityThreshold: m.cfg.Gesture.VelocityThreshold,
		OpenFraction:      m.cfg.Gesture.OpenFraction,
		Spring: core.SpringConfig{
			FPS:       m.cfg.Spring.FPS,
			Frequency: m.cfg.Spring.Frequency,
			Damping:   m.cfg.Spring.Damping,
		},
		OnStateChanged: func(open bool) {
			if open {
				m.registry.WillOpen(row.id)
				m.events = append(m.events, fmt.Sprintf("%s: actions revealed", row.title))
			} else {
				m.registry.DidClose(row.id)
			}
		},
		OnOpenFeedback: func() {
			m.events = append(m.events, "·")
		},
		OnAction: func(a core.RevealAction) {
			m.pending = append(m.pending, pendingAction{noteID: row.id, action: a})
		},
	})
	if err != nil {
		// PanelWidth comes from validated config defaults; a bad value here
		// is a programming error in the caller.
		panic(err)
	}
	row.ctrl = ctrl
	m.rows = append(m.rows, row)
	m.registry.Register(row.id, ctrl)
}

func (m *notesModel) rowAt(y int) (*noteRow, bool) {
	idx := m.scroll + y/rowHeight
	if y < 0 || idx < 0 || idx >= len(m.rows) {
		return nil, false
	}
	return m.rows[idx], true
}

func (m *notesModel) indexOf(id string) int {
	for i, r := range m.rows {
		if r.id == id {
			return i
		}
	}
	return -1
}

// handleMouse consumes mouse events with the content-relative y already
// computed by the App.
func (m *notesModel) handleMouse(msg tea.MouseMsg, y int) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scrollBy(-1)
		case tea.MouseButtonWheelDown:
			m.scrollBy(1)
		case tea.MouseButtonLeft:
			if row, ok := m.rowAt(y); ok {
				m.tracker.Begin(msg.X, y)
				m.gestureRow = row
				m.claimed = false
				m.scrolling = false
				m.lastY = y
			}
		}
	case tea.MouseActionMotion:
		if !m.tracker.Active() || m.gestureRow == nil {
			return
		}
		s := m.tracker.Move(msg.X, y)
		switch {
		case m.claimed:
			m.gestureRow.ctrl.Drag(s)
		case m.scrolling:
			m.scrollBy(m.lastY - y)
		default:
			if m.arbiter.ShouldClaim(s) && m.arbiter.Claim(mousePointer, core.ControllerID(m.gestureRow.id)) {
				m.claimed = true
				m.gestureRow.ctrl.BeginDrag()
				m.gestureRow.ctrl.Drag(s)
			} else if s.Distance() >= m.cfg.Gesture.DeadZone && !m.arbiter.ShouldClaim(s) {
				// Dominantly vertical: yield the gesture to list scrolling.
				m.scrolling = true
				m.scrollBy(m.lastY - y)
			}
		}
		m.lastY = y
	case tea.MouseActionRelease:
		if !m.tracker.Active() || m.gestureRow == nil {
			return
		}
		s := m.tracker.End(msg.X, y)
		switch {
		case m.claimed:
			m.gestureRow.ctrl.Release(s)
			m.arbiter.Release(mousePointer)
		case !m.scrolling:
			// Never left the dead zone: a tap, not a gesture.
			m.tap(m.gestureRow)
		}
		m.gestureRow = nil
		m.claimed = false
		m.scrolling = false
	}
}

// cancelGesture resolves a platform interruption as a dead release.
func (m *notesModel) cancelGesture() {
	if !m.tracker.Active() {
		return
	}
	m.tracker.Cancel()
	if m.claimed && m.gestureRow != nil {
		m.gestureRow.ctrl.Cancel()
		m.arbiter.Release(mousePointer)
	}
	m.gestureRow = nil
	m.claimed = false
	m.scrolling = false
}

// tap selects the row; tapping any row while one is open dismisses the open
// row without invoking its actions.
func (m *notesModel) tap(row *noteRow) {
	if id, ok := m.registry.OpenID(); ok {
		if open, found := m.registry.Controller(id); found {
			open.Tap()
		}
		if id == row.id {
			return
		}
	}
	if idx := m.indexOf(row.id); idx >= 0 {
		m.cursor = idx
	}
}

func (m *notesModel) handleKey(msg tea.KeyMsg, keys keyMap, height int) {
	cur := m.currentRow()
	switch {
	case keyMatches(msg, keys.Up):
		m.moveCursor(-1, height)
	case keyMatches(msg, keys.Down):
		m.moveCursor(1, height)
	case keyMatches(msg, keys.Open):
		if cur != nil && !cur.ctrl.Open() {
			// Keyboard reveal rides the same commit rule as a decisive
			// flick, so the two input paths cannot drift apart.
			cur.ctrl.BeginDrag()
			cur.ctrl.Release(core.Sample{VX: -m.cfg.Gesture.VelocityThreshold})
		}
	case keyMatches(msg, keys.Close):
		if cur != nil {
			cur.ctrl.Close()
		}
	case keyMatches(msg, keys.Edit):
		if cur != nil {
			_ = cur.ctrl.Edit()
		}
	case keyMatches(msg, keys.Delete):
		if cur != nil {
			_ = cur.ctrl.Delete()
		}
	}
}

func (m *notesModel) currentRow() *noteRow {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor]
}

func (m *notesModel) moveCursor(delta, height int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor = clampInt(m.cursor+delta, 0, len(m.rows)-1)
	visible := maxInt(height/rowHeight, 1)
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+visible {
		m.scroll = m.cursor - visible + 1
	}
}

func (m *notesModel) scrollBy(delta int) {
	maxScroll := maxInt(len(m.rows)-1, 0)
	m.scroll = clampInt(m.scroll+delta, 0, maxScroll)
}

// tick advances every row's settle and applies actions whose close finished,
// so a deleted row never vanishes while visibly open.
func (m *notesModel) tick() bool {
	animating := false
	for _, r := range m.rows {
		if r.ctrl.Tick() {
			animating = true
		}
	}
	for _, p := range m.pending {
		m.apply(p)
	}
	m.pending = m.pending[:0]
	return animating
}

func (m *notesModel) apply(p pendingAction) {
	idx := m.indexOf(p.noteID)
	if idx < 0 {
		return
	}
	row := m.rows[idx]
	switch p.action {
	case core.RevealActionEdit:
		m.events = append(m.events, fmt.Sprintf("editing %q", row.title))
	case core.RevealActionDelete:
		m.registry.Remove(row.id)
		m.rows = append(m.rows[:idx], m.rows[idx+1:]...)
		m.cursor = clampInt(m.cursor, 0, maxInt(len(m.rows)-1, 0))
		m.scrollBy(0)
		m.events = append(m.events, fmt.Sprintf("deleted %q", row.title))
	}
}

func (m *notesModel) animating() bool {
	for _, r := range m.rows {
		if r.ctrl.Animating() {
			return true
		}
	}
	return false
}

func (m *notesModel) drainEvents() []string {
	ev := m.events
	m.events = nil
	return ev
}

func (m *notesModel) view(width, height int) string {
	if len(m.rows) == 0 {
		return hintStyle.Render("  no notes — every contact starts somewhere")
	}
	visible := maxInt(height/rowHeight, 1)
	end := minInt(m.scroll+visible, len(m.rows))
	var b strings.Builder
	for i := m.scroll; i < end; i++ {
		r := m.rows[i]
		b.WriteString(widgets.Row{
			Title:      r.title,
			Body:       r.body,
			Offset:     r.ctrl.Offset(),
			PanelWidth: m.cfg.UI.PanelWidth,
			Selected:   i == m.cursor,
		}.Render(width))
		b.WriteString("\n")
		if i != end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
