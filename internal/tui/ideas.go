package tui

import (
	"fmt"
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/glide/core"
	"github.com/jask/glide/core/widgets"
	"github.com/jask/glide/internal/config"
)

const (
	cardBaseWidth  = 26
	cardBaseHeight = 9
)

// Idea is seed content for one date-idea card.
type Idea struct {
	Title  string
	Body   string
	Accent string
}

// ideasModel hosts the drag-paged carousel. The deck sits inside a
// vertically scrollable screen, so it claims pointers with the arbiter's
// stricter early rule to win them before the scroller moves.
type ideasModel struct {
	cfg     config.Config
	cards   []Idea
	ctrl    *core.CarouselController
	arbiter *core.Arbiter
	tracker *pointerTracker
	claimed bool
	events  []string

	// lastWidth remembers the most recent render width for tap hit-testing.
	lastWidth int
}

const deckControllerID core.ControllerID = "ideas-deck"

func newIdeasModel(cfg config.Config, arbiter *core.Arbiter, cards []Idea) *ideasModel {
	m := &ideasModel{
		cfg:     cfg,
		cards:   cards,
		arbiter: arbiter,
		tracker: newPointerTracker(),
	}
	spacing := float64(cfg.UI.CardSpacing)
	ctrl, err := core.NewCarouselController(core.CarouselConfig{
		CardCount:         maxInt(len(cards), 1),
		CardSpacing:       spacing,
		DistanceThreshold: cfg.Gesture.DistanceFraction * spacing,
		Spring: core.SpringConfig{
			FPS:       cfg.Spring.FPS,
			Frequency: cfg.Spring.Frequency,
			Damping:   cfg.Spring.Damping,
		},
		OnActiveIndexChanged: func(i int) {
			m.events = append(m.events, fmt.Sprintf("idea %d of %d", i+1, len(cards)))
		},
	})
	if err != nil {
		panic(err)
	}
	m.ctrl = ctrl
	return m
}

func (m *ideasModel) handleMouse(msg tea.MouseMsg, y int) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.tracker.Begin(msg.X, y)
			m.claimed = false
		}
	case tea.MouseActionMotion:
		if !m.tracker.Active() {
			return
		}
		s := m.tracker.Move(msg.X, y)
		if m.claimed {
			m.ctrl.Drag(s)
			return
		}
		if m.arbiter.ShouldClaimEarly(s) && m.arbiter.Claim(mousePointer, deckControllerID) {
			m.claimed = true
			m.ctrl.BeginDrag()
			m.ctrl.Drag(s)
		}
	case tea.MouseActionRelease:
		if !m.tracker.Active() {
			return
		}
		s := m.tracker.End(msg.X, y)
		if m.claimed {
			m.ctrl.Release(s)
			m.arbiter.Release(mousePointer)
			m.claimed = false
			return
		}
		// A tap beside the active card pages toward the tapped side.
		m.tapAt(msg.X)
	}
}

func (m *ideasModel) cancelGesture() {
	if !m.tracker.Active() {
		return
	}
	m.tracker.Cancel()
	if m.claimed {
		m.ctrl.Cancel()
		m.arbiter.Release(mousePointer)
		m.claimed = false
	}
}

// tapAt pages one card toward the side of the deck that was tapped.
func (m *ideasModel) tapAt(x int) {
	center := m.lastWidth / 2
	switch {
	case x < center-cardBaseWidth/2:
		m.ctrl.GoTo(m.ctrl.ActiveIndex() - 1)
	case x > center+cardBaseWidth/2:
		m.ctrl.GoTo(m.ctrl.ActiveIndex() + 1)
	}
}

func (m *ideasModel) handleKey(msg tea.KeyMsg, keys keyMap) {
	switch {
	case keyMatches(msg, keys.Left):
		m.ctrl.GoTo(m.ctrl.ActiveIndex() - 1)
	case keyMatches(msg, keys.Right):
		m.ctrl.GoTo(m.ctrl.ActiveIndex() + 1)
	}
}

func (m *ideasModel) tick() bool {
	return m.ctrl.Tick()
}

func (m *ideasModel) animating() bool {
	return m.ctrl.Animating()
}

func (m *ideasModel) drainEvents() []string {
	ev := m.events
	m.events = nil
	return ev
}

func (m *ideasModel) view(width, height int) string {
	m.lastWidth = width
	if len(m.cards) == 0 {
		return hintStyle.Render("  no ideas yet")
	}
	center := width / 2
	placed := make([]widgets.PlacedCard, 0, len(m.cards))
	for _, i := range m.ctrl.ZOrder() {
		tr := m.ctrl.TransformFor(i)
		if !tr.Visible {
			continue
		}
		card := widgets.Card{
			Title:      m.cards[i].Title,
			Body:       m.cards[i].Body,
			Accent:     m.cards[i].Accent,
			Scale:      tr.Scale,
			BaseWidth:  cardBaseWidth,
			BaseHeight: cardBaseHeight,
			Active:     i == m.ctrl.ActiveIndex(),
		}
		w := int(math.Round(float64(cardBaseWidth) * tr.Scale))
		placed = append(placed, widgets.PlacedCard{
			Content: card.Render(),
			X:       center + int(math.Round(tr.Translate)) - w/2,
		})
	}
	deck := widgets.Composite(width, minInt(cardBaseHeight, height), placed)
	counter := hintStyle.Render(fmt.Sprintf("  %d / %d", m.ctrl.ActiveIndex()+1, len(m.cards)))
	return deck + "\n" + counter
}
