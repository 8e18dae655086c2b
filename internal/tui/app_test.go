package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) *App {
	t.Helper()
	a := New(testConfig(),
		[]Note{{Title: "anniversary", Body: "book the table"}, {Title: "gift", Body: "the blue one"}},
		[]Idea{{Title: "picnic"}, {Title: "gallery"}, {Title: "night walk"}},
	)
	clock := &fakeClock{t: time.Unix(0, 0), step: 10 * time.Millisecond}
	a.notes.tracker.now = clock.now
	a.ideas.tracker.now = clock.now
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return a
}

// pumpFrames feeds frame messages until the app stops re-arming its tick,
// the same loop the bubbletea runtime would drive.
func pumpFrames(t *testing.T, a *App) {
	t.Helper()
	for i := 0; i < 2000; i++ {
		if !a.ticking {
			return
		}
		a.Update(frameMsg(time.Unix(0, 0)))
	}
	t.Fatal("app never stopped ticking")
}

func TestAppQuitKey(t *testing.T) {
	t.Parallel()

	a := testApp(t)
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppTabSwitchRoutesKeys(t *testing.T) {
	t.Parallel()

	a := testApp(t)
	require.Equal(t, tabNotes, a.tab)

	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, tabIdeas, a.tab)

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	require.NotNil(t, cmd) // paging starts a settle, which starts the frame loop
	require.True(t, a.ticking)
	pumpFrames(t, a)
	require.Equal(t, 1, a.ideas.ctrl.ActiveIndex())
	require.Contains(t, a.status, "idea 2 of 3")

	a.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, tabNotes, a.tab)
}

func TestAppFrameLoopStopsWhenSettled(t *testing.T) {
	t.Parallel()

	a := testApp(t)
	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})
	require.True(t, a.ticking)
	pumpFrames(t, a)

	require.False(t, a.ticking)
	require.True(t, a.notes.rows[0].ctrl.Open())

	// A frame arriving after everything settled does not re-arm the loop.
	_, cmd := a.Update(frameMsg(time.Unix(0, 0)))
	require.Nil(t, cmd)
}

func TestAppMouseIsOffsetByHeader(t *testing.T) {
	t.Parallel()

	a := testApp(t)
	// Screen y for the second row: header rows come first.
	y := headerHeight + rowHeight
	a.Update(tea.MouseMsg{X: 30, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	a.Update(tea.MouseMsg{X: 30, Y: y, Action: tea.MouseActionRelease})
	require.Equal(t, 1, a.notes.cursor)
}

func TestAppSwitchTabCancelsLiveGesture(t *testing.T) {
	t.Parallel()

	a := testApp(t)
	y := headerHeight
	a.Update(tea.MouseMsg{X: 50, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	for x := 49; x >= 40; x-- {
		a.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	}
	require.True(t, a.notes.claimed)

	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, tabIdeas, a.tab)
	require.False(t, a.notes.claimed)
	_, owned := a.notes.arbiter.Owner(mousePointer)
	require.False(t, owned)

	pumpFrames(t, a)
	// 10 cells is past the open threshold, so the interrupted drag commits.
	require.True(t, a.notes.rows[0].ctrl.Open())
}

func TestAppViewCarriesChrome(t *testing.T) {
	t.Parallel()

	a := testApp(t)
	out := a.View()
	require.Contains(t, out, "Notes")
	require.Contains(t, out, "Date ideas")
	require.Contains(t, out, "anniversary")
	require.Contains(t, out, "quit")
}
