package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg drives in-flight settle animations. Frames are only scheduled
// while some spring is live; an idle app receives no ticks.
type frameMsg time.Time

func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
