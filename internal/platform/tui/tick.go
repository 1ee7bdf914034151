// Package tui provides the Bubble Tea front end for the snake game.
// It maps keys to signals, renders the board and runs the game's timers on
// the program's event loop.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/sched"
)

// timerMsg carries a due timer into Update, where it runs.
type timerMsg struct {
	fired sched.Fired
}

// queueClosedMsg ends the listen loop.
type queueClosedMsg struct{}

// listen waits for the next due timer on q. Update re-issues it after every
// timerMsg, so exactly one listener is outstanding.
func listen(q *sched.Queue) tea.Cmd {
	return func() tea.Msg {
		select {
		case f := <-q.C():
			return timerMsg{fired: f}
		case <-q.Done():
			return queueClosedMsg{}
		}
	}
}
