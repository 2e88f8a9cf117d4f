// Package tui provides the Bubble Tea integration for autosnake.
// It handles the terminal UI loop, input mapping, and frame display. The
// simulation itself runs on the engine scheduler; the UI only pulls the
// latest published frame on its own redraw tick.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFPS is the redraw rate of the terminal view.
const DefaultFPS = 60

// RedrawMsg is sent to trigger a view refresh.
type RedrawMsg time.Time

// redrawCmd returns a Bubble Tea command that sends redraw messages at the specified rate.
func redrawCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return RedrawMsg(t)
	})
}
