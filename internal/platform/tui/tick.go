// Package tui provides the Bubble Tea integration for brickout. It drives
// the frame loop, maps terminal input into the simulation, and renders the
// playfield onto the terminal cell grid.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per frame and carries the frame's timestamp. The
// model derives the simulation dt from consecutive timestamps, so a stalled
// terminal produces one large (clamped) step instead of a burst.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the
// specified rate.
func frameCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
