// Package tui provides the Bubble Tea host for the snake game.
// It handles the terminal UI loop, input mapping, and frame timing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// maxFrameDelta caps the elapsed time fed into one update, so a stalled
// terminal does not replay many movement ticks at once.
const maxFrameDelta = 0.25

// TickMsg is sent to trigger a frame update.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two frames, clamped to [0, maxFrameDelta].
// The first frame (zero last) has no elapsed time.
func frameDelta(last, now time.Time) float64 {
	if last.IsZero() {
		return 0
	}
	return core.ClampF(now.Sub(last).Seconds(), 0, maxFrameDelta)
}
