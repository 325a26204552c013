// Package tui runs the game in a terminal through Bubble Tea, locally or
// over SSH via Wish, and browses the replay journal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the animation step after a stall.
const maxFrameDelta = 100 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the time since the previous tick, clamped to
// (0, maxFrameDelta]. The first tick uses the nominal interval.
func frameDelta(prev, now time.Time, tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	nominal := time.Second / time.Duration(tickRate)
	if prev.IsZero() {
		return nominal
	}
	dt := now.Sub(prev)
	if dt <= 0 {
		return nominal
	}
	return min(dt, maxFrameDelta)
}
