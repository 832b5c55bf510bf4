// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the deadline a simulation tick fired for. The next tick
// is scheduled from this deadline rather than from when the frame finished
// rendering, so per-frame processing time does not accumulate as drift.
type TickMsg time.Time

// tickCmd returns a command that sleeps until the deadline, then reports it.
func tickCmd(deadline time.Time) tea.Cmd {
	return func() tea.Msg {
		if wait := time.Until(deadline); wait > 0 {
			time.Sleep(wait)
		}
		return TickMsg(deadline)
	}
}

// nextDeadline schedules the tick after one that fired at prev. Overrunning
// a full period restarts the cadence from now; missed ticks are never
// replayed.
func nextDeadline(prev, now time.Time, interval time.Duration) time.Time {
	if now.After(prev.Add(interval)) {
		return now.Add(interval)
	}
	return prev.Add(interval)
}

// tickInterval converts a tick rate to the period between deadlines.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 30
	}
	return time.Second / time.Duration(tickRate)
}
