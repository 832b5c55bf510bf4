package tui

import (
	"testing"
	"time"
)

func TestNextDeadlineAnchorsToPreviousDeadline(t *testing.T) {
	interval := 33 * time.Millisecond
	prev := time.Unix(1000, 0)

	// A frame that finished inside its budget keeps the original cadence
	next := nextDeadline(prev, prev.Add(10*time.Millisecond), interval)
	if !next.Equal(prev.Add(interval)) {
		t.Errorf("Fast frame should schedule from the deadline, got %v", next.Sub(prev))
	}

	// Processing that eats the whole budget still keeps the cadence
	next = nextDeadline(prev, prev.Add(interval), interval)
	if !next.Equal(prev.Add(interval)) {
		t.Errorf("On-time frame should not shift the cadence, got %v", next.Sub(prev))
	}
}

func TestNextDeadlineNoCatchUp(t *testing.T) {
	interval := 33 * time.Millisecond
	prev := time.Unix(1000, 0)

	// Overrunning a full period restarts the cadence from now instead
	// of replaying the missed ticks.
	now := prev.Add(3 * interval)
	next := nextDeadline(prev, now, interval)
	if !next.Equal(now.Add(interval)) {
		t.Errorf("Overrun should reschedule from now, got %v after prev", next.Sub(prev))
	}
}

func TestTickInterval(t *testing.T) {
	if got := tickInterval(30); got != time.Second/30 {
		t.Errorf("tickInterval(30) = %v", got)
	}
	if got := tickInterval(0); got != time.Second/30 {
		t.Errorf("Non-positive rate should fall back to the default, got %v", got)
	}
}
