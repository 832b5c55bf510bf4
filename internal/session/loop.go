package session

import (
	"context"
	"time"

	"github.com/dsemenov/retrocade/internal/core"
)

// Loop drives a Session at a fixed cadence without a terminal attached.
// Each cycle polls at most one queued action with the remaining tick
// budget as timeout, dispatches it, then ticks at the deadline. When a
// tick overruns its budget the next one fires immediately and scheduling
// restarts from now; missed ticks are never replayed, so wall-clock pace
// degrades before simulation correctness does.
type Loop struct {
	session  *Session
	interval time.Duration
	inputs   <-chan core.Action
	onTick   func(n int, st core.GameState) bool
}

// NewLoop creates a loop ticking the session tickRate times per second.
// inputs may be nil for an input-less run.
func NewLoop(s *Session, tickRate int, inputs <-chan core.Action) *Loop {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return &Loop{
		session:  s,
		interval: time.Second / time.Duration(tickRate),
		inputs:   inputs,
	}
}

// OnTick installs a callback invoked after every tick with the tick
// ordinal (starting at 1) and the resulting state. Returning false stops
// the loop after the current cycle.
func (l *Loop) OnTick(fn func(n int, st core.GameState) bool) {
	l.onTick = fn
}

// Run executes the loop until the context is canceled, a quit action is
// observed, or the OnTick callback asks to stop.
func (l *Loop) Run(ctx context.Context) error {
	n := 0
	next := time.Now().Add(l.interval)

	for {
		if l.session.Quitting() {
			return nil
		}

		// Poll one action, blocking at most until the tick deadline.
		// Input dispatched here lands in the tick below, never later.
		if wait := time.Until(next); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case a, ok := <-l.inputs:
				timer.Stop()
				if ok {
					l.session.HandleInput(a)
				}
			case <-timer.C:
			}
		} else {
			// Already past the deadline: take a pending action if one
			// is queued, but do not wait for one.
			select {
			case a, ok := <-l.inputs:
				if ok {
					l.session.HandleInput(a)
				}
			default:
			}
		}

		// An early action leaves budget on the clock; sleep it off so
		// the tick still fires at its deadline.
		if rem := time.Until(next); rem > 0 {
			timer := time.NewTimer(rem)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}

		n++
		st := l.session.Tick()
		if l.onTick != nil && !l.onTick(n, st) {
			return nil
		}

		now := time.Now()
		if now.After(next.Add(l.interval)) {
			next = now.Add(l.interval) // overran a full period: no catch-up
		} else {
			next = next.Add(l.interval)
		}
	}
}
