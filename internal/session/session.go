// Package session owns the single active game of a player session.
// It routes buffered input and ticks to the game, and reports a finished
// score to the score sink exactly once per game-over transition.
// Both the Bubble Tea platform and the headless loop drive a Session.
package session

import (
	"time"

	"github.com/dsemenov/retrocade/internal/core"
	"github.com/dsemenov/retrocade/internal/registry"
)

// ScoreSink receives final scores. Implemented by storage.Store.
type ScoreSink interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Session holds at most one active game and the input buffered for the
// next tick. Methods are not safe for concurrent use; the driver (Bubble
// Tea update loop or session.Loop) serializes access.
type Session struct {
	sink     ScoreSink
	cfg      core.RuntimeConfig
	baseSeed int64 // seed from the CLI; 0 means reseed from the clock
	game     registry.Game
	frame    core.InputFrame
	last     core.GameState
	recorded bool
	quitting bool
}

// New creates an empty session. Select attaches a game.
func New(sink ScoreSink, cfg core.RuntimeConfig) *Session {
	s := &Session{
		sink:     sink,
		cfg:      cfg,
		baseSeed: cfg.Seed,
		frame:    core.NewInputFrame(),
	}
	if s.cfg.Seed == 0 {
		s.cfg.Seed = time.Now().UnixNano()
	}
	return s
}

// Select replaces the active game with a fresh instance of the given ID.
// The previous game is dropped first; the score guard is cleared.
func (s *Session) Select(id string) error {
	g, err := registry.Create(id)
	if err != nil {
		return err
	}
	s.game = nil
	s.reseed()
	g.Reset(s.cfg)
	s.game = g
	s.last = g.State()
	s.recorded = false
	s.frame.Clear()
	return nil
}

// Game returns the active game, or nil if none is selected.
func (s *Session) Game() registry.Game {
	return s.game
}

// State returns the state reported by the last tick.
func (s *Session) State() core.GameState {
	return s.last
}

// Config returns the runtime config games are reset with.
func (s *Session) Config() core.RuntimeConfig {
	return s.cfg
}

// Quitting reports whether a quit action was observed. The driver checks
// this at cycle boundaries; the simulation is never interrupted mid-tick.
func (s *Session) Quitting() bool {
	return s.quitting
}

// HandleInput buffers one action for the next tick. Input always lands in
// the tick that follows it, never an earlier one.
func (s *Session) HandleInput(a core.Action) {
	if a == core.ActionQuit {
		s.quitting = true
		return
	}
	s.frame.Set(a)
}

// Tick advances the active game by one step using the buffered input,
// then clears the buffer. A Reset action restarts the game instead of
// stepping it. Returns the resulting state.
func (s *Session) Tick() core.GameState {
	if s.game == nil {
		return core.GameState{}
	}

	if s.frame.Has(core.ActionReset) {
		s.Reset()
		return s.last
	}

	prev := s.last
	result := s.game.Step(s.frame)
	s.last = result.State
	s.frame.Clear()

	// Exactly one score write per Running -> Won/Lost transition.
	if s.last.Over() && !prev.Over() && !s.recorded {
		s.recorded = true
		if s.sink != nil && s.last.Score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			s.sink.SaveScore(s.game.ID(), s.last.Score)
		}
	}

	return s.last
}

// Reset restarts the active game from scratch and clears the score guard.
func (s *Session) Reset() {
	if s.game == nil {
		return
	}
	s.reseed()
	s.game.Reset(s.cfg)
	s.last = s.game.State()
	s.recorded = false
	s.frame.Clear()
}

// Resize updates the screen dimensions. A game in progress is restarted
// with the new size; a finished game keeps its final board.
func (s *Session) Resize(w, h int) {
	s.cfg.ScreenW = w
	s.cfg.ScreenH = h
	if s.game != nil && !s.last.Over() {
		s.game.Reset(s.cfg)
		s.last = s.game.State()
		s.recorded = false
	}
}

// reseed picks a new seed for the next game unless one was pinned on the
// command line, in which case every restart replays the same world.
func (s *Session) reseed() {
	if s.baseSeed != 0 {
		s.cfg.Seed = s.baseSeed
		return
	}
	s.cfg.Seed = time.Now().UnixNano()
}
