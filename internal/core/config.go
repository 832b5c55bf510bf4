package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the lifecycle state of a game. Transitions only move forward:
// Ready -> Running -> Won or Lost. Paused is reachable from Running only
// and always returns to Running. Reset starts a fresh Ready game.
type Phase int

const (
	PhaseReady Phase = iota
	PhaseRunning
	PhasePaused
	PhaseWon
	PhaseLost
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "Ready"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseWon:
		return "Won"
	case PhaseLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Terminal returns true for the two end states.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score int   // Current score
	Phase Phase // Lifecycle phase
}

// Over returns true once the game reached Won or Lost.
func (s GameState) Over() bool {
	return s.Phase.Terminal()
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
