package core

import "testing"

func TestPhaseTerminal(t *testing.T) {
	cases := []struct {
		phase    Phase
		terminal bool
	}{
		{PhaseReady, false},
		{PhaseRunning, false},
		{PhasePaused, false},
		{PhaseWon, true},
		{PhaseLost, true},
	}
	for _, c := range cases {
		if c.phase.Terminal() != c.terminal {
			t.Errorf("%v.Terminal() should be %v", c.phase, c.terminal)
		}
		if (GameState{Phase: c.phase}).Over() != c.terminal {
			t.Errorf("GameState{%v}.Over() should be %v", c.phase, c.terminal)
		}
	}
}

func TestPhaseStrings(t *testing.T) {
	phases := []Phase{PhaseReady, PhaseRunning, PhasePaused, PhaseWon, PhaseLost}
	seen := make(map[string]bool)
	for _, p := range phases {
		s := p.String()
		if s == "Unknown" || seen[s] {
			t.Errorf("Phase %d should have a unique name, got %q", p, s)
		}
		seen[s] = true
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TickRate != 30 {
		t.Errorf("Default tick rate should be 30, got %d", cfg.TickRate)
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		t.Error("Default screen size should be positive")
	}
}
