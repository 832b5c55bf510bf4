package jezzball

import "math"

// Snapshot contains the complete game state as primitives for
// determinism comparisons.
type Snapshot struct {
	Tick     int
	Score    int
	Lives    int
	Level    int
	Phase    string
	CursorX  int
	CursorY  int
	Vertical bool
	GridData []int // Cell values row-major
	BallData []float64
	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	grid := make([]int, 0, g.cfg.Width*g.cfg.Height)
	for _, row := range g.grid {
		for _, c := range row {
			grid = append(grid, int(c))
		}
	}

	balls := make([]float64, 0, len(g.balls)*4)
	for _, b := range g.balls {
		balls = append(balls, b.X, b.Y, b.VX, b.VY)
	}

	return Snapshot{
		Tick:     g.tickCount,
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.level,
		Phase:    g.phase.String(),
		CursorX:  g.cursorX,
		CursorY:  g.cursorY,
		Vertical: g.vertical,
		GridData: grid,
		BallData: balls,
		RNGState: g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CursorX) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CursorY) //#nosec G115 -- hash computation
	if snap.Vertical {
		h = h*31 + 1
	}
	for _, v := range snap.GridData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}
	h = h*31 + snap.RNGState
	return h
}
