package pinball

import "math"

// Snapshot contains the complete game state as primitives for
// determinism comparisons.
type Snapshot struct {
	Tick      int
	Score     int
	BallsLeft int
	Phase     string
	Power     float64
	Combo     int
	BallData  []float64 // x, y, vx, vy per active ball
	RNGState  uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	balls := make([]float64, 0, len(g.balls)*4)
	for i := range g.balls {
		b := &g.balls[i]
		balls = append(balls, b.X, b.Y, b.VX, b.VY)
	}

	return Snapshot{
		Tick:      g.tickCount,
		Score:     g.score,
		BallsLeft: g.ballsLeft,
		Phase:     g.phase.String(),
		Power:     g.power,
		Combo:     g.comboCount,
		BallData:  balls,
		RNGState:  g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallsLeft) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Combo)     //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Power)
	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}
	h = h*31 + snap.RNGState
	return h
}
