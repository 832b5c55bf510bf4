package breakout

import "math"

// Snapshot contains the complete game state as primitives, used by the
// determinism tests to compare two runs field by field.
type Snapshot struct {
	Tick      int
	Score     int
	Lives     int
	Phase     string
	PaddleX   float64
	BallX     float64
	BallY     float64
	BallVX    float64
	BallVY    float64
	BallSpeed float64
	Stuck     bool
	Remaining int
	BrickData []int // Flattened row-major alive flags
	RNGState  uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int, 0, len(g.bricks)*len(g.bricks[0]))
	for _, row := range g.bricks {
		for _, alive := range row {
			if alive {
				brickData = append(brickData, 1)
			} else {
				brickData = append(brickData, 0)
			}
		}
	}

	return Snapshot{
		Tick:      g.tickCount,
		Score:     g.score,
		Lives:     g.lives,
		Phase:     g.phase.String(),
		PaddleX:   g.paddleX,
		BallX:     g.ballX,
		BallY:     g.ballY,
		BallVX:    g.ballVX,
		BallVY:    g.ballVY,
		BallSpeed: g.ballSpeed,
		Stuck:     g.stuck,
		Remaining: g.remaining,
		BrickData: brickData,
		RNGState:  g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Remaining) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)
	h = h*31 + math.Float64bits(snap.BallSpeed)
	if snap.Stuck {
		h = h*31 + 1
	}
	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	h = h*31 + snap.RNGState
	return h
}
