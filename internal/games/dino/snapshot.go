package dino

import "math"

// Snapshot contains the complete game state as primitives for
// determinism comparisons.
type Snapshot struct {
	Tick          int
	Score         int
	Phase         string
	PlayerY       float64
	PlayerVel     float64
	PlayerState   int
	DuckLeft      int
	Speed         float64
	SpawnIn       int
	ObstacleCount int
	ObstacleData  []int // Kind, X (cell), W, H, Altitude per obstacle
	RNGState      uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	obs := g.obstacles.All()
	data := make([]int, 0, len(obs)*5)
	for _, o := range obs {
		data = append(data, int(o.Kind), int(o.X*16), o.W, o.H, o.Altitude)
	}

	return Snapshot{
		Tick:          g.tickCount,
		Score:         g.score,
		Phase:         g.phase.String(),
		PlayerY:       g.playerY,
		PlayerVel:     g.playerVel,
		PlayerState:   int(g.state),
		DuckLeft:      g.duckLeft,
		Speed:         g.speed,
		SpawnIn:       g.obstacles.spawnIn,
		ObstacleCount: len(obs),
		ObstacleData:  data,
		RNGState:      g.obstacles.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerState)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ObstacleCount) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.PlayerVel)
	h = h*31 + math.Float64bits(snap.Speed)
	for _, v := range snap.ObstacleData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	h = h*31 + snap.RNGState
	return h
}
