package frogger

import "math"

// Snapshot contains the complete game state as primitives for
// determinism comparisons.
type Snapshot struct {
	Tick     int
	Score    int
	Lives    int
	Phase    string
	FrogRow  int
	FrogX    float64
	BestRow  int
	PadData  []int     // 1 per filled pad, 0 otherwise
	LaneData []float64 // All object positions, lane by lane
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	pads := make([]int, len(g.pads))
	for i, p := range g.pads {
		if p.Filled {
			pads[i] = 1
		}
	}

	var laneData []float64
	for _, lane := range g.lanes {
		laneData = append(laneData, lane.Objects...)
	}

	return Snapshot{
		Tick:     g.tickCount,
		Score:    g.score,
		Lives:    g.lives,
		Phase:    g.phase.String(),
		FrogRow:  g.frogRow,
		FrogX:    g.frogX,
		BestRow:  g.bestRow,
		PadData:  pads,
		LaneData: laneData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)
	h = h*31 + uint64(snap.Score)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FrogRow) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BestRow) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.FrogX)
	for _, v := range snap.PadData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.LaneData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
