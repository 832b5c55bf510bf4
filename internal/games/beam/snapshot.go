package beam

import "math"

// Snapshot contains the complete game state as primitives for
// determinism comparisons.
type Snapshot struct {
	Tick     int
	Turns    int
	Phase    string
	Selected int
	Ramp     int
	Step     float64
	BeamX    float64
	BeamY    float64
	Losses   float64
	RampData []float64 // Every ramp point, magnet-major
	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	ramps := make([]float64, 0, g.totalMagnets*g.cfg.Controls.NumRamps)
	for _, r := range g.ramps {
		ramps = append(ramps, r...)
	}

	return Snapshot{
		Tick:     g.tickCount,
		Turns:    g.turns,
		Phase:    g.phase.String(),
		Selected: g.selected,
		Ramp:     g.selectedRamp,
		Step:     g.step,
		BeamX:    g.beam.X,
		BeamY:    g.beam.Y,
		Losses:   g.beam.Losses,
		RampData: ramps,
		RNGState: g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)
	h = h*31 + uint64(snap.Turns)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Selected) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Ramp)     //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Step)
	h = h*31 + math.Float64bits(snap.BeamX)
	h = h*31 + math.Float64bits(snap.BeamY)
	h = h*31 + math.Float64bits(snap.Losses)
	for _, v := range snap.RampData {
		h = h*31 + math.Float64bits(v)
	}
	h = h*31 + snap.RNGState
	return h
}
