package beam

import (
	"math"

	"github.com/dsemenov/retrocade/internal/core"
)

// MagnetKind identifies one of the six magnets in every lattice section.
type MagnetKind int

const (
	MagnetQF MagnetKind = iota // Focusing quad: focuses X, defocuses Y
	MagnetD1                   // First bending dipole
	MagnetQD                   // Defocusing quad: defocuses X, focuses Y
	MagnetD2                   // Second bending dipole
	MagnetVT                   // Vertical trim dipole
	MagnetHT                   // Horizontal trim dipole
)

// magnetsPerSection is the fixed FODO cell layout: QF D1 QD D2 VT HT.
const magnetsPerSection = 6

var magnetLabels = [magnetsPerSection]string{"QF", "D1", "QD", "D2", "VT", "HT"}

// Label returns the two-letter magnet name shown on the console.
func (k MagnetKind) Label() string {
	return magnetLabels[k]
}

// kindOf maps a flat magnet index to its kind.
func kindOf(idx int) MagnetKind {
	return MagnetKind(idx % magnetsPerSection)
}

// restriction is a half-plane aperture cut in one section. The beam
// center may not stray past the cut on the blocked side while crossing
// that section.
type restriction struct {
	Section  int
	Vertical bool // Cuts the Y plane instead of X
	Positive bool // Blocks the positive side
}

// trips reports whether the beam center violates the cut.
func (r *restriction) trips(x, y, size float64) bool {
	val := x
	if r.Vertical {
		val = y
	}
	if r.Positive {
		return val > size
	}
	return val < -size
}

// beamState is the live particle bunch: position, angle and envelope
// size in both planes, plus its place in the lattice.
type beamState struct {
	Running bool

	X, Angle, Size   float64
	Y, YAngle, YSize float64
	Section, Element int
	Progress, Losses float64
}

// applyElement runs the thin-lens transfer map of the magnet the beam is
// crossing. Quads trade focusing between planes, dipoles bend by their
// error from the design power, trims kick the angle directly.
func (g *Game) applyElement() {
	b := &g.beam
	idx := b.Section*magnetsPerSection + b.Element
	power := g.powers[idx]
	lat := &g.cfg.Lattice

	switch kindOf(idx) {
	case MagnetQF:
		b.Angle -= power * b.X
		b.Size = math.Max(b.Size*(1.0-math.Abs(power)*0.5), 1.0)
		b.YAngle += power * b.Y
		b.YSize = math.Min(b.YSize*(1.0+math.Abs(power)*0.3), lat.Aperture*2)
	case MagnetD1, MagnetD2:
		// The beam wants to go straight; only the design bend keeps it
		// on the ring. Anything else walks the orbit outward.
		b.Angle += power - lat.DesignDipole
		b.X += b.Angle * 2.0
		b.Y += b.YAngle * 0.5
	case MagnetQD:
		b.Angle += power * b.X
		b.Size = math.Min(b.Size*(1.0+math.Abs(power)*0.3), lat.Aperture*2)
		b.YAngle -= power * b.Y
		b.YSize = math.Max(b.YSize*(1.0-math.Abs(power)*0.5), 1.0)
	case MagnetVT:
		b.YAngle += power
		b.Y += b.YAngle
	case MagnetHT:
		b.Angle += power
		b.X += b.Angle
	}

	// Drift between elements
	b.X += b.Angle * 0.5
	b.Y += b.YAngle * 0.3

	// Phase instability on the hard lattice
	if lat.SizeGrowth > 0 {
		b.Size += lat.SizeGrowth
		b.YSize += lat.SizeGrowth
	}
}

// advanceBeam moves the bunch one progress quantum and, on element
// boundaries, applies the transfer map and the loss model.
func (g *Game) advanceBeam() {
	b := &g.beam
	lat := &g.cfg.Lattice

	b.Progress += lat.ProgressPerTick
	if b.Progress < 1.0 {
		return
	}
	b.Progress = 0
	g.applyElement()

	// Hard wall
	if math.Abs(b.X) > lat.Aperture || math.Abs(b.Y) > lat.Aperture {
		g.beamLost("hit the aperture wall")
		return
	}

	// Scraping: beam edges past the loss zone shave off intensity
	loss := 0.0
	if edge := b.X + b.Size*0.5; edge > lat.LossZone {
		loss += (edge - lat.LossZone) * 0.5
	}
	if edge := b.X - b.Size*0.5; edge < -lat.LossZone {
		loss += (-edge - lat.LossZone) * 0.5
	}
	if edge := b.Y + b.YSize*0.5; edge > lat.LossZone {
		loss += (edge - lat.LossZone) * 0.5
	}
	if edge := b.Y - b.YSize*0.5; edge < -lat.LossZone {
		loss += (-edge - lat.LossZone) * 0.5
	}
	b.Losses += loss
	if b.Losses >= lat.MaxLosses {
		g.beamLost("losses exceeded the budget")
		return
	}

	for i := range g.restrictions {
		r := &g.restrictions[i]
		if b.Section == r.Section && r.trips(b.X, b.Y, lat.RestrictionSize) {
			g.beamLost("hit a section restriction")
			return
		}
	}

	b.Element++
	if b.Element < magnetsPerSection {
		return
	}
	b.Element = 0

	g.trail = append(g.trail, trailPoint{Section: b.Section, X: b.X, Size: b.Size})
	if len(g.trail) > g.cfg.Lattice.Sections*3 {
		g.trail = g.trail[1:]
	}

	b.Section++
	if b.Section < g.cfg.Lattice.Sections {
		return
	}
	b.Section = 0
	g.turns++
	if g.turns > g.bestTurns {
		g.bestTurns = g.turns
	}
	if g.turns >= lat.GoalTurns {
		g.phase = core.PhaseWon
	}
}

// recordHistory samples the beam for the stability score and the
// position bars.
func (g *Game) recordHistory() {
	b := &g.beam
	g.posHist = pushSample(g.posHist, b.X)
	g.sizeHist = pushSample(g.sizeHist, b.Size)
	g.yPosHist = pushSample(g.yPosHist, b.Y)
	g.ySizeHist = pushSample(g.ySizeHist, b.YSize)
}

const maxHistory = 60

func pushSample(s []float64, v float64) []float64 {
	s = append(s, v)
	if len(s) > maxHistory {
		s = s[1:]
	}
	return s
}

// stabilityScore rates how centered and small the beam has been, 0-100.
// Position is weighted over size in both planes.
func (g *Game) stabilityScore() float64 {
	if len(g.posHist) == 0 {
		return 0
	}
	ap := g.cfg.Lattice.Aperture
	xPos := math.Max(1.0-meanAbs(g.posHist)/ap, 0)
	xSize := math.Max(1.0-mean(g.sizeHist)/ap, 0)
	yPos := math.Max(1.0-meanAbs(g.yPosHist)/ap, 0)
	ySize := math.Max(1.0-mean(g.ySizeHist)/ap, 0)
	x := xPos*0.6 + xSize*0.4
	y := yPos*0.6 + ySize*0.4
	return (x + y) * 0.5 * 100.0
}

func mean(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s {
		sum += v
	}
	return sum / float64(len(s))
}

func meanAbs(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s {
		sum += math.Abs(v)
	}
	return sum / float64(len(s))
}
