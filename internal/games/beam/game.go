// Package beam implements the accelerator control game: the player tunes
// a ring of 24 FODO sections (quads, dipoles, trim magnets) so a particle
// beam survives five full turns. Magnet powers follow per-turn ramp
// points; closed-orbit bumps move the beam locally without leaking angle
// into the rest of the ring.
package beam

import (
	"fmt"
	"math"

	"github.com/dsemenov/retrocade/internal/config"
	"github.com/dsemenov/retrocade/internal/core"
	"github.com/dsemenov/retrocade/internal/registry"
)

// bumpState is an active closed-orbit bump: a window of consecutive
// sections whose trim coefficients sum to zero.
type bumpState struct {
	Size  int // 3, 4 or 5 sections
	Start int
}

// coefficients returns the sign pattern for the bump window. The sums
// cancel so the kick stays local.
func (b *bumpState) coefficients() []float64 {
	switch b.Size {
	case 3:
		return []float64{1, -2, 1}
	case 4:
		return []float64{1, -1, -1, 1}
	case 5:
		return []float64{1, -2, 2, -2, 1}
	}
	return nil
}

// trailPoint is one sampled beam pass for the ring display.
type trailPoint struct {
	Section int
	X, Size float64
}

// Game implements the Beam game logic.
type Game struct {
	cfg     config.BeamConfig
	runtime core.RuntimeConfig
	rng     *core.SimpleRNG

	phase     core.Phase
	tickCount int

	totalMagnets int
	powers       []float64   // Effective power per magnet
	ramps        [][]float64 // Per-magnet ramp points, one per turn slot
	selected     int
	selectedRamp int
	step         float64
	bump         *bumpState

	restrictions []restriction
	targetX      float64 // Injection offset the operator must steer home
	targetY      float64

	beam       beamState
	turns      int
	bestTurns  int
	lossReason string

	trail     []trailPoint
	posHist   []float64
	sizeHist  []float64
	yPosHist  []float64
	ySizeHist []float64
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// preset selects the lattice difficulty, settable before Reset.
var preset = config.DifficultyEasy

// SetDifficulty picks the lattice preset applied on the next Reset.
func SetDifficulty(p config.DifficultyPreset) {
	preset = p
}

// New creates a new Beam game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "beam"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Beam"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBeam(configPath)
	if err != nil {
		cfg = config.DefaultBeamConfig()
	}
	config.ApplyBeamPreset(&cfg, preset)
	g.cfg = cfg

	g.rng = core.NewSimpleRNG(runtime.Seed)
	g.phase = core.PhaseReady
	g.tickCount = 0

	g.totalMagnets = cfg.Lattice.Sections * magnetsPerSection
	g.powers = make([]float64, g.totalMagnets)
	g.ramps = make([][]float64, g.totalMagnets)
	for i := range g.ramps {
		g.ramps[i] = make([]float64, cfg.Controls.NumRamps)
	}
	g.selected = 0
	g.selectedRamp = 0
	g.step = cfg.Controls.DefaultStep
	g.bump = nil

	g.restrictions = g.rollRestrictions()
	g.targetX = g.rng.Range(-5, 5)
	g.targetY = g.rng.Range(-5, 5)

	g.beam = beamState{}
	g.turns = 0
	g.trail = nil
	g.posHist = nil
	g.sizeHist = nil
	g.yPosHist = nil
	g.ySizeHist = nil
}

// rollRestrictions places the configured number of half-plane cuts on
// distinct sections, split evenly between the planes.
func (g *Game) rollRestrictions() []restriction {
	n := g.cfg.Lattice.Restrictions
	if n <= 0 {
		return nil
	}
	used := make(map[int]bool, n)
	out := make([]restriction, 0, n)
	for len(out) < n {
		s := g.rng.Intn(g.cfg.Lattice.Sections)
		if used[s] {
			continue
		}
		used[s] = true
		out = append(out, restriction{
			Section:  s,
			Vertical: len(out) >= n/2,
			Positive: g.rng.Chance(0.5),
		})
	}
	return out
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase.Terminal() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.phase {
		case core.PhaseRunning:
			g.phase = core.PhasePaused
		case core.PhasePaused:
			g.phase = core.PhaseRunning
		}
	}
	if g.phase == core.PhasePaused {
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)
	if g.phase.Terminal() {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	if g.beam.Running {
		g.syncPowersForTurn()
		for i := 0; i < g.cfg.Lattice.StepsPerTick; i++ {
			if g.phase.Terminal() {
				break
			}
			g.advanceBeam()
		}
		if g.tickCount%3 == 0 {
			g.recordHistory()
		}
	}

	return core.StepResult{State: g.State()}
}

// handleInput runs the operator console for one frame.
func (g *Game) handleInput(in core.InputFrame) {
	if d := in.FirstDigit(); d >= 0 {
		g.selectedRamp = d
		g.syncPowersFromRamp()
	}

	switch {
	case in.Has(core.ActionUp):
		if g.bump != nil {
			g.adjustBumpTrims(g.step)
		} else if g.selected == 0 {
			g.selected = g.totalMagnets - 1
		} else {
			g.selected--
		}
	case in.Has(core.ActionDown):
		if g.bump != nil {
			g.adjustBumpTrims(-g.step)
		} else {
			g.selected = (g.selected + 1) % g.totalMagnets
		}
	case in.Has(core.ActionLeft):
		if g.bump != nil {
			g.bump.Start = (g.bump.Start + g.cfg.Lattice.Sections - 1) % g.cfg.Lattice.Sections
		} else {
			g.adjustRampPower(g.selected, -g.step)
		}
	case in.Has(core.ActionRight):
		if g.bump != nil {
			g.bump.Start = (g.bump.Start + 1) % g.cfg.Lattice.Sections
		} else {
			g.adjustRampPower(g.selected, g.step)
		}
	}

	if in.Has(core.ActionIncreaseStep) {
		g.step = math.Min(g.step*2, g.cfg.Controls.MaxStep)
	}
	if in.Has(core.ActionDecreaseStep) {
		g.step = math.Max(g.step/2, g.cfg.Controls.MinStep)
	}
	if in.Has(core.ActionNextSection) && g.bump == nil {
		g.jumpSection(1)
	}
	if in.Has(core.ActionPrevSection) && g.bump == nil {
		g.jumpSection(-1)
	}
	if in.Has(core.ActionCopyToAll) {
		g.copyToAllSections()
	}
	if in.Has(core.ActionZeroRamp) {
		g.zeroRamp()
	}
	if in.Has(core.ActionZeroAllRamps) {
		g.zeroAllRamps()
	}
	if in.Has(core.ActionToggleBump) {
		g.cycleBump()
	}
	if in.Has(core.ActionPrimary) && !g.beam.Running {
		g.startBeam()
	}
}

// startBeam injects the bunch at the random target offset.
func (g *Game) startBeam() {
	g.beam = beamState{
		Running: true,
		X:       g.targetX,
		Size:    10.0,
		Y:       g.targetY,
		YSize:   10.0,
	}
	g.turns = 0
	g.trail = nil
	g.posHist = nil
	g.sizeHist = nil
	g.yPosHist = nil
	g.ySizeHist = nil
	g.phase = core.PhaseRunning
}

// beamLost ends the run.
func (g *Game) beamLost(reason string) {
	g.beam.Running = false
	g.phase = core.PhaseLost
	g.lossReason = reason
}

// selectedSection and selectedElement split the flat magnet index.
func (g *Game) selectedSection() int { return g.selected / magnetsPerSection }
func (g *Game) selectedElement() int { return g.selected % magnetsPerSection }

// jumpSection moves the selection a whole section, keeping the element.
func (g *Game) jumpSection(delta int) {
	n := g.cfg.Lattice.Sections
	sec := (g.selectedSection() + delta + n) % n
	g.selected = sec*magnetsPerSection + g.selectedElement()
}

// rampForTurn returns a magnet's power for a given turn; turns beyond
// the last ramp point hold its value.
func (g *Game) rampForTurn(idx, turn int) float64 {
	r := core.Min(turn, g.cfg.Controls.NumRamps-1)
	return g.ramps[idx][r]
}

// clampRampValue keeps a ramp point within the allowed delta of its
// neighbors so the supply cannot jump between turns.
func (g *Game) clampRampValue(idx, rampIdx int, v float64) float64 {
	d := g.cfg.Controls.MaxRampDelta
	if rampIdx > 0 {
		prev := g.ramps[idx][rampIdx-1]
		v = core.ClampF(v, prev-d, prev+d)
	}
	if rampIdx < g.cfg.Controls.NumRamps-1 {
		next := g.ramps[idx][rampIdx+1]
		v = core.ClampF(v, next-d, next+d)
	}
	return v
}

// adjustRampPower nudges one magnet's selected ramp point.
func (g *Game) adjustRampPower(idx int, delta float64) {
	v := g.clampRampValue(idx, g.selectedRamp, g.ramps[idx][g.selectedRamp]+delta)
	g.ramps[idx][g.selectedRamp] = v
	g.powers[idx] = v
}

// adjustBumpTrims applies the bump coefficient pattern to both trim
// planes across the bump window.
func (g *Game) adjustBumpTrims(delta float64) {
	n := g.cfg.Lattice.Sections
	for i, c := range g.bump.coefficients() {
		sec := (g.bump.Start + i) % n
		g.adjustRampPower(sec*magnetsPerSection+int(MagnetHT), delta*c)
		g.adjustRampPower(sec*magnetsPerSection+int(MagnetVT), delta*c)
	}
}

// syncPowersFromRamp loads every magnet's display power from the
// selected ramp point.
func (g *Game) syncPowersFromRamp() {
	for i := range g.powers {
		g.powers[i] = g.ramps[i][g.selectedRamp]
	}
}

// syncPowersForTurn loads the effective powers for the running beam's
// current turn.
func (g *Game) syncPowersForTurn() {
	for i := range g.powers {
		g.powers[i] = g.rampForTurn(i, g.turns)
	}
}

// copyToAllSections replicates the selected section's six magnets, with
// all their ramp points, around the whole ring.
func (g *Game) copyToAllSections() {
	src := g.selectedSection() * magnetsPerSection
	for sec := 0; sec < g.cfg.Lattice.Sections; sec++ {
		base := sec * magnetsPerSection
		if base == src {
			continue
		}
		for e := 0; e < magnetsPerSection; e++ {
			copy(g.ramps[base+e], g.ramps[src+e])
			g.powers[base+e] = g.powers[src+e]
		}
	}
}

// zeroRamp zeroes the selected ramp point: the bump trims in bump mode,
// otherwise the selected magnet. Neighbor clamping still applies.
func (g *Game) zeroRamp() {
	if g.bump != nil {
		n := g.cfg.Lattice.Sections
		for i := range g.bump.coefficients() {
			sec := (g.bump.Start + i) % n
			g.zeroOne(sec*magnetsPerSection + int(MagnetHT))
			g.zeroOne(sec*magnetsPerSection + int(MagnetVT))
		}
		return
	}
	g.zeroOne(g.selected)
}

func (g *Game) zeroOne(idx int) {
	v := g.clampRampValue(idx, g.selectedRamp, 0)
	g.ramps[idx][g.selectedRamp] = v
	g.powers[idx] = v
}

// zeroAllRamps flattens every ramp point of the selected magnet (or of
// the bump trims) to zero.
func (g *Game) zeroAllRamps() {
	targets := []int{g.selected}
	if g.bump != nil {
		targets = targets[:0]
		n := g.cfg.Lattice.Sections
		for i := range g.bump.coefficients() {
			sec := (g.bump.Start + i) % n
			targets = append(targets, sec*magnetsPerSection+int(MagnetHT), sec*magnetsPerSection+int(MagnetVT))
		}
	}
	for _, idx := range targets {
		for r := range g.ramps[idx] {
			g.ramps[idx][r] = 0
		}
		g.powers[idx] = 0
	}
}

// cycleBump steps the bump mode off -> 3 -> 4 -> 5 -> off.
func (g *Game) cycleBump() {
	switch {
	case g.bump == nil:
		g.bump = &bumpState{Size: 3, Start: g.selectedSection()}
	case g.bump.Size < 5:
		g.bump = &bumpState{Size: g.bump.Size + 1, Start: g.bump.Start}
	default:
		g.bump = nil
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	stability := g.stabilityScore()
	dst.DrawText(2, 0, fmt.Sprintf(" Turns: %d/%d  Best: %d  Loss: %.0f/%.0f  Stability: %.0f%% ",
		g.turns, g.cfg.Lattice.GoalTurns, g.bestTurns,
		g.beam.Losses, g.cfg.Lattice.MaxLosses, stability))

	g.drawPlaneBar(dst, 2, "X", g.beam.X, g.beam.Size)
	g.drawPlaneBar(dst, 4, "Y", g.beam.Y, g.beam.YSize)

	// Console: the selected section's six magnets with ramp powers
	sec := g.selectedSection()
	dst.DrawText(2, 6, fmt.Sprintf("Section %2d/%d   Ramp %d   Step %.3f",
		sec+1, g.cfg.Lattice.Sections, g.selectedRamp, g.step))
	for e := 0; e < magnetsPerSection; e++ {
		idx := sec*magnetsPerSection + e
		marker := ' '
		if idx == g.selected {
			marker = '>'
		}
		line := fmt.Sprintf("%c %s %+0.4f", marker, MagnetKind(e).Label(), g.ramps[idx][g.selectedRamp])
		color := core.ColorWhite
		if idx == g.selected {
			color = core.ColorBrightYellow
		}
		dst.DrawTextColored(2, 7+e, line, color)
	}

	if g.bump != nil {
		dst.DrawTextColored(2, 14, fmt.Sprintf("%d-bump @ sec %d", g.bump.Size, g.bump.Start+1), core.ColorBrightCyan)
	}
	for i, r := range g.restrictions {
		plane := "x"
		if r.Vertical {
			plane = "y"
		}
		side := "+"
		if !r.Positive {
			side = "-"
		}
		dst.DrawText(24, 7+i, fmt.Sprintf("cut sec %2d %s%s", r.Section+1, plane, side))
	}

	// Ring progress
	if g.beam.Running {
		dst.DrawText(2, 16, fmt.Sprintf("Beam: sec %2d elem %d  x=%+6.1f y=%+6.1f",
			g.beam.Section+1, g.beam.Element, g.beam.X, g.beam.Y))
	} else if g.phase == core.PhaseReady {
		dst.DrawText(2, 16, fmt.Sprintf("Injection offset x=%+.1f y=%+.1f  SPACE to inject", g.targetX, g.targetY))
	}

	switch g.phase {
	case core.PhaseReady:
		dst.DrawTextCentered(dst.Height()-1, "Tune dipoles to the design bend, then SPACE")
	case core.PhasePaused:
		dst.DrawTextCentered(dst.Height()/2, "PAUSED - press P to resume")
	case core.PhaseWon:
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("BEAM STORED!  Stability: %.0f%%  |  R to restart", stability))
	case core.PhaseLost:
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("BEAM LOST (%s)  |  R to restart", g.lossReason))
	}
}

// drawPlaneBar renders one plane as a centered bar: the aperture span
// with the beam envelope inside it.
func (g *Game) drawPlaneBar(dst *core.Screen, y int, label string, pos, size float64) {
	w := dst.Width() - 8
	if w < 10 {
		return
	}
	dst.DrawText(1, y, label)
	ap := g.cfg.Lattice.Aperture
	dst.DrawHLine(3, y, w, '·')
	center := 3 + w/2
	dst.SetCell(center, y, '|', core.ColorGray)

	scale := float64(w) / (2 * ap)
	lo := center + int((pos-size*0.5)*scale)
	hi := center + int((pos+size*0.5)*scale)
	for x := lo; x <= hi; x++ {
		if x >= 3 && x < 3+w {
			dst.SetCell(x, y, '█', core.ColorBrightGreen)
		}
	}
}

// State returns the current game state. Score is the stability
// percentage of the recent beam history.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: int(g.stabilityScore()),
		Phase: g.phase,
	}
}

// Register the game with the registry
func init() {
	registry.Register("beam", func() registry.Game {
		return New()
	})
}
