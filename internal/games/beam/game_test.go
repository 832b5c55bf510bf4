package beam

import (
	"math"
	"testing"

	"github.com/dsemenov/retrocade/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     13,
	}
}

func press(g *Game, a core.Action) {
	in := core.NewInputFrame()
	in.Set(a)
	g.Step(in)
}

// tuneDesignDipoles sets every dipole to the design bend across all
// ramp points, the setting that closes the orbit.
func tuneDesignDipoles(g *Game) {
	for i := 0; i < g.totalMagnets; i++ {
		if k := kindOf(i); k == MagnetD1 || k == MagnetD2 {
			for r := range g.ramps[i] {
				g.ramps[i][r] = g.cfg.Lattice.DesignDipole
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig()

	run := func() Snapshot {
		g := New()
		g.Reset(cfg)
		tuneDesignDipoles(g)
		in := core.NewInputFrame()
		for i := 0; i < 400; i++ {
			in.Clear()
			switch {
			case i < 5:
				in.Set(core.ActionRight)
			case i == 6:
				in.Set(core.DigitAction(3))
			case i == 8:
				in.Set(core.ActionPrimary)
			case i%37 == 0:
				in.Set(core.ActionDown)
			}
			if g.Step(in).State.Over() {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
}

func TestInjectionOffsetWithinRange(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	if math.Abs(g.targetX) > 5 || math.Abs(g.targetY) > 5 {
		t.Errorf("Injection offset should be within +/-5, got (%f, %f)", g.targetX, g.targetY)
	}
}

func TestMagnetSelectionWraps(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	press(g, core.ActionUp)
	if g.selected != g.totalMagnets-1 {
		t.Errorf("Selecting up from 0 should wrap to %d, got %d", g.totalMagnets-1, g.selected)
	}
	press(g, core.ActionDown)
	if g.selected != 0 {
		t.Errorf("Selecting down should wrap back to 0, got %d", g.selected)
	}
}

func TestSectionJumpKeepsElement(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.selected = 2 // QD of section 0

	press(g, core.ActionNextSection)
	if g.selected != magnetsPerSection+2 {
		t.Errorf("Next section should keep the element slot, got %d", g.selected)
	}
	press(g, core.ActionPrevSection)
	press(g, core.ActionPrevSection)
	want := (g.cfg.Lattice.Sections-1)*magnetsPerSection + 2
	if g.selected != want {
		t.Errorf("Previous section should wrap to %d, got %d", want, g.selected)
	}
}

func TestPowerAdjustUsesStep(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	press(g, core.ActionRight)
	if math.Abs(g.ramps[0][0]-g.cfg.Controls.DefaultStep) > 1e-12 {
		t.Errorf("Right should raise the ramp point by one step, got %f", g.ramps[0][0])
	}
	press(g, core.ActionLeft)
	press(g, core.ActionLeft)
	if math.Abs(g.ramps[0][0]+g.cfg.Controls.DefaultStep) > 1e-12 {
		t.Errorf("Left should lower the ramp point, got %f", g.ramps[0][0])
	}
}

func TestStepMultiplierClamps(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	for i := 0; i < 20; i++ {
		press(g, core.ActionIncreaseStep)
	}
	if g.step != g.cfg.Controls.MaxStep {
		t.Errorf("Step should cap at %f, got %f", g.cfg.Controls.MaxStep, g.step)
	}
	for i := 0; i < 30; i++ {
		press(g, core.ActionDecreaseStep)
	}
	if g.step != g.cfg.Controls.MinStep {
		t.Errorf("Step should floor at %f, got %f", g.cfg.Controls.MinStep, g.step)
	}
}

func TestRampNeighborClamp(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Neighbor ramp point is 0; a huge adjustment must clamp to the delta
	g.adjustRampPower(0, 10.0)
	if g.ramps[0][0] != g.cfg.Controls.MaxRampDelta {
		t.Errorf("Ramp point should clamp to +/-%f of its neighbor, got %f",
			g.cfg.Controls.MaxRampDelta, g.ramps[0][0])
	}
}

func TestDigitSelectsRampPoint(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.ramps[0][7] = 0.25

	in := core.NewInputFrame()
	in.Set(core.DigitAction(7))
	g.Step(in)

	if g.selectedRamp != 7 {
		t.Fatalf("Digit 7 should select ramp point 7, got %d", g.selectedRamp)
	}
	if g.powers[0] != 0.25 {
		t.Errorf("Selecting a ramp point should sync display powers, got %f", g.powers[0])
	}
}

func TestCopyToAllSections(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.ramps[0][0] = 0.3 // QF of section 0
	g.ramps[1][4] = 0.1 // D1 of section 0, later ramp point

	press(g, core.ActionCopyToAll)

	for sec := 1; sec < g.cfg.Lattice.Sections; sec++ {
		base := sec * magnetsPerSection
		if g.ramps[base][0] != 0.3 {
			t.Fatalf("Section %d QF ramp 0 should be 0.3, got %f", sec, g.ramps[base][0])
		}
		if g.ramps[base+1][4] != 0.1 {
			t.Fatalf("Section %d D1 ramp 4 should be 0.1, got %f", sec, g.ramps[base+1][4])
		}
	}
}

func TestBumpModeCycles(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	sizes := []int{3, 4, 5}
	for _, want := range sizes {
		press(g, core.ActionToggleBump)
		if g.bump == nil || g.bump.Size != want {
			t.Fatalf("Bump cycle should reach size %d", want)
		}
	}
	press(g, core.ActionToggleBump)
	if g.bump != nil {
		t.Error("Fourth toggle should turn bump mode off")
	}
}

func TestBumpCoefficientsSumToZero(t *testing.T) {
	for _, size := range []int{3, 4, 5} {
		b := &bumpState{Size: size}
		sum := 0.0
		for _, c := range b.coefficients() {
			sum += c
		}
		if sum != 0 {
			t.Errorf("%d-bump coefficients should cancel, sum=%f", size, sum)
		}
	}
}

func TestBumpAdjustPatternsTrims(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	press(g, core.ActionToggleBump) // 3-bump at section 0
	press(g, core.ActionUp)

	step := g.cfg.Controls.DefaultStep
	wantHT := []float64{step, -2 * step, step}
	for i, want := range wantHT {
		ht := i*magnetsPerSection + int(MagnetHT)
		vt := i*magnetsPerSection + int(MagnetVT)
		if math.Abs(g.ramps[ht][0]-want) > 1e-12 {
			t.Errorf("Section %d HT trim: want %f, got %f", i, want, g.ramps[ht][0])
		}
		if math.Abs(g.ramps[vt][0]-want) > 1e-12 {
			t.Errorf("Section %d VT trim: want %f, got %f", i, want, g.ramps[vt][0])
		}
	}
}

func TestZeroAllRampsFlattensMagnet(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	for r := range g.ramps[0] {
		g.ramps[0][r] = 0.1 * float64(r%3)
	}

	press(g, core.ActionZeroAllRamps)

	for r, v := range g.ramps[0] {
		if v != 0 {
			t.Errorf("Ramp point %d should be zeroed, got %f", r, v)
		}
	}
}

func TestDesignDipolesStoreBeam(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	tuneDesignDipoles(g)

	press(g, core.ActionPrimary)
	if g.phase != core.PhaseRunning {
		t.Fatalf("Injection should start the beam, got %v", g.phase)
	}

	for i := 0; i < 1000 && !g.phase.Terminal(); i++ {
		g.Step(core.NewInputFrame())
	}

	if g.phase != core.PhaseWon {
		t.Fatalf("Design bend should carry the beam %d turns, got %v after %d turns",
			g.cfg.Lattice.GoalTurns, g.phase, g.turns)
	}
	if g.turns != g.cfg.Lattice.GoalTurns {
		t.Errorf("Turn counter: want %d, got %d", g.cfg.Lattice.GoalTurns, g.turns)
	}
}

func TestUnpoweredBeamHitsWall(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	press(g, core.ActionPrimary) // All magnets at zero: the beam goes straight
	for i := 0; i < 300 && !g.phase.Terminal(); i++ {
		g.Step(core.NewInputFrame())
	}

	if g.phase != core.PhaseLost {
		t.Errorf("Unpowered ring should lose the beam, got %v", g.phase)
	}
}

func TestLossZoneScrapesBeam(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	tuneDesignDipoles(g)

	press(g, core.ActionPrimary)
	// An oversized beam scrapes the loss zone on both edges
	g.beam.X = 0
	g.beam.Y = 0
	g.beam.Size = 60
	g.beam.YSize = 10

	for i := 0; i < 100 && !g.phase.Terminal(); i++ {
		g.Step(core.NewInputFrame())
	}

	if g.phase != core.PhaseLost {
		t.Fatalf("Accumulated scraping should end the run, got %v (losses %f)", g.phase, g.beam.Losses)
	}
	if g.beam.Losses < g.cfg.Lattice.MaxLosses {
		t.Errorf("Losses should have reached %f, got %f", g.cfg.Lattice.MaxLosses, g.beam.Losses)
	}
}

func TestRestrictionTripsBeam(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	tuneDesignDipoles(g)
	g.cfg.Lattice.RestrictionSize = 15
	g.restrictions = []restriction{{Section: 0, Positive: true}}
	g.targetX = 20 // Parked on the blocked side

	press(g, core.ActionPrimary)
	for i := 0; i < 20 && !g.phase.Terminal(); i++ {
		g.Step(core.NewInputFrame())
	}

	if g.phase != core.PhaseLost {
		t.Errorf("Beam past the restriction cut should be lost, got %v", g.phase)
	}
}

func TestStabilityIsScore(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	tuneDesignDipoles(g)

	press(g, core.ActionPrimary)
	for i := 0; i < 200; i++ {
		g.Step(core.NewInputFrame())
	}

	s := g.stabilityScore()
	if s < 0 || s > 100 {
		t.Fatalf("Stability should be a percentage, got %f", s)
	}
	if g.State().Score != int(s) {
		t.Errorf("Score should report stability: want %d, got %d", int(s), g.State().Score)
	}
}
