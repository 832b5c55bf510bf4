// Package pinball implements a single-screen pinball table: plunger
// launch, edge-triggered flippers, bumpers with a combo multiplier,
// spinner gates and a multiball trio. The table is endless; the round
// ends when the last ball drains.
package pinball

import (
	"fmt"
	"math"

	"github.com/dsemenov/retrocade/internal/config"
	"github.com/dsemenov/retrocade/internal/core"
	"github.com/dsemenov/retrocade/internal/registry"
)

// Visual characters for rendering
const (
	BallChar      = '●'
	BumperChar    = 'O'
	FlipperRest   = '▁'
	FlipperActive = '▔'
	SlopeLeft     = '\\'
	SlopeRight    = '/'
	ChuteWall     = '│'
)

var spinnerFrames = [4]rune{'-', '\\', '|', '/'}

// Game implements the Pinball game logic.
type Game struct {
	cfg     config.PinballConfig
	runtime core.RuntimeConfig
	rng     *core.SimpleRNG

	phase     core.Phase
	score     int
	ballsLeft int
	tickCount int

	balls []BallState
	power float64 // Plunger charge, 0..1

	leftTimer  int
	rightTimer int

	comboCount     int
	lastBumperTick int
	topLit         [3]int // Tick of the last hit on each multiball target
	spawnPending   bool   // Multiball earned mid-tick, ball added after the sweep
	spinAnim       int
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Pinball game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pinball"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pinball"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPinball(configPath)
	if err != nil {
		cfg = config.DefaultPinballConfig()
	}
	g.cfg = cfg

	g.rng = core.NewSimpleRNG(runtime.Seed)
	g.phase = core.PhaseReady
	g.score = 0
	g.ballsLeft = cfg.Gameplay.Balls
	g.tickCount = 0

	g.balls = []BallState{newChuteBall()}
	g.power = 0
	g.leftTimer = 0
	g.rightTimer = 0
	g.comboCount = 0
	g.lastBumperTick = 0
	g.topLit = [3]int{-1, -1, -1}
	g.spawnPending = false
	g.spinAnim = 0
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

	acted := g.handleInput(in)
	if g.phase == core.PhaseReady {
		if !acted {
			return core.StepResult{State: g.State()}
		}
		g.phase = core.PhaseRunning
	}

	g.tickCount++

	if g.leftTimer > 0 {
		g.leftTimer--
	}
	if g.rightTimer > 0 {
		g.rightTimer--
	}

	// The sweep filters g.balls in place, so collision handlers must not
	// grow the slice mid-iteration; an earned multiball is applied after.
	alive := g.balls[:0]
	for i := range g.balls {
		if g.stepBall(&g.balls[i]) {
			alive = append(alive, g.balls[i])
		}
	}
	g.balls = alive

	if g.spawnPending {
		g.spawnPending = false
		if len(g.balls) > 0 {
			g.balls = append(g.balls, g.spawnMultiball())
		}
	}

	if len(g.balls) == 0 {
		g.ballsLeft--
		g.comboCount = 0
		g.topLit = [3]int{-1, -1, -1}
		if g.ballsLeft <= 0 {
			g.phase = core.PhaseLost
		} else {
			g.balls = []BallState{newChuteBall()}
			g.power = 0
		}
	}

	return core.StepResult{State: g.State()}
}

// handleInput engages the flippers and works the plunger.
// Returns true if any action was consumed.
func (g *Game) handleInput(in core.InputFrame) bool {
	acted := false
	if in.Has(core.ActionLeft) {
		g.leftTimer = g.cfg.Flippers.ActiveTicks
		acted = true
	}
	if in.Has(core.ActionRight) {
		g.rightTimer = g.cfg.Flippers.ActiveTicks
		acted = true
	}
	if in.Has(core.ActionSecondary) {
		g.power = math.Min(g.power+g.cfg.Plunger.ChargeRate, 1.0)
		acted = true
	}
	if in.Has(core.ActionPrimary) {
		g.launch()
		acted = true
	}
	return acted
}

// launch fires the chute ball with the stored plunger charge.
func (g *Game) launch() {
	for i := range g.balls {
		b := &g.balls[i]
		if b.InChute && b.VY == 0 {
			power := math.Max(g.power, g.cfg.Plunger.MinPower)
			b.VY = -g.cfg.Plunger.LaunchDY * power
			g.power = 0
			return
		}
	}
}

// scoreBumper updates the combo chain, awards the multiplied points, and
// tracks the multiball trio.
func (g *Game) scoreBumper(idx int, bp *Bumper) {
	if g.comboCount > 0 && g.tickCount-g.lastBumperTick <= g.cfg.Bumpers.ComboWindow {
		g.comboCount++
	} else {
		g.comboCount = 1
	}
	g.lastBumperTick = g.tickCount

	mult := core.Min(g.comboCount, g.cfg.Bumpers.ComboCap)
	g.score += bp.Points * mult

	if bp.Top {
		g.topLit[idx] = g.tickCount
		g.checkMultiball()
	}
}

// checkMultiball flags a second ball when all three top bumpers were hit
// within one combo window. Runs inside the ball sweep, so the spawn
// itself is deferred to the end of the tick.
func (g *Game) checkMultiball() {
	if len(g.balls) != 1 || g.spawnPending {
		return
	}
	for _, lit := range g.topLit {
		if lit < 0 || g.tickCount-lit > g.cfg.Bumpers.ComboWindow {
			return
		}
	}
	g.topLit = [3]int{-1, -1, -1}
	g.spawnPending = true
}

// spawnMultiball drops the extra ball in from the top of the field.
func (g *Game) spawnMultiball() BallState {
	return BallState{
		X:          tableW / 2,
		Y:          chuteTop,
		VX:         g.rng.Range(-0.5, 0.5),
		VY:         0.2,
		LastBumper: -1,
	}
}

// comboMultiplier is the current score multiplier, 1 when no chain is live.
func (g *Game) comboMultiplier() int {
	if g.comboCount == 0 || g.tickCount-g.lastBumperTick > g.cfg.Bumpers.ComboWindow {
		return 1
	}
	return core.Min(g.comboCount, g.cfg.Bumpers.ComboCap)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	offX := (dst.Width() - int(tableW) - 2) / 2
	if offX < 0 {
		offX = 0
	}
	offY := 1

	dst.DrawBox(core.NewRect(offX, offY, int(tableW)+2, int(tableH)+2))

	px := func(x float64) int { return offX + 1 + int(x) }
	py := func(y float64) int { return offY + 1 + int(y) }

	// Chute wall and plunger charge
	for y := chuteTop; y < tableH; y++ {
		dst.SetCell(px(chuteWallX), py(y), ChuteWall, core.ColorGray)
	}
	charge := int(g.power * 5)
	for i := 0; i < charge; i++ {
		dst.SetCell(px(chuteX), py(tableH-1-float64(i)), '▮', core.ColorBrightYellow)
	}

	// Funnel slopes
	for y := slopeTopY; y <= flipperY; y++ {
		dst.SetCell(px(slopeLeft(y)), py(y), SlopeLeft, core.ColorGray)
		dst.SetCell(px(slopeRight(y)), py(y), SlopeRight, core.ColorGray)
	}

	// Flippers
	lch, lcol := FlipperRest, core.ColorWhite
	if g.leftTimer > 0 {
		lch, lcol = FlipperActive, core.ColorBrightYellow
	}
	for i := 0; i <= int(flipperLen); i++ {
		dst.SetCell(px(leftPivotX+float64(i)), py(flipperY), lch, lcol)
	}
	rch, rcol := FlipperRest, core.ColorWhite
	if g.rightTimer > 0 {
		rch, rcol = FlipperActive, core.ColorBrightYellow
	}
	for i := 0; i <= int(flipperLen); i++ {
		dst.SetCell(px(rightPivotX-float64(i)), py(flipperY), rch, rcol)
	}

	// Bumpers, brighter while their combo light is fresh
	for i := range tableBumpers {
		bp := &tableBumpers[i]
		color := core.ColorBrightBlue
		if bp.Top {
			color = core.ColorBrightMagenta
		}
		dst.SetCell(px(bp.X), py(bp.Y), BumperChar, color)
	}

	// Spinners
	frame := spinnerFrames[g.spinAnim%len(spinnerFrames)]
	for _, sp := range tableSpinners {
		dst.SetCell(px(sp.X), py(sp.Y), frame, core.ColorBrightCyan)
	}

	for i := range g.balls {
		b := &g.balls[i]
		dst.SetCell(px(b.X), py(b.Y), BallChar, core.ColorBrightWhite)
	}

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d  x%d ", g.score, g.comboMultiplier()))
	right := fmt.Sprintf(" Balls: %d ", g.ballsLeft)
	dst.DrawText(dst.Width()-len(right)-2, 0, right)

	switch g.phase {
	case core.PhaseReady:
		dst.DrawTextCentered(dst.Height()-1, "Hold X to charge, SPACE to launch. Arrows flip")
	case core.PhasePaused:
		dst.DrawTextCentered(dst.Height()/2, "PAUSED - press P to resume")
	case core.PhaseLost:
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("GAME OVER  Score: %d  |  R to restart", g.score))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Phase: g.phase,
	}
}

// Register the game with the registry
func init() {
	registry.Register("pinball", func() registry.Game {
		return New()
	})
}
