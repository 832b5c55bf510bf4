// Package frogger implements the lane-crossing game. The frog hops one
// cell per input across road traffic and a river of logs to fill the
// goal pads at the top.
package frogger

import (
	"fmt"

	"github.com/dsemenov/retrocade/internal/config"
	"github.com/dsemenov/retrocade/internal/core"
	"github.com/dsemenov/retrocade/internal/registry"
)

// Visual characters for rendering
const (
	FrogChar    = '▲'
	LogChar     = '▬'
	CarChar     = '■'
	TruckChar   = '▮'
	WaterChar   = '~'
	PadChar     = '◡'
	PadFullChar = '●'
	GroundChar  = '·'
)

// laneTop is the screen row of lane 0 (the goal row). Row 0 is the HUD.
const laneTop = 2

// Game implements the Frogger game logic.
type Game struct {
	cfg     config.FroggerConfig
	runtime core.RuntimeConfig

	phase     core.Phase
	score     int
	lives     int
	tickCount int

	lanes []Lane
	pads  []padState

	frogRow int
	frogX   float64
	bestRow int // Lowest lane index reached this crossing (forward progress)
}

type padState struct {
	X      int // Pad center column
	Filled bool
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Frogger game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "frogger"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Frogger"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadFrogger(configPath)
	if err != nil {
		cfg = config.DefaultFroggerConfig()
	}
	g.cfg = cfg

	g.phase = core.PhaseReady
	g.score = 0
	g.lives = cfg.Lives
	g.tickCount = 0

	g.lanes = buildLanes(runtime.ScreenW, cfg.SpeedScale)

	g.pads = make([]padState, cfg.GoalPads)
	spacing := runtime.ScreenW / (cfg.GoalPads + 1)
	for i := range g.pads {
		g.pads[i] = padState{X: spacing * (i + 1)}
	}

	g.respawn()
}

// respawn puts the frog back on the start row.
func (g *Game) respawn() {
	g.frogRow = laneCount - 1
	g.frogX = float64(g.runtime.ScreenW / 2)
	g.bestRow = g.frogRow
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

	moved := g.handleMove(in)
	if g.phase == core.PhaseReady {
		if !moved {
			return core.StepResult{State: g.State()}
		}
		g.phase = core.PhaseRunning
	}

	g.tickCount++

	for i := range g.lanes {
		g.lanes[i].advance(g.runtime.ScreenW)
	}

	g.resolveHazards()

	return core.StepResult{State: g.State()}
}

// handleMove applies at most one discrete hop per tick.
// Returns true if the frog moved.
func (g *Game) handleMove(in core.InputFrame) bool {
	switch {
	case in.Has(core.ActionUp):
		if g.frogRow > 0 {
			g.frogRow--
			if g.frogRow < g.bestRow {
				g.bestRow = g.frogRow
				g.score += g.cfg.Scores.Step
			}
			if g.frogRow == 0 {
				g.dockOnPad()
			}
			return true
		}
	case in.Has(core.ActionDown):
		if g.frogRow < laneCount-1 {
			g.frogRow++
			return true
		}
	case in.Has(core.ActionLeft):
		if g.frogX >= 1 {
			g.frogX--
			return true
		}
	case in.Has(core.ActionRight):
		if g.frogX < float64(g.runtime.ScreenW-1) {
			g.frogX++
			return true
		}
	}
	return false
}

// dockOnPad resolves a hop onto the goal row: land on an open pad or die.
func (g *Game) dockOnPad() {
	fx := int(g.frogX + 0.5)
	for i := range g.pads {
		if g.pads[i].Filled {
			continue
		}
		if core.Abs(fx-g.pads[i].X) <= g.cfg.PadRadius {
			g.pads[i].Filled = true
			g.score += g.cfg.Scores.Pad
			if g.allPadsFilled() {
				g.score += g.cfg.Scores.Sweep
				g.phase = core.PhaseWon
				return
			}
			g.respawn()
			return
		}
	}
	// Missed every pad: that is a drowning
	g.die()
}

func (g *Game) allPadsFilled() bool {
	for _, p := range g.pads {
		if !p.Filled {
			return false
		}
	}
	return true
}

// resolveHazards applies per-lane rules to the frog's current cell.
func (g *Game) resolveHazards() {
	if g.phase != core.PhaseRunning || g.frogRow == 0 {
		return
	}

	lane := &g.lanes[g.frogRow]
	switch lane.Kind {
	case LaneSafe:
		return
	case LaneRoad:
		if lane.occupied(g.frogX, g.runtime.ScreenW) {
			g.die()
		}
	case LaneWater:
		if !lane.occupied(g.frogX, g.runtime.ScreenW) {
			g.die() // In the water
			return
		}
		// Riding a log: carried with the lane
		g.frogX += lane.Speed
		if g.frogX < 0 || g.frogX >= float64(g.runtime.ScreenW) {
			g.die() // Carried off the field
		}
	}
}

// die costs a life and respawns, or ends the game.
func (g *Game) die() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.phase = core.PhaseLost
		return
	}
	g.respawn()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w := dst.Width()

	for row := range g.lanes {
		g.drawLane(dst, row, w)
	}

	// Goal pads over the goal row
	for _, p := range g.pads {
		ch := PadChar
		color := core.ColorGray
		if p.Filled {
			ch = PadFullChar
			color = core.ColorBrightGreen
		}
		dst.SetCell(p.X, laneTop, ch, color)
	}

	// Frog
	if g.phase != core.PhaseWon {
		dst.SetCell(int(g.frogX+0.5), laneTop+g.frogRow, FrogChar, core.ColorBrightGreen)
	}

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
	livesText := fmt.Sprintf(" Lives: %d ", g.lives)
	dst.DrawText(w-len(livesText)-2, 0, livesText)

	switch g.phase {
	case core.PhaseReady:
		dst.DrawTextCentered(dst.Height()-1, "Move to start")
	case core.PhasePaused:
		dst.DrawTextCentered(dst.Height()/2, "PAUSED - press P to resume")
	case core.PhaseWon:
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("ALL PADS FILLED!  Score: %d  |  R to restart", g.score))
	case core.PhaseLost:
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("GAME OVER  Score: %d  |  R to restart", g.score))
	}
}

// drawLane renders one lane row: background texture plus its objects.
func (g *Game) drawLane(dst *core.Screen, row, w int) {
	lane := &g.lanes[row]
	y := laneTop + row

	switch lane.Kind {
	case LaneWater:
		for x := 0; x < w; x++ {
			dst.SetCell(x, y, WaterChar, core.ColorBlue)
		}
		for _, o := range lane.Objects {
			for i := 0; i < lane.Length; i++ {
				dst.SetCell(wrapCell(int(o)+i, w), y, LogChar, core.ColorOrange)
			}
		}
	case LaneRoad:
		ch := CarChar
		if lane.Length > 2 {
			ch = TruckChar
		}
		for _, o := range lane.Objects {
			for i := 0; i < lane.Length; i++ {
				dst.SetCell(wrapCell(int(o)+i, w), y, ch, core.ColorBrightRed)
			}
		}
	case LaneSafe:
		if row != 0 {
			for x := 0; x < w; x++ {
				dst.SetCell(x, y, GroundChar, core.ColorGray)
			}
		}
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
	registry.Register("frogger", func() registry.Game {
		return New()
	})
}
