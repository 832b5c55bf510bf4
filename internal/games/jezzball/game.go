// Package jezzball implements the wall-building capture game. The player
// grows two-headed walls to partition the field; regions left without a
// ball are captured, and capturing enough of the field clears the level.
package jezzball

import (
	"fmt"

	"github.com/dsemenov/retrocade/internal/config"
	"github.com/dsemenov/retrocade/internal/core"
	"github.com/dsemenov/retrocade/internal/registry"
)

// Cell is one grid square of the playfield.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellWall
	CellFilled
)

// Visual characters for rendering
const (
	BallChar    = '●'
	WallCell    = '█'
	FilledCell  = '▒'
	PendingCell = '░'
	CursorH     = '═'
	CursorV     = '║'
)

// Ball is a point bouncing inside the empty part of the grid.
type Ball struct {
	X, Y   float64
	VX, VY float64
}

// Game implements the JezzBall game logic.
type Game struct {
	cfg     config.JezzballConfig
	runtime core.RuntimeConfig
	rng     *core.SimpleRNG

	phase     core.Phase
	score     int
	lives     int
	level     int
	tickCount int

	grid  [][]Cell // [y][x]
	balls []Ball

	cursorX, cursorY int
	vertical         bool // Wall axis for the next build
	wall             *buildingWall
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new JezzBall game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "jezzball"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "JezzBall"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadJezzball(configPath)
	if err != nil {
		cfg = config.DefaultJezzballConfig()
	}
	g.cfg = cfg

	g.rng = core.NewSimpleRNG(runtime.Seed)
	g.phase = core.PhaseReady
	g.score = 0
	g.lives = cfg.Lives
	g.level = 1
	g.tickCount = 0

	g.startLevel()
}

// startLevel rebuilds the field for the current level. Level n bounces
// min(n+1, MaxBalls) balls.
func (g *Game) startLevel() {
	g.grid = make([][]Cell, g.cfg.Height)
	for y := range g.grid {
		g.grid[y] = make([]Cell, g.cfg.Width)
	}

	count := core.Min(g.level+1, g.cfg.MaxBalls)
	g.balls = make([]Ball, count)
	for i := range g.balls {
		vx := g.cfg.BallSpeed
		if g.rng.Chance(0.5) {
			vx = -vx
		}
		vy := g.cfg.BallSpeed
		if g.rng.Chance(0.5) {
			vy = -vy
		}
		g.balls[i] = Ball{
			X:  g.rng.Range(2, float64(g.cfg.Width-2)),
			Y:  g.rng.Range(2, float64(g.cfg.Height-2)),
			VX: vx,
			VY: vy,
		}
	}

	g.cursorX = g.cfg.Width / 2
	g.cursorY = g.cfg.Height / 2
	g.vertical = false
	g.wall = nil
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

	if g.wall != nil && g.tickCount%g.cfg.WallInterval == 0 {
		g.advanceWall()
	}

	g.stepBalls()

	return core.StepResult{State: g.State()}
}

// handleInput moves the cursor, toggles the axis, or starts a wall.
// Returns true if any action was consumed.
func (g *Game) handleInput(in core.InputFrame) bool {
	acted := false
	if in.Has(core.ActionUp) && g.cursorY > 0 {
		g.cursorY--
		acted = true
	}
	if in.Has(core.ActionDown) && g.cursorY < g.cfg.Height-1 {
		g.cursorY++
		acted = true
	}
	if in.Has(core.ActionLeft) && g.cursorX > 0 {
		g.cursorX--
		acted = true
	}
	if in.Has(core.ActionRight) && g.cursorX < g.cfg.Width-1 {
		g.cursorX++
		acted = true
	}
	if in.Has(core.ActionSecondary) {
		g.vertical = !g.vertical
		acted = true
	}
	if in.Has(core.ActionPrimary) && g.wall == nil && g.grid[g.cursorY][g.cursorX] == CellEmpty {
		g.startWall()
		acted = true
	}
	return acted
}

// percentFilled returns the captured share of the field, wall cells
// counting as captured ground.
func (g *Game) percentFilled() int {
	filled := 0
	for _, row := range g.grid {
		for _, c := range row {
			if c != CellEmpty {
				filled++
			}
		}
	}
	return filled * 100 / (g.cfg.Width * g.cfg.Height)
}

// loseWall destroys the in-progress wall and costs a life.
func (g *Game) loseWall() {
	g.wall = nil
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.phase = core.PhaseLost
	}
}

// levelCleared awards the level bonus and advances to a busier field.
func (g *Game) levelCleared() {
	g.score += g.cfg.Scores.LevelBonus * g.level
	g.level++
	g.startLevel()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Center the playfield; leave row 0 for the HUD
	offX := (dst.Width() - g.cfg.Width - 2) / 2
	offY := 1
	if offX < 0 {
		offX = 0
	}

	dst.DrawBox(core.NewRect(offX, offY, g.cfg.Width+2, g.cfg.Height+2))

	for y, row := range g.grid {
		for x, c := range row {
			switch c {
			case CellWall:
				dst.SetCell(offX+1+x, offY+1+y, WallCell, core.ColorBrightBlue)
			case CellFilled:
				dst.SetCell(offX+1+x, offY+1+y, FilledCell, core.ColorBlue)
			}
		}
	}

	if g.wall != nil {
		for _, p := range g.wall.pending {
			dst.SetCell(offX+1+p.X, offY+1+p.Y, PendingCell, core.ColorBrightCyan)
		}
	}

	for _, b := range g.balls {
		dst.SetCell(offX+1+int(b.X), offY+1+int(b.Y), BallChar, core.ColorBrightRed)
	}

	// Cursor shows the build axis
	cursor := CursorH
	if g.vertical {
		cursor = CursorV
	}
	dst.SetCell(offX+1+g.cursorX, offY+1+g.cursorY, cursor, core.ColorBrightYellow)

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d  Level: %d ", g.score, g.level))
	right := fmt.Sprintf(" Filled: %d%%  Lives: %d ", g.percentFilled(), g.lives)
	dst.DrawText(dst.Width()-len(right)-2, 0, right)

	switch g.phase {
	case core.PhaseReady:
		dst.DrawTextCentered(dst.Height()-1, "Move to start. SPACE builds, X flips the axis")
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
	registry.Register("jezzball", func() registry.Game {
		return New()
	})
}
