// Package breakout implements the classic brick-breaking game.
// The ball serves stuck to the paddle; reflection angle depends on where
// the ball meets the paddle, and the ball speeds up as bricks fall.
package breakout

import (
	"fmt"

	"github.com/dsemenov/retrocade/internal/config"
	"github.com/dsemenov/retrocade/internal/core"
	"github.com/dsemenov/retrocade/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '▀'
	BallChar   = '●'
	BrickChar  = '▒'
	WallChar   = '│'
	CeilChar   = '─'
)

// brickTop is the screen row of the first brick row. Row 0 is the HUD.
const brickTop = 2

// Game implements the Breakout game logic.
type Game struct {
	cfg     config.BreakoutConfig
	runtime core.RuntimeConfig
	rng     *core.SimpleRNG

	phase     core.Phase
	score     int
	lives     int
	tickCount int

	paddleX float64 // Left edge of the paddle
	paddleY int

	ballX, ballY   float64
	ballVX, ballVY float64
	ballSpeed      float64 // Current speed magnitude
	stuck          bool    // Ball riding the paddle before launch

	bricks    [][]bool // [row][col] alive flags
	remaining int
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Breakout game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		cfg = config.DefaultBreakoutConfig()
	}
	g.cfg = cfg

	g.rng = core.NewSimpleRNG(runtime.Seed)
	g.phase = core.PhaseReady
	g.score = 0
	g.lives = cfg.Gameplay.Lives
	g.tickCount = 0
	g.ballSpeed = cfg.Physics.BaseSpeed

	g.paddleY = runtime.ScreenH - 2
	g.paddleX = float64(runtime.ScreenW-cfg.Paddle.Width) / 2

	g.bricks = make([][]bool, cfg.Bricks.Rows)
	for row := range g.bricks {
		g.bricks[row] = make([]bool, cfg.Bricks.PerRow)
		for col := range g.bricks[row] {
			g.bricks[row][col] = true
		}
	}
	g.remaining = cfg.Bricks.Rows * cfg.Bricks.PerRow

	g.serve()
}

// serve parks the ball on the paddle awaiting launch.
func (g *Game) serve() {
	g.stuck = true
	g.ballX = g.paddleX + float64(g.cfg.Paddle.Width)/2
	g.ballY = float64(g.paddleY - 1)
	g.ballVX = 0
	g.ballVY = 0
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

	g.tickCount++

	// Paddle moves in Ready too, carrying a stuck ball with it.
	g.movePaddle(in)

	if g.stuck {
		g.ballX = g.paddleX + float64(g.cfg.Paddle.Width)/2
		if in.Has(core.ActionPrimary) {
			g.launch()
		}
		return core.StepResult{State: g.State()}
	}

	g.stepBall()

	return core.StepResult{State: g.State()}
}

// movePaddle applies horizontal input, clamped to the walls.
func (g *Game) movePaddle(in core.InputFrame) {
	step := g.cfg.Paddle.MoveStep
	if in.Has(core.ActionLeft) {
		g.paddleX -= step
	}
	if in.Has(core.ActionRight) {
		g.paddleX += step
	}
	g.paddleX = core.ClampF(g.paddleX, 1, float64(g.runtime.ScreenW-1-g.cfg.Paddle.Width))
}

// launch releases the stuck ball with a slight random horizontal bias.
func (g *Game) launch() {
	g.stuck = false
	if g.phase == core.PhaseReady {
		g.phase = core.PhaseRunning
	}
	vx := g.rng.Range(-0.3, 0.3) * g.ballSpeed
	g.setVelocity(vx, -1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w := dst.Width()
	h := dst.Height()

	// Walls and ceiling
	dst.DrawHLine(0, 1, w, CeilChar)
	for y := 1; y < h; y++ {
		dst.Set(0, y, WallChar)
		dst.Set(w-1, y, WallChar)
	}

	// Bricks, colored by row
	rowColors := []core.Color{
		core.ColorBrightRed, core.ColorOrange, core.ColorBrightYellow,
		core.ColorBrightGreen, core.ColorBrightCyan, core.ColorBrightBlue,
	}
	brickW := g.brickWidth()
	for row := range g.bricks {
		color := rowColors[row%len(rowColors)]
		for col, alive := range g.bricks[row] {
			if !alive {
				continue
			}
			x := 1 + col*brickW
			for i := 0; i < brickW-1; i++ {
				dst.SetCell(x+i, brickTop+row, BrickChar, color)
			}
		}
	}

	// Paddle and ball
	px := int(g.paddleX)
	for i := 0; i < g.cfg.Paddle.Width; i++ {
		dst.SetCell(px+i, g.paddleY, PaddleChar, core.ColorBrightWhite)
	}
	dst.SetCell(int(g.ballX), int(g.ballY), BallChar, core.ColorBrightYellow)

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
	livesText := fmt.Sprintf(" Lives: %d ", g.lives)
	dst.DrawText(w-len(livesText)-2, 0, livesText)

	switch g.phase {
	case core.PhaseReady:
		dst.DrawTextCentered(h/2, "Press SPACE to launch")
	case core.PhasePaused:
		drawBanner(dst, "PAUSED", "Press P to resume")
	case core.PhaseWon:
		drawBanner(dst, "YOU WIN!", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case core.PhaseLost:
		drawBanner(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawBanner draws a message box in the center of the screen.
func drawBanner(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
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
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}
