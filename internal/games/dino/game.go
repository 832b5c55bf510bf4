// Package dino implements an endless runner. The dino jumps over cacti
// and ducks under birds while the world speeds up on a fixed ramp.
package dino

import (
	"fmt"

	"github.com/dsemenov/retrocade/internal/config"
	"github.com/dsemenov/retrocade/internal/core"
	"github.com/dsemenov/retrocade/internal/registry"
)

// Visual characters for rendering
const (
	DinoBody   = '█'
	DinoHead   = '◆'
	DinoLeg1   = '╱'
	DinoLeg2   = '╲'
	CactusChar = '▓'
	BirdChar   = 'v'
	GroundChar = '═'
)

// PlayerState is the runner's movement state.
type PlayerState int

const (
	StateGrounded PlayerState = iota
	StateJumping
	StateDucking
)

// Player collision box dimensions, in cells.
const (
	playerWidth    = 3
	standingHeight = 3
	duckingHeight  = 2
)

// Game implements the Dino Run game logic.
type Game struct {
	cfg     config.DinoConfig
	runtime core.RuntimeConfig

	phase     core.Phase
	score     int
	tickCount int

	playerY   float64 // Height above ground, negative = up
	playerVel float64
	state     PlayerState
	duckLeft  int // Remaining duck ticks

	speed     float64
	obstacles *ObstacleManager

	groundY  int
	legFrame int
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Dino Run game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dino"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dino Run"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDino(configPath)
	if err != nil {
		cfg = config.DefaultDinoConfig()
	}
	g.cfg = cfg

	g.phase = core.PhaseReady
	g.score = 0
	g.tickCount = 0
	g.groundY = runtime.ScreenH - cfg.Player.GroundOffset
	g.playerY = 0
	g.playerVel = 0
	g.state = StateGrounded
	g.duckLeft = 0
	g.speed = cfg.Physics.BaseSpeed
	g.legFrame = 0

	if g.obstacles == nil {
		g.obstacles = NewObstacleManager(runtime.Seed, runtime.ScreenW, &g.cfg)
	} else {
		g.obstacles.Reset(runtime.Seed, runtime.ScreenW, &g.cfg)
	}
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

	// First jump starts the run
	if g.phase == core.PhaseReady {
		if in.Has(core.ActionPrimary) || in.Has(core.ActionUp) {
			g.phase = core.PhaseRunning
		} else {
			return core.StepResult{State: g.State()}
		}
	}

	g.tickCount++
	g.legFrame = (g.legFrame + 1) % 10

	g.stepPlayer(in)

	// Speed ramp: fixed increment at a fixed tick interval, capped
	if g.tickCount%g.cfg.Physics.SpeedInterval == 0 {
		g.speed = core.ClampF(g.speed+g.cfg.Physics.SpeedIncrement, 0, g.cfg.Physics.MaxSpeed)
	}

	g.obstacles.Update(g.speed, g.score)

	if g.tickCount%g.cfg.Player.ScoreEvery == 0 {
		g.score++
	}

	if g.obstacles.CheckCollision(g.playerRect(), g.groundY) {
		g.phase = core.PhaseLost
	}

	return core.StepResult{State: g.State()}
}

// stepPlayer applies jump/duck input and vertical physics.
func (g *Game) stepPlayer(in core.InputFrame) {
	jump := in.Has(core.ActionPrimary) || in.Has(core.ActionUp)
	down := in.Has(core.ActionDown) || in.Has(core.ActionSecondary)

	switch g.state {
	case StateGrounded:
		if jump {
			g.playerVel = g.cfg.Physics.JumpVelocity
			g.state = StateJumping
		} else if down {
			g.state = StateDucking
			g.duckLeft = g.cfg.Player.DuckTicks
		}
	case StateDucking:
		g.duckLeft--
		if down {
			g.duckLeft = g.cfg.Player.DuckTicks // Holding extends the duck
		}
		if g.duckLeft <= 0 {
			g.state = StateGrounded
		}
	case StateJumping:
		gravity := g.cfg.Physics.Gravity
		if down {
			gravity *= g.cfg.Physics.FastFallFactor // Fast fall
		}
		g.playerVel += gravity
		g.playerY += g.playerVel
		if g.playerY >= 0 {
			g.playerY = 0
			g.playerVel = 0
			g.state = StateGrounded
		}
	}
}

// playerRect returns the collision rectangle in screen coordinates.
// Ducking shrinks the box.
func (g *Game) playerRect() core.Rect {
	height := standingHeight
	if g.state == StateDucking {
		height = duckingHeight
	}
	screenY := g.groundY - height + int(g.playerY)
	return core.NewRect(g.cfg.Player.X, screenY, playerWidth, height)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawHLine(0, g.groundY, dst.Width(), GroundChar)

	for _, o := range g.obstacles.All() {
		g.drawObstacle(dst, o)
	}

	g.drawDino(dst)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
	speedText := fmt.Sprintf(" Spd: %.2f ", g.speed)
	dst.DrawText(dst.Width()-len(speedText)-2, 0, speedText)

	switch g.phase {
	case core.PhaseReady:
		dst.DrawTextCentered(g.groundY/2, "Press SPACE to run")
	case core.PhasePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case core.PhaseLost:
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawDino renders the player character.
func (g *Game) drawDino(dst *core.Screen) {
	playerX := g.cfg.Player.X

	if g.state == StateDucking {
		baseY := g.groundY - duckingHeight
		dst.SetCell(playerX, baseY, DinoBody, core.ColorBrightGreen)
		dst.SetCell(playerX+1, baseY, DinoBody, core.ColorBrightGreen)
		dst.SetCell(playerX+2, baseY, DinoHead, core.ColorBrightGreen)
		dst.Set(playerX, baseY+1, DinoLeg1)
		dst.Set(playerX+2, baseY+1, DinoLeg2)
		return
	}

	baseY := g.groundY - standingHeight + int(g.playerY)

	// Head and body
	dst.SetCell(playerX+1, baseY, DinoHead, core.ColorBrightGreen)
	dst.SetCell(playerX+2, baseY, DinoBody, core.ColorBrightGreen)
	dst.SetCell(playerX, baseY+1, DinoBody, core.ColorBrightGreen)
	dst.SetCell(playerX+1, baseY+1, DinoBody, core.ColorBrightGreen)
	dst.SetCell(playerX+2, baseY+1, DinoBody, core.ColorBrightGreen)

	// Legs (animated when grounded)
	if g.state == StateGrounded {
		if g.legFrame < 5 {
			dst.Set(playerX, baseY+2, DinoLeg1)
			dst.Set(playerX+2, baseY+2, DinoLeg2)
		} else {
			dst.Set(playerX+1, baseY+2, DinoLeg1)
			dst.Set(playerX+2, baseY+2, DinoLeg2)
		}
	} else {
		dst.Set(playerX, baseY+2, DinoLeg1)
		dst.Set(playerX+1, baseY+2, DinoLeg2)
	}
}

// drawObstacle renders a cactus or bird.
func (g *Game) drawObstacle(dst *core.Screen, o Obstacle) {
	x := int(o.X)
	if o.Kind == ObstacleBird {
		y := g.groundY - o.Altitude
		dst.SetCell(x, y, BirdChar, core.ColorBrightCyan)
		dst.SetCell(x+1, y, BirdChar, core.ColorBrightCyan)
		return
	}
	for dy := 0; dy < o.H; dy++ {
		for dx := 0; dx < o.W; dx++ {
			dst.SetCell(x+dx, g.groundY-o.H+dy, CactusChar, core.ColorGreen)
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
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
	registry.Register("dino", func() registry.Game {
		return New()
	})
}
