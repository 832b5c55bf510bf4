package breakout

import (
	"testing"

	"github.com/dsemenov/retrocade/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     12345,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and same inputs must produce identical runs
	cfg := testConfig()

	inputSequence := make([]core.InputFrame, 300)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i == 10 {
			inputSequence[i].Set(core.ActionPrimary) // Launch ball
		} else if i > 10 && i%5 < 3 {
			inputSequence[i].Set(core.ActionRight)
		} else if i > 10 {
			inputSequence[i].Set(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(cfg)
		for _, in := range inputSequence {
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
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.BallX != snap2.BallX || snap1.BallY != snap2.BallY {
		t.Error("Determinism failed: ball positions differ")
	}
}

func TestServeAndLaunch(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	if g.phase != core.PhaseReady {
		t.Fatalf("Fresh game should be Ready, got %v", g.phase)
	}
	if !g.stuck {
		t.Fatal("Fresh game should serve with the ball stuck to the paddle")
	}

	// Ticks without Primary keep the ball parked
	in := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(in)
	}
	if !g.stuck || g.phase != core.PhaseReady {
		t.Error("Ball should stay stuck until launched")
	}

	in.Set(core.ActionPrimary)
	g.Step(in)

	if g.stuck {
		t.Error("Launch should release the ball")
	}
	if g.phase != core.PhaseRunning {
		t.Errorf("Launch should start the game, got %v", g.phase)
	}
	if g.ballVY >= 0 {
		t.Errorf("Launched ball should move up, vy = %f", g.ballVY)
	}
}

func TestStuckBallFollowsPaddle(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	for i := 0; i < 5; i++ {
		g.Step(in)
	}

	wantX := g.paddleX + float64(g.cfg.Paddle.Width)/2
	if g.ballX != wantX {
		t.Errorf("Stuck ball should track paddle center: ball %f, want %f", g.ballX, wantX)
	}
}

func TestPaddleReflectionAngle(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.phase = core.PhaseRunning
	g.stuck = false

	// Drop the ball onto the right edge of the paddle
	g.ballX = g.paddleX + float64(g.cfg.Paddle.Width) - 1
	g.ballY = float64(g.paddleY) - 0.2
	g.ballVX = 0
	g.ballVY = g.ballSpeed

	g.stepBall()

	if g.ballVY >= 0 {
		t.Errorf("Ball should bounce upward, vy = %f", g.ballVY)
	}
	if g.ballVX <= 0 {
		t.Errorf("Edge hit should deflect outward, vx = %f", g.ballVX)
	}

	maxVX := g.cfg.Physics.MaxHorizontalFactor * g.cfg.Physics.BaseSpeed
	if g.ballVX > maxVX+1e-9 {
		t.Errorf("Horizontal speed %f exceeds cap %f", g.ballVX, maxVX)
	}
}

func TestSweptPaddleCollision(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.phase = core.PhaseRunning
	g.stuck = false

	// Ball far above the paddle moving fast enough to jump past the
	// paddle row in a single tick
	g.ballX = g.paddleX + float64(g.cfg.Paddle.Width)/2
	g.ballY = float64(g.paddleY) - 3
	g.ballVX = 0
	g.ballVY = 5.0

	g.stepBall()

	if g.ballVY >= 0 {
		t.Error("Fast ball should still bounce off the paddle, not tunnel through")
	}
	if g.lives != g.cfg.Gameplay.Lives {
		t.Error("Swept paddle hit should not cost a life")
	}
}

func TestBrickScoringByRow(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	if got := g.rowPoints(0); got != 60 {
		t.Errorf("Top row should score 60, got %d", got)
	}
	if got := g.rowPoints(5); got != 10 {
		t.Errorf("Bottom row should score 10, got %d", got)
	}
}

func TestBrickHitSpeedsUpBall(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.phase = core.PhaseRunning
	g.stuck = false

	before := g.ballSpeed

	// Park the ball inside the top-left brick
	g.ballX = 2
	g.ballY = float64(brickTop) + 0.5
	g.ballVX = 0.1
	g.ballVY = -0.3
	g.hitBricks()

	if g.bricks[0][0] {
		t.Error("Brick should be destroyed")
	}
	if g.score != 60 {
		t.Errorf("Top-row brick should score 60, got %d", g.score)
	}
	if g.ballSpeed <= before {
		t.Errorf("Ball should speed up after a brick: %f -> %f", before, g.ballSpeed)
	}
}

func TestSpeedRampCap(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.ballVX = 0.1
	g.ballVY = -0.3

	for i := 0; i < 1000; i++ {
		g.speedUp()
	}
	if g.ballSpeed > g.cfg.Physics.MaxSpeed+1e-9 {
		t.Errorf("Speed %f exceeds cap %f", g.ballSpeed, g.cfg.Physics.MaxSpeed)
	}
}

func TestLifeLossAndGameOver(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.phase = core.PhaseRunning
	g.stuck = false

	startLives := g.lives

	// Drop the ball below the paddle
	g.ballX = 40
	g.ballY = float64(g.paddleY) + 0.5
	g.ballVX = 0
	g.ballVY = 1
	g.stepBall()

	if g.lives != startLives-1 {
		t.Errorf("Drain should cost a life: %d -> %d", startLives, g.lives)
	}
	if !g.stuck {
		t.Error("Ball should re-serve after a drain")
	}

	// Burn the remaining lives
	for g.lives > 0 {
		g.stuck = false
		g.ballY = float64(g.paddleY) + 0.5
		g.ballVY = 1
		g.stepBall()
	}
	if g.phase != core.PhaseLost {
		t.Errorf("Zero lives should end the game, got %v", g.phase)
	}
}

func TestWinOnLastBrick(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.phase = core.PhaseRunning
	g.stuck = false

	// Clear everything but one brick
	for row := range g.bricks {
		for col := range g.bricks[row] {
			g.bricks[row][col] = false
		}
	}
	g.bricks[0][0] = true
	g.remaining = 1

	g.ballX = 2
	g.ballY = float64(brickTop) + 0.5
	g.ballVX = 0.1
	g.ballVY = -0.3
	g.hitBricks()

	if g.phase != core.PhaseWon {
		t.Errorf("Clearing the last brick should win, got %v", g.phase)
	}
}

func TestPauseOnlyWhileRunning(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	// Pause is a no-op in Ready
	g.Step(pause)
	if g.phase != core.PhaseReady {
		t.Errorf("Pause in Ready should do nothing, got %v", g.phase)
	}

	launch := core.NewInputFrame()
	launch.Set(core.ActionPrimary)
	g.Step(launch)

	g.Step(pause)
	if g.phase != core.PhasePaused {
		t.Errorf("Pause while Running should pause, got %v", g.phase)
	}

	// Simulation frozen while paused
	before := g.Snapshot()
	g.Step(core.NewInputFrame())
	after := g.Snapshot()
	if before.BallX != after.BallX || before.BallY != after.BallY {
		t.Error("Ball should not move while paused")
	}

	g.Step(pause)
	if g.phase != core.PhaseRunning {
		t.Errorf("Pause again should resume, got %v", g.phase)
	}
}

func TestStateStableBetweenSteps(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	s1 := g.State()
	s2 := g.State()
	if s1 != s2 {
		t.Error("State() must be stable between Steps")
	}

	// Render must not perturb simulation state
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if g.State() != s1 {
		t.Error("Render() must not mutate game state")
	}
}
