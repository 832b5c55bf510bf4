package breakout

import (
	"math"

	"github.com/dsemenov/retrocade/internal/core"
)

// setVelocity points the ball along (vx, vy) scaled to the current speed,
// enforcing the horizontal cap and the vertical floor so the ball can
// never flatten into an unwinnable near-horizontal orbit.
func (g *Game) setVelocity(vx, vy float64) {
	maxVX := g.cfg.Physics.MaxHorizontalFactor * g.cfg.Physics.BaseSpeed
	vx = core.ClampF(vx, -maxVX, maxVX)

	minVY := g.cfg.Physics.MinVertical
	mag2 := g.ballSpeed*g.ballSpeed - vx*vx
	vyMag := minVY
	if mag2 > minVY*minVY {
		vyMag = math.Sqrt(mag2)
	}
	if vy < 0 {
		vyMag = -vyMag
	}

	g.ballVX = vx
	g.ballVY = vyMag
}

// stepBall advances the ball one tick and resolves all collisions.
func (g *Game) stepBall() {
	prevY := g.ballY
	g.ballX += g.ballVX
	g.ballY += g.ballVY

	w := float64(g.runtime.ScreenW)

	// Side walls
	if g.ballX <= 1 {
		g.ballX = 1
		g.ballVX = -g.ballVX
	} else if g.ballX >= w-2 {
		g.ballX = w - 2
		g.ballVX = -g.ballVX
	}

	// Ceiling
	if g.ballY <= 1 {
		g.ballY = 1
		g.ballVY = -g.ballVY
	}

	// Paddle. Swept check: a fast ball may jump past the paddle row in
	// one tick, so test the crossing rather than the landing cell.
	paddleRow := float64(g.paddleY)
	if g.ballVY > 0 && core.CrossedRow(prevY, g.ballY, paddleRow) {
		if g.ballX >= g.paddleX-0.5 && g.ballX <= g.paddleX+float64(g.cfg.Paddle.Width)+0.5 {
			g.bouncePaddle()
		}
	}

	// Drain
	if g.ballY > float64(g.paddleY) {
		g.loseBall()
		return
	}

	g.hitBricks()
}

// bouncePaddle reflects the ball upward with an angle proportional to the
// hit offset from the paddle center.
func (g *Game) bouncePaddle() {
	g.ballY = float64(g.paddleY - 1)
	center := g.paddleX + float64(g.cfg.Paddle.Width)/2
	half := float64(g.cfg.Paddle.Width) / 2
	offset := core.ClampF((g.ballX-center)/half, -1, 1)
	g.setVelocity(offset*g.ballSpeed*g.cfg.Physics.MaxHorizontalFactor, -1)
}

// loseBall costs a life and re-serves, or ends the game.
func (g *Game) loseBall() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.phase = core.PhaseLost
		return
	}
	g.serve()
}

// brickWidth returns the cell width of one brick column.
func (g *Game) brickWidth() int {
	return (g.runtime.ScreenW - 2) / g.cfg.Bricks.PerRow
}

// hitBricks resolves at most one brick collision per tick, reflecting the
// ball along the axis with the smaller penetration.
func (g *Game) hitBricks() {
	row := int(g.ballY) - brickTop
	if row < 0 || row >= len(g.bricks) {
		return
	}

	brickW := g.brickWidth()
	col := (int(g.ballX) - 1) / brickW
	if col < 0 || col >= len(g.bricks[row]) || !g.bricks[row][col] {
		return
	}

	g.bricks[row][col] = false
	g.remaining--
	g.score += g.rowPoints(row)
	g.speedUp()

	// Penetration on each axis decides the reflection: shallow side wins.
	brickLeft := float64(1 + col*brickW)
	brickRight := brickLeft + float64(brickW)
	brickTopY := float64(brickTop + row)
	brickBotY := brickTopY + 1

	penX := math.Min(g.ballX-brickLeft, brickRight-g.ballX)
	penY := math.Min(g.ballY-brickTopY, brickBotY-g.ballY)
	if penX < penY {
		g.ballVX = -g.ballVX
	} else {
		g.ballVY = -g.ballVY
	}

	if g.remaining == 0 {
		g.phase = core.PhaseWon
	}
}

// rowPoints returns the score value of a brick in the given row.
func (g *Game) rowPoints(row int) int {
	pts := g.cfg.Bricks.RowPoints
	if row < len(pts) {
		return pts[row]
	}
	if len(pts) > 0 {
		return pts[len(pts)-1]
	}
	return 10
}

// speedUp nudges the ball speed toward the cap and rescales velocity to
// the new magnitude. The ramp never reverses.
func (g *Game) speedUp() {
	g.ballSpeed = math.Min(g.ballSpeed+g.cfg.Physics.SpeedIncrement, g.cfg.Physics.MaxSpeed)
	mag := math.Hypot(g.ballVX, g.ballVY)
	if mag > 0 {
		scale := g.ballSpeed / mag
		g.ballVX *= scale
		g.ballVY *= scale
	}
}
