package pinball

import (
	"math"

	"github.com/dsemenov/retrocade/internal/core"
)

// Table layout in playfield units. The chute runs along the right edge;
// the funnel slopes guide drained balls onto the flippers, with the
// drain gap between the two flipper spans.
const (
	tableW = 40.0
	tableH = 22.0

	chuteWallX = 36.0 // Wall between table and launch chute
	chuteX     = 38.0 // Ball x while riding the chute
	chuteTop   = 3.0  // Above this the launched ball kicks into the table

	slopeTopY   = 13.0 // Funnel slopes start here
	slopeGrade  = 2.0  // Cells of x per cell of y
	flipperY    = 19.0
	flipperLen  = 5.0
	leftPivotX  = 13.0 // Left flipper spans pivot..pivot+len
	rightPivotX = 27.0 // Right flipper spans pivot-len..pivot
)

// Bumper is a fixed circular kicker.
type Bumper struct {
	X, Y   float64
	Radius float64
	Points int
	Top    bool // Part of the multiball trio
}

// Spinner is a gate that awards points and a speed boost on pass-through.
type Spinner struct {
	X, Y float64
}

// tableBumpers is the fixed 8-bumper layout: a top trio (the multiball
// targets), a mid diamond, and one lower kicker above the drain.
var tableBumpers = []Bumper{
	{X: 10, Y: 5, Radius: 1.2, Points: 100, Top: true},
	{X: 18, Y: 4, Radius: 1.2, Points: 200, Top: true},
	{X: 26, Y: 5, Radius: 1.2, Points: 100, Top: true},
	{X: 7, Y: 9, Radius: 1.2, Points: 50},
	{X: 14, Y: 10, Radius: 1.2, Points: 75},
	{X: 22, Y: 10, Radius: 1.2, Points: 75},
	{X: 29, Y: 9, Radius: 1.2, Points: 50},
	{X: 18, Y: 13, Radius: 1.2, Points: 50},
}

var tableSpinners = []Spinner{
	{X: 5, Y: 8},
	{X: 31, Y: 8},
}

// BallState is one ball in play.
type BallState struct {
	X, Y       float64
	VX, VY     float64
	InChute    bool
	LastBumper int // Index of the most recent bumper contact
	Cooldown   int // Ticks until that bumper can score again
	SpinGuard  int // Ticks until a spinner can trigger again
}

// newChuteBall parks a fresh ball at the bottom of the launch chute.
func newChuteBall() BallState {
	return BallState{X: chuteX, Y: tableH - 2, InChute: true, LastBumper: -1}
}

// slopeLeft returns the left funnel boundary at depth y.
func slopeLeft(y float64) float64 {
	if y < slopeTopY {
		return 1
	}
	return 1 + slopeGrade*(y-slopeTopY)
}

// slopeRight returns the right funnel boundary at depth y.
func slopeRight(y float64) float64 {
	if y < slopeTopY {
		return chuteWallX - 1
	}
	return chuteWallX - 1 - slopeGrade*(y-slopeTopY)
}

// stepBall integrates one ball for one tick: gravity and damping, then
// four movement substeps with wall, slope, flipper, bumper and spinner
// collisions. Returns false when the ball drains.
func (g *Game) stepBall(b *BallState) bool {
	if b.InChute {
		return g.stepChute(b)
	}

	b.VY += g.cfg.Physics.Gravity
	b.VX *= g.cfg.Physics.Damping

	if b.Cooldown > 0 {
		b.Cooldown--
	}
	if b.SpinGuard > 0 {
		b.SpinGuard--
	}

	const substeps = 4
	for s := 0; s < substeps; s++ {
		prevY := b.Y
		b.X += b.VX / substeps
		b.Y += b.VY / substeps

		g.collideWalls(b)
		g.collideSlopes(b)
		if !g.collideFlippers(b, prevY) {
			return false // Drained
		}
		g.collideBumpers(b)
		g.collideSpinners(b)
	}
	return b.Y <= tableH
}

// stepChute holds the ball in the launch lane until the plunger fires it
// past the chute top, then kicks it left into the table.
func (g *Game) stepChute(b *BallState) bool {
	b.VY += g.cfg.Physics.Gravity
	b.Y += b.VY
	if b.Y >= tableH-2 {
		b.Y = tableH - 2
		b.VY = 0
	}
	if b.Y < chuteTop {
		b.InChute = false
		b.VX = g.cfg.Plunger.LaunchDX * (0.9 + 0.2*g.rng.Float64())
	}
	return true
}

// collideWalls bounces off the outer walls and the chute wall.
func (g *Game) collideWalls(b *BallState) {
	r := g.cfg.Physics.WallRestitution
	if b.X < 1 {
		b.X = 1
		b.VX = -b.VX * r
	}
	if b.X > chuteWallX-1 {
		b.X = chuteWallX - 1
		b.VX = -b.VX * r
	}
	if b.Y < 1 {
		b.Y = 1
		b.VY = -b.VY * r
	}
}

// collideSlopes deflects the ball along the funnel toward the flippers.
// The 2:1 slope converts falling speed into sideways speed.
func (g *Game) collideSlopes(b *BallState) {
	if b.Y < slopeTopY || b.Y > flipperY {
		return
	}
	r := g.cfg.Physics.FloorRestitution
	vx, vy := b.VX, b.VY
	if left := slopeLeft(b.Y); b.X < left {
		b.X = left
		b.VX = math.Abs(vy) * r
		b.VY = math.Abs(vx) * r
	} else if right := slopeRight(b.Y); b.X > right {
		b.X = right
		b.VX = -math.Abs(vy) * r
		b.VY = math.Abs(vx) * r
	}
}

// collideFlippers resolves the ball crossing the flipper line. An engaged
// flipper kicks harder toward the tip; a resting flipper is a slanted
// floor the ball rolls off toward the drain. Returns false on drain.
func (g *Game) collideFlippers(b *BallState, prevY float64) bool {
	if b.VY > 0 && core.CrossedRow(prevY, b.Y, flipperY) {
		switch {
		case b.X >= leftPivotX && b.X <= leftPivotX+flipperLen:
			g.flipperHit(b, g.leftTimer > 0, (b.X-leftPivotX)/flipperLen, 1)
			return true
		case b.X >= rightPivotX-flipperLen && b.X <= rightPivotX:
			g.flipperHit(b, g.rightTimer > 0, (rightPivotX-b.X)/flipperLen, -1)
			return true
		}
	}
	return b.Y <= tableH
}

// flipperHit applies the kick. t is the normalized distance from the
// pivot (the tip hits hardest); dir points toward the table center.
func (g *Game) flipperHit(b *BallState, engaged bool, t, dir float64) {
	b.Y = flipperY - 0.01
	if engaged {
		b.VY = g.cfg.Flippers.Force * (0.4 + 0.6*t)
		b.VX += dir * 0.6 * t
		return
	}
	// Resting flipper: dead bounce plus a roll toward the drain gap
	b.VY = -b.VY * g.cfg.Physics.FloorRestitution
	b.VX += dir * 0.04
}

// collideBumpers kicks the ball radially off any bumper it overlaps and
// scores it through the combo multiplier.
func (g *Game) collideBumpers(b *BallState) {
	for i := range tableBumpers {
		bp := &tableBumpers[i]
		dx, dy := b.X-bp.X, b.Y-bp.Y
		if dx*dx+dy*dy > bp.Radius*bp.Radius {
			continue
		}
		if b.LastBumper == i && b.Cooldown > 0 {
			continue
		}
		b.LastBumper = i
		b.Cooldown = 6

		dist := math.Hypot(dx, dy)
		if dist == 0 {
			dx, dist = 1, 1
		}
		b.VX = dx / dist * g.cfg.Bumpers.Impulse
		b.VY = dy / dist * g.cfg.Bumpers.Impulse

		g.scoreBumper(i, bp)
	}
}

// collideSpinners awards the gate bonus and boosts the ball along its
// travel direction.
func (g *Game) collideSpinners(b *BallState) {
	if b.SpinGuard > 0 {
		return
	}
	for i := range tableSpinners {
		sp := &tableSpinners[i]
		if math.Abs(b.X-sp.X) > 0.7 || math.Abs(b.Y-sp.Y) > 1.5 {
			continue
		}
		b.SpinGuard = 8
		speed := math.Hypot(b.VX, b.VY)
		if speed > 0 {
			scale := (speed + g.cfg.Spinners.Impulse) / speed
			b.VX *= scale
			b.VY *= scale
		}
		g.score += g.cfg.Spinners.Points
		g.spinAnim += 8
		return
	}
}
