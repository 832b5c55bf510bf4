package jezzball

import (
	"math"

	"github.com/dsemenov/retrocade/internal/core"
)

// point is a grid cell coordinate.
type point struct {
	X, Y int
}

// wallHead is one growing end of a wall under construction.
type wallHead struct {
	X, Y   int
	DX, DY int
	Done   bool
}

// buildingWall is a wall growing from an anchor cell in two opposite
// directions. Its pending cells stay passable until both heads land on
// solid ground; a ball entering a pending cell destroys the whole build.
type buildingWall struct {
	pending []point
	heads   [2]wallHead
}

// startWall anchors a new wall at the cursor along the current axis.
func (g *Game) startWall() {
	dx, dy := 1, 0
	if g.vertical {
		dx, dy = 0, 1
	}
	g.wall = &buildingWall{
		pending: []point{{g.cursorX, g.cursorY}},
		heads: [2]wallHead{
			{X: g.cursorX, Y: g.cursorY, DX: dx, DY: dy},
			{X: g.cursorX, Y: g.cursorY, DX: -dx, DY: -dy},
		},
	}
}

// advanceWall grows each live head by one cell. A head stops when the
// next cell is solid or off the field; when both heads have stopped the
// wall commits and capture is resolved.
func (g *Game) advanceWall() {
	w := g.wall
	for i := range w.heads {
		h := &w.heads[i]
		if h.Done {
			continue
		}
		nx, ny := h.X+h.DX, h.Y+h.DY
		if nx < 0 || nx >= g.cfg.Width || ny < 0 || ny >= g.cfg.Height || g.grid[ny][nx] != CellEmpty {
			h.Done = true
			continue
		}
		h.X, h.Y = nx, ny
		w.pending = append(w.pending, point{nx, ny})
	}

	if w.heads[0].Done && w.heads[1].Done {
		g.commitWall()
	}
}

// commitWall hardens the pending cells into wall, then captures every
// region the new wall sealed off from the balls.
func (g *Game) commitWall() {
	// A ball sitting on a pending cell at the moment of closure still
	// breaks the wall
	for _, b := range g.balls {
		if g.wall.contains(cellOf(b.X), cellOf(b.Y)) {
			g.loseWall()
			return
		}
	}

	for _, p := range g.wall.pending {
		g.grid[p.Y][p.X] = CellWall
	}
	g.wall = nil
	g.score += g.cfg.Scores.Wall

	g.captureRegions()

	if g.percentFilled() >= g.cfg.TargetPercent {
		g.levelCleared()
	}
}

// captureRegions flood-fills the empty space reachable from the balls;
// everything left unreached is captured and scored per cell.
func (g *Game) captureRegions() {
	reached := make([][]bool, g.cfg.Height)
	for y := range reached {
		reached[y] = make([]bool, g.cfg.Width)
	}

	var queue []point
	for _, b := range g.balls {
		p := point{core.Clamp(cellOf(b.X), 0, g.cfg.Width-1), core.Clamp(cellOf(b.Y), 0, g.cfg.Height-1)}
		if !reached[p.Y][p.X] {
			reached[p.Y][p.X] = true
			queue = append(queue, p)
		}
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range [4]point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := p.X+d.X, p.Y+d.Y
			if nx < 0 || nx >= g.cfg.Width || ny < 0 || ny >= g.cfg.Height {
				continue
			}
			if reached[ny][nx] || g.grid[ny][nx] != CellEmpty {
				continue
			}
			reached[ny][nx] = true
			queue = append(queue, point{nx, ny})
		}
	}

	for y := range g.grid {
		for x, c := range g.grid[y] {
			if c == CellEmpty && !reached[y][x] {
				g.grid[y][x] = CellFilled
				g.score += g.cfg.Scores.Cell
			}
		}
	}
}

// contains reports whether (x, y) is one of the wall's pending cells.
func (w *buildingWall) contains(x, y int) bool {
	for _, p := range w.pending {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}

// stepBalls moves every ball one tick, bouncing off solid cells and the
// field edge per axis. A ball crossing a pending wall cell destroys the
// build in progress.
func (g *Game) stepBalls() {
	for i := range g.balls {
		b := &g.balls[i]

		nx := b.X + b.VX
		if g.solid(cellOf(nx), cellOf(b.Y)) {
			b.VX = -b.VX
		} else {
			b.X = nx
		}

		ny := b.Y + b.VY
		if g.solid(cellOf(b.X), cellOf(ny)) {
			b.VY = -b.VY
		} else {
			b.Y = ny
		}

		if g.wall != nil && g.wall.contains(cellOf(b.X), cellOf(b.Y)) {
			g.loseWall()
			if g.phase.Terminal() {
				return
			}
		}
	}
}

// cellOf maps a continuous coordinate to its grid cell.
func cellOf(v float64) int {
	return int(math.Floor(v))
}

// solid reports whether the cell is impassable for balls. Pending wall
// cells are not solid; balls fly through and break them.
func (g *Game) solid(x, y int) bool {
	if x < 0 || x >= g.cfg.Width || y < 0 || y >= g.cfg.Height {
		return true
	}
	return g.grid[y][x] != CellEmpty
}
