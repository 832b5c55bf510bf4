package dino

import (
	"github.com/dsemenov/retrocade/internal/config"
	"github.com/dsemenov/retrocade/internal/core"
)

// ObstacleKind distinguishes ground cacti from flying birds.
type ObstacleKind int

const (
	ObstacleCactus ObstacleKind = iota
	ObstacleBird
)

// Obstacle is a single hazard scrolling toward the player.
type Obstacle struct {
	Kind     ObstacleKind
	X        float64
	W, H     int
	Altitude int // Bird bottom row above ground; 0 for cacti
}

// cactusVariants are the five cactus silhouettes, width x height.
var cactusVariants = [5][2]int{
	{1, 2}, {2, 2}, {1, 3}, {2, 3}, {3, 3},
}

// Bird altitudes above ground. Low birds clip a standing player but pass
// over a ducking one; high birds only matter mid-jump.
const (
	birdLowAltitude  = 3
	birdHighAltitude = 5
)

// ObstacleManager spawns and advances obstacles deterministically from
// the game seed.
type ObstacleManager struct {
	rng       *core.SimpleRNG
	cfg       *config.DinoConfig
	screenW   int
	obstacles []Obstacle
	spawnIn   int // Ticks until next spawn
}

// NewObstacleManager creates a manager seeded for deterministic spawns.
func NewObstacleManager(seed int64, screenW int, cfg *config.DinoConfig) *ObstacleManager {
	m := &ObstacleManager{}
	m.Reset(seed, screenW, cfg)
	return m
}

// Reset clears all obstacles and reseeds the spawn sequence.
func (m *ObstacleManager) Reset(seed int64, screenW int, cfg *config.DinoConfig) {
	m.rng = core.NewSimpleRNG(seed)
	m.cfg = cfg
	m.screenW = screenW
	m.obstacles = m.obstacles[:0]
	m.spawnIn = m.nextGap(cfg.Physics.BaseSpeed)
}

// nextGap samples the tick gap before the next spawn. Faster worlds close
// the gap so on-screen spacing stays roughly constant.
func (m *ObstacleManager) nextGap(speed float64) int {
	gap := m.rng.Range(m.cfg.Obstacles.MinGapBase, m.cfg.Obstacles.MaxGapBase)
	ticks := int(gap / speed)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// Update advances all obstacles and spawns new ones on schedule.
func (m *ObstacleManager) Update(speed float64, score int) {
	// Scroll; birds fly slightly faster than the ground moves
	kept := m.obstacles[:0]
	for _, o := range m.obstacles {
		v := speed
		if o.Kind == ObstacleBird {
			v = speed * 1.25
		}
		o.X -= v
		if o.X+float64(o.W) > 0 {
			kept = append(kept, o)
		}
	}
	m.obstacles = kept

	m.spawnIn--
	if m.spawnIn <= 0 {
		m.spawn(score)
		m.spawnIn = m.nextGap(speed)
	}
}

// spawn adds one obstacle at the right edge. Birds only appear past the
// configured score threshold.
func (m *ObstacleManager) spawn(score int) {
	x := float64(m.screenW + 1)

	if score >= m.cfg.Obstacles.BirdScore && m.rng.Chance(m.cfg.Obstacles.BirdChance) {
		alt := birdHighAltitude
		if m.rng.Chance(m.cfg.Obstacles.LowBirdChance) {
			alt = birdLowAltitude
		}
		m.obstacles = append(m.obstacles, Obstacle{
			Kind:     ObstacleBird,
			X:        x,
			W:        2,
			H:        1,
			Altitude: alt,
		})
		return
	}

	variant := cactusVariants[m.rng.Intn(len(cactusVariants))]
	m.obstacles = append(m.obstacles, Obstacle{
		Kind: ObstacleCactus,
		X:    x,
		W:    variant[0],
		H:    variant[1],
	})
}

// All returns the live obstacles for rendering.
func (m *ObstacleManager) All() []Obstacle {
	return m.obstacles
}

// CheckCollision reports whether any obstacle overlaps the player box.
func (m *ObstacleManager) CheckCollision(player core.Rect, groundY int) bool {
	for _, o := range m.obstacles {
		var rect core.Rect
		if o.Kind == ObstacleBird {
			rect = core.NewRect(int(o.X), groundY-o.Altitude, o.W, o.H)
		} else {
			rect = core.NewRect(int(o.X), groundY-o.H, o.W, o.H)
		}
		if player.Intersects(rect) {
			return true
		}
	}
	return false
}
