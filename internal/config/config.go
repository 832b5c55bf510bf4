// Package config provides YAML-based tuning for the arcade games.
// Every gameplay constant a game balances around lives here so it can be
// overridden from a config file instead of being buried in game code.
package config

// BreakoutConfig contains all tuning for the Breakout game.
type BreakoutConfig struct {
	Physics  BreakoutPhysics  `yaml:"physics"`
	Paddle   BreakoutPaddle   `yaml:"paddle"`
	Bricks   BreakoutBricks   `yaml:"bricks"`
	Gameplay BreakoutGameplay `yaml:"gameplay"`
}

// BreakoutPhysics defines ball movement parameters.
type BreakoutPhysics struct {
	BaseSpeed           float64 `yaml:"base_speed"`            // Serve speed, cells per tick
	MaxSpeed            float64 `yaml:"max_speed"`             // Speed ramp ceiling
	SpeedIncrement      float64 `yaml:"speed_increment"`       // Added per destroyed brick
	MinVertical         float64 `yaml:"min_vertical"`          // Floor on |vy| after paddle hits
	MaxHorizontalFactor float64 `yaml:"max_horizontal_factor"` // |vx| cap as multiple of base speed
}

// BreakoutPaddle defines paddle parameters.
type BreakoutPaddle struct {
	Width    int     `yaml:"width"`
	MoveStep float64 `yaml:"move_step"` // Cells per held direction per tick
}

// BreakoutBricks defines the brick field layout and scoring.
type BreakoutBricks struct {
	Rows      int   `yaml:"rows"`
	PerRow    int   `yaml:"per_row"`
	RowPoints []int `yaml:"row_points"` // Top row first
}

// BreakoutGameplay defines round rules.
type BreakoutGameplay struct {
	Lives int `yaml:"lives"`
}

// DinoConfig contains all tuning for the Dino Run game.
type DinoConfig struct {
	Physics   DinoPhysics   `yaml:"physics"`
	Obstacles DinoObstacles `yaml:"obstacles"`
	Player    DinoPlayer    `yaml:"player"`
}

// DinoPhysics defines jump and world-speed parameters.
type DinoPhysics struct {
	Gravity        float64 `yaml:"gravity"`          // Per tick, downward positive
	JumpVelocity   float64 `yaml:"jump_velocity"`    // Initial jump velocity (negative = up)
	FastFallFactor float64 `yaml:"fast_fall_factor"` // Gravity multiplier while holding Down mid-air
	BaseSpeed      float64 `yaml:"base_speed"`       // World scroll, cells per tick
	MaxSpeed       float64 `yaml:"max_speed"`        // Speed ramp ceiling
	SpeedIncrement float64 `yaml:"speed_increment"`  // Added every SpeedInterval ticks
	SpeedInterval  int     `yaml:"speed_interval"`   // Ticks between speed bumps
}

// DinoObstacles defines spawn cadence and bird behavior.
type DinoObstacles struct {
	MinGapBase    float64 `yaml:"min_gap_base"`    // Min spawn gap in ticks at speed 1.0
	MaxGapBase    float64 `yaml:"max_gap_base"`    // Max spawn gap in ticks at speed 1.0
	BirdScore     int     `yaml:"bird_score"`      // Score at which birds start appearing
	BirdChance    float64 `yaml:"bird_chance"`     // Probability a spawn is a bird
	LowBirdChance float64 `yaml:"low_bird_chance"` // Probability a bird flies at duck height
}

// DinoPlayer defines the runner itself.
type DinoPlayer struct {
	X            int `yaml:"x"`             // Fixed screen column
	DuckTicks    int `yaml:"duck_ticks"`    // Duck duration per press
	ScoreEvery   int `yaml:"score_every"`   // Ticks per score point
	GroundOffset int `yaml:"ground_offset"` // Rows between ground line and screen bottom
}

// FroggerConfig contains all tuning for the Frogger game.
type FroggerConfig struct {
	Lives      int           `yaml:"lives"`
	GoalPads   int           `yaml:"goal_pads"`
	PadRadius  int           `yaml:"pad_radius"`  // Horizontal tolerance when docking on a pad
	SpeedScale float64       `yaml:"speed_scale"` // Multiplier applied to every lane speed
	Scores     FroggerScores `yaml:"scores"`
}

// FroggerScores defines point awards.
type FroggerScores struct {
	Step  int `yaml:"step"`  // Per forward hop
	Pad   int `yaml:"pad"`   // Per filled goal pad
	Sweep int `yaml:"sweep"` // Bonus for filling all pads
}

// JezzballConfig contains all tuning for the JezzBall game.
type JezzballConfig struct {
	Width         int            `yaml:"width"`  // Playfield cells, excluding border
	Height        int            `yaml:"height"`
	Lives         int            `yaml:"lives"`
	TargetPercent int            `yaml:"target_percent"` // Filled percentage that clears a level
	BallSpeed     float64        `yaml:"ball_speed"`     // Cells per tick on each axis
	MaxBalls      int            `yaml:"max_balls"`
	WallInterval  int            `yaml:"wall_interval"` // Ticks between wall-head advances
	Scores        JezzballScores `yaml:"scores"`
}

// JezzballScores defines point awards.
type JezzballScores struct {
	Cell       int `yaml:"cell"`        // Per captured empty cell
	Wall       int `yaml:"wall"`        // Per completed wall segment
	LevelBonus int `yaml:"level_bonus"` // Multiplied by level number on clear
}

// PinballConfig contains all tuning for the Pinball table.
type PinballConfig struct {
	Physics  PinballPhysics  `yaml:"physics"`
	Flippers PinballFlippers `yaml:"flippers"`
	Plunger  PinballPlunger  `yaml:"plunger"`
	Bumpers  PinballBumpers  `yaml:"bumpers"`
	Spinners PinballSpinners `yaml:"spinners"`
	Gameplay PinballGameplay `yaml:"gameplay"`
}

// PinballPhysics defines table-wide ball movement parameters.
type PinballPhysics struct {
	Gravity          float64 `yaml:"gravity"`           // Per tick squared
	Damping          float64 `yaml:"damping"`           // Horizontal velocity retained per tick
	WallRestitution  float64 `yaml:"wall_restitution"`  // Side wall bounce factor
	FloorRestitution float64 `yaml:"floor_restitution"` // Slanted floor bounce factor
}

// PinballFlippers defines flipper behavior.
type PinballFlippers struct {
	Force       float64 `yaml:"force"`        // Upward impulse at full extension (negative = up)
	ActiveTicks int     `yaml:"active_ticks"` // Ticks a flipper stays engaged per press
}

// PinballPlunger defines the launch mechanism.
type PinballPlunger struct {
	ChargeRate float64 `yaml:"charge_rate"` // Power gained per held tick, capped at 1.0
	MinPower   float64 `yaml:"min_power"`   // Launch power floor
	LaunchDY   float64 `yaml:"launch_dy"`   // Vertical launch speed per unit power
	LaunchDX   float64 `yaml:"launch_dx"`   // Horizontal kick out of the chute
}

// PinballBumpers defines bumper scoring and the combo system.
type PinballBumpers struct {
	Impulse     float64 `yaml:"impulse"`      // Radial kick speed
	ComboWindow int     `yaml:"combo_window"` // Ticks between hits that extend a combo
	ComboCap    int     `yaml:"combo_cap"`    // Maximum score multiplier
}

// PinballSpinners defines spinner gates.
type PinballSpinners struct {
	Points  int     `yaml:"points"`  // Per contact, before combo multiplier
	Impulse float64 `yaml:"impulse"` // Speed boost along travel direction
}

// PinballGameplay defines round rules.
type PinballGameplay struct {
	Balls int `yaml:"balls"` // Balls per round, excluding multiball extras
}

// BeamConfig contains all tuning for the Beam accelerator game.
type BeamConfig struct {
	Lattice  BeamLattice  `yaml:"lattice"`
	Controls BeamControls `yaml:"controls"`
}

// BeamLattice defines the machine the player threads the beam through.
type BeamLattice struct {
	Sections        int     `yaml:"sections"`          // Lattice cells per turn
	Aperture        float64 `yaml:"aperture"`          // Hard loss boundary, +/- from axis
	LossZone        float64 `yaml:"loss_zone"`         // Scraping starts beyond this offset
	MaxLosses       float64 `yaml:"max_losses"`        // Accumulated scraping that ends the run
	DesignDipole    float64 `yaml:"design_dipole"`     // Nominal bend per dipole, radians
	GoalTurns       int     `yaml:"goal_turns"`        // Survive this many turns to win
	StepsPerTick    int     `yaml:"steps_per_tick"`    // Lattice elements traversed per tick
	ProgressPerTick float64 `yaml:"progress_per_tick"` // Section fraction advanced per tick
	Restrictions    int     `yaml:"restrictions"`      // Random half-plane aperture restrictions
	RestrictionSize float64 `yaml:"restriction_size"`  // Aperture cut of each restriction
	SizeGrowth      float64 `yaml:"size_growth"`       // Beam size growth per dipole, hard mode
}

// BeamControls defines the operator console behavior.
type BeamControls struct {
	NumRamps     int     `yaml:"num_ramps"`      // Ramp points per magnet, one per turn slot
	MaxRampDelta float64 `yaml:"max_ramp_delta"` // Clamp between neighboring ramp points
	DefaultStep  float64 `yaml:"default_step"`   // Initial power-adjust step
	MinStep      float64 `yaml:"min_step"`
	MaxStep      float64 `yaml:"max_step"`
}

// DifficultyPreset selects a named tuning variant where a game offers one.
type DifficultyPreset string

const (
	DifficultyEasy DifficultyPreset = "easy"
	DifficultyHard DifficultyPreset = "hard"
)

// ApplyBeamPreset adjusts the lattice for a named difficulty. Easy is the
// embedded default; hard adds aperture restrictions and beam-size growth
// through mis-set dipoles.
func ApplyBeamPreset(cfg *BeamConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Lattice.Restrictions = 0
		cfg.Lattice.SizeGrowth = 0
	case DifficultyHard:
		cfg.Lattice.Restrictions = 4
		cfg.Lattice.RestrictionSize = 15.0
		cfg.Lattice.SizeGrowth = 0.05
	}
}
