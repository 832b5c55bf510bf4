package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

//go:embed defaults/jezzball.yaml
var defaultJezzballYAML []byte

//go:embed defaults/pinball.yaml
var defaultPinballYAML []byte

//go:embed defaults/beam.yaml
var defaultBeamYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
// Mirrors defaults/breakout.yaml for callers that need a config without I/O.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Physics: BreakoutPhysics{
			BaseSpeed:           0.35,
			MaxSpeed:            0.7,
			SpeedIncrement:      0.003,
			MinVertical:         0.15,
			MaxHorizontalFactor: 1.5,
		},
		Paddle: BreakoutPaddle{
			Width:    12,
			MoveStep: 2.0,
		},
		Bricks: BreakoutBricks{
			Rows:      6,
			PerRow:    12,
			RowPoints: []int{60, 50, 40, 30, 20, 10},
		},
		Gameplay: BreakoutGameplay{
			Lives: 3,
		},
	}
}

// DefaultDinoConfig returns the default Dino Run configuration.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		Physics: DinoPhysics{
			Gravity:        0.065,
			JumpVelocity:   -1.05,
			FastFallFactor: 4.0,
			BaseSpeed:      0.5,
			MaxSpeed:       1.5,
			SpeedIncrement: 0.05,
			SpeedInterval:  200,
		},
		Obstacles: DinoObstacles{
			MinGapBase:    40,
			MaxGapBase:    80,
			BirdScore:     200,
			BirdChance:    0.3,
			LowBirdChance: 0.5,
		},
		Player: DinoPlayer{
			X:            8,
			DuckTicks:    8,
			ScoreEvery:   3,
			GroundOffset: 2,
		},
	}
}

// DefaultFroggerConfig returns the default Frogger configuration.
func DefaultFroggerConfig() FroggerConfig {
	return FroggerConfig{
		Lives:      3,
		GoalPads:   5,
		PadRadius:  2,
		SpeedScale: 1.0,
		Scores: FroggerScores{
			Step:  10,
			Pad:   100,
			Sweep: 500,
		},
	}
}

// DefaultJezzballConfig returns the default JezzBall configuration.
func DefaultJezzballConfig() JezzballConfig {
	return JezzballConfig{
		Width:         60,
		Height:        22,
		Lives:         3,
		TargetPercent: 75,
		BallSpeed:     0.4,
		MaxBalls:      8,
		WallInterval:  2,
		Scores: JezzballScores{
			Cell:       1,
			Wall:       10,
			LevelBonus: 100,
		},
	}
}

// DefaultPinballConfig returns the default Pinball configuration.
func DefaultPinballConfig() PinballConfig {
	return PinballConfig{
		Physics: PinballPhysics{
			Gravity:          0.04,
			Damping:          0.98,
			WallRestitution:  0.8,
			FloorRestitution: 0.6,
		},
		Flippers: PinballFlippers{
			Force:       -1.8,
			ActiveTicks: 6,
		},
		Plunger: PinballPlunger{
			ChargeRate: 0.03,
			MinPower:   0.4,
			LaunchDY:   3.5,
			LaunchDX:   -1.2,
		},
		Bumpers: PinballBumpers{
			Impulse:     1.2,
			ComboWindow: 30,
			ComboCap:    5,
		},
		Spinners: PinballSpinners{
			Points:  25,
			Impulse: 0.9,
		},
		Gameplay: PinballGameplay{
			Balls: 3,
		},
	}
}

// DefaultBeamConfig returns the default Beam configuration (easy lattice).
func DefaultBeamConfig() BeamConfig {
	return BeamConfig{
		Lattice: BeamLattice{
			Sections:        24,
			Aperture:        50.0,
			LossZone:        25.0,
			MaxLosses:       100.0,
			DesignDipole:    0.1309,
			GoalTurns:       5,
			StepsPerTick:    3,
			ProgressPerTick: 0.4,
			Restrictions:    0,
			RestrictionSize: 0,
			SizeGrowth:      0,
		},
		Controls: BeamControls{
			NumRamps:     10,
			MaxRampDelta: 0.5,
			DefaultStep:  0.01,
			MinStep:      0.001,
			MaxStep:      1.0,
		},
	}
}
