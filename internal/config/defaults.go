package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the built-in configuration. These are
// the reference constants: an 800x600 arena, a radius-10 ball moving 8
// units per tick on each axis, a 75x20 paddle, and an 11x4 brick grid.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Ball: BallConfig{
			Radius: 10,
			Speed:  8,
		},
		Paddle: PaddleConfig{
			Width:        75,
			Height:       20,
			Speed:        8,
			BottomOffset: 50,
		},
		Bricks: BrickConfig{
			Columns:  11,
			Rows:     4,
			Width:    60,
			Height:   20,
			Spacing:  3,
			OffsetX:  22,
			StartCol: 1,
			StartRow: 2,
		},
		Gameplay: GameplayConfig{
			Lives:        3,
			HitPoints:    10,
			DestroyBonus: 50,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, used by tooling that
// wants to show or copy the baseline config.
func DefaultYAML() []byte {
	return defaultArkanoidYAML
}
