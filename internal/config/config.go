// Package config provides YAML-based configuration loading and
// difficulty presets for the arkanoid game.
package config

// ArkanoidConfig contains all configuration for the game.
type ArkanoidConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Ball       BallConfig       `yaml:"ball"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Bricks     BrickConfig      `yaml:"bricks"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the logical playfield extents. Simulation runs in
// these units regardless of terminal size; the renderer scales.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BallConfig defines ball parameters. Speed is the per-tick velocity
// magnitude applied on each axis at serve.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

// PaddleConfig defines paddle parameters. BottomOffset is the distance
// from the arena's bottom edge to the paddle's center.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"`
}

// BrickConfig defines the brick grid. Cell (ix, iy) is centered at
// x = offset_x + (ix+start_col)*(width+spacing),
// y = (iy+start_row)*(height+spacing).
type BrickConfig struct {
	Columns  int     `yaml:"columns"`
	Rows     int     `yaml:"rows"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Spacing  float64 `yaml:"spacing"`
	OffsetX  float64 `yaml:"offset_x"`
	StartCol int     `yaml:"start_col"`
	StartRow int     `yaml:"start_row"`
}

// GameplayConfig defines session rules and scoring.
type GameplayConfig struct {
	Lives        int `yaml:"lives"`
	HitPoints    int `yaml:"hit_points"`    // Points per brick hit
	DestroyBonus int `yaml:"destroy_bonus"` // Extra points when a brick dies
}

// DifficultyConfig defines the optional difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases within a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Fraction added to ball speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings map to the
// empty preset, which leaves the config untouched.
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	case "fixed":
		return DifficultyFixed
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
