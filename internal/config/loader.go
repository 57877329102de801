package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadArkanoid loads the game configuration.
// Search order: customPath -> ~/.arkanoid/configs/arkanoid.yaml ->
// ./configs/arkanoid.yaml -> embedded default.
func LoadArkanoid(customPath string) (ArkanoidConfig, error) {
	var cfg ArkanoidConfig

	// An explicit path must load; a broken file there is an error, not
	// a fallback.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("arkanoid.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/arkanoid.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultArkanoidYAML, &cfg); err != nil {
		return DefaultArkanoidConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if
// the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arkanoid", "configs", filename)
}

// ApplyArkanoidPreset modifies the config based on a difficulty preset.
// The fixed preset disables progression and leaves every other value
// at its configured baseline.
func ApplyArkanoidPreset(cfg *ArkanoidConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 90
		cfg.Ball.Speed = 6
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 60
		cfg.Ball.Speed = 10
	}
}
