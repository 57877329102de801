package config

import "testing"

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	loaded, err := LoadArkanoid("")
	if err != nil {
		t.Fatalf("LoadArkanoid failed: %v", err)
	}
	want := DefaultArkanoidConfig()

	if loaded.Arena != want.Arena {
		t.Errorf("arena = %+v, want %+v", loaded.Arena, want.Arena)
	}
	if loaded.Ball != want.Ball {
		t.Errorf("ball = %+v, want %+v", loaded.Ball, want.Ball)
	}
	if loaded.Paddle != want.Paddle {
		t.Errorf("paddle = %+v, want %+v", loaded.Paddle, want.Paddle)
	}
	if loaded.Bricks != want.Bricks {
		t.Errorf("bricks = %+v, want %+v", loaded.Bricks, want.Bricks)
	}
	if loaded.Gameplay != want.Gameplay {
		t.Errorf("gameplay = %+v, want %+v", loaded.Gameplay, want.Gameplay)
	}
}

func TestApplyPresets(t *testing.T) {
	cfg := DefaultArkanoidConfig()
	ApplyArkanoidPreset(&cfg, DifficultyEasy)
	if cfg.Gameplay.Lives != 5 || cfg.Ball.Speed != 6 || cfg.Paddle.Width != 90 {
		t.Errorf("easy preset gave lives=%d speed=%v width=%v", cfg.Gameplay.Lives, cfg.Ball.Speed, cfg.Paddle.Width)
	}
	if !cfg.Difficulty.Enabled {
		t.Error("easy preset should enable progression")
	}

	cfg = DefaultArkanoidConfig()
	ApplyArkanoidPreset(&cfg, DifficultyHard)
	if cfg.Gameplay.Lives != 2 || cfg.Ball.Speed != 10 || cfg.Paddle.Width != 60 {
		t.Errorf("hard preset gave lives=%d speed=%v width=%v", cfg.Gameplay.Lives, cfg.Ball.Speed, cfg.Paddle.Width)
	}

	cfg = DefaultArkanoidConfig()
	base := cfg
	ApplyArkanoidPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset must disable progression")
	}
	if cfg.Ball != base.Ball || cfg.Paddle != base.Paddle || cfg.Gameplay != base.Gameplay {
		t.Error("fixed preset must not change baseline values")
	}
}

func TestDifficultyManagerProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.5},
	})

	if got := dm.Level(0, 0); got != 0 {
		t.Errorf("Level(0) = %v, want 0", got)
	}
	if got := dm.Level(50, 0); got != 0.5 {
		t.Errorf("Level(50) = %v, want 0.5", got)
	}
	if got := dm.Level(500, 0); got != 1.0 {
		t.Errorf("Level(500) = %v, want 1.0 (clamped)", got)
	}
	if got := dm.BallSpeed(8, 100, 0); got != 12 {
		t.Errorf("BallSpeed at max level = %v, want 12", got)
	}
}

func TestDifficultyManagerDisabled(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.7,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.5},
	})

	if dm.IsEnabled() {
		t.Error("manager should report disabled")
	}
	// Disabled progression pins the level at its initial value.
	if got := dm.Level(1000, 1000); got != 0.7 {
		t.Errorf("Level = %v with progression disabled, want 0.7", got)
	}
}
