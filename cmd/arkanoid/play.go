package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadekit/arkanoid/internal/config"
	"github.com/arcadekit/arkanoid/internal/core"
	"github.com/arcadekit/arkanoid/internal/games/arkanoid"
	"github.com/arcadekit/arkanoid/internal/platform/tui"
	"github.com/arcadekit/arkanoid/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode. Defaults to the classic mode, where a
ball lost past the bottom edge costs a life; the practice mode bounces
off the bottom instead.

Controls:
  A/Left, D/Right - Move the paddle
  P               - Pause/resume
  R               - Restart
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - More lives, slower ball, wider paddle
  normal - Baseline with progression enabled
  hard   - Fewer lives, faster ball, narrower paddle
  fixed  - Reference constants, no progression

Examples:
  arkanoid play
  arkanoid play practice
  arkanoid play --difficulty hard
  arkanoid play --config ./my-arkanoid.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID := "arkanoid"
	if len(args) == 1 {
		modeID = args[0]
	}

	if !registry.Exists(modeID) {
		logger.Error("unknown mode", "mode", modeID)
		logger.Print("Run 'arkanoid list' to see available modes.")
		os.Exit(1)
	}

	// Validate a custom config up front so a broken file fails loudly
	// instead of silently falling back inside the game.
	if flagConfig != "" {
		if _, err := config.LoadArkanoid(flagConfig); err != nil {
			logger.Warn("config unusable, using defaults", "err", err)
			flagConfig = ""
		}
	}
	arkanoid.SetConfigPath(flagConfig)
	arkanoid.SetDifficultyPreset(flagDifficulty)

	cfg := runtimeConfig()

	game, err := registry.Create(modeID)
	if err != nil {
		logger.Error("creating game", "err", err)
		os.Exit(1)
	}

	if err := tui.Run(game, cfg); err != nil {
		logger.Error("running game", "err", err)
		os.Exit(1)
	}
}

// runtimeConfig probes the terminal size before the TUI starts and
// combines it with the global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	} else {
		logger.Warn("could not probe terminal size, using defaults", "err", err)
	}
	return cfg
}
