package main

import (
	"github.com/spf13/cobra"

	"github.com/arcadekit/arkanoid/internal/games/arkanoid"
	"github.com/arcadekit/arkanoid/internal/platform/tui"
	"github.com/arcadekit/arkanoid/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with an interactive mode picker",
	Long: `Start in interactive menu mode: pick a mode and a difficulty, play,
and return to the menu when the session ends.

Controls:
  Up/Down/j/k  - Navigate
  Tab          - Switch between mode list and difficulty table
  Enter        - Play the selection
  Q/Esc        - Quit

Examples:
  arkanoid menu
  arkanoid menu --fps 30`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	arkanoid.SetConfigPath(flagConfig)

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			logger.Error("menu failed", "err", err)
			return
		}

		// Carry any resize observed while in the menu.
		cfg = result.Config

		if result.Quit || result.GameID == "" {
			return
		}

		// The menu's difficulty choice wins over the flag.
		arkanoid.SetDifficultyPreset(result.Difficulty)

		game, err := registry.Create(result.GameID)
		if err != nil {
			logger.Error("creating game", "err", err)
			continue
		}

		if err := tui.Run(game, cfg); err != nil {
			logger.Error("running game", "err", err)
		}
		// Loop back to the menu.
	}
}
