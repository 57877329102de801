// arkanoid is a terminal rendition of the classic brick-breaking game.
//
// Usage:
//
//	arkanoid play [mode]   - Play a mode directly (default: arkanoid)
//	arkanoid menu          - Interactive mode/difficulty picker
//	arkanoid list          - List available modes
//	arkanoid config        - Print the default configuration YAML
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--config <path>        - Path to a custom config YAML
//	--difficulty <preset>  - easy, normal, hard, or fixed
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import the game package to register its modes.
	_ "github.com/arcadekit/arkanoid/internal/games/arkanoid"
)

var (
	// Global flags
	flagFPS        int
	flagConfig     string
	flagDifficulty string
)

// logger is the CLI-level logger; the game core itself stays silent.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "arkanoid",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - break bricks in your terminal",
	Long: `Arkanoid is a terminal brick-breaking game: bounce the ball off your
paddle, clear the brick wall, and keep the ball off the floor.

Available commands:
  play  - Play a mode directly
  menu  - Interactive mode and difficulty picker
  list  - Show all available modes

Examples:
  arkanoid play
  arkanoid play practice
  arkanoid play --difficulty hard
  arkanoid menu`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
