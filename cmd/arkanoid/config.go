package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/arcadekit/arkanoid/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in configuration YAML. Redirect it to
~/.arkanoid/configs/arkanoid.yaml as a starting point for customization:

  arkanoid config > ~/.arkanoid/configs/arkanoid.yaml`,
	Run: func(_ *cobra.Command, _ []string) {
		_, _ = os.Stdout.Write(config.DefaultYAML())
	},
}
