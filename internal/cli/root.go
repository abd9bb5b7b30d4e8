// Package cli implements the donjon command-line interface using Cobra.
// Each subcommand loads the player's save envelope, applies one operation
// and writes the envelope back when state changed.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/donjon-365/donjon/internal/config"
)

var (
	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "donjon",
	Short: "donjon: a 365-day dungeon crawl, one cell per day",
	Long: `donjon tracks a year-long dungeon advent calendar.
Complete one cell per day, spend mana and items, earn trophies and levels.

State lives in a JSON save envelope; see 'donjon config' for its path.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		cfg = c
		logger = cfg.Logging.Logger(cmd.ErrOrStderr())
		return nil
	},
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
