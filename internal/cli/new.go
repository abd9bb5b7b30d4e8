package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/donjon-365/donjon/internal/app/session"
)

var (
	newPseudo string
	newForce  bool
)

func init() {
	newCmd.Flags().StringVar(&newPseudo, "pseudo", "", "player name stored in the save (default from config)")
	newCmd.Flags().BoolVar(&newForce, "force", false, "overwrite an existing save")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a fresh season",
	Args:  cobra.NoArgs,
	RunE:  runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(cfg.Save.Path); err == nil && !newForce {
		return fmt.Errorf("save already exists at %s (use --force to overwrite)", cfg.Save.Path)
	}

	pseudo := newPseudo
	if pseudo == "" {
		pseudo = cfg.Save.Pseudo
	}
	s := session.New(logger, time.Now)
	if err := persist(s, pseudo); err != nil {
		return err
	}
	logger.Info("season started", "session", s.ID, "pseudo", pseudo)

	fmt.Fprintf(cmd.OutOrStdout(), "New season started for %q.\nSave: %s\n", pseudo, cfg.Save.Path)
	return nil
}
