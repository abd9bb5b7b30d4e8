package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/donjon-365/donjon/internal/app/trophy"
)

var trophiesAll bool

func init() {
	trophiesCmd.Flags().BoolVar(&trophiesAll, "all", false, "include trophies not revealed yet")
	rootCmd.AddCommand(trophiesCmd)
}

var trophiesCmd = &cobra.Command{
	Use:   "trophies",
	Short: "List trophies and unlock dates",
	Args:  cobra.NoArgs,
	RunE:  runTrophies,
}

func runTrophies(cmd *cobra.Command, args []string) error {
	s, _, err := loadSession()
	if err != nil {
		return err
	}
	unlocked := s.Trophies()
	month := currentMonth(time.Now())

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tID\tTIER\tNAME\tGOAL\tUNLOCKED")
	for _, def := range trophy.NewEngine().Definitions() {
		at, ok := unlocked[def.ID]
		if !ok && !trophiesAll && !trophy.Visible(def, month) {
			continue
		}
		mark := "  "
		if ok {
			mark = def.Icon
		} else {
			at = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", mark, def.ID, def.Tier.Label(), def.Name, def.Description, at)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	level := s.Level()
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d XP, level %d %s\n", level.TotalXP, level.Level, level.Title)
	return nil
}
