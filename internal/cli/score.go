package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/donjon-365/donjon/internal/app/scoring"
)

var scoreJSON bool

func init() {
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "print the score as JSON")
	rootCmd.AddCommand(scoreCmd)
}

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show the score breakdown per month",
	Args:  cobra.NoArgs,
	RunE:  runScore,
}

func runScore(cmd *cobra.Command, args []string) error {
	s, _, err := loadSession()
	if err != nil {
		return err
	}
	total := s.Score()

	if scoreJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(total)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MONTH\tPOINTS\tMONSTERS\tBOSSES\tTRAPS\tUNDEAD\tWINGS\tMANA\tUNDEAD GATE")
	for _, m := range s.Year().Months {
		ms := scoring.Month(m)
		gate := "open"
		if !scoring.UndeadGateOpen(m) {
			gate = "closed"
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\n",
			m.Name, ms.TotalScore, ms.MonstersDefeated, ms.BossesDefeated,
			ms.TrapsDefeated, ms.UndeadDefeated, ms.CompleteWings, ms.ManaPotionsEarned, gate)
	}
	fmt.Fprintf(w, "TOTAL\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t\n",
		total.TotalScore, total.MonstersDefeated, total.BossesDefeated,
		total.TrapsDefeated, total.UndeadDefeated, total.CompleteWings, total.ManaPotionsEarned)
	return w.Flush()
}
