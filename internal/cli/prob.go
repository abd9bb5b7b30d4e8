package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/donjon-365/donjon/internal/app/calendar"
	"github.com/donjon-365/donjon/internal/app/probability"
	"github.com/donjon-365/donjon/internal/domain"
)

var probRate float64

func init() {
	probCmd.Flags().Float64Var(&probRate, "rate", 0, "daily completion rate in (0, 1]; default is each tier's reference rate")
	rootCmd.AddCommand(probCmd)
}

var probCmd = &cobra.Command{
	Use:   "prob [trophy-id]",
	Short: "Estimate trophy unlock chances",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProb,
}

func runProb(cmd *cobra.Command, args []string) error {
	if probRate < 0 || probRate > 1 {
		return fmt.Errorf("--rate %v: %w", probRate, domain.ErrInvalidRate)
	}
	est := probability.NewEstimator(calendar.Generate(), cfg.Probability.Discounts(), cfg.Probability.Rates())
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		id := args[0]
		var (
			pct probability.Percent
			ok  bool
		)
		if probRate == 0 {
			pct, ok = est.AtReference(id)
		} else {
			pct, ok = est.Probability(id, probRate)
		}
		if !ok {
			return fmt.Errorf("%q: %w", id, domain.ErrUnknownTrophy)
		}
		fmt.Fprintf(out, "%s: %s%%\n", id, pct)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIER\tRATE\tCHANCE")
	for _, row := range est.Table(probRate) {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s%%\n", row.Trophy.ID, row.Trophy.Tier.Label(), row.Rate, row.Percent)
	}
	return w.Flush()
}
