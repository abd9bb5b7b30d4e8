package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/donjon-365/donjon/internal/infra/metrics"
)

func init() {
	rootCmd.AddCommand(metricsCmd)
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Print the player's gauges in Prometheus text format",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Restoring the session sets the score, XP and level gauges.
		if _, _, err := loadSession(); err != nil {
			return err
		}
		return metrics.WriteText(cmd.OutOrStdout(), prometheus.DefaultGatherer, metrics.Namespace+"_")
	},
}
