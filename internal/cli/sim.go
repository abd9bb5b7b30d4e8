package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/donjon-365/donjon/internal/app/calendar"
	"github.com/donjon-365/donjon/internal/app/probability"
	"github.com/donjon-365/donjon/internal/app/sim"
)

var (
	simRate    float64
	simTrials  int
	simWorkers int
	simSeed    uint64
)

func init() {
	simCmd.Flags().Float64Var(&simRate, "rate", 0.65, "daily completion rate in [0, 1]")
	simCmd.Flags().IntVar(&simTrials, "trials", 0, "seasons to play (default from config)")
	simCmd.Flags().IntVar(&simWorkers, "workers", 0, "parallel workers (default from config)")
	simCmd.Flags().Uint64Var(&simSeed, "seed", 0, "random seed (default from config; 0 is random)")
	rootCmd.AddCommand(simCmd)
}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play random seasons and compare with the estimator",
	Args:  cobra.NoArgs,
	RunE:  runSim,
}

func runSim(cmd *cobra.Command, args []string) error {
	sc := sim.Config{
		Trials:  cfg.Simulation.Trials,
		Workers: cfg.Simulation.Workers,
		Seed:    cfg.Simulation.Seed,
	}
	if simTrials > 0 {
		sc.Trials = simTrials
	}
	if simWorkers > 0 {
		sc.Workers = simWorkers
	}
	if cmd.Flags().Changed("seed") {
		sc.Seed = simSeed
	}

	start := time.Now()
	res, err := sim.Run(cmd.Context(), sc, simRate)
	if err != nil {
		return err
	}
	logger.Info("simulation finished", "trials", res.Trials, "seed", res.Seed, "elapsed", time.Since(start))

	est := probability.NewEstimator(calendar.Generate(), cfg.Probability.Discounts(), cfg.Probability.Rates())
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d seasons at rate %.2f (seed %d), mean score %.1f\n\n", res.Trials, res.Rate, res.Seed, res.MeanScore)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tESTIMATE\tSIMULATED")
	for _, row := range est.Table(simRate) {
		fmt.Fprintf(w, "%s\t%s%%\t%s%%\n", row.Trophy.ID, row.Percent,
			probability.Percent(100*res.Frequency(row.Trophy.ID)))
	}
	return w.Flush()
}
