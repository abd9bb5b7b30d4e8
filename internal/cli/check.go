package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donjon-365/donjon/internal/health"
)

var checkRepair bool

func init() {
	checkCmd.Flags().BoolVar(&checkRepair, "repair", false, "fix repairable problems and rewrite the save")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the save against the calendar invariants",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, pseudo, err := loadSession()
	if err != nil {
		return err
	}

	checker := health.NewChecker()
	fixed := checker.Run(cmd.Context(), s.Year(), checkRepair)

	out := cmd.OutOrStdout()
	repaired, failed := false, false
	for _, st := range checker.Statuses() {
		switch {
		case st.Repaired:
			repaired = true
			fmt.Fprintf(out, "REPAIRED  %s: %s\n", st.Name, st.Error)
		case st.Healthy:
			fmt.Fprintf(out, "OK        %s\n", st.Name)
		default:
			failed = true
			fmt.Fprintf(out, "FAIL      %s: %s\n", st.Name, st.Error)
		}
	}

	if repaired {
		printUnlocked(out, s.Replace(fixed))
		if err := persist(s, pseudo); err != nil {
			return err
		}
	}
	if failed {
		return errors.New("save failed invariant checks")
	}
	return nil
}
