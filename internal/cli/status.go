package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/donjon-365/donjon/internal/app/calendar"
	"github.com/donjon-365/donjon/internal/app/trophy"
	"github.com/donjon-365/donjon/internal/domain"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show progress, score and level",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, pseudo, err := loadSession()
	if err != nil {
		return err
	}
	y := s.Year()
	score := s.Score()
	level := s.Level()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Player:    %s\n", pseudo)
	fmt.Fprintf(out, "Days:      %d/%d  %s\n", y.CompletedCount(), domain.DaysInYear,
		progressBar(int64(y.CompletedCount()), domain.DaysInYear))
	fmt.Fprintf(out, "Score:     %d\n", score.TotalScore)
	fmt.Fprintf(out, "Wings:     %d\n", score.CompleteWings)

	if level.IsMaxLevel {
		fmt.Fprintf(out, "Level:     %d %s (max, %d XP)\n", level.Level, level.Title, level.TotalXP)
	} else {
		fmt.Fprintf(out, "Level:     %d %s  %s  %d/%d XP\n", level.Level, level.Title,
			progressBar(level.XPIntoLevel, level.XPForLevel), level.XPIntoLevel, level.XPForLevel)
	}
	fmt.Fprintf(out, "Trophies:  %d/%d\n", len(s.Trophies()), trophy.NewEngine().TotalCount())

	month := currentMonth(time.Now())
	fmt.Fprintf(out, "Month:     %s\n", y.Months[month].Name)
	if rule, ok := calendar.Default().RuleFor(month); ok {
		fmt.Fprintf(out, "New rule:  %s. %s\n", rule.Title, rule.Summary)
	}
	return nil
}
