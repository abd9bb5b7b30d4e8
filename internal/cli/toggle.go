package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donjon-365/donjon/internal/domain"
)

var (
	toggleMonth int
	toggleWeek  int
	toggleDay   int
	itemSlot    int
)

func init() {
	toggleCmd.Flags().IntVar(&toggleMonth, "month", -1, "month index (0-11), with --week and --day")
	toggleCmd.Flags().IntVar(&toggleWeek, "week", 0, "display week within the month")
	toggleCmd.Flags().IntVar(&toggleDay, "day", 0, "day within the display week")
	itemCmd.Flags().IntVar(&itemSlot, "slot", 0, "item slot (0, or 1 from October)")

	rootCmd.AddCommand(toggleCmd, manaCmd, itemCmd)
}

var toggleCmd = &cobra.Command{
	Use:   "toggle [globalIndex]",
	Short: "Mark a day completed, or undo it",
	Long: `Toggle a day by global index (0-364) or by display coordinates:

  donjon toggle 3
  donjon toggle --month 0 --week 1 --day 0`,
	Args: cobra.MaximumNArgs(1),
	RunE: runToggle,
}

var manaCmd = &cobra.Command{
	Use:   "mana <month> <slot>",
	Short: "Use or restore an earned mana potion",
	Args:  cobra.ExactArgs(2),
	RunE:  runMana,
}

var itemCmd = &cobra.Command{
	Use:   "item <month> <staff|cape|ring>",
	Short: "Use or restore an item slot",
	Args:  cobra.ExactArgs(2),
	RunE:  runItem,
}

func runToggle(cmd *cobra.Command, args []string) error {
	s, pseudo, err := loadSession()
	if err != nil {
		return err
	}

	var unlocked []domain.TrophyDef
	switch {
	case len(args) == 1:
		gi, err := parseInt(args[0], "day index")
		if err != nil {
			return err
		}
		unlocked, err = s.ToggleDay(gi)
		if err != nil {
			return err
		}
		if mi, pos, ok := s.Year().Locate(gi); ok {
			reportDay(cmd, s.Year().Months[mi], pos)
		}
	case toggleMonth >= 0:
		if unlocked, err = s.ToggleDayAt(toggleMonth, toggleWeek, toggleDay); err != nil {
			return err
		}
		m := s.Year().Months[toggleMonth]
		reportDay(cmd, m, m.Weeks()[toggleWeek].Start+toggleDay)
	default:
		return errors.New("give a day index or --month/--week/--day")
	}

	printUnlocked(cmd.OutOrStdout(), unlocked)
	return persist(s, pseudo)
}

func reportDay(cmd *cobra.Command, m domain.Month, pos int) {
	state := "not completed"
	if m.Days[pos].Completed {
		state = "completed"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", describeDay(m, pos), state)
}

func runMana(cmd *cobra.Command, args []string) error {
	month, err := parseInt(args[0], "month")
	if err != nil {
		return err
	}
	slot, err := parseInt(args[1], "slot")
	if err != nil {
		return err
	}

	s, pseudo, err := loadSession()
	if err != nil {
		return err
	}
	unlocked, err := s.ToggleMana(month, slot)
	if err != nil {
		return err
	}

	state := "available"
	if s.Year().Months[month].ManaUsed[slot] {
		state = "used"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s mana potion %d: %s\n", s.Year().Months[month].Name, slot, state)
	printUnlocked(cmd.OutOrStdout(), unlocked)
	return persist(s, pseudo)
}

func runItem(cmd *cobra.Command, args []string) error {
	month, err := parseInt(args[0], "month")
	if err != nil {
		return err
	}
	it, err := domain.ParseItem(args[1])
	if err != nil {
		return fmt.Errorf("%q: %w", args[1], err)
	}

	s, pseudo, err := loadSession()
	if err != nil {
		return err
	}
	unlocked, err := s.ToggleItem(month, it, itemSlot)
	if err != nil {
		return err
	}

	state := "available"
	if s.Year().Months[month].ItemUsed(it)[itemSlot] {
		state = "used"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s slot %d: %s\n", s.Year().Months[month].Name, it, itemSlot, state)
	printUnlocked(cmd.OutOrStdout(), unlocked)
	return persist(s, pseudo)
}
