package cli

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/donjon-365/donjon/internal/app/session"
	"github.com/donjon-365/donjon/internal/infra/backup"
)

var exportDir string

func init() {
	exportCmd.Flags().StringVar(&exportDir, "out", ".", "directory for the backup file")
	rootCmd.AddCommand(exportCmd, importCmd, boardCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a dated backup of the save",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the save with a backup file",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var boardCmd = &cobra.Command{
	Use:   "board <file>...",
	Short: "Rank players from backup files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBoard,
}

func runExport(cmd *cobra.Command, args []string) error {
	s, pseudo, err := loadSession()
	if err != nil {
		return err
	}
	env := backup.New(pseudo, s.Year(), s.Trophies(), time.Now())
	path := filepath.Join(exportDir, backup.FileName(env.Date))
	if err := backup.WriteFile(path, env); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	logger.Info("backup exported", "path", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s\n", path)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	_, current, err := loadSession()
	if err != nil {
		return err
	}
	env, y, err := backup.ReadFile(args[0], current)
	if err != nil {
		return fmt.Errorf("import %s: %w", args[0], err)
	}

	s, _ := session.Restore(logger, time.Now, env.SaveData, env.Trophies)
	if err := persist(s, env.Pseudo); err != nil {
		return err
	}
	logger.Info("backup imported", "path", args[0], "version", env.Version)
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %s: %d days, %d points, %d trophies\n",
		env.Date, y.CompletedCount(), s.Score().TotalScore, len(s.Trophies()))
	return nil
}

func runBoard(cmd *cobra.Command, args []string) error {
	entries := make([]backup.Envelope, 0, len(args))
	for _, path := range args {
		env, err := backup.ParseFile(path, "")
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		entries = append(entries, env)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tPLAYER\tSCORE\tBOSSES\tWINGS\tTROPHIES\tLEVEL")
	for _, st := range backup.Leaderboard(entries) {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\t%d %s\n",
			st.Rank, st.Pseudo, st.Score.TotalScore, st.Score.BossesDefeated,
			st.Score.CompleteWings, st.Trophies, st.Level.Level, st.Level.Title)
	}
	return w.Flush()
}
