package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"time"

	"github.com/donjon-365/donjon/internal/app/calendar"
	"github.com/donjon-365/donjon/internal/app/scoring"
	"github.com/donjon-365/donjon/internal/app/session"
	"github.com/donjon-365/donjon/internal/domain"
	"github.com/donjon-365/donjon/internal/infra/backup"
)

// loadSession restores the player's session from the save envelope. A
// missing file starts a fresh season under the configured pseudo.
func loadSession() (*session.Session, string, error) {
	env, err := backup.ParseFile(cfg.Save.Path, cfg.Save.Pseudo)
	if errors.Is(err, fs.ErrNotExist) {
		return session.New(logger, time.Now), cfg.Save.Pseudo, nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("load save: %w", err)
	}
	s, _ := session.Restore(logger, time.Now, env.SaveData, env.Trophies)
	return s, env.Pseudo, nil
}

// persist writes the session back to the save envelope.
func persist(s *session.Session, pseudo string) error {
	env := backup.New(pseudo, s.Year(), s.Trophies(), time.Now())
	if err := backup.WriteFile(cfg.Save.Path, env); err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	logger.Debug("save written", "path", cfg.Save.Path, "bytes", len(env.SaveData))
	return nil
}

// currentMonth maps a date onto the calendar: before the season it is the
// first month, after it the last.
func currentMonth(now time.Time) int {
	year := calendar.Default().Year
	switch {
	case now.Year() < year:
		return 0
	case now.Year() > year:
		return 11
	}
	return int(now.Month()) - 1
}

func parseInt(arg, name string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, arg)
	}
	return n, nil
}

// describeDay renders one cell, e.g. "Janvier 4 (Dimanche) BOSS 18".
func describeDay(m domain.Month, pos int) string {
	d := m.Days[pos]
	s := fmt.Sprintf("%s %d (%s) %s %d", m.Name, d.DayOfMonth,
		domain.WeekdayName(m.Weekday(pos)), d.Type, scoring.DisplayValue(m, pos))
	if d.Type == domain.TypeDouble {
		s += fmt.Sprintf("+%d", d.Value2)
	}
	if d.HasMana() {
		s += " [mana]"
	}
	return s
}

func printUnlocked(w io.Writer, defs []domain.TrophyDef) {
	for _, def := range defs {
		fmt.Fprintf(w, "Trophy unlocked: %s %s (%s)\n", def.Icon, def.Name, def.Tier.Label())
	}
}
