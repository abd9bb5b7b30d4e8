// Package session drives the live mutation path: every toggle produces a
// new Year, recomputes the score from scratch, evaluates trophies and
// records metrics.
package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/donjon-365/donjon/internal/app/calendar"
	"github.com/donjon-365/donjon/internal/app/scoring"
	"github.com/donjon-365/donjon/internal/app/trophy"
	"github.com/donjon-365/donjon/internal/domain"
	"github.com/donjon-365/donjon/internal/infra/metrics"
	"github.com/donjon-365/donjon/internal/infra/savecodec"
)

// Session holds one player's in-memory state.
type Session struct {
	ID string

	mu       sync.Mutex
	log      *slog.Logger
	engine   *trophy.Engine
	year     domain.Year
	score    domain.Score
	trophies domain.UnlockMap
	level    int
}

// New starts a session on a fresh calendar.
func New(log *slog.Logger, now func() time.Time) *Session {
	s := newSession(log, now, domain.UnlockMap{})
	s.apply(calendar.Generate())
	return s
}

// Restore rebuilds a session from a save string and trophy map. An empty
// save means no progress yet. A save that fails to decode is logged and
// replaced by a fresh calendar; ok reports whether the save was used.
func Restore(log *slog.Logger, now func() time.Time, save string, trophies domain.UnlockMap) (s *Session, ok bool) {
	s = newSession(log, now, trophies.Clone())

	if save == "" {
		s.apply(calendar.Generate())
		return s, true
	}
	y, ok := savecodec.Decode(save)
	if !ok {
		metrics.SaveDecodes.WithLabelValues("fallback").Inc()
		s.log.Warn("save decode failed, starting fresh", "save_len", len(save))
		y = calendar.Generate()
	} else {
		metrics.SaveDecodes.WithLabelValues("ok").Inc()
	}
	s.apply(y)
	return s, ok
}

func newSession(log *slog.Logger, now func() time.Time, trophies domain.UnlockMap) *Session {
	if log == nil {
		log = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	id := uuid.NewString()
	engine := trophy.NewEngineWithClock(now)
	return &Session{
		ID:       id,
		log:      log.With("session", id),
		engine:   engine,
		trophies: trophies,
		level:    trophy.Level(engine.TrophyXP(trophies)).Level,
	}
}

// ─── Accessors ──────────────────────────────────────────────────────────────

// Year returns the current year. Callers must treat it as read-only.
func (s *Session) Year() domain.Year {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.year
}

// Score returns the current score.
func (s *Session) Score() domain.Score {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// Trophies returns a copy of the unlock map.
func (s *Session) Trophies() domain.UnlockMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trophies.Clone()
}

// Level returns the player's level progress.
func (s *Session) Level() domain.LevelInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return trophy.Level(s.engine.TrophyXP(s.trophies))
}

// Save returns the encoded save string of the current year.
func (s *Session) Save() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	enc := savecodec.Encode(s.year)
	metrics.SaveBytes.Set(float64(len(enc)))
	return enc
}

// ─── Mutations ──────────────────────────────────────────────────────────────

// ToggleDay flips the day at a global index and returns trophies it
// unlocked.
func (s *Session) ToggleDay(globalIndex int) ([]domain.TrophyDef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	y, err := calendar.ToggleDayByIndex(s.year, globalIndex)
	if err != nil {
		return nil, err
	}
	mi, pos, _ := y.Locate(globalIndex)
	done := y.Months[mi].Days[pos].Completed
	direction := "off"
	if done {
		direction = "on"
	}
	metrics.DaysToggled.WithLabelValues(direction).Inc()
	s.log.Debug("day toggled", "global_index", globalIndex, "completed", done)
	return s.apply(y), nil
}

// ToggleDayAt flips a day addressed by display coordinates.
func (s *Session) ToggleDayAt(month, week, day int) ([]domain.TrophyDef, error) {
	s.mu.Lock()
	pos, err := calendar.Position(s.year, month, week, day)
	var gi int
	if err == nil {
		gi = s.year.Months[month].Days[pos].GlobalIndex
	}
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.ToggleDay(gi)
}

// ToggleMana flips a mana slot.
func (s *Session) ToggleMana(month, slot int) ([]domain.TrophyDef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	y, err := calendar.ToggleMana(s.year, month, slot)
	if err != nil {
		return nil, err
	}
	metrics.ManaToggled.Inc()
	s.log.Debug("mana toggled", "month", month, "slot", slot, "used", y.Months[month].ManaUsed[slot])
	return s.apply(y), nil
}

// ToggleItem flips an item slot.
func (s *Session) ToggleItem(month int, it domain.Item, slot int) ([]domain.TrophyDef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	y, err := calendar.ToggleItem(s.year, month, it, slot)
	if err != nil {
		return nil, err
	}
	metrics.ItemsToggled.WithLabelValues(it.String()).Inc()
	s.log.Debug("item toggled", "month", month, "item", it.String(), "slot", slot)
	return s.apply(y), nil
}

// Replace swaps in a whole year, for example after a repair.
func (s *Session) Replace(y domain.Year) []domain.TrophyDef {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(y)
}

// apply installs y and recomputes everything derived from it. Callers
// hold mu, except during construction.
func (s *Session) apply(y domain.Year) []domain.TrophyDef {
	s.year = y
	s.score = scoring.Calculate(y)

	res := s.engine.Evaluate(y, s.score, s.trophies)
	s.trophies = res.Updated
	for _, def := range res.NewlyUnlocked {
		metrics.TrophiesUnlocked.WithLabelValues(string(def.Tier)).Inc()
		s.log.Info("trophy unlocked", "trophy", def.ID, "tier", string(def.Tier))
	}

	xp := s.engine.TrophyXP(s.trophies)
	info := trophy.Level(xp)
	if info.Level > s.level {
		s.log.Info("level up", "level", info.Level, "title", info.Title, "xp", xp)
	}
	s.level = info.Level

	metrics.DaysCompleted.Set(float64(y.CompletedCount()))
	metrics.ScoreTotal.Set(float64(s.score.TotalScore))
	metrics.PlayerXP.Set(float64(xp))
	metrics.PlayerLevel.Set(float64(info.Level))
	return res.NewlyUnlocked
}
