// Package trophy implements the trophy engine: a 30-trophy catalog checked
// against score and calendar metrics, plus the XP and level ladder fed by
// unlocked trophies.
package trophy

import (
	"time"

	"github.com/donjon-365/donjon/internal/domain"
)

// Engine evaluates the trophy catalog.
// Each trophy is checked against a TrophyStats snapshot; unlocks are
// permanent even when the underlying stat later drops.
type Engine struct {
	definitions []domain.TrophyDef
	byID        map[string]domain.TrophyDef
	now         func() time.Time
}

// NewEngine creates an engine over the full catalog.
func NewEngine() *Engine {
	return NewEngineWithClock(time.Now)
}

// NewEngineWithClock creates an engine stamping unlocks with now().
func NewEngineWithClock(now func() time.Time) *Engine {
	defs := AllTrophies()
	byID := make(map[string]domain.TrophyDef, len(defs))
	for _, d := range defs {
		byID[d.ID] = d
	}
	return &Engine{definitions: defs, byID: byID, now: now}
}

// Result is the outcome of one evaluation.
type Result struct {
	Updated       domain.UnlockMap
	NewlyUnlocked []domain.TrophyDef
}

// Evaluate checks every trophy against the year and its score. Trophies
// already in unlocked are skipped, so re-running with the updated map
// returns nothing new. The input map is not modified.
func (e *Engine) Evaluate(y domain.Year, score domain.Score, unlocked domain.UnlockMap) Result {
	stamp := e.now().UTC().Format(time.RFC3339)
	stats := Stats(y, score)
	res := Result{Updated: unlocked.Clone()}

	for _, def := range e.definitions {
		if _, ok := res.Updated[def.ID]; ok {
			continue
		}
		if def.Reached(stats) {
			res.Updated[def.ID] = stamp
			res.NewlyUnlocked = append(res.NewlyUnlocked, def)
		}
	}
	return res
}

// Stats combines a score with the Year-level trophy metrics.
func Stats(y domain.Year, score domain.Score) domain.TrophyStats {
	total, longest := Metrics(y)
	return domain.TrophyStats{
		Score:              score,
		TotalDaysCompleted: total,
		LongestStreak:      longest,
	}
}

// Metrics scans days in global order and returns the number of completed
// days and the longest run of consecutive completed days.
func Metrics(y domain.Year) (totalCompleted, longestStreak int) {
	run := 0
	for _, d := range y.Days() {
		if !d.Completed {
			run = 0
			continue
		}
		totalCompleted++
		run++
		if run > longestStreak {
			longestStreak = run
		}
	}
	return totalCompleted, longestStreak
}

// Lookup returns a trophy definition by id.
func (e *Engine) Lookup(id string) (domain.TrophyDef, bool) {
	d, ok := e.byID[id]
	return d, ok
}

// TotalCount returns the total number of defined trophies.
func (e *Engine) TotalCount() int {
	return len(e.definitions)
}

// Definitions returns all trophy definitions (for display).
func (e *Engine) Definitions() []domain.TrophyDef {
	return e.definitions
}
