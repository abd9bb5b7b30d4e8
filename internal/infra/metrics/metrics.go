// Package metrics provides Prometheus metrics for the dungeon tracker.
// Counters and gauges cover toggles, save round trips, trophy progress,
// simulations and invariant checks.
package metrics

import (
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Namespace prefixes every metric name.
const Namespace = "donjon"

// ─── Progress ───────────────────────────────────────────────────────────────

// DaysToggled counts day toggles by direction ("on" or "off").
var DaysToggled = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: Namespace,
	Name:      "days_toggled_total",
	Help:      "Total day completion toggles.",
}, []string{"direction"})

// ManaToggled counts mana potion toggles.
var ManaToggled = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: Namespace,
	Name:      "mana_toggled_total",
	Help:      "Total mana potion toggles.",
})

// ItemsToggled counts item slot toggles by item.
var ItemsToggled = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: Namespace,
	Name:      "items_toggled_total",
	Help:      "Total item slot toggles.",
}, []string{"item"})

// DaysCompleted tracks the number of completed days.
var DaysCompleted = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: Namespace,
	Name:      "days_completed",
	Help:      "Number of completed days in the current save.",
})

// ScoreTotal tracks the current total score.
var ScoreTotal = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: Namespace,
	Name:      "score_total",
	Help:      "Current total score.",
})

// ─── Saves ──────────────────────────────────────────────────────────────────

// SaveDecodes counts save decodes by result ("ok" or "fallback").
var SaveDecodes = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: Namespace,
	Name:      "save_decodes_total",
	Help:      "Total save decodes by result.",
}, []string{"result"})

// SaveBytes tracks the size of the last encoded save.
var SaveBytes = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: Namespace,
	Name:      "save_bytes",
	Help:      "Length of the last encoded save string.",
})

// ─── Trophies ───────────────────────────────────────────────────────────────

// TrophiesUnlocked counts trophy unlocks by tier.
var TrophiesUnlocked = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: Namespace,
	Name:      "trophies_unlocked_total",
	Help:      "Total trophies unlocked by tier.",
}, []string{"tier"})

// PlayerXP tracks trophy XP.
var PlayerXP = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: Namespace,
	Name:      "player_xp",
	Help:      "Current trophy XP.",
})

// PlayerLevel tracks the player level (1..20).
var PlayerLevel = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: Namespace,
	Name:      "player_level",
	Help:      "Current player level (1..20).",
})

// ─── Simulation ─────────────────────────────────────────────────────────────

// SimulationTrials counts simulated seasons.
var SimulationTrials = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: Namespace,
	Name:      "simulation_trials_total",
	Help:      "Total simulated seasons.",
})

// SimulationDuration tracks wall time per simulation run.
var SimulationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: Namespace,
	Name:      "simulation_duration_seconds",
	Help:      "Wall time of a simulation run in seconds.",
	Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
})

// ─── Health ─────────────────────────────────────────────────────────────────

// HealthCheckStatus tracks invariant check results (1=healthy, 0=unhealthy).
var HealthCheckStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: Namespace,
	Name:      "health_check_status",
	Help:      "Invariant check result per check (1=healthy, 0=unhealthy).",
}, []string{"check"})

// HealthRecoveries tracks repair attempts.
var HealthRecoveries = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: Namespace,
	Name:      "health_recoveries_total",
	Help:      "Total repair attempts per check.",
}, []string{"check"})

// ─── Export ─────────────────────────────────────────────────────────────────

// WriteText writes every family gathered from g whose name starts with
// prefix in the Prometheus text exposition format, sorted by name.
func WriteText(w io.Writer, g prometheus.Gatherer, prefix string) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	sort.Slice(families, func(i, j int) bool {
		return families[i].GetName() < families[j].GetName()
	})
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), prefix) {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
