// Package probability estimates how likely each trophy is to unlock for a
// player who completes every cell independently with probability p.
//
// Count trophies use a normal approximation to the binomial, streak
// trophies an exact recurrence, and score trophies a normal approximation
// over the compound sum of cell values plus wing bonuses. Some categories
// scale p down by an empirical difficulty discount first; the discounts
// are calibration settings, not derived from the rules.
package probability

import (
	"math"
	"strconv"
	"sync"

	"github.com/donjon-365/donjon/internal/app/scoring"
	"github.com/donjon-365/donjon/internal/app/trophy"
	"github.com/donjon-365/donjon/internal/domain"
)

// Discounts scale p for cells that play harder than a flat rate predicts.
type Discounts struct {
	Boss       float64
	Elite      float64 // elites, doubles, invisibles
	Influenced float64
	Final      float64
}

// DefaultDiscounts returns the tuned discount set.
func DefaultDiscounts() Discounts {
	return Discounts{Boss: 0.90, Elite: 0.85, Influenced: 0.75, Final: 0.75}
}

// Rates are the reference completion rates per tier.
type Rates struct {
	Bronze float64
	Argent float64
	Or     float64
}

// DefaultRates returns the reference completion rates.
func DefaultRates() Rates {
	return Rates{Bronze: 0.50, Argent: 0.65, Or: 0.80}
}

// For returns the reference rate of a tier.
func (r Rates) For(t domain.Tier) float64 {
	switch t {
	case domain.TierBronze:
		return r.Bronze
	case domain.TierOr:
		return r.Or
	default:
		return r.Argent
	}
}

// Percent is a probability expressed in percent (0–100).
type Percent float64

// String renders the percentage rounded to an integer, saturating to "<1"
// and ">99" where the approximation is not trustworthy.
func (p Percent) String() string {
	switch {
	case p < 0.5:
		return "<1"
	case p > 99.4:
		return ">99"
	}
	return strconv.Itoa(int(math.Round(float64(p))))
}

// Estimator owns the static calendar statistics, computed once on first
// use, and the calibration settings.
type Estimator struct {
	year      domain.Year
	discounts Discounts
	rates     Rates
	engine    *trophy.Engine

	once  sync.Once
	stats Stats
}

// NewEstimator creates an estimator over a calendar shape. Only static
// fields of the year are read; completion flags are ignored.
func NewEstimator(y domain.Year, d Discounts, r Rates) *Estimator {
	return &Estimator{
		year:      y.Clone(),
		discounts: d,
		rates:     r,
		engine:    trophy.NewEngine(),
	}
}

// Stats returns the cached calendar statistics.
func (e *Estimator) Stats() Stats {
	e.once.Do(func() {
		e.stats = ComputeStats(e.year)
	})
	return e.stats
}

// Probability returns the unlock probability of a trophy at completion
// rate p. ok is false for an unknown trophy id.
func (e *Estimator) Probability(id string, p float64) (Percent, bool) {
	raw, ok := e.Raw(id, p)
	if !ok {
		return 0, false
	}
	return Percent(raw * 100), true
}

// AtReference evaluates a trophy at its tier's reference rate.
func (e *Estimator) AtReference(id string) (Percent, bool) {
	def, ok := e.engine.Lookup(id)
	if !ok {
		return 0, false
	}
	return e.Probability(id, e.rates.For(def.Tier))
}

// Raw returns the unlock probability in [0, 1].
func (e *Estimator) Raw(id string, p float64) (float64, bool) {
	def, ok := e.engine.Lookup(id)
	if !ok {
		return 0, false
	}
	s := e.Stats()
	k := def.Threshold
	d := e.discounts

	switch def.Metric {
	case domain.MetricTotalDays:
		return AtLeast(k, s.N, p), true
	case domain.MetricLongestStreak:
		return Streak(k, s.N, p), true
	case domain.MetricScore:
		return e.ScoreAtLeast(k, p), true
	case domain.MetricMonsters:
		return AtLeast(k, s.Monsters, p), true
	case domain.MetricTraps:
		return AtLeast(k, s.Traps, p), true
	case domain.MetricMana:
		return AtLeast(k, s.Mana, p), true
	case domain.MetricUndead:
		return AtLeast(k, s.Undead, p), true
	case domain.MetricShamans:
		return AtLeast(k, s.Shamans, p), true
	case domain.MetricNecromancers:
		return AtLeast(k, s.Necromancers, p), true
	case domain.MetricBosses:
		return AtLeast(k, s.Bosses, p*d.Boss), true
	case domain.MetricElite:
		return AtLeast(k, s.Elites, p*d.Elite), true
	case domain.MetricDoubles:
		return AtLeast(k, s.Doubles, p*d.Elite), true
	case domain.MetricInvisibles:
		return AtLeast(k, s.Invisibles, p*d.Elite), true
	case domain.MetricInfluenced:
		return AtLeast(k, s.Influenced, p*d.Influenced), true
	case domain.MetricFinalBoss:
		return AtLeast(k, s.FinalBoss, p*d.Final), true
	case domain.MetricWings:
		return AtLeast(k, s.Wings, math.Pow(p, 7)), true
	}
	return 0, false
}

// ScoreAtLeast approximates P(total score >= threshold). Cells contribute
// independently; each full wing adds an independent 3-point Bernoulli with
// success probability p^7.
func (e *Estimator) ScoreAtLeast(threshold int, p float64) float64 {
	s := e.Stats()
	q := math.Pow(p, 7)
	w := float64(s.Wings)
	bonus := float64(scoring.WingBonus)

	mu := p*s.SumValues + w*bonus*q
	variance := p*(1-p)*s.SumSquares + w*bonus*bonus*q*(1-q)
	sigma := math.Sqrt(variance)
	if sigma < sigmaFloor {
		if float64(threshold) <= mu {
			return 1
		}
		return 0
	}
	return 1 - NormalCDF((float64(threshold)-0.5-mu)/sigma)
}

// Row is one line of a probability table.
type Row struct {
	Trophy  domain.TrophyDef
	Rate    float64
	Percent Percent
}

// Table evaluates every trophy in catalog order. A rate of 0 selects each
// trophy's tier reference rate.
func (e *Estimator) Table(p float64) []Row {
	defs := e.engine.Definitions()
	rows := make([]Row, 0, len(defs))
	for _, def := range defs {
		rate := p
		if rate == 0 {
			rate = e.rates.For(def.Tier)
		}
		pct, _ := e.Probability(def.ID, rate)
		rows = append(rows, Row{Trophy: def, Rate: rate, Percent: pct})
	}
	return rows
}
