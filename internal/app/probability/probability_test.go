package probability_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donjon-365/donjon/internal/app/calendar"
	"github.com/donjon-365/donjon/internal/app/probability"
)

func newEstimator() *probability.Estimator {
	return probability.NewEstimator(calendar.Generate(), probability.DefaultDiscounts(), probability.DefaultRates())
}

func TestNormalCDF(t *testing.T) {
	assert.InDelta(t, 0.5, probability.NormalCDF(0), 1e-7)
	assert.InDelta(t, 0.841345, probability.NormalCDF(1), 1e-6)
	assert.InDelta(t, 0.022750, probability.NormalCDF(-2), 1e-6)
	assert.InDelta(t, 1, probability.NormalCDF(9), 1e-9)
	assert.InDelta(t, 1, probability.NormalCDF(1.3)+probability.NormalCDF(-1.3), 1e-12)
}

func TestAtLeast_Edges(t *testing.T) {
	assert.Equal(t, 1.0, probability.AtLeast(0, 10, 0.3))
	assert.Equal(t, 1.0, probability.AtLeast(-2, 0, 0.3))
	assert.Equal(t, 0.0, probability.AtLeast(1, 0, 0.9))
	assert.Equal(t, 0.0, probability.AtLeast(11, 10, 0.9))

	// Degenerate p collapses to a point mass.
	assert.Equal(t, 1.0, probability.AtLeast(10, 10, 1))
	assert.Equal(t, 0.0, probability.AtLeast(1, 10, 0))
}

func TestAtLeast_Symmetry(t *testing.T) {
	// Binomial(100, 0.5): mu 50, sigma 5.
	assert.InDelta(t, 0.4602, probability.AtLeast(51, 100, 0.5), 1e-3)
	assert.Greater(t, probability.AtLeast(40, 100, 0.5), 0.97)
	assert.Less(t, probability.AtLeast(60, 100, 0.5), 0.03)
}

func TestStreak(t *testing.T) {
	for _, p := range []float64{0.1, 0.5, 0.9} {
		want := 1 - math.Pow(1-p, 20)
		assert.InDelta(t, want, probability.Streak(1, 20, p), 1e-12, "p=%v", p)
	}

	assert.Equal(t, 1.0, probability.Streak(0, 5, 0.2))
	assert.Equal(t, 0.0, probability.Streak(6, 5, 0.99))
	assert.InDelta(t, math.Pow(0.7, 5), probability.Streak(5, 5, 0.7), 1e-12)

	// 110, 011 and 111 out of eight sequences.
	assert.InDelta(t, 3.0/8.0, probability.Streak(2, 3, 0.5), 1e-12)
}

func TestStats_DefaultCalendar(t *testing.T) {
	s := newEstimator().Stats()

	assert.Equal(t, 365, s.N)
	assert.Equal(t, 242, s.Monsters)
	assert.Equal(t, 53, s.Bosses)
	assert.Equal(t, 33, s.Traps)
	assert.Equal(t, 28, s.Undead)
	assert.Equal(t, 4, s.Doubles)
	assert.Equal(t, 1, s.Necromancers)
	assert.Equal(t, 4, s.Shamans)
	assert.Equal(t, 18, s.Mana)
	assert.Equal(t, 11, s.Elites)
	assert.Equal(t, 2, s.Invisibles)
	assert.Equal(t, 4, s.Influenced)
	assert.Equal(t, 1, s.FinalBoss)
	assert.Equal(t, 41, s.Wings)
	assert.Equal(t, 496.0, s.SumValues)
	assert.Equal(t, 2136.0, s.SumSquares)
}

func TestProbability_WellBelowExpectation(t *testing.T) {
	e := newEstimator()

	pct, ok := e.Probability("massacreur", 0.65)
	require.True(t, ok)
	assert.Greater(t, float64(pct), 95.0)
	assert.Equal(t, ">99", pct.String())
}

func TestProbability_FarAboveExpectation(t *testing.T) {
	e := newEstimator()

	pct, ok := e.Probability("massacreur_120", 0.2)
	require.True(t, ok)
	assert.Equal(t, "<1", pct.String())
}

func TestProbability_UnknownTrophy(t *testing.T) {
	e := newEstimator()
	_, ok := e.Probability("nope", 0.5)
	assert.False(t, ok)
	_, ok = e.AtReference("nope")
	assert.False(t, ok)
}

func TestProbability_MonotonicInRate(t *testing.T) {
	e := newEstimator()
	for _, id := range []string{"score_300", "serie_7", "conquerant", "briseur_boss", "legende"} {
		prev := -1.0
		for _, p := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
			raw, ok := e.Raw(id, p)
			require.True(t, ok, id)
			assert.GreaterOrEqual(t, raw, prev, "%s at p=%v", id, p)
			prev = raw
		}
	}
}

func TestProbability_DiscountApplied(t *testing.T) {
	plain := probability.NewEstimator(calendar.Generate(),
		probability.Discounts{Boss: 1, Elite: 1, Influenced: 1, Final: 1}, probability.DefaultRates())
	tuned := newEstimator()

	a, _ := plain.Raw("boss_final_vaincu", 0.8)
	b, _ := tuned.Raw("boss_final_vaincu", 0.8)
	assert.Greater(t, a, b)
}

func TestScoreAtLeast(t *testing.T) {
	e := newEstimator()
	assert.Equal(t, 1.0, e.ScoreAtLeast(0, 1)) // sigma 0, mu 619
	assert.Equal(t, 1.0, e.ScoreAtLeast(619, 1))
	assert.Equal(t, 0.0, e.ScoreAtLeast(620, 1))
	assert.Greater(t, e.ScoreAtLeast(100, 0.5), 0.99)
	assert.Less(t, e.ScoreAtLeast(450, 0.5), 0.01)
}

func TestPercent_String(t *testing.T) {
	tests := []struct {
		in   probability.Percent
		want string
	}{
		{0, "<1"},
		{0.49, "<1"},
		{0.5, "1"},
		{42.4, "42"},
		{42.5, "43"},
		{99.4, "99"},
		{99.41, ">99"},
		{100, ">99"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.String(), "%v", float64(tt.in))
	}
}

func TestTable(t *testing.T) {
	e := newEstimator()

	rows := e.Table(0)
	require.Len(t, rows, 30)
	for _, r := range rows {
		ref, _ := e.AtReference(r.Trophy.ID)
		assert.Equal(t, ref, r.Percent, r.Trophy.ID)
	}

	fixed := e.Table(0.4)
	for _, r := range fixed {
		assert.Equal(t, 0.4, r.Rate)
	}
}
