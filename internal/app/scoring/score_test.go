package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donjon-365/donjon/internal/app/calendar"
	"github.com/donjon-365/donjon/internal/app/scoring"
	"github.com/donjon-365/donjon/internal/domain"
)

// complete marks the given global indices completed.
func complete(t *testing.T, y domain.Year, idx ...int) domain.Year {
	t.Helper()
	var err error
	for _, i := range idx {
		y, err = calendar.ToggleDayByIndex(y, i)
		require.NoError(t, err)
	}
	return y
}

// monthStart returns the global index of the first day of month mi.
func monthStart(y domain.Year, mi int) int {
	return y.Months[mi].Days[0].GlobalIndex
}

func TestCalculate_EmptyYear(t *testing.T) {
	assert.Equal(t, domain.Score{}, scoring.Calculate(calendar.Generate()))
}

func TestCalculate_SingleSundayBoss(t *testing.T) {
	y := complete(t, calendar.Generate(), 3)

	assert.Equal(t, domain.Score{TotalScore: 2, BossesDefeated: 1}, scoring.Calculate(y))
}

func TestCalculate_Pure(t *testing.T) {
	y := complete(t, calendar.Generate(), 0, 1, 2, 3, 40, 41, 200)
	first := scoring.Calculate(y)
	assert.Equal(t, first, scoring.Calculate(y))
}

func TestCalculate_FullYear(t *testing.T) {
	y := calendar.Generate()
	for i := 0; i < domain.DaysInYear; i++ {
		y = complete(t, y, i)
	}

	want := domain.Score{
		TotalScore:               619,
		MonstersDefeated:         242,
		UndeadDefeated:           28,
		EliteDefeated:            11,
		DoublesDefeated:          4,
		TrapsDefeated:            33,
		BossesDefeated:           53,
		CompleteWings:            41,
		ManaPotionsEarned:        18,
		InvisiblesDefeated:       2,
		NecromancersDefeated:     1,
		InfluencedBossesDefeated: 4,
		ShamansDefeated:          4,
		FinalBossDefeated:        1,
	}
	assert.Equal(t, want, scoring.Calculate(y))
}

func TestCalculate_NecromancerGating(t *testing.T) {
	y := calendar.Generate()
	sep := monthStart(y, 8)
	undead, necro := sep+1, sep+29 // 2 and 30 September

	y = complete(t, y, undead)
	s := scoring.Calculate(y)
	assert.Equal(t, 1, s.UndeadDefeated)
	assert.Equal(t, 0, s.TotalScore, "undead withheld while the necromancer lives")

	y = complete(t, y, necro)
	s = scoring.Calculate(y)
	assert.Equal(t, 1, s.NecromancersDefeated)
	assert.Equal(t, 2, s.TotalScore, "withheld point granted once the necromancer falls")
}

func TestCalculate_UndeadWithoutNecromancer(t *testing.T) {
	y := calendar.Generate()
	y = complete(t, y, monthStart(y, 2)+4) // 5 March, no necromancer in March

	s := scoring.Calculate(y)
	assert.Equal(t, domain.Score{TotalScore: 1, UndeadDefeated: 1}, s)
}

func TestCalculate_WingUsesMondayGrid(t *testing.T) {
	y := calendar.Generate()

	// 4–10 January is a full display week (Sunday to Saturday) but spans
	// two Monday-first rows.
	y4to10 := complete(t, y, 3, 4, 5, 6, 7, 8, 9)
	assert.True(t, y4to10.Months[0].Weeks()[1].Completed)
	assert.Equal(t, 0, scoring.Calculate(y4to10).CompleteWings)

	// 5–11 January is a Monday-first row.
	y5to11 := complete(t, y, 4, 5, 6, 7, 8, 9, 10)
	s := scoring.Calculate(y5to11)
	assert.Equal(t, 1, s.CompleteWings)
	assert.Equal(t, 5, s.MonstersDefeated)
	assert.Equal(t, 1, s.TrapsDefeated)
	assert.Equal(t, 1, s.BossesDefeated)
	assert.Equal(t, 5+1+2+scoring.WingBonus, s.TotalScore)
}

func TestCalculate_PartialRowNeverCounts(t *testing.T) {
	y := complete(t, calendar.Generate(), 0, 1, 2, 3) // Thursday 1 to Sunday 4
	assert.Equal(t, 0, scoring.Calculate(y).CompleteWings)
}

func TestCalculate_InfluencedBoss(t *testing.T) {
	y := calendar.Generate()
	oct := monthStart(y, 9)

	y = complete(t, y, oct+3) // 4 October
	s := scoring.Calculate(y)
	assert.Equal(t, 1, s.InfluencedBossesDefeated)
	assert.Equal(t, 1, s.BossesDefeated)
	assert.Equal(t, scoring.BossPoints+scoring.InfluenceBonus, s.TotalScore)

	// Defeating the wing's undead halves the value but keeps the bonus.
	y = complete(t, y, oct+1)
	s = scoring.Calculate(y)
	assert.Equal(t, 8, scoring.DisplayValue(y.Months[9], 3))
	assert.Equal(t, scoring.BossPoints+scoring.InfluenceBonus+scoring.UndeadPoints, s.TotalScore)
	assert.Equal(t, 1, s.UndeadDefeated)
}

func TestCalculate_UngatedMonthsScoreUndead(t *testing.T) {
	y := calendar.Generate()
	for _, mi := range []int{2, 3, 4, 5, 6, 9, 11} {
		assert.True(t, scoring.UndeadGateOpen(y.Months[mi]), y.Months[mi].Name)
	}
	assert.False(t, scoring.UndeadGateOpen(y.Months[8]), "September holds the necromancer")

	// 2 October alone: no necromancer in October, so the point counts.
	y = complete(t, y, monthStart(y, 9)+1)
	assert.Equal(t, domain.Score{TotalScore: 1, UndeadDefeated: 1}, scoring.Calculate(y))
}

func TestCalculate_FinalBoss(t *testing.T) {
	y := calendar.Generate()
	y = complete(t, y, domain.DaysInYear-1)

	s := scoring.Calculate(y)
	assert.Equal(t, domain.Score{
		TotalScore:        scoring.BossPoints + scoring.FinalBossBonus,
		BossesDefeated:    1,
		FinalBossDefeated: 1,
	}, s)
}

func TestCalculate_TypesAndTags(t *testing.T) {
	tests := []struct {
		name string
		day  domain.Day
		want domain.Score
	}{
		{"double", domain.Day{Type: domain.TypeDouble, Value: 2, Value2: 3},
			domain.Score{TotalScore: 3, DoublesDefeated: 1}},
		{"shaman", domain.Day{Type: domain.TypeShaman, Value: 4},
			domain.Score{TotalScore: 1, ShamansDefeated: 1}},
		{"elite monster", domain.Day{Type: domain.TypeMonster, Flags: domain.Flags{Elite: true}},
			domain.Score{TotalScore: 1, MonstersDefeated: 1, EliteDefeated: 1}},
		{"elite boss", domain.Day{Type: domain.TypeBoss, Flags: domain.Flags{Elite: true}},
			domain.Score{TotalScore: 2, BossesDefeated: 1, EliteDefeated: 1}},
		{"invisible monster", domain.Day{Type: domain.TypeMonster, Flags: domain.Flags{Invisible: true}},
			domain.Score{TotalScore: 1, MonstersDefeated: 1, InvisiblesDefeated: 1}},
		{"influenced flag on a monster", domain.Day{Type: domain.TypeMonster, Flags: domain.Flags{Influenced: true}},
			domain.Score{TotalScore: 1, MonstersDefeated: 1}},
		{"mana boss", domain.Day{Type: domain.TypeBoss, Flags: domain.Flags{Mana: true}},
			domain.Score{TotalScore: 2, BossesDefeated: 1, ManaPotionsEarned: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.day
			d.Completed = true
			d.ManaSlot = domain.NoManaSlot
			if d.Flags.Mana {
				d.ManaSlot = 0
			}
			m := domain.Month{StartWeekday: 1, Days: []domain.Day{d}}
			assert.Equal(t, tt.want, scoring.Month(m))
		})
	}
}
