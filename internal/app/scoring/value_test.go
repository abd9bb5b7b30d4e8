package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donjon-365/donjon/internal/app/calendar"
	"github.com/donjon-365/donjon/internal/app/scoring"
	"github.com/donjon-365/donjon/internal/domain"
)

func TestGrid(t *testing.T) {
	y := calendar.Generate()
	tests := []struct {
		month              int
		offset, rows, full int
	}{
		{0, 3, 5, 3},  // January starts Thursday
		{1, 6, 5, 3},  // February starts Sunday
		{5, 0, 5, 4},  // June starts Monday
		{7, 5, 6, 4},  // August starts Saturday
		{10, 6, 6, 4}, // November starts Sunday
	}
	for _, tt := range tests {
		m := y.Months[tt.month]
		assert.Equal(t, tt.offset, scoring.GridOffset(m), m.Name)
		assert.Equal(t, tt.rows, scoring.GridRows(m), m.Name)
		assert.Equal(t, tt.full, scoring.FullRows(m), m.Name)
	}

	total := 0
	for _, m := range y.Months {
		total += scoring.FullRows(m)
	}
	assert.Equal(t, 41, total)
}

func TestRowDays(t *testing.T) {
	jan := calendar.Generate().Months[0]
	assert.Equal(t, []int{0, 1, 2, 3}, scoring.RowDays(jan, 0))
	assert.Equal(t, []int{4, 5, 6, 7, 8, 9, 10}, scoring.RowDays(jan, 1))
	assert.Equal(t, 0, scoring.RowOf(jan, 3))
	assert.Equal(t, 1, scoring.RowOf(jan, 4))
}

func TestDisplayValue_PlainDay(t *testing.T) {
	jan := calendar.Generate().Months[0]
	assert.Equal(t, 18, scoring.DisplayValue(jan, 10)) // 11 January
}

func TestDisplayValue_InfluencedBossSameRowOnly(t *testing.T) {
	y := calendar.Generate()
	oct := monthStart(y, 9)
	assert.Equal(t, 17, scoring.DisplayValue(y.Months[9], 3))

	// 7 October sits in the next row and leaves the 4th untouched.
	y = complete(t, y, oct+6)
	assert.Equal(t, 17, scoring.DisplayValue(y.Months[9], 3))
	assert.Equal(t, 8, scoring.DisplayValue(y.Months[9], 10))
}

func TestDisplayValue_FinalBossHalving(t *testing.T) {
	y := calendar.Generate()
	dec := monthStart(y, 11)
	final := 30

	assert.Equal(t, scoring.FinalBossValue, scoring.DisplayValue(y.Months[11], final))

	y = complete(t, y, dec+1) // 2 December
	assert.Equal(t, scoring.FinalBossValue/2, scoring.DisplayValue(y.Months[11], final))

	y = complete(t, y, dec+8, dec+15, dec+22)
	assert.Equal(t, scoring.FinalBossValue/16, scoring.DisplayValue(y.Months[11], final))
}

func TestDisplayValue_FinalBossWaitsForNecromancer(t *testing.T) {
	m := domain.Month{
		StartWeekday: 1,
		Days: []domain.Day{
			{Type: domain.TypeUndead, Value: 1, Completed: true, ManaSlot: domain.NoManaSlot},
			{Type: domain.TypeUndead, Value: 1, Completed: true, ManaSlot: domain.NoManaSlot},
			{Type: domain.TypeNecromancer, Value: 1, ManaSlot: domain.NoManaSlot},
			{Type: domain.TypeBoss, Value: scoring.FinalBossValue, Flags: domain.Flags{FinalBoss: true}, ManaSlot: domain.NoManaSlot},
		},
	}
	assert.Equal(t, scoring.FinalBossValue, scoring.DisplayValue(m, 3))

	m.Days[2].Completed = true
	assert.Equal(t, scoring.FinalBossValue/4, scoring.DisplayValue(m, 3))
}

func TestDisplayValue_DoesNotChangeScore(t *testing.T) {
	y := calendar.Generate()
	dec := monthStart(y, 11)

	y = complete(t, y, dec+30)
	before := scoring.Calculate(y).TotalScore

	y = complete(t, y, dec+1, dec+8)
	assert.Equal(t, scoring.FinalBossValue/4, scoring.DisplayValue(y.Months[11], 30))
	assert.Equal(t, before+2*scoring.UndeadPoints, scoring.Calculate(y).TotalScore)
}
