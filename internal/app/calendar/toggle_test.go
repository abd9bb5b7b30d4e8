package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donjon-365/donjon/internal/app/calendar"
	"github.com/donjon-365/donjon/internal/domain"
)

// feb3 is the global index of 3 February, the first mana day of the year.
const feb3 = 31 + 2

func TestToggleDayByIndex_CopyOnWrite(t *testing.T) {
	orig := calendar.Generate()

	next, err := calendar.ToggleDayByIndex(orig, 3)
	require.NoError(t, err)

	assert.True(t, next.Months[0].Days[3].Completed)
	assert.False(t, orig.Months[0].Days[3].Completed, "input year must not change")

	back, err := calendar.ToggleDayByIndex(next, 3)
	require.NoError(t, err)
	assert.False(t, back.Months[0].Days[3].Completed)
	assert.True(t, next.Months[0].Days[3].Completed)
}

func TestToggleDayByIndex_OutOfRange(t *testing.T) {
	y := calendar.Generate()
	for _, idx := range []int{-1, domain.DaysInYear} {
		_, err := calendar.ToggleDayByIndex(y, idx)
		assert.ErrorIs(t, err, domain.ErrDayOutOfRange)
	}
}

func TestToggleDay_DisplayCoordinates(t *testing.T) {
	y := calendar.Generate()

	// Week 1 of January begins on Sunday the 4th.
	next, err := calendar.ToggleDay(y, 0, 1, 0)
	require.NoError(t, err)
	assert.True(t, next.Months[0].Days[3].Completed)

	_, err = calendar.ToggleDay(y, 0, 0, 3)
	assert.ErrorIs(t, err, domain.ErrDayOutOfRange, "first January week has only 3 days")

	_, err = calendar.ToggleDay(y, 12, 0, 0)
	assert.ErrorIs(t, err, domain.ErrDayOutOfRange)
}

func TestToggleDay_WeekCompletion(t *testing.T) {
	y := calendar.Generate()
	var err error
	for i := 3; i < 10; i++ {
		y, err = calendar.ToggleDayByIndex(y, i)
		require.NoError(t, err)
	}
	weeks := y.Months[0].Weeks()
	assert.False(t, weeks[0].Completed)
	assert.True(t, weeks[1].Completed)

	y, err = calendar.ToggleDayByIndex(y, 5)
	require.NoError(t, err)
	assert.False(t, y.Months[0].Weeks()[1].Completed)
}

func TestToggleMana_RequiresEarnedPotion(t *testing.T) {
	y := calendar.Generate()

	_, err := calendar.ToggleMana(y, 1, 0)
	assert.ErrorIs(t, err, domain.ErrManaNotEarned)

	y, err = calendar.ToggleDayByIndex(y, feb3)
	require.NoError(t, err)

	y, err = calendar.ToggleMana(y, 1, 0)
	require.NoError(t, err)
	assert.True(t, y.Months[1].ManaUsed[0])
	assert.True(t, y.Months[1].ManaUsable(0))

	_, err = calendar.ToggleMana(y, 1, 3)
	assert.ErrorIs(t, err, domain.ErrSlotOutOfRange)
}

func TestToggleDay_OffClearsManaUsage(t *testing.T) {
	y := calendar.Generate()
	y, err := calendar.ToggleDayByIndex(y, feb3)
	require.NoError(t, err)
	y, err = calendar.ToggleMana(y, 1, 0)
	require.NoError(t, err)

	y, err = calendar.ToggleDayByIndex(y, feb3)
	require.NoError(t, err)
	assert.False(t, y.Months[1].ManaUsed[0])
	assert.False(t, y.Months[1].ManaUsable(0))
}

func TestToggleItem(t *testing.T) {
	y := calendar.Generate()

	_, err := calendar.ToggleItem(y, 2, domain.Staff, 0)
	assert.ErrorIs(t, err, domain.ErrItemUnavailable)

	_, err = calendar.ToggleItem(y, 3, domain.Staff, 1)
	assert.ErrorIs(t, err, domain.ErrItemUnavailable)

	next, err := calendar.ToggleItem(y, 3, domain.Staff, 0)
	require.NoError(t, err)
	assert.Equal(t, [2]bool{true, false}, next.Months[3].StaffUsed)
	assert.Equal(t, [2]bool{}, y.Months[3].StaffUsed)

	next, err = calendar.ToggleItem(next, 9, domain.Ring, 1)
	require.NoError(t, err)
	assert.Equal(t, [2]bool{false, true}, next.Months[9].RingUsed)

	next, err = calendar.ToggleItem(next, 9, domain.Ring, 1)
	require.NoError(t, err)
	assert.Equal(t, [2]bool{}, next.Months[9].RingUsed)
}
