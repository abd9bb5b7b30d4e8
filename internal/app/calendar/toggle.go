package calendar

import (
	"fmt"

	"github.com/donjon-365/donjon/internal/domain"
)

// Toggles never modify their input. Each returns a new Year; the old value
// stays valid for undo or comparison.

// ToggleDay flips the day addressed by display coordinates
// (month, week within month, day within week).
func ToggleDay(y domain.Year, month, week, day int) (domain.Year, error) {
	pos, err := Position(y, month, week, day)
	if err != nil {
		return y, err
	}
	return toggleAt(y, month, pos), nil
}

// Position maps display coordinates to the day's position in its month.
func Position(y domain.Year, month, week, day int) (int, error) {
	if month < 0 || month >= len(y.Months) {
		return 0, fmt.Errorf("month %d: %w", month, domain.ErrDayOutOfRange)
	}
	weeks := y.Months[month].Weeks()
	if week < 0 || week >= len(weeks) || day < 0 || day >= weeks[week].Len() {
		return 0, fmt.Errorf("month %d week %d day %d: %w", month, week, day, domain.ErrDayOutOfRange)
	}
	return weeks[week].Start + day, nil
}

// ToggleDayByIndex flips the day with the given global index.
func ToggleDayByIndex(y domain.Year, globalIndex int) (domain.Year, error) {
	mi, pos, ok := y.Locate(globalIndex)
	if !ok {
		return y, fmt.Errorf("day %d: %w", globalIndex, domain.ErrDayOutOfRange)
	}
	return toggleAt(y, mi, pos), nil
}

func toggleAt(y domain.Year, mi, pos int) domain.Year {
	out := cloneMonth(y, mi)
	m := &out.Months[mi]
	d := &m.Days[pos]
	d.Completed = !d.Completed

	// Losing the day loses the potion it earned.
	if !d.Completed && d.HasMana() && d.ManaSlot < len(m.ManaUsed) {
		m.ManaUsed[d.ManaSlot] = false
	}
	return out
}

// ToggleMana flips the used flag of a mana slot. Only an earned potion
// can be marked used; clearing is always allowed.
func ToggleMana(y domain.Year, month, slot int) (domain.Year, error) {
	if month < 0 || month >= len(y.Months) {
		return y, fmt.Errorf("month %d: %w", month, domain.ErrDayOutOfRange)
	}
	m := y.Months[month]
	if slot < 0 || slot >= len(m.ManaUsed) {
		return y, fmt.Errorf("month %d slot %d: %w", month, slot, domain.ErrSlotOutOfRange)
	}
	if !m.ManaUsed[slot] && !m.ManaEarned(slot) {
		return y, fmt.Errorf("month %d slot %d: %w", month, slot, domain.ErrManaNotEarned)
	}

	out := cloneMonth(y, month)
	out.Months[month].ManaUsed[slot] = !m.ManaUsed[slot]
	return out, nil
}

// ToggleItem flips slot 0 or 1 of an item in a month.
func ToggleItem(y domain.Year, month int, it domain.Item, slot int) (domain.Year, error) {
	if month < 0 || month >= len(y.Months) {
		return y, fmt.Errorf("month %d: %w", month, domain.ErrDayOutOfRange)
	}
	if it < domain.Staff || it > domain.Ring {
		return y, domain.ErrUnknownItem
	}
	if !y.Months[month].SlotUsable(it, slot) {
		return y, fmt.Errorf("%s slot %d in month %d: %w", it, slot, month, domain.ErrItemUnavailable)
	}

	out := cloneMonth(y, month)
	m := &out.Months[month]
	m.SetItemUsed(it, slot, !m.ItemUsed(it)[slot])
	return out, nil
}

// cloneMonth copies the month slice and deep-copies the one month that
// is about to change. Untouched months keep sharing their backing arrays.
func cloneMonth(y domain.Year, mi int) domain.Year {
	out := domain.Year{Months: make([]domain.Month, len(y.Months))}
	copy(out.Months, y.Months)
	out.Months[mi] = y.Months[mi].Clone()
	return out
}
