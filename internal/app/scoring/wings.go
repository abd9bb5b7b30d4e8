package scoring

import "github.com/donjon-365/donjon/internal/domain"

// The wing grid lays a month onto 7 Monday-first columns. It is built from
// the flat day list and the first day's weekday only; display weeks play
// no part in it.

// GridOffset returns the column of the month's first day in a Monday-first
// grid.
func GridOffset(m domain.Month) int {
	return (m.StartWeekday - 1 + 7) % 7
}

// GridRows returns the number of display rows the month occupies.
func GridRows(m domain.Month) int {
	return (GridOffset(m) + len(m.Days) + 6) / 7
}

// RowOf returns the grid row of the day at position pos.
func RowOf(m domain.Month, pos int) int {
	return (pos + GridOffset(m)) / 7
}

// RowDays returns the positions of the real days in grid row r.
func RowDays(m domain.Month, r int) []int {
	offset := GridOffset(m)
	var pos []int
	for col := 0; col < 7; col++ {
		idx := r*7 + col - offset
		if idx >= 0 && idx < len(m.Days) {
			pos = append(pos, idx)
		}
	}
	return pos
}

// FullRows counts the rows that hold 7 real days, i.e. the wings that can
// be conquered at all.
func FullRows(m domain.Month) int {
	n := 0
	for r := 0; r < GridRows(m); r++ {
		if len(RowDays(m, r)) == 7 {
			n++
		}
	}
	return n
}

// CompleteWings counts full rows whose 7 days are all completed. Partial
// rows never count.
func CompleteWings(m domain.Month) int {
	n := 0
	for r := 0; r < GridRows(m); r++ {
		row := RowDays(m, r)
		if len(row) != 7 {
			continue
		}
		done := true
		for _, p := range row {
			if !m.Days[p].Completed {
				done = false
				break
			}
		}
		if done {
			n++
		}
	}
	return n
}
