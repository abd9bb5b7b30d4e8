package scoring

import "github.com/donjon-365/donjon/internal/domain"

// FinalBossValue is the final boss's value before any halving.
const FinalBossValue = 32

// DisplayValue returns the value shown on the day at position pos. It is
// computed on read and never stored.
//
// The final boss loses half its value per completed undead anywhere in its
// month, but only once the month's necromancer gate is open. An influenced
// boss is halved once when an undead in its own wing row is completed.
// Halving rounds down. Neither rule touches the points a day scores.
func DisplayValue(m domain.Month, pos int) int {
	d := m.Days[pos]
	switch {
	case d.Flags.FinalBoss:
		v := FinalBossValue
		if UndeadGateOpen(m) {
			for _, o := range m.Days {
				if o.Type == domain.TypeUndead && o.Completed {
					v /= 2
				}
			}
		}
		return v
	case d.Flags.Influenced && d.Type == domain.TypeBoss:
		row := RowOf(m, pos)
		for _, p := range RowDays(m, row) {
			o := m.Days[p]
			if o.Type == domain.TypeUndead && o.Completed {
				return d.Value / 2
			}
		}
	}
	return d.Value
}
