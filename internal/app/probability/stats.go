package probability

import (
	"github.com/donjon-365/donjon/internal/app/scoring"
	"github.com/donjon-365/donjon/internal/domain"
)

// Stats counts the static cell categories of a calendar.
type Stats struct {
	N            int
	Monsters     int
	Bosses       int
	Traps        int
	Undead       int
	Necromancers int
	Shamans      int
	Doubles      int
	Elites       int
	Invisibles   int
	Influenced   int
	Mana         int
	FinalBoss    int
	Wings        int // rows of 7 real days

	SumValues  float64 // Σ points per cell
	SumSquares float64 // Σ points² per cell
}

// CellPoints returns the points a completed cell is worth, before wing
// bonuses and ignoring the necromancer gate.
func CellPoints(d domain.Day) int {
	switch d.Type {
	case domain.TypeBoss:
		v := scoring.BossPoints
		if d.Flags.Influenced {
			v += scoring.InfluenceBonus
		}
		if d.Flags.FinalBoss {
			v += scoring.FinalBossBonus
		}
		return v
	case domain.TypeDouble:
		return scoring.DoublePoints
	}
	return 1
}

// ComputeStats scans a calendar once.
func ComputeStats(y domain.Year) Stats {
	var s Stats
	for _, m := range y.Months {
		s.Wings += scoring.FullRows(m)
		for _, d := range m.Days {
			s.N++
			switch d.Type {
			case domain.TypeMonster:
				s.Monsters++
			case domain.TypeBoss:
				s.Bosses++
			case domain.TypeTrap:
				s.Traps++
			case domain.TypeUndead:
				s.Undead++
			case domain.TypeNecromancer:
				s.Necromancers++
			case domain.TypeShaman:
				s.Shamans++
			case domain.TypeDouble:
				s.Doubles++
			}
			if d.Flags.Elite {
				s.Elites++
			}
			if d.Flags.Invisible {
				s.Invisibles++
			}
			if d.Flags.Influenced {
				s.Influenced++
			}
			if d.Flags.FinalBoss {
				s.FinalBoss++
			}
			if d.HasMana() {
				s.Mana++
			}
			v := float64(CellPoints(d))
			s.SumValues += v
			s.SumSquares += v * v
		}
	}
	return s
}
