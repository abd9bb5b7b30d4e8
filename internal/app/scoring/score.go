// Package scoring derives a Score snapshot from a Year. Every function is
// pure: the same Year always yields the same Score.
package scoring

import "github.com/donjon-365/donjon/internal/domain"

// Point awards.
const (
	MonsterPoints     = 1
	TrapPoints        = 1
	BossPoints        = 2
	UndeadPoints      = 1
	DoublePoints      = 3
	NecromancerPoints = 1
	ShamanPoints      = 1
	InfluenceBonus    = 10
	FinalBossBonus    = 30
	WingBonus         = 3
)

// Calculate computes the score of a whole year, month by month.
func Calculate(y domain.Year) domain.Score {
	var total domain.Score
	for _, m := range y.Months {
		total = total.Add(Month(m))
	}
	return total
}

// Month computes the score contribution of a single month.
func Month(m domain.Month) domain.Score {
	var s domain.Score
	gate := UndeadGateOpen(m)

	for _, d := range m.Days {
		if !d.Completed {
			continue
		}
		switch d.Type {
		case domain.TypeNecromancer:
			s.TotalScore += NecromancerPoints
			s.NecromancersDefeated++
		case domain.TypeBoss:
			s.TotalScore += BossPoints
			s.BossesDefeated++
			if d.Flags.Influenced {
				s.TotalScore += InfluenceBonus
				s.InfluencedBossesDefeated++
			}
			if d.Flags.FinalBoss {
				s.TotalScore += FinalBossBonus
				s.FinalBossDefeated++
			}
		case domain.TypeTrap:
			s.TotalScore += TrapPoints
			s.TrapsDefeated++
		case domain.TypeUndead:
			s.UndeadDefeated++
			if gate {
				s.TotalScore += UndeadPoints
			}
		case domain.TypeDouble:
			s.TotalScore += DoublePoints
			s.DoublesDefeated++
		case domain.TypeShaman:
			s.TotalScore += ShamanPoints
			s.ShamansDefeated++
		default:
			s.TotalScore += MonsterPoints
			s.MonstersDefeated++
		}

		// Tags count whatever branch was taken above.
		if d.Flags.Elite {
			s.EliteDefeated++
		}
		if d.HasMana() {
			s.ManaPotionsEarned++
		}
		if d.Flags.Invisible {
			s.InvisiblesDefeated++
		}
	}

	wings := CompleteWings(m)
	s.CompleteWings += wings
	s.TotalScore += wings * WingBonus
	return s
}

// UndeadGateOpen reports whether undead days score in this month: true
// when the month has no necromancer or one of its necromancers is defeated.
func UndeadGateOpen(m domain.Month) bool {
	has, defeated := false, false
	for _, d := range m.Days {
		if d.Type == domain.TypeNecromancer {
			has = true
			if d.Completed {
				defeated = true
			}
		}
	}
	return !has || defeated
}
