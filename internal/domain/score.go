package domain

// Score is a snapshot derived from a Year. It is never stored; the scoring
// service recomputes it from scratch after every mutation.
type Score struct {
	TotalScore               int `json:"total_score"`
	MonstersDefeated         int `json:"monsters_defeated"`
	UndeadDefeated           int `json:"undead_defeated"`
	EliteDefeated            int `json:"elite_defeated"`
	DoublesDefeated          int `json:"doubles_defeated"`
	TrapsDefeated            int `json:"traps_defeated"`
	BossesDefeated           int `json:"bosses_defeated"`
	CompleteWings            int `json:"complete_wings"`
	ManaPotionsEarned        int `json:"mana_potions_earned"`
	InvisiblesDefeated       int `json:"invisibles_defeated"`
	NecromancersDefeated     int `json:"necromancers_defeated"`
	InfluencedBossesDefeated int `json:"influenced_bosses_defeated"`
	ShamansDefeated          int `json:"shamans_defeated"`
	FinalBossDefeated        int `json:"final_boss_defeated"`
}

// Add returns the field-wise sum of two scores.
func (s Score) Add(o Score) Score {
	return Score{
		TotalScore:               s.TotalScore + o.TotalScore,
		MonstersDefeated:         s.MonstersDefeated + o.MonstersDefeated,
		UndeadDefeated:           s.UndeadDefeated + o.UndeadDefeated,
		EliteDefeated:            s.EliteDefeated + o.EliteDefeated,
		DoublesDefeated:          s.DoublesDefeated + o.DoublesDefeated,
		TrapsDefeated:            s.TrapsDefeated + o.TrapsDefeated,
		BossesDefeated:           s.BossesDefeated + o.BossesDefeated,
		CompleteWings:            s.CompleteWings + o.CompleteWings,
		ManaPotionsEarned:        s.ManaPotionsEarned + o.ManaPotionsEarned,
		InvisiblesDefeated:       s.InvisiblesDefeated + o.InvisiblesDefeated,
		NecromancersDefeated:     s.NecromancersDefeated + o.NecromancersDefeated,
		InfluencedBossesDefeated: s.InfluencedBossesDefeated + o.InfluencedBossesDefeated,
		ShamansDefeated:          s.ShamansDefeated + o.ShamansDefeated,
		FinalBossDefeated:        s.FinalBossDefeated + o.FinalBossDefeated,
	}
}
