package trophy

import "github.com/donjon-365/donjon/internal/domain"

// ─── Trophy Definitions ─────────────────────────────────────────────────────
// 30 trophies across 3 tiers. Each is a threshold on one metric.

// AllTrophies returns the full trophy catalog in display order.
func AllTrophies() []domain.TrophyDef {
	return []domain.TrophyDef{
		// ── Bronze (15) ────────────────────────────────────────────────
		{
			ID: "premier_sang", Name: "Premier Sang", Description: "Remporter 1 combat",
			Tier: domain.TierBronze, Icon: "Swords",
			Metric: domain.MetricTotalDays, Threshold: 1,
		},
		{
			ID: "piegeur", Name: "Désamorceur", Description: "Désamorcer 1 piège",
			Tier: domain.TierBronze, Icon: "AlertTriangle",
			Metric: domain.MetricTraps, Threshold: 1,
		},
		{
			ID: "premier_boss", Name: "Dimanche Noir", Description: "Terrasser 1 boss",
			Tier: domain.TierBronze, Icon: "Crown",
			Metric: domain.MetricBosses, Threshold: 1,
		},
		{
			ID: "chasseur_20", Name: "Chasseur", Description: "Vaincre 20 monstres",
			Tier: domain.TierBronze, Icon: "Skull",
			Metric: domain.MetricMonsters, Threshold: 20,
		},
		{
			ID: "premiere_aile", Name: "Première Aile", Description: "Conquérir 1 aile",
			Tier: domain.TierBronze, Icon: "Shield",
			Metric: domain.MetricWings, Threshold: 1,
		},
		{
			ID: "alchimiste", Name: "Alchimiste", Description: "Obtenir 1 potion de mana",
			Tier: domain.TierBronze, Icon: "FlaskConical", MinMonth: 1,
			Metric: domain.MetricMana, Threshold: 1,
		},
		{
			ID: "serie_7", Name: "Sans Répit", Description: "Série de 7 jours consécutifs",
			Tier: domain.TierBronze, Icon: "Flame",
			Metric: domain.MetricLongestStreak, Threshold: 7,
		},
		{
			ID: "score_50", Name: "Aventurier", Description: "Atteindre 50 points",
			Tier: domain.TierBronze, Icon: "Trophy",
			Metric: domain.MetricScore, Threshold: 50,
		},
		{
			ID: "score_100", Name: "Centurion", Description: "Atteindre 100 points",
			Tier: domain.TierBronze, Icon: "Trophy",
			Metric: domain.MetricScore, Threshold: 100,
		},
		{
			ID: "revenant", Name: "Face à la Mort", Description: "Vaincre 1 mort-vivant",
			Tier: domain.TierBronze, Icon: "Skull", MinMonth: 2,
			Metric: domain.MetricUndead, Threshold: 1,
		},
		{
			ID: "elite_abattu", Name: "Élite Terrassé", Description: "Vaincre 1 monstre élite",
			Tier: domain.TierBronze, Icon: "Zap", MinMonth: 4,
			Metric: domain.MetricElite, Threshold: 1,
		},
		{
			ID: "double_vaincu", Name: "Double Victoire", Description: "Vaincre 1 monstre double",
			Tier: domain.TierBronze, Icon: "Layers2", MinMonth: 6,
			Metric: domain.MetricDoubles, Threshold: 1,
		},
		{
			ID: "invisible_vaincu", Name: "Révélé", Description: "Vaincre 1 monstre invisible",
			Tier: domain.TierBronze, Icon: "EyeOff", MinMonth: 8,
			Metric: domain.MetricInvisibles, Threshold: 1,
		},
		{
			ID: "influence_brisee", Name: "Influence Brisée", Description: "Vaincre 1 boss influencé",
			Tier: domain.TierBronze, Icon: "Flame", MinMonth: 9,
			Metric: domain.MetricInfluenced, Threshold: 1,
		},
		{
			ID: "shaman_vaincu", Name: "Brise-Sort", Description: "Vaincre 1 Shaman de l'Ombre",
			Tier: domain.TierBronze, Icon: "Ghost", MinMonth: 10,
			Metric: domain.MetricShamans, Threshold: 1,
		},

		// ── Argent (10) ────────────────────────────────────────────────
		{
			ID: "massacreur", Name: "Massacreur", Description: "Vaincre 60 monstres",
			Tier: domain.TierArgent, Icon: "Skull",
			Metric: domain.MetricMonsters, Threshold: 60,
		},
		{
			ID: "briseur_boss", Name: "Briseur de Boss", Description: "Terrasser 15 boss",
			Tier: domain.TierArgent, Icon: "Crown",
			Metric: domain.MetricBosses, Threshold: 15,
		},
		{
			ID: "conquerant", Name: "Conquérant", Description: "Conquérir 8 ailes",
			Tier: domain.TierArgent, Icon: "Swords",
			Metric: domain.MetricWings, Threshold: 8,
		},
		{
			ID: "piegeur_expert", Name: "Maître des Pièges", Description: "Désamorcer 20 pièges",
			Tier: domain.TierArgent, Icon: "AlertTriangle",
			Metric: domain.MetricTraps, Threshold: 20,
		},
		{
			ID: "score_200", Name: "Héros", Description: "Atteindre 200 points",
			Tier: domain.TierArgent, Icon: "Trophy",
			Metric: domain.MetricScore, Threshold: 200,
		},
		{
			ID: "score_300", Name: "Vétéran", Description: "Atteindre 300 points",
			Tier: domain.TierArgent, Icon: "Trophy",
			Metric: domain.MetricScore, Threshold: 300,
		},
		{
			ID: "chasseur_morts", Name: "Exterminateur", Description: "Vaincre 15 morts-vivants",
			Tier: domain.TierArgent, Icon: "Skull", MinMonth: 2,
			Metric: domain.MetricUndead, Threshold: 15,
		},
		{
			ID: "invisible_5", Name: "Traqueur de l'Ombre", Description: "Vaincre 5 monstres invisibles",
			Tier: domain.TierArgent, Icon: "EyeOff", MinMonth: 8,
			Metric: domain.MetricInvisibles, Threshold: 5,
		},
		{
			ID: "elite_10", Name: "Chasseur Élite", Description: "Vaincre 10 monstres élites",
			Tier: domain.TierArgent, Icon: "Zap", MinMonth: 4,
			Metric: domain.MetricElite, Threshold: 10,
		},
		{
			ID: "double_10", Name: "Duelliste", Description: "Vaincre 10 monstres doubles",
			Tier: domain.TierArgent, Icon: "Layers2", MinMonth: 6,
			Metric: domain.MetricDoubles, Threshold: 10,
		},

		// ── Or (5) ─────────────────────────────────────────────────────
		{
			ID: "legende", Name: "Légende du Donjon", Description: "Atteindre 450 points",
			Tier: domain.TierOr, Icon: "Trophy",
			Metric: domain.MetricScore, Threshold: 450,
		},
		{
			ID: "massacreur_120", Name: "Fléau des Monstres", Description: "Vaincre 120 monstres",
			Tier: domain.TierOr, Icon: "Skull",
			Metric: domain.MetricMonsters, Threshold: 120,
		},
		{
			ID: "boss_final_vaincu", Name: "Maître du Donjon", Description: "Vaincre le Boss Final",
			Tier: domain.TierOr, Icon: "Award", MinMonth: 11,
			Metric: domain.MetricFinalBoss, Threshold: 1,
		},
		{
			ID: "trois_necros", Name: "Exorciste", Description: "Vaincre 3 nécromanciers",
			Tier: domain.TierOr, Icon: "Skull", MinMonth: 8,
			Metric: domain.MetricNecromancers, Threshold: 3,
		},
		{
			ID: "boss_influences_3", Name: "Ombre Dissipée", Description: "Vaincre 3 boss influencés",
			Tier: domain.TierOr, Icon: "Flame", MinMonth: 9,
			Metric: domain.MetricInfluenced, Threshold: 3,
		},
	}
}

// Visible reports whether a trophy is shown once the player has reached
// currentMonth.
func Visible(def domain.TrophyDef, currentMonth int) bool {
	return currentMonth >= def.MinMonth
}
