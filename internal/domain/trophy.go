package domain

// ─── Tiers ──────────────────────────────────────────────────────────────────

// Tier ranks a trophy and sets its XP reward.
type Tier string

const (
	TierBronze Tier = "BRONZE"
	TierArgent Tier = "ARGENT"
	TierOr     Tier = "OR"
)

// XP returns the experience granted by a trophy of this tier.
func (t Tier) XP() int64 {
	switch t {
	case TierBronze:
		return 25
	case TierArgent:
		return 50
	case TierOr:
		return 100
	}
	return 0
}

// Label returns the display label of the tier.
func (t Tier) Label() string {
	switch t {
	case TierBronze:
		return "Bronze"
	case TierArgent:
		return "Argent"
	case TierOr:
		return "Or"
	}
	return string(t)
}

// ─── Metrics ────────────────────────────────────────────────────────────────

// Metric names a counter a trophy threshold is measured against.
type Metric string

const (
	MetricTotalDays     Metric = "total_days"
	MetricLongestStreak Metric = "longest_streak"
	MetricScore         Metric = "total_score"
	MetricMonsters      Metric = "monsters"
	MetricTraps         Metric = "traps"
	MetricBosses        Metric = "bosses"
	MetricWings         Metric = "wings"
	MetricMana          Metric = "mana"
	MetricUndead        Metric = "undead"
	MetricElite         Metric = "elite"
	MetricDoubles       Metric = "doubles"
	MetricInvisibles    Metric = "invisibles"
	MetricInfluenced    Metric = "influenced"
	MetricShamans       Metric = "shamans"
	MetricNecromancers  Metric = "necromancers"
	MetricFinalBoss     Metric = "final_boss"
)

// TrophyStats is the snapshot fed to trophy thresholds: the score plus
// Year-level metrics that the score does not carry.
type TrophyStats struct {
	Score
	TotalDaysCompleted int `json:"total_days_completed"`
	LongestStreak      int `json:"longest_streak"`
}

// Get returns the value of a metric. Unknown metrics read as zero.
func (s TrophyStats) Get(m Metric) int {
	switch m {
	case MetricTotalDays:
		return s.TotalDaysCompleted
	case MetricLongestStreak:
		return s.LongestStreak
	case MetricScore:
		return s.TotalScore
	case MetricMonsters:
		return s.MonstersDefeated
	case MetricTraps:
		return s.TrapsDefeated
	case MetricBosses:
		return s.BossesDefeated
	case MetricWings:
		return s.CompleteWings
	case MetricMana:
		return s.ManaPotionsEarned
	case MetricUndead:
		return s.UndeadDefeated
	case MetricElite:
		return s.EliteDefeated
	case MetricDoubles:
		return s.DoublesDefeated
	case MetricInvisibles:
		return s.InvisiblesDefeated
	case MetricInfluenced:
		return s.InfluencedBossesDefeated
	case MetricShamans:
		return s.ShamansDefeated
	case MetricNecromancers:
		return s.NecromancersDefeated
	case MetricFinalBoss:
		return s.FinalBossDefeated
	}
	return 0
}

// ─── Trophy Types ───────────────────────────────────────────────────────────

// TrophyDef defines a single trophy: reached when Metric >= Threshold.
type TrophyDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Tier        Tier   `json:"tier"`
	Icon        string `json:"icon"`
	MinMonth    int    `json:"min_month"` // first month index where it is shown
	Metric      Metric `json:"metric"`
	Threshold   int    `json:"threshold"`
}

// Reached reports whether the stats satisfy the trophy.
func (d TrophyDef) Reached(s TrophyStats) bool {
	return s.Get(d.Metric) >= d.Threshold
}

// UnlockMap records when each trophy was earned: id → ISO-8601 timestamp.
// Keys are only ever added.
type UnlockMap map[string]string

// Clone returns a copy of the map. A nil map clones to an empty one.
func (u UnlockMap) Clone() UnlockMap {
	c := make(UnlockMap, len(u))
	for k, v := range u {
		c[k] = v
	}
	return c
}

// LevelInfo describes progress through the 20 player levels.
type LevelInfo struct {
	Level       int    `json:"level"`
	Title       string `json:"title"`
	TotalXP     int64  `json:"total_xp"`
	XPIntoLevel int64  `json:"xp_into_level"`
	XPForLevel  int64  `json:"xp_for_level"`
	IsMaxLevel  bool   `json:"is_max_level"`
}
