package trophy

import (
	"math"

	"github.com/donjon-365/donjon/internal/domain"
)

// MaxLevel is the top of the level ladder.
const MaxLevel = 20

// LevelTitles names each level, 1-based by position.
var LevelTitles = [MaxLevel]string{
	"Vagabond", "Paysan", "Apprenti", "Milicien", "Écuyer",
	"Soldat", "Garde", "Combattant", "Guerrier", "Vétéran",
	"Chevalier", "Capitaine", "Champion", "Paladin", "Héros",
	"Commandeur", "Seigneur", "Maître de Guerre", "Légende Vivante", "Conquérant du Donjon",
}

// levelThresholds[i] is the cumulative XP needed to leave level i+1.
// Step i costs ceil(20 * 1.11^i).
var levelThresholds = func() [MaxLevel]int64 {
	var t [MaxLevel]int64
	var cum int64
	for i := 0; i < MaxLevel; i++ {
		cum += int64(math.Ceil(20 * math.Pow(1.11, float64(i))))
		t[i] = cum
	}
	return t
}()

// XPForLevel returns the cumulative XP required to reach a given level.
func XPForLevel(level int) int64 {
	if level <= 1 {
		return 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return levelThresholds[level-2]
}

// LevelForXP returns the level (1..20) for a given XP amount.
func LevelForXP(xp int64) int {
	for i, th := range levelThresholds {
		if xp < th {
			return i + 1
		}
	}
	return MaxLevel
}

// TrophyXP sums the tier rewards of every unlocked trophy. Unknown ids are
// ignored.
func (e *Engine) TrophyXP(unlocked domain.UnlockMap) int64 {
	var xp int64
	for id := range unlocked {
		if def, ok := e.byID[id]; ok {
			xp += def.Tier.XP()
		}
	}
	return xp
}

// Level returns detailed level progress for an XP total.
func Level(xp int64) domain.LevelInfo {
	level := LevelForXP(xp)
	prev := XPForLevel(level)
	next := levelThresholds[level-1]
	return domain.LevelInfo{
		Level:       level,
		Title:       LevelTitles[level-1],
		TotalXP:     xp,
		XPIntoLevel: xp - prev,
		XPForLevel:  next - prev,
		IsMaxLevel:  level == MaxLevel && xp >= levelThresholds[MaxLevel-1],
	}
}
