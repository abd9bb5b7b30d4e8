package backup

import (
	"sort"

	"github.com/donjon-365/donjon/internal/app/calendar"
	"github.com/donjon-365/donjon/internal/app/scoring"
	"github.com/donjon-365/donjon/internal/app/trophy"
	"github.com/donjon-365/donjon/internal/domain"
	"github.com/donjon-365/donjon/internal/infra/savecodec"
)

// Standing is one leaderboard line.
type Standing struct {
	Rank     int
	Pseudo   string
	Score    domain.Score
	Trophies int
	Level    domain.LevelInfo
}

// Leaderboard ranks envelopes by total score descending, then pseudo
// ascending. An undecodable save counts as a fresh year.
func Leaderboard(entries []Envelope) []Standing {
	engine := trophy.NewEngine()
	out := make([]Standing, 0, len(entries))
	for _, env := range entries {
		y, ok := savecodec.Decode(env.SaveData)
		if !ok {
			y = calendar.Generate()
		}
		out = append(out, Standing{
			Pseudo:   env.Pseudo,
			Score:    scoring.Calculate(y),
			Trophies: len(env.Trophies),
			Level:    trophy.Level(engine.TrophyXP(env.Trophies)),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score.TotalScore != out[j].Score.TotalScore {
			return out[i].Score.TotalScore > out[j].Score.TotalScore
		}
		return out[i].Pseudo < out[j].Pseudo
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
