package session

import (
	"math"

	"github.com/tailored-agentic-units/janken/game"
)

// Stats aggregates a history from the human's perspective. WinRate is
// wins/total rounded to three decimals, and 0 for an empty history.
type Stats struct {
	Total     int               `json:"total_games"`
	Wins      int               `json:"wins"`
	Losses    int               `json:"losses"`
	Draws     int               `json:"draws"`
	WinRate   float64           `json:"win_rate"`
	Frequency map[game.Move]int `json:"choice_frequency"`
}

// Compute derives Stats from rounds.
func Compute(rounds []game.Round) Stats {
	st := Stats{
		Total:     len(rounds),
		Frequency: make(map[game.Move]int, len(game.Moves)),
	}
	for _, m := range game.Moves {
		st.Frequency[m] = 0
	}

	for _, r := range rounds {
		switch r.Outcome() {
		case game.FirstWins:
			st.Wins++
		case game.SecondWins:
			st.Losses++
		default:
			st.Draws++
		}
		st.Frequency[r.Human()]++
	}

	if st.Total > 0 {
		st.WinRate = round3(float64(st.Wins) / float64(st.Total))
	}
	return st
}

// WinRatePercent returns the win rate as a percentage.
func (s Stats) WinRatePercent() float64 {
	return math.Round(s.WinRate*1000) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
