package game

import (
	"encoding/json"
	"fmt"
)

// Outcome is the result of comparing two moves in play order.
type Outcome int

const (
	Tie Outcome = iota
	FirstWins
	SecondWins
)

// Resolve compares a against b. It is pure and total over valid moves.
func Resolve(a, b Move) Outcome {
	if a == b {
		return Tie
	}
	if a.Beats() == b {
		return FirstWins
	}
	return SecondWins
}

// Invert returns the outcome seen from the other mover's side.
func (o Outcome) Invert() Outcome {
	switch o {
	case FirstWins:
		return SecondWins
	case SecondWins:
		return FirstWins
	default:
		return Tie
	}
}

// Label renders the outcome from the first mover's perspective using the
// wire vocabulary "win", "lose", "draw". The human always moves first.
func (o Outcome) Label() string {
	switch o {
	case FirstWins:
		return "win"
	case SecondWins:
		return "lose"
	default:
		return "draw"
	}
}

func (o Outcome) String() string {
	switch o {
	case FirstWins:
		return "first-wins"
	case SecondWins:
		return "second-wins"
	case Tie:
		return "tie"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Label())
}
