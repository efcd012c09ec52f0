package game

import (
	"encoding/json"
	"time"
)

// Round is one completed exchange. Its outcome is derived at construction
// and the value cannot be mutated afterwards.
type Round struct {
	human   Move
	ai      Move
	outcome Outcome
	at      time.Time
}

// NewRound records a turn where the human played first. A zero at means no
// timestamp.
func NewRound(human, ai Move, at time.Time) Round {
	return Round{
		human:   human,
		ai:      ai,
		outcome: Resolve(human, ai),
		at:      at,
	}
}

func (r Round) Human() Move { return r.human }
func (r Round) AI() Move { return r.ai }
func (r Round) Outcome() Outcome { return r.outcome }
func (r Round) Time() time.Time { return r.at }
func (r Round) HasTimestamp() bool { return !r.at.IsZero() }

type roundJSON struct {
	PlayerChoice Move       `json:"player_choice"`
	AIChoice     Move       `json:"ai_choice"`
	Result       Outcome    `json:"result"`
	Timestamp    *time.Time `json:"timestamp,omitempty"`
}

// MarshalJSON uses the external history item shape.
func (r Round) MarshalJSON() ([]byte, error) {
	out := roundJSON{
		PlayerChoice: r.human,
		AIChoice:     r.ai,
		Result:       r.outcome,
	}
	if r.HasTimestamp() {
		at := r.at
		out.Timestamp = &at
	}
	return json.Marshal(out)
}
