// Package session tracks the rounds played in each game session. Sessions
// are created with opaque identifiers, grow append-only, and live for the
// lifetime of the process.
package session

import (
	"sync"
	"time"

	"github.com/tailored-agentic-units/janken/game"
)

// Session holds an ordered sequence of rounds. Implementations must be safe
// for concurrent use.
type Session interface {
	// ID returns the unique session identifier.
	ID() string
	// CreatedAt returns when the session was allocated.
	CreatedAt() time.Time
	// AddRound appends a round to the history.
	AddRound(r game.Round)
	// Rounds returns a copy of the history, oldest first.
	Rounds() []game.Round
	// Stats summarizes the history from the human's side.
	Stats() Stats

	// Lock and Unlock serialize whole turns on one session. They are
	// independent of the locking AddRound and Rounds do internally.
	sync.Locker
}
