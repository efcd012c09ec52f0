package session

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tailored-agentic-units/janken/game"
)

type memorySession struct {
	id        string
	createdAt time.Time
	rounds    []game.Round
	mu        sync.RWMutex
	turn      sync.Mutex
}

// NewMemorySession creates a Session backed by an in-memory slice.
// The session is assigned a unique UUIDv7 identifier.
func NewMemorySession() Session {
	return &memorySession{
		id:        uuid.Must(uuid.NewV7()).String(),
		createdAt: time.Now(),
	}
}

func (s *memorySession) ID() string {
	return s.id
}

func (s *memorySession) CreatedAt() time.Time {
	return s.createdAt
}

func (s *memorySession) AddRound(r game.Round) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rounds = append(s.rounds, r)
}

func (s *memorySession) Rounds() []game.Round {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.rounds)
}

func (s *memorySession) Stats() Stats {
	return Compute(s.Rounds())
}

func (s *memorySession) Lock()   { s.turn.Lock() }
func (s *memorySession) Unlock() { s.turn.Unlock() }
