package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/tailored-agentic-units/janken/game"
)

// Store maps session ids to sessions. Entries are never evicted.
type Store interface {
	// Create allocates a new empty session.
	Create(ctx context.Context) (Session, error)
	// Get returns the session with id, or ErrNotFound.
	Get(ctx context.Context, id string) (Session, error)
	// RecordRound appends r to the session with id, or returns ErrNotFound.
	RecordRound(ctx context.Context, id string, r game.Round) error
	// Stats summarizes the session with id, or returns ErrNotFound.
	Stats(ctx context.Context, id string) (Stats, error)
	// Len returns the number of live sessions.
	Len() int
}

type memoryStore struct {
	sessions map[string]Session
	mu       sync.RWMutex
}

// NewMemoryStore creates a process-local Store.
func NewMemoryStore() Store {
	return &memoryStore{sessions: make(map[string]Session)}
}

func (s *memoryStore) Create(_ context.Context) (Session, error) {
	sess := NewMemorySession()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID()] = sess
	return sess, nil
}

func (s *memoryStore) Get(_ context.Context, id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return sess, nil
}

func (s *memoryStore) RecordRound(ctx context.Context, id string, r game.Round) error {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	sess.AddRound(r)
	return nil
}

func (s *memoryStore) Stats(ctx context.Context, id string) (Stats, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return Stats{}, err
	}
	return sess.Stats(), nil
}

func (s *memoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
