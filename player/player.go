// Package player implements the AI opponents. Every variant keeps a private,
// append-only history of the rounds it has been told about; that history is
// the only state carried between calls.
package player

import (
	"context"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/tailored-agentic-units/janken/game"
	"github.com/tailored-agentic-units/janken/llm"
	"github.com/tailored-agentic-units/janken/observability"
)

// Player is an AI opponent.
type Player interface {
	// Name is the display name used in taunt prompts and output.
	Name() string
	// ChooseMove picks the AI's move for the next round. It never fails.
	ChooseMove(ctx context.Context) game.Move
	// RecordRound appends a completed round to the player's memory.
	RecordRound(round game.Round)
	// Taunt returns a short line of flavor text. It never fails.
	Taunt(ctx context.Context) string
	// History returns a copy of the recorded rounds, oldest first.
	History() []game.Round
}

// Rand is the randomness source used by the players. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// Option configures a player at construction.
type Option func(*options)

type options struct {
	name     string
	rng      Rand
	observer observability.Observer
	client   llm.Client
}

// WithRand replaces the randomness source.
func WithRand(r Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithObserver sets the observer that receives diagnostic events.
func WithObserver(obs observability.Observer) Option {
	return func(o *options) { o.observer = obs }
}

// WithName overrides the display name.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithClient replaces the chat-completion transport of an LLM player. Other
// variants ignore it.
func WithClient(c llm.Client) Option {
	return func(o *options) { o.client = c }
}

const defaultTaunt = "さあ、勝負だ！"

type base struct {
	name     string
	rng      Rand
	observer observability.Observer

	mu      sync.RWMutex
	history []game.Round
}

func newBase(name string, opts []Option) (*base, options) {
	o := options{
		name:     name,
		rng:      globalRand{},
		observer: observability.NoOpObserver{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.name == "" {
		o.name = name
	}
	return &base{
		name:     o.name,
		rng:      o.rng,
		observer: o.observer,
	}, o
}

func (b *base) Name() string {
	return b.name
}

func (b *base) RecordRound(round game.Round) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.history = append(b.history, round)
}

func (b *base) History() []game.Round {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Clone(b.history)
}

// Taunt is the default line for variants that do not override it.
func (b *base) Taunt(context.Context) string {
	return defaultTaunt
}

func (b *base) randomMove() game.Move {
	return game.Moves[b.rng.IntN(len(game.Moves))]
}

func (b *base) pick(pool []string) string {
	return pool[b.rng.IntN(len(pool))]
}

func (b *base) historyLen() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.history)
}

func (b *base) last() (game.Round, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.history) == 0 {
		return game.Round{}, false
	}
	return b.history[len(b.history)-1], true
}

// recent returns up to n trailing rounds, oldest first.
func (b *base) recent(n int) []game.Round {
	b.mu.RLock()
	defer b.mu.RUnlock()
	start := max(len(b.history)-n, 0)
	return slices.Clone(b.history[start:])
}

// Replay feeds rounds into p in order. Collaborators use it to rebuild a
// player's memory from a stored session.
func Replay(p Player, rounds []game.Round) {
	for _, r := range rounds {
		p.RecordRound(r)
	}
}
