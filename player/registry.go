package player

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/tailored-agentic-units/janken/llm"
)

// Built-in player kinds.
const (
	KindRandom  = "random"
	KindPattern = "pattern"
	KindLLM     = "llm"
)

// Sentinel errors for registry operations.
var (
	ErrUnknownKind = errors.New("unknown player kind")
	ErrKindExists  = errors.New("player kind already registered")
	ErrEmptyKind   = errors.New("player kind is empty")
	ErrUnavailable = errors.New("player kind unavailable")
)

// Factory builds a fresh player. Players are stateful, so every session turn
// gets its own instance.
type Factory func(opts ...Option) (Player, error)

// Registry maps player kinds to factories. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// NewDefaultRegistry registers the random, pattern, and llm kinds. The llm
// factory fails with ErrUnavailable (wrapping llm.ErrMissingAPIKey) when cfg
// carries no credential.
func NewDefaultRegistry(cfg LLMConfig) *Registry {
	r := NewRegistry()
	r.mustRegister(KindRandom, func(opts ...Option) (Player, error) {
		return NewRandom(opts...), nil
	})
	r.mustRegister(KindPattern, func(opts ...Option) (Player, error) {
		return NewPattern(opts...), nil
	})
	r.mustRegister(KindLLM, LLMFactory(cfg))
	return r
}

// mustRegister panics on a registration error; for built-in kinds that can
// only mean a duplicated or empty constant.
func (r *Registry) mustRegister(kind string, f Factory) {
	if err := r.Register(kind, f); err != nil {
		panic(err)
	}
}

// LLMFactory returns a factory for remote-model players bound to cfg.
func LLMFactory(cfg LLMConfig) Factory {
	return func(opts ...Option) (Player, error) {
		if !cfg.Client.HasCredential() {
			return nil, fmt.Errorf("%w: %w", ErrUnavailable, llm.ErrMissingAPIKey)
		}
		return NewLLM(cfg, opts...), nil
	}
}

// Register adds a factory under kind.
func (r *Registry) Register(kind string, f Factory) error {
	if kind == "" {
		return ErrEmptyKind
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("%w: %s", ErrKindExists, kind)
	}

	r.factories[kind] = f
	return nil
}

// Replace swaps the factory of an existing kind.
func (r *Registry) Replace(kind string, f Factory) error {
	if kind == "" {
		return ErrEmptyKind
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[kind]; !exists {
		return fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	r.factories[kind] = f
	return nil
}

// Unregister removes a kind.
func (r *Registry) Unregister(kind string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[kind]; !exists {
		return fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	delete(r.factories, kind)
	return nil
}

// New builds a player of the given kind.
func (r *Registry) New(kind string, opts ...Option) (Player, error) {
	r.mu.RLock()
	f, exists := r.factories[kind]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	p, err := f(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s player: %w", kind, err)
	}
	return p, nil
}

// Kinds returns the registered kinds, sorted.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]string, 0, len(r.factories))
	for kind := range r.factories {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
