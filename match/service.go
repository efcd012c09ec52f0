// Package match orchestrates game sessions: it allocates sessions, plays one
// round at a time against a freshly built AI player, and reports history.
//
// The service initializes from configuration via NewService. Functional
// options allow test overrides of any collaborator.
//
//	svc, err := match.NewService(&cfg)
//	id, err := svc.StartSession(ctx)
//	result, err := svc.Play(ctx, match.PlayRequest{SessionID: id, Move: "グー"})
package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tailored-agentic-units/janken/game"
	"github.com/tailored-agentic-units/janken/observability"
	"github.com/tailored-agentic-units/janken/player"
	"github.com/tailored-agentic-units/janken/session"
)

// PlayRequest describes one human turn.
type PlayRequest struct {
	SessionID string
	Move      string // human token, English or Japanese
	Player    string // AI kind; empty uses the configured default
	Language  string // display locale; empty uses the configured default
}

// PlayResult holds the outcome of one round.
type PlayResult struct {
	SessionID string
	Round     game.Round
	Taunt     string
	Player    string      // AI kind that actually played
	Name      string      // AI display name
	Locale    game.Locale // resolved display locale
}

// HistoryResult holds a session's rounds and their summary.
type HistoryResult struct {
	SessionID string
	CreatedAt time.Time
	Rounds    []game.Round
	Stats     session.Stats
}

// Option configures a Service after config-driven initialization.
type Option func(*Service)

// WithStore overrides the config-created session store.
func WithStore(s session.Store) Option {
	return func(svc *Service) { svc.store = s }
}

// WithRegistry overrides the default player registry.
func WithRegistry(r *player.Registry) Option {
	return func(svc *Service) { svc.registry = r }
}

// WithObserver overrides the config-selected observer.
func WithObserver(o observability.Observer) Option {
	return func(svc *Service) { svc.observer = o }
}

// WithClock overrides the round timestamp source.
func WithClock(now func() time.Time) Option {
	return func(svc *Service) { svc.now = now }
}

// WithPlayerOptions appends options passed to every player the service builds.
func WithPlayerOptions(opts ...player.Option) Option {
	return func(svc *Service) { svc.playerOpts = append(svc.playerOpts, opts...) }
}

// Service plays rounds against AI players over stored sessions. It is safe
// for concurrent use; turns on the same session are serialized.
type Service struct {
	store      session.Store
	registry   *player.Registry
	observer   observability.Observer
	now        func() time.Time
	playerOpts []player.Option
	player     string
	locale     game.Locale
}

// NewService creates a Service from configuration. The player registry holds
// the random, pattern, and llm kinds bound to cfg.LLM.
func NewService(cfg *Config, opts ...Option) (*Service, error) {
	store, err := session.New(&cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}

	observer, err := observability.GetObserver(cfg.Observer)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve observer: %w", err)
	}

	svc := &Service{
		store:    store,
		registry: player.NewDefaultRegistry(cfg.LLM),
		observer: observer,
		now:      time.Now,
		player:   cfg.Player,
		locale:   game.ParseLocale(string(cfg.Language)),
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// Registry returns the service's player registry.
func (s *Service) Registry() *player.Registry {
	return s.registry
}

// Locale returns the default display locale.
func (s *Service) Locale() game.Locale {
	return s.locale
}

// StartSession allocates an empty session and returns its id.
func (s *Service) StartSession(ctx context.Context) (string, error) {
	sess, err := s.store.Create(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	observability.Emit(ctx, s.observer, EventSessionCreate, observability.LevelInfo, "match.StartSession",
		map[string]any{"session_id": sess.ID()},
	)

	return sess.ID(), nil
}

// Play runs one round. The move is validated before the session is looked
// up, and neither failure changes any state. The AI player is rebuilt from
// the session history, so every turn sees the full record.
func (s *Service) Play(ctx context.Context, req PlayRequest) (*PlayResult, error) {
	human, ok := game.Parse(req.Move)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMove, req.Move)
	}

	sess, err := s.store.Get(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	sess.Lock()
	defer sess.Unlock()

	kind, ai, err := s.NewPlayer(ctx, req.Player)
	if err != nil {
		return nil, err
	}

	rounds := sess.Rounds()
	player.Replay(ai, rounds)

	aiMove := ai.ChooseMove(ctx)
	taunt := ai.Taunt(ctx)

	round := game.NewRound(human, aiMove, s.now())
	if err := s.store.RecordRound(ctx, sess.ID(), round); err != nil {
		return nil, err
	}
	ai.RecordRound(round)

	observability.Emit(ctx, s.observer, EventRoundComplete, observability.LevelInfo, "match.Play",
		map[string]any{
			"session_id": sess.ID(),
			"round":      len(rounds) + 1,
			"player":     kind,
			"human":      human.String(),
			"ai":         aiMove.String(),
			"result":     round.Outcome().Label(),
		},
	)

	locale := s.locale
	if req.Language != "" {
		locale = game.ParseLocale(req.Language)
	}

	return &PlayResult{
		SessionID: sess.ID(),
		Round:     round,
		Taunt:     taunt,
		Player:    kind,
		Name:      ai.Name(),
		Locale:    locale,
	}, nil
}

// History returns the rounds and stats of a session.
func (s *Service) History(ctx context.Context, id string) (*HistoryResult, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	rounds := sess.Rounds()
	return &HistoryResult{
		SessionID: sess.ID(),
		CreatedAt: sess.CreatedAt(),
		Rounds:    rounds,
		Stats:     session.Compute(rounds),
	}, nil
}

// NewPlayer builds a player of the requested kind with the service's player
// options and returns the kind actually built. Empty kind uses the configured
// default. A kind the registry reports as unavailable degrades to pattern.
func (s *Service) NewPlayer(ctx context.Context, kind string) (string, player.Player, error) {
	if kind == "" {
		kind = s.player
	}

	opts := append([]player.Option{player.WithObserver(s.observer)}, s.playerOpts...)

	p, err := s.registry.New(kind, opts...)
	if errors.Is(err, player.ErrUnavailable) && kind != player.KindPattern {
		observability.Emit(ctx, s.observer, EventPlayerFallback, observability.LevelVerbose, "match.Play",
			map[string]any{
				"requested": kind,
				"using":     player.KindPattern,
				"error":     err.Error(),
			},
		)
		kind = player.KindPattern
		p, err = s.registry.New(kind, opts...)
	}

	switch {
	case errors.Is(err, player.ErrUnknownKind):
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidPlayer, err)
	case err != nil:
		return "", nil, err
	}
	return kind, p, nil
}
