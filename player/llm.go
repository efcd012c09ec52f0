package player

import (
	"context"
	"errors"

	"github.com/tailored-agentic-units/janken/core/protocol"
	"github.com/tailored-agentic-units/janken/game"
	"github.com/tailored-agentic-units/janken/llm"
	"github.com/tailored-agentic-units/janken/observability"
)

// LLM player event types.
const (
	EventLLMFallback      observability.EventType = "player.llm.fallback"
	EventLLMTauntFallback observability.EventType = "player.llm.taunt.fallback"
)

const (
	DefaultHistoryWindow = 5

	moveMaxTokens    = 10
	moveTemperature  = 0.7
	tauntMaxTokens   = 50
	tauntTemperature = 0.8
)

var llmFallbackTaunts = []string{
	"勝負だ！",
	"本気を見せる時だ",
	"君の実力を見せてもらおう",
	"面白くなりそうだ",
	"負けないぞ！",
	"覚悟はできたか？",
	"手加減はしないぞ！",
}

// LLMConfig holds the remote-model player settings. Personality and
// Difficulty only change prompt text.
type LLMConfig struct {
	Client        llm.Config `json:"client"`
	HistoryWindow int        `json:"history_window,omitempty"`
	Personality   string     `json:"personality,omitempty"`
	Difficulty    string     `json:"difficulty,omitempty"`
}

// DefaultLLMConfig returns the default remote-model configuration.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		Client:        llm.DefaultConfig(),
		HistoryWindow: DefaultHistoryWindow,
		Personality:   DefaultPersonality,
	}
}

// Merge applies non-zero values from source into c.
func (c *LLMConfig) Merge(source *LLMConfig) {
	c.Client.Merge(&source.Client)
	if source.HistoryWindow > 0 {
		c.HistoryWindow = source.HistoryWindow
	}
	if source.Personality != "" {
		c.Personality = source.Personality
	}
	if source.Difficulty != "" {
		c.Difficulty = source.Difficulty
	}
}

// LLM asks a chat-completion model for its move and taunts. Every failure
// on either path ends in a locally chosen fallback; errors never reach the
// caller and the model is never re-queried.
type LLM struct {
	*base
	cfg    LLMConfig
	client llm.Client
}

// NewLLM builds a remote-model player named after the configured model. The
// transport is an OpenAIClient unless WithClient overrides it; it connects
// lazily on the first request.
func NewLLM(cfg LLMConfig, opts ...Option) *LLM {
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = DefaultHistoryWindow
	}

	b, o := newBase(cfg.Client.Model, opts)
	client := o.client
	if client == nil {
		client = llm.NewOpenAIClient(cfg.Client)
	}

	return &LLM{
		base:   b,
		cfg:    cfg,
		client: client,
	}
}

// Prompt returns the user prompt the next ChooseMove call would send.
func (p *LLM) Prompt() string {
	return buildMovePrompt(p.recent(p.cfg.HistoryWindow), p.cfg.Personality, p.cfg.Difficulty)
}

func (p *LLM) ChooseMove(ctx context.Context) game.Move {
	reply, err := p.client.Complete(ctx, llm.Request{
		Messages:    protocol.SystemPrompt(moveSystemPrompt, p.Prompt()),
		MaxTokens:   moveMaxTokens,
		Temperature: moveTemperature,
	})
	if err != nil {
		reason := "transport"
		if errors.Is(err, llm.ErrMissingAPIKey) {
			reason = "configuration"
		}
		p.fallback(ctx, reason, map[string]any{"error": err.Error()})
		return p.randomMove()
	}

	if m, ok := ParseReply(reply); ok {
		return m
	}

	p.fallback(ctx, "unrecognized_reply", map[string]any{"reply": reply})
	return p.randomMove()
}

func (p *LLM) Taunt(ctx context.Context) string {
	// A missing credential is expected here and is not reported.
	if !p.cfg.Client.HasCredential() {
		return p.pick(llmFallbackTaunts)
	}

	reply, err := p.client.Complete(ctx, llm.Request{
		Messages:    protocol.InitMessages(protocol.RoleUser, buildTauntPrompt(p.name)),
		MaxTokens:   tauntMaxTokens,
		Temperature: tauntTemperature,
	})
	if err != nil {
		observability.Emit(ctx, p.observer, EventLLMTauntFallback, observability.LevelVerbose, "player.LLM.Taunt", map[string]any{
			"model": p.cfg.Client.Model,
			"error": err.Error(),
		})
		return p.pick(llmFallbackTaunts)
	}

	if msg := cleanTaunt(reply); msg != "" {
		return msg
	}
	return p.pick(llmFallbackTaunts)
}

func (p *LLM) fallback(ctx context.Context, reason string, data map[string]any) {
	data["reason"] = reason
	data["model"] = p.cfg.Client.Model
	observability.Emit(ctx, p.observer, EventLLMFallback, observability.LevelWarning, "player.LLM.ChooseMove", data)
}
