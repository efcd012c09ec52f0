package player_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/tailored-agentic-units/janken/llm"
	"github.com/tailored-agentic-units/janken/player"
)

func TestDefaultRegistry_Kinds(t *testing.T) {
	r := player.NewDefaultRegistry(player.DefaultLLMConfig())

	want := []string{player.KindLLM, player.KindPattern, player.KindRandom}
	if got := r.Kinds(); !slices.Equal(got, want) {
		t.Errorf("got kinds %v, want %v", got, want)
	}
}

func TestDefaultRegistry_New(t *testing.T) {
	r := player.NewDefaultRegistry(llmConfig("test-key"))

	tests := []struct {
		kind  string
		check func(player.Player) bool
	}{
		{player.KindRandom, func(p player.Player) bool { _, ok := p.(*player.Random); return ok }},
		{player.KindPattern, func(p player.Player) bool { _, ok := p.(*player.Pattern); return ok }},
		{player.KindLLM, func(p player.Player) bool { _, ok := p.(*player.LLM); return ok }},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			p, err := r.New(tt.kind)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if !tt.check(p) {
				t.Errorf("got %T", p)
			}
		})
	}
}

func TestDefaultRegistry_FreshInstances(t *testing.T) {
	r := player.NewDefaultRegistry(player.DefaultLLMConfig())

	a, _ := r.New(player.KindPattern)
	b, _ := r.New(player.KindPattern)
	a.RecordRound(round(0, 0))

	if len(b.History()) != 0 {
		t.Error("each New call should return an independent player")
	}
}

func TestDefaultRegistry_LLMWithoutCredential(t *testing.T) {
	r := player.NewDefaultRegistry(player.DefaultLLMConfig())

	_, err := r.New(player.KindLLM)
	if !errors.Is(err, player.ErrUnavailable) {
		t.Errorf("got %v, want ErrUnavailable", err)
	}
	if !errors.Is(err, llm.ErrMissingAPIKey) {
		t.Errorf("got %v, want wrapped ErrMissingAPIKey", err)
	}
}

func TestRegistry_Errors(t *testing.T) {
	r := player.NewRegistry()
	factory := func(opts ...player.Option) (player.Player, error) {
		return player.NewRandom(opts...), nil
	}

	if err := r.Register("", factory); !errors.Is(err, player.ErrEmptyKind) {
		t.Errorf("got %v, want ErrEmptyKind", err)
	}
	if err := r.Register("x", factory); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := r.Register("x", factory); !errors.Is(err, player.ErrKindExists) {
		t.Errorf("got %v, want ErrKindExists", err)
	}
	if _, err := r.New("y"); !errors.Is(err, player.ErrUnknownKind) {
		t.Errorf("got %v, want ErrUnknownKind", err)
	}
	if err := r.Replace("y", factory); !errors.Is(err, player.ErrUnknownKind) {
		t.Errorf("got %v, want ErrUnknownKind", err)
	}
	if err := r.Replace("x", factory); err != nil {
		t.Errorf("Replace failed: %v", err)
	}
	if err := r.Unregister("x"); err != nil {
		t.Errorf("Unregister failed: %v", err)
	}
	if err := r.Unregister("x"); !errors.Is(err, player.ErrUnknownKind) {
		t.Errorf("got %v, want ErrUnknownKind", err)
	}
}

func TestRegistry_New_PassesOptions(t *testing.T) {
	r := player.NewDefaultRegistry(player.DefaultLLMConfig())

	p, err := r.New(player.KindRandom, player.WithName("custom"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if p.Name() != "custom" {
		t.Errorf("got name %q, want custom", p.Name())
	}
}
