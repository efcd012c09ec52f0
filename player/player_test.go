package player_test

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/tailored-agentic-units/janken/game"
	"github.com/tailored-agentic-units/janken/player"
)

// stubRand returns fixed draws: IntN yields n modulo the bound, Float64
// yields f.
type stubRand struct {
	n int
	f float64
}

func (r stubRand) IntN(bound int) int { return r.n % bound }
func (r stubRand) Float64() float64 { return r.f }

func round(human, ai game.Move) game.Round {
	return game.NewRound(human, ai, time.Time{})
}

func TestRandom_ChooseMove(t *testing.T) {
	for i, want := range game.Moves {
		p := player.NewRandom(player.WithRand(stubRand{n: i}))
		if got := p.ChooseMove(context.Background()); got != want {
			t.Errorf("draw %d: got %v, want %v", i, got, want)
		}
	}
}

func TestRandom_ChooseMove_AlwaysValid(t *testing.T) {
	p := player.NewRandom()
	for range 100 {
		if m := p.ChooseMove(context.Background()); !m.Valid() {
			t.Fatalf("got invalid move %v", m)
		}
	}
}

func TestRandom_Taunt(t *testing.T) {
	seen := make(map[string]bool)
	for i := range 5 {
		p := player.NewRandom(player.WithRand(stubRand{n: i}))
		seen[p.Taunt(context.Background())] = true
	}
	if len(seen) != 5 {
		t.Errorf("got %d distinct taunts, want 5", len(seen))
	}
}

func TestPlayer_RecordRound(t *testing.T) {
	players := []player.Player{
		player.NewRandom(),
		player.NewPattern(),
	}

	for _, p := range players {
		t.Run(p.Name(), func(t *testing.T) {
			p.RecordRound(round(game.Rock, game.Paper))
			p.RecordRound(round(game.Scissors, game.Paper))

			h := p.History()
			if len(h) != 2 {
				t.Fatalf("got %d rounds, want 2", len(h))
			}
			if h[0].Human() != game.Rock || h[1].Human() != game.Scissors {
				t.Errorf("history out of order: %v, %v", h[0].Human(), h[1].Human())
			}

			h[0] = round(game.Paper, game.Paper)
			if p.History()[0].Human() != game.Rock {
				t.Error("History should return a copy")
			}
		})
	}
}

func TestPlayer_RecordRound_Concurrent(t *testing.T) {
	p := player.NewPattern()
	const n = 100

	var wg sync.WaitGroup
	wg.Add(2 * n)
	for range n {
		go func() {
			defer wg.Done()
			p.RecordRound(round(game.Rock, game.Rock))
		}()
		go func() {
			defer wg.Done()
			_ = p.ChooseMove(context.Background())
		}()
	}
	wg.Wait()

	if len(p.History()) != n {
		t.Errorf("got %d rounds, want %d", len(p.History()), n)
	}
}

func TestPattern_WarmupIsRandom(t *testing.T) {
	p := player.NewPattern(player.WithRand(stubRand{n: 0, f: 0}))
	p.RecordRound(round(game.Rock, game.Rock))
	p.RecordRound(round(game.Rock, game.Rock))

	// With two rounds the counter (paper) must not be used; draw 0 is rock.
	if got := p.ChooseMove(context.Background()); got != game.Rock {
		t.Errorf("got %v, want rock from uniform draw", got)
	}
}

func TestPattern_CountersLastMove(t *testing.T) {
	tests := []struct {
		last game.Move
		want game.Move
	}{
		{game.Rock, game.Paper},
		{game.Paper, game.Scissors},
		{game.Scissors, game.Rock},
	}

	for _, tt := range tests {
		t.Run(tt.last.String(), func(t *testing.T) {
			p := player.NewPattern(player.WithRand(stubRand{n: 0, f: 0.69}))
			player.Replay(p, []game.Round{
				round(game.Scissors, game.Rock),
				round(game.Paper, game.Rock),
				round(tt.last, game.Rock),
			})

			if got := p.ChooseMove(context.Background()); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPattern_RandomBranch(t *testing.T) {
	p := player.NewPattern(player.WithRand(stubRand{n: 2, f: 0.7}))
	player.Replay(p, []game.Round{
		round(game.Rock, game.Rock),
		round(game.Rock, game.Rock),
		round(game.Rock, game.Rock),
	})

	if got := p.ChooseMove(context.Background()); got != game.Scissors {
		t.Errorf("got %v, want scissors from uniform draw", got)
	}
}

func TestPattern_Taunt(t *testing.T) {
	p := player.NewPattern()
	ctx := context.Background()

	none := p.Taunt(ctx)
	p.RecordRound(round(game.Rock, game.Paper))
	some := p.Taunt(ctx)
	p.RecordRound(round(game.Rock, game.Paper))
	p.RecordRound(round(game.Paper, game.Paper))
	rich := p.Taunt(ctx)

	if none == some || some == rich || none == rich {
		t.Errorf("taunts should vary with history length: %q, %q, %q", none, some, rich)
	}
}

func TestWithName(t *testing.T) {
	p := player.NewRandom(player.WithName("テストAI"))
	if p.Name() != "テストAI" {
		t.Errorf("got name %q", p.Name())
	}

	p = player.NewRandom(player.WithName(""))
	if p.Name() == "" {
		t.Error("empty WithName should keep the default")
	}
}

func TestDefaultTaunt(t *testing.T) {
	var p player.Player = player.NewRandom()
	if p.Taunt(context.Background()) == "" {
		t.Error("taunt should not be empty")
	}
}

func TestReplay(t *testing.T) {
	rounds := []game.Round{
		round(game.Rock, game.Paper),
		round(game.Paper, game.Paper),
	}
	p := player.NewRandom()
	player.Replay(p, rounds)

	got := p.History()
	if !slices.Equal(got, rounds) {
		t.Errorf("got %v, want %v", got, rounds)
	}
}
