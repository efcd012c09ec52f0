package cli_test

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/tailored-agentic-units/janken/cli"
	"github.com/tailored-agentic-units/janken/game"
	"github.com/tailored-agentic-units/janken/player"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type stubRand struct{ n int }

func (r stubRand) IntN(bound int) int { return r.n % bound }
func (r stubRand) Float64() float64 { return 0 }

func scissorsPlayer() player.Player {
	return player.NewRandom(player.WithRand(stubRand{n: 2}))
}

func TestPlayRound_Japanese(t *testing.T) {
	var out bytes.Buffer
	ui := cli.New(strings.NewReader("グー\n"), &out, game.LocaleJA)
	ai := scissorsPlayer()

	round, ok, err := ui.PlayRound(context.Background(), ai)
	if err != nil {
		t.Fatalf("PlayRound failed: %v", err)
	}
	if !ok {
		t.Fatal("round should have been played")
	}
	if round.Outcome() != game.FirstWins {
		t.Errorf("got outcome %v, want first-wins", round.Outcome())
	}
	if len(ai.History()) != 1 {
		t.Errorf("got %d rounds in AI history, want 1", len(ai.History()))
	}

	got := out.String()
	for _, want := range []string{
		"🎮 LLM じゃんけんゲームへようこそ！",
		"🤖 ランダムAI: 「",
		"あなた: グー ✊",
		"AI: チョキ ✌️",
		"🎉 あなたの勝ち！",
		"ありがとうございました",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestPlayRound_English(t *testing.T) {
	var out bytes.Buffer
	ui := cli.New(strings.NewReader("  Paper \n"), &out, game.LocaleEN)

	round, ok, err := ui.PlayRound(context.Background(), scissorsPlayer())
	if err != nil || !ok {
		t.Fatalf("PlayRound = %v, %v", ok, err)
	}
	if round.Outcome() != game.SecondWins {
		t.Errorf("got outcome %v, want second-wins", round.Outcome())
	}

	got := out.String()
	for _, want := range []string{"You: Paper ✋", "AI: Scissors ✌️", "😅 AI wins!", "Thank you for playing"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestPlayRound_RetriesInvalidInput(t *testing.T) {
	var out bytes.Buffer
	ui := cli.New(strings.NewReader("lizard\n\nscissors\n"), &out, game.LocaleEN)

	round, ok, err := ui.PlayRound(context.Background(), scissorsPlayer())
	if err != nil || !ok {
		t.Fatalf("PlayRound = %v, %v", ok, err)
	}
	if round.Outcome() != game.Tie {
		t.Errorf("got outcome %v, want tie", round.Outcome())
	}
	if n := strings.Count(out.String(), "Invalid input."); n != 2 {
		t.Errorf("got %d invalid-input lines, want 2", n)
	}
	if !strings.Contains(out.String(), "🤝 It's a draw!") {
		t.Error("missing draw line")
	}
}

func TestPlayRound_Quit(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"quit command", "quit\n"},
		{"quit uppercase", "QUIT\n"},
		{"end of input", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			ui := cli.New(strings.NewReader(tt.input), &out, game.LocaleJA)
			ai := scissorsPlayer()

			_, ok, err := ui.PlayRound(context.Background(), ai)
			if err != nil {
				t.Fatalf("PlayRound failed: %v", err)
			}
			if ok {
				t.Error("quit should not play a round")
			}
			if len(ai.History()) != 0 {
				t.Error("quit should not record a round")
			}
			if !strings.Contains(out.String(), "ゲームを終了します") {
				t.Error("missing goodbye")
			}
		})
	}
}

func TestNew_UnknownLocaleFallsBack(t *testing.T) {
	var out bytes.Buffer
	cli.New(strings.NewReader(""), &out, game.Locale("fr")).Welcome()

	if !strings.Contains(out.String(), "ようこそ") {
		t.Errorf("expected Japanese banner, got:\n%s", out.String())
	}
}
