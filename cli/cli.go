// Package cli is the terminal front end: a localized single-round game
// against one AI player, read from and written to plain streams.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/tailored-agentic-units/janken/game"
	"github.com/tailored-agentic-units/janken/player"
)

const quitCommand = "quit"

// UI reads moves from in and writes localized text to out.
type UI struct {
	in     *bufio.Scanner
	out    io.Writer
	locale game.Locale
	msg    messages
	now    func() time.Time

	name  func(a ...any) string
	win   func(a ...any) string
	lose  func(a ...any) string
	draw  func(a ...any) string
	faint func(a ...any) string
}

// New creates a UI. Unsupported locales fall back to Japanese.
func New(in io.Reader, out io.Writer, locale game.Locale) *UI {
	locale = game.ParseLocale(string(locale))
	return &UI{
		in:     bufio.NewScanner(in),
		out:    out,
		locale: locale,
		msg:    messagesFor(locale),
		now:    time.Now,
		name:   color.New(color.FgCyan, color.Bold).SprintFunc(),
		win:    color.New(color.FgGreen, color.Bold).SprintFunc(),
		lose:   color.New(color.FgRed, color.Bold).SprintFunc(),
		draw:   color.New(color.FgYellow).SprintFunc(),
		faint:  color.New(color.Faint).SprintFunc(),
	}
}

// Welcome prints the banner and instructions.
func (u *UI) Welcome() {
	fmt.Fprintln(u.out, u.msg.welcome)
	fmt.Fprintln(u.out, separator)
	fmt.Fprintf(u.out, "\n%s\n", u.msg.vsAI)
	fmt.Fprintln(u.out, u.faint(u.msg.choices))
	fmt.Fprintln(u.out, u.faint(u.msg.quitInfo))
}

// Taunt prints an opponent line.
func (u *UI) Taunt(name, line string) {
	fmt.Fprintf(u.out, "🤖 %s: 「%s」\n\n", u.name(name), line)
}

// ReadMove prompts until a valid token is entered. It returns false when the
// player types quit or the input ends.
func (u *UI) ReadMove() (game.Move, bool, error) {
	fmt.Fprintf(u.out, "\n%s\n", u.msg.gameTitle)

	for {
		fmt.Fprint(u.out, u.msg.inputPrompt)

		if !u.in.Scan() {
			if err := u.in.Err(); err != nil {
				return 0, false, fmt.Errorf("failed to read move: %w", err)
			}
			return 0, false, nil
		}

		text := strings.ToLower(strings.TrimSpace(u.in.Text()))
		if text == quitCommand {
			return 0, false, nil
		}

		if m, ok := game.Parse(text); ok {
			return m, true, nil
		}

		fmt.Fprintln(u.out, u.msg.invalidInput)
	}
}

// Result prints both moves and the outcome from the human's side.
func (u *UI) Result(r game.Round) {
	fmt.Fprintf(u.out, "\n%s: %s\n", u.msg.you, r.Human().Display(u.locale))
	fmt.Fprintf(u.out, "%s: %s\n", u.msg.ai, r.AI().Display(u.locale))

	switch r.Outcome() {
	case game.FirstWins:
		fmt.Fprintln(u.out, u.win(u.msg.win))
	case game.SecondWins:
		fmt.Fprintln(u.out, u.lose(u.msg.lose))
	default:
		fmt.Fprintln(u.out, u.draw(u.msg.draw))
	}
}

// Goodbye prints the closing line.
func (u *UI) Goodbye() {
	fmt.Fprintf(u.out, "\n%s\n", u.msg.goodbye)
}

// PlayRound runs one complete round against ai: banner, taunt, input,
// resolution, and result. The round is recorded into ai's history. The
// boolean is false when the player quit before moving.
func (u *UI) PlayRound(ctx context.Context, ai player.Player) (game.Round, bool, error) {
	u.Welcome()
	u.Taunt(ai.Name(), ai.Taunt(ctx))

	human, ok, err := u.ReadMove()
	if err != nil || !ok {
		u.Goodbye()
		return game.Round{}, false, err
	}

	round := game.NewRound(human, ai.ChooseMove(ctx), u.now())
	ai.RecordRound(round)

	u.Result(round)
	u.Goodbye()
	return round, true, nil
}
