// Package game holds the pure rock-paper-scissors domain: the three moves,
// their parsing and display vocabulary, round resolution, and immutable
// round records.
//
//	human, _ := game.Parse("グー")
//	outcome := game.Resolve(human, game.Scissors) // game.FirstWins
package game

import (
	"fmt"
	"strings"
)

// Move is one of the three legal symbols.
type Move int

const (
	Rock Move = iota
	Paper
	Scissors
)

// Moves lists every legal move in canonical order.
var Moves = [...]Move{Rock, Paper, Scissors}

// Locale selects the vocabulary used for tokens and display labels.
type Locale string

const (
	LocaleJA Locale = "ja"
	LocaleEN Locale = "en"

	DefaultLocale = LocaleJA
)

// ParseLocale maps a language tag to a supported Locale. Anything other than
// "en" resolves to the default.
func ParseLocale(s string) Locale {
	if Locale(strings.ToLower(s)) == LocaleEN {
		return LocaleEN
	}
	return DefaultLocale
}

var englishTokens = [...]string{
	Rock:     "rock",
	Paper:    "paper",
	Scissors: "scissors",
}

var japaneseTokens = [...]string{
	Rock:     "グー",
	Paper:    "パー",
	Scissors: "チョキ",
}

var glyphs = [...]string{
	Rock:     "✊",
	Paper:    "✋",
	Scissors: "✌️",
}

var englishLabels = [...]string{
	Rock:     "Rock",
	Paper:    "Paper",
	Scissors: "Scissors",
}

var tokenIndex = func() map[string]Move {
	idx := make(map[string]Move, 2*len(Moves))
	for _, m := range Moves {
		idx[englishTokens[m]] = m
		idx[japaneseTokens[m]] = m
	}
	return idx
}()

// Parse maps an English token (case-insensitive) or an exact Japanese token
// to a Move. The boolean is false when nothing matches; no trimming or fuzzy
// matching is performed.
func Parse(text string) (Move, bool) {
	m, ok := tokenIndex[strings.ToLower(text)]
	return m, ok
}

// ValidateToken reports whether text parses to a Move.
func ValidateToken(text string) bool {
	_, ok := Parse(text)
	return ok
}

// Valid reports whether m is one of the three legal moves.
func (m Move) Valid() bool {
	return m >= Rock && m <= Scissors
}

// String returns the canonical English token.
func (m Move) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Move(%d)", int(m))
	}
	return englishTokens[m]
}

// Token returns the input token for m in the given locale. Parse(m.Token(l))
// always yields m.
func (m Move) Token(locale Locale) string {
	if !m.Valid() {
		return m.String()
	}
	if locale == LocaleEN {
		return englishTokens[m]
	}
	return japaneseTokens[m]
}

// Display returns a human-readable label with the hand glyph. Unknown
// locales fall back to Japanese.
func (m Move) Display(locale Locale) string {
	if !m.Valid() {
		return m.String()
	}
	if locale == LocaleEN {
		return englishLabels[m] + " " + glyphs[m]
	}
	return japaneseTokens[m] + " " + glyphs[m]
}

// Beats returns the move that m defeats.
func (m Move) Beats() Move {
	return beats[m]
}

// Counter returns the move that defeats m.
func (m Move) Counter() Move {
	return counters[m]
}

var beats = [...]Move{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

var counters = [...]Move{
	Rock:     Paper,
	Paper:    Scissors,
	Scissors: Rock,
}

// MarshalText encodes a Move as its canonical English token, which makes it
// usable both as a JSON value and as a JSON object key.
func (m Move) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid move: %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText accepts any token Parse accepts.
func (m *Move) UnmarshalText(text []byte) error {
	parsed, ok := Parse(string(text))
	if !ok {
		return fmt.Errorf("invalid move token: %q", text)
	}
	*m = parsed
	return nil
}
