package player

import (
	"context"

	"github.com/tailored-agentic-units/janken/game"
)

const (
	patternWarmup      = 3
	patternCounterRate = 0.7
)

var patternTaunts = map[game.Move]string{
	game.Rock:     "また同じ手を出すのかな？",
	game.Paper:    "パターンが読めてきたぞ！",
	game.Scissors: "次の手は予測済みだ！",
}

// Pattern counters the human's most recent move. Until three rounds are
// known it plays uniformly; after that it plays the counter with
// probability 0.7 and a uniform move otherwise.
type Pattern struct {
	*base
}

func NewPattern(opts ...Option) *Pattern {
	b, _ := newBase("パターンAI", opts)
	return &Pattern{base: b}
}

func (p *Pattern) ChooseMove(context.Context) game.Move {
	if p.historyLen() < patternWarmup {
		return p.randomMove()
	}

	last, _ := p.last()
	if p.rng.Float64() < patternCounterRate {
		return last.Human().Counter()
	}
	return p.randomMove()
}

func (p *Pattern) Taunt(context.Context) string {
	n := p.historyLen()
	switch {
	case n == 0:
		return "君のパターンを分析させてもらう..."
	case n < patternWarmup:
		return "データが集まってきた。面白い..."
	}

	last, _ := p.last()
	if msg, ok := patternTaunts[last.Human()]; ok {
		return msg
	}
	return "君の癖は見抜いた！"
}
