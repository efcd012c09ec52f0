package player

import (
	"context"

	"github.com/tailored-agentic-units/janken/game"
)

var randomTaunts = []string{
	"運任せでいくぞ！",
	"予測不可能なのが私の強み！",
	"何が出るかな？お楽しみに！",
	"ランダムの力を見せてやる！",
	"読めるものなら読んでみろ！",
}

// Random draws every move uniformly.
type Random struct {
	*base
}

func NewRandom(opts ...Option) *Random {
	b, _ := newBase("ランダムAI", opts)
	return &Random{base: b}
}

func (p *Random) ChooseMove(context.Context) game.Move {
	return p.randomMove()
}

func (p *Random) Taunt(context.Context) string {
	return p.pick(randomTaunts)
}
