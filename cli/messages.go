package cli

import (
	"strings"

	"github.com/tailored-agentic-units/janken/game"
)

type messages struct {
	welcome      string
	vsAI         string
	choices      string
	quitInfo     string
	gameTitle    string
	inputPrompt  string
	invalidInput string
	you          string
	ai           string
	win          string
	lose         string
	draw         string
	goodbye      string
}

var separator = strings.Repeat("=", 40)

var catalog = map[game.Locale]messages{
	game.LocaleJA: {
		welcome:      "🎮 LLM じゃんけんゲームへようこそ！",
		vsAI:         "🤖 AI 対戦相手と対戦します！",
		choices:      "選択肢: rock (グー), paper (パー), scissors (チョキ)",
		quitInfo:     "終了するには 'quit' と入力してください。",
		gameTitle:    "--- じゃんけん勝負！ ---",
		inputPrompt:  "あなたの手を選んでください: ",
		invalidInput: "無効な入力です。rock, paper, scissors または グー, パー, チョキ を入力してください。",
		you:          "あなた",
		ai:           "AI",
		win:          "🎉 あなたの勝ち！",
		lose:         "😅 AI の勝ち！",
		draw:         "🤝 引き分け！",
		goodbye:      "ゲームを終了します。ありがとうございました！",
	},
	game.LocaleEN: {
		welcome:      "🎮 Welcome to LLM Rock-Paper-Scissors!",
		vsAI:         "🤖 Playing against AI opponent!",
		choices:      "Choices: rock, paper, scissors",
		quitInfo:     "Type 'quit' to exit.",
		gameTitle:    "--- Rock-Paper-Scissors Battle! ---",
		inputPrompt:  "Choose your move: ",
		invalidInput: "Invalid input. Please enter rock, paper, or scissors.",
		you:          "You",
		ai:           "AI",
		win:          "🎉 You win!",
		lose:         "😅 AI wins!",
		draw:         "🤝 It's a draw!",
		goodbye:      "Game ended. Thank you for playing!",
	},
}

func messagesFor(locale game.Locale) messages {
	if m, ok := catalog[locale]; ok {
		return m
	}
	return catalog[game.DefaultLocale]
}
