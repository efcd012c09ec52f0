package player

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tailored-agentic-units/janken/game"
)

const moveSystemPrompt = "あなたはじゃんけんの専門家です。与えられた指示に従って、適切な手を選択してください。"

const movePreamble = `あなたはじゃんけんプレイヤーです。次に出す手を決めてください。

選択肢は以下の通りです：
- rock (グー)
- paper (パー)
- scissors (チョキ)
`

const moveClosing = `この情報を踏まえて、次に出すべき手を「rock」「paper」「scissors」のいずれかで回答してください。
他の文字や説明は不要で、単語のみを回答してください。
`

// DefaultPersonality is used when no personality, or an unknown one, is set.
const DefaultPersonality = "balanced"

var personalities = map[string]string{
	"balanced":   "あなたは冷静でバランスの取れた戦略家です。",
	"aggressive": "あなたは攻撃的で、相手を圧倒することを好む勝負師です。",
	"cautious":   "あなたは慎重で、相手の傾向をじっくり観察するタイプです。",
	"tricky":     "あなたはトリッキーで、相手の裏をかくことが大好きです。",
}

var difficulties = map[string]string{
	"easy":   "相手は初心者なので、少し手加減してください。",
	"normal": "普通の強さで対戦してください。",
	"hard":   "全力で勝ちにいってください。相手の癖を徹底的に突いてください。",
}

// Personalities lists the personality labels with dedicated framing.
func Personalities() []string {
	names := make([]string, 0, len(personalities))
	for name := range personalities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func personalityFraming(name string) string {
	if framing, ok := personalities[strings.ToLower(name)]; ok {
		return framing
	}
	return personalities[DefaultPersonality]
}

func buildMovePrompt(history []game.Round, personality, difficulty string) string {
	var b strings.Builder

	b.WriteString(movePreamble)
	b.WriteString("\n")
	b.WriteString(personalityFraming(personality))
	b.WriteString("\n")
	if line, ok := difficulties[strings.ToLower(difficulty)]; ok {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(history) > 0 {
		b.WriteString("\n過去のゲーム履歴:\n")
		for i, r := range history {
			fmt.Fprintf(&b, "%d. プレイヤー: %s, あなた: %s, 結果: %s\n",
				i+1, r.Human(), r.AI(), r.Outcome().Label())
		}
	}

	b.WriteString("\n")
	b.WriteString(moveClosing)
	return b.String()
}

func buildTauntPrompt(name string) string {
	return fmt.Sprintf(`あなたは %s というじゃんけんAIです。
これからじゃんけん勝負を始める前に、相手に心理的プレッシャーをかける短い一言を言ってください。

要求：
- 15文字以内の短いメッセージ
- 挑発的だが品位を保った内容
- じゃんけんに関連した内容

例：「君の手は読めているよ」「勝負の時間だ！」
`, name)
}

var replyOrder = [...]game.Move{game.Rock, game.Paper, game.Scissors}

// ParseReply extracts a move from free-form model output. Moves are checked
// in rock, paper, scissors order, each by its English token and then its
// Japanese one; the first move with a substring hit wins.
func ParseReply(reply string) (game.Move, bool) {
	text := strings.ToLower(strings.TrimSpace(reply))

	for _, m := range replyOrder {
		if strings.Contains(text, m.Token(game.LocaleEN)) || strings.Contains(text, m.Token(game.LocaleJA)) {
			return m, true
		}
	}
	return 0, false
}

const (
	tauntMaxRunes = 20
	tauntKeep     = 17
	tauntEllipsis = "..."
	tauntQuotes   = "\"'「」“”"
)

// cleanTaunt strips surrounding quotes and clips long replies to 17 runes
// plus an ellipsis.
func cleanTaunt(reply string) string {
	msg := strings.Trim(strings.TrimSpace(reply), tauntQuotes)
	runes := []rune(msg)
	if len(runes) > tauntMaxRunes {
		return string(runes[:tauntKeep]) + tauntEllipsis
	}
	return msg
}
