package server

import (
	"errors"
	"net/http"

	"connectrpc.com/connect"
	"github.com/gin-gonic/gin"

	"github.com/tailored-agentic-units/janken/game"
	"github.com/tailored-agentic-units/janken/match"
	"github.com/tailored-agentic-units/janken/session"
)

type playRequest struct {
	PlayerChoice string `json:"player_choice"`
	AIPlayer     string `json:"ai_player"`
	Language     string `json:"language"`
}

type startResponse struct {
	GameID  string `json:"game_id"`
	Message string `json:"message"`
}

type playResponse struct {
	GameID        string       `json:"game_id"`
	PlayerChoice  game.Move    `json:"player_choice"`
	AIChoice      game.Move    `json:"ai_choice"`
	Result        game.Outcome `json:"result"`
	Message       string       `json:"psychological_message,omitempty"`
	AIPlayer      string       `json:"ai_player"`
	AIName        string       `json:"ai_name"`
	PlayerDisplay string       `json:"player_display"`
	AIDisplay     string       `json:"ai_display"`
}

type historyResponse struct {
	GameID  string        `json:"game_id"`
	History []game.Round  `json:"history"`
	Stats   session.Stats `json:"stats"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func newPlayResponse(r *match.PlayResult) playResponse {
	return playResponse{
		GameID:        r.SessionID,
		PlayerChoice:  r.Round.Human(),
		AIChoice:      r.Round.AI(),
		Result:        r.Round.Outcome(),
		Message:       r.Taunt,
		AIPlayer:      r.Player,
		AIName:        r.Name,
		PlayerDisplay: r.Round.Human().Display(r.Locale),
		AIDisplay:     r.Round.AI().Display(r.Locale),
	}
}

func newHistoryResponse(h *match.HistoryResult) historyResponse {
	rounds := h.Rounds
	if rounds == nil {
		rounds = []game.Round{}
	}
	return historyResponse{
		GameID:  h.SessionID,
		History: rounds,
		Stats:   h.Stats,
	}
}

// statusOf maps service errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, match.ErrInvalidMove), errors.Is(err, match.ErrInvalidPlayer):
		return http.StatusUnprocessableEntity
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// codeOf maps service errors to Connect codes.
func codeOf(err error) connect.Code {
	switch {
	case errors.Is(err, match.ErrInvalidMove), errors.Is(err, match.ErrInvalidPlayer):
		return connect.CodeInvalidArgument
	case errors.Is(err, session.ErrNotFound):
		return connect.CodeNotFound
	default:
		return connect.CodeInternal
	}
}

func newErrorResponse(status int, err error) errorResponse {
	return errorResponse{
		Error:  http.StatusText(status),
		Detail: err.Error(),
	}
}

func fail(c *gin.Context, err error) {
	status := statusOf(err)
	c.JSON(status, newErrorResponse(status, err))
}
