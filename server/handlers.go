package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tailored-agentic-units/janken/match"
)

const (
	welcomeMessage = "🚀 LLM じゃんけん API へようこそ！"
	startMessage   = "🎮 新しいゲームセッションを開始しました！"
	healthMessage  = "🟢 API は正常に動作しています"
)

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": welcomeMessage,
		"players": s.svc.Registry().Kinds(),
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": healthMessage,
	})
}

func (s *Server) startGame(c *gin.Context) {
	id, err := s.svc.StartSession(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, startResponse{GameID: id, Message: startMessage})
}

func (s *Server) playGame(c *gin.Context) {
	var req playRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, newErrorResponse(http.StatusBadRequest, err))
		return
	}

	result, err := s.svc.Play(c.Request.Context(), match.PlayRequest{
		SessionID: c.Param("id"),
		Move:      req.PlayerChoice,
		Player:    req.AIPlayer,
		Language:  req.Language,
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newPlayResponse(result))
}

func (s *Server) gameHistory(c *gin.Context) {
	history, err := s.svc.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, newHistoryResponse(history))
}
