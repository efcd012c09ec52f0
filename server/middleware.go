package server

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tailored-agentic-units/janken/observability"
)

// EventRequest is emitted once per handled HTTP request.
const EventRequest observability.EventType = "server.request"

const (
	corsMethods = "GET, POST, OPTIONS"
	corsHeaders = "Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms, X-Requested-With"
)

// CORS answers preflight requests and sets the allow headers for origins in
// allowed. "*" allows any origin.
func CORS(allowed []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); originAllowed(allowed, origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}

		c.Header("Access-Control-Allow-Methods", corsMethods)
		c.Header("Access-Control-Allow-Headers", corsHeaders)
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func originAllowed(allowed []string, origin string) bool {
	if origin == "" {
		return false
	}
	return slices.Contains(allowed, "*") || slices.Contains(allowed, origin)
}

// RequestLogger reports every request to obs after it completes.
func RequestLogger(obs observability.Observer) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		observability.Emit(c.Request.Context(), obs, EventRequest, observability.LevelVerbose, "server.RequestLogger",
			map[string]any{
				"method":    c.Request.Method,
				"path":      path,
				"status":    c.Writer.Status(),
				"latency":   time.Since(start).String(),
				"client_ip": c.ClientIP(),
			},
		)
	}
}
