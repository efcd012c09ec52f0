// Package server exposes a match.Service over HTTP. One gin engine carries
// the JSON REST API, the Connect RPC GameService, and a WebSocket play loop
// so every surface shares middleware and error mapping.
//
//	srv := server.New(svc, cfg.Server)
//	err := srv.Run(ctx)
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/tailored-agentic-units/janken/match"
	"github.com/tailored-agentic-units/janken/observability"
)

// Option configures a Server.
type Option func(*Server)

// WithObserver sets the observer that receives request events.
func WithObserver(o observability.Observer) Option {
	return func(s *Server) { s.observer = o }
}

// WithHeartbeat sets the WebSocket ping interval and the idle time after
// which a silent connection is dropped. pongWait must exceed ping.
func WithHeartbeat(ping, pongWait time.Duration) Option {
	return func(s *Server) {
		s.pingInterval = ping
		s.pongWait = pongWait
	}
}

// Server is the network front end of a game service.
type Server struct {
	svc      *match.Service
	cfg      match.ServerConfig
	observer observability.Observer
	engine   *gin.Engine

	pingInterval time.Duration
	pongWait     time.Duration
}

// New builds a Server and its routes.
func New(svc *match.Service, cfg match.ServerConfig, opts ...Option) *Server {
	s := &Server{
		svc:      svc,
		cfg:      cfg,
		observer: observability.NoOpObserver{},

		pingInterval: wsPingInterval,
		pongWait:     wsPongWait,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.engine = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on the configured address until ctx is cancelled, then shuts
// down gracefully within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpServer := &http.Server{Handler: s.engine}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(CORS(s.cfg.AllowOrigins))
	r.Use(RequestLogger(s.observer))

	r.GET("/", s.root)
	r.GET("/health", s.health)

	game := r.Group("/game")
	{
		game.POST("/start", s.startGame)
		game.POST("/:id/play", s.playGame)
		game.GET("/:id/history", s.gameHistory)
		game.GET("/:id/ws", s.playSocket)
	}

	for procedure, handler := range s.rpcHandlers() {
		r.POST(procedure, gin.WrapH(handler))
	}

	return r
}
