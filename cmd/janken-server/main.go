package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/tailored-agentic-units/janken/match"
	"github.com/tailored-agentic-units/janken/observability"
	"github.com/tailored-agentic-units/janken/server"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to config JSON file (optional)")
		addr       = flag.String("addr", "", "Listen address (overrides config)")
		eventLog   = flag.String("event-log", "", "Also append every event as JSON to this file")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging to stderr")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg := match.DefaultConfig()
	if *configFile != "" {
		loaded, err := match.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = *loaded
	}
	cfg.ApplyEnv()
	cfg.Server.Merge(&match.ServerConfig{Addr: *addr})

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	observability.RegisterObserver("slog", observability.NewSlogObserver(logger))

	observer, closer, err := newObserver(cfg.Observer, *eventLog)
	if err != nil {
		log.Fatalf("Failed to resolve observer: %v", err)
	}
	defer closer.Close()

	svc, err := match.NewService(&cfg, match.WithObserver(observer))
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	if !cfg.LLM.Client.HasCredential() {
		logger.Warn("no OpenAI API key configured; llm players fall back to pattern")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(svc, cfg.Server, server.WithObserver(observer))

	logger.Info("serving", "addr", cfg.Server.Addr, "players", svc.Registry().Kinds())
	if err := srv.Run(ctx); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
