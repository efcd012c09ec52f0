package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/tailored-agentic-units/janken/cli"
	"github.com/tailored-agentic-units/janken/game"
	"github.com/tailored-agentic-units/janken/match"
	"github.com/tailored-agentic-units/janken/observability"
)

func main() {
	var (
		configFile  = flag.String("config", "", "Path to config JSON file (optional)")
		language    = flag.String("lang", "", "Display language: ja or en (overrides config)")
		kind        = flag.String("player", "", "AI player: random, pattern, or llm (overrides config)")
		personality = flag.String("personality", "", "LLM personality (overrides config)")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging to stderr")
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
	cfg.Merge(&match.Config{
		Player:   *kind,
		Language: game.Locale(*language),
	})
	if *personality != "" {
		cfg.LLM.Personality = *personality
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	observability.RegisterObserver("slog", observability.NewSlogObserver(logger))

	svc, err := match.NewService(&cfg)
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, ai, err := svc.NewPlayer(ctx, cfg.Player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Available players: %v\n", svc.Registry().Kinds())
		log.Fatalf("Failed to create AI player: %v", err)
	}

	ui := cli.New(os.Stdin, os.Stdout, svc.Locale())
	if _, _, err := ui.PlayRound(ctx, ai); err != nil {
		log.Fatalf("Game failed: %v", err)
	}
}
