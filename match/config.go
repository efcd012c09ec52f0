package match

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tailored-agentic-units/janken/game"
	"github.com/tailored-agentic-units/janken/player"
	"github.com/tailored-agentic-units/janken/session"
)

const (
	defaultObserver        = "slog"
	defaultAddr            = ":8000"
	defaultShutdownTimeout = 10 * time.Second
)

// Environment variables read by ApplyEnv, in addition to the llm client's.
const (
	EnvLanguage = "JANKEN_LANGUAGE"
	EnvPlayer   = "JANKEN_PLAYER"
)

// ServerConfig holds the network surface settings used by cmd/janken-server.
type ServerConfig struct {
	Addr            string        `json:"addr,omitempty"`
	AllowOrigins    []string      `json:"allow_origins,omitempty"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout,omitempty"`
}

// Merge applies non-zero values from source into c.
func (c *ServerConfig) Merge(source *ServerConfig) {
	if source.Addr != "" {
		c.Addr = source.Addr
	}
	if len(source.AllowOrigins) > 0 {
		c.AllowOrigins = source.AllowOrigins
	}
	if source.ShutdownTimeout > 0 {
		c.ShutdownTimeout = source.ShutdownTimeout
	}
}

// Config holds initialization parameters for the game service and the
// binaries built on it.
type Config struct {
	LLM      player.LLMConfig `json:"llm"`
	Session  session.Config   `json:"session"`
	Server   ServerConfig     `json:"server"`
	Player   string           `json:"player,omitempty"`   // kind used when a request names none
	Language game.Locale      `json:"language,omitempty"` // locale used when a request names none
	Observer string           `json:"observer,omitempty"`
}

// DefaultConfig returns a Config with defaults for all subsystems.
func DefaultConfig() Config {
	return Config{
		LLM:     player.DefaultLLMConfig(),
		Session: session.DefaultConfig(),
		Server: ServerConfig{
			Addr:            defaultAddr,
			AllowOrigins:    []string{"*"},
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Player:   player.KindLLM,
		Language: game.DefaultLocale,
		Observer: defaultObserver,
	}
}

// Merge applies non-zero values from source into c, delegating to each
// subsystem's Merge method.
func (c *Config) Merge(source *Config) {
	c.LLM.Merge(&source.LLM)
	c.Session.Merge(&source.Session)
	c.Server.Merge(&source.Server)

	if source.Player != "" {
		c.Player = source.Player
	}
	if source.Language != "" {
		c.Language = game.ParseLocale(string(source.Language))
	}
	if source.Observer != "" {
		c.Observer = source.Observer
	}
}

// ApplyEnv overlays environment variables onto c.
func (c *Config) ApplyEnv() {
	c.LLM.Client.ApplyEnv()
	c.Merge(&Config{
		Player:   os.Getenv(EnvPlayer),
		Language: game.Locale(os.Getenv(EnvLanguage)),
	})
}

// LoadConfig reads a JSON config file, merges it with defaults, and returns
// the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
