package llm

import (
	"os"
	"time"
)

const (
	DefaultModel   = "gpt-4o-mini"
	defaultTimeout = 10 * time.Second
)

// Environment variables read by ApplyEnv.
const (
	EnvAPIKey  = "OPENAI_API_KEY"
	EnvModel   = "OPENAI_MODEL"
	EnvBaseURL = "OPENAI_BASE_URL"
)

// Config holds chat-completion client parameters.
type Config struct {
	APIKey  string        `json:"-"`
	Model   string        `json:"model,omitempty"`
	BaseURL string        `json:"base_url,omitempty"` // empty uses the OpenAI default
	Timeout time.Duration `json:"timeout,omitempty"`
}

// DefaultConfig returns the default client configuration (no credential).
func DefaultConfig() Config {
	return Config{
		Model:   DefaultModel,
		Timeout: defaultTimeout,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.APIKey != "" {
		c.APIKey = source.APIKey
	}
	if source.Model != "" {
		c.Model = source.Model
	}
	if source.BaseURL != "" {
		c.BaseURL = source.BaseURL
	}
	if source.Timeout > 0 {
		c.Timeout = source.Timeout
	}
}

// ApplyEnv overlays the OPENAI_* environment variables onto c.
func (c *Config) ApplyEnv() {
	c.Merge(&Config{
		APIKey:  os.Getenv(EnvAPIKey),
		Model:   os.Getenv(EnvModel),
		BaseURL: os.Getenv(EnvBaseURL),
	})
}

// HasCredential reports whether an API key is configured.
func (c *Config) HasCredential() bool {
	return c.APIKey != ""
}
