package llm_test

import (
	"testing"
	"time"

	"github.com/tailored-agentic-units/janken/llm"
)

func TestDefaultConfig(t *testing.T) {
	cfg := llm.DefaultConfig()

	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("got Model %q, want gpt-4o-mini", cfg.Model)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("got Timeout %v, want 10s", cfg.Timeout)
	}
	if cfg.HasCredential() {
		t.Error("default config should carry no credential")
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := llm.DefaultConfig()
	cfg.Merge(&llm.Config{Model: "gpt-3.5-turbo", Timeout: time.Second})

	if cfg.Model != "gpt-3.5-turbo" {
		t.Errorf("got Model %q", cfg.Model)
	}
	if cfg.Timeout != time.Second {
		t.Errorf("got Timeout %v", cfg.Timeout)
	}

	cfg.Merge(&llm.Config{})
	if cfg.Model != "gpt-3.5-turbo" {
		t.Errorf("zero merge overwrote Model: %q", cfg.Model)
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv(llm.EnvAPIKey, "env-key")
	t.Setenv(llm.EnvModel, "gpt-3.5-turbo")
	t.Setenv(llm.EnvBaseURL, "")

	cfg := llm.DefaultConfig()
	cfg.ApplyEnv()

	if cfg.APIKey != "env-key" {
		t.Errorf("got APIKey %q", cfg.APIKey)
	}
	if cfg.Model != "gpt-3.5-turbo" {
		t.Errorf("got Model %q", cfg.Model)
	}
	if cfg.BaseURL != "" {
		t.Errorf("got BaseURL %q, want empty", cfg.BaseURL)
	}
}

func TestConfig_ApplyEnv_ModelDefault(t *testing.T) {
	t.Setenv(llm.EnvModel, "")

	cfg := llm.DefaultConfig()
	cfg.ApplyEnv()

	if cfg.Model != llm.DefaultModel {
		t.Errorf("got Model %q, want %q", cfg.Model, llm.DefaultModel)
	}
}
