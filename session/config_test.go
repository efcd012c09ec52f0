package session_test

import (
	"context"
	"testing"

	"github.com/tailored-agentic-units/janken/session"
)

func TestNewFromConfig(t *testing.T) {
	cfg := session.DefaultConfig()
	cfg.Merge(&session.Config{})

	store, err := session.New(&cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	s, err := store.Create(context.Background())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if s.ID() == "" {
		t.Error("created session should have an ID")
	}
}
