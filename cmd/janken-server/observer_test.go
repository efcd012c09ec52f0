package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tailored-agentic-units/janken/observability"
)

func TestNewObserver_NoEventLog(t *testing.T) {
	obs, closer, err := newObserver("noop", "")
	if err != nil {
		t.Fatalf("newObserver failed: %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if _, ok := obs.(observability.NoOpObserver); !ok {
		t.Errorf("got %T, want the registered observer unchanged", obs)
	}
}

func TestNewObserver_FansOutToEventLog(t *testing.T) {
	rec := &observability.Recorder{}
	observability.RegisterObserver("test-recorder", rec)

	path := filepath.Join(t.TempDir(), "events.jsonl")
	obs, closer, err := newObserver("test-recorder", path)
	if err != nil {
		t.Fatalf("newObserver failed: %v", err)
	}

	observability.Emit(context.Background(), obs, "match.round.complete", observability.LevelInfo, "test",
		map[string]any{"result": "win"},
	)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if rec.Count("match.round.complete") != 1 {
		t.Errorf("primary observer got %d events, want 1", rec.Count("match.round.complete"))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1", len(lines))
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("event log line is not JSON: %v", err)
	}
	if entry["msg"] != "match.round.complete" || entry["result"] != "win" {
		t.Errorf("got %v", entry)
	}
}

func TestNewObserver_UnknownName(t *testing.T) {
	_, _, err := newObserver("missing", "")
	if !errors.Is(err, observability.ErrUnknownObserver) {
		t.Errorf("got %v, want ErrUnknownObserver", err)
	}
}
