package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tailored-agentic-units/janken/observability"
)

// newObserver resolves the named observer and, when eventLog is set, fans
// events out to a JSON lines file as well. The returned closer releases the
// file and is never nil.
func newObserver(name, eventLog string) (observability.Observer, io.Closer, error) {
	primary, err := observability.GetObserver(name)
	if err != nil {
		return nil, nil, err
	}
	if eventLog == "" {
		return primary, io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(eventLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open event log: %w", err)
	}

	events := observability.NewSlogObserver(slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	return observability.NewMultiObserver(primary, events), f, nil
}
