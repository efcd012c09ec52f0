// Package llm issues single-shot chat-completion requests. One Request
// produces one HTTP exchange; there is no streaming and no retry.
package llm

import (
	"context"

	"github.com/tailored-agentic-units/janken/core/protocol"
)

// Request is one chat-completion call.
type Request struct {
	Messages    []protocol.Message
	MaxTokens   int
	Temperature float32
}

// Client performs chat completions and returns the first choice's text.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ClientFunc adapts a function to Client.
type ClientFunc func(ctx context.Context, req Request) (string, error)

func (f ClientFunc) Complete(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
