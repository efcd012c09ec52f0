package llm

import (
	"context"
	"fmt"
	"sync"

	"github.com/sashabaranov/go-openai"

	"github.com/tailored-agentic-units/janken/core/protocol"
)

// OpenAIClient talks to an OpenAI-compatible chat completions endpoint. The
// underlying transport handle is created on first use and cached.
type OpenAIClient struct {
	cfg Config

	mu     sync.Mutex
	handle *openai.Client
}

// NewOpenAIClient stores cfg; no network or credential check happens here.
func NewOpenAIClient(cfg Config) *OpenAIClient {
	return &OpenAIClient{cfg: cfg}
}

func (c *OpenAIClient) client() (*openai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.handle != nil {
		return c.handle, nil
	}
	if !c.cfg.HasCredential() {
		return nil, ErrMissingAPIKey
	}

	oc := openai.DefaultConfig(c.cfg.APIKey)
	if c.cfg.BaseURL != "" {
		oc.BaseURL = c.cfg.BaseURL
	}
	c.handle = openai.NewClientWithConfig(oc)
	return c.handle, nil
}

// Complete sends req bounded by the configured timeout and returns the raw
// content of the first choice.
func (c *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	handle, err := c.client()
	if err != nil {
		return "", err
	}

	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	resp, err := handle.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    toOpenAI(req.Messages),
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	return resp.Choices[0].Message.Content, nil
}

func toOpenAI(msgs []protocol.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, len(msgs))
	for i, m := range msgs {
		out[i] = openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		}
	}
	return out
}
