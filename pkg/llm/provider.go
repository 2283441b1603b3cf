package llm

import (
	"context"
	"errors"
)

// ErrTransport marks network-level failures (connect, timeout) talking to a
// completion service. Callers may retry; this package never retries itself.
var ErrTransport = errors.New("completion transport failure")

// ErrUpstream marks a non-success response from the completion service,
// wrapping whatever message the upstream returned.
var ErrUpstream = errors.New("completion upstream error")

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(maxTokens int) Option {
	return func(o *Options) {
		o.MaxTokens = maxTokens
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// CompletionProvider defines the contract for any completion backend
type CompletionProvider interface {
	// Chat sends a chat history to the model and returns the raw response text
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Complete sends a single prompt to the model (convenience method)
	Complete(ctx context.Context, prompt string, options ...Option) (string, error)
}
