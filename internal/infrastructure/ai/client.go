// Package ai provides abstractions for AI provider integrations.
package ai

import "context"

// Completion is the provider response, decoded once at this boundary so the
// rest of the system never inspects provider-specific shapes.
type Completion struct {
	Text        string
	StopReason  string
	HadToolCall bool
}

// Client is an abstraction over concrete chat-completion providers.
type Client interface {
	Complete(ctx context.Context, system, user string) (Completion, error)
}
