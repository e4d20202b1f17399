package interview

import "context"

// ChatClient sends a single prompt to a language model and returns its free-text reply.
type ChatClient interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

// PlaceholderClient is used when no model is configured. Every call fails with ErrChatNotConfigured.
type PlaceholderClient struct{}

// Chat always returns ErrChatNotConfigured.
func (PlaceholderClient) Chat(context.Context, string) (string, error) {
	return "", ErrChatNotConfigured
}
