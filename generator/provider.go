package generator

import (
	"context"
	"os"
)

// Provider abstracts a text completion backend.
// Implementations return the raw model text for a single prompt.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
	ModelName() string
}

// NewDefaultProvider returns a completion provider if configured via env.
// Anthropic is preferred when ANTHROPIC_API_KEY is set; Cohere is used
// when only COHERE_API_KEY is available. Returns nil when neither is set.
func NewDefaultProvider() Provider {
	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		return NewAnthropicProvider(apiKey)
	}
	if apiKey := os.Getenv("COHERE_API_KEY"); apiKey != "" {
		return NewCohereProvider(apiKey)
	}
	return nil
}
