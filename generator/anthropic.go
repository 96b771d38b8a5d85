package generator

import (
	"context"
	"fmt"

	"github.com/aktagon/llmkit/anthropic"
	llmtypes "github.com/aktagon/llmkit/anthropic/types"

	"autotube/config"
)

// AnthropicProvider drafts video metadata through the Anthropic Messages API.
type AnthropicProvider struct {
	apiKey string
	model  string
}

// NewAnthropicProvider creates a provider using the default model.
func NewAnthropicProvider(apiKey string) *AnthropicProvider {
	return &AnthropicProvider{apiKey: apiKey, model: config.AnthropicModel}
}

func (p *AnthropicProvider) ModelName() string { return p.model }

func (p *AnthropicProvider) Complete(ctx context.Context, prompt string) (string, error) {
	settings := llmtypes.RequestSettings{
		Model:     p.model,
		MaxTokens: config.MaxCompletionTokens,
	}

	response, err := anthropic.PromptWithSettings("", prompt, "", p.apiKey, settings)
	if err != nil {
		return "", fmt.Errorf("anthropic completion failed: %w", err)
	}
	if len(response.Content) == 0 {
		return "", fmt.Errorf("no content in anthropic response")
	}
	return response.Content[0].Text, nil
}
