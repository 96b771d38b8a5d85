package generator

import (
	"context"
	"errors"
	"fmt"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"

	"autotube/config"
)

// CohereProvider drafts video metadata through the Cohere Chat API.
// SDK: github.com/cohere-ai/cohere-go/v2
type CohereProvider struct {
	client *cohereclient.Client
	model  string
}

// NewCohereProvider creates a provider using the default chat model.
func NewCohereProvider(apiKey string) *CohereProvider {
	return &CohereProvider{
		client: cohereclient.NewClient(cohereclient.WithToken(apiKey)),
		model:  config.CohereModel,
	}
}

func (p *CohereProvider) ModelName() string { return p.model }

func (p *CohereProvider) Complete(ctx context.Context, prompt string) (string, error) {
	model := p.model
	maxTokens := config.MaxCompletionTokens

	resp, err := p.client.Chat(ctx, &cohere.ChatRequest{
		Message:   prompt,
		Model:     &model,
		MaxTokens: &maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("cohere chat error: %w", err)
	}
	if resp == nil {
		return "", errors.New("cohere chat returned empty response")
	}
	return resp.Text, nil
}
