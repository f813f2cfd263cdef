package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/eme-collab/consultor-inteligente-api/internal/model"
	"github.com/eme-collab/consultor-inteligente-api/pkg/search"
)

type AnthropicClient struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
}

func NewAnthropicClient(apiKey string) *AnthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicClient{
		client:    &client,
		model:     anthropic.ModelClaudeHaiku4_5,
		modelName: "claude-4.5-haiku",
	}
}

// ModelName reports the configured model for startup logging.
func (c *AnthropicClient) ModelName() string {
	return c.modelName
}

func (c *AnthropicClient) ExtractIntent(ctx context.Context, query string) (model.Intent, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: intentSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(query)),
		},
	})

	if err != nil {
		return model.Intent{}, fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return model.Intent{}, fmt.Errorf("no response from anthropic")
	}

	return parseIntent(resp.Content[0].Text), nil
}

func (c *AnthropicClient) Recommend(ctx context.Context, shortlist []model.Phone, intent model.Intent, webContext []search.Snippet) ([]model.Recommendation, error) {
	if len(shortlist) == 0 {
		return nil, nil
	}

	userPrompt, err := buildRecommendPrompt(shortlist, intent, webContext)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 2048,
		System: []anthropic.TextBlockParam{
			{Text: recommendSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("anthropic API error: %w", err)
	}

	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("no response from anthropic")
	}

	return parseRecommendations(resp.Content[0].Text, shortlist), nil
}
