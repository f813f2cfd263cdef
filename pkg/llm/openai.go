package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/eme-collab/consultor-inteligente-api/internal/model"
	"github.com/eme-collab/consultor-inteligente-api/pkg/search"
)

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client:    &client,
		model:     openai.ChatModelGPT4oMini,
		modelName: "gpt-4o-mini",
	}
}

// ModelName reports the configured model for startup logging.
func (c *OpenAIClient) ModelName() string {
	return c.modelName
}

func (c *OpenAIClient) ExtractIntent(ctx context.Context, query string) (model.Intent, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(intentSystemPrompt),
			openai.UserMessage(query),
		},
	})

	if err != nil {
		return model.Intent{}, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return model.Intent{}, fmt.Errorf("no response from openai")
	}

	return parseIntent(resp.Choices[0].Message.Content), nil
}

func (c *OpenAIClient) Recommend(ctx context.Context, shortlist []model.Phone, intent model.Intent, webContext []search.Snippet) ([]model.Recommendation, error) {
	if len(shortlist) == 0 {
		return nil, nil
	}

	userPrompt, err := buildRecommendPrompt(shortlist, intent, webContext)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(recommendSystemPrompt),
			openai.UserMessage(userPrompt),
		},
	})

	if err != nil {
		return nil, fmt.Errorf("openai API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from openai")
	}

	return parseRecommendations(resp.Choices[0].Message.Content, shortlist), nil
}
