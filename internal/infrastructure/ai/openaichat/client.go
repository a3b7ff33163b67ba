// Package openaichat implements ai.Client over the OpenAI chat-completions API.
package openaichat

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/tesso57/writepilot/internal/infrastructure/ai"
)

const samplingTemperature = 0.7

// Config controls the provider connection.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // optional, for OpenAI-compatible endpoints
}

// Client implements ai.Client using the official openai-go SDK.
type Client struct {
	model  string
	client openai.Client
}

// NewClient creates an OpenAI chat-completion client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key missing; set OPENAI_API_KEY or llm.api_key")
	}
	if cfg.Model == "" {
		return nil, errors.New("openai model is required")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &Client{model: cfg.Model, client: openai.NewClient(opts...)}, nil
}

// Complete sends one system+user exchange and decodes the first choice.
func (c *Client) Complete(ctx context.Context, system, user string) (ai.Completion, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(samplingTemperature),
	})
	if err != nil {
		return ai.Completion{}, err
	}
	if len(resp.Choices) == 0 {
		return ai.Completion{}, errors.New("openai: empty choices")
	}
	choice := resp.Choices[0]
	return ai.Completion{
		Text:        choice.Message.Content,
		StopReason:  string(choice.FinishReason),
		HadToolCall: len(choice.Message.ToolCalls) > 0,
	}, nil
}
