package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// groqBaseURL is Groq's OpenAI-compatible endpoint.
const groqBaseURL = "https://api.groq.com/openai/v1/"

// GroqClient implements Client for Groq's OpenAI-compatible chat API.
type GroqClient struct {
	client *openai.Client
	config *Config
}

// NewGroqClient creates a new Groq client.
func NewGroqClient(config *Config, apiKey string) (*GroqClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client := openai.NewClient(
		option.WithBaseURL(groqBaseURL),
		option.WithAPIKey(apiKey),
	)
	return &GroqClient{
		client: client,
		config: config,
	}, nil
}

// Complete generates a chat completion for the given prompts.
func (c *GroqClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(userPrompt))

	params := openai.ChatCompletionNewParams{
		Messages:    openai.F(messages),
		Model:       openai.F(c.config.Model),
		Temperature: openai.F(float64(completionTemperature)),
		MaxTokens:   openai.F(int64(maxOutputTokens)),
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return resp.Choices[0].Message.Content, nil
}

// Model returns the configured model name.
func (c *GroqClient) Model() string {
	return c.config.Model
}

// Close releases resources held by the client. The underlying HTTP client
// holds no per-call state, so this is a no-op.
func (c *GroqClient) Close() error {
	return nil
}
