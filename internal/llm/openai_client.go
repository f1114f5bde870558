// ABOUTME: OpenAI-backed text generator for narrative meal and plan summaries
// ABOUTME: Uses gpt-4o-mini by default with retry and timeout handling
package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/harper/nutritrack/internal/util"
)

// DefaultChatModel is the default model for chat completions
const DefaultChatModel = "gpt-4o-mini"

const requestTimeout = 30 * time.Second

const systemPrompt = `You are a friendly nutrition assistant. You are given already-computed
nutrition facts and asked to write a short, encouraging narrative around
them. Never invent or alter any numbers; repeat them exactly as given.`

// ClientConfig holds configuration for the OpenAI client
type ClientConfig struct {
	APIKey     string
	ChatModel  string
	MaxRetries int
	RetryDelay time.Duration
}

// DefaultConfig returns the default client configuration
func DefaultConfig(apiKey string) *ClientConfig {
	chatModel := os.Getenv("NUTRITRACK_OPENAI_MODEL")
	if chatModel == "" {
		chatModel = DefaultChatModel
	}

	return &ClientConfig{
		APIKey:     apiKey,
		ChatModel:  chatModel,
		MaxRetries: 3,
		RetryDelay: time.Second * 2,
	}
}

// OpenAIClient wraps the OpenAI API client with retry logic. It
// implements Generator.
type OpenAIClient struct {
	client     *openai.Client
	chatModel  string
	maxRetries int
	retryDelay time.Duration
}

// NewOpenAIClient creates a new OpenAI client with the given API key using default configuration
func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	return NewOpenAIClientWithConfig(DefaultConfig(apiKey))
}

// NewOpenAIClientWithConfig creates a new OpenAI client with custom configuration
func NewOpenAIClientWithConfig(config *ClientConfig) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	return &OpenAIClient{
		client:     openai.NewClient(config.APIKey),
		chatModel:  config.ChatModel,
		maxRetries: config.MaxRetries,
		retryDelay: config.RetryDelay,
	}, nil
}

// Available reports true; construction already validated the API key
func (c *OpenAIClient) Available() bool {
	return c.client != nil
}

// GenerateText requests a chat completion for the prompt, retrying with
// exponential backoff on transient failures.
func (c *OpenAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(util.CalculateBackoff(c.retryDelay, attempt)):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)

		resp, err := c.client.CreateChatCompletion(reqCtx, openai.ChatCompletionRequest{
			Model: c.chatModel,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.7,
		})

		if err != nil {
			cancel()
			lastErr = fmt.Errorf("attempt %d: %w", attempt+1, err)
			continue
		}

		if len(resp.Choices) == 0 {
			cancel()
			lastErr = fmt.Errorf("attempt %d: no completion choices returned", attempt+1)
			continue
		}

		cancel()
		return resp.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("failed to generate text after %d attempts: %w", c.maxRetries+1, lastErr)
}

// FromEnv builds a Generator from the OPENAI_API_KEY environment
// variable, falling back to the offline stub when no key is set.
func FromEnv() Generator {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return NewStub()
	}
	client, err := NewOpenAIClient(apiKey)
	if err != nil {
		return NewStub()
	}
	return client
}
