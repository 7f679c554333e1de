// Package llm wraps the OpenAI API behind the two narrow capabilities the
// rest of the system needs: text completion and sentence embedding. Both
// clients are process-wide singletons constructed once at startup and
// passed by handle; they are never re-instantiated per request.
package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_llm.go -package=mocks drivemind/internal/llm CompletionService,EmbeddingService

// DefaultChatModel is the completion model used unless configured otherwise.
const DefaultChatModel = "gpt-4o-mini"

// completionTemperature keeps extraction and generation output stable.
const completionTemperature = 0.2

// CompletionService produces a text completion for a prompt. There is no
// structured-output guarantee; callers must parse responses defensively.
type CompletionService interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Client is a CompletionService backed by the OpenAI chat completions API.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient creates a completion client. An empty model selects
// DefaultChatModel.
func NewClient(api *openai.Client, model string) *Client {
	if model == "" {
		model = DefaultChatModel
	}
	return &Client{api: api, model: model}
}

// Complete sends a single-turn completion request and returns the trimmed
// response text. Blocking network I/O with no internal retry; transport
// timeouts are the only cancellation.
func (c *Client) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: completionTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("llm: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llm: no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
