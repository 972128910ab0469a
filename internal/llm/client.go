// Package llm provides the chat-completion client. The provider endpoint is
// OpenAI-compatible (Moonshot in production), so the request cycle goes
// through go-openai with a per-call base URL.
package llm

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// NoResponseText is returned when the provider answers successfully but
// with no completion choices. Callers must treat it as valid content, not
// as a failure.
const NoResponseText = "No response from AI"

// Low, deterministic-leaning sampling for database-grounded answers.
const temperature = 0.3

// ChatMessage is one turn in the outbound message list.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client issues a single non-streaming chat completion.
type Client interface {
	Complete(ctx context.Context, cred Credential, messages []ChatMessage) (string, error)
}

type openAIClient struct {
	model string
}

// NewOpenAIClient builds a client for the given model name. Credentials are
// not held by the client; they are resolved per call and passed in.
func NewOpenAIClient(model string) Client {
	return &openAIClient{model: model}
}

func (c *openAIClient) Complete(ctx context.Context, cred Credential, messages []ChatMessage) (string, error) {
	cfg := openai.DefaultConfig(cred.APIKey)
	if cred.APIBase != "" {
		cfg.BaseURL = cred.APIBase
	}
	client := openai.NewClientWithConfig(cfg)

	outbound := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		outbound[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    outbound,
		Temperature: temperature,
		N:           1,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return NoResponseText, nil
	}
	return resp.Choices[0].Message.Content, nil
}
