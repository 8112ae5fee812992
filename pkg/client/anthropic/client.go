package anthropic

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	defaultMaxTokens = 8192
)

// AnthropicCore contains shared Anthropic client resources
// This allows efficient resource sharing between client instances
type AnthropicCore struct {
	client    *anthropic.Client
	model     string
	maxTokens int
}

// NewAnthropicCoreWithTokens creates a new Anthropic core with configurable maxTokens
func NewAnthropicCoreWithTokens(model string, maxTokens int) (*AnthropicCore, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
	}

	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)

	// Use default if maxTokens is 0 or negative
	// NOTE: Anthropic requires minimum tokens.
	if maxTokens <= 0 || maxTokens < defaultMaxTokens {
		maxTokens = defaultMaxTokens
	}

	return &AnthropicCore{
		client:    &client,
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

// AnthropicClient handles communication with Claude models
type AnthropicClient struct {
	*AnthropicCore
}

// NewAnthropicClientWithTokens creates a new Anthropic client with configurable maxTokens
func NewAnthropicClientWithTokens(model string, maxTokens int) (*AnthropicClient, error) {
	core, err := NewAnthropicCoreWithTokens(model, maxTokens)
	if err != nil {
		return nil, err
	}

	return &AnthropicClient{
		AnthropicCore: core,
	}, nil
}

// ModelID returns the configured model name
func (c *AnthropicClient) ModelID() string { return c.model }

// Invoke sends a single instruction and returns the raw response text
func (c *AnthropicClient) Invoke(ctx context.Context, instruction string) (string, error) {
	messageParams := anthropic.MessageNewParams{
		MaxTokens: int64(c.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(instruction)),
		},
		Model: getAnthropicModel(c.model),
	}

	resp, err := c.client.Messages.New(ctx, messageParams)
	if err != nil {
		return "", fmt.Errorf("Anthropic API call failed: %w", err)
	}

	var content strings.Builder
	for _, contentBlock := range resp.Content {
		if variant, ok := contentBlock.AsAny().(anthropic.TextBlock); ok {
			content.WriteString(variant.Text)
		}
	}

	if content.Len() == 0 {
		return "", fmt.Errorf("no text content in Anthropic response")
	}

	return content.String(), nil
}
