package ollama

import (
	"context"
	"strings"

	"github.com/ollama/ollama/api"
	"github.com/pkg/errors"
)

// Low temperature keeps classification answers stable across calls.
const temperature = 0.1

const defaultNumPredict = 2048

// OllamaCore contains shared Ollama client resources
type OllamaCore struct {
	client    *api.Client
	model     string
	maxTokens int
}

// NewOllamaCoreWithTokens creates a new Ollama core with configurable maxTokens.
// The endpoint is taken from OLLAMA_HOST, falling back to the local default.
func NewOllamaCoreWithTokens(model string, maxTokens int) (*OllamaCore, error) {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create ollama client")
	}

	if maxTokens <= 0 {
		maxTokens = defaultNumPredict
	}

	return &OllamaCore{
		client:    client,
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

// Model returns the model name
func (c *OllamaCore) Model() string {
	return c.model
}

// OllamaClient handles communication with a local Ollama server
type OllamaClient struct {
	*OllamaCore
}

// NewOllamaClient creates a new Ollama client with configurable maxTokens
func NewOllamaClient(model string, maxTokens int) (*OllamaClient, error) {
	core, err := NewOllamaCoreWithTokens(model, maxTokens)
	if err != nil {
		return nil, err
	}

	return &OllamaClient{
		OllamaCore: core,
	}, nil
}

// ModelID returns the configured model name
func (c *OllamaClient) ModelID() string { return c.model }

// Invoke sends a single instruction and returns the raw response text
func (c *OllamaClient) Invoke(ctx context.Context, instruction string) (string, error) {
	stream := false
	chatRequest := &api.ChatRequest{
		Model: c.model,
		Messages: []api.Message{
			{Role: "user", Content: instruction},
		},
		Stream: &stream,
		Options: map[string]any{
			"temperature": temperature,
			"num_predict": c.maxTokens, // Max output tokens for Ollama
		},
	}

	var contentBuilder strings.Builder
	err := c.client.Chat(ctx, chatRequest, func(resp api.ChatResponse) error {
		if resp.Message.Content != "" {
			contentBuilder.WriteString(resp.Message.Content)
		}
		return nil
	})
	if err != nil {
		return "", errors.Wrap(err, "ollama chat error")
	}

	if contentBuilder.Len() == 0 {
		return "", errors.New("empty response from ollama")
	}

	return contentBuilder.String(), nil
}
