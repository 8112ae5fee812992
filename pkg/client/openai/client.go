package openai

import (
	"context"
	"fmt"
	"os"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/responses"
	"github.com/openai/openai-go/v2/shared"
)

// OpenAICore holds shared resources for OpenAI clients
type OpenAICore struct {
	client    *openai.Client
	model     string
	maxTokens int
}

// OpenAIClient answers one-shot instructions through the Responses API
type OpenAIClient struct {
	*OpenAICore
}

// NewOpenAIClient creates a new OpenAI client with configurable maxTokens
// maxTokens = 0 means default
func NewOpenAIClient(model string, maxTokens int) (*OpenAIClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	// Setup client options
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}

	// Support custom base URL (for Azure OpenAI, etc.)
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(opts...)

	// Validate and map model name
	openaiModel := getOpenAIModel(model)

	// Use default maxTokens if not specified
	if maxTokens <= 0 {
		maxTokens = getModelMaxTokens(openaiModel)
	}

	core := &OpenAICore{
		client:    &client,
		model:     openaiModel,
		maxTokens: maxTokens,
	}

	return &OpenAIClient{
		OpenAICore: core,
	}, nil
}

// ModelID returns the resolved OpenAI model identifier
func (c *OpenAIClient) ModelID() string { return c.model }

// Invoke sends a single instruction and returns the raw response text
func (c *OpenAIClient) Invoke(ctx context.Context, instruction string) (string, error) {
	params := responses.ResponseNewParams{
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(instruction),
		},
		Model: shared.ChatModel(c.model),
	}

	// Add max tokens if specified
	if c.maxTokens > 0 {
		params.MaxOutputTokens = openai.Int(int64(c.maxTokens))
	}

	// Call Responses API
	resp, err := c.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("Responses API call failed: %w", err)
	}

	outputText := resp.OutputText()
	if outputText == "" {
		return "", fmt.Errorf("empty response from Responses API")
	}

	return outputText, nil
}
