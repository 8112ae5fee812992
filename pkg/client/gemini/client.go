package gemini

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

// GeminiCore holds shared resources for Gemini clients
type GeminiCore struct {
	client    *genai.Client
	model     string
	maxTokens int
}

// GeminiClient answers one-shot instructions through the Gemini API
type GeminiClient struct {
	*GeminiCore
}

// NewGeminiClientWithTokens creates a new Gemini client with configurable maxTokens
func NewGeminiClientWithTokens(model string, maxTokens int) (*GeminiClient, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Validate and map model name
	geminiModel := getGeminiModel(model)

	// Use default maxTokens if not specified
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	core := &GeminiCore{
		client:    client,
		model:     geminiModel,
		maxTokens: maxTokens,
	}

	return &GeminiClient{
		GeminiCore: core,
	}, nil
}

// ModelID returns the resolved Gemini model identifier
func (c *GeminiClient) ModelID() string { return c.model }

// Invoke sends a single instruction and returns the raw response text
func (c *GeminiClient) Invoke(ctx context.Context, instruction string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(instruction, genai.RoleUser),
	}
	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(c.maxTokens),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("Gemini API call failed: %w", err)
	}

	responseText := resp.Text()
	if responseText == "" {
		return "", fmt.Errorf("empty response from Gemini API")
	}

	return responseText, nil
}
