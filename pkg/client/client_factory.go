package client

import (
	"github.com/fpt/graspify-cli/internal/config"
	"github.com/fpt/graspify-cli/pkg/client/anthropic"
	"github.com/fpt/graspify-cli/pkg/client/gemini"
	"github.com/fpt/graspify-cli/pkg/client/ollama"
	"github.com/fpt/graspify-cli/pkg/client/openai"
	"github.com/fpt/graspify-cli/pkg/narrow"
)

// NewOracle creates an oracle client based on settings.
func NewOracle(settings config.LLMSettings) (narrow.Oracle, error) {
	switch settings.Backend {
	case "anthropic", "claude":
		return anthropic.NewAnthropicClientWithTokens(settings.Model, settings.MaxTokens)
	case "openai":
		return openai.NewOpenAIClient(settings.Model, settings.MaxTokens)
	case "gemini":
		return gemini.NewGeminiClientWithTokens(settings.Model, settings.MaxTokens)
	default:
		return ollama.NewOllamaClient(settings.Model, settings.MaxTokens)
	}
}
