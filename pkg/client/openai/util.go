package openai

import (
	"github.com/openai/openai-go/v2/shared"
)

// Model constants
const (
	modelGPT5      = "gpt-5"
	modelGPT5Mini  = "gpt-5-mini"
	modelGPT5Nano  = "gpt-5-nano"
	modelGPT4o     = shared.ChatModelGPT4o
	modelGPT4oMini = shared.ChatModelGPT4oMini
)

// getOpenAIModel maps user-friendly model names to actual OpenAI model identifiers
func getOpenAIModel(model string) string {
	if isValidOpenAIModel(model) {
		return model
	}
	// Default to GPT-5 Mini for unknown models (most versatile option)
	return modelGPT5Mini
}

// isValidOpenAIModel checks if a model name is a valid OpenAI model
func isValidOpenAIModel(model string) bool {
	validModels := map[string]bool{
		modelGPT5:      true,
		modelGPT5Mini:  true,
		modelGPT5Nano:  true,
		modelGPT4o:     true,
		modelGPT4oMini: true,
	}
	return validModels[model]
}

// getModelMaxTokens returns the default max output tokens for a model
func getModelMaxTokens(model string) int {
	switch model {
	case modelGPT5, modelGPT5Mini, modelGPT5Nano:
		return 8192
	default:
		return 4096
	}
}
