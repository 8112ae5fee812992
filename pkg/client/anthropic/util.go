package anthropic

import (
	"github.com/anthropics/anthropic-sdk-go"
)

// Anthropic models
// https://docs.anthropic.com/en/docs/about-claude/models/overview

// getAnthropicModel maps common model names to Anthropic model constants
func getAnthropicModel(model string) anthropic.Model {
	switch model {
	case "claude-opus-4-20250514":
		return anthropic.ModelClaudeOpus4_20250514
	case "claude-sonnet-4-20250514":
		return anthropic.ModelClaudeSonnet4_5
	case "claude-3-7-sonnet-latest":
		return anthropic.ModelClaudeSonnet4_5
	case "claude-3-5-haiku-latest":
		return anthropic.ModelClaudeHaiku4_5
	}

	// Default to Claude Sonnet
	return anthropic.ModelClaudeSonnet4_5
}
