package gemini

// Google Gemini 2.5 Models
// https://ai.google.dev/gemini-api/docs/models

const (
	modelGemini25Pro       = "gemini-2.5-pro"
	modelGemini25Flash     = "gemini-2.5-flash"
	modelGemini25FlashLite = "gemini-2.5-flash-lite"
)

const defaultMaxTokens = 8192

// getGeminiModel maps user-friendly model names to actual Gemini 2.5 model identifiers
func getGeminiModel(model string) string {
	// Normalize the model name to 2.5 series only
	switch model {
	case "gemini-2.5-pro", "gemini-pro", "pro":
		return modelGemini25Pro
	case "gemini-2.5-flash", "gemini-flash", "flash":
		return modelGemini25Flash
	case "gemini-2.5-flash-lite", "gemini-2.5-lite", "gemini-lite", "lite":
		return modelGemini25FlashLite
	default:
		// If it's already a valid Gemini 2.5 model name, return as-is
		if isValidGeminiModel(model) {
			return model
		}
		// Default to Gemini 2.5 Flash for unknown models (most balanced)
		return modelGemini25Flash
	}
}

// isValidGeminiModel checks if a model name is a valid Gemini 2.5 model
func isValidGeminiModel(model string) bool {
	validModels := map[string]bool{
		modelGemini25Pro:       true,
		modelGemini25Flash:     true,
		modelGemini25FlashLite: true,
	}
	return validModels[model]
}
