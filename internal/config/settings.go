package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fpt/graspify-cli/internal/infra"
	"github.com/fpt/graspify-cli/internal/repository"
	pkgLogger "github.com/fpt/graspify-cli/pkg/logger"
	"github.com/fpt/graspify-cli/pkg/narrow"
)

// Settings represents the main application settings
type Settings struct {
	LLM    LLMSettings    `json:"llm"`
	Oracle OracleSettings `json:"oracle"`
	Narrow NarrowSettings `json:"narrow"`

	// Repository for persistence (nil for in-memory only)
	settingsRepository repository.SettingsRepository `json:"-"`
}

// LLMSettings contains oracle backend configuration
type LLMSettings struct {
	Backend   string `json:"backend"`              // "ollama", "anthropic", "openai", or "gemini"
	Model     string `json:"model"`                // model name
	BaseURL   string `json:"base_url,omitempty"`   // for ollama or openai (Azure)
	MaxTokens int    `json:"max_tokens,omitempty"` // maximum tokens for model responses (0 = use model default)
}

// OracleSettings contains retry policy for oracle calls
type OracleSettings struct {
	MaxAttempts    int `json:"max_attempts"`
	TimeoutSeconds int `json:"timeout_seconds"`
	BackoffSeconds int `json:"backoff_seconds"`
}

// RetrySettings converts the persisted values into the engine's retry policy
func (o OracleSettings) RetrySettings() narrow.RetrySettings {
	return narrow.RetrySettings{
		MaxAttempts: o.MaxAttempts,
		Timeout:     time.Duration(o.TimeoutSeconds) * time.Second,
		Backoff:     time.Duration(o.BackoffSeconds) * time.Second,
	}
}

// NarrowSettings contains narrowing session configuration
type NarrowSettings struct {
	MaxSteps int    `json:"max_steps"`
	Paired   bool   `json:"paired,omitempty"` // explore candidate/other pools instead of one flat set
	LogLevel string `json:"log_level"`
}

// NewSettingsWithRepository creates new settings with injected repository
func NewSettingsWithRepository(settingsRepository repository.SettingsRepository) *Settings {
	settings := GetDefaultSettings()
	settings.settingsRepository = settingsRepository
	return settings
}

// NewSettingsWithPath creates new settings with file-based repository
func NewSettingsWithPath(configPath string) *Settings {
	repo := infra.NewFileSettingsRepository(configPath)
	return NewSettingsWithRepository(repo)
}

// Load loads settings from the repository
func (s *Settings) Load() error {
	if s.settingsRepository == nil {
		return fmt.Errorf("no settings repository configured")
	}

	data, err := s.settingsRepository.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if err := json.Unmarshal(data, s); err != nil {
		return fmt.Errorf("failed to parse settings: %w", err)
	}

	// Apply defaults for missing fields
	applyDefaults(s)
	return nil
}

// Save saves settings to the repository
func (s *Settings) Save() error {
	if s.settingsRepository == nil {
		return fmt.Errorf("no settings repository configured")
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	return s.settingsRepository.Save(data)
}

// LoadSettings loads application settings from a JSON file
func LoadSettings(configPath string) (*Settings, error) {
	// Create settings with file repository
	settings := NewSettingsWithPath(configPath)

	// If config path is empty, search for existing settings file
	if configPath == "" {
		foundPath, _ := settings.settingsRepository.FindSettingsFile()
		if foundPath == "" {
			// No settings file found, create default one and return defaults
			return createDefaultSettingsFile()
		}
	}

	// Try to load settings
	err := settings.Load()
	if err != nil {
		// If file doesn't exist and a specific path was provided, create it
		if configPath != "" {
			createdSettings, _ := createSettingsFileAtPath(configPath)
			return createdSettings, nil
		}
		// Otherwise return defaults
		return GetDefaultSettings(), nil
	}

	return settings, nil
}

// GetDefaultSettings returns default application settings
func GetDefaultSettings() *Settings {
	return &Settings{
		LLM: LLMSettings{
			Backend:   "ollama",
			Model:     "gpt-oss:latest",
			BaseURL:   "http://localhost:11434",
			MaxTokens: 0, // 0 = use model-specific defaults
		},
		Oracle: OracleSettings{
			MaxAttempts:    3,
			TimeoutSeconds: 60,
			BackoffSeconds: 2,
		},
		Narrow: NarrowSettings{
			MaxSteps: narrow.DefaultMaxSteps,
			Paired:   false,
			LogLevel: "info",
		},
	}
}

// GetDefaultLLMSettingsForBackend returns default LLM settings for a specific backend
func GetDefaultLLMSettingsForBackend(backend string) LLMSettings {
	switch backend {
	case "ollama":
		return LLMSettings{
			Backend:   "ollama",
			Model:     "gpt-oss:latest",
			BaseURL:   "http://localhost:11434",
			MaxTokens: 0,
		}
	case "anthropic", "claude":
		return LLMSettings{
			Backend:   "anthropic",
			Model:     "claude-sonnet-4-5-20250929",
			MaxTokens: 0,
		}
	case "openai":
		return LLMSettings{
			Backend:   "openai",
			Model:     "gpt-5-mini",
			MaxTokens: 0,
		}
	case "gemini":
		return LLMSettings{
			Backend:   "gemini",
			Model:     "gemini-2.5-flash-lite",
			MaxTokens: 0,
		}
	default:
		// Default to ollama settings for unknown backends
		return GetDefaultLLMSettingsForBackend("ollama")
	}
}

// applyDefaults fills in missing fields with default values
func applyDefaults(settings *Settings) {
	defaults := GetDefaultSettings()

	// Apply LLM defaults
	if settings.LLM.Backend == "" {
		settings.LLM.Backend = defaults.LLM.Backend
	}
	if settings.LLM.Model == "" {
		settings.LLM.Model = defaults.LLM.Model
	}
	if settings.LLM.BaseURL == "" && settings.LLM.Backend == "ollama" {
		settings.LLM.BaseURL = defaults.LLM.BaseURL
	}

	// Apply oracle retry defaults
	if settings.Oracle.MaxAttempts == 0 {
		settings.Oracle.MaxAttempts = defaults.Oracle.MaxAttempts
	}
	if settings.Oracle.TimeoutSeconds == 0 {
		settings.Oracle.TimeoutSeconds = defaults.Oracle.TimeoutSeconds
	}
	if settings.Oracle.BackoffSeconds == 0 {
		settings.Oracle.BackoffSeconds = defaults.Oracle.BackoffSeconds
	}

	// Apply narrowing defaults
	if settings.Narrow.MaxSteps == 0 {
		settings.Narrow.MaxSteps = defaults.Narrow.MaxSteps
	}
	if settings.Narrow.LogLevel == "" {
		settings.Narrow.LogLevel = defaults.Narrow.LogLevel
	}
}

// ValidateSettings validates the settings configuration
func ValidateSettings(settings *Settings) error {
	// Validate LLM settings
	if settings.LLM.Backend != "ollama" && settings.LLM.Backend != "anthropic" && settings.LLM.Backend != "openai" && settings.LLM.Backend != "gemini" {
		return fmt.Errorf("unsupported LLM backend: %s (must be 'ollama', 'anthropic', 'openai', or 'gemini')", settings.LLM.Backend)
	}

	if settings.LLM.Model == "" {
		return fmt.Errorf("LLM model is required")
	}

	if settings.LLM.Backend == "anthropic" {
		// Check environment variable for API key
		if os.Getenv("ANTHROPIC_API_KEY") == "" {
			return fmt.Errorf("Anthropic API key is required (set ANTHROPIC_API_KEY environment variable)")
		}
	}

	if settings.LLM.Backend == "openai" {
		// Check environment variable for API key
		if os.Getenv("OPENAI_API_KEY") == "" {
			return fmt.Errorf("OpenAI API key is required (set OPENAI_API_KEY environment variable)")
		}
	}

	if settings.LLM.Backend == "gemini" {
		// Check environment variable for API key
		if os.Getenv("GEMINI_API_KEY") == "" {
			return fmt.Errorf("Gemini API key is required (set GEMINI_API_KEY environment variable)")
		}
	}

	// Validate narrowing settings
	if settings.Narrow.MaxSteps <= 0 {
		return fmt.Errorf("max_steps must be positive")
	}

	if settings.Oracle.MaxAttempts <= 0 {
		return fmt.Errorf("max_attempts must be positive")
	}

	return nil
}

// createDefaultSettingsFile creates a default settings.json file in ~/.graspify/
func createDefaultSettingsFile() (*Settings, error) {
	// Determine where to create the file (prefer home directory)
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return GetDefaultSettings(), nil // Fall back to defaults without file creation
	}

	settingsPath := filepath.Join(homeDir, ".graspify", "settings.json")
	return createSettingsFileAtPath(settingsPath)
}

// createSettingsFileAtPath creates a default settings file at the specified path
func createSettingsFileAtPath(settingsPath string) (*Settings, error) {
	// Create settings with file repository
	settings := NewSettingsWithPath(settingsPath)

	// Save default settings to file
	if err := settings.Save(); err != nil {
		// Return defaults without repository if saving fails
		return GetDefaultSettings(), nil
	}

	pkgLogger.NewComponentLogger("settings").InfoWithIntention(pkgLogger.IntentionConfig, "Created default settings file", "path", settingsPath)

	return settings, nil
}
