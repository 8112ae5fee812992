package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fpt/graspify-cli/internal/infra"
)

func TestCreateDefaultSettingsFile(t *testing.T) {
	tempDir := t.TempDir()

	// Test creating settings file at a specific path
	settingsPath := filepath.Join(tempDir, ".graspify", "settings.json")
	settings, err := createSettingsFileAtPath(settingsPath)
	if err != nil {
		t.Fatalf("createSettingsFileAtPath failed: %v", err)
	}

	if settings.LLM.Backend != "ollama" {
		t.Errorf("Expected backend 'ollama', got '%s'", settings.LLM.Backend)
	}

	// Verify file was created
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		t.Fatal("Settings file was not created")
	}

	// Verify file contents can be loaded
	loadedSettings, err := LoadSettings(settingsPath)
	if err != nil {
		t.Fatalf("Failed to load created settings file: %v", err)
	}

	if loadedSettings.LLM.Backend != settings.LLM.Backend {
		t.Errorf("Expected backend '%s', got '%s'", settings.LLM.Backend, loadedSettings.LLM.Backend)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	repo := infra.NewInMemorySettingsRepository()
	if err := repo.Save([]byte(`{"llm": {"backend": "openai"}}`)); err != nil {
		t.Fatalf("Failed to seed repository: %v", err)
	}

	settings := NewSettingsWithRepository(repo)
	if err := settings.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if settings.LLM.Backend != "openai" {
		t.Errorf("Expected backend 'openai', got '%s'", settings.LLM.Backend)
	}
	if settings.LLM.Model == "" {
		t.Error("Expected default model to be applied")
	}
	if settings.Oracle.MaxAttempts != 3 {
		t.Errorf("Expected default max_attempts 3, got %d", settings.Oracle.MaxAttempts)
	}
	if settings.Narrow.MaxSteps == 0 {
		t.Error("Expected default max_steps to be applied")
	}
	if settings.Narrow.LogLevel != "info" {
		t.Errorf("Expected default log level 'info', got '%s'", settings.Narrow.LogLevel)
	}
}

func TestValidateSettings(t *testing.T) {
	settings := GetDefaultSettings()
	if err := ValidateSettings(settings); err != nil {
		t.Errorf("Default settings must validate, got: %v", err)
	}

	settings.LLM.Backend = "watson"
	if err := ValidateSettings(settings); err == nil {
		t.Error("Expected error for unsupported backend")
	}

	settings = GetDefaultSettings()
	settings.Narrow.MaxSteps = 0
	if err := ValidateSettings(settings); err == nil {
		t.Error("Expected error for non-positive max_steps")
	}

	settings = GetDefaultSettings()
	settings.LLM.Backend = "anthropic"
	t.Setenv("ANTHROPIC_API_KEY", "")
	if err := ValidateSettings(settings); err == nil {
		t.Error("Expected error for missing Anthropic API key")
	}
}

func TestOracleSettingsRetryConversion(t *testing.T) {
	retry := GetDefaultSettings().Oracle.RetrySettings()
	if retry.MaxAttempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", retry.MaxAttempts)
	}
	if retry.Timeout.Seconds() != 60 {
		t.Errorf("Expected 60s timeout, got %v", retry.Timeout)
	}
}
