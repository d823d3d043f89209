package configs

import (
	"os"
	"testing"
)

// setupTestEnv sets up required environment variables for config unmarshaling
func setupTestEnv() {
	os.Setenv("APP_DEBUG", "false")
	os.Setenv("APP_ENV", "test")
	os.Setenv("APP_PORT", "9089")
	os.Setenv("POSTGRES_HOST", "localhost")
	os.Setenv("POSTGRES_PORT", "5432")
	os.Setenv("POSTGRES_USERNAME", "test")
	os.Setenv("POSTGRES_PASSWORD", "test")
	os.Setenv("POSTGRES_DATABASE", "test")
	os.Setenv("POSTGRES_SSLMODE", "false")
	os.Setenv("LLM_BASE_URL", "http://localhost:1234")
	os.Setenv("LLM_MODEL", "test-model")
	os.Setenv("LLM_TIMEOUT", "30")
	os.Setenv("SESSION_TIMEOUT", "30")
	os.Setenv("SESSION_HISTORY_CAPACITY", "6")
	os.Setenv("ASSISTANT_BUSINESS_NAME", "The Velvet Tap Brewpub")
	os.Setenv("ASSISTANT_CONTACT_PHONE", "555-987-6543")
	os.Setenv("ASSISTANT_SUMMARY_WORDS", "150")
}

// cleanupTestEnv cleans up environment variables after tests
func cleanupTestEnv() {
	os.Unsetenv("APP_DEBUG")
	os.Unsetenv("APP_ENV")
	os.Unsetenv("APP_PORT")
	os.Unsetenv("POSTGRES_HOST")
	os.Unsetenv("POSTGRES_PORT")
	os.Unsetenv("POSTGRES_USERNAME")
	os.Unsetenv("POSTGRES_PASSWORD")
	os.Unsetenv("POSTGRES_DATABASE")
	os.Unsetenv("POSTGRES_SSLMODE")
	os.Unsetenv("LLM_BASE_URL")
	os.Unsetenv("LLM_MODEL")
	os.Unsetenv("LLM_TIMEOUT")
	os.Unsetenv("SESSION_TIMEOUT")
	os.Unsetenv("SESSION_HISTORY_CAPACITY")
	os.Unsetenv("ASSISTANT_BUSINESS_NAME")
	os.Unsetenv("ASSISTANT_CONTACT_PHONE")
	os.Unsetenv("ASSISTANT_SUMMARY_WORDS")
}

// TestSessionStructFieldsUnmarshal tests that Session struct fields are properly unmarshaled from config
func TestSessionStructFieldsUnmarshal(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("SESSION_TIMEOUT", "45")
	os.Setenv("SESSION_HISTORY_CAPACITY", "12")

	// Initialize config - using relative path from configs directory
	InitViper(".", "test")

	cfg := GetViper()

	if cfg.Session.Timeout != 45 {
		t.Errorf("Expected Session.Timeout to be 45, got %d", cfg.Session.Timeout)
	}
	if cfg.Session.HistoryCapacity != 12 {
		t.Errorf("Expected Session.HistoryCapacity to be 12, got %d", cfg.Session.HistoryCapacity)
	}
}

// TestLLMStructFieldsUnmarshal tests that LLM struct fields are properly unmarshaled from config
func TestLLMStructFieldsUnmarshal(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("LLM_BASE_URL", "http://localhost:5678")
	os.Setenv("LLM_MODEL", "other-model")
	os.Setenv("LLM_TIMEOUT", "90")

	InitViper(".", "test")

	cfg := GetViper()

	if cfg.LLM.BaseURL != "http://localhost:5678" {
		t.Errorf("Expected LLM.BaseURL to be http://localhost:5678, got %s", cfg.LLM.BaseURL)
	}
	if cfg.LLM.Model != "other-model" {
		t.Errorf("Expected LLM.Model to be other-model, got %s", cfg.LLM.Model)
	}
	if cfg.LLM.Timeout != 90 {
		t.Errorf("Expected LLM.Timeout to be 90, got %d", cfg.LLM.Timeout)
	}
}

// TestAssistantStructFieldsUnmarshal tests that Assistant struct fields are properly unmarshaled from config
func TestAssistantStructFieldsUnmarshal(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("ASSISTANT_CONTACT_PHONE", "555-000-1111")
	os.Setenv("ASSISTANT_SUMMARY_WORDS", "80")

	InitViper(".", "test")

	cfg := GetViper()

	if cfg.Assistant.ContactPhone != "555-000-1111" {
		t.Errorf("Expected Assistant.ContactPhone to be 555-000-1111, got %s", cfg.Assistant.ContactPhone)
	}
	if cfg.Assistant.SummaryWords != 80 {
		t.Errorf("Expected Assistant.SummaryWords to be 80, got %d", cfg.Assistant.SummaryWords)
	}
}

// TestZeroValuesRequireApplicationDefaults tests that zero values signal the application layer to apply defaults
func TestZeroValuesRequireApplicationDefaults(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("SESSION_TIMEOUT", "0")
	os.Setenv("SESSION_HISTORY_CAPACITY", "0")

	InitViper(".", "test")

	cfg := GetViper()

	// The config layer passes through zero values - application layer applies defaults
	if cfg.Session.Timeout != 0 {
		t.Errorf("Expected Session.Timeout to be 0, got %d", cfg.Session.Timeout)
	}
	if cfg.Session.HistoryCapacity != 0 {
		t.Errorf("Expected Session.HistoryCapacity to be 0, got %d", cfg.Session.HistoryCapacity)
	}
}
