package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"adhibot/internal/llm"
)

var configEnv = []string{
	"LOG_LEVEL", "DEBUG", "GEMINI_API_KEY", "GATSBY_GEMINI_API_KEY", "GEMINI_MODEL",
	"GATSBY_GEMINI_MODEL", "GEMINI_BASE_URL", "PORTFOLIO_FILE", "ADHIBOT_ADDR", "REVEAL_INTERVAL",
	"ASSISTANT_TIMEOUT",
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, k := range configEnv {
		// t.Setenv restores the original value after the test.
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name             string
		envVars          map[string]string
		expectedLevel    string
		expectedModel    string
		expectedAPIKey   string
		expectedInterval time.Duration
		expectError      bool
	}{
		{
			name:             "default values",
			envVars:          map[string]string{},
			expectedLevel:    "info",
			expectedModel:    llm.DefaultModel,
			expectedInterval: 30 * time.Millisecond,
		},
		{
			name: "custom log level",
			envVars: map[string]string{
				"LOG_LEVEL": "warn",
			},
			expectedLevel:    "warn",
			expectedModel:    llm.DefaultModel,
			expectedInterval: 30 * time.Millisecond,
		},
		{
			name: "debug flag overrides log level",
			envVars: map[string]string{
				"LOG_LEVEL": "warn",
				"DEBUG":     "1",
			},
			expectedLevel:    "debug",
			expectedModel:    llm.DefaultModel,
			expectedInterval: 30 * time.Millisecond,
		},
		{
			name: "gatsby variables as fallback",
			envVars: map[string]string{
				"GATSBY_GEMINI_API_KEY": "legacy-key",
				"GATSBY_GEMINI_MODEL":   "gemini-pro",
			},
			expectedLevel:    "info",
			expectedModel:    "gemini-pro",
			expectedAPIKey:   "legacy-key",
			expectedInterval: 30 * time.Millisecond,
		},
		{
			name: "primary variables win",
			envVars: map[string]string{
				"GEMINI_API_KEY":        "test-key",
				"GATSBY_GEMINI_API_KEY": "legacy-key",
				"REVEAL_INTERVAL":       "5ms",
			},
			expectedLevel:    "info",
			expectedModel:    llm.DefaultModel,
			expectedAPIKey:   "test-key",
			expectedInterval: 5 * time.Millisecond,
		},
		{
			name: "invalid reveal interval",
			envVars: map[string]string{
				"REVEAL_INTERVAL": "fast",
			},
			expectError: true,
		},
		{
			name: "non-positive reveal interval",
			envVars: map[string]string{
				"REVEAL_INTERVAL": "0s",
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

			if tt.expectError {
				var cfgErr *ConfigError
				if !errors.As(err, &cfgErr) {
					t.Errorf("Expected ConfigError, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if cfg.LogLevel != tt.expectedLevel {
				t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, tt.expectedLevel)
			}
			if cfg.GeminiModel != tt.expectedModel {
				t.Errorf("GeminiModel = %v, want %v", cfg.GeminiModel, tt.expectedModel)
			}
			if cfg.GeminiAPIKey != tt.expectedAPIKey {
				t.Errorf("GeminiAPIKey = %v, want %v", cfg.GeminiAPIKey, tt.expectedAPIKey)
			}
			if cfg.RevealInterval != tt.expectedInterval {
				t.Errorf("RevealInterval = %v, want %v", cfg.RevealInterval, tt.expectedInterval)
			}
			if cfg.PortfolioFile != "portfolio.yaml" {
				t.Errorf("PortfolioFile = %v, want portfolio.yaml", cfg.PortfolioFile)
			}
		})
	}
}

func TestLoadConfig_EnvFile(t *testing.T) {
	clearConfigEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "GEMINI_API_KEY=from-file\nGEMINI_MODEL=gemini-2.0-flash\nPORTFOLIO_FILE=site.yaml\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("GEMINI_API_KEY")
		os.Unsetenv("GEMINI_MODEL")
		os.Unsetenv("PORTFOLIO_FILE")
	})

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.GeminiAPIKey != "from-file" {
		t.Errorf("GeminiAPIKey = %v, want from-file", cfg.GeminiAPIKey)
	}
	if cfg.PortfolioFile != "site.yaml" {
		t.Errorf("PortfolioFile = %v, want site.yaml", cfg.PortfolioFile)
	}

	lc := cfg.LLMConfig()
	if lc.Model != "gemini-2.0-flash" || !lc.HasCredential() {
		t.Errorf("LLMConfig() = %+v", lc)
	}
}

func TestLoadConfig_AssistantTimeout(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expected    time.Duration
		expectError bool
	}{
		{name: "unset means no timeout", value: "", expected: 0},
		{name: "duration", value: "15s", expected: 15 * time.Second},
		{name: "invalid", value: "soon", expectError: true},
		{name: "negative", value: "-1s", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			if tt.value != "" {
				t.Setenv("ASSISTANT_TIMEOUT", tt.value)
			}

			cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
			if tt.expectError {
				var cfgErr *ConfigError
				if !errors.As(err, &cfgErr) || cfgErr.Field != "ASSISTANT_TIMEOUT" {
					t.Errorf("Expected ASSISTANT_TIMEOUT ConfigError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if cfg.AssistantTimeout != tt.expected {
				t.Errorf("AssistantTimeout = %v, want %v", cfg.AssistantTimeout, tt.expected)
			}
			if got := cfg.LLMConfig().Timeout; got != tt.expected {
				t.Errorf("LLMConfig().Timeout = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "env var set",
			key:          "TEST_VAR",
			defaultValue: "default",
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env var not set",
			key:          "TEST_VAR_MISSING",
			defaultValue: "default",
			envValue:     "",
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.envValue)

			result := getEnvOrDefault(tt.key, tt.defaultValue)
			if result != tt.expected {
				t.Errorf("getEnvOrDefault() = %v, want %v", result, tt.expected)
			}
		})
	}
}
