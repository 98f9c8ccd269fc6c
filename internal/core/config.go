package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"

	"adhibot/internal/llm"
	"adhibot/internal/reveal"
)

// Config holds the application configuration.
type Config struct {
	LogLevel         string        // debug, info, warn, error
	GeminiAPIKey     string        // Empty key is reported at startup; chats then fail gracefully
	GeminiModel      string        // Model identifier
	GeminiBaseURL    string        // Optional endpoint override
	PortfolioFile    string        // YAML CMS export
	Addr             string        // serve listen address
	RevealInterval   time.Duration // Presenter tick
	AssistantTimeout time.Duration // Per-turn bound; zero means none
}

// LoadConfig loads configuration from environment variables, after merging
// any .env files. Variables already set in the environment win.
func LoadConfig(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, &ConfigError{Field: "env file", Message: "cannot be parsed", Err: err}
	}

	logLevel := getEnvOrDefault("LOG_LEVEL", "info")

	// DEBUG flag overrides log level
	if os.Getenv("DEBUG") == "1" {
		logLevel = "debug"
	}

	interval := reveal.DefaultInterval
	if raw := os.Getenv("REVEAL_INTERVAL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, &ConfigError{Field: "REVEAL_INTERVAL", Message: fmt.Sprintf("invalid duration %q", raw), Err: err}
		}
		if d <= 0 {
			return nil, &ConfigError{Field: "REVEAL_INTERVAL", Message: "must be positive"}
		}
		interval = d
	}

	var timeout time.Duration
	if raw := os.Getenv("ASSISTANT_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, &ConfigError{Field: "ASSISTANT_TIMEOUT", Message: fmt.Sprintf("invalid duration %q", raw), Err: err}
		}
		if d < 0 {
			return nil, &ConfigError{Field: "ASSISTANT_TIMEOUT", Message: "must not be negative"}
		}
		timeout = d
	}

	cfg := &Config{
		LogLevel:         logLevel,
		GeminiAPIKey:     firstEnv("GEMINI_API_KEY", "GATSBY_GEMINI_API_KEY"),
		GeminiModel:      firstEnv("GEMINI_MODEL", "GATSBY_GEMINI_MODEL"),
		GeminiBaseURL:    os.Getenv("GEMINI_BASE_URL"),
		PortfolioFile:    getEnvOrDefault("PORTFOLIO_FILE", "portfolio.yaml"),
		Addr:             getEnvOrDefault("ADHIBOT_ADDR", "127.0.0.1:8080"),
		RevealInterval:   interval,
		AssistantTimeout: timeout,
	}

	if cfg.GeminiModel == "" {
		cfg.GeminiModel = llm.DefaultModel
	}

	// A missing API key is not fatal here; the session reports it in the chat.
	return cfg, nil
}

// LLMConfig returns the assistant client configuration.
func (c *Config) LLMConfig() *llm.Config {
	return &llm.Config{
		APIKey:  c.GeminiAPIKey,
		BaseURL: c.GeminiBaseURL,
		Model:   c.GeminiModel,
		Timeout: c.AssistantTimeout,
	}
}

// getEnvOrDefault returns the value of an environment variable or a default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// firstEnv returns the first non-empty variable among keys.
func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
