package llm

import (
	"fmt"
	"time"
)

// DefaultModel is used when no model identifier is configured.
const DefaultModel = "gemini-1.5-flash"

// Config contains configuration for the assistant client.
type Config struct {
	// APIKey is the Gemini API key. An empty key is allowed; every call then
	// fails with ErrorKindMissingCredential.
	APIKey string

	// BaseURL overrides the Gemini endpoint
	// Default: SDK default
	BaseURL string

	// Model is the Gemini model identifier
	// Example: gemini-1.5-flash
	Model string

	// Timeout bounds a single call. Zero leaves it to the transport.
	// Set from ASSISTANT_TIMEOUT; unset by default.
	Timeout time.Duration
}

// Validate checks that required config fields are set.
func (c *Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("Model is required")
	}

	if c.Timeout < 0 {
		return fmt.Errorf("Timeout must not be negative")
	}

	return nil
}

// SetDefaults fills in default values for optional fields.
func (c *Config) SetDefaults() {
	if c.Model == "" {
		c.Model = DefaultModel
	}
}

// HasCredential reports whether an API key is configured.
func (c *Config) HasCredential() bool {
	return c.APIKey != ""
}
