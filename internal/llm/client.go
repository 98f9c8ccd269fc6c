package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Backend performs one chat call against a language model.
type Backend interface {
	Chat(ctx context.Context, req *ExternalRequest) (string, error)
	Name() string
}

// Client is the assistant client used by the conversation session.
type Client struct {
	config  *Config
	backend Backend
}

// NewClient creates a new assistant client. A nil backend means no
// credential was available; every Send then fails with
// ErrorKindMissingCredential without touching the network.
func NewClient(config *Config, backend Backend) (*Client, error) {
	config.SetDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Client{
		config:  config,
		backend: backend,
	}, nil
}

// Send asks the model for a reply to userMessage grounded on systemPrompt.
// It makes exactly one attempt; every failure is returned as *LLMError.
func (c *Client) Send(ctx context.Context, userMessage, systemPrompt string) (string, error) {
	if c.backend == nil {
		slog.Error("Assistant call rejected", "error_kind", ErrorKindMissingCredential)
		return "", NewMissingCredentialError()
	}

	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	req := NewRequest(c.config.Model, userMessage, systemPrompt)

	slog.Info("Assistant request",
		"backend", c.backend.Name(),
		"model", req.Model,
		"prompt_length", len(systemPrompt),
		"message_length", len(userMessage),
	)

	start := time.Now()
	text, err := c.backend.Chat(ctx, req)
	duration := time.Since(start)

	if err != nil {
		llmErr := NewAssistantError(err)
		slog.Error("Assistant request failed",
			"backend", c.backend.Name(),
			"error_kind", llmErr.Kind,
			"error", err.Error(),
			"duration", duration,
		)
		return "", llmErr
	}

	slog.Info("Assistant request completed",
		"backend", c.backend.Name(),
		"response_length", len(text),
		"duration", duration,
	)
	return text, nil
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.config.Model
}
