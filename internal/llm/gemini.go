package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiBackend talks to the Gemini API through the genai SDK.
type GeminiBackend struct {
	client *genai.Client
}

// NewGeminiBackend creates a Gemini backend. It requires an API key.
func NewGeminiBackend(ctx context.Context, config *Config) (*GeminiBackend, error) {
	if !config.HasCredential() {
		return nil, NewMissingCredentialError()
	}

	cc := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiBackend{client: client}, nil
}

// Name implements Backend.
func (b *GeminiBackend) Name() string {
	return "gemini"
}

// Chat starts a chat seeded with the request history and sends the new message.
func (b *GeminiBackend) Chat(ctx context.Context, req *ExternalRequest) (string, error) {
	history := make([]*genai.Content, 0, len(req.History))
	for _, turn := range req.History {
		parts := make([]*genai.Part, 0, len(turn.Parts))
		for _, p := range turn.Parts {
			parts = append(parts, genai.NewPartFromText(p))
		}
		history = append(history, genai.NewContentFromParts(parts, genai.Role(turn.Role)))
	}

	gc := req.GenerationConfig
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(gc.Temperature),
		TopK:            genai.Ptr(float32(gc.TopK)),
		TopP:            genai.Ptr(gc.TopP),
		MaxOutputTokens: gc.MaxOutputTokens,
	}

	chat, err := b.client.Chats.Create(ctx, req.Model, config, history)
	if err != nil {
		return "", fmt.Errorf("start chat: %w", err)
	}

	resp, err := chat.SendMessage(ctx, genai.Part{Text: req.NewMessage})
	if err != nil {
		return "", fmt.Errorf("Chat error: %w", err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) > 0 && string(resp.Candidates[0].FinishReason) == "SAFETY" {
		return "", fmt.Errorf("response blocked due to SAFETY")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}
