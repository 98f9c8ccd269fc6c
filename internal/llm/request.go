package llm

// Chat roles on the wire.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// GenerationConfig holds the sampling parameters sent with every call.
type GenerationConfig struct {
	Temperature     float32
	TopK            int32
	TopP            float32
	MaxOutputTokens int32
}

// DefaultGenerationConfig favors low-variance, factual answers.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:     0.1,
		TopK:            20,
		TopP:            0.8,
		MaxOutputTokens: 1024,
	}
}

// Turn is one prior entry of the chat history.
type Turn struct {
	Role  string
	Parts []string
}

// ExternalRequest is everything a backend needs for one user turn. It is
// built fresh per call.
type ExternalRequest struct {
	Model            string
	SystemPrompt     string
	History          []Turn
	NewMessage       string
	GenerationConfig GenerationConfig
}

// NewRequest seeds the history with the system prompt as a prior user turn;
// the Gemini chat API has no dedicated system slot in this mode.
func NewRequest(model, userMessage, systemPrompt string) *ExternalRequest {
	return &ExternalRequest{
		Model:        model,
		SystemPrompt: systemPrompt,
		History: []Turn{
			{Role: RoleUser, Parts: []string{systemPrompt}},
		},
		NewMessage:       userMessage,
		GenerationConfig: DefaultGenerationConfig(),
	}
}
