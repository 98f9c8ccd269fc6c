package llm

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
)

// LocalModelName is the genkit name of the in-process portfolio model.
const LocalModelName = "adhibot/local"

// AnswerFunc produces a reply from the grounding prompt and the user question.
type AnswerFunc func(systemPrompt, question string) (string, error)

// LocalBackend serves answers from a model registered in-process with genkit.
// It needs no credential and is used for offline runs and tests.
type LocalBackend struct {
	g     *genkit.Genkit
	model ai.Model
}

// NewLocalBackend registers the local model. A nil answer uses ExtractiveAnswer.
func NewLocalBackend(ctx context.Context, answer AnswerFunc) *LocalBackend {
	if answer == nil {
		answer = ExtractiveAnswer
	}

	g := genkit.Init(ctx)

	model := genkit.DefineModel(
		g,
		LocalModelName,
		&ai.ModelOptions{
			Label: "Adhibot local portfolio model",
			Supports: &ai.ModelSupports{
				Multiturn:  true,
				SystemRole: false,
			},
		},
		func(ctx context.Context, req *ai.ModelRequest, cb ai.ModelStreamCallback) (*ai.ModelResponse, error) {
			if len(req.Messages) < 2 {
				return nil, fmt.Errorf("local model needs a seed turn and a question, got %d messages", len(req.Messages))
			}

			seed := req.Messages[0].Text()
			question := req.Messages[len(req.Messages)-1].Text()

			text, err := answer(seed, question)
			if err != nil {
				return nil, err
			}

			return &ai.ModelResponse{
				Request: req,
				Message: &ai.Message{
					Role:    ai.RoleModel,
					Content: []*ai.Part{ai.NewTextPart(text)},
				},
			}, nil
		},
	)

	return &LocalBackend{g: g, model: model}
}

// Name implements Backend.
func (b *LocalBackend) Name() string {
	return "local"
}

// Chat implements Backend.
func (b *LocalBackend) Chat(ctx context.Context, req *ExternalRequest) (string, error) {
	messages := make([]*ai.Message, 0, len(req.History)+1)
	for _, turn := range req.History {
		role := ai.RoleUser
		if turn.Role == RoleModel {
			role = ai.RoleModel
		}
		parts := make([]*ai.Part, 0, len(turn.Parts))
		for _, p := range turn.Parts {
			parts = append(parts, ai.NewTextPart(p))
		}
		messages = append(messages, &ai.Message{Role: role, Content: parts})
	}
	messages = append(messages, &ai.Message{
		Role:    ai.RoleUser,
		Content: []*ai.Part{ai.NewTextPart(req.NewMessage)},
	})

	gc := req.GenerationConfig
	resp, err := b.model.Generate(ctx, &ai.ModelRequest{
		Messages: messages,
		Config: &ai.GenerationCommonConfig{
			Temperature:     float64(gc.Temperature),
			TopK:            int(gc.TopK),
			TopP:            float64(gc.TopP),
			MaxOutputTokens: int(gc.MaxOutputTokens),
		},
	}, nil)
	if err != nil {
		return "", err
	}
	if resp == nil || resp.Message == nil {
		return "", fmt.Errorf("empty response from local model")
	}

	return resp.Text(), nil
}

// ExtractiveAnswer replies with the portfolio lines that share a keyword
// with the question, or the not-available sentence when none do.
func ExtractiveAnswer(systemPrompt, question string) (string, error) {
	keywords := keywordsOf(question)

	body := systemPrompt
	if i := strings.Index(body, HeadingAbout); i >= 0 {
		body = body[i:]
	}

	var matches []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "###") {
			continue
		}
		lower := strings.ToLower(line)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				matches = append(matches, strings.TrimPrefix(line, "- "))
				break
			}
		}
	}

	if len(matches) == 0 {
		return NotAvailableReply + ".", nil
	}

	return "Based on Adhithyan's portfolio:\n- " + strings.Join(matches, "\n- "), nil
}

func keywordsOf(question string) []string {
	fields := strings.FieldsFunc(strings.ToLower(question), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var out []string
	for _, f := range fields {
		if len(f) > 3 && !stopWords[f] {
			out = append(out, f)
		}
	}
	return out
}

var stopWords = map[string]bool{
	"what": true, "which": true, "does": true, "about": true, "know": true,
	"with": true, "have": true, "tell": true, "there": true, "their": true,
	"adhithyan": true, "that": true, "this": true, "from": true, "where": true,
}
