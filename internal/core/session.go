package core

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"adhibot/internal/llm"
	"adhibot/pkg/schema"
)

// Assistant answers one user turn grounded on the system prompt.
type Assistant interface {
	Send(ctx context.Context, userMessage, systemPrompt string) (string, error)
}

// Session is one visitor's conversation: the transcript, the loading flag
// and the input field. At most one assistant call is in flight at a time.
type Session struct {
	mu sync.Mutex

	snapshot     schema.PortfolioSnapshot
	systemPrompt string
	assistant    Assistant
	logger       Logger

	messages []schema.Message
	loading  bool
	input    string
	lastErr  error
	seq      int
}

// NewSession creates a session whose transcript starts with the greeting.
// A nil assistant behaves like a client without a credential: every turn
// ends with the not-configured reply.
func NewSession(snapshot schema.PortfolioSnapshot, systemPrompt string, assistant Assistant, logger Logger) *Session {
	if logger == nil {
		logger = NopLogger()
	}
	if assistant == nil {
		client, err := llm.NewClient(&llm.Config{}, nil)
		if err != nil {
			panic(fmt.Sprintf("default assistant client: %v", err))
		}
		assistant = client
	}

	s := &Session{
		snapshot:     snapshot,
		systemPrompt: systemPrompt,
		assistant:    assistant,
		logger:       logger,
		messages:     make([]schema.Message, 0, 8),
	}
	s.messages = append(s.messages, schema.Message{
		ID:          s.newID(),
		Role:        schema.RoleAssistant,
		Text:        schema.GreetingText,
		RevealState: schema.RevealComplete,
	})
	return s
}

// Submit runs one full turn for text and blocks until the reply (or an
// error reply) is in the transcript. It returns ErrEmptyInput or ErrBusy
// when the submission is rejected; assistant failures never surface here.
func (s *Session) Submit(ctx context.Context, text string) error {
	id, err := s.begin(text)
	if err != nil {
		return err
	}

	reply, sendErr := s.assistant.Send(ctx, text, s.systemPrompt)
	s.finish(id, reply, sendErr)
	return nil
}

// SubmitAsync starts a turn and returns once the placeholder is in the
// transcript. The returned channel is closed when the turn completes.
func (s *Session) SubmitAsync(ctx context.Context, text string) (<-chan struct{}, error) {
	id, err := s.begin(text)
	if err != nil {
		return nil, err
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		reply, sendErr := s.assistant.Send(ctx, text, s.systemPrompt)
		s.finish(id, reply, sendErr)
	}()
	return done, nil
}

// SubmitInput submits the current input field.
func (s *Session) SubmitInput(ctx context.Context) error {
	return s.Submit(ctx, s.Input())
}

// begin appends the user message and the pending placeholder.
func (s *Session) begin(text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}
	if s.loading {
		s.logger.Debug("Submission rejected while awaiting reply")
		return "", ErrBusy
	}

	s.messages = append(s.messages, schema.Message{
		ID:          s.newID(),
		Role:        schema.RoleUser,
		Text:        text,
		RevealState: schema.RevealComplete,
	})

	placeholder := schema.Message{
		ID:          s.newID(),
		Role:        schema.RoleAssistant,
		Text:        schema.PlaceholderText,
		RevealState: schema.RevealPending,
	}
	s.messages = append(s.messages, placeholder)
	s.loading = true

	s.logger.Info("Turn started", "message_id", placeholder.ID, "message_length", len(text))
	return placeholder.ID, nil
}

// finish swaps the placeholder for the reply or an error reply.
func (s *Session) finish(id, reply string, sendErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.logger.Warn("Placeholder vanished before reply", "message_id", id)
	} else if sendErr != nil {
		kind := llm.ClassifyError(sendErr)
		s.messages[idx].Text = llm.UserMessage(kind)
		s.messages[idx].RevealState = schema.RevealComplete
		s.lastErr = &TurnError{MessageID: id, Kind: string(kind), Err: sendErr}
		s.logger.Error("Turn failed", "message_id", id, "error_kind", kind, "error", sendErr.Error())
	} else {
		s.messages[idx].Text = reply
		s.messages[idx].RevealState = schema.RevealStreaming
		s.lastErr = nil
		s.logger.Info("Turn completed", "message_id", id, "response_length", len(reply))
	}

	s.loading = false
	s.input = ""
}

// CompleteReveal marks a streaming reply as fully displayed. It reports
// false for unknown IDs and for messages that are not streaming, including
// the pending placeholder.
func (s *Session) CompleteReveal(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 || s.messages[idx].RevealState != schema.RevealStreaming {
		return false
	}
	s.messages[idx].RevealState = schema.RevealComplete
	return true
}

// Messages returns a copy of the transcript.
func (s *Session) Messages() []schema.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]schema.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Last returns the most recent message.
func (s *Session) Last() schema.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messages[len(s.messages)-1]
}

// IsLoading reports whether a reply is in flight.
func (s *Session) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Input returns the input field.
func (s *Session) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

// SetInput replaces the input field.
func (s *Session) SetInput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = text
}

// LastError returns the failure behind the most recent error reply, if the
// latest turn failed.
func (s *Session) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// SystemPrompt returns the grounding prompt shared with the assistant.
func (s *Session) SystemPrompt() string {
	return s.systemPrompt
}

// Snapshot returns the portfolio the session is grounded on.
func (s *Session) Snapshot() schema.PortfolioSnapshot {
	return s.snapshot
}

func (s *Session) indexOf(id string) int {
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].ID == id {
			return i
		}
	}
	return -1
}

// newID must be called with s.mu held or before the session is shared.
func (s *Session) newID() string {
	s.seq++
	id, err := schema.NewMessageID()
	if err != nil {
		return fmt.Sprintf("MSG-%d", s.seq)
	}
	return id
}
