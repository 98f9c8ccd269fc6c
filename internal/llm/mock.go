package llm

import (
	"context"
	"sync"
)

// MockClient is a mock assistant for testing the conversation session.
type MockClient struct {
	Response string // The response to return
	Error    error  // Error to return (if any)

	// Gate, when set, blocks every call until a value is received or the
	// context ends.
	Gate chan struct{}

	mu    sync.Mutex
	calls []MockCall
}

// MockCall records the arguments of one Send.
type MockCall struct {
	UserMessage  string
	SystemPrompt string
}

// Send mocks a single assistant turn.
func (m *MockClient) Send(ctx context.Context, userMessage, systemPrompt string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, MockCall{UserMessage: userMessage, SystemPrompt: systemPrompt})
	m.mu.Unlock()

	if m.Gate != nil {
		select {
		case <-m.Gate:
		case <-ctx.Done():
			return "", NewAssistantError(ctx.Err())
		}
	}

	if m.Error != nil {
		return "", m.Error
	}
	return m.Response, nil
}

// Calls returns a copy of the recorded calls.
func (m *MockClient) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]MockCall, len(m.calls))
	copy(out, m.calls)
	return out
}

// MockBackend is a Backend returning a fixed reply, recording the last request.
type MockBackend struct {
	Response string
	Error    error

	mu   sync.Mutex
	last *ExternalRequest
	n    int
}

// Name implements Backend.
func (b *MockBackend) Name() string {
	return "mock"
}

// Chat implements Backend.
func (b *MockBackend) Chat(ctx context.Context, req *ExternalRequest) (string, error) {
	b.mu.Lock()
	b.last = req
	b.n++
	b.mu.Unlock()

	if b.Error != nil {
		return "", b.Error
	}
	return b.Response, nil
}

// LastRequest returns the most recent request and the total call count.
func (b *MockBackend) LastRequest() (*ExternalRequest, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last, b.n
}
