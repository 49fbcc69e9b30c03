package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockProvider is a Provider for tests. It returns canned responses in
// order and records every request it receives.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	calls     []Request
	model     string
}

// MockResponse is a single canned response.
type MockResponse struct {
	Content json.RawMessage
	Err     error
}

// NewMockProvider creates a mock provider with no canned responses.
// Calls beyond the canned queue return an empty JSON object.
func NewMockProvider() *MockProvider {
	return &MockProvider{model: "mock"}
}

// AddResponse enqueues a canned response.
func (m *MockProvider) AddResponse(content json.RawMessage, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, MockResponse{Content: content, Err: err})
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.calls = append(m.calls, req)
	var next MockResponse
	if len(m.responses) > 0 {
		next = m.responses[0]
		m.responses = m.responses[1:]
	} else {
		next = MockResponse{Content: json.RawMessage(`{}`)}
	}
	m.mu.Unlock()

	if next.Err != nil {
		return nil, next.Err
	}

	return &Response{
		Content:    next.Content,
		Model:      m.model,
		StopReason: "end",
		Usage: Usage{
			InputTokens:  10,
			OutputTokens: 20,
			TotalTokens:  30,
		},
	}, nil
}

func (m *MockProvider) ModelID() string {
	return m.model
}

// CallCount returns the number of Generate calls received.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls returns a copy of the recorded requests.
func (m *MockProvider) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.calls))
	copy(out, m.calls)
	return out
}
