package llm

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// MockResponse is one scripted reply.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays scripted replies in order and records every
// request. Content is returned as given, without schema validation.
type MockProvider struct {
	mu      sync.Mutex
	pending []MockResponse
	Calls   []Request
}

// NewMockProvider creates a MockProvider that will answer with responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{pending: responses}
}

// Generate pops the next reply. Once the script runs out every call
// fails with KindUnavailable.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)
	if len(m.pending) == 0 {
		return nil, &Error{Kind: KindUnavailable, Err: errors.New("mock: script exhausted")}
	}
	next := m.pending[0]
	m.pending = m.pending[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{Content: next.Content, Usage: next.Usage, Model: "mock", StopReason: StopEnd}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// AddResponse appends a reply to the script.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	m.pending = append(m.pending, resp)
	m.mu.Unlock()
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
