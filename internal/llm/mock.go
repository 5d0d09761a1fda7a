package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider is a deterministic Provider used by tests and the offline
// demo. Responses are served in FIFO order; with Loop set the queue is
// replayed instead of running dry.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	next      int
	Loop      bool
	Calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// demoQuestion is served by the "mock" provider so the quiz can be played
// without an API key.
const demoQuestion = `{
  "word": "eloquent",
  "sentences": [
    "The speaker's _____ speech moved the audience to tears.",
    "The dog was very _____ when it chased its tail.",
    "She ate an _____ sandwich for lunch."
  ],
  "correctSentenceIndex": 0,
  "explanation": "Eloquent means fluent or persuasive in speaking or writing."
}`

// NewDemoProvider returns a looping MockProvider that always answers with
// the same well-formed question.
func NewDemoProvider() *MockProvider {
	m := NewMockProvider(MockResponse{
		Content: json.RawMessage(demoQuestion),
		Usage:   Usage{InputTokens: 180, OutputTokens: 70, TotalTokens: 250},
	})
	m.Loop = true
	return m
}

// Generate returns the next canned response, or ErrProviderUnavailable
// once a non-looping queue is exhausted.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if m.next >= len(m.responses) {
		if !m.Loop || len(m.responses) == 0 {
			return nil, &ErrProviderUnavailable{Err: nil}
		}
		m.next = 0
	}

	resp := m.responses[m.next]
	m.next++

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
