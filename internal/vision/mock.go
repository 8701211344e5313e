package vision

import (
	"context"
	"sync/atomic"
)

// MockTransport is a scriptable vision transport for testing.
type MockTransport struct {
	// Configurable behavior
	ResponseBody string
	Err          error

	// State
	requestCount atomic.Int64
}

// NewMockTransport creates a mock transport that answers every call with the
// given body.
func NewMockTransport(body string) *MockTransport {
	return &MockTransport{ResponseBody: body}
}

// Complete returns the scripted body or error.
func (m *MockTransport) Complete(ctx context.Context, image []byte, contentType, prompt string) (string, error) {
	m.requestCount.Add(1)
	if err := ctx.Err(); err != nil {
		return "", &TransportError{Cause: err}
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.ResponseBody, nil
}

// RequestCount returns how many calls have been made.
func (m *MockTransport) RequestCount() int64 {
	return m.requestCount.Load()
}
