package request

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"sync"
)

// MockDispatcher implements Dispatcher for testing.
type MockDispatcher struct {
	// Control test behavior
	StatusCode int
	Body       string
	Header     http.Header
	Err        error

	mu sync.Mutex

	// Track calls
	Calls      int
	LastMethod string
	LastSpec   *Spec
}

// Do records the call and returns the canned response.
func (m *MockDispatcher) Do(ctx context.Context, method string, spec *Spec) (*http.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls++
	m.LastMethod = method
	m.LastSpec = spec
	if m.Err != nil {
		return nil, m.Err
	}

	status := m.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	header := m.Header
	if header == nil {
		header = make(http.Header)
	}
	return &http.Response{
		StatusCode: status,
		Header:     header.Clone(),
		Body:       io.NopCloser(bytes.NewBufferString(m.Body)),
	}, nil
}

// Reset clears all tracking data for a fresh test.
func (m *MockDispatcher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = 0
	m.LastMethod = ""
	m.LastSpec = nil
}
