package httpx_test

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
)

// mockRoundTripper is a mock implementation of http.RoundTripper.
// Each entry in responses is the outcome of one attempt, so a test can prove
// that the client never makes a second one.
type mockRoundTripper struct {
	responses []func(*http.Request) (*http.Response, error)
	// attempt tracks the current call number.
	attempt int
	// lastRequest is the most recent request seen by the transport.
	lastRequest *http.Request
}

// RoundTrip satisfies the http.RoundTripper interface.
func (m *mockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if m.attempt >= len(m.responses) {
		return nil, errors.New("mockRoundTripper: too many attempts")
	}

	responseFunc := m.responses[m.attempt]
	m.attempt++
	m.lastRequest = req
	return responseFunc(req)
}

// mockReadCloser is a response body that records whether it was closed.
type mockReadCloser struct {
	reader io.Reader
	mu     sync.Mutex
	closed bool
}

// newMockReadCloser creates a new mock body from a string.
func newMockReadCloser(data string) *mockReadCloser {
	return &mockReadCloser{reader: strings.NewReader(data)}
}

func (m *mockReadCloser) Read(p []byte) (n int, err error) {
	return m.reader.Read(p)
}

func (m *mockReadCloser) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// isClosed safely checks if the Close method has been called.
func (m *mockReadCloser) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// errorReader is a helper that implements io.Reader and always returns an error.
type errorReader struct {
	err error
}

func (e *errorReader) Read([]byte) (n int, err error) {
	return 0, e.err
}
