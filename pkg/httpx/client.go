// Package httpx wraps the standard HTTP client with the single request shape
// the registry understands: one POST, one body back.
package httpx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// Client is an extension of the standard HTTP client.
//
// It never retries. A request either produces a body or an error, and the
// response body is closed on every path.
type Client struct {
	*http.Client
}

// NewClient returns a Client backed by a default http.Client.
func NewClient() *Client {
	return &Client{Client: &http.Client{}}
}

// Post sends the given body to the URL and returns the full response body.
//
// The status code is not interpreted: the registry reports failures inside the
// document, so any body it sends back is handed to the caller.
func (c *Client) Post(ctx context.Context, url, contentType string, body []byte) ([]byte, error) {
	// Create the HTTP request. The context aborts it on cancellation.
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	request.Header.Set("Content-Type", contentType)

	// Execute the request. There is exactly one attempt.
	response, err := c.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to execute HTTP request: %w", err)
	}
	// Close the body on every path past this point.
	defer func() { _ = response.Body.Close() }()

	// Read the whole document; the caller parses it.
	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return responseBody, nil
}
