package rpc

import (
	"context"
	"fmt"
	"io"

	"github.com/shivanshkc/dronebl/pkg/httpx"
)

// DefaultEndpoint is the registry's RPC endpoint.
const DefaultEndpoint = "https://dronebl.org/rpc2"

const contentType = "text/xml; charset=utf-8"

// Client represents the registry's RPC client.
type Client struct {
	endpoint   string
	httpClient *httpx.Client

	// Dump, when set, receives the raw request and response documents.
	Dump io.Writer
}

// NewClient returns a new Client for the given endpoint.
func NewClient(endpoint string) *Client {
	return &Client{endpoint: endpoint, httpClient: httpx.NewClient()}
}

// Call sends the request in a single exchange and parses the response.
func (c *Client) Call(ctx context.Context, req *Request) (*Response, error) {
	body, err := req.Encode()
	if err != nil {
		return nil, err
	}
	c.dump("Request", body)

	raw, err := c.httpClient.Post(ctx, c.endpoint, contentType, body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	c.dump("Response", raw)

	return ParseResponse(raw)
}

func (c *Client) dump(label string, body []byte) {
	if c.Dump == nil {
		return
	}
	fmt.Fprintf(c.Dump, "%s:\n%s\n", label, body)
}
