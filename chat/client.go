package chat

import (
	"context"

	"github.com/linux-techtips/cordyceps/client"
)

// Endpoint is the chat completions endpoint. It is fixed per payload kind —
// a process-wide constant, not configurable per call.
const Endpoint = "https://api.openai.com/v1/chat/completions"

// Client binds the generic transport client to chat payloads and the fixed
// chat completions endpoint. It exists purely to reduce configuration
// surface for the common case.
type Client struct {
	transport *client.Client[Payload]
}

// NewClient creates a chat client from a bearer credential.
func NewClient(apiKey string, opts ...client.Option) *Client {
	return &Client{
		transport: client.New[Payload](apiKey, Endpoint, opts...),
	}
}

// Send delegates entirely to the underlying transport client.
func (c *Client) Send(ctx context.Context, payload Payload) (*client.Stream, error) {
	return c.transport.Send(ctx, payload)
}

// Transport returns the underlying generic client for advanced use cases.
func (c *Client) Transport() *client.Client[Payload] {
	return c.transport
}
