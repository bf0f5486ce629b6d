package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/linux-techtips/cordyceps/version"
)

// Client performs one request/response exchange per Send call for a single
// payload type bound to a fixed endpoint.
type Client[P any] struct {
	endpoint string
	settings
}

// New creates a client for payload type P bound to the given endpoint,
// authenticating with the given bearer credential.
func New[P any](apiKey, endpoint string, opts ...Option) *Client[P] {
	s := settings{
		httpClient: &http.Client{},
		auth:       BearerAuth(apiKey),
		userAgent:  "cordyceps/" + version.Short(),
		requestID:  func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(&s)
	}
	return &Client[P]{endpoint: endpoint, settings: s}
}

// Endpoint returns the endpoint this client is bound to.
func (c *Client[P]) Endpoint() string {
	return c.endpoint
}

// Send serializes the payload, posts it to the endpoint, and returns the
// response body as a one-shot stream of framed chunks.
//
// A non-success status fails with a request error carrying the status code
// before any chunk is yielded. There are no retries at this layer.
func (c *Client[P]) Send(ctx context.Context, payload P) (stream *Stream, err error) {
	if c.tracer != nil {
		var span trace.Span
		ctx, span = c.tracer.Start(ctx, "client.send",
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(attribute.String("http.url", c.endpoint)),
		)
		defer func() {
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			span.End()
		}()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, newValidationError(fmt.Sprintf("encode payload: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, newValidationError(fmt.Sprintf("create request: %v", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	requestID := c.requestID()
	req.Header.Set("X-Request-Id", requestID)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	c.auth.apply(req)

	if c.log != nil {
		c.log.Debug("sending payload", map[string]any{
			"endpoint":   c.endpoint,
			"request_id": requestID,
			"bytes":      len(body),
		})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, newTimeoutError(err)
		}
		return nil, newConnectionError(err)
	}

	// Check the status before any chunk is yielded: a failed exchange
	// produces no partial stream.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if c.log != nil {
			c.log.Debug("request failed", map[string]any{
				"request_id": requestID,
				"status":     resp.StatusCode,
			})
		}
		return nil, newRequestFailedError(resp.StatusCode, respBody)
	}

	if c.tracer != nil {
		trace.SpanFromContext(ctx).SetAttributes(
			attribute.Int("http.status_code", resp.StatusCode),
		)
	}
	return newStream(resp.Body), nil
}
