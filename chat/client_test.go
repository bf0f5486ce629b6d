package chat

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/linux-techtips/cordyceps/client"
)

// recordingTransport serves a canned response and captures the request.
type recordingTransport struct {
	req    *http.Request
	status int
	body   string
}

func (rt *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.req = req
	return &http.Response{
		StatusCode: rt.status,
		Body:       io.NopCloser(strings.NewReader(rt.body)),
		Header:     http.Header{},
		Request:    req,
	}, nil
}

func TestClient_SendHitsFixedEndpoint(t *testing.T) {
	rt := &recordingTransport{status: 200, body: "data: {\"id\":\"x\"}\n\n"}
	c := NewClient("sk-test", client.WithHTTPClient(&http.Client{Transport: rt}))

	payload, err := NewBuilder().UserMessage("hi").Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stream, err := c.Send(context.Background(), payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer stream.Close()

	if got := rt.req.URL.String(); got != Endpoint {
		t.Errorf("request URL = %q, want %q", got, Endpoint)
	}
	if got := rt.req.Header.Get("Authorization"); got != "Bearer sk-test" {
		t.Errorf("Authorization = %q", got)
	}
	if rt.req.Method != http.MethodPost {
		t.Errorf("method = %s, want POST", rt.req.Method)
	}
}

func TestClient_SendDelegatesFailure(t *testing.T) {
	rt := &recordingTransport{status: 429, body: `{"error":"rate limited"}`}
	c := NewClient("sk-test", client.WithHTTPClient(&http.Client{Transport: rt}))

	payload, err := NewBuilder().UserMessage("hi").Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = c.Send(context.Background(), payload)
	if !client.IsRequestFailed(err) {
		t.Fatalf("expected request failure, got %v", err)
	}
	if got := client.StatusCode(err); got != 429 {
		t.Errorf("status = %d, want 429", got)
	}
}

func TestClient_StreamDecodeLoop(t *testing.T) {
	// Two frames then the terminator, one event per chunk as served.
	body := "data: " + `{"id":"1","object":"chat.completion.chunk","created":1,"model":"gpt-3.5-turbo","choices":[{"delta":{"content":"Hel"},"index":0}]}` + "\n\n" +
		"data: " + `{"id":"1","object":"chat.completion.chunk","created":1,"model":"gpt-3.5-turbo","choices":[{"delta":{"content":"lo"},"index":0,"finish_reason":"stop"}]}` + "\n\n" +
		"data: [DONE]\n\n"

	rt := &recordingTransport{status: 200, body: body}
	c := NewClient("sk-test", client.WithHTTPClient(&http.Client{Transport: rt}))

	payload, err := NewBuilder().UserMessage("hi").Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stream, err := c.Send(context.Background(), payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer stream.Close()

	// Re-segment on the event framing so this test does not depend on how
	// the in-memory body batches reads.
	events := stream.Events()
	var got strings.Builder
	for {
		event, err := events.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		frame, err := Decode(event.Bytes())
		if err != nil {
			continue
		}
		if text, ok := frame.Text(0); ok {
			got.WriteString(text)
		}
	}

	if got.String() != "Hello" {
		t.Errorf("accumulated text = %q, want %q", got.String(), "Hello")
	}
}

func TestClient_Transport(t *testing.T) {
	c := NewClient("sk-test")
	if c.Transport() == nil {
		t.Fatal("expected underlying transport client")
	}
	if got := c.Transport().Endpoint(); got != Endpoint {
		t.Errorf("endpoint = %q, want %q", got, Endpoint)
	}
}
