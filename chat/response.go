package chat

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FinishReason describes why a streamed response ended.
// It is decode-only: this client never constructs one.
type FinishReason int

const (
	// FinishLength means the response hit the max_tokens limit.
	FinishLength FinishReason = iota
	// FinishStop means the model stopped naturally or hit a stop sequence.
	FinishStop
)

// String returns the wire identifier for the finish reason.
func (f FinishReason) String() string {
	switch f {
	case FinishLength:
		return "length"
	case FinishStop:
		return "stop"
	default:
		return "unknown"
	}
}

// UnmarshalJSON decodes a wire identifier, rejecting unknown strings.
func (f *FinishReason) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "length":
		*f = FinishLength
	case "stop":
		*f = FinishStop
	default:
		return &EnumError{Kind: "finish reason", Value: s}
	}
	return nil
}

// Delta is the incremental text contributed by one frame.
// It is never the full accumulated response.
type Delta struct {
	Content string `json:"content"`
}

// Choice is one candidate's fragment within a frame. Index disambiguates
// which candidate the fragment belongs to when n > 1 was requested.
type Choice struct {
	Delta        Delta         `json:"delta"`
	Index        int           `json:"index"`
	FinishReason *FinishReason `json:"finish_reason,omitempty"`
}

// Response is one decoded unit of the stream. An instance is ephemeral:
// decoded from one chunk, read, and discarded.
type Response struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   Model    `json:"model"`
	Choices []Choice `json:"choices"`
}

// Text returns the nth choice's delta content.
// ok is false when no such choice exists.
func (r *Response) Text(n int) (text string, ok bool) {
	if n < 0 || n >= len(r.Choices) {
		return "", false
	}
	return r.Choices[n].Delta.Content, true
}

// doneMarker terminates the stream after the final frame.
var doneMarker = []byte("[DONE]")

// IsDone reports whether a stripped chunk is the stream terminator.
func IsDone(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), doneMarker)
}

// Decode parses one stripped chunk into a Response frame.
//
// Empty chunks, the terminator marker, and malformed JSON all fail to
// decode. Those are expected noise in the stream — the policy is to skip
// the chunk and keep pulling, not to abort.
func Decode(data []byte) (*Response, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmptyChunk
	}
	if bytes.Equal(trimmed, doneMarker) {
		return nil, ErrStreamDone
	}

	var resp Response
	if err := json.Unmarshal(trimmed, &resp); err != nil {
		return nil, fmt.Errorf("chat: decode frame: %w", err)
	}
	return &resp, nil
}
