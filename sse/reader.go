// Package sse re-segments a raw byte stream on the event-stream line
// protocol. It is the robust alternative to fixed-offset marker stripping:
// it buffers raw bytes and splits on the protocol's actual framing (a field
// line per event, a blank line between events), so it stays correct when a
// physical chunk splits an event or batches several events together.
package sse

import (
	"bufio"
	"io"
	"strings"
)

// Event is one server-sent event reassembled from the stream.
type Event struct {
	// Name is the event type from an "event:" line, if any.
	Name string
	// Data is the payload from the "data:" line(s). Lines of multi-line
	// payloads are joined with newlines.
	Data string
	// ID is the event ID from an "id:" line, if any.
	ID string
}

// Bytes returns the event payload as a byte slice, ready for frame decoding.
func (e *Event) Bytes() []byte {
	return []byte(e.Data)
}

// Reader reassembles server-sent events from a byte stream.
// It is single-pass: events are consumed in arrival order.
type Reader struct {
	scanner *bufio.Scanner
	body    io.ReadCloser
}

// NewReader wraps a response body in an event reader.
// Closing the reader closes the body.
func NewReader(body io.ReadCloser) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(body),
		body:    body,
	}
}

// Next returns the next event, blocking until one is fully buffered.
// It returns io.EOF when the stream ends.
func (r *Reader) Next() (*Event, error) {
	event := &Event{}
	var data []string

	for r.scanner.Scan() {
		line := r.scanner.Text()

		if line == "" {
			// Blank line terminates an event.
			if data != nil {
				event.Data = strings.Join(data, "\n")
				return event, nil
			}
			continue
		}
		if line[0] == ':' {
			continue // comment / keep-alive
		}

		field, value, _ := strings.Cut(line, ":")
		// A single space after the colon is part of the framing, not the value.
		value = strings.TrimPrefix(value, " ")

		switch field {
		case "data":
			data = append(data, value)
		case "event":
			event.Name = value
		case "id":
			event.ID = value
		}
	}

	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	if data != nil {
		// The connection closed mid-event; surface what arrived.
		event.Data = strings.Join(data, "\n")
		return event, nil
	}
	return nil, io.EOF
}

// Close releases the underlying stream.
func (r *Reader) Close() error {
	return r.body.Close()
}
