package client

import (
	"io"

	"github.com/linux-techtips/cordyceps/sse"
)

// markerLen is the width of the "data: " framing marker the wire protocol
// prepends to each event payload. The marker bytes are discarded without
// inspecting their content.
const markerLen = 6

// Chunk is one framed unit of a streamed response body.
type Chunk struct {
	// Data is the chunk payload with the framing marker removed.
	Data []byte
	// Err is set when the chunk arrived with a transport-level error.
	// Data is empty in that case.
	Err error
}

// Stream is a lazy, single-pass sequence of framed chunks bound to one HTTP
// exchange. It is not restartable: every Send call produces a fresh one.
//
// Chunks are read on demand; nothing is buffered ahead of the caller beyond
// what the underlying chunked-transfer read performs. The assumption that
// each physical chunk carries exactly one marker-prefixed event is the wire
// protocol's observed behavior, not something this type validates; callers
// that need re-segmentation on the actual framing use Events instead.
type Stream struct {
	body   io.ReadCloser
	buf    []byte
	failed bool
	closed bool
}

func newStream(body io.ReadCloser) *Stream {
	return &Stream{
		body: body,
		buf:  make([]byte, 32*1024),
	}
}

// Next returns the next chunk in arrival order, blocking until one arrives
// on the wire or the connection closes. A transport-level error is yielded
// exactly once as a chunk item; after that, and once the connection closes,
// Next returns io.EOF.
func (s *Stream) Next() (Chunk, error) {
	if s.failed || s.closed {
		return Chunk{}, io.EOF
	}

	for {
		n, err := s.body.Read(s.buf)
		if n > 0 {
			// Defer a simultaneous error to the next pull so chunk data
			// and the error item stay distinct.
			return Chunk{Data: strip(s.buf[:n])}, nil
		}
		if err == io.EOF {
			return Chunk{}, io.EOF
		}
		if err != nil {
			s.failed = true
			return Chunk{Err: err}, nil
		}
	}
}

// Events hands the remaining body to an event reader that re-segments on
// the protocol's line framing instead of assuming chunk/event alignment.
// The reader takes over the body: do not mix it with further Next calls.
func (s *Stream) Events() *sse.Reader {
	return sse.NewReader(s.body)
}

// Close releases the underlying connection. It is safe to call more than
// once, and must be called when abandoning the stream early.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.body.Close()
}

// strip removes the fixed-width framing marker from a raw chunk, copying
// the remainder so the yielded bytes stay valid across pulls. Chunks no
// longer than the marker reduce to an empty payload.
func strip(raw []byte) []byte {
	if len(raw) <= markerLen {
		return []byte{}
	}
	data := make([]byte, len(raw)-markerLen)
	copy(data, raw[markerLen:])
	return data
}
