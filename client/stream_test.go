package client

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// scriptedBody replays a fixed sequence of reads, one script entry per call.
// A scripted error is sticky, like a broken connection.
type scriptedBody struct {
	reads  [][]byte
	errs   []error
	sticky error
	pos    int
	closed bool
}

func (b *scriptedBody) Read(p []byte) (int, error) {
	if b.pos >= len(b.reads) {
		if b.sticky != nil {
			return 0, b.sticky
		}
		return 0, io.EOF
	}
	data, err := b.reads[b.pos], b.errs[b.pos]
	b.pos++
	if err != nil {
		b.sticky = err
	}
	return copy(p, data), err
}

func (b *scriptedBody) Close() error {
	b.closed = true
	return nil
}

func scripted(chunks ...[]byte) *scriptedBody {
	return &scriptedBody{reads: chunks, errs: make([]error, len(chunks))}
}

func TestStream_StripExactness(t *testing.T) {
	raw := []byte(`data: {"id":"chatcmpl-1"}`)
	stream := newStream(scripted(raw))

	chunk, err := stream.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chunk.Err != nil {
		t.Fatalf("unexpected chunk error: %v", chunk.Err)
	}
	if want := raw[6:]; !bytes.Equal(chunk.Data, want) {
		t.Errorf("chunk data = %q, want %q", chunk.Data, want)
	}

	if _, err := stream.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestStream_ShortChunk(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{"marker only", []byte("data: ")},
		{"shorter than marker", []byte("\n\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := newStream(scripted(tt.raw))
			chunk, err := stream.Next()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(chunk.Data) != 0 {
				t.Errorf("chunk data = %q, want empty", chunk.Data)
			}
		})
	}
}

func TestStream_ChunksInArrivalOrder(t *testing.T) {
	stream := newStream(scripted(
		[]byte("data: first"),
		[]byte("data: second"),
		[]byte("data: third"),
	))

	var got []string
	for {
		chunk, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		got = append(got, string(chunk.Data))
	}

	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("got %d chunks, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("chunk[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStream_ErrorYieldedOnceThenEOF(t *testing.T) {
	readErr := errors.New("connection reset")
	body := &scriptedBody{
		reads: [][]byte{[]byte("data: ok"), nil},
		errs:  []error{nil, readErr},
	}
	stream := newStream(body)

	chunk, err := stream.Next()
	if err != nil || chunk.Err != nil {
		t.Fatalf("first chunk should succeed: %v / %v", err, chunk.Err)
	}

	chunk, err = stream.Next()
	if err != nil {
		t.Fatalf("error chunks are items, not terminal errors: %v", err)
	}
	if !errors.Is(chunk.Err, readErr) {
		t.Fatalf("chunk.Err = %v, want %v", chunk.Err, readErr)
	}

	// At most one error item; the sequence then ends.
	if _, err := stream.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF after error item, got %v", err)
	}
	if _, err := stream.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF to be sticky, got %v", err)
	}
}

func TestStream_DataBeforeSimultaneousError(t *testing.T) {
	// A read returning both data and an error yields the data now and the
	// error on the next pull.
	readErr := errors.New("broken pipe")
	body := &scriptedBody{
		reads: [][]byte{[]byte("data: tail")},
		errs:  []error{readErr},
	}
	stream := newStream(body)

	chunk, err := stream.Next()
	if err != nil || chunk.Err != nil {
		t.Fatalf("expected data chunk first: %v / %v", err, chunk.Err)
	}
	if string(chunk.Data) != "tail" {
		t.Errorf("chunk data = %q, want %q", chunk.Data, "tail")
	}

	chunk, err = stream.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !errors.Is(chunk.Err, readErr) {
		t.Errorf("chunk.Err = %v, want %v", chunk.Err, readErr)
	}
}

func TestStream_DataSurvivesNextPull(t *testing.T) {
	stream := newStream(scripted(
		[]byte("data: first"),
		[]byte("data: second"),
	))

	first, err := stream.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := stream.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(first.Data) != "first" {
		t.Errorf("earlier chunk corrupted by later pull: %q", first.Data)
	}
}

func TestStream_Close(t *testing.T) {
	body := scripted([]byte("data: unread"))
	stream := newStream(body)

	if err := stream.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !body.closed {
		t.Error("underlying body should be closed")
	}
	if err := stream.Close(); err != nil {
		t.Errorf("second close should be a no-op, got %v", err)
	}

	if _, err := stream.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next after Close should return io.EOF, got %v", err)
	}
}

func TestStream_Events(t *testing.T) {
	// One event split across physical chunks and two events batched into
	// one chunk: exactly the cases fixed-offset stripping cannot handle.
	body := &scriptedBody{
		reads: [][]byte{
			[]byte("data: {\"part\""),
			[]byte(":1}\n\ndata: {\"part\":2}\n\ndata: {\"part\":3}\n\n"),
		},
		errs: []error{nil, nil},
	}
	stream := newStream(body)

	events := stream.Events()
	var got []string
	for {
		event, err := events.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, event.Data)
	}

	want := []string{`{"part":1}`, `{"part":2}`, `{"part":3}`}
	if len(got) != len(want) {
		t.Fatalf("got %d events %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
