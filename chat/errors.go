package chat

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNoMessages is returned by Builder.Build when no messages were staged.
	ErrNoMessages = errors.New("messages are not set")
	// ErrEmptyChunk is returned by Decode for chunks with no payload.
	ErrEmptyChunk = errors.New("chat: empty chunk")
	// ErrStreamDone is returned by Decode for the stream terminator marker.
	ErrStreamDone = errors.New("chat: stream done")
)

// EnumError reports a string outside a closed enum set.
type EnumError struct {
	// Kind names the enum ("role", "model", "finish reason").
	Kind string
	// Value is the rejected string.
	Value string
}

// Error implements the error interface.
func (e *EnumError) Error() string {
	return fmt.Sprintf("chat: %q is not a valid %s", e.Value, e.Kind)
}

// IsEnumError checks if an error is an enum decode error.
func IsEnumError(err error) bool {
	var e *EnumError
	return errors.As(err, &e)
}
