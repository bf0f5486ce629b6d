// Package client implements the generic streaming transport: one HTTP
// exchange per Send call, exposed as a lazy, single-pass sequence of framed
// byte chunks.
//
// A [Client] is generic over its payload type and bound to one endpoint.
// Specialized facades (such as the chat package's client) pair it with a
// concrete payload and a fixed endpoint constant.
//
// Send performs exactly one POST with a bearer credential. A non-success
// status fails immediately with a request error carrying the status code —
// no retry, no partial stream. On success the response body is consumed
// through [Stream.Next], which strips the wire protocol's fixed framing
// marker from each chunk as it arrives. A transport-level error during
// streaming is delivered inline as a chunk item rather than tearing the
// sequence down, leaving recovery policy with the caller.
//
// Concurrent Send calls on one client are independent; they share only the
// immutable credential and endpoint. Cancellation is the context's job —
// this layer enforces no timeout of its own.
package client
