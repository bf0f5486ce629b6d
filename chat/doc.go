// Package chat implements the request/response model for streaming chat
// completions and a client bound to the chat completions endpoint.
//
// # Building a request
//
// Payloads are created through [Builder], which carries documented defaults
// and validates at [Builder.Build] time:
//
//	payload, err := chat.NewBuilder().
//	    SystemMessage("You are terse.").
//	    UserMessage("Tell me a joke").
//	    Build()
//
// # Streaming a response
//
// [Client.Send] returns a one-shot stream of framed byte chunks. Each chunk
// is decoded into a [Response] frame on the caller's side; chunks that do not
// decode (keep-alives, the [DONE] terminator, frames split across chunk
// boundaries) are skipped:
//
//	stream, err := client.Send(ctx, payload)
//	defer stream.Close()
//	for {
//	    chunk, err := stream.Next()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    frame, err := chat.Decode(chunk.Data)
//	    if err != nil {
//	        continue
//	    }
//	    if text, ok := frame.Text(0); ok {
//	        fmt.Print(text)
//	    }
//	}
//
// Each frame carries only the incremental fragment for each choice; callers
// accumulate Text(0) across frames to reconstruct the full response.
package chat
