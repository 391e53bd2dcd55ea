package types

// Sink consumes drained progress and win messages, one at a time, in arrival
// order. Each message is plain display text with no further structure.
//
// The coordinator calls Emit from its own goroutine only, so implementations
// do not need to be safe for concurrent use. Emit must not block indefinitely;
// a slow sink delays worker teardown.
type Sink interface {
	Emit(msg string)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(msg string)

// Emit calls f(msg).
func (f SinkFunc) Emit(msg string) {
	f(msg)
}
