package lotto

import "sync"

// progressBus is the many-producer, single-consumer stream carrying throttled
// progress snapshots and win announcements from workers to the coordinator.
//
// Producer handles are reference counted: handle() duplicates one, Close()
// releases it, and the underlying channel is closed exactly when the last
// handle, including the coordinator's own, has been released. The
// coordinator must release its handle before draining, otherwise the drain
// waits forever for a sender that will never produce.
//
// Messages arrive in publish order per producer; interleaving across producers
// is undefined.
type progressBus struct {
	mu     sync.Mutex
	refs   int
	closed bool
	ch     chan string
}

// newProgressBus creates a bus with the given channel capacity. Workers block
// on publish only when the consumer falls that far behind.
func newProgressBus(buffer int) *progressBus {
	return &progressBus{ch: make(chan string, buffer)}
}

// handle duplicates a producer handle. Must only be called while at least the
// creating side has not released all handles yet.
func (b *progressBus) handle() *progressHandle {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refs++

	return &progressHandle{bus: b}
}

// messages returns the consuming end. Iteration terminates once every producer
// handle has been released.
func (b *progressBus) messages() <-chan string {
	return b.ch
}

func (b *progressBus) release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refs--
	if b.refs == 0 && !b.closed {
		b.closed = true
		close(b.ch)
	}
}

// progressHandle is one producer's handle on the bus.
//
// A handle belongs to exactly one goroutine; publish is not safe for
// concurrent use on the same handle. Close is idempotent.
type progressHandle struct {
	bus  *progressBus
	once sync.Once
}

// publish enqueues one message. May block briefly when the channel buffer is
// full. Must not be called after Close.
func (h *progressHandle) publish(msg string) {
	h.bus.ch <- msg
}

// Close releases the handle. When the last handle is released the bus channel
// closes and the drain terminates.
func (h *progressHandle) Close() {
	h.once.Do(h.bus.release)
}
