package lotto

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func drainAll(bus *progressBus) []string {
	var msgs []string
	for msg := range bus.messages() {
		msgs = append(msgs, msg)
	}

	return msgs
}

func TestProgressBus_ClosesWhenLastHandleReleased(t *testing.T) {
	bus := newProgressBus(8)

	h1 := bus.handle()
	h2 := bus.handle()

	h1.publish("from h1")
	h2.publish("from h2")
	h1.Close()
	h2.Close()

	msgs := drainAll(bus)
	require.ElementsMatch(t, []string{"from h1", "from h2"}, msgs)
}

func TestProgressBus_HeldHandleBlocksDraining(t *testing.T) {
	bus := newProgressBus(8)

	held := bus.handle()
	released := bus.handle()
	released.Close()

	done := make(chan struct{})
	go func() {
		drainAll(bus)
		close(done)
	}()

	// The drain must not terminate while one handle is still held.
	select {
	case <-done:
		t.Fatal("drain terminated although a producer handle is still held")
	case <-time.After(100 * time.Millisecond):
	}

	held.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("drain did not terminate after the last handle was released")
	}
}

func TestProgressBus_PerProducerOrderPreserved(t *testing.T) {
	bus := newProgressBus(128)

	const producers = 4
	const perProducer = 30

	var wg sync.WaitGroup
	for p := range producers {
		h := bus.handle()

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer h.Close()
			for i := range perProducer {
				h.publish(fmt.Sprintf("%d:%d", p, i))
			}
		}()
	}

	msgs := drainAll(bus)
	wg.Wait()
	require.Len(t, msgs, producers*perProducer)

	// Interleaving across producers is undefined, but each single producer's
	// messages must arrive in publish order.
	next := make(map[string]int)
	for _, msg := range msgs {
		var p, i int
		_, err := fmt.Sscanf(msg, "%d:%d", &p, &i)
		require.NoError(t, err)

		key := fmt.Sprint(p)
		require.Equal(t, next[key], i, "producer %d out of order", p)
		next[key]++
	}
}

func TestProgressHandle_CloseIsIdempotent(t *testing.T) {
	bus := newProgressBus(1)

	h1 := bus.handle()
	h2 := bus.handle()

	// Double close of one handle must not release the other handle's reference.
	h1.Close()
	h1.Close()

	select {
	case _, ok := <-bus.messages():
		require.True(t, ok, "bus closed while a handle is still held")
		t.Fatal("unexpected message")
	default:
	}

	h2.Close()

	_, ok := <-bus.messages()
	require.False(t, ok, "bus must be closed after the last handle is released")
}
