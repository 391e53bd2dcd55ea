package lotto

// Hooks contains optional lifecycle callbacks.
//
// Callbacks are invoked synchronously from worker goroutines; keep them fast
// and do not block. A nil Hooks value or a nil callback field disables the
// corresponding notification.
type Hooks struct {
	// OnWin fires when a worker reproduces the ticket, before the worker sets
	// the shared stop flag. It may fire more than once per run: several
	// workers can win independently before all of them observe the flag.
	//
	// The draw is an independent copy and safe to retain.
	OnWin func(workerID int, draw Draw, games uint64)
}
