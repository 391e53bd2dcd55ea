package lotto

import "sync/atomic"

// searchState is the single piece of mutable state shared by all workers of
// one search run.
//
// The win flag only ever transitions unset → set and is never reset. Setting
// it is idempotent: several workers may find a winning draw before any of them
// observes the flag, and each of them sets it redundantly. That race is
// accepted; correctness only requires that every worker eventually observes
// the set flag and stops, not that exactly one winner is recognized.
//
// The state is passed explicitly into every worker at spawn time instead of
// living in a package-level variable, so the dependency is visible in the
// constructor and independent runs never interfere.
type searchState struct {
	won       atomic.Bool
	cancelled atomic.Bool
}

// observe reports whether a win has been signalled.
func (s *searchState) observe() bool {
	return s.won.Load()
}

// signalWin marks the search as won. Safe to call from any worker, any number
// of times.
func (s *searchState) signalWin() {
	s.won.Store(true)
}

// cancel requests all workers to stop without a win. Used when the run
// context is cancelled or a worker failed.
func (s *searchState) cancel() {
	s.cancelled.Store(true)
}

// done reports whether workers should stop, for any reason.
func (s *searchState) done() bool {
	return s.won.Load() || s.cancelled.Load()
}
