package lotto

import "errors"

// Sentinel errors returned by the Searcher and by ticket validation.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidTicket wraps all ticket validation failures.
	ErrInvalidTicket = errors.New("invalid ticket")

	// ErrNoNumbers is returned when the ticket series contains no numbers.
	ErrNoNumbers = errors.New("ticket series has no numbers")

	// ErrTooManyNumbers is returned when the ticket series exceeds the maximum length.
	ErrTooManyNumbers = errors.New("ticket series has too many numbers")

	// ErrNumberOutOfRange is returned when a series number lies outside the configured range.
	ErrNumberOutOfRange = errors.New("series number out of range")

	// ErrDuplicateNumber is returned when the ticket series contains the same number twice.
	ErrDuplicateNumber = errors.New("duplicate number in ticket series")

	// ErrBonusOutOfRange is returned when the bonus number lies outside the configured range.
	ErrBonusOutOfRange = errors.New("bonus number out of range")

	// ErrBonusNotDistinct is returned when the bonus number also appears in the ticket series.
	ErrBonusNotDistinct = errors.New("bonus number contained in ticket series")

	// ErrAlreadyRun is returned when Run is called on a Searcher that already ran.
	// A Searcher performs exactly one search; create a new one for another run.
	ErrAlreadyRun = errors.New("searcher already ran")

	// ErrBusNotInitialized is returned when the progress bus is missing at drain
	// time. This is a setup bug, not a runtime condition; the run is aborted.
	ErrBusNotInitialized = errors.New("progress bus not initialized")

	// ErrWorkerFailed is returned when a worker terminated abnormally. The
	// summary would be inaccurate, so the whole run fails instead.
	ErrWorkerFailed = errors.New("worker failed")
)
