package relay

import (
	"errors"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/dbyte/lotto/internal/logging"
	"github.com/dbyte/lotto/types"
)

// ErrConnRequired is returned when the NATS connection is nil.
var ErrConnRequired = errors.New("NATS connection is required")

// ErrRunIDRequired is returned when the run ID is empty.
var ErrRunIDRequired = errors.New("run ID is required")

// subjectPrefix is the common prefix of all relay subjects.
const subjectPrefix = "lotto.progress"

// NATS republishes progress messages on a per-run NATS subject.
type NATS struct {
	nc      *nats.Conn
	subject string
	logger  types.Logger
}

// Compile-time assertion that NATS implements Sink.
var _ types.Sink = (*NATS)(nil)

// NewNATS creates a relay sink publishing to "lotto.progress.<runID>".
//
// Parameters:
//   - nc: Established NATS connection; not closed by the relay
//   - runID: Run identifier, typically Searcher.RunID()
//   - logger: Logger for dropped publishes; nil discards them silently
//
// Returns:
//   - *NATS: Initialized relay sink
//   - error: ErrConnRequired or ErrRunIDRequired
func NewNATS(nc *nats.Conn, runID string, logger types.Logger) (*NATS, error) {
	if nc == nil {
		return nil, ErrConnRequired
	}
	if runID == "" {
		return nil, ErrRunIDRequired
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	return &NATS{
		nc:      nc,
		subject: fmt.Sprintf("%s.%s", subjectPrefix, runID),
		logger:  logger,
	}, nil
}

// Subject returns the subject this relay publishes to.
func (r *NATS) Subject() string {
	return r.subject
}

// Emit publishes one message. Failures are logged and dropped so a flaky
// observer connection never stalls the search.
func (r *NATS) Emit(msg string) {
	if err := r.nc.Publish(r.subject, []byte(msg)); err != nil {
		r.logger.Warn("dropped progress message", "subject", r.subject, "error", err)
	}
}

// Flush waits until all published messages have been processed by the server.
// Call after the search completes when delivery of the final burst matters.
func (r *NATS) Flush() error {
	return r.nc.Flush()
}
