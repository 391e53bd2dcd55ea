package lotto

import (
	"context"
	"encoding/binary"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v4"
	"github.com/zeebo/xxh3"

	"github.com/dbyte/lotto/internal/logging"
	"github.com/dbyte/lotto/internal/metrics"
)

// Searcher coordinates one brute-force search run for a fixed ticket.
//
// Searcher is the main entry point of the lotto library. It handles:
//   - Validating the configuration and the ticket before any worker spawns
//   - Spawning the worker pool, one worker per logical unit minus the
//     coordinating goroutine
//   - Draining the progress bus and forwarding messages to the sink in
//     arrival order
//   - Joining workers and aggregating exact per-worker game counts
//
// Thread Safety:
//   - All public methods are safe for concurrent use
//   - Run may be called exactly once per Searcher
//
// Lifecycle:
//   - Create with NewSearcher()
//   - Call Run() to execute the search to completion
//   - Read live progress with Stats() from any goroutine while Run blocks
//
// Testing:
// Consumers can define minimal interfaces for mocking:
//
//	type TicketSearcher interface {
//	    Run(ctx context.Context) (lotto.Summary, error)
//	}
type Searcher struct {
	cfg    Config
	ticket Ticket

	// Optional dependencies
	logger  Logger
	metrics MetricsCollector
	sink    Sink
	hooks   *Hooks

	// Shared run state
	runID  string
	state  *searchState
	bus    *progressBus
	coord  *progressHandle
	played *xsync.Counter
	ran    atomic.Bool
}

// Summary is the aggregate result of one completed search run.
type Summary struct {
	// RunID is the short identifier of this run, also used in log fields and
	// the relay subject.
	RunID string

	// TotalGames is the exact sum of every worker's own game count.
	TotalGames uint64

	// PerWorker holds each worker's final game count in spawn order.
	PerWorker []uint64

	// Elapsed is the wall-clock duration from the first spawn to the last join.
	Elapsed time.Duration

	// GamesPerSecond is TotalGames divided by whole elapsed seconds, zero when
	// the run finished in under a second.
	GamesPerSecond uint64
}

// NewSearcher creates a Searcher for the given configuration and ticket.
//
// Missing configuration values are filled with defaults, then the
// configuration and the ticket are validated. A malformed ticket is rejected
// here, before any worker spawns and before anything is published.
//
// Returns a concrete *Searcher struct following the "accept interfaces,
// return structs" principle.
//
// Parameters:
//   - cfg: Runtime configuration; modified in place by SetDefaults
//   - ticket: The combination to search for
//   - opts: Optional configuration (logger, metrics, sink, hooks)
//
// Returns:
//   - *Searcher: Initialized searcher instance
//   - error: Validation error if the configuration or the ticket is invalid
//
// Example:
//
//	cfg := lotto.DefaultConfig()
//	ticket := lotto.Ticket{Numbers: []int{1, 45, 38, 5, 23, 19}, Bonus: 13}
//	s, err := lotto.NewSearcher(&cfg, ticket)
func NewSearcher(cfg *Config, ticket Ticket, opts ...Option) (*Searcher, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	// Fill in missing configuration values with defaults
	SetDefaults(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Validate the ticket against the configured rules
	if err := ticket.Validate(cfg); err != nil {
		return nil, err
	}

	// Apply options
	options := &searcherOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	sink := options.sink
	if sink == nil {
		sink = SinkFunc(func(msg string) {
			loggerInstance.Info(msg)
		})
	}

	s := &Searcher{
		cfg:     *cfg,
		ticket:  ticket.clone(),
		logger:  loggerInstance,
		metrics: metricsCollector,
		sink:    sink,
		hooks:   options.hooks,
		runID:   newRunID(ticket),
		state:   &searchState{},
		bus:     newProgressBus(cfg.PublishBuffer),
		played:  xsync.NewCounter(),
	}

	// The coordinator holds its own producer handle until Run releases it
	// right before draining.
	s.coord = s.bus.handle()

	return s, nil
}

// RunID returns the short identifier of this search run.
func (s *Searcher) RunID() string {
	return s.runID
}

// Stats returns a live snapshot of the total games played so far across all
// workers. Safe to call from any goroutine while Run is blocking.
func (s *Searcher) Stats() uint64 {
	v := s.played.Value()
	if v < 0 {
		return 0
	}

	return uint64(v)
}

// Run executes the search to completion and returns the aggregate summary.
//
// Run spawns Parallelism-1 workers, each with its own ticket copy, PRNG and
// producer handle. It then releases the coordinator's own producer handle,
// drains the progress bus to completion, forwarding every message to the
// sink in arrival order, joins the workers in spawn order, and sums their
// returned game counts.
//
// The search has no stop condition other than a winning draw; a win is
// eventually inevitable because the finite sample space is resampled every
// iteration. Cancelling the context additionally stops the run early, in
// which case the partial summary is returned together with ctx.Err().
//
// A worker that terminates abnormally makes the whole run fail with
// ErrWorkerFailed: the summary would be inaccurate, which is worse than no
// summary.
//
// Parameters:
//   - ctx: Context for early cancellation
//
// Returns:
//   - Summary: Aggregate totals, elapsed time and throughput
//   - error: ErrAlreadyRun, ErrWorkerFailed, or ctx.Err() on cancellation
func (s *Searcher) Run(ctx context.Context) (Summary, error) {
	if !s.ran.CompareAndSwap(false, true) {
		return Summary{}, ErrAlreadyRun
	}

	// Guard: draining without a receiving end cannot be recovered from.
	if s.bus == nil || s.coord == nil {
		return Summary{}, ErrBusNotInitialized
	}

	numWorkers := s.cfg.Parallelism - 1
	s.logger.Debug("starting search",
		"run_id", s.runID,
		"workers", numWorkers,
		"ticket", s.ticket.Numbers,
		"bonus", s.ticket.Bonus,
	)

	start := time.Now()

	// Translate context cancellation into the shared stop request.
	watchDone := make(chan struct{})
	defer close(watchDone)
	go func() {
		select {
		case <-ctx.Done():
			s.state.cancel()
		case <-watchDone:
		}
	}()

	// Spawn the worker pool. Slots are indexed by spawn order; each goroutine
	// writes only its own slot.
	counts := make([]uint64, numWorkers)
	failures := make([]error, numWorkers)

	var wg sync.WaitGroup
	for i := range numWorkers {
		w := newWorker(i+1, s.ticket.clone(), &s.cfg, s.state, s.bus.handle(),
			s.metrics, s.hooks, s.played)

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					failures[i] = fmt.Errorf("%w: worker %d panicked: %v", ErrWorkerFailed, w.id, r)
					// Without this the surviving workers would spin forever
					// and the drain below would never terminate.
					s.state.cancel()
				}
			}()

			counts[i] = w.run()
		}()
	}

	// Release the coordinator's producer handle before draining; a held
	// duplicate would keep the bus open forever.
	s.coord.Close()

	// Drain the bus until the last worker released its handle, forwarding
	// messages in arrival order.
	for msg := range s.bus.messages() {
		s.sink.Emit(msg)
	}
	s.logger.Debug("progress bus closed, waiting for workers to tear down", "run_id", s.runID)

	// Join all workers, then account in spawn order.
	wg.Wait()

	elapsed := time.Since(start)

	var total uint64
	for i, games := range counts {
		total += games
		s.logger.Debug("worker closed", "worker", i+1, "games", games)
	}

	summary := Summary{
		RunID:      s.runID,
		TotalGames: total,
		PerWorker:  counts,
		Elapsed:    elapsed,
	}
	if secs := uint64(elapsed.Seconds()); secs > 0 {
		summary.GamesPerSecond = total / secs
	}

	for _, failure := range failures {
		if failure != nil {
			s.logger.Error("search aborted", "run_id", s.runID, "error", failure)

			return Summary{}, failure
		}
	}

	s.metrics.RecordSearchDuration(elapsed.Seconds())
	if elapsed > 0 {
		s.metrics.RecordThroughput(float64(total) / elapsed.Seconds())
	}

	if !s.state.observe() {
		// Stopped by cancellation, not by a win.
		return summary, ctx.Err()
	}

	s.emitSummary(summary)

	return summary, nil
}

// emitSummary sends the closing summary block through the sink, framed the
// same way as a win announcement.
func (s *Searcher) emitSummary(summary Summary) {
	sep := strings.Repeat("~", separatorWidth)

	s.sink.Emit(sep)
	s.sink.Emit(fmt.Sprintf("Summary: played %d games until win.", summary.TotalGames))
	s.sink.Emit(sep)

	s.logger.Debug("search finished",
		"run_id", summary.RunID,
		"total_games", summary.TotalGames,
		"duration_seconds", int(summary.Elapsed.Seconds()),
		"games_per_second", summary.GamesPerSecond,
	)
}

// newRunID derives a short run identifier from the ticket and the current
// time. Collisions across runs are harmless; the ID only correlates log lines
// and relay subjects.
func newRunID(t Ticket) string {
	buf := make([]byte, 0, 8*(len(t.Numbers)+2))
	for _, n := range t.Numbers {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(n))
	}
	buf = binary.LittleEndian.AppendUint64(buf, uint64(t.Bonus))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(time.Now().UnixNano()))

	return fmt.Sprintf("%08x", xxh3.Hash(buf)&0xffffffff)
}
