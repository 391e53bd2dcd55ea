package lotto

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink collects emitted messages for assertions. Emit is called from
// the coordinator goroutine while the test goroutine may inspect concurrently.
type recordingSink struct {
	mu   sync.Mutex
	msgs []string
}

func (r *recordingSink) Emit(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recordingSink) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.msgs...)
}

// tinyConfig returns rules for the exhaustively enumerable end-to-end
// scenario: series of up to 3 numbers over [1,5], two workers.
func tinyConfig() Config {
	cfg := TestConfig()
	cfg.MaxNumbers = 3
	cfg.NumberMax = 5

	return cfg
}

func TestNewSearcher_NilConfig(t *testing.T) {
	_, err := NewSearcher(nil, Ticket{Numbers: []int{1}, Bonus: 2})

	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewSearcher_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumberMin = 48 // Range [48,49] cannot hold 6+1 distinct values

	_, err := NewSearcher(&cfg, Ticket{Numbers: []int{48}, Bonus: 49})

	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewSearcher_RejectsMalformedTicketBeforeAnythingRuns(t *testing.T) {
	cfg := tinyConfig()
	sink := &recordingSink{}

	// Duplicate number in the series.
	_, err := NewSearcher(&cfg, Ticket{Numbers: []int{1, 1, 3}, Bonus: 4}, WithSink(sink))

	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidTicket)
	require.ErrorIs(t, err, ErrDuplicateNumber)

	// Rejection happens before any worker spawns: nothing may be published.
	require.Empty(t, sink.all())
}

func TestNewSearcher_DefaultsForOptionalDependencies(t *testing.T) {
	cfg := tinyConfig()

	s, err := NewSearcher(&cfg, Ticket{Numbers: []int{1, 2, 3}, Bonus: 4})

	require.NoError(t, err)
	require.NotNil(t, s)
	require.NotNil(t, s.logger)  // defaults to nop logger
	require.NotNil(t, s.metrics) // defaults to nop collector
	require.NotNil(t, s.sink)    // defaults to logger forwarding
	require.Len(t, s.RunID(), 8)
}

func TestSearcher_EndToEndTinyRange(t *testing.T) {
	cfg := tinyConfig()
	sink := &recordingSink{}

	var winMu sync.Mutex
	var wins []Draw

	hooks := &Hooks{
		OnWin: func(_ /* workerID */ int, draw Draw, games uint64) {
			winMu.Lock()
			defer winMu.Unlock()
			wins = append(wins, draw)
			assert.Positive(t, games)
		},
	}

	ticket := Ticket{Numbers: []int{1, 2, 3}, Bonus: 4}
	s, err := NewSearcher(&cfg, ticket, WithSink(sink), WithHooks(hooks))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	summary, err := s.Run(ctx)
	require.NoError(t, err)

	// Exact accounting: the total is the sum of per-worker counts, one slot
	// per spawned worker, and at least one game was needed for the win.
	require.Len(t, summary.PerWorker, cfg.Parallelism-1)
	var sum uint64
	for _, games := range summary.PerWorker {
		sum += games
	}
	require.Equal(t, sum, summary.TotalGames)
	require.Positive(t, summary.TotalGames)
	require.Equal(t, s.RunID(), summary.RunID)

	// The space is tiny: 4 distinct pulls from [1,5] give 120 ordered
	// outcomes, 6 of which win (bonus slot 4, any order of {1,2,3}), so each
	// game wins with probability 1/20. Missing 10000 times in a row has
	// probability (19/20)^10000; a total past this bound means the draw or
	// match logic is broken, not bad luck.
	require.Less(t, summary.TotalGames, uint64(10_000))

	// The winning draw reported through the hook reproduces the ticket.
	winMu.Lock()
	defer winMu.Unlock()
	require.NotEmpty(t, wins)
	for _, draw := range wins {
		require.Equal(t, ticket.Bonus, draw.Bonus)
		require.ElementsMatch(t, ticket.Numbers, draw.Numbers)
	}

	// The win burst and the summary went through the sink.
	msgs := sink.all()
	require.NotEmpty(t, msgs)
	joined := strings.Join(msgs, "\n")
	require.Contains(t, joined, "You won!")
	require.Contains(t, joined, "pulled your ticket after")
	require.Contains(t, joined, "Summary: played")

	if summary.Elapsed < time.Second {
		require.Zero(t, summary.GamesPerSecond, "sub-second runs round the rate down to zero")
	}
}

func TestSearcher_RunTwice(t *testing.T) {
	cfg := tinyConfig()

	s, err := NewSearcher(&cfg, Ticket{Numbers: []int{1, 2, 3}, Bonus: 4})
	require.NoError(t, err)

	_, err = s.Run(context.Background())
	require.NoError(t, err)

	_, err = s.Run(context.Background())
	require.ErrorIs(t, err, ErrAlreadyRun)
}

func TestSearcher_ContextCancellationStopsTheRun(t *testing.T) {
	// Full default range: a win within the test's lifetime is practically
	// impossible, so only cancellation can end the run.
	cfg := TestConfig()

	s, err := NewSearcher(&cfg, Ticket{Numbers: []int{1, 45, 38, 5, 23, 19}, Bonus: 13})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	summary, err := s.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Positive(t, summary.TotalGames, "workers played games before the cancellation")
}

func TestSearcher_StatsTracksLiveProgress(t *testing.T) {
	cfg := TestConfig()

	s, err := NewSearcher(&cfg, Ticket{Numbers: []int{1, 45, 38, 5, 23, 19}, Bonus: 13})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = s.Run(ctx)
	}()

	require.Eventually(t, func() bool {
		return s.Stats() > 0
	}, 5*time.Second, 5*time.Millisecond, "live counter never moved")

	cancel()
	<-done
}

func TestSearcher_ThrottledProgressMessages(t *testing.T) {
	cfg := TestConfig()
	cfg.ProgressInterval = time.Millisecond
	sink := &recordingSink{}

	s, err := NewSearcher(&cfg, Ticket{Numbers: []int{1, 45, 38, 5, 23, 19}, Bonus: 13},
		WithSink(sink))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	_, err = s.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	var progress int
	for _, msg := range sink.all() {
		if strings.Contains(msg, "running:") {
			progress++
		}
	}
	require.Positive(t, progress, "expected throttled progress snapshots")
}

func TestSearcher_WorkerFailureFailsTheRun(t *testing.T) {
	cfg := tinyConfig()

	// A panicking hook runs on the worker goroutine, so it exercises the
	// abnormal-termination path: the run must fail instead of reporting an
	// inaccurate summary.
	hooks := &Hooks{
		OnWin: func(_ int, _ Draw, _ uint64) {
			panic("hook exploded")
		},
	}

	s, err := NewSearcher(&cfg, Ticket{Numbers: []int{1, 2, 3}, Bonus: 4}, WithHooks(hooks))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err = s.Run(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrWorkerFailed)
	require.Contains(t, err.Error(), "panicked")
}
