package types

// MetricsCollector receives counters and gauges emitted during a search run.
//
// Implementations must be safe for concurrent use: workers report from their
// own goroutines. The library ships a no-op implementation which is used when
// no collector is injected.
type MetricsCollector interface {
	// RecordGames reports the number of games a worker played in total.
	// Called once per worker when it finishes.
	RecordGames(workerID int, games uint64)

	// RecordWin reports a winning draw and the iteration count it took.
	// May be called more than once per run: several workers can win
	// independently before all of them observe the stop flag.
	RecordWin(workerID int, games uint64)

	// RecordProgressPublish counts one throttled progress message.
	RecordProgressPublish(workerID int)

	// RecordSearchDuration reports the elapsed wall-clock time in seconds.
	RecordSearchDuration(seconds float64)

	// RecordThroughput reports the aggregate games-per-second rate.
	RecordThroughput(gamesPerSecond float64)
}
