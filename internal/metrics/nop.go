// Package metrics provides the built-in metrics collector implementations for
// the lotto library.
package metrics

import "github.com/dbyte/lotto/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordGames discards the per-worker game count.
func (n *NopMetrics) RecordGames(_ /* workerID */ int, _ /* games */ uint64) {
	// No-op
}

// RecordWin discards the win metric.
func (n *NopMetrics) RecordWin(_ /* workerID */ int, _ /* games */ uint64) {
	// No-op
}

// RecordProgressPublish discards the progress publish counter.
func (n *NopMetrics) RecordProgressPublish(_ /* workerID */ int) {
	// No-op
}

// RecordSearchDuration discards the search duration metric.
func (n *NopMetrics) RecordSearchDuration(_ /* seconds */ float64) {
	// No-op
}

// RecordThroughput discards the throughput metric.
func (n *NopMetrics) RecordThroughput(_ /* gamesPerSecond */ float64) {
	// No-op
}
