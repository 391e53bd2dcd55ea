package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNop(t *testing.T) {
	collector := NewNop()

	require.NotNil(t, collector)
	require.IsType(t, &NopMetrics{}, collector)
}

func TestNopMetrics_AllMethodsAreSafe(t *testing.T) {
	collector := NewNop()

	// Should not panic with various inputs
	require.NotPanics(t, func() {
		collector.RecordGames(1, 123456)
		collector.RecordWin(2, 99)
		collector.RecordProgressPublish(3)
		collector.RecordSearchDuration(1.5)
		collector.RecordThroughput(1e6)
	})
}
