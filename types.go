package lotto

import "github.com/dbyte/lotto/types"

// Re-export interfaces from the types subpackage.
//
// The types subpackage holds the interface definitions so that internal
// packages (logging, metrics) and the relay subpackage can implement them
// without importing the root package. The aliases below give users the
// convenient lotto.Logger, lotto.Sink spellings.
type (
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
	Sink             = types.Sink
	SinkFunc         = types.SinkFunc
)
