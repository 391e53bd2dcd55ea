package lotto

// Option configures a Searcher with optional dependencies.
type Option func(*searcherOptions)

// searcherOptions holds optional Searcher configuration.
type searcherOptions struct {
	logger  Logger
	metrics MetricsCollector
	sink    Sink
	hooks   *Hooks
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewSearcher
//
// Example:
//
//	logger := logging.NewSlog(slog.Default())
//	s, err := lotto.NewSearcher(&cfg, ticket, lotto.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *searcherOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewSearcher
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *searcherOptions) {
		o.metrics = metrics
	}
}

// WithSink sets the sink that receives drained progress and win messages.
//
// Without this option messages are forwarded to the logger at Info level,
// which means they are silently discarded when no logger is injected either.
//
// Parameters:
//   - sink: Sink implementation (e.g. relay.NewNATS, or a SinkFunc)
//
// Returns:
//   - Option: Functional option for NewSearcher
//
// Example:
//
//	s, err := lotto.NewSearcher(&cfg, ticket,
//	    lotto.WithSink(lotto.SinkFunc(func(msg string) { fmt.Println(msg) })))
func WithSink(sink Sink) Option {
	return func(o *searcherOptions) {
		o.sink = sink
	}
}

// WithHooks sets lifecycle event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewSearcher
//
// Example:
//
//	hooks := &lotto.Hooks{
//	    OnWin: func(workerID int, draw lotto.Draw, games uint64) {
//	        fmt.Printf("worker %d won with %s\n", workerID, draw)
//	    },
//	}
//	s, err := lotto.NewSearcher(&cfg, ticket, lotto.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *searcherOptions) {
		o.hooks = hooks
	}
}
