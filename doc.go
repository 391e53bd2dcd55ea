// Package lotto provides a parallel brute-force search for a fixed lottery
// ticket: a pool of workers keeps drawing random number series until one of
// them reproduces the ticket, while a coordinator collects throttled progress
// messages and aggregates per-worker statistics.
//
// # Quick Start
//
// Basic usage with default settings:
//
//	import "github.com/dbyte/lotto"
//
//	cfg := lotto.DefaultConfig()
//	ticket := lotto.Ticket{Numbers: []int{1, 45, 38, 5, 23, 19}, Bonus: 13}
//
//	s, err := lotto.NewSearcher(&cfg, ticket)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	summary, err := s.Run(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("played %d games in %v\n", summary.TotalGames, summary.Elapsed)
//
// # Key Features
//
//   - Independent worker draw streams: each worker owns a private PRNG, no
//     locking on the hot path
//   - Single shared stop flag: the first winning worker signals all others
//   - Throttled progress reporting: bounded message volume regardless of
//     iteration speed
//   - Exact accounting: the summary total is the sum of every worker's own
//     iteration count
//
// # Architecture
//
// Each worker runs a tight loop:
//
//	observe stop flag → draw K+1 distinct numbers → count → publish (throttled) → match?
//
// A win publishes an announcement burst, sets the shared flag and every worker
// exits at its next loop top. The coordinator drains the progress bus until the
// last producer handle is released, then joins the workers in spawn order.
//
// # Advanced Usage
//
// Optional dependencies are injected with functional options:
//
//	s, err := lotto.NewSearcher(&cfg, ticket,
//	    lotto.WithLogger(logger),
//	    lotto.WithSink(sink),
//	    lotto.WithHooks(&lotto.Hooks{
//	        OnWin: func(workerID int, draw lotto.Draw, games uint64) {
//	            // react to a winning draw
//	        },
//	    }),
//	)
//
// The relay subpackage provides a Sink that republishes progress messages to a
// NATS subject for external observers.
package lotto
