// Package relay forwards drained search progress messages to external
// observers over NATS.
//
// The relay implements the lotto Sink interface: every message the
// coordinator drains from the progress bus is republished, in arrival order,
// on the subject "lotto.progress.<runID>". Observers subscribe with a plain
// NATS subscription; a long-running search can then be followed from outside
// the process:
//
//	sink, err := relay.NewNATS(nc, searcher.RunID(), nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s, err := lotto.NewSearcher(&cfg, ticket, lotto.WithSink(sink))
//
// Publishing is best effort: a failed publish is logged and dropped, it never
// fails or stalls the search itself.
package relay
