// Package testing provides test utilities for the lotto library.
//
// This package offers helpers for setting up test environments, particularly
// an embedded NATS server for relay integration testing. It follows Go's
// convention of providing testing utilities in a dedicated package (similar
// to net/http/httptest).
//
// Key utilities:
//   - StartEmbeddedNATS: Single in-process NATS server with automatic cleanup
//   - NewTestLogger: Logger that writes to the testing.T log
//
// Example usage:
//
//	import (
//	    "testing"
//	    lottotest "github.com/dbyte/lotto/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    _, nc := lottotest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	}
package testing
