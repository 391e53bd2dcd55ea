package lotto

import (
	"math/rand/v2"
	"slices"
)

// drawer produces candidate draws for a single worker.
//
// Each worker owns its own drawer: the PRNG is private, so draw streams across
// workers are fully independent and the hot path needs no synchronization. The
// game buffer is reused between iterations; draw() returns it in place, valid
// until the next call.
type drawer struct {
	rng *rand.Rand
	min int
	n   int   // number of drawable values
	buf []int // len == series length + 1, last slot is the bonus
}

// newDrawer creates a drawer for the given rules and game size.
//
// Parameters:
//   - cfg: Game rules providing the value range
//   - pulls: Buffer size per game (series length plus one for the bonus)
func newDrawer(cfg *Config, pulls int) *drawer {
	return &drawer{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		min: cfg.NumberMin,
		n:   cfg.rangeSize(),
		buf: make([]int, pulls),
	}
}

// draw fills the game buffer with pairwise-distinct numbers from the range
// and returns it. The last slot is the drawn bonus by position.
//
// Uniqueness comes from rejection sampling: a value already present in the
// partially filled buffer is simply redrawn. The retry loop terminates with
// probability 1 because the range holds more values than the buffer
// (guaranteed by Config.Validate).
func (d *drawer) draw() []int {
	for i := range d.buf {
		for {
			pulled := d.min + d.rng.IntN(d.n)
			if !slices.Contains(d.buf[:i], pulled) {
				d.buf[i] = pulled

				break
			}
		}
	}

	return d.buf
}
