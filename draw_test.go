package lotto

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDrawer_DistinctAndInRange(t *testing.T) {
	cfg := DefaultConfig()

	// Property check over many game sizes and draws: every draw must produce
	// pairwise-distinct values within the configured range.
	for pulls := 2; pulls <= 7; pulls++ {
		d := newDrawer(&cfg, pulls)

		for range 1000 {
			game := d.draw()
			require.Len(t, game, pulls)

			for i, n := range game {
				require.GreaterOrEqual(t, n, cfg.NumberMin)
				require.LessOrEqual(t, n, cfg.NumberMax)
				require.NotContains(t, game[:i], n, "duplicate value within one draw")
			}
		}
	}
}

func TestDrawer_TinyRangeStillTerminates(t *testing.T) {
	// The hardest case for rejection sampling: the buffer consumes almost the
	// whole range, so the last slot rejects nearly every sample.
	cfg := DefaultConfig()
	cfg.MaxNumbers = 3
	cfg.NumberMax = 4
	require.NoError(t, cfg.Validate())

	d := newDrawer(&cfg, 4)

	for range 1000 {
		game := d.draw()

		sorted := slices.Clone(game)
		slices.Sort(sorted)
		require.Equal(t, []int{1, 2, 3, 4}, sorted, "a 4-pull draw over [1,4] must use every value")
	}
}

func TestDrawer_CoversWholeRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxNumbers = 1
	cfg.NumberMax = 5

	d := newDrawer(&cfg, 2)

	seen := make(map[int]bool)
	for range 2000 {
		for _, n := range d.draw() {
			seen[n] = true
		}
	}

	// With 4000 samples over 5 values, missing one is practically impossible.
	for n := 1; n <= 5; n++ {
		require.True(t, seen[n], "value %d never drawn", n)
	}
}

func TestDrawer_IndependentStreams(t *testing.T) {
	cfg := DefaultConfig()

	a := newDrawer(&cfg, 7)
	b := newDrawer(&cfg, 7)

	// Two drawers with independent seeds should diverge almost immediately.
	// Comparing 50 whole draws keeps the false-failure probability negligible.
	identical := true
	for range 50 {
		if !slices.Equal(a.draw(), b.draw()) {
			identical = false

			break
		}
	}

	require.False(t, identical, "independent drawers produced identical streams")
}
