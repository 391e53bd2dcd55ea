package lotto

import (
	"fmt"
	"runtime"
	"time"
)

// Config is the configuration for the Searcher.
//
// All duration fields accept standard Go duration strings like "3s", "500ms"
// when unmarshalled from YAML.
type Config struct {
	// MaxNumbers is the maximum length of a ticket series.
	// The classic game uses 6.
	MaxNumbers int `yaml:"maxNumbers"`

	// NumberMin is the smallest drawable number (inclusive).
	NumberMin int `yaml:"numberMin"`

	// NumberMax is the largest drawable number (inclusive).
	// The range must hold at least MaxNumbers+1 distinct values so a draw of
	// series plus bonus always terminates.
	NumberMax int `yaml:"numberMax"`

	// Parallelism is the total number of logical execution units, including
	// the coordinating goroutine. The Searcher spawns Parallelism-1 workers.
	// 0 means runtime.NumCPU().
	Parallelism int `yaml:"parallelism"`

	// ProgressInterval is the minimum wall-clock time between two progress
	// messages of the same worker. Win announcements bypass the throttle.
	// Recommended: 3 seconds.
	ProgressInterval time.Duration `yaml:"progressInterval"`

	// PublishBuffer is the capacity of the progress bus channel. Workers block
	// on publish only when the coordinator falls this far behind.
	PublishBuffer int `yaml:"publishBuffer"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		MaxNumbers:       6,
		NumberMin:        1,
		NumberMax:        49,
		Parallelism:      max(runtime.NumCPU(), 2),
		ProgressInterval: 3 * time.Second,
		PublishBuffer:    64,
	}
}

// SetDefaults fills in missing configuration values with production defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.MaxNumbers == 0 {
		cfg.MaxNumbers = defaults.MaxNumbers
	}
	if cfg.NumberMin == 0 {
		cfg.NumberMin = defaults.NumberMin
	}
	if cfg.NumberMax == 0 {
		cfg.NumberMax = defaults.NumberMax
	}
	if cfg.Parallelism == 0 {
		cfg.Parallelism = defaults.Parallelism
	}
	if cfg.ProgressInterval == 0 {
		cfg.ProgressInterval = defaults.ProgressInterval
	}
	if cfg.PublishBuffer == 0 {
		cfg.PublishBuffer = defaults.PublishBuffer
	}
}

// Validate checks configuration constraints and returns an error for invalid values.
//
// Hard Validation Rules:
//   - MaxNumbers >= 1
//   - NumberMin <= NumberMax
//   - Range size >= MaxNumbers+1 (a draw of series plus bonus must be able
//     to hold pairwise-distinct values, otherwise rejection sampling spins)
//   - Parallelism >= 2 (one coordinator plus at least one worker)
//   - ProgressInterval > 0
//   - PublishBuffer >= 1
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.MaxNumbers < 1 {
		return fmt.Errorf("%w: MaxNumbers must be >= 1, got %d", ErrInvalidConfig, cfg.MaxNumbers)
	}

	if cfg.NumberMin > cfg.NumberMax {
		return fmt.Errorf(
			"%w: NumberMin (%d) must be <= NumberMax (%d)",
			ErrInvalidConfig, cfg.NumberMin, cfg.NumberMax,
		)
	}

	rangeSize := cfg.NumberMax - cfg.NumberMin + 1
	if rangeSize < cfg.MaxNumbers+1 {
		return fmt.Errorf(
			"%w: range [%d,%d] holds %d values, need at least MaxNumbers+1 (%d) for a distinct draw",
			ErrInvalidConfig, cfg.NumberMin, cfg.NumberMax, rangeSize, cfg.MaxNumbers+1,
		)
	}

	if cfg.Parallelism < 2 {
		return fmt.Errorf(
			"%w: Parallelism must be >= 2 (one coordinator plus at least one worker), got %d",
			ErrInvalidConfig, cfg.Parallelism,
		)
	}

	if cfg.ProgressInterval <= 0 {
		return fmt.Errorf("%w: ProgressInterval must be > 0, got %v", ErrInvalidConfig, cfg.ProgressInterval)
	}

	if cfg.PublishBuffer < 1 {
		return fmt.Errorf("%w: PublishBuffer must be >= 1, got %d", ErrInvalidConfig, cfg.PublishBuffer)
	}

	return nil
}

// rangeSize returns the number of drawable values.
func (cfg *Config) rangeSize() int {
	return cfg.NumberMax - cfg.NumberMin + 1
}

// TestConfig returns a configuration optimized for fast test execution.
//
// The throttle interval is shortened so progress messages show up within a
// test's lifetime, and the pool is fixed at two workers for determinism.
// Use DefaultConfig() for real runs.
//
// Returns:
//   - Config: Configuration with fast timings for tests
//
// Example:
//
//	cfg := lotto.TestConfig()
//	cfg.NumberMax = 5
//	cfg.MaxNumbers = 3
func TestConfig() Config {
	cfg := DefaultConfig()

	cfg.Parallelism = 3 // Coordinator plus two workers
	cfg.ProgressInterval = 50 * time.Millisecond
	cfg.PublishBuffer = 16

	return cfg
}
