package lotto

import (
	"errors"
	"fmt"
	"slices"
)

// Ticket is the fixed combination the search tries to reproduce: an ordered
// series of distinct numbers plus one bonus number from the same range,
// distinct from the series.
//
// A Ticket is immutable once constructed. Workers receive their own copy at
// spawn time and never mutate it.
type Ticket struct {
	// Numbers is the guessed series, e.g. []int{1, 45, 38, 5, 23, 19}.
	Numbers []int `yaml:"numbers"`

	// Bonus is the extra guessed number, e.g. 13.
	Bonus int `yaml:"bonus"`
}

// Draw is one randomly generated attempt compared against a Ticket.
type Draw struct {
	// Numbers is the drawn series (same length as the ticket series).
	Numbers []int

	// Bonus is the drawn bonus number.
	Bonus int
}

// String renders the draw for display, e.g. "[5 23 19] -- bonus: 13".
func (d Draw) String() string {
	return fmt.Sprintf("%v -- bonus: %d", d.Numbers, d.Bonus)
}

// Validate checks the ticket against the configured game rules.
//
// Every violated rule contributes its own explanatory error; all of them are
// joined and wrapped in ErrInvalidTicket so callers can show the complete list
// to the user instead of just the first failure.
//
// Parameters:
//   - cfg: Game rules (range and maximum series length); must be valid
//
// Returns:
//   - error: ErrInvalidTicket wrapping one error per violated rule, nil if valid
func (t Ticket) Validate(cfg *Config) error {
	var errs []error

	if len(t.Numbers) == 0 {
		errs = append(errs, fmt.Errorf(
			"%w: your ticket series has no numbers, which is not allowed",
			ErrNoNumbers,
		))
	}

	if len(t.Numbers) > cfg.MaxNumbers {
		errs = append(errs, fmt.Errorf(
			"%w: your ticket series has %d numbers, maximum allowed: %d",
			ErrTooManyNumbers, len(t.Numbers), cfg.MaxNumbers,
		))
	}

	for _, n := range t.Numbers {
		if n < cfg.NumberMin || n > cfg.NumberMax {
			errs = append(errs, fmt.Errorf(
				"%w: each number of your ticket series must be in a range from %d to %d",
				ErrNumberOutOfRange, cfg.NumberMin, cfg.NumberMax,
			))

			break
		}
	}

	for i := 1; i < len(t.Numbers); i++ {
		if slices.Contains(t.Numbers[i:], t.Numbers[i-1]) {
			errs = append(errs, fmt.Errorf(
				"%w: each number of your ticket series must be unique",
				ErrDuplicateNumber,
			))

			break
		}
	}

	if t.Bonus < cfg.NumberMin || t.Bonus > cfg.NumberMax {
		errs = append(errs, fmt.Errorf(
			"%w: your bonus number must be in a range from %d to %d",
			ErrBonusOutOfRange, cfg.NumberMin, cfg.NumberMax,
		))
	}

	if slices.Contains(t.Numbers, t.Bonus) {
		errs = append(errs, fmt.Errorf(
			"%w: your bonus number %d must not be contained in your ticket series",
			ErrBonusNotDistinct, t.Bonus,
		))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidTicket, errors.Join(errs...))
	}

	return nil
}

// clone returns an independent copy for handing to a worker.
func (t Ticket) clone() Ticket {
	return Ticket{
		Numbers: slices.Clone(t.Numbers),
		Bonus:   t.Bonus,
	}
}

// maxPulls is the size of one game buffer: the series plus the bonus.
func (t Ticket) maxPulls() int {
	return len(t.Numbers) + 1
}

// matches reports whether a game buffer reproduces the ticket.
//
// The buffer holds maxPulls() values; the last one is the drawn bonus by
// position. The bonus is compared first: the single-value check discards the
// vast majority of candidates before the series containment scan runs. The
// series comparison is order-independent; with at most six numbers a linear
// scan beats any index.
func (t Ticket) matches(game []int) bool {
	if game[len(game)-1] != t.Bonus {
		return false
	}

	for _, n := range game[:len(game)-1] {
		if !slices.Contains(t.Numbers, n) {
			return false
		}
	}

	return true
}
