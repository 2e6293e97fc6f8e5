package fastselect

import "errors"

var (
	// ErrEmptyInput indicates an empty sorted slice was given where a
	// non-empty one is required.
	ErrEmptyInput = errors.New("fastselect: input must not be empty")

	// ErrRankOutOfRange indicates a requested rank k fell outside [1, N]
	// for the relevant pair count N.
	ErrRankOutOfRange = errors.New("fastselect: rank out of range")

	// ErrNaN indicates a NaN was encountered where only finite values are
	// permitted.
	ErrNaN = errors.New("fastselect: NaN is not permitted")

	// ErrNoProbabilities indicates FastShift was called with an empty
	// probability list.
	ErrNoProbabilities = errors.New("fastselect: at least one probability is required")

	// ErrConvergence indicates the bisection search failed to converge
	// within the iteration cap on a pathological input.
	ErrConvergence = errors.New("fastselect: bisection failed to converge")
)
