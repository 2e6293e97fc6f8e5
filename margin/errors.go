package margin

import "errors"

var (
	// ErrInvalidSize indicates a sample-size argument was less than the
	// minimum the table requires (n >= 1 for one-sample tables, n >= 1 and
	// m >= 1 for the two-sample table).
	ErrInvalidSize = errors.New("margin: sample size must be positive")

	// ErrInvalidMisrate indicates misrate fell outside [0, 1].
	ErrInvalidMisrate = errors.New("margin: misrate must be in [0, 1]")
)
