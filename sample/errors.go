package sample

import "errors"

var (
	// ErrEmpty indicates a Sample was constructed from zero values.
	ErrEmpty = errors.New("sample: must contain at least one value")

	// ErrNotFinite indicates a value was NaN or ±Inf.
	ErrNotFinite = errors.New("sample: all values must be finite")
)
