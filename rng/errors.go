package rng

import "errors"

var (
	// ErrEmptyInput indicates an operation that requires at least one
	// element (Shuffle, Sample, Resample) was given an empty slice.
	ErrEmptyInput = errors.New("rng: input slice must not be empty")

	// ErrInvalidSampleSize indicates Sample was called with k < 0 or k == 0.
	ErrInvalidSampleSize = errors.New("rng: sample size must be a positive integer")

	// ErrInvalidResampleSize indicates Resample was called with k <= 0.
	ErrInvalidResampleSize = errors.New("rng: resample size must be a positive integer")
)
