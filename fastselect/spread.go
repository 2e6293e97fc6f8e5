package fastselect

// Spread returns the median of the pairwise absolute differences
// {sorted[j]-sorted[i] : 0 <= i < j < n} of a non-decreasing slice, the
// Shamos scale estimate. n==1 returns 0. sorted must be non-empty.
func Spread(sorted []float64) (float64, error) {
	n := int64(len(sorted))
	if n == 0 {
		return 0, ErrEmptyInput
	}
	if n == 1 {
		return 0, nil
	}
	if n == 2 {
		return sorted[1] - sorted[0], nil
	}

	total := n * (n - 1) / 2
	lowerTarget := (total + 1) / 2
	upperTarget := (total + 2) / 2

	lo, err := SpreadQuantile(sorted, lowerTarget)
	if err != nil {
		return 0, err
	}
	if upperTarget == lowerTarget {
		return lo, nil
	}
	hi, err := SpreadQuantile(sorted, upperTarget)
	if err != nil {
		return 0, err
	}
	return (lo + hi) / 2, nil
}

// SpreadQuantile returns the k-th smallest (1-indexed) pairwise absolute
// difference of a non-decreasing slice of length n >= 2. k must lie in
// [1, n(n-1)/2].
func SpreadQuantile(sorted []float64, k int64) (float64, error) {
	n := int64(len(sorted))
	if n < 2 {
		return 0, ErrEmptyInput
	}
	total := n * (n - 1) / 2
	if k < 1 || k > total {
		return 0, ErrRankOutOfRange
	}

	lo := 0.0
	hi := sorted[n-1] - sorted[0]
	return bisectKth(lo, hi, k, func(threshold float64) int64 {
		return countDiffLE(sorted, threshold)
	}), nil
}

// SpreadBoundsQuantiles returns the pair of pairwise-difference order
// statistics at ranks kLo and kHi (1-indexed, either order), sorted so the
// lower value comes first.
func SpreadBoundsQuantiles(sorted []float64, kLo, kHi int64) (float64, float64, error) {
	a, err := SpreadQuantile(sorted, kLo)
	if err != nil {
		return 0, 0, err
	}
	b, err := SpreadQuantile(sorted, kHi)
	if err != nil {
		return 0, 0, err
	}
	if a > b {
		a, b = b, a
	}
	return a, b, nil
}
