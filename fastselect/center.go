package fastselect

// Center returns the median of the Walsh averages {(sorted[i]+sorted[j])/2
// : 0 <= i <= j < n} of a non-decreasing slice, the Hodges–Lehmann
// location estimate. sorted must be non-empty.
func Center(sorted []float64) (float64, error) {
	if len(sorted) == 0 {
		return 0, ErrEmptyInput
	}

	n := int64(len(sorted))
	total := n * (n + 1) / 2
	lowerTarget := (total + 1) / 2
	upperTarget := (total + 2) / 2

	lo, err := CenterQuantile(sorted, lowerTarget)
	if err != nil {
		return 0, err
	}
	if upperTarget == lowerTarget {
		return lo, nil
	}
	hi, err := CenterQuantile(sorted, upperTarget)
	if err != nil {
		return 0, err
	}
	return (lo + hi) / 2, nil
}

// CenterQuantile returns the k-th smallest (1-indexed) Walsh average of a
// non-decreasing slice. k must lie in [1, n(n+1)/2].
func CenterQuantile(sorted []float64, k int64) (float64, error) {
	n := int64(len(sorted))
	if n == 0 {
		return 0, ErrEmptyInput
	}
	total := n * (n + 1) / 2
	if k < 1 || k > total {
		return 0, ErrRankOutOfRange
	}

	lo := sorted[0]
	hi := sorted[n-1]
	return bisectKth(lo, hi, k, func(threshold float64) int64 {
		return countAvgLE(sorted, threshold)
	}), nil
}

// CenterBounds returns the pair of Walsh-average order statistics at ranks
// kLo and kHi (1-indexed, either order), sorted so the lower value comes
// first.
func CenterBounds(sorted []float64, kLo, kHi int64) (float64, float64, error) {
	a, err := CenterQuantile(sorted, kLo)
	if err != nil {
		return 0, 0, err
	}
	b, err := CenterQuantile(sorted, kHi)
	if err != nil {
		return 0, 0, err
	}
	if a > b {
		a, b = b, a
	}
	return a, b, nil
}
