package fastselect

// maxBisectIters bounds every outer bisection in this package, matching
// spec.md §4.5's 128-iteration cap on FastShift's binary search.
const maxBisectIters = 128

// bisectKth narrows [lo, hi] until it has pinned down the smallest value v
// such that count(v) >= k, where count is monotone non-decreasing and
// count(hi) >= k > count(lo) is assumed to hold at the call site. It stops
// once lo and hi are adjacent float64 values (no representable midpoint
// remains) or after maxBisectIters iterations, and returns hi. At the
// adjacent-values stop, hi is the smallest float64 at which count reaches
// k, i.e. the k-th smallest value of the implicit multiset up to the
// rounding of count's own comparisons. A bracket spanning many binades
// (such as one closing in on zero) can hit the iteration cap first; hi
// then lies within the initial bracket width times 2^-128 of that value.
func bisectKth(lo, hi float64, k int64, count func(float64) int64) float64 {
	for iter := 0; iter < maxBisectIters; iter++ {
		if hi <= lo {
			break
		}
		mid := lo + (hi-lo)/2
		if mid == lo || mid == hi {
			// No representable midpoint remains between lo and hi.
			break
		}
		if count(mid) >= k {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi
}
