package margin

// largestWithTailLE returns the largest r in [0, maxR] for which
// tailProb(r) <= misrate, given that tailProb is non-decreasing in r and
// tailProb(0) <= misrate (guaranteed by the minimum-achievable-misrate
// floor every caller validates against before reaching this helper).
func largestWithTailLE(maxR int64, misrate float64, tailProb func(r int64) float64) int64 {
	lo, hi := int64(0), maxR
	for lo < hi {
		mid := lo + (hi-lo+1)/2
		if tailProb(mid) <= misrate {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
