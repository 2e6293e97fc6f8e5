package margin

import "math"

// signedRankExactThreshold is the sample size at or below which the Wilcoxon
// signed-rank null distribution is tabulated exactly.
const signedRankExactThreshold = 63

// signedRankPMF returns P(W = s) for s in [0, N], N = n(n+1)/2, where W is
// the sum of a uniformly random subset of {1, ..., n} (the null
// distribution of the Wilcoxon signed-rank statistic under the symmetry
// null). Built via the standard subset-sum convolution: dp[s] counts
// subsets summing to s, dp is updated by convolving in one new element at
// a time, then normalized by 2^n.
func signedRankPMF(n int64) []float64 {
	total := n * (n + 1) / 2
	dp := make([]float64, total+1)
	dp[0] = 1
	upper := int64(0)
	for i := int64(1); i <= n; i++ {
		upper += i
		for s := upper; s >= i; s-- {
			dp[s] += dp[s-i]
		}
	}
	scale := math.Pow(2, -float64(n))
	for s := range dp {
		dp[s] *= scale
	}
	return dp
}

// signedRankTailFunc returns a function computing P(W <= r), the
// single-tail probability of the Wilcoxon signed-rank null distribution
// over N = n(n+1)/2 ranks. By symmetry P(W >= N-r) = P(W <= r), so this
// single tail already determines the matching tail on the other side;
// SignedRankMargin compares it directly against misrate rather than
// summing both tails.
func signedRankTailFunc(n int64) func(r int64) float64 {
	total := n * (n + 1) / 2
	if n <= signedRankExactThreshold {
		pmf := signedRankPMF(n)
		cum := make([]float64, total+2)
		for s := int64(0); s <= total; s++ {
			cum[s+1] = cum[s] + pmf[s]
		}
		return func(r int64) float64 {
			if r < 0 {
				return 0
			}
			if r > total {
				r = total
			}
			return cum[r+1]
		}
	}

	mean := float64(total) / 2
	variance := float64(n) * float64(n+1) * float64(2*n+1) / 24
	sigma := math.Sqrt(variance)
	return func(r int64) float64 {
		z := (float64(r) + 0.5 - mean) / sigma
		return normalCDF(z)
	}
}

// SignedRankMargin returns the largest r for which P(W <= r) <= misrate
// under the Wilcoxon signed-rank null distribution over N = n(n+1)/2
// ranks, doubled: margin = 2*r, because CenterBounds trims both tails
// symmetrically and the matching upper tail P(W >= N-r) equals P(W <= r)
// by symmetry. n must be >= 1; misrate must be in [0, 1].
func SignedRankMargin(n int64, misrate float64) (int64, error) {
	if n < 1 {
		return 0, ErrInvalidSize
	}
	if misrate < 0 || misrate > 1 {
		return 0, ErrInvalidMisrate
	}

	total := n * (n + 1) / 2
	maxR := total / 2
	tail := signedRankTailFunc(n)
	r := largestWithTailLE(maxR, misrate, tail)
	return 2 * r, nil
}
