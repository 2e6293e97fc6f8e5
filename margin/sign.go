package margin

import (
	"math"

	"github.com/pragmastat-go/pragmastat/rng"
)

// signExactThreshold is the sample size at or below which the Binomial(n, 1/2)
// tail is tabulated exactly rather than approximated.
const signExactThreshold = 1023

// binomialLogPMF returns ln P(Binom(n, 1/2) = i) for i in [0, n], via the
// standard recurrence logp[0] = -n*ln2; logp[i] = logp[i-1] + ln((n-i+1)/i).
// Working in log-space avoids the underflow that plain C(n,i)/2^n hits for
// n in the hundreds.
func binomialLogPMF(n int64) []float64 {
	logp := make([]float64, n+1)
	logp[0] = -float64(n) * math.Ln2
	for i := int64(1); i <= n; i++ {
		logp[i] = logp[i-1] + math.Log(float64(n-i+1)/float64(i))
	}
	return logp
}

// signTailProbExact returns 2*P(Binom(n, 1/2) <= k) computed from the exact
// binomial PMF.
func signTailProbExact(n int64, logp []float64) func(k int64) float64 {
	cum := make([]float64, n+2)
	for i := int64(0); i <= n; i++ {
		cum[i+1] = cum[i] + math.Exp(logp[i])
	}
	return func(k int64) float64 {
		if k < 0 {
			return 0
		}
		if k > n {
			k = n
		}
		return 2 * cum[k+1]
	}
}

// signTailProbApprox returns a continuity-corrected normal approximation of
// 2*P(Binom(n, 1/2) <= k), for n beyond the exact tabulation threshold.
func signTailProbApprox(n int64) func(k int64) float64 {
	mean := float64(n) / 2
	sigma := math.Sqrt(float64(n)) / 2
	return func(k int64) float64 {
		z := (float64(k) + 0.5 - mean) / sigma
		return 2 * normalCDF(z)
	}
}

// normalCDF is the standard normal cumulative distribution function.
func normalCDF(z float64) float64 {
	return 0.5 * math.Erfc(-z/math.Sqrt2)
}

// SignMargin returns the largest k with 2*P(Binom(n, 1/2) <= k) <= misrate,
// the trim count the sign-test-based MedianBounds interval uses. n must be
// >= 1; misrate must be in [0, 1].
func SignMargin(n int64, misrate float64) (int64, error) {
	if n < 1 {
		return 0, ErrInvalidSize
	}
	if misrate < 0 || misrate > 1 {
		return 0, ErrInvalidMisrate
	}

	tail := signTailFunc(n)
	return largestWithTailLE(n, misrate, tail), nil
}

func signTailFunc(n int64) func(k int64) float64 {
	if n <= signExactThreshold {
		return signTailProbExact(n, binomialLogPMF(n))
	}
	return signTailProbApprox(n)
}

// SignRandomisedCutoff returns a randomised trim count whose expected
// value's resulting tail probability equals misrate exactly, interpolating
// between SignMargin(n, misrate) and its successor. It consumes exactly
// one r.Uniform() draw, matching the contract SpreadBounds depends on.
func SignRandomisedCutoff(n int64, misrate float64, r *rng.Rng) (int64, error) {
	k, err := SignMargin(n, misrate)
	if err != nil {
		return 0, err
	}
	u := r.Uniform()
	if k >= n {
		return k, nil
	}

	tail := signTailFunc(n)
	t0 := tail(k)
	t1 := tail(k + 1)
	if t1 <= t0 {
		return k, nil
	}

	q := (misrate - t0) / (t1 - t0)
	if q < 0 {
		q = 0
	}
	if q > 1 {
		q = 1
	}
	if u < q {
		return k + 1, nil
	}
	return k, nil
}
