package bounds

import (
	"math"
	"sort"

	"github.com/pragmastat-go/pragmastat/fastselect"
	"github.com/pragmastat-go/pragmastat/rng"
	"github.com/pragmastat-go/pragmastat/sample"
)

// defaultCenterBoundsApproxSeed is the fixed seed CenterBoundsApprox draws
// from when no seed is given, so results are reproducible without the
// caller having to manage a seed themselves.
const defaultCenterBoundsApproxSeed = "center-bounds-approx"

// bootstrapDraws is B, the number of bootstrap resamples.
const bootstrapDraws = 10000

// bootstrapSubsampleCap bounds the resample size so CenterBoundsApprox
// stays tractable on very large samples.
const bootstrapSubsampleCap = 5000

// CenterBoundsApprox returns a bootstrap percentile confidence interval
// for Center(x): it draws B = 10000 resamples with replacement (each of
// size m = min(n, 5000)), computes Center on each, and reports the
// empirical alpha/2 and 1-alpha/2 percentiles of the resulting
// distribution. When m < n the interval is rescaled around the sample's
// own Center by sqrt(n/m), since subsampling below n understates the true
// sampling variance. seed, if given, replaces the default fixed seed;
// only the first element is used.
func CenterBoundsApprox(x []float64, misrate float64, seed ...string) (Bounds, error) {
	s, err := sample.New(x...)
	if err != nil {
		return Bounds{}, wrap(KindValidity, "x", err)
	}
	sorted := s.Sorted()
	n := len(sorted)
	if n < 2 {
		return Bounds{}, violation(KindDomain, "x")
	}

	minMisrate := math.Max(2.0/bootstrapDraws, math.Exp2(1-float64(n)))
	if err := validateMisrate(misrate, minMisrate); err != nil {
		return Bounds{}, err
	}

	m := n
	if m > bootstrapSubsampleCap {
		m = bootstrapSubsampleCap
	}

	seedStr := defaultCenterBoundsApproxSeed
	if len(seed) > 0 && seed[0] != "" {
		seedStr = seed[0]
	}
	r := rng.FromString(seedStr)

	boot := make([]float64, bootstrapDraws)
	for i := 0; i < bootstrapDraws; i++ {
		resampled, err := r.Resample(x, m)
		if err != nil {
			return Bounds{}, wrap(KindNumerical, "x", err)
		}
		sort.Float64s(resampled)
		c, err := fastselect.Center(resampled)
		if err != nil {
			return Bounds{}, wrap(KindNumerical, "x", err)
		}
		boot[i] = c
	}
	sort.Float64s(boot)

	lower := sample.Quantile(boot, misrate/2)
	upper := sample.Quantile(boot, 1-misrate/2)

	if m < n {
		center, err := fastselect.Center(sorted)
		if err != nil {
			return Bounds{}, wrap(KindNumerical, "x", err)
		}
		scale := math.Sqrt(float64(n) / float64(m))
		lower = center + (lower-center)*scale
		upper = center + (upper-center)*scale
	}

	return Bounds{Lower: lower, Upper: upper}, nil
}
