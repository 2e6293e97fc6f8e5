package bounds

import (
	"math"
	"sort"

	"github.com/pragmastat-go/pragmastat/margin"
	"github.com/pragmastat-go/pragmastat/rng"
)

// defaultSpreadBoundsSeed is used when SpreadBounds is called without an
// explicit seed, matching the package's reproducible-by-default contract.
const defaultSpreadBoundsSeed = "spread-bounds"

// SpreadBounds returns the distribution-free confidence interval for
// Spread(x): the observations are paired off by a pseudorandom shuffle,
// the m = floor(n/2) absolute pair differences are sorted, and a
// randomised sign-test cutoff selects how many to trim from each tail.
// seed, if given, replaces the default seed string; only the first
// element is used.
func SpreadBounds(x []float64, misrate float64, seed ...string) (Bounds, error) {
	n := int64(len(x))
	if n < 2 {
		return Bounds{}, violation(KindDomain, "x")
	}
	if err := validateMisrate(misrate, margin.MinAchievableMisrate.OneSample(n/2)); err != nil {
		return Bounds{}, err
	}
	if err := requireFinite(x, "x"); err != nil {
		return Bounds{}, err
	}

	s := defaultSpreadBoundsSeed
	if len(seed) > 0 && seed[0] != "" {
		s = seed[0]
	}
	r := rng.FromString(s)

	shuffled, err := r.Shuffle(x)
	if err != nil {
		return Bounds{}, wrap(KindValidity, "x", err)
	}

	m := int64(len(shuffled) / 2)
	diffs := make([]float64, m)
	for i := int64(0); i < m; i++ {
		diffs[i] = math.Abs(shuffled[2*i] - shuffled[2*i+1])
	}
	sort.Float64s(diffs)

	allZero := true
	for _, d := range diffs {
		if d != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return Bounds{}, violation(KindSparity, "x")
	}

	cutoff, err := margin.SignRandomisedCutoff(m, misrate, r)
	if err != nil {
		return Bounds{}, wrap(KindNumerical, "misrate", err)
	}

	half := float64(cutoff) / 2
	maxHalf := float64(m-1) / 2
	if half > maxHalf {
		half = maxHalf
	}
	lowerIdx := int64(math.Floor(half))
	upperIdx := m - lowerIdx - 1
	if lowerIdx < 0 {
		lowerIdx = 0
	}
	if upperIdx >= m {
		upperIdx = m - 1
	}
	if lowerIdx > upperIdx {
		lowerIdx, upperIdx = upperIdx, lowerIdx
	}

	return Bounds{Lower: diffs[lowerIdx], Upper: diffs[upperIdx]}, nil
}

func requireFinite(values []float64, subject string) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return violation(KindValidity, subject)
		}
	}
	return nil
}
