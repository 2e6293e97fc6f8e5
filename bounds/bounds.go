package bounds

import (
	"math"

	"github.com/pragmastat-go/pragmastat/estimator"
	"github.com/pragmastat-go/pragmastat/fastselect"
	"github.com/pragmastat-go/pragmastat/margin"
	"github.com/pragmastat-go/pragmastat/sample"
)

// Bounds is an ordered pair (Lower, Upper), Lower <= Upper, produced by
// every estimator in this package. Unit is empty unless the caller
// constructs a Bounds directly with one set; none of the functions below
// populate it themselves, since they never know what quantity the input
// slice represents. Bounds is otherwise immutable; construct it only
// through the package's estimator functions.
type Bounds struct {
	Lower float64
	Upper float64
	Unit  estimator.Unit
}

// validateMisrate checks misrate lies in [0,1) and at or above minMisrate,
// returning a *Violation tagged "misrate" otherwise.
func validateMisrate(misrate, minMisrate float64) error {
	if math.IsNaN(misrate) || misrate < 0 || misrate >= 1 {
		return violation(KindDomain, "misrate")
	}
	if misrate < minMisrate {
		return violation(KindDomain, "misrate")
	}
	return nil
}

func toSorted(values []float64, subject string) ([]float64, error) {
	s, err := sample.New(values...)
	if err != nil {
		return nil, wrap(KindValidity, subject, err)
	}
	return s.Sorted(), nil
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// CenterBounds returns the distribution-free confidence interval for
// Center(x) at the given misrate, built from the signed-rank margin and
// the FastCenterQuantiles selection engine. Requires weak symmetry of the
// pairwise-average distribution around its median; unenforced, as in the
// underlying Wilcoxon signed-rank test.
func CenterBounds(x []float64, misrate float64) (Bounds, error) {
	sorted, err := toSorted(x, "x")
	if err != nil {
		return Bounds{}, err
	}
	n := int64(len(sorted))
	if n < 2 {
		return Bounds{}, violation(KindDomain, "x")
	}
	if err := validateMisrate(misrate, margin.MinAchievableMisrate.OneSample(n)); err != nil {
		return Bounds{}, err
	}

	marginCount, err := margin.SignedRankMargin(n, misrate)
	if err != nil {
		return Bounds{}, wrap(KindNumerical, "misrate", err)
	}

	total := n * (n + 1) / 2
	half := minInt64(marginCount/2, (total-1)/2)
	kLeft := half + 1
	kRight := total - half

	lo, hi, err := fastselect.CenterBounds(sorted, kLeft, kRight)
	if err != nil {
		return Bounds{}, wrap(KindNumerical, "x", err)
	}
	return Bounds{Lower: lo, Upper: hi}, nil
}

// MedianBounds returns the pure order-statistic confidence interval for
// the sample median: the largest k with 2*P(Binom(n,1/2) <= k-1) <=
// misrate trims k-1 observations from each tail. Unlike CenterBounds, this
// requires no symmetry assumption.
func MedianBounds(x []float64, misrate float64) (Bounds, error) {
	sorted, err := toSorted(x, "x")
	if err != nil {
		return Bounds{}, err
	}
	n := int64(len(sorted))
	if n < 2 {
		return Bounds{}, violation(KindDomain, "x")
	}
	if err := validateMisrate(misrate, margin.MinAchievableMisrate.OneSample(n)); err != nil {
		return Bounds{}, err
	}

	j, err := margin.SignMargin(n, misrate)
	if err != nil {
		return Bounds{}, wrap(KindNumerical, "misrate", err)
	}
	k := j + 1

	lowerIdx := clampIndex(k-1, n)
	upperIdx := clampIndex(n-k, n)
	if lowerIdx > upperIdx {
		lowerIdx, upperIdx = upperIdx, lowerIdx
	}
	return Bounds{Lower: sorted[lowerIdx], Upper: sorted[upperIdx]}, nil
}

func clampIndex(i, n int64) int64 {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}
