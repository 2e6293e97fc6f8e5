package bounds

import (
	"github.com/pragmastat-go/pragmastat/fastselect"
	"github.com/pragmastat-go/pragmastat/margin"
)

// ShiftBounds returns the distribution-free confidence interval for
// Shift(x, y), built from the Mann-Whitney pairwise margin and the
// FastShift selection engine applied to the n*m cross-sample differences.
func ShiftBounds(x, y []float64, misrate float64) (Bounds, error) {
	sortedX, err := toSorted(x, "x")
	if err != nil {
		return Bounds{}, err
	}
	sortedY, err := toSorted(y, "y")
	if err != nil {
		return Bounds{}, err
	}
	n, m := int64(len(sortedX)), int64(len(sortedY))
	if n < 1 || m < 1 {
		return Bounds{}, violation(KindDomain, "x")
	}
	if err := validateMisrate(misrate, margin.MinAchievableMisrate.TwoSample(n, m)); err != nil {
		return Bounds{}, err
	}

	total := n * m
	if total == 1 {
		d := sortedX[0] - sortedY[0]
		return Bounds{Lower: d, Upper: d}, nil
	}

	marginCount, err := margin.PairwiseMargin(n, m, misrate)
	if err != nil {
		return Bounds{}, wrap(KindNumerical, "misrate", err)
	}
	half := minInt64(marginCount/2, (total-1)/2)

	ps := []float64{
		float64(half) / float64(total-1),
		float64(total-1-half) / float64(total-1),
	}
	out, err := fastselect.Shift(sortedX, sortedY, ps)
	if err != nil {
		return Bounds{}, wrap(KindNumerical, "x", err)
	}

	lo, hi := out[0], out[1]
	if lo > hi {
		lo, hi = hi, lo
	}
	return Bounds{Lower: lo, Upper: hi}, nil
}
