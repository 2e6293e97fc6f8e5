package bounds

import (
	"math"

	"github.com/pragmastat-go/pragmastat/margin"
)

// DisparityBounds returns the distribution-free confidence interval for
// Disparity(x, y) = Shift(x,y) / AvgSpread(x,y). It splits misrate
// Bonferroni-style between a ShiftBounds call and an AvgSpreadBounds call,
// each consuming half of whatever misrate remains above its own minimum
// achievable floor, then divides the two intervals by case analysis over
// the sign of the denominator (AvgSpread) bounds: when the denominator
// interval cannot contain zero the ratio is computed from the extreme
// combinations of numerator and denominator endpoints; when it straddles
// zero the result widens to the unbounded interval, since AvgSpread
// approaching zero drives the ratio's magnitude to infinity in either
// sign.
func DisparityBounds(x, y []float64, misrate float64, seed ...string) (Bounds, error) {
	n, m := int64(len(x)), int64(len(y))

	minShift := margin.MinAchievableMisrate.TwoSample(n, m)
	minAvg := math.Max(margin.MinAchievableMisrate.OneSample(n), margin.MinAchievableMisrate.OneSample(m))

	extra := misrate - minShift - minAvg
	if extra < 0 {
		extra = 0
	}
	shiftMisrate := minShift + extra/2
	avgMisrate := minAvg + extra/2

	shift, err := ShiftBounds(x, y, shiftMisrate)
	if err != nil {
		return Bounds{}, err
	}
	avg, err := AvgSpreadBounds(x, y, avgMisrate, seed...)
	if err != nil {
		return Bounds{}, err
	}

	return divideInterval(shift, avg), nil
}

// divideInterval returns the interval of n/d for n in [num.Lower,
// num.Upper] and d in [den.Lower, den.Upper].
func divideInterval(num, den Bounds) Bounds {
	if den.Lower <= 0 && den.Upper >= 0 {
		return Bounds{Lower: math.Inf(-1), Upper: math.Inf(1)}
	}

	candidates := [4]float64{
		num.Lower / den.Lower,
		num.Lower / den.Upper,
		num.Upper / den.Lower,
		num.Upper / den.Upper,
	}
	lo, hi := candidates[0], candidates[0]
	for _, c := range candidates[1:] {
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}
	return Bounds{Lower: lo, Upper: hi}
}
