package estimator

import (
	"math"

	"github.com/pragmastat-go/pragmastat/fastselect"
	"github.com/pragmastat-go/pragmastat/sample"
)

// toSorted validates values as a Sample under the given subject name and
// returns its sorted order statistics.
func toSorted(values []float64, subject string) ([]float64, error) {
	s, err := sample.New(values...)
	if err != nil {
		return nil, &Violation{Kind: KindValidity, Subject: subject, Err: err}
	}
	return s.Sorted(), nil
}

// Center returns the Hodges-Lehmann estimator of x: the median of all
// pairwise averages (x[i]+x[j])/2, i<=j. Center is translation equivariant,
// scale equivariant, and has a breakdown point of about 29%.
func Center(x []float64) (float64, error) {
	sorted, err := toSorted(x, "x")
	if err != nil {
		return 0, err
	}
	c, err := fastselect.Center(sorted)
	if err != nil {
		return 0, &Violation{Kind: KindNumerical, Subject: "x", Err: err}
	}
	return c, nil
}

// Spread returns the Shamos estimator of x: the median of all pairwise
// absolute differences |x[i]-x[j]|, i<j. Spread is translation invariant,
// scale equivariant, and (like Center) has a breakdown point of about 29%.
func Spread(x []float64) (float64, error) {
	sorted, err := toSorted(x, "x")
	if err != nil {
		return 0, err
	}
	s, err := fastselect.Spread(sorted)
	if err != nil {
		return 0, &Violation{Kind: KindNumerical, Subject: "x", Err: err}
	}
	return s, nil
}

// RelSpread returns Spread(x)/Center(x), a scale-invariant measure of
// relative dispersion. It requires Center(x) != 0: RelSpread is undefined
// for a sample centered at zero.
func RelSpread(x []float64) (float64, error) {
	c, err := Center(x)
	if err != nil {
		return 0, err
	}
	if c == 0 {
		return 0, &Violation{Kind: KindSparity, Subject: "x"}
	}
	s, err := Spread(x)
	if err != nil {
		return 0, err
	}
	return s / c, nil
}

// Shift returns the Hodges-Lehmann shift estimator of x relative to y: the
// median of all cross-sample differences x[i]-y[j]. Shift estimates how
// far x is shifted from y on the same scale x and y are measured in; it is
// zero when x and y are drawn from the same location.
func Shift(x, y []float64) (float64, error) {
	sortedX, err := toSorted(x, "x")
	if err != nil {
		return 0, err
	}
	sortedY, err := toSorted(y, "y")
	if err != nil {
		return 0, err
	}
	out, err := fastselect.Shift(sortedX, sortedY, []float64{0.5})
	if err != nil {
		return 0, &Violation{Kind: KindNumerical, Subject: "x", Err: err}
	}
	return out[0], nil
}

// Ratio returns exp(Shift(log x, log y)), the Hodges-Lehmann estimator of
// how many times larger x is than y: the median of all pairwise ratios
// x[i]/y[j]. Both samples must consist of strictly positive values, since
// the estimator is computed through a log-domain shift.
func Ratio(x, y []float64) (float64, error) {
	logX, err := toLog(x, "x")
	if err != nil {
		return 0, err
	}
	logY, err := toLog(y, "y")
	if err != nil {
		return 0, err
	}
	shift, err := Shift(logX, logY)
	if err != nil {
		return 0, err
	}
	return math.Exp(shift), nil
}

// toLog returns the elementwise natural log of values, failing with a
// KindPositivity violation if any element is not strictly positive.
func toLog(values []float64, subject string) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return nil, &Violation{Kind: KindPositivity, Subject: subject}
		}
		out[i] = math.Log(v)
	}
	return out, nil
}

// AvgSpread returns the sample-size-weighted average of Spread(x) and
// Spread(y): (n*Spread(x) + m*Spread(y)) / (n+m). It is the common scale
// Disparity normalizes Shift by when x and y may have different spreads.
func AvgSpread(x, y []float64) (float64, error) {
	sx, err := Spread(x)
	if err != nil {
		return 0, err
	}
	sy, err := Spread(y)
	if err != nil {
		return 0, err
	}
	n, m := float64(len(x)), float64(len(y))
	return (n*sx + m*sy) / (n + m), nil
}

// Disparity returns Shift(x,y)/AvgSpread(x,y), a scale-free measure of how
// far apart x and y are relative to their combined spread (an effect-size
// analog of Cohen's d built from robust estimators). It requires
// AvgSpread(x,y) != 0.
func Disparity(x, y []float64) (float64, error) {
	shift, err := Shift(x, y)
	if err != nil {
		return 0, err
	}
	avg, err := AvgSpread(x, y)
	if err != nil {
		return 0, err
	}
	if avg == 0 {
		return 0, &Violation{Kind: KindSparity, Subject: "x"}
	}
	return shift / avg, nil
}
