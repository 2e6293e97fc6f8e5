package margin

import "math"

// MinAchievableMisrate collects the floors below which no discrete
// order-statistic interval can achieve the requested misrate: with only n
// (or n, m) observations there are finitely many candidate trim amounts,
// so the smallest nonzero miss probability is bounded away from zero.
var MinAchievableMisrate = minAchievableMisrate{}

type minAchievableMisrate struct{}

// OneSample returns 2^(1-n), the minimum achievable misrate for any
// one-sample bounds estimator on a sample of size n.
func (minAchievableMisrate) OneSample(n int64) float64 {
	return math.Exp2(1 - float64(n))
}

// TwoSample returns 1/C(n+m, n), the minimum achievable misrate for any
// two-sample bounds estimator on samples of size n and m.
func (minAchievableMisrate) TwoSample(n, m int64) float64 {
	return math.Exp(-logBinomial(n+m, n))
}

// logBinomial returns ln C(n, k) via the log-gamma function, avoiding the
// overflow a direct factorial computation would hit for even moderately
// large n.
func logBinomial(n, k int64) float64 {
	a, _ := math.Lgamma(float64(n) + 1)
	b, _ := math.Lgamma(float64(k) + 1)
	c, _ := math.Lgamma(float64(n-k) + 1)
	return a - b - c
}
