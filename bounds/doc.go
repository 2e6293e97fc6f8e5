// Package bounds implements pragmastat's distribution-free confidence
// bounds estimators: CenterBounds, MedianBounds, SpreadBounds, ShiftBounds,
// RatioBounds, AvgSpreadBounds, DisparityBounds, and CenterBoundsApprox.
//
// # What & why
//
//	Every estimator here answers the same question in a different shape:
//	given a misrate (an upper bound on the probability the true interval
//	misses the parameter), what is the widest discrete order-statistic
//	interval whose nominal miss rate stays at or below it? The margin
//	package turns (n, misrate) or (n, m, misrate) into that discrete trim
//	count; this package turns the trim count into the actual rank window
//	and hands it to fastselect.
//
// # Composition
//
//	CenterBounds composes margin.SignedRankMargin with
//	fastselect.CenterBounds. ShiftBounds composes margin.PairwiseMargin with
//	fastselect.Shift. AvgSpreadBounds and DisparityBounds apply a
//	Bonferroni split across their constituent bounds estimators rather than
//	inventing a joint null distribution. RatioBounds reduces to ShiftBounds
//	in the log domain. CenterBoundsApprox is the one bootstrap-based
//	estimator in the package: it resamples with replacement and reports the
//	empirical percentile interval instead of inverting a closed-form null
//	distribution.
//
// # Determinism
//
//	SpreadBounds, AvgSpreadBounds, DisparityBounds, and CenterBoundsApprox
//	draw randomness from an *rng.Rng seeded (by default) from a fixed
//	string, so repeated calls with the same inputs and seed reproduce the
//	same bounds bit-for-bit. Callers that need independent bounds across
//	calls must pass distinct seeds explicitly.
package bounds
