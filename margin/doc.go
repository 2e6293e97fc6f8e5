// Package margin converts a requested misrate into the discrete
// order-statistic trim counts the bounds estimators need.
//
// # What & why
//
//	A confidence interval built from order statistics is really just "keep
//	everything except the outermost r entries on each side." Choosing r so
//	the resulting miss probability is as close to (but not above) the
//	caller's misrate as possible is an exercise in inverting a null
//	distribution — Wilcoxon signed-rank for Center, sign/binomial for
//	Median, Mann–Whitney U for the two-sample case. This package holds
//	those three inversions plus the minimum-achievable-misrate floor below
//	which no discrete interval exists.
//
// # Exact vs. approximate
//
//	Each table is exact (built from the true discrete null distribution)
//	for small sample sizes, where the full distribution is cheap to
//	enumerate, and falls back to a continuity-corrected normal
//	approximation once enumeration would be too slow to be worth it. The
//	crossover points (n<=63 for the signed-rank table, n<=1023 for the sign
//	table, n*m<=4000 for the pairwise table) match the thresholds spec.md
//	§4.7 documents for the reference implementation.
//
// Every function here is a pure, deterministic function of its integer
// arguments and the misrate (SignMargin's randomised variant additionally
// takes an explicit *rng.Rng and documents the exactly one Uniform() draw
// it consumes).
package margin
