// Package pragmastat is a pragmatic statistical toolkit: robust one- and
// two-sample estimators plus their distribution-free confidence bounds.
//
// # What is pragmastat?
//
//	Classic estimators (mean, standard deviation, Student/Wilcoxon
//	intervals) are fast but fragile under outliers and non-normal data.
//	pragmastat trades a modest amount of statistical efficiency for
//	robustness: every estimator here is a median of pairwise combinations
//	of the input, computed without ever materializing the O(n²) pair set.
//
// Under the hood, everything is organized into six subpackages:
//
//	rng/        — xoshiro256++ PRNG shared by every randomized estimator
//	sample/     — the Sample type, Median, and type-7 Quantile
//	fastselect/ — O(n log n) / O((m+n) log L) implicit-matrix selection
//	margin/     — misrate → discrete rank-index conversion tables
//	estimator/  — Center, Spread, RelSpread, Shift, Ratio, AvgSpread, Disparity
//	bounds/     — confidence-interval counterparts of every estimator above
//
// Quick example:
//
//	x := []float64{1, 2, 3, 4, 5}
//	c, _ := estimator.Center(x) // 3
//	s, _ := estimator.Spread(x) // 2
//
// # Determinism
//
//	Every randomized call (bootstrap bounds, shuffle-based pairing) is a
//	pure function of its inputs and an explicit *rng.Rng or seed. There is
//	no hidden global state and no time-based seeding anywhere in this
//	module; see package rng's doc comment for the exact seeding and draw
//	contract that every language port of pragmastat must match bit-for-bit.
//
// This repository implements the numerical engine only. The CLI
// simulation harness, JSON fixture loading, plotting, and PDF/website
// generation that accompany the wider pragmastat project are external
// collaborators and are not part of this module.
//
//	go get github.com/pragmastat-go/pragmastat
package pragmastat
