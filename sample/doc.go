// Package sample defines the Sample type — a finite, immutable, ordered
// sequence of real numbers — and the two quantile primitives every
// estimator in this module ultimately reduces to: Median and Quantile.
//
// # What & why
//
//	Every selection engine in fastselect and every point estimator in
//	estimator operates on a sorted view of its input. Sample builds that
//	view lazily on the first Sorted call and caches it, so later Sorted
//	calls on the same Sample do not re-sort. The estimator and bounds
//	functions take plain slices and build a fresh Sample on every call, so
//	each such call sorts its input once. Sorted fills the cache on its
//	first call; calling it from several goroutines on the same Sample
//	before the cache is filled is a data race. Apart from that cache,
//	nothing mutates a Sample after construction.
//
// # Invariants
//
//	n >= 1; every value is finite (no NaN, no ±Inf); the sorted view is a
//	non-decreasing permutation of the values view. New validates these at
//	construction time so every downstream package can assume them.
package sample
