// Package fastselect computes order statistics of the three implicit
// pairwise matrices pragmastat's point estimators are built on, without
// ever materializing the O(n²) pair set:
//
//	Avg(i,j)  = (x[i]+x[j])/2   for 0 <= i <= j < n   (Walsh averages)
//	Diff(i,j) = x[j]-x[i]       for 0 <= i <  j < n   (pairwise |differences|)
//	Sub(i,j)  = x[i]-y[j]       for 0 <= i < m, 0 <= j < n (cross-sample differences)
//
// # Algorithm
//
//	Every entry point reduces to the same two primitives:
//
//	  - a monotone two-pointer sweep that counts, in O(n) (or O(m+n) for the
//	    cross-sample case), how many pairs fall at or below a real-valued
//	    threshold — Avg and Diff counting sweep in opposite pointer
//	    directions because Avg(i,j) grows with i while Diff(i,j) shrinks the
//	    valid column range as i grows, and Sub(i,j) combines both samples;
//	  - an outer bisection over the real line (bisectKth) that narrows a
//	    bracket until it pins down the k-th smallest pair value, using the
//	    count sweep as its comparator.
//
//	This is the same bisect-and-count shape spec.md §4.6 describes for
//	CenterQuantiles; Center, Spread, and Shift are expressed as one or two
//	calls to the corresponding kth-order-statistic primitive. No per-row
//	active windows (Monahan's narrowing scheme) are kept. The bisection runs
//	until its bracket closes to two adjacent float64 values, which yields
//	the order statistic itself, or until the 128-iteration cap, which binds
//	only on brackets spanning many binades (such as a target of zero); the
//	result then lies within the initial bracket width times 2^-128 of it.
//
// # Complexity
//
//	Each count sweep is O(n) (or O(m+n)); the outer bisection runs a bounded
//	number of iterations (<=128, matching spec.md's FastShift cap), so the
//	whole selection is O(n log L) / O((m+n) log L) where L is the
//	floating-point precision bound — matching spec.md §2's stated bounds.
//	No step allocates memory proportional to n²; the two-pointer sweeps use
//	O(1) extra state beyond their moving indices.
package fastselect
