// Package estimator implements pragmastat's seven point estimators:
// Center, Spread, RelSpread, Shift, Ratio, AvgSpread, and Disparity.
//
// # What & why
//
//	Each function here validates its preconditions, then delegates the
//	actual order-statistic work to package fastselect. This package owns
//	only the public contract: input validation, the (Kind, Subject)
//	violation taxonomy spec.md §7 requires every language port to share,
//	and the handful of algebraic compositions (RelSpread, Ratio, AvgSpread,
//	Disparity) that sit on top of the three primitive estimators (Center,
//	Spread, Shift).
//
// # Determinism
//
//	Every function here is a pure function of its inputs; none consume
//	randomness, so none take an *rng.Rng. (The randomized estimators —
//	SpreadBounds's pairing shuffle, CenterBoundsApprox's bootstrap — live
//	in package bounds, one layer up.)
//
// # Error handling
//
//	Validation failures are returned as *Violation, which wraps one of the
//	package's sentinel Kind values so callers can branch with errors.Is
//	against the Kind constants, while still carrying the Subject ("x", "y",
//	or "misrate") the reference test fixtures pin down.
package estimator
