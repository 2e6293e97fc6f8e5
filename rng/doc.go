// Package rng provides the single deterministic pseudo-random source shared
// by every randomized estimator in pragmastat.
//
// # What & why
//
//	Bootstrap bounds (bounds.CenterBoundsApprox) and shuffle-based pairing
//	(bounds.SpreadBounds) need randomness, but pragmastat's determinism
//	guarantee — same inputs + same seed ⇒ bit-identical output across every
//	language port — rules out math/rand or crypto/rand. This package
//	reimplements xoshiro256++ (Blackman & Vigna) seeded via SplitMix64, the
//	same generator the reference implementation uses, so that every port
//	produces the exact same draw sequence for a given seed.
//
// # Seeding
//
//	Two constructors, matching the two seeding paths a caller may use:
//
//	  - FromInt64(k): treats k as an unsigned 64-bit value and runs it
//	    through SplitMix64 four times to fill the 256-bit xoshiro state.
//	  - FromString(s): hashes the UTF-8 bytes of s with 64-bit FNV-1a, then
//	    feeds the resulting hash through the same SplitMix64 path.
//
// # Determinism
//
//	Every exported draw method advances the generator's internal state by
//	exactly the documented number of xoshiro256++ steps; none read the
//	clock, the OS entropy pool, or any process-global state. A *Rng is a
//	mutable resource: callers that need independent streams (e.g. one
//	per parallel worker) must construct one *Rng per stream, typically by
//	seeding each with a string built from a shared base plus a worker id.
// A *Rng is not safe for concurrent use by multiple goroutines.
package rng
