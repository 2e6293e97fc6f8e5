package rng

import "math/bits"

// splitMix64Golden is the golden-ratio increment used by the SplitMix64
// state advance. Constant per Steele, Lea & Flood (2014).
const splitMix64Golden uint64 = 0x9E3779B97F4A7C15

// fnvOffset64 and fnvPrime64 are the 64-bit FNV-1a basis and prime.
const (
	fnvOffset64 uint64 = 0xCBF29CE484222325
	fnvPrime64  uint64 = 0x100000001B3
)

// Rng is a xoshiro256++ generator. The zero value is not usable; construct
// with FromInt64 or FromString.
type Rng struct {
	s0, s1, s2, s3 uint64
}

// splitMix64 advances state in place and returns the next mixed output.
// This is the canonical SplitMix64 step (Vigna): state is the running
// generator, the returned value is its avalanche-mixed output.
func splitMix64(state *uint64) uint64 {
	*state += splitMix64Golden
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// seedFromState fills a xoshiro256++ state by running SplitMix64 four times
// from the given running state, guarding against the (astronomically
// unlikely) all-zero state xoshiro256++ must never enter.
func seedFromState(state uint64) Rng {
	var r Rng
	r.s0 = splitMix64(&state)
	r.s1 = splitMix64(&state)
	r.s2 = splitMix64(&state)
	r.s3 = splitMix64(&state)
	if r.s0 == 0 && r.s1 == 0 && r.s2 == 0 && r.s3 == 0 {
		r.s0 = 1
	}
	return r
}

// FromInt64 seeds a generator from a signed 64-bit integer, reinterpreted
// as unsigned and expanded via SplitMix64.
func FromInt64(seed int64) *Rng {
	r := seedFromState(uint64(seed))
	return &r
}

// FromString seeds a generator by hashing the UTF-8 bytes of seed with
// 64-bit FNV-1a, then expanding the hash via SplitMix64.
func FromString(seed string) *Rng {
	h := fnvOffset64
	for i := 0; i < len(seed); i++ {
		h ^= uint64(seed[i])
		h *= fnvPrime64
	}
	r := seedFromState(h)
	return &r
}

// next performs one xoshiro256++ step and returns the raw 64-bit output.
func (r *Rng) next() uint64 {
	result := bits.RotateLeft64(r.s0+r.s3, 23) + r.s0

	t := r.s1 << 17

	r.s2 ^= r.s0
	r.s3 ^= r.s1
	r.s1 ^= r.s2
	r.s0 ^= r.s3
	r.s2 ^= t
	r.s3 = bits.RotateLeft64(r.s3, 45)

	return result
}

// Uniform returns a pseudo-random double in [0, 1), built from the top 53
// bits of one raw draw.
func (r *Rng) Uniform() float64 {
	return float64(r.next()>>11) / (1 << 53)
}

// UniformInt returns a pseudo-random integer in [lo, hi) via modulo
// reduction of one raw draw. Returns lo if lo >= hi. The modulo reduction
// carries a slight, documented, non-cryptographic bias (spec open
// question); it is kept because the reference fixtures depend on it.
func (r *Rng) UniformInt(lo, hi int64) int64 {
	if lo >= hi {
		return lo
	}
	span := uint64(hi - lo)
	return lo + int64(r.next()%span)
}

// UniformBool returns a pseudo-random boolean from the low bit of one raw
// draw.
func (r *Rng) UniformBool() bool {
	return r.next()&1 == 1
}

// UniformUint64 returns a raw, full-width pseudo-random draw.
func (r *Rng) UniformUint64() uint64 {
	return r.next()
}

// UniformInt32 returns a pseudo-random int32 truncated from one raw draw.
func (r *Rng) UniformInt32() int32 {
	return int32(uint32(r.next()))
}

// Shuffle returns a new slice holding a Fisher–Yates permutation of x.
// x is never mutated. Fails with ErrEmptyInput if x is empty.
func (r *Rng) Shuffle(x []float64) ([]float64, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	out := make([]float64, n)
	copy(out, x)

	for i := n - 1; i > 0; i-- {
		j := r.UniformInt(0, int64(i+1))
		out[i], out[j] = out[j], out[i]
	}

	return out, nil
}

// Sample draws k elements from x without replacement using single-pass
// selection sampling, preserving x's original order. Fails with
// ErrInvalidSampleSize if k <= 0. If k >= len(x), returns a copy of x.
func (r *Rng) Sample(x []float64, k int) ([]float64, error) {
	if k <= 0 {
		return nil, ErrInvalidSampleSize
	}
	n := len(x)
	if k >= n {
		out := make([]float64, n)
		copy(out, x)
		return out, nil
	}

	out := make([]float64, 0, k)
	chosen := 0
	for i := 0; i < n && chosen < k; i++ {
		remaining := n - i
		needed := k - chosen
		if r.Uniform() < float64(needed)/float64(remaining) {
			out = append(out, x[i])
			chosen++
		}
	}
	return out, nil
}

// Resample draws k elements from x with replacement. Each draw consumes
// one UniformInt(0, len(x)) call, matching the bootstrap resampling
// contract every pragmastat port must share. Fails with
// ErrInvalidResampleSize if k <= 0, or ErrEmptyInput if x is empty.
func (r *Rng) Resample(x []float64, k int) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if k <= 0 {
		return nil, ErrInvalidResampleSize
	}

	n := int64(len(x))
	out := make([]float64, k)
	for i := 0; i < k; i++ {
		out[i] = x[r.UniformInt(0, n)]
	}
	return out, nil
}
