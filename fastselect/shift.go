package fastselect

import "math"

// Shift returns the type-7 quantiles, at each probability in ps, of the
// cross-sample difference multiset {xs[i]-ys[j]}. xs and ys must be
// non-decreasing and non-empty; ps must be non-empty and every entry in
// [0, 1].
func Shift(xs, ys []float64, ps []float64) ([]float64, error) {
	m, n := len(xs), len(ys)
	if m == 0 || n == 0 {
		return nil, ErrEmptyInput
	}
	if len(ps) == 0 {
		return nil, ErrNoProbabilities
	}
	for _, p := range ps {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return nil, ErrRankOutOfRange
		}
	}

	total := int64(m) * int64(n)
	out := make([]float64, len(ps))
	cache := map[int64]float64{}

	kth := func(k int64) float64 {
		if v, ok := cache[k]; ok {
			return v
		}
		v := SubQuantile(xs, ys, k)
		cache[k] = v
		return v
	}

	for idx, p := range ps {
		h := 1 + float64(total-1)*p
		loRank := int64(math.Floor(h))
		hiRank := int64(math.Ceil(h))
		if loRank < 1 {
			loRank = 1
		}
		if hiRank > total {
			hiRank = total
		}
		w := h - float64(loRank)

		lo := kth(loRank)
		if hiRank == loRank || w == 0 {
			out[idx] = lo
			continue
		}
		hi := kth(hiRank)
		out[idx] = (1-w)*lo + w*hi
	}

	return out, nil
}

// SubQuantile returns the k-th smallest (1-indexed) cross-sample
// difference xs[i]-ys[j]. xs and ys must be non-decreasing and non-empty.
// k must lie in [1, len(xs)*len(ys)].
func SubQuantile(xs, ys []float64, k int64) float64 {
	lo := xs[0] - ys[len(ys)-1]
	hi := xs[len(xs)-1] - ys[0]
	return bisectKth(lo, hi, k, func(threshold float64) int64 {
		return countSubLE(xs, ys, threshold)
	})
}
