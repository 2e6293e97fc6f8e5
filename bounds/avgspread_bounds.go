package bounds

// AvgSpreadBounds returns the distribution-free confidence interval for
// AvgSpread(x, y) by a Bonferroni split: each sample's SpreadBounds is
// computed at half the requested misrate, and the two intervals are
// combined as a weighted average with weights n/(n+m) and m/(n+m), the
// same weights AvgSpread itself uses.
func AvgSpreadBounds(x, y []float64, misrate float64, seed ...string) (Bounds, error) {
	alpha := misrate / 2

	seedX, seedY := defaultSpreadBoundsSeed+"-x", defaultSpreadBoundsSeed+"-y"
	if len(seed) > 0 && seed[0] != "" {
		seedX, seedY = seed[0]+"-x", seed[0]+"-y"
	}

	bx, err := SpreadBounds(x, alpha, seedX)
	if err != nil {
		return Bounds{}, err
	}
	by, err := SpreadBounds(y, alpha, seedY)
	if err != nil {
		return Bounds{}, err
	}

	n, m := float64(len(x)), float64(len(y))
	wx, wy := n/(n+m), m/(n+m)

	return Bounds{
		Lower: wx*bx.Lower + wy*by.Lower,
		Upper: wx*bx.Upper + wy*by.Upper,
	}, nil
}
