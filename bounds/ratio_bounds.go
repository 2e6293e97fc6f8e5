package bounds

import "math"

// RatioBounds returns the distribution-free confidence interval for
// Ratio(x, y) by applying ShiftBounds in the log domain and exponentiating
// the result. Both samples must be strictly positive.
func RatioBounds(x, y []float64, misrate float64) (Bounds, error) {
	logX, err := toLog(x, "x")
	if err != nil {
		return Bounds{}, err
	}
	logY, err := toLog(y, "y")
	if err != nil {
		return Bounds{}, err
	}

	b, err := ShiftBounds(logX, logY, misrate)
	if err != nil {
		return Bounds{}, err
	}
	return Bounds{Lower: math.Exp(b.Lower), Upper: math.Exp(b.Upper)}, nil
}

func toLog(values []float64, subject string) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return nil, violation(KindPositivity, subject)
		}
		out[i] = math.Log(v)
	}
	return out, nil
}
