package estimator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCenterKnownValue(t *testing.T) {
	c, err := Center([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	require.InDelta(t, 3, c, 1e-9)
}

func TestCenterTranslationEquivariance(t *testing.T) {
	base, err := Center([]float64{1, 2, 3, 4, 5})
	require.NoError(t, err)
	shifted, err := Center([]float64{11, 12, 13, 14, 15})
	require.NoError(t, err)
	require.InDelta(t, base+10, shifted, 1e-9)
}

func TestSpreadKnownValue(t *testing.T) {
	s, err := Spread([]float64{1, 3, 5, 7, 9})
	require.NoError(t, err)
	require.InDelta(t, 4, s, 1e-9)
}

func TestSpreadScaleEquivariance(t *testing.T) {
	base, err := Spread([]float64{1, 3, 5, 7, 9})
	require.NoError(t, err)
	scaled, err := Spread([]float64{2, 6, 10, 14, 18})
	require.NoError(t, err)
	require.InDelta(t, base*2, scaled, 1e-9)
}

func TestRelSpreadZeroCenter(t *testing.T) {
	_, err := RelSpread([]float64{-2, -1, 0, 1, 2})
	require.Error(t, err)
	var v *Violation
	require.True(t, errors.As(err, &v))
	require.Equal(t, KindSparity, v.Kind)
}

func TestShiftKnownValue(t *testing.T) {
	s, err := Shift([]float64{0, 3, 6, 9, 12}, []float64{0, 2, 4, 6, 8})
	require.NoError(t, err)
	require.InDelta(t, 2, s, 1e-9)
}

func TestShiftAntisymmetry(t *testing.T) {
	x := []float64{0, 3, 6, 9, 12}
	y := []float64{0, 2, 4, 6, 8}
	xy, err := Shift(x, y)
	require.NoError(t, err)
	yx, err := Shift(y, x)
	require.NoError(t, err)
	require.InDelta(t, -xy, yx, 1e-9)
}

func TestShiftSelfIsZero(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	s, err := Shift(x, x)
	require.NoError(t, err)
	require.InDelta(t, 0, s, 1e-9)
}

func TestRatioKnownValue(t *testing.T) {
	r, err := Ratio([]float64{1, 2, 4, 8, 16}, []float64{2, 4, 8, 16, 32})
	require.NoError(t, err)
	require.InDelta(t, 0.5, r, 1e-9)
}

func TestRatioIsNotCenterRatio(t *testing.T) {
	// x and y are not a common scalar multiple of each other, so
	// Center(x)/Center(y) (3.75/2 = 1.875) disagrees with the median of
	// pairwise ratios x[i]/y[j], which is the quantity Ratio must return.
	r, err := Ratio([]float64{1, 2, 10}, []float64{1, 2, 3})
	require.NoError(t, err)
	require.InDelta(t, 1.0, r, 1e-9)
}

func TestRatioRejectsNonPositive(t *testing.T) {
	_, err := Ratio([]float64{1, 2, -3}, []float64{1, 2, 3})
	require.Error(t, err)
	var v *Violation
	require.True(t, errors.As(err, &v))
	require.Equal(t, KindPositivity, v.Kind)
	require.Equal(t, "x", v.Subject)
}

func TestAvgSpreadKnownValue(t *testing.T) {
	x := []float64{0, 3, 6, 9, 12}
	y := []float64{0, 2, 4, 6, 8}
	s, err := AvgSpread(x, y)
	require.NoError(t, err)
	require.InDelta(t, 5, s, 1e-9)
}

func TestDisparityKnownValue(t *testing.T) {
	x := []float64{0, 3, 6, 9, 12}
	y := []float64{0, 2, 4, 6, 8}
	d, err := Disparity(x, y)
	require.NoError(t, err)
	require.InDelta(t, 0.4, d, 1e-9)
}

func TestDisparityZeroAvgSpread(t *testing.T) {
	x := []float64{5, 5, 5}
	y := []float64{5, 5, 5}
	_, err := Disparity(x, y)
	require.Error(t, err)
	var v *Violation
	require.True(t, errors.As(err, &v))
	require.Equal(t, KindSparity, v.Kind)
}

func TestEmptySampleIsValidityViolation(t *testing.T) {
	_, err := Center(nil)
	require.Error(t, err)
	var v *Violation
	require.True(t, errors.As(err, &v))
	require.Equal(t, KindValidity, v.Kind)
	require.Equal(t, "x", v.Subject)
	require.True(t, errors.Is(err, KindValidity))
}

func TestShiftSecondSubjectOnEmptyY(t *testing.T) {
	_, err := Shift([]float64{1, 2, 3}, nil)
	require.Error(t, err)
	var v *Violation
	require.True(t, errors.As(err, &v))
	require.Equal(t, "y", v.Subject)
}
