package sample

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	_, err := New()
	require.ErrorIs(t, err, ErrEmpty)

	_, err = New(1, 2, nan())
	require.ErrorIs(t, err, ErrNotFinite)
}

func nan() float64 {
	var zero float64
	return zero / zero
}

func TestValuesPreservesOrder(t *testing.T) {
	s := Must(3, 1, 2)
	require.Equal(t, []float64{3, 1, 2}, s.Values())
}

func TestSortedIsCachedAndNonDecreasing(t *testing.T) {
	s := Must(3, 1, 2)
	sorted1 := s.Sorted()
	require.Equal(t, []float64{1, 2, 3}, sorted1)

	// Values() must remain in original order.
	require.Equal(t, []float64{3, 1, 2}, s.Values())

	sorted2 := s.Sorted()
	require.Equal(t, sorted1, sorted2)
}

func TestMedianOddEven(t *testing.T) {
	require.Equal(t, 3.0, Median([]float64{1, 2, 3, 4, 5}))
	require.Equal(t, 2.5, Median([]float64{1, 2, 3, 4}))
	require.Equal(t, 1.0, Median([]float64{1}))
}

func TestQuantileBoundaries(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	require.Equal(t, 1.0, Quantile(sorted, 0))
	require.Equal(t, 10.0, Quantile(sorted, 1))
}

func TestQuantileMatchesMedianAtHalf(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5}
	require.InDelta(t, Median(sorted), Quantile(sorted, 0.5), 1e-12)
}

func TestQuantileSingleElement(t *testing.T) {
	require.Equal(t, 42.0, Quantile([]float64{42}, 0.3))
}
