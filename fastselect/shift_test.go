package fastselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShiftKnownValue(t *testing.T) {
	x := sortedCopy([]float64{0, 3, 6, 9, 12})
	y := sortedCopy([]float64{0, 2, 4, 6, 8})

	q, err := Shift(x, y, []float64{0.5})
	require.NoError(t, err)
	require.Len(t, q, 1)
	require.InDelta(t, 2.0, q[0], 1e-9)
}

func TestShiftAntisymmetry(t *testing.T) {
	x := sortedCopy([]float64{1, 4, 9, 2})
	y := sortedCopy([]float64{3, 5, 1, 8})

	qxy, err := Shift(x, y, []float64{0.5})
	require.NoError(t, err)
	qyx, err := Shift(y, x, []float64{0.5})
	require.NoError(t, err)

	require.InDelta(t, -qxy[0], qyx[0], 1e-9)
}

func TestShiftSelfIsZero(t *testing.T) {
	x := sortedCopy([]float64{1, 4, 9, 2, 7})
	q, err := Shift(x, x, []float64{0.5})
	require.NoError(t, err)
	require.InDelta(t, 0.0, q[0], 1e-9)
}

func TestShiftMonotoneInP(t *testing.T) {
	x := sortedCopy([]float64{1, 4, 9, 2, 7, 11, 3})
	y := sortedCopy([]float64{3, 5, 1, 8, 0, 6})

	q, err := Shift(x, y, []float64{0.1, 0.3, 0.5, 0.7, 0.9})
	require.NoError(t, err)
	for i := 1; i < len(q); i++ {
		require.GreaterOrEqual(t, q[i], q[i-1])
	}
}

func TestShiftEmptyFails(t *testing.T) {
	_, err := Shift(nil, []float64{1}, []float64{0.5})
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestShiftNoProbabilitiesFails(t *testing.T) {
	_, err := Shift([]float64{1}, []float64{1}, nil)
	require.ErrorIs(t, err, ErrNoProbabilities)
}

func TestShiftLargeInputPerformance(t *testing.T) {
	n := 100000
	x := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i + 1)
	}
	q, err := Shift(x, x, []float64{0.5})
	require.NoError(t, err)
	require.InDelta(t, 0.0, q[0], 1e-6)
}
