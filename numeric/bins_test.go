package numeric_test

import (
	"testing"

	"github.com/repositony/ntools-go/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBinInclusive(t *testing.T) {
	edges := []float64{0, 1, 2, 3}

	cases := []struct {
		name    string
		value   float64
		want    int
		wantErr bool
	}{
		{"lowest edge is bin 0", 0, 0, false},
		{"highest edge is last bin", 3, 2, false},
		{"interior value", 1.5, 1, false},
		{"boundary belongs to lower bin", 1, 0, false},
		{"out of range below", -1, 0, true},
		{"out of range above", 4, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := numeric.FindBinInclusive(edges, tc.value)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFindBinExclusive(t *testing.T) {
	edges := []float64{0, 1, 2, 3}

	cases := []struct {
		name    string
		value   float64
		want    int
		wantErr bool
	}{
		{"lowest edge is bin 0", 0, 0, false},
		{"highest edge belongs to last bin", 3, 2, false},
		{"interior value", 1.5, 1, false},
		{"boundary belongs to upper bin", 1, 1, false},
		{"out of range below", -1, 0, true},
		{"out of range above", 4, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := numeric.FindBinExclusive(edges, tc.value)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFindBinAverage(t *testing.T) {
	edges := []float64{0, 1, 2, 3}

	got, err := numeric.FindBinAverage(edges, 1.0, 0.01)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, got)

	got, err = numeric.FindBinAverage(edges, 1.5, 0.01)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)

	got, err = numeric.FindBinAverage(edges, 0.0, 0.01)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, got)

	_, err = numeric.FindBinAverage(edges, 0.5, 1.5)
	assert.ErrorIs(t, err, numeric.ErrInvalidTolerance)
}

// TestFindBinAverageUsesLocalBinWidth exercises a non-uniform, log-spaced
// mesh where a global (whole-range) tolerance and a per-bin-local
// tolerance give different answers. A value 9 units past the interior
// edge at 10 is far outside that bin's own 0.9-unit tolerance window
// (0.01 of its 90-wide bin), even though it is within 0.01 of the
// overall 999-wide range — the bug a global tolerance would produce.
func TestFindBinAverageUsesLocalBinWidth(t *testing.T) {
	edges := []float64{1, 10, 100, 1000}

	got, err := numeric.FindBinAverage(edges, 19, 0.01)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got, "should resolve to the single bin [10,100), not treat 19 as near the 10 edge")

	got, err = numeric.FindBinAverage(edges, 1.05, 0.01)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, got, "lower extreme tolerance should scale by the first bin's width")

	got, err = numeric.FindBinAverage(edges, 999, 0.01)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, got, "upper extreme tolerance should scale by the last bin's width")

	got, err = numeric.FindBinAverage(edges, 100, 0.02)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got, "near the interior edge at 100, tolerance scales by the bin actually straddled")
}

func TestTryMinTryMax(t *testing.T) {
	_, err := numeric.TryMin(nil)
	assert.ErrorIs(t, err, numeric.ErrEmptySlice)

	min, err := numeric.TryMin([]float64{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 1.0, min)

	max, err := numeric.TryMax([]float64{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 3.0, max)
}

func TestSci(t *testing.T) {
	assert.Equal(t, "1.00000e+00", numeric.Sci(1.0, 5, 2))
	assert.Equal(t, "1.50000e-05", numeric.Sci(0.000015, 5, 2))
	assert.Equal(t, "-2.00000e+100", numeric.Sci(-2e100, 5, 2))
}
