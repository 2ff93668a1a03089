package unimodal

import (
	"testing"

	"github.com/philipparndt/gofit/pkg/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexOfMinimumAbs(t *testing.T) {
	idx, err := IndexOfMinimumAbs([]float64{3, -2, 0.5, -0.5, 4})
	require.NoError(t, err)
	assert.Equal(t, 2, idx, "first occurrence should win on ties")

	idx, err = IndexOfMinimumAbs([]float32{-7})
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = IndexOfMinimumAbs([]float64{})
	require.ErrorIs(t, err, numeric.ErrValue)
}

func TestCheckSingleMinimum(t *testing.T) {
	tests := []struct {
		name string
		errs []float64
		ok   bool
	}{
		{"monotone decreasing", []float64{5, 4, 3, 2, 1}, true},
		{"monotone increasing", []float64{1, 2, 3, 4}, true},
		{"single valley", []float64{5, 3, 1, 2, 4}, true},
		{"single peak", []float64{1, 3, 5, 4, 2}, true},
		{"plateau in valley", []float64{5, 3, 1, 1, 1, 2, 4}, true},
		{"plateau in monotone run", []float64{4, 3, 3, 3, 2}, true},
		{"all equal", []float64{2, 2, 2, 2}, true},
		{"short sequence", []float64{1, 5}, true},
		{"two reversals", []float64{5, 1, 4, 0, 6}, false},
		{"two reversals across plateau", []float64{3, 1, 1, 2, 2, 0}, false},
		{"zig zag", []float64{1, 2, 1, 2, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckSingleMinimum(tt.errs, numeric.DefaultEpsilon)
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, numeric.ErrValue)
			}
		})
	}
}

func TestCheckSingleMinimumTolerance(t *testing.T) {
	noisy := []float64{3, 2, 1, 1 + 1e-14, 1, 2, 3}
	require.NoError(t, CheckSingleMinimum(noisy, numeric.DefaultEpsilon))
	require.ErrorIs(t, CheckSingleMinimum(noisy, 0), numeric.ErrValue)
}

func TestIndicesAroundMinimumAbs(t *testing.T) {
	tests := []struct {
		name   string
		errs   []float64
		lo, hi int
	}{
		{"interior", []float64{9, 4, 1, 0.1, 2, 5}, 2, 4},
		{"second position", []float64{3, -0.2, -1, -4}, 0, 2},
		{"first position", []float64{0.5, 1, 2, 3}, 0, 1},
		{"last position", []float64{8, 6, 4, 2}, 2, 3},
		{"signed crossing", []float64{-3, -1, 0.2, 2, 4}, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, err := IndicesAroundMinimumAbs(tt.errs, numeric.DefaultEpsilon)
			require.NoError(t, err)
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)
		})
	}
}

func TestIndicesAroundMinimumAbsPreconditions(t *testing.T) {
	_, _, err := IndicesAroundMinimumAbs([]float64{1, 0}, numeric.DefaultEpsilon)
	require.ErrorIs(t, err, numeric.ErrValue)

	_, _, err = IndicesAroundMinimumAbs([]float64{5, 1, 4, 0, 6}, numeric.DefaultEpsilon)
	require.ErrorIs(t, err, numeric.ErrValue)
}

func TestRangeLength(t *testing.T) {
	r, err := RangeLength([]float64{-2, 5, 1, 3})
	require.NoError(t, err)
	assert.InDelta(t, 7.0, r, 1e-15)

	_, err = RangeLength([]float64{1})
	require.ErrorIs(t, err, numeric.ErrValue)
}
