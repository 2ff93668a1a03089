// Package unimodal inspects sequences of signed errors sampled across a
// search bracket: it finds the sample closest to zero, checks that the
// sequence changes direction at most once and picks the neighbouring
// indices that enclose the optimum.
package unimodal

import (
	"fmt"
	"math"

	"github.com/philipparndt/gofit/pkg/numeric"
	"golang.org/x/exp/constraints"
)

type slope int

const (
	slopeDown slope = iota - 1
	slopeFlat
	slopeUp
)

// IndexOfMinimumAbs returns the index of the error with the smallest
// absolute value. The first occurrence wins on ties.
func IndexOfMinimumAbs[E constraints.Float](errs []E) (int, error) {
	if err := numeric.RequireNonEmpty(errs); err != nil {
		return 0, err
	}

	best := 0
	bestAbs := math.Abs(float64(errs[0]))
	for i := 1; i < len(errs); i++ {
		if a := math.Abs(float64(errs[i])); a < bestAbs {
			best, bestAbs = i, a
		}
	}
	return best, nil
}

// CheckSingleMinimum fails with ErrValue when errs changes direction more
// than once. Consecutive values equal within eps form a plateau, which is
// never counted as a change. Sequences shorter than three always pass.
func CheckSingleMinimum[E constraints.Float](errs []E, eps float64) error {
	if len(errs) < 3 {
		return nil
	}

	changes := 0
	previous := slopeFlat
	for i := 1; i < len(errs); i++ {
		current := classify(float64(errs[i-1]), float64(errs[i]), eps)
		if current == slopeFlat {
			continue
		}
		if previous != slopeFlat && current != previous {
			changes++
			if changes > 1 {
				return fmt.Errorf("error sequence changes direction more than once at index %d: %w", i, numeric.ErrValue)
			}
		}
		previous = current
	}
	return nil
}

// IndicesAroundMinimumAbs returns the pair of indices enclosing the error
// with the smallest absolute value: (0, 1) when it is the first element,
// (n-2, n-1) when it is the last, otherwise its two neighbours.
func IndicesAroundMinimumAbs[E constraints.Float](errs []E, eps float64) (int, int, error) {
	if err := numeric.RequireLengthGreaterOrEqual(errs, 3); err != nil {
		return 0, 0, err
	}
	if err := CheckSingleMinimum(errs, eps); err != nil {
		return 0, 0, err
	}

	idx, err := IndexOfMinimumAbs(errs)
	if err != nil {
		return 0, 0, err
	}

	n := len(errs)
	switch idx {
	case 0:
		return 0, 1, nil
	case n - 1:
		return n - 2, n - 1, nil
	default:
		return idx - 1, idx + 1, nil
	}
}

// RangeLength returns max(errs) - min(errs).
func RangeLength[E constraints.Float](errs []E) (E, error) {
	if err := numeric.RequireLengthGreaterOrEqual(errs, 2); err != nil {
		return 0, err
	}

	lo, hi := errs[0], errs[0]
	for _, e := range errs[1:] {
		lo = min(lo, e)
		hi = max(hi, e)
	}
	return hi - lo, nil
}

func classify(a, b, eps float64) slope {
	switch {
	case numeric.IsEqual(a, b, eps):
		return slopeFlat
	case b < a:
		return slopeDown
	default:
		return slopeUp
	}
}
