package numeric

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultEpsilon is the absolute tolerance used when a caller does not supply one.
const DefaultEpsilon = 1e-12

// IsZero reports whether |x| <= eps
func IsZero(x, eps float64) bool {
	return scalar.EqualWithinAbs(x, 0, eps)
}

// IsEqual reports whether |a-b| <= eps
func IsEqual(a, b, eps float64) bool {
	return scalar.EqualWithinAbs(a, b, eps)
}

// IsFinite reports whether x is neither NaN nor an infinity
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
