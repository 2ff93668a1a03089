package numeric

import "errors"

// Error kinds. Every failure returned by the fitting packages wraps exactly
// one of these, so callers can match with errors.Is.
var (
	// ErrType is returned when an input is not a sequence.
	ErrType = errors.New("type error")

	// ErrValue is returned for empty or wrongly sized inputs, invalid radii,
	// unreachable points and search spaces that are not unimodal.
	ErrValue = errors.New("value error")

	// ErrArithmetic is returned when a solving determinant is zero in practice.
	ErrArithmetic = errors.New("arithmetic error")
)
