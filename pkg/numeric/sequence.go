package numeric

import (
	"fmt"
	"reflect"
)

// RequireArray fails with ErrType unless x is a slice or an array.
// Strings are rejected even though they have a length.
func RequireArray(x any) error {
	if x == nil {
		return fmt.Errorf("expected a sequence, got nil: %w", ErrType)
	}

	switch reflect.TypeOf(x).Kind() {
	case reflect.Slice, reflect.Array:
		return nil
	default:
		return fmt.Errorf("expected a sequence, got %T: %w", x, ErrType)
	}
}

// RequireNonEmpty fails with ErrValue if s has no elements
func RequireNonEmpty[S ~[]E, E any](s S) error {
	if len(s) == 0 {
		return fmt.Errorf("sequence is empty: %w", ErrValue)
	}
	return nil
}

// RequireLengthEqual fails with ErrValue unless len(s) == n
func RequireLengthEqual[S ~[]E, E any](s S, n int) error {
	if len(s) != n {
		return fmt.Errorf("expected exactly %d elements, got %d: %w", n, len(s), ErrValue)
	}
	return nil
}

// RequireLengthGreater fails with ErrValue unless len(s) > n
func RequireLengthGreater[S ~[]E, E any](s S, n int) error {
	if len(s) <= n {
		return fmt.Errorf("expected more than %d elements, got %d: %w", n, len(s), ErrValue)
	}
	return nil
}

// RequireLengthGreaterOrEqual fails with ErrValue unless len(s) >= n
func RequireLengthGreaterOrEqual[S ~[]E, E any](s S, n int) error {
	if len(s) < n {
		return fmt.Errorf("expected at least %d elements, got %d: %w", n, len(s), ErrValue)
	}
	return nil
}

// RequireLengthLess fails with ErrValue unless len(s) < n
func RequireLengthLess[S ~[]E, E any](s S, n int) error {
	if len(s) >= n {
		return fmt.Errorf("expected fewer than %d elements, got %d: %w", n, len(s), ErrValue)
	}
	return nil
}

// RequireLengthLessOrEqual fails with ErrValue unless len(s) <= n
func RequireLengthLessOrEqual[S ~[]E, E any](s S, n int) error {
	if len(s) > n {
		return fmt.Errorf("expected at most %d elements, got %d: %w", n, len(s), ErrValue)
	}
	return nil
}
