// Package options applies functional options to a configuration target.
package options

// Option configures a target of type T
type Option[T any] interface {
	apply(T) error
}

// Func is an Option backed by a plain function. A nil Func does nothing.
type Func[T any] func(T) error

func (f Func[T]) apply(target T) error {
	if f == nil {
		return nil
	}
	return f(target)
}

// New wraps fn as an option that may reject its input
func New[T any](fn func(T) error) Func[T] {
	return fn
}

// NoError wraps fn as an option that always succeeds
func NoError[T any](fn func(T)) Func[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply runs opts in order, skipping nil entries. The first error stops the
// run and is returned as is.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}
	return nil
}
