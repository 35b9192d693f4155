// Package options implements the generic functional-option pattern shared by
// the configurable parts of pairstat.
package options

// Option configures a target of type T. Options that cannot fail are built
// with NoError; options that validate their input are built with New.
type Option[T any] func(T) error

// New wraps a validating setter as an Option.
func New[T any](fn func(T) error) Option[T] {
	return Option[T](fn)
}

// NoError wraps a setter that cannot fail as an Option.
func NoError[T any](fn func(T)) Option[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply applies opts to target in order and stops at the first error.
// Nil options are skipped.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(target); err != nil {
			return err
		}
	}

	return nil
}
