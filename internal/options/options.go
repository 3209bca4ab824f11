// Package options implements generic functional options.
//
// Public packages alias Option for their own configuration type:
//
//	type Option = options.Option[*Encoding]
//
//	func WithBOM(enabled bool) Option {
//	    return options.NoError(func(e *Encoding) { e.bom = enabled })
//	}
package options

import "fmt"

// Option configures a value of type T.
type Option[T any] interface {
	apply(T) error
}

// Validator is implemented by configuration types that check their final state
// once every option has been applied.
type Validator interface {
	Validate() error
}

// Func wraps a function as an Option.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from a function that may fail.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first error, which is
// returned wrapped with the position of the failing option. Nil options are
// skipped. If target implements Validator, it is validated after all options
// succeed.
func Apply[T any](target T, opts ...Option[T]) error {
	for i, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return fmt.Errorf("option %d: %w", i, err)
		}
	}

	if v, ok := any(target).(Validator); ok {
		return v.Validate()
	}

	return nil
}
