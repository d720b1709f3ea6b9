// Package optional provides Option, a container that either holds a value
// or holds nothing. Generated builders use it to track which fields were set.
package optional

import "fmt"

// Option holds a value of type T or nothing. The zero value holds nothing.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and true, or the zero value and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent reports whether o holds a value.
func (o Option[T]) IsPresent() bool {
	return o.present
}

// OrElse returns the held value, or def when o is empty.
func (o Option[T]) OrElse(def T) T {
	if !o.present {
		return def
	}

	return o.value
}

// String returns "Some(<value>)" or "None".
func (o Option[T]) String() string {
	if !o.present {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}
