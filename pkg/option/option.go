package option

import "fmt"

// Option represents an optional value.
// It either contains a value or it does not.
//
// A nil Option is treated as an empty one by every helper in this package.
type Option[T any] interface {
	// HasValue returns true if the Option contains a value.
	HasValue() bool

	// Value returns the value (or its default) stored in the Option.
	Value() T
}

type some[T any] struct {
	value T
}

func (o some[T]) HasValue() bool { return true }
func (o some[T]) Value() T       { return o.value }

func (o some[T]) String() string {
	return fmt.Sprintf("Some(%v)", o.value)
}

type none[T any] struct{}

func (none[T]) HasValue() bool { return false }

func (none[T]) Value() T {
	var zero T

	return zero
}

func (none[T]) String() string {
	return "None"
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return some[T]{value: v}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return none[T]{}
}

// IsSome reports whether o holds a value.
func IsSome[T any](o Option[T]) bool {
	return o != nil && o.HasValue()
}

// IsNone reports whether o is empty.
func IsNone[T any](o Option[T]) bool {
	return !IsSome(o)
}

// Get returns the value held by o and whether there was one.
func Get[T any](o Option[T]) (T, bool) {
	if IsNone(o) {
		var zero T

		return zero, false
	}

	return o.Value(), true
}

// Unwrap returns the value held by o.
//
// Unwrap panics if o is empty: callers are expected to check first.
func Unwrap[T any](o Option[T]) T {
	v, ok := Get(o)
	if !ok {
		panic("option: unwrap called on an empty option")
	}

	return v
}

// UnwrapOr returns the value held by o or fallback if it is empty.
func UnwrapOr[T any](o Option[T], fallback T) T {
	if v, ok := Get(o); ok {
		return v
	}

	return fallback
}

// Match calls exactly one of the two branches: whenSome with the held value or whenNone.
// A nil branch is skipped.
func Match[T any](o Option[T], whenSome func(T), whenNone func()) {
	if v, ok := Get(o); ok {
		if whenSome != nil {
			whenSome(v)
		}

		return
	}

	if whenNone != nil {
		whenNone()
	}
}

// Map applies fn to the held value, if any.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if v, ok := Get(o); ok {
		return Some(fn(v))
	}

	return None[U]()
}
