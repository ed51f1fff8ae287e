// Package option provides a generic container that holds
// either one value or no value at all.
package option

import (
	"github.com/go-zipped/zipped/tuple"
)

// Option holds either a value of type T or nothing.
// The zero Option holds nothing.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{
		value: v,
		ok:    true,
	}
}

// None returns an Option holding nothing.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether o holds nothing.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value held in o and whether it is present.
// When o holds nothing, it returns the zero value of T.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// UnwrapOr returns the value held in o, or fallback when o
// holds nothing.
func (o Option[T]) UnwrapOr(fallback T) T {
	if !o.ok {
		return fallback
	}
	return o.value
}

// Map returns an Option holding f applied to the value held in o.
// When o holds nothing, f is not called and the result holds nothing.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if !o.ok {
		return Option[U]{}
	}
	return Some(f(o.value))
}

// Zip pairs the values held in a and b. The result holds nothing
// unless both a and b hold a value. Chaining Zip left-associatively
// builds up nested pairs that the unzip package can flatten.
func Zip[A, B any](a Option[A], b Option[B]) Option[tuple.T2[A, B]] {
	if !a.ok || !b.ok {
		return Option[tuple.T2[A, B]]{}
	}
	return Some(tuple.New2(a.value, b.value))
}
