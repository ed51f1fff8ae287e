// Package result provides a generic container that holds
// either a value or an error.
package result

import (
	"github.com/go-zipped/zipped/tuple"
)

// Result holds either a value of type T or an error.
// The error, when present, is opaque to every operation in this
// package: it is stored and forwarded but never inspected.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err returns a Result holding err. The error must be non-nil:
// a nil error makes the Result indistinguishable from Ok of a
// zero value.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether r holds an error.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Get returns the value and the error held in r. Exactly the
// usual Go convention: the value is meaningful only when the
// error is nil.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// UnwrapOr returns the value held in r, or fallback when r
// holds an error.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.value
}

// Map returns a Result holding f applied to the value held in r.
// When r holds an error, f is not called and the error is
// forwarded unchanged.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return Ok(f(r.value))
}

// AndThen returns f applied to the value held in r. When r holds
// an error, f is not called and the error is forwarded unchanged.
func AndThen[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return f(r.value)
}

// Zip pairs the values held in a and b. When either holds an
// error, the result holds the first such error. Chaining Zip
// left-associatively builds up nested pairs that the unzip
// package can flatten.
func Zip[A, B any](a Result[A], b Result[B]) Result[tuple.T2[A, B]] {
	if a.err != nil {
		return Result[tuple.T2[A, B]]{err: a.err}
	}
	if b.err != nil {
		return Result[tuple.T2[A, B]]{err: b.err}
	}
	return Ok(tuple.New2(a.value, b.value))
}
