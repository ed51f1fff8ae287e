package result_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/go-zipped/zipped/result"
	"github.com/go-zipped/zipped/tuple"
)

var errBoom = errors.New("boom")

func TestOk(t *testing.T) {
	r := result.Ok(42)
	qt.Assert(t, qt.IsTrue(r.IsOk()))
	qt.Assert(t, qt.IsFalse(r.IsErr()))

	v, err := r.Get()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, 42))
}

func TestErr(t *testing.T) {
	r := result.Err[int](errBoom)
	qt.Assert(t, qt.IsFalse(r.IsOk()))
	qt.Assert(t, qt.IsTrue(r.IsErr()))

	v, err := r.Get()
	qt.Assert(t, qt.Equals(err, errBoom))
	qt.Assert(t, qt.Equals(v, 0))
}

func TestErrNil(t *testing.T) {
	// A nil error is the success discriminant, so Err(nil) reports
	// success holding the zero value. Err's contract requires a
	// non-nil error.
	r := result.Err[int](nil)
	qt.Assert(t, qt.IsTrue(r.IsOk()))
	qt.Assert(t, qt.Equals(r, result.Ok(0)))
}

func TestUnwrapOr(t *testing.T) {
	qt.Assert(t, qt.Equals(result.Ok(1).UnwrapOr(2), 1))
	qt.Assert(t, qt.Equals(result.Err[int](errBoom).UnwrapOr(2), 2))
}

func TestMap(t *testing.T) {
	r := result.Map(result.Ok(42), strconv.Itoa)
	qt.Assert(t, qt.Equals(r, result.Ok("42")))

	called := false
	e := result.Map(result.Err[int](errBoom), func(int) string {
		called = true
		return ""
	})
	qt.Assert(t, qt.IsFalse(called))
	_, err := e.Get()
	qt.Assert(t, qt.Equals(err, errBoom))
}

func TestAndThen(t *testing.T) {
	r := result.AndThen(result.Ok(2), func(v int) result.Result[string] {
		return result.Ok(strconv.Itoa(v * 10))
	})
	qt.Assert(t, qt.Equals(r, result.Ok("20")))

	e := result.AndThen(result.Ok(2), func(int) result.Result[string] {
		return result.Err[string](errBoom)
	})
	qt.Assert(t, qt.IsTrue(e.IsErr()))

	forwarded := result.AndThen(result.Err[int](errBoom), func(int) result.Result[string] {
		t.Fatal("function called on error")
		return result.Ok("")
	})
	_, err := forwarded.Get()
	qt.Assert(t, qt.Equals(err, errBoom))
}

func TestZip(t *testing.T) {
	z := result.Zip(result.Ok(1), result.Ok("two"))
	qt.Assert(t, qt.Equals(z, result.Ok(tuple.New2(1, "two"))))
}

func TestZipFirstError(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")

	_, err := result.Zip(result.Err[int](errA), result.Err[string](errB)).Get()
	qt.Assert(t, qt.Equals(err, errA))

	_, err = result.Zip(result.Ok(1), result.Err[string](errB)).Get()
	qt.Assert(t, qt.Equals(err, errB))
}

func TestZipChain(t *testing.T) {
	z := result.Zip(result.Zip(result.Ok(1), result.Ok(2)), result.Ok(3))
	qt.Assert(t, qt.Equals(z, result.Ok(tuple.New2(tuple.New2(1, 2), 3))))
}
