package unzip_test

import (
	"errors"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/go-zipped/zipped/option"
	"github.com/go-zipped/zipped/result"
	"github.com/go-zipped/zipped/tuple"
	"github.com/go-zipped/zipped/unzip"
)

func TestOptionLeft3(t *testing.T) {
	z := option.Zip(option.Zip(option.Some(1), option.Some(2)), option.Some(3))
	got := unzip.OptionLeft3(z)
	qt.Assert(t, qt.Equals(got, option.Some(tuple.New3(1, 2, 3))))
}

func TestOptionLeft2Absent(t *testing.T) {
	z := option.Zip(option.Some(1), option.None[int]())
	got := unzip.OptionLeft2(z)
	qt.Assert(t, qt.IsTrue(got.IsNone()))
}

func TestOptionLeft3Absent(t *testing.T) {
	z := option.Zip(option.Zip(option.Some(1), option.None[int]()), option.Some(3))
	got := unzip.OptionLeft3(z)
	qt.Assert(t, qt.IsTrue(got.IsNone()))
}

func TestOptionRight3(t *testing.T) {
	z := option.Zip(option.Some(1), option.Zip(option.Some(2), option.Some(3)))
	got := unzip.OptionRight3(z)
	qt.Assert(t, qt.Equals(got, option.Some(tuple.New3(1, 2, 3))))
}

func TestOptionLeft4(t *testing.T) {
	z := option.Zip(
		option.Zip(option.Zip(option.Some(1), option.Some("two")), option.Some(3.0)),
		option.Some(true),
	)
	got := unzip.OptionLeft4(z)
	qt.Assert(t, qt.Equals(got, option.Some(tuple.New4(1, "two", 3.0, true))))
}

func TestResultLeft3(t *testing.T) {
	z := result.Zip(result.Zip(result.Ok(1), result.Ok(2)), result.Ok(3))
	got := unzip.ResultLeft3(z)
	qt.Assert(t, qt.Equals(got, result.Ok(tuple.New3(1, 2, 3))))
}

func TestResultLeft3Failure(t *testing.T) {
	errBoom := errors.New("boom")
	z := result.Zip(result.Zip(result.Ok(1), result.Err[int](errBoom)), result.Ok(3))
	got := unzip.ResultLeft3(z)

	// The failure value comes through identical, not wrapped or copied.
	_, err := got.Get()
	qt.Assert(t, qt.Equals(err, errBoom))
}

func TestResultRight3(t *testing.T) {
	z := result.Zip(result.Ok(1), result.Zip(result.Ok(2), result.Ok(3)))
	got := unzip.ResultRight3(z)
	qt.Assert(t, qt.Equals(got, result.Ok(tuple.New3(1, 2, 3))))
}

func TestResultLeft3AndThenChain(t *testing.T) {
	// The same chain built with AndThen instead of Zip.
	z := result.AndThen(result.Ok(1), func(a int) result.Result[tuple.T2[int, int]] {
		return result.Ok(tuple.New2(a, 2))
	})
	z3 := result.AndThen(z, func(ab tuple.T2[int, int]) result.Result[tuple.T2[tuple.T2[int, int], int]] {
		return result.Ok(tuple.New2(ab, 3))
	})
	got := unzip.ResultLeft3(z3)
	qt.Assert(t, qt.Equals(got, result.Ok(tuple.New3(1, 2, 3))))
}
