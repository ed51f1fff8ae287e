package option_test

import (
	"strconv"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/go-zipped/zipped/option"
	"github.com/go-zipped/zipped/tuple"
)

func TestSome(t *testing.T) {
	o := option.Some(42)
	qt.Assert(t, qt.IsTrue(o.IsSome()))
	qt.Assert(t, qt.IsFalse(o.IsNone()))

	v, ok := o.Get()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, 42))
}

func TestNone(t *testing.T) {
	o := option.None[int]()
	qt.Assert(t, qt.IsFalse(o.IsSome()))
	qt.Assert(t, qt.IsTrue(o.IsNone()))

	v, ok := o.Get()
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.Equals(v, 0))
}

func TestZeroValueIsNone(t *testing.T) {
	var o option.Option[string]
	qt.Assert(t, qt.IsTrue(o.IsNone()))
}

func TestUnwrapOr(t *testing.T) {
	qt.Assert(t, qt.Equals(option.Some("a").UnwrapOr("b"), "a"))
	qt.Assert(t, qt.Equals(option.None[string]().UnwrapOr("b"), "b"))
}

func TestMap(t *testing.T) {
	o := option.Map(option.Some(42), strconv.Itoa)
	qt.Assert(t, qt.Equals(o, option.Some("42")))

	called := false
	n := option.Map(option.None[int](), func(int) string {
		called = true
		return ""
	})
	qt.Assert(t, qt.Equals(n, option.None[string]()))
	qt.Assert(t, qt.IsFalse(called))
}

func TestZip(t *testing.T) {
	z := option.Zip(option.Some(1), option.Some("two"))
	qt.Assert(t, qt.Equals(z, option.Some(tuple.New2(1, "two"))))

	qt.Assert(t, qt.IsTrue(option.Zip(option.Some(1), option.None[string]()).IsNone()))
	qt.Assert(t, qt.IsTrue(option.Zip(option.None[int](), option.Some("two")).IsNone()))
	qt.Assert(t, qt.IsTrue(option.Zip(option.None[int](), option.None[string]()).IsNone()))
}

func TestZipChain(t *testing.T) {
	// Left-associative chaining nests pairs in the first position.
	z := option.Zip(option.Zip(option.Some(1), option.Some(2)), option.Some(3))
	qt.Assert(t, qt.Equals(z, option.Some(tuple.New2(tuple.New2(1, 2), 3))))
}
