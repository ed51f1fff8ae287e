package unzip_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/go-zipped/zipped/tuple"
	"github.com/go-zipped/zipped/unzip"
)

func TestLeft2(t *testing.T) {
	got := unzip.Left2(tuple.New2(1, 2))
	qt.Assert(t, qt.Equals(got, tuple.New2(1, 2)))
}

func TestRight2(t *testing.T) {
	got := unzip.Right2(tuple.New2(1, 2))
	qt.Assert(t, qt.Equals(got, tuple.New2(1, 2)))
}

func TestLeft3(t *testing.T) {
	got := unzip.Left3(tuple.New2(tuple.New2(1, 2), 3))
	qt.Assert(t, qt.Equals(got, tuple.New3(1, 2, 3)))
}

func TestRight3(t *testing.T) {
	got := unzip.Right3(tuple.New2(1, tuple.New2(2, 3)))
	qt.Assert(t, qt.Equals(got, tuple.New3(1, 2, 3)))
}

func TestLeft4(t *testing.T) {
	got := unzip.Left4(tuple.New2(tuple.New2(tuple.New2(1, 2), 3), 4))
	qt.Assert(t, qt.Equals(got, tuple.New4(1, 2, 3, 4)))
}

func TestRight4(t *testing.T) {
	got := unzip.Right4(tuple.New2(1, tuple.New2(2, tuple.New2(3, 4))))
	qt.Assert(t, qt.Equals(got, tuple.New4(1, 2, 3, 4)))
}

func TestLeft5Heterogeneous(t *testing.T) {
	z := tuple.New2(tuple.New2(tuple.New2(tuple.New2(1, "two"), 3.0), true), 'e')
	got := unzip.Left5(z)
	qt.Assert(t, qt.Equals(got, tuple.New5(1, "two", 3.0, true, 'e')))
}

func TestRight5Heterogeneous(t *testing.T) {
	z := tuple.New2(1, tuple.New2("two", tuple.New2(3.0, tuple.New2(true, 'e'))))
	got := unzip.Right5(z)
	qt.Assert(t, qt.Equals(got, tuple.New5(1, "two", 3.0, true, 'e')))
}

func TestLeft13(t *testing.T) {
	z2 := tuple.New2(1, 2)
	z3 := tuple.New2(z2, 3)
	z4 := tuple.New2(z3, 4)
	z5 := tuple.New2(z4, 5)
	z6 := tuple.New2(z5, 6)
	z7 := tuple.New2(z6, 7)
	z8 := tuple.New2(z7, 8)
	z9 := tuple.New2(z8, 9)
	z10 := tuple.New2(z9, 10)
	z11 := tuple.New2(z10, 11)
	z12 := tuple.New2(z11, 12)
	z13 := tuple.New2(z12, 13)

	got := unzip.Left13(z13)
	qt.Assert(t, qt.Equals(got, tuple.New13(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13)))
}

func TestLeft26(t *testing.T) {
	z := tuple.New2(1, 2)
	z3 := tuple.New2(z, 3)
	z4 := tuple.New2(z3, 4)
	z5 := tuple.New2(z4, 5)
	z6 := tuple.New2(z5, 6)
	z7 := tuple.New2(z6, 7)
	z8 := tuple.New2(z7, 8)
	z9 := tuple.New2(z8, 9)
	z10 := tuple.New2(z9, 10)
	z11 := tuple.New2(z10, 11)
	z12 := tuple.New2(z11, 12)
	z13 := tuple.New2(z12, 13)
	z14 := tuple.New2(z13, 14)
	z15 := tuple.New2(z14, 15)
	z16 := tuple.New2(z15, 16)
	z17 := tuple.New2(z16, 17)
	z18 := tuple.New2(z17, 18)
	z19 := tuple.New2(z18, 19)
	z20 := tuple.New2(z19, 20)
	z21 := tuple.New2(z20, 21)
	z22 := tuple.New2(z21, 22)
	z23 := tuple.New2(z22, 23)
	z24 := tuple.New2(z23, 24)
	z25 := tuple.New2(z24, 25)
	z26 := tuple.New2(z25, 26)

	got := unzip.Left26(z26)
	want := tuple.New26(
		1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13,
		14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26,
	)
	qt.Assert(t, qt.Equals(got, want))
}

func TestRight26(t *testing.T) {
	z := tuple.New2(25, 26)
	z3 := tuple.New2(24, z)
	z4 := tuple.New2(23, z3)
	z5 := tuple.New2(22, z4)
	z6 := tuple.New2(21, z5)
	z7 := tuple.New2(20, z6)
	z8 := tuple.New2(19, z7)
	z9 := tuple.New2(18, z8)
	z10 := tuple.New2(17, z9)
	z11 := tuple.New2(16, z10)
	z12 := tuple.New2(15, z11)
	z13 := tuple.New2(14, z12)
	z14 := tuple.New2(13, z13)
	z15 := tuple.New2(12, z14)
	z16 := tuple.New2(11, z15)
	z17 := tuple.New2(10, z16)
	z18 := tuple.New2(9, z17)
	z19 := tuple.New2(8, z18)
	z20 := tuple.New2(7, z19)
	z21 := tuple.New2(6, z20)
	z22 := tuple.New2(5, z21)
	z23 := tuple.New2(4, z22)
	z24 := tuple.New2(3, z23)
	z25 := tuple.New2(2, z24)
	z26 := tuple.New2(1, z25)

	got := unzip.Right26(z26)
	want := tuple.New26(
		1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13,
		14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26,
	)
	qt.Assert(t, qt.Equals(got, want))
}

func TestPointerElementsMoveUntouched(t *testing.T) {
	a, b, c := new(int), new(int), new(int)
	got := unzip.Left3(tuple.New2(tuple.New2(a, b), c))
	// Same pointers, same order: the elements are moved, not copied.
	qt.Assert(t, qt.Equals(got.A, a))
	qt.Assert(t, qt.Equals(got.B, b))
	qt.Assert(t, qt.Equals(got.C, c))
}

func TestRoundTripLeft(t *testing.T) {
	z := tuple.New2(tuple.New2(tuple.New2("a", "b"), "c"), "d")
	flat := unzip.Left4(z)

	renested := tuple.New2(tuple.New2(tuple.New2(flat.A, flat.B), flat.C), flat.D)
	qt.Assert(t, qt.Equals(renested, z))
	qt.Assert(t, qt.Equals(unzip.Left4(renested), flat))
}

func TestRoundTripRight(t *testing.T) {
	z := tuple.New2("a", tuple.New2("b", tuple.New2("c", "d")))
	flat := unzip.Right4(z)

	renested := tuple.New2(flat.A, tuple.New2(flat.B, tuple.New2(flat.C, flat.D)))
	qt.Assert(t, qt.Equals(renested, z))
	qt.Assert(t, qt.Equals(unzip.Right4(renested), flat))
}
