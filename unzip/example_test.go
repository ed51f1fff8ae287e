package unzip_test

import (
	"fmt"

	"github.com/go-zipped/zipped/option"
	"github.com/go-zipped/zipped/tuple"
	"github.com/go-zipped/zipped/unzip"
)

// This example flattens a left-recursively zipped pair into a
// flat 3-tuple.
func ExampleLeft3() {
	z := tuple.New2(tuple.New2(1, 2), 3)
	fmt.Println(unzip.Left3(z).Unpack())
	// Output: 1 2 3
}

// This example flattens an Option built by chained zipping. The
// chain is left-associative, so the pairs nest in the first
// position.
func ExampleOptionLeft3() {
	z := option.Zip(option.Zip(option.Some(1), option.Some(2)), option.Some(3))
	if v, ok := unzip.OptionLeft3(z).Get(); ok {
		fmt.Println(v.Unpack())
	}
	// Output: 1 2 3
}
