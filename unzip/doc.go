// Package unzip converts recursively zipped pairs into flat tuples.
//
// Chaining a generic pairing operation such as option.Zip or result.Zip
// builds up nested pairs, for example:
//
//	tuple.T2[tuple.T2[tuple.T2[A, B], C], D]
//
// The functions in this package turn such a value into the equivalent
// flat tuple (here tuple.T4[A, B, C, D]) with the elements in their
// original left-to-right order. This works for up to 26 elements.
//
// The names of the functions in this package match the following
// regular expression:
//
//	(Option|Result)?(Left|Right)[0-9]+
//
// The optional prefix names the wrapper that encloses the nested pair:
//
//	Option - option.Option, an absent value stays absent
//	Result - result.Result, a failure value is forwarded unchanged
//
// Left functions accept pairs nested in the first position, the shape
// produced by left-associative zipping such as
// option.Zip(option.Zip(a, b), c). Right functions accept pairs nested
// in the second position, i.e. option.Zip(a, option.Zip(b, c)). The
// number is the arity of the resulting flat tuple.
//
// Only fully zipped pairs are supported: every nesting level must be a
// T2 whose nested element sits consistently on one side. Any other
// shape, and any mismatch between value shape and function name, fails
// to compile; no check is deferred to run time.
package unzip

//go:generate go run generate.go
