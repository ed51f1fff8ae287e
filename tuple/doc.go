// Package tuple a collection of generic struct types
// that hold a specific number of values.
//
// The types are named T2 through T26; TN holds N values with one
// type parameter per position. Nesting T2 inside itself expresses
// the recursively zipped pairs produced by chained pairing
// operations; see the unzip package for a way to convert those
// back into their flat equivalents.
package tuple

//go:generate go run generate.go
