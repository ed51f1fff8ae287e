//go:build ignore

// This program generates unzip_gen.go, option_gen.go and result_gen.go,
// which hold one conversion function per arity (2..26), nesting
// direction (left or right) and wrapper (none, Option or Result),
// along with arity_test.go, which exercises every one of those
// functions with distinguishable leaf values.
package main

import (
	"bytes"
	"go/format"
	"log"
	"os"
	"strconv"
	"strings"
	"text/template"
)

const maxArity = 26

// fn describes one conversion function of a given arity and direction.
type fn struct {
	N      int
	Dir    string // "Left" or "Right"
	Kind   string // "pair" or "nested pair"
	Pretty string // "((A, B), C)"
	Params string // "A, B, C"
	Nested string // "tuple.T2[tuple.T2[A, B], C]"
	Flat   string // "tuple.T3[A, B, C]"
	Fields []field
}

type field struct {
	Name string // "B"
	Path string // "A.B"
}

func names(n int) []string {
	s := make([]string, n)
	for i := range s {
		s[i] = string(rune('A' + i))
	}
	return s
}

func leftNested(s []string) string {
	if len(s) == 1 {
		return s[0]
	}
	return "tuple.T2[" + leftNested(s[:len(s)-1]) + ", " + s[len(s)-1] + "]"
}

func rightNested(s []string) string {
	if len(s) == 1 {
		return s[0]
	}
	return "tuple.T2[" + s[0] + ", " + rightNested(s[1:]) + "]"
}

func leftPretty(s []string) string {
	if len(s) == 1 {
		return s[0]
	}
	return "(" + leftPretty(s[:len(s)-1]) + ", " + s[len(s)-1] + ")"
}

func rightPretty(s []string) string {
	if len(s) == 1 {
		return s[0]
	}
	return "(" + s[0] + ", " + rightPretty(s[1:]) + ")"
}

// leftPaths returns the field path of each leaf within the
// left-nested pair of arity n, in left-to-right order.
func leftPaths(n int) []string {
	if n == 2 {
		return []string{"A", "B"}
	}
	var paths []string
	for _, p := range leftPaths(n - 1) {
		paths = append(paths, "A."+p)
	}
	return append(paths, "B")
}

func rightPaths(n int) []string {
	if n == 2 {
		return []string{"A", "B"}
	}
	paths := []string{"A"}
	for _, p := range rightPaths(n - 1) {
		paths = append(paths, "B."+p)
	}
	return paths
}

// leftVal returns a left-nested tuple.New2 expression holding the
// leaf values 1..n.
func leftVal(n int) string {
	v := "tuple.New2(1, 2)"
	for k := 3; k <= n; k++ {
		v = "tuple.New2(" + v + ", " + strconv.Itoa(k) + ")"
	}
	return v
}

// rightVal is the right-nested equivalent of leftVal.
func rightVal(n int) string {
	v := "tuple.New2(" + strconv.Itoa(n-1) + ", " + strconv.Itoa(n) + ")"
	for k := n - 2; k >= 1; k-- {
		v = "tuple.New2(" + strconv.Itoa(k) + ", " + v + ")"
	}
	return v
}

func leaves(n int) string {
	s := make([]string, n)
	for i := range s {
		s[i] = strconv.Itoa(i + 1)
	}
	return strings.Join(s, ", ")
}

func main() {
	var fns []fn
	for n := 2; n <= maxArity; n++ {
		s := names(n)
		kind := "nested pair"
		if n == 2 {
			kind = "pair"
		}
		flat := "tuple.T" + strconv.Itoa(n) + "[" + strings.Join(s, ", ") + "]"
		for _, d := range []struct {
			dir    string
			nested string
			pretty string
			paths  []string
		}{
			{"Left", leftNested(s), leftPretty(s), leftPaths(n)},
			{"Right", rightNested(s), rightPretty(s), rightPaths(n)},
		} {
			fields := make([]field, n)
			for i, p := range d.paths {
				fields[i] = field{Name: s[i], Path: p}
			}
			fns = append(fns, fn{
				N:      n,
				Dir:    d.dir,
				Kind:   kind,
				Pretty: d.pretty,
				Params: strings.Join(s, ", "),
				Nested: d.nested,
				Flat:   flat,
				Fields: fields,
			})
		}
	}
	write("unzip_gen.go", bareTmpl, fns)
	write("option_gen.go", optionTmpl, fns)
	write("result_gen.go", resultTmpl, fns)

	var tests []arityTest
	for n := 2; n <= maxArity; n++ {
		tests = append(tests, arityTest{
			N:        n,
			LeftVal:  leftVal(n),
			RightVal: rightVal(n),
			Leaves:   leaves(n),
		})
	}
	writeTests("arity_test.go", tests)
}

// arityTest describes the test of all conversion functions of one arity.
type arityTest struct {
	N        int
	LeftVal  string
	RightVal string
	Leaves   string
}

func writeTests(name string, tests []arityTest) {
	var buf bytes.Buffer
	if err := testTmpl.Execute(&buf, tests); err != nil {
		log.Fatal(err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(name, src, 0o666); err != nil {
		log.Fatal(err)
	}
}

func write(name string, tmpl *template.Template, fns []fn) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, fns); err != nil {
		log.Fatal(err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(name, src, 0o666); err != nil {
		log.Fatal(err)
	}
}

var bareTmpl = template.Must(template.New("bare").Parse(`// Code generated by generate.go. DO NOT EDIT.

package unzip

import (
	"github.com/go-zipped/zipped/tuple"
)
{{range .}}
// {{.Dir}}{{.N}} converts the {{.Kind}} {{.Pretty}} to a flat T{{.N}}.
func {{.Dir}}{{.N}}[{{.Params}} any](z {{.Nested}}) {{.Flat}} {
	return {{.Flat}}{
{{- range .Fields}}
		{{.Name}}: z.{{.Path}},
{{- end}}
	}
}
{{end}}`))

var optionTmpl = template.Must(template.New("option").Parse(`// Code generated by generate.go. DO NOT EDIT.

package unzip

import (
	"github.com/go-zipped/zipped/option"
	"github.com/go-zipped/zipped/tuple"
)
{{range .}}
// Option{{.Dir}}{{.N}} converts an Option of the {{.Kind}} {{.Pretty}} to an
// Option of a flat T{{.N}}. An absent value stays absent.
func Option{{.Dir}}{{.N}}[{{.Params}} any](z option.Option[{{.Nested}}]) option.Option[{{.Flat}}] {
	return option.Map(z, {{.Dir}}{{.N}}[{{.Params}}])
}
{{end}}`))

var resultTmpl = template.Must(template.New("result").Parse(`// Code generated by generate.go. DO NOT EDIT.

package unzip

import (
	"github.com/go-zipped/zipped/result"
	"github.com/go-zipped/zipped/tuple"
)
{{range .}}
// Result{{.Dir}}{{.N}} converts a Result of the {{.Kind}} {{.Pretty}} to a
// Result of a flat T{{.N}}. A failure value is forwarded unchanged.
func Result{{.Dir}}{{.N}}[{{.Params}} any](z result.Result[{{.Nested}}]) result.Result[{{.Flat}}] {
	return result.Map(z, {{.Dir}}{{.N}}[{{.Params}}])
}
{{end}}`))

var testTmpl = template.Must(template.New("test").Parse(`// Code generated by generate.go. DO NOT EDIT.

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

var errZip = errors.New("zip failed")

// noneLike returns an absent Option of the same type as the argument.
func noneLike[T any](_ option.Option[T]) option.Option[T] {
	return option.None[T]()
}

// errLike returns a Result of the same type as the argument, holding err.
func errLike[T any](_ result.Result[T], err error) result.Result[T] {
	return result.Err[T](err)
}
{{range .}}
func TestArity{{.N}}(t *testing.T) {
	left := {{.LeftVal}}
	right := {{.RightVal}}
	want := tuple.New{{.N}}({{.Leaves}})

	qt.Assert(t, qt.Equals(unzip.Left{{.N}}(left), want))
	qt.Assert(t, qt.Equals(unzip.Right{{.N}}(right), want))

	qt.Assert(t, qt.Equals(unzip.OptionLeft{{.N}}(option.Some(left)), option.Some(want)))
	qt.Assert(t, qt.Equals(unzip.OptionRight{{.N}}(option.Some(right)), option.Some(want)))
	qt.Assert(t, qt.IsTrue(unzip.OptionLeft{{.N}}(noneLike(option.Some(left))).IsNone()))
	qt.Assert(t, qt.IsTrue(unzip.OptionRight{{.N}}(noneLike(option.Some(right))).IsNone()))

	qt.Assert(t, qt.Equals(unzip.ResultLeft{{.N}}(result.Ok(left)), result.Ok(want)))
	qt.Assert(t, qt.Equals(unzip.ResultRight{{.N}}(result.Ok(right)), result.Ok(want)))
	_, errLeft := unzip.ResultLeft{{.N}}(errLike(result.Ok(left), errZip)).Get()
	qt.Assert(t, qt.Equals(errLeft, errZip))
	_, errRight := unzip.ResultRight{{.N}}(errLike(result.Ok(right), errZip)).Get()
	qt.Assert(t, qt.Equals(errRight, errZip))
}
{{end}}`))
