//go:build ignore

// This program generates tuple_gen.go, which holds the T2..T26
// tuple types with their constructors and Unpack methods.
package main

import (
	"bytes"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

const maxArity = 26

type arity struct {
	N      int
	Params string // "A, B, C"
	Args   string // "a A, b B, c C"
	Names  []string
}

func main() {
	var arities []arity
	for n := 2; n <= maxArity; n++ {
		names := make([]string, n)
		args := make([]string, n)
		for i := 0; i < n; i++ {
			names[i] = string(rune('A' + i))
			args[i] = strings.ToLower(names[i]) + " " + names[i]
		}
		arities = append(arities, arity{
			N:      n,
			Params: strings.Join(names, ", "),
			Args:   strings.Join(args, ", "),
			Names:  names,
		})
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities); err != nil {
		log.Fatal(err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("tuple_gen.go", src, 0o666); err != nil {
		log.Fatal(err)
	}
}

var tmpl = template.Must(template.New("tuple").Funcs(template.FuncMap{
	"lower": strings.ToLower,
	"fields": func(names []string) string {
		parts := make([]string, len(names))
		for i, name := range names {
			parts[i] = "t." + name
		}
		return strings.Join(parts, ", ")
	},
}).Parse(`// Code generated by generate.go. DO NOT EDIT.

package tuple
{{range .}}
// T{{.N}} holds {{.N}} values.
type T{{.N}}[{{.Params}} any] struct {
{{- range .Names}}
	{{.}} {{.}}
{{- end}}
}

// New{{.N}} returns a T{{.N}} holding the given values.
func New{{.N}}[{{.Params}} any]({{.Args}}) T{{.N}}[{{.Params}}] {
	return T{{.N}}[{{.Params}}]{
{{- range .Names}}
		{{.}}: {{lower .}},
{{- end}}
	}
}

// Unpack returns the values held in t.
func (t T{{.N}}[{{.Params}}]) Unpack() ({{.Params}}) {
	return {{fields .Names}}
}
{{end}}`))
