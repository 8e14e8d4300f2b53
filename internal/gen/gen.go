// Package gen renders the checked-in step tables as Go source for
// cmd/stepgen.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	step "github.com/numbatch/go-step"
)

var fileTmpl = template.Must(template.New("table_gen").Parse(`// Code generated by stepgen. DO NOT EDIT.
//
// Step tables for radixes 2 through 36 over the widths in Widths, derived
// output of cmd/stepgen. Regenerate with the source rather than editing:
//
//	go run ./cmd/stepgen --out table_gen.go
//
// Widths outside the supported set resolve to FallbackStep through the
// accessors: a caller probing widths generically then degrades to one
// digit per step instead of recursing forever on zero-sized batches.

package step

var stepTables = [37]Table{
{{- range .}}
	{{.Radix}}: {
		Radix:    {{.Radix}},
		unsigned: [numWidths]Pair{ {{- range $i, $p := .Unsigned}}{{if $i}}, {{end}}{{"{"}}{{$p.Min}}, {{$p.Max}}{{"}"}}{{end -}} },
		signed:   [numWidths]Pair{ {{- range $i, $p := .Signed}}{{if $i}}, {{end}}{{"{"}}{{$p.Min}}, {{$p.Max}}{{"}"}}{{end -}} },
	},
{{- end}}
}
`))

type radixEntry struct {
	Radix    uint
	Unsigned []step.Pair
	Signed   []step.Pair
}

// Render produces the formatted source of table_gen.go for the given
// tables. Tables should be passed in radix order.
func Render(tables []step.Table) ([]byte, error) {
	entries := make([]radixEntry, 0, len(tables))
	for _, t := range tables {
		e := radixEntry{Radix: t.Radix}
		for _, bits := range step.Widths {
			e.Unsigned = append(e.Unsigned, step.Pair{
				Min: t.MinStep(bits, false),
				Max: t.MaxStep(bits, false),
			})
			e.Signed = append(e.Signed, step.Pair{
				Min: t.MinStep(bits, true),
				Max: t.MaxStep(bits, true),
			})
		}
		entries = append(entries, e)
	}

	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, entries); err != nil {
		return nil, err
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: rendered source does not format: %w", err)
	}
	return src, nil
}
