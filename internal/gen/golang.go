package gen

import (
	"bytes"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"

	"fieldmap-generator/internal/convert"
	"fieldmap-generator/internal/mapping"
)

// GoFormat renders tables as a Go source file. The generated code refers to
// the mapping, fieldSetter, fld* setter and to* conversion identifiers that
// the target package declares.
type GoFormat struct {
	PackageName string
}

var _ Format = GoFormat{}

var (
	goSetters = map[mapping.Mode]string{
		mapping.ModeSet:      "fldSet",
		mapping.ModeAppend:   "fldAppend",
		mapping.ModePriority: "fldPrio",
	}
	goConversions = map[convert.Conversion]string{
		convert.Date:   "toDate",
		convert.IP:     "toIP",
		convert.Long:   "toLong",
		convert.Double: "toDouble",
		convert.MAC:    "toMAC",
	}
)

// Kind implements Format.
func (GoFormat) Kind() FormatKind { return FormatGo }

// Filename implements Format.
func (GoFormat) Filename() string { return "mappings_gen.go" }

// RenderTarget implements Format.
func (GoFormat) RenderTarget(t mapping.Target) string {
	if t.Mode == mapping.ModePriority {
		return fmt.Sprintf("{field: %q, setter: %s, prio: %d}", t.Field, goSetters[t.Mode], t.Priority)
	}

	return fmt.Sprintf("{field: %q, setter: %s}", t.Field, goSetters[t.Mode])
}

// RenderConversion implements Format.
func (GoFormat) RenderConversion(c convert.Conversion) string {
	name, ok := goConversions[c]
	if !ok {
		return ""
	}

	return "convert: " + name + ", "
}

func (f GoFormat) entry(e mapping.Entry) string {
	return fmt.Sprintf("%q: {%sto: []fieldSetter{%s}},", e.Source, f.RenderConversion(e.Conversion), renderTargets(f, e, ", "))
}

var goTemplate = template.Must(template.New("go").Parse(`// Code generated by fieldmap-generator. DO NOT EDIT.

package {{.PackageName}}

var ecsMappings = map[string]mapping{
{{range .ECS}}	{{.}}
{{end}}}

var rsaMappings = map[string]mapping{
{{range .RSA}}	{{.}}
{{end}}}
`))

// Render implements Format.
func (f GoFormat) Render(tables mapping.Tables) ([]byte, error) {
	var buf bytes.Buffer

	if err := goTemplate.Execute(&buf, newFileData(f.entry, tables, f.PackageName)); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := imports.Process(f.Filename(), buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}

	return formatted, nil
}
