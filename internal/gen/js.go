package gen

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"

	"fieldmap-generator/internal/convert"
	"fieldmap-generator/internal/mapping"
)

// JSFormat renders tables as JavaScript objects consumed by the
// processor's fld_set, fld_append and fld_prio setters.
type JSFormat struct{}

var _ Format = JSFormat{}

// Kind implements Format.
func (JSFormat) Kind() FormatKind { return FormatJS }

// Filename implements Format.
func (JSFormat) Filename() string { return "mappings.js" }

// RenderTarget implements Format.
func (JSFormat) RenderTarget(t mapping.Target) string {
	if t.Mode == mapping.ModePriority {
		return fmt.Sprintf("{field: %s, setter: fld_%s, prio: %d}", jsString(t.Field), t.Mode, t.Priority)
	}

	return fmt.Sprintf("{field: %s, setter: fld_%s}", jsString(t.Field), t.Mode)
}

// RenderConversion implements Format.
func (JSFormat) RenderConversion(c convert.Conversion) string {
	if c.IsNone() {
		return ""
	}

	return fmt.Sprintf("convert: to_%s, ", c)
}

// jsString quotes s as a JavaScript string literal. Non-ASCII runes are
// written as \u escapes, which JavaScript reads back unchanged.
func jsString(s string) string {
	return strconv.QuoteToASCII(s)
}

func (f JSFormat) entry(e mapping.Entry) string {
	return fmt.Sprintf("%s: {%sto:[%s]},", jsString(e.Source), f.RenderConversion(e.Conversion), renderTargets(f, e, ","))
}

var jsTemplate = template.Must(template.New("js").Parse(`var ecs_mappings = {
{{range .ECS}}    {{.}}
{{end}}};

var rsa_mappings = {
{{range .RSA}}    {{.}}
{{end}}};
`))

// Render implements Format.
func (f JSFormat) Render(tables mapping.Tables) ([]byte, error) {
	var buf bytes.Buffer

	if err := jsTemplate.Execute(&buf, newFileData(f.entry, tables, "")); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}
