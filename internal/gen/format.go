package gen

import (
	"fmt"
	"strings"

	"fieldmap-generator/internal/convert"
	"fieldmap-generator/internal/mapping"
)

// FormatKind names an output format.
type FormatKind int

const (
	FormatJS FormatKind = iota
	FormatGo
)

// FormatNames maps each FormatKind to its accepted names.
var FormatNames = map[FormatKind][]string{
	FormatJS: {"js"},
	FormatGo: {"go"},
}

// String returns the format name.
func (k FormatKind) String() string {
	if names, ok := FormatNames[k]; ok {
		return names[0]
	}

	return fmt.Sprintf("FormatKind(%d)", int(k))
}

// ParseFormatKind returns the format named s.
func ParseFormatKind(s string) (FormatKind, error) {
	for k, names := range FormatNames {
		for _, n := range names {
			if n == s {
				return k, nil
			}
		}
	}

	return 0, fmt.Errorf("unknown output format %q (want go or js)", s)
}

// Format renders mapping tables in one output language.
type Format interface {
	Kind() FormatKind
	// Filename is the default name of the rendered file.
	Filename() string
	// RenderTarget renders one destination of a source.
	RenderTarget(t mapping.Target) string
	// RenderConversion renders the conversion prefix of an entry, empty for
	// unconverted sources.
	RenderConversion(c convert.Conversion) string
	// Render renders both tables.
	Render(tables mapping.Tables) ([]byte, error)
}

// Options configures the formats.
type Options struct {
	// PackageName is the package of generated Go files.
	PackageName string
}

// DefaultOptions returns the default format options.
func DefaultOptions() Options {
	return Options{PackageName: "mappings"}
}

// NewFormat returns the Format for kind.
func NewFormat(kind FormatKind, opts Options) (Format, error) {
	switch kind {
	case FormatJS:
		return JSFormat{}, nil
	case FormatGo:
		if opts.PackageName == "" {
			opts.PackageName = DefaultOptions().PackageName
		}

		return GoFormat{PackageName: opts.PackageName}, nil
	default:
		return nil, fmt.Errorf("unsupported format %v", kind)
	}
}

// GeneratedFile represents a generated output file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "mappings.js").
	Filename string
	// Content is the rendered file content.
	Content []byte
}

// Generate renders tables with f into a GeneratedFile.
func Generate(f Format, tables mapping.Tables) (GeneratedFile, error) {
	content, err := f.Render(tables)
	if err != nil {
		return GeneratedFile{}, fmt.Errorf("rendering %s mappings: %w", f.Kind(), err)
	}

	return GeneratedFile{Filename: f.Filename(), Content: content}, nil
}

// renderTargets joins the rendered targets of e with sep.
func renderTargets(f Format, e mapping.Entry, sep string) string {
	parts := make([]string, len(e.Targets))
	for i, t := range e.Targets {
		parts[i] = f.RenderTarget(t)
	}

	return strings.Join(parts, sep)
}

// fileData is the template input shared by all formats.
type fileData struct {
	PackageName string
	ECS         []string
	RSA         []string
}

func newFileData(entry func(mapping.Entry) string, tables mapping.Tables, pkg string) fileData {
	lines := func(entries []mapping.Entry) []string {
		out := make([]string, len(entries))
		for i, e := range entries {
			out[i] = entry(e)
		}

		return out
	}

	return fileData{PackageName: pkg, ECS: lines(tables.ECS), RSA: lines(tables.RSA)}
}
