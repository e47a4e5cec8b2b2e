// Package docs renders the markdown table documenting the leaf fields of
// schema-definition files.
package docs

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"gopkg.in/yaml.v3"

	"fieldmap-generator/internal/schema"
)

// DefaultType is the type of fields that declare none.
const DefaultType = "keyword"

// Entry is one documented leaf field.
type Entry struct {
	Name        string
	Type        string
	Description string
}

var whitespace = regexp.MustCompile(`\s+`)

// SafeDescription makes s fit in a single markdown table cell.
func SafeDescription(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "|", `\|`)

	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// LoadFile reads the schema-definition file at path.
func LoadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening fields file: %w", err)
	}
	defer f.Close()

	entries, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return entries, nil
}

// Load flattens a schema-definition YAML list into its leaf fields.
func Load(r io.Reader) ([]Entry, error) {
	var fields []*schema.Field

	if err := yaml.NewDecoder(r).Decode(&fields); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing fields YAML: %w", err)
	}

	var out []Entry
	if err := flatten("", fields, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func flatten(prefix string, fields []*schema.Field, out *[]Entry) error {
	for _, f := range fields {
		if f.Name == "" {
			return fmt.Errorf("field without name under %q", prefix)
		}

		name := prefix + f.Name

		typ := f.Type
		if typ == "" {
			typ = DefaultType
		}

		// Objects without declared subfields are documented as leaves.
		if typ == schema.GroupType || (typ == "object" && len(f.Fields) > 0) {
			if err := flatten(name+".", f.Fields, out); err != nil {
				return err
			}

			continue
		}

		*out = append(*out, Entry{Name: name, Type: typ, Description: SafeDescription(f.Description)})
	}

	return nil
}

// Merge combines entry lists, sorted by name. A later list wins when two
// lists document the same field.
func Merge(lists ...[]Entry) []Entry {
	byName := make(map[string]Entry)

	for _, list := range lists {
		for _, e := range list {
			byName[e.Name] = e
		}
	}

	out := make([]Entry, 0, len(byName))
	for _, e := range byName {
		out = append(out, e)
	}

	slices.SortFunc(out, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})

	return out
}

// Render writes entries as a markdown table with Field, Description and
// Type columns, in the given order.
func Render(w io.Writer, entries []Entry) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
	table.Header("Field", "Description", "Type")

	for _, e := range entries {
		if err := table.Append(e.Name, e.Description, e.Type); err != nil {
			return fmt.Errorf("adding row %s: %w", e.Name, err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	return nil
}
