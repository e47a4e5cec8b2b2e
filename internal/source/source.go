// Package source reads mapping table rows and override records from CSV.
//
// Rows are produced lazily; the first error ends the sequence.
package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"unicode/utf8"

	"fieldmap-generator/internal/config"
	"fieldmap-generator/internal/mapping"
)

const utf8BOM = "\uFEFF"

var (
	// ErrShortRecord is returned for records that do not reach every column.
	ErrShortRecord = errors.New("short record")
	// ErrInvalidUTF8 is returned for cells that are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
)

// Layout describes how rows are laid out in the mapping table.
type Layout struct {
	Columns config.Columns
	// HeaderSentinel, when equal to the first column of the first record,
	// marks that record as a header to skip.
	HeaderSentinel string
}

// LayoutOf returns the layout configured in c.
func LayoutOf(c *config.Config) Layout {
	return Layout{Columns: *c.Columns, HeaderSentinel: c.HeaderSentinel}
}

// newReader returns an excel-dialect CSV reader accepting ragged records.
func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	return cr
}

// Records streams raw CSV records. A UTF-8 BOM on the first cell is dropped;
// cells that are not valid UTF-8 end the sequence with ErrInvalidUTF8.
func Records(r io.Reader) iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		cr := newReader(r)
		first := true

		for {
			record, err := cr.Read()
			if errors.Is(err, io.EOF) {
				return
			}

			if err != nil {
				yield(nil, fmt.Errorf("reading CSV: %w", err))
				return
			}

			if first {
				first = false
				stripBOM(record)
			}

			if err := checkUTF8(record); err != nil {
				line, _ := cr.FieldPos(0)
				yield(nil, fmt.Errorf("line %d: %w", line, err))

				return
			}

			if !yield(record, nil) {
				return
			}
		}
	}
}

// Rows streams mapping table rows, skipping the header record if present.
func Rows(r io.Reader, layout Layout) iter.Seq2[mapping.Row, error] {
	return func(yield func(mapping.Row, error) bool) {
		line := 0

		for record, err := range Records(r) {
			line++

			if err != nil {
				yield(mapping.Row{}, err)
				return
			}

			if line == 1 && len(record) > 0 && record[0] == layout.HeaderSentinel {
				continue
			}

			row, err := layout.row(record)
			if err != nil {
				yield(mapping.Row{}, fmt.Errorf("record %d: %w", line, err))
				return
			}

			if !yield(row, nil) {
				return
			}
		}
	}
}

func (l Layout) row(record []string) (mapping.Row, error) {
	cols := l.Columns
	if len(record) < cols.Width() {
		return mapping.Row{}, fmt.Errorf("%w: %d fields, need %d", ErrShortRecord, len(record), cols.Width())
	}

	return mapping.Row{
		Description: record[cols.Description],
		Source:      record[cols.Source],
		Type:        record[cols.Type],
		Primary:     record[cols.Map],
		Alternate:   record[cols.Alt],
	}, nil
}

func checkUTF8(record []string) error {
	for i, cell := range record {
		if !utf8.ValidString(cell) {
			return fmt.Errorf("%w in column %d: %q", ErrInvalidUTF8, i, cell)
		}
	}

	return nil
}

func stripBOM(record []string) {
	if len(record) > 0 {
		record[0] = strings.TrimPrefix(record[0], utf8BOM)
	}
}

// ReadRowsFile reads every row of the mapping table at path.
func ReadRowsFile(path string, layout Layout) ([]mapping.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mapping table: %w", err)
	}
	defer f.Close()

	var rows []mapping.Row

	for row, err := range Rows(f, layout) {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// LoadOverridesFile loads an override table from a CSV or YAML file.
func LoadOverridesFile(path string) (*mapping.Overrides, error) {
	if mapping.IsYAMLFile(path) {
		return mapping.LoadOverridesYAMLFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening overrides: %w", err)
	}
	defer f.Close()

	o, err := mapping.LoadOverrides(Records(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return o, nil
}
