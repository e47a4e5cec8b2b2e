package mapping

import (
	"iter"

	"fieldmap-generator/internal/convert"
	"fieldmap-generator/internal/namespace"
)

//go:generate go tool stringer -type=Mode -linecomment -output=mode_string.go

// Mode controls how multiple writers of one destination are combined.
type Mode int

const (
	ModeSet      Mode = iota // set
	ModeAppend               // append
	ModePriority             // prio
)

// Row is one line of the mapping table.
type Row struct {
	Description string
	// Source is the dot-separated source field path.
	Source string
	// Type is the declared source type, classified by convert.Table.
	Type string
	// Primary and Alternate are destination field paths; empty means unset.
	Primary   string
	Alternate string
}

// Destinations returns the non-empty destinations, primary first.
// Equal primary and alternate destinations are both returned.
func (r Row) Destinations() []string {
	var out []string

	for _, d := range []string{r.Primary, r.Alternate} {
		if d != "" {
			out = append(out, d)
		}
	}

	return out
}

// Rows adapts a slice to the lazy row sequence consumed by Compile.
func Rows(rows []Row) iter.Seq2[Row, error] {
	return func(yield func(Row, error) bool) {
		for _, r := range rows {
			if !yield(r, nil) {
				return
			}
		}
	}
}

// Setter is a single source to destination mapping instruction.
type Setter struct {
	Source      string
	Destination string
	Mode        Mode
	Conversion  convert.Conversion
	// Priority is the rank of Source among the writers of Destination,
	// 0 being the highest. Only meaningful in ModePriority.
	Priority int
}

// Target returns the emitted form of s.
func (s Setter) Target() Target {
	return Target{Field: s.Destination, Mode: s.Mode, Priority: s.Priority}
}

// Config is the immutable configuration of the compiler.
type Config struct {
	Types      convert.Table
	Namespaces namespace.Classifier
	// RelatedIPField aggregates every IP written to an ECS field.
	RelatedIPField string
}

// DefaultRelatedIPField is the ECS field listing all IPs seen in an event.
const DefaultRelatedIPField = "related.ip"

// DefaultConfig returns the configuration for the NetWitness meta table.
func DefaultConfig() Config {
	return Config{
		Types:          convert.DefaultTable(),
		Namespaces:     namespace.Default(),
		RelatedIPField: DefaultRelatedIPField,
	}
}
