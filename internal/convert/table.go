package convert

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"fieldmap-generator/internal/match"
)

// ErrUnsupportedType is returned when a declared type has no entry in the table.
var ErrUnsupportedType = errors.New("unsupported type")

// UnsupportedTypeError reports a declared type absent from the table.
type UnsupportedTypeError struct {
	Type string
	// Suggestion is the closest known type, if any.
	Suggestion string
}

func (e *UnsupportedTypeError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v: %q (did you mean %q?)", ErrUnsupportedType, e.Type, e.Suggestion)
	}

	return fmt.Sprintf("%v: %q", ErrUnsupportedType, e.Type)
}

func (e *UnsupportedTypeError) Unwrap() error {
	return ErrUnsupportedType
}

// Table maps declared source types to conversions. The zero value classifies
// nothing. A Table is immutable once built.
type Table struct {
	kinds map[string]Conversion
}

// NewTable builds a Table from a copy of kinds.
func NewTable(kinds map[string]Conversion) Table {
	return Table{kinds: maps.Clone(kinds)}
}

// DefaultTable returns the classification used by the NetWitness meta table.
func DefaultTable() Table {
	return NewTable(map[string]Conversion{
		"":        None,
		"Text":    None, // stored as keyword
		"TimeT":   Date,
		"IPv4":    IP,
		"IPv6":    IP,
		"UInt64":  Long,
		"UInt32":  Long,
		"UInt16":  Long,
		"UInt8":   Long,
		"Int64":   Long,
		"Int32":   Long,
		"Int16":   Long,
		"Float64": Double,
		"Float32": Double,
		"MAC":     MAC,
	})
}

// Classify returns the conversion for a declared type.
func (t Table) Classify(declared string) (Conversion, error) {
	if c, ok := t.kinds[declared]; ok {
		return c, nil
	}

	err := &UnsupportedTypeError{Type: declared}
	if s, ok := match.Suggest(declared, t.Types(), match.DefaultThreshold); ok {
		err.Suggestion = s
	}

	return None, err
}

// Types returns the declared types known to the table, sorted.
func (t Table) Types() []string {
	return slices.Sorted(maps.Keys(t.kinds))
}

// Len returns the number of declared types in the table.
func (t Table) Len() int {
	return len(t.kinds)
}
