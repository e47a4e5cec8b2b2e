package mapping

import (
	"slices"

	"fieldmap-generator/internal/convert"
	"fieldmap-generator/internal/namespace"
)

// Target is one emitted destination of a source.
type Target struct {
	Field    string
	Mode     Mode
	Priority int
}

// Entry is the emitted mapping of one source field.
type Entry struct {
	Source     string
	Conversion convert.Conversion
	Targets    []Target
}

// Tables are the emitted ECS and RSA mapping tables.
type Tables struct {
	ECS []Entry
	RSA []Entry
}

// Emit lists, in lexicographic source order, the Setters whose destination
// satisfies keep. Sources left without Setters are omitted.
func (t *Table) Emit(keep namespace.Predicate) []Entry {
	sources := slices.Sorted(slices.Values(t.sources))
	entries := make([]Entry, 0, len(sources))

	for _, src := range sources {
		var targets []Target

		conv := convert.None

		for _, s := range t.bySource[src] {
			if !keep(s.Destination) {
				continue
			}

			conv = s.Conversion
			targets = append(targets, s.Target())
		}

		if len(targets) == 0 {
			continue
		}

		entries = append(entries, Entry{Source: src, Conversion: conv, Targets: targets})
	}

	return entries
}

// EmitAll emits both namespaces using the classifier ns.
func (t *Table) EmitAll(ns namespace.Classifier) Tables {
	return Tables{
		ECS: t.Emit(ns.Predicate(namespace.ECS)),
		RSA: t.Emit(ns.Predicate(namespace.RSA)),
	}
}
