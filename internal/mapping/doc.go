// Package mapping compiles a field-mapping table into conflict-free,
// deterministic mapping tables for the ECS and RSA namespaces.
//
// # Pipeline
//
// Every input Row is handled in one pass:
//
//  1. Expander turns the row into Setters, one per non-empty destination,
//     sharing the conversion classified from the row's declared type. IP
//     fields that reach any ECS destination are also appended to the
//     related IP field.
//  2. Overrides replace the default "set" mode of a Setter with "append" or
//     "prio" (priority ordered) when its destination has a rule.
//  3. The Setter is indexed by source and by destination.
//
// Once every row is in, Validate enforces the whole-table invariants:
//
//   - one mode and one conversion per destination
//   - at most one writer for destinations in "set" mode
//   - one conversion per source
//
// Emit then lists sources in lexicographic order, filtered by namespace.
//
// # Override files
//
// Overrides are given as CSV records, highest priority first:
//
//	related.hosts,append
//	host.name,by_prio,hostname,shost,dhost
//
// or as YAML:
//
//	- field: related.hosts
//	  mode: append
//	- field: host.name
//	  mode: by_prio
//	  ranking: [hostname, shost, dhost]
//
// Any error aborts compilation; no partial table is ever returned.
package mapping
