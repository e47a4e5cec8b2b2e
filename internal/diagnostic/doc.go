// Package diagnostic provides structured warnings and errors raised while
// building schema definitions and documentation from a mapping table.
//
// Fatal invariant violations of the mapping compiler are returned as errors;
// diagnostics carry the non-fatal findings (undocumented ECS fields,
// repeated RSA fields) so the CLI can report them with full context.
package diagnostic
