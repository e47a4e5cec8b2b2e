// Package convert classifies declared source types into the conversion applied
// to the destination field, and maps conversions to schema storage types.
//
// The classification table is a closed, hand-maintained enumeration. Extending
// it to a new source type is a configuration change made through NewTable or
// the project config, never through package state.
package convert
