package mapping

import (
	"slices"
	"strconv"
	"strings"
)

// Validate enforces the whole-table invariants. Destinations are checked
// first, in first-write order, then sources in row order.
func (t *Table) Validate() error {
	for _, dst := range t.destinations {
		if err := validateDestination(dst, t.byDestination[dst]); err != nil {
			return err
		}
	}

	for _, src := range t.sources {
		if err := validateSource(src, t.bySource[src]); err != nil {
			return err
		}
	}

	return nil
}

// validateDestination checks that all writers of dst agree on mode and
// conversion, and that "set" destinations have a single writer.
func validateDestination(dst string, setters []Setter) error {
	if modes := distinct(setters, func(s Setter) string { return s.Mode.String() }); len(modes) != 1 {
		return newError(ErrModeConflict, dst, "set in different modes: %s", strings.Join(modes, ", "))
	}

	if convs := distinct(setters, func(s Setter) string { return s.Conversion.String() }); len(convs) != 1 {
		return newError(ErrConversionConflict, dst, "set from different types: %s", strings.Join(convs, ", "))
	}

	if len(setters) > 1 && setters[0].Mode == ModeSet {
		srcs := make([]string, len(setters))
		for i, s := range setters {
			srcs[i] = strconv.Quote(s.Source)
		}

		return newError(ErrAmbiguousSet, dst, "set multiple times, must override mode (sources=[%s])", strings.Join(srcs, ", "))
	}

	return nil
}

// validateSource checks that src converts to one type across its destinations.
// A source without destinations is valid.
func validateSource(src string, setters []Setter) error {
	if len(setters) == 0 {
		return nil
	}

	if convs := distinct(setters, func(s Setter) string { return s.Conversion.String() }); len(convs) != 1 {
		return newError(ErrConversionConflict, src, "converted to different types: %s", strings.Join(convs, ", "))
	}

	return nil
}

// distinct returns the sorted set of keys of setters.
func distinct(setters []Setter, key func(Setter) string) []string {
	out := make([]string, 0, 1)

	for _, s := range setters {
		k := key(s)
		if !slices.Contains(out, k) {
			out = append(out, k)
		}
	}

	slices.Sort(out)

	return out
}
