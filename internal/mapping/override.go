package mapping

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Override record modes.
const (
	recordAppend     = "append"
	recordByPriority = "by_prio"
)

// OverrideRule changes how the writers of one destination are combined.
type OverrideRule struct {
	Mode Mode
	// Ranking maps each allowed source to its priority, 0 being the highest.
	// Only used with ModePriority.
	Ranking map[string]int
}

// AppendRule returns a rule accumulating every writer.
func AppendRule() OverrideRule {
	return OverrideRule{Mode: ModeAppend}
}

// PriorityRule returns a rule ranking sources from highest to lowest priority.
func PriorityRule(sources ...string) (OverrideRule, error) {
	ranking := make(map[string]int, len(sources))

	for i, src := range sources {
		if _, ok := ranking[src]; ok {
			return OverrideRule{}, fmt.Errorf("source %q ranked twice", src)
		}

		ranking[src] = i
	}

	return OverrideRule{Mode: ModePriority, Ranking: ranking}, nil
}

// Sources returns the ranked sources, highest priority first.
func (r OverrideRule) Sources() []string {
	return slices.SortedFunc(maps.Keys(r.Ranking), func(a, b string) int {
		return r.Ranking[a] - r.Ranking[b]
	})
}

// Overrides holds at most one OverrideRule per destination.
type Overrides struct {
	rules map[string]OverrideRule
	order []string
}

// NewOverrides returns an empty override table.
func NewOverrides() *Overrides {
	return &Overrides{rules: make(map[string]OverrideRule)}
}

// Add registers rule for dst. Malformed rules and repeated destinations are
// rejected.
func (o *Overrides) Add(dst string, rule OverrideRule) error {
	if dst == "" {
		return newError(ErrInvalidOverride, dst, "empty destination")
	}

	if _, ok := o.rules[dst]; ok {
		return newError(ErrDuplicateOverride, dst, "repeated override entry")
	}

	switch rule.Mode {
	case ModeAppend:
		if len(rule.Ranking) > 0 {
			return newError(ErrInvalidOverride, dst, "append override takes no ranking: %v", rule.Sources())
		}
	case ModePriority:
		if len(rule.Ranking) < 2 {
			return newError(ErrInvalidOverride, dst, "need at least 2 sources for a priority override, got %d", len(rule.Ranking))
		}
	default:
		return newError(ErrInvalidOverride, dst, "cannot override to mode %q", rule.Mode)
	}

	o.rules[dst] = rule
	o.order = append(o.order, dst)

	return nil
}

// AddRecord registers an override given in record form:
//
//	dst, append
//	dst, by_prio, src0, src1, ...
func (o *Overrides) AddRecord(record []string) error {
	dst, rule, err := ParseOverrideRecord(record)
	if err != nil {
		return err
	}

	return o.Add(dst, rule)
}

// ParseOverrideRecord parses a single override record.
func ParseOverrideRecord(record []string) (string, OverrideRule, error) {
	if len(record) < 2 {
		return "", OverrideRule{}, newError(ErrInvalidOverride, strings.Join(record, ","), "need a destination and a mode")
	}

	dst, mode, rest := record[0], record[1], record[2:]

	switch mode {
	case recordAppend:
		if len(rest) > 0 {
			return "", OverrideRule{}, newError(ErrInvalidOverride, dst, "excess data after append override: %q", rest)
		}

		return dst, AppendRule(), nil

	case recordByPriority:
		if len(rest) < 2 {
			return "", OverrideRule{}, newError(ErrInvalidOverride, dst, "need at least 2 fields for by_prio override: %q", rest)
		}

		rule, err := PriorityRule(rest...)
		if err != nil {
			return "", OverrideRule{}, newError(ErrInvalidOverride, dst, "%v", err)
		}

		return dst, rule, nil

	default:
		return "", OverrideRule{}, newError(ErrInvalidOverride, dst, "unknown override mode %q", mode)
	}
}

// LoadOverrides builds an override table from a sequence of records.
func LoadOverrides(records iter.Seq2[[]string, error]) (*Overrides, error) {
	o := NewOverrides()

	for record, err := range records {
		if err != nil {
			return nil, err
		}

		if err := o.AddRecord(record); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Rule returns the rule registered for dst.
func (o *Overrides) Rule(dst string) (OverrideRule, bool) {
	if o == nil {
		return OverrideRule{}, false
	}

	r, ok := o.rules[dst]

	return r, ok
}

// Destinations returns the overridden destinations in registration order.
func (o *Overrides) Destinations() []string {
	if o == nil {
		return nil
	}

	return slices.Clone(o.order)
}

// Len returns the number of rules.
func (o *Overrides) Len() int {
	if o == nil {
		return 0
	}

	return len(o.rules)
}

// Resolve applies the rule for s.Destination, if any, to s.
// A nil *Overrides resolves nothing.
func (o *Overrides) Resolve(s *Setter) error {
	rule, ok := o.Rule(s.Destination)
	if !ok {
		return nil
	}

	s.Mode = rule.Mode

	if rule.Mode == ModePriority {
		prio, ok := rule.Ranking[s.Source]
		if !ok {
			return newError(ErrMissingPriority, s.Destination, "no priority for source %q (ranked: %v)", s.Source, rule.Sources())
		}

		s.Priority = prio
	}

	return nil
}
