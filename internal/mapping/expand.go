package mapping

import (
	"fmt"
	"slices"

	"fieldmap-generator/internal/convert"
)

// Expander turns rows into Setters.
type Expander struct {
	config Config
}

// NewExpander returns an Expander using cfg.
func NewExpander(cfg Config) Expander {
	return Expander{config: cfg}
}

// Expand returns the source path of row and one Setter per destination, all
// in ModeSet. An IP source mapped to any ECS field also appends itself to the
// related IP field.
func (e Expander) Expand(row Row) (string, []Setter, error) {
	conv, err := e.config.Types.Classify(row.Type)
	if err != nil {
		return row.Source, nil, fmt.Errorf("field %q: %w", row.Source, err)
	}

	dsts := row.Destinations()
	setters := make([]Setter, 0, len(dsts)+1)

	for _, dst := range dsts {
		setters = append(setters, Setter{
			Source:      row.Source,
			Destination: dst,
			Mode:        ModeSet,
			Conversion:  conv,
		})
	}

	if conv == convert.IP && slices.ContainsFunc(dsts, e.config.Namespaces.IsECS) {
		setters = append(setters, Setter{
			Source:      row.Source,
			Destination: e.config.RelatedIPField,
			Mode:        ModeAppend,
			Conversion:  convert.IP,
		})
	}

	return row.Source, setters, nil
}
