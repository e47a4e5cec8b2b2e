package mapping

import (
	"iter"
	"slices"
)

// Table holds the Setters of every row, indexed by source and destination.
// Indexes keep row processing order.
type Table struct {
	bySource      map[string][]Setter
	byDestination map[string][]Setter
	sources       []string
	destinations  []string
}

func newTable() *Table {
	return &Table{
		bySource:      make(map[string][]Setter),
		byDestination: make(map[string][]Setter),
	}
}

// Compiler builds a Table one row at a time.
type Compiler struct {
	expander  Expander
	overrides *Overrides
	table     *Table
}

// NewCompiler returns a Compiler. overrides may be nil.
func NewCompiler(cfg Config, overrides *Overrides) *Compiler {
	return &Compiler{
		expander:  NewExpander(cfg),
		overrides: overrides,
		table:     newTable(),
	}
}

// Add expands row, resolves overrides on its Setters and indexes them.
func (c *Compiler) Add(row Row) error {
	src, setters, err := c.expander.Expand(row)
	if err != nil {
		return err
	}

	t := c.table
	if _, ok := t.bySource[src]; ok {
		return newError(ErrDuplicateField, src, "repeated field")
	}

	for i := range setters {
		if err := c.overrides.Resolve(&setters[i]); err != nil {
			return err
		}
	}

	t.bySource[src] = setters
	t.sources = append(t.sources, src)

	for _, s := range setters {
		if _, ok := t.byDestination[s.Destination]; !ok {
			t.destinations = append(t.destinations, s.Destination)
		}

		t.byDestination[s.Destination] = append(t.byDestination[s.Destination], s)
	}

	return nil
}

// Table validates and returns the compiled table.
func (c *Compiler) Table() (*Table, error) {
	if err := c.table.Validate(); err != nil {
		return nil, err
	}

	return c.table, nil
}

// Compile builds and validates the table for rows. The first error aborts
// the whole compilation.
func Compile(cfg Config, rows iter.Seq2[Row, error], overrides *Overrides) (*Table, error) {
	c := NewCompiler(cfg, overrides)

	for row, err := range rows {
		if err != nil {
			return nil, err
		}

		if err := c.Add(row); err != nil {
			return nil, err
		}
	}

	return c.Table()
}

// Sources returns the source paths in row order.
func (t *Table) Sources() []string {
	return slices.Clone(t.sources)
}

// Destinations returns the destination paths in first-write order.
func (t *Table) Destinations() []string {
	return slices.Clone(t.destinations)
}

// BySource returns the Setters originating from src.
func (t *Table) BySource(src string) []Setter {
	return slices.Clone(t.bySource[src])
}

// ByDestination returns the Setters writing dst, in row order.
func (t *Table) ByDestination(dst string) []Setter {
	return slices.Clone(t.byDestination[dst])
}
