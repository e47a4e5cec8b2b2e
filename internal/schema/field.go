package schema

import (
	"maps"
	"slices"
)

// GroupType is the type of a field that only nests other fields.
const GroupType = "group"

// Field is one entry of a schema-definition file. Keys without a dedicated
// struct field are kept in Extra and written back unchanged.
type Field struct {
	Name        string         `yaml:"name"`
	Type        string         `yaml:"type,omitempty"`
	Description string         `yaml:"description,omitempty"`
	Fields      []*Field       `yaml:"fields,omitempty"`
	Extra       map[string]any `yaml:",inline"`
}

// IsGroup reports whether f nests other fields.
func (f *Field) IsGroup() bool {
	return f.Type == GroupType
}

// Clone returns a deep copy of f.
func (f *Field) Clone() *Field {
	c := *f
	c.Extra = maps.Clone(f.Extra)

	if f.Fields != nil {
		c.Fields = make([]*Field, len(f.Fields))
		for i, child := range f.Fields {
			c.Fields[i] = child.Clone()
		}
	}

	return &c
}

// FieldSet is an insertion-ordered set of flat fields keyed by dotted name.
type FieldSet struct {
	byName map[string]*Field
	names  []string
}

// NewFieldSet returns an empty FieldSet.
func NewFieldSet() *FieldSet {
	return &FieldSet{byName: make(map[string]*Field)}
}

// Get returns the field named name.
func (s *FieldSet) Get(name string) (*Field, bool) {
	f, ok := s.byName[name]
	return f, ok
}

// Put stores f under f.Name, keeping the position of an existing entry.
func (s *FieldSet) Put(f *Field) {
	if _, ok := s.byName[f.Name]; !ok {
		s.names = append(s.names, f.Name)
	}

	s.byName[f.Name] = f
}

// Names returns the field names in insertion order.
func (s *FieldSet) Names() []string {
	return slices.Clone(s.names)
}

// Fields returns the fields in insertion order.
func (s *FieldSet) Fields() []*Field {
	out := make([]*Field, len(s.names))
	for i, n := range s.names {
		out[i] = s.byName[n]
	}

	return out
}

// Len returns the number of fields.
func (s *FieldSet) Len() int {
	return len(s.names)
}
