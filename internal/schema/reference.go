package schema

import (
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// ReferenceKey is the key of the single top-level entry of fields.ecs.yml.
const ReferenceKey = "ecs"

type referenceFile struct {
	Key    string   `yaml:"key"`
	Fields []*Field `yaml:"fields"`
}

// Reference is the flattened reference ECS definition, keyed by dotted name.
type Reference struct {
	fields *FieldSet
}

// NewReference returns a Reference holding fields, keyed by their names.
func NewReference(fields ...*Field) *Reference {
	set := NewFieldSet()
	for _, f := range fields {
		set.Put(f)
	}

	return &Reference{fields: set}
}

// LoadReferenceFile reads the reference ECS definition at path.
func LoadReferenceFile(path string) (*Reference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening reference file: %w", err)
	}
	defer f.Close()

	ref, err := LoadReference(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ref, nil
}

// LoadReference parses a reference ECS definition: a one-element list whose
// key is "ecs". Groups are flattened into dotted names.
func LoadReference(r io.Reader) (*Reference, error) {
	var doc []referenceFile

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing reference YAML: %w", err)
	}

	if len(doc) != 1 {
		return nil, fmt.Errorf("%w: expected one top-level entry, got %d", ErrInvalidReference, len(doc))
	}

	if doc[0].Key != ReferenceKey {
		return nil, fmt.Errorf("%w: top-level key is %q, want %q", ErrInvalidReference, doc[0].Key, ReferenceKey)
	}

	ref := &Reference{fields: NewFieldSet()}
	if err := ref.flatten("", doc[0].Fields); err != nil {
		return nil, err
	}

	return ref, nil
}

func (r *Reference) flatten(prefix string, fields []*Field) error {
	for _, f := range fields {
		if f.Name == "" {
			return fmt.Errorf("%w: field without name under %q", ErrInvalidReference, prefix)
		}

		name := prefix + f.Name

		if f.Type == "" {
			return fmt.Errorf("%w: field %q has no type", ErrInvalidReference, name)
		}

		if f.IsGroup() && f.Fields != nil {
			if err := r.flatten(name+".", f.Fields); err != nil {
				return err
			}

			continue
		}

		flat := f.Clone()
		flat.Name = name
		r.fields.Put(flat)
	}

	return nil
}

// Lookup returns a copy of the reference field named name.
func (r *Reference) Lookup(name string) (*Field, bool) {
	if r == nil {
		return nil, false
	}

	f, ok := r.fields.Get(name)
	if !ok {
		return nil, false
	}

	return f.Clone(), true
}

// Names returns the reference field names, sorted.
func (r *Reference) Names() []string {
	if r == nil {
		return nil
	}

	names := r.fields.Names()
	slices.Sort(names)

	return names
}

// Len returns the number of reference fields.
func (r *Reference) Len() int {
	if r == nil {
		return 0
	}

	return r.fields.Len()
}
