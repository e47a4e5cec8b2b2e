package schema

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"fieldmap-generator/internal/gen"
)

// Output file names.
const (
	RSAFile = "fields.yml"
	ECSFile = "ecs.yml"
)

type groupNode struct {
	field    *Field
	children map[string]*groupNode
	leaves   map[string]bool
}

func newGroupNode(f *Field) *groupNode {
	return &groupNode{
		field:    f,
		children: make(map[string]*groupNode),
		leaves:   make(map[string]bool),
	}
}

func (g *groupNode) group(name, path string) (*groupNode, error) {
	if child, ok := g.children[name]; ok {
		return child, nil
	}

	if g.leaves[name] {
		return nil, fmt.Errorf("%w: %q is both a field and a group", ErrRepeatedField, path)
	}

	child := newGroupNode(&Field{Name: name, Type: GroupType})
	g.children[name] = child
	g.field.Fields = append(g.field.Fields, child.field)

	return child, nil
}

func (g *groupNode) leaf(f *Field, path string) error {
	if _, ok := g.children[f.Name]; ok || g.leaves[f.Name] {
		return fmt.Errorf("%w: %q", ErrRepeatedField, path)
	}

	g.leaves[f.Name] = true
	g.field.Fields = append(g.field.Fields, f)

	return nil
}

// Serialize nests flat fields with dotted names into a tree of groups.
// Groups and leaves keep the order in which they were first seen; the
// input fields are not modified.
func Serialize(fields []*Field) ([]*Field, error) {
	root := newGroupNode(&Field{})

	for _, f := range fields {
		parts := strings.Split(f.Name, ".")
		node := root

		for i, part := range parts[:len(parts)-1] {
			var err error

			node, err = node.group(part, strings.Join(parts[:i+1], "."))
			if err != nil {
				return nil, err
			}
		}

		leaf := f.Clone()
		leaf.Name = parts[len(parts)-1]

		if err := node.leaf(leaf, f.Name); err != nil {
			return nil, err
		}
	}

	return root.field.Fields, nil
}

// Marshal writes fields as a YAML list.
func Marshal(fields []*Field) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(fields); err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}

	return buf.Bytes(), nil
}

// Files serializes the collected fields into the RSA and ECS
// schema-definition files.
func (b *Builder) Files() ([]gen.GeneratedFile, error) {
	sets := []struct {
		name   string
		fields *FieldSet
	}{
		{RSAFile, b.rsa},
		{ECSFile, b.ecs},
	}

	files := make([]gen.GeneratedFile, 0, len(sets))

	for _, s := range sets {
		tree, err := Serialize(s.fields.Fields())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}

		content, err := Marshal(tree)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}

		files = append(files, gen.GeneratedFile{Filename: s.name, Content: content})
	}

	return files, nil
}
