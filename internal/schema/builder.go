package schema

import (
	"fmt"
	"iter"

	"fieldmap-generator/internal/convert"
	"fieldmap-generator/internal/diagnostic"
	"fieldmap-generator/internal/mapping"
	"fieldmap-generator/internal/match"
	"fieldmap-generator/internal/namespace"
)

// Diagnostic codes reported by the Builder.
const (
	CodeDuplicatedRSAField   = "duplicated_rsa_field"
	CodeUndocumentedECSField = "undocumented_ecs_field"
)

// Options configures a Builder.
type Options struct {
	Types      convert.Table
	Namespaces namespace.Classifier
	MACStorage convert.MACStorage
	// Strict reports duplicated RSA fields and undocumented ECS fields as
	// errors instead of warnings.
	Strict bool
}

// DefaultOptions returns the options matching mapping.DefaultConfig.
func DefaultOptions() Options {
	cfg := mapping.DefaultConfig()

	return Options{
		Types:      cfg.Types,
		Namespaces: cfg.Namespaces,
		MACStorage: convert.MACAsKeyword,
	}
}

// Builder collects the destination fields of mapping rows.
type Builder struct {
	opts      Options
	reference *Reference
	rsa       *FieldSet
	ecs       *FieldSet
	// ecsTypes holds the storage type each ECS field was first declared with.
	ecsTypes map[string]string
	diags    diagnostic.Diagnostics
}

// NewBuilder returns a Builder enriching ECS fields from reference, which
// may be nil.
func NewBuilder(reference *Reference, opts Options) *Builder {
	return &Builder{
		opts:      opts,
		reference: reference,
		rsa:       NewFieldSet(),
		ecs:       NewFieldSet(),
		ecsTypes:  make(map[string]string),
	}
}

// Add records the destinations of row.
func (b *Builder) Add(row mapping.Row) error {
	conv, err := b.opts.Types.Classify(row.Type)
	if err != nil {
		return fmt.Errorf("field %q: %w", row.Source, err)
	}

	storage := convert.StorageType(conv, b.opts.MACStorage)

	for _, dst := range row.Destinations() {
		switch b.opts.Namespaces.Of(dst) {
		case namespace.RSA:
			err = b.addRSA(dst, storage, row.Description)
		default:
			err = b.addECS(dst, storage)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (b *Builder) addRSA(name, storage, description string) error {
	if f, ok := b.rsa.Get(name); ok {
		if f.Type != storage {
			return fmt.Errorf("%w: RSA field %q: %s and %s", ErrTypeConflict, name, f.Type, storage)
		}

		b.report(CodeDuplicatedRSAField, "duplicated RSA field", name)

		return nil
	}

	b.rsa.Put(&Field{Name: name, Type: storage, Description: description})

	return nil
}

func (b *Builder) addECS(name, storage string) error {
	if declared, ok := b.ecsTypes[name]; ok {
		if declared != storage {
			return fmt.Errorf("%w: ECS field %q: %s and %s", ErrTypeConflict, name, declared, storage)
		}

		return nil
	}

	b.ecsTypes[name] = storage

	if ref, ok := b.reference.Lookup(name); ok {
		b.ecs.Put(ref)
		return nil
	}

	var suggestions []string
	if s, ok := match.Suggest(name, b.reference.Names(), match.DefaultThreshold); ok {
		suggestions = append(suggestions, s)
	}

	b.report(CodeUndocumentedECSField, "undocumented ECS field", name, suggestions...)
	b.ecs.Put(&Field{Name: name, Type: storage})

	return nil
}

func (b *Builder) report(code, message, field string, suggestions ...string) {
	if b.opts.Strict {
		b.diags.AddError(code, message, field, suggestions...)
		return
	}

	b.diags.AddWarning(code, message, field, suggestions...)
}

// AddAll records every row of rows, stopping at the first error.
func (b *Builder) AddAll(rows iter.Seq2[mapping.Row, error]) error {
	for row, err := range rows {
		if err != nil {
			return err
		}

		if err := b.Add(row); err != nil {
			return err
		}
	}

	return nil
}

// RSA returns the collected RSA fields in first-seen order.
func (b *Builder) RSA() *FieldSet {
	return b.rsa
}

// ECS returns the collected ECS fields in first-seen order.
func (b *Builder) ECS() *FieldSet {
	return b.ecs
}

// Diagnostics returns the findings reported so far. Callers decide whether
// errors among them abort the run.
func (b *Builder) Diagnostics() diagnostic.Diagnostics {
	return b.diags
}
