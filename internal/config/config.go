// Package config loads the project configuration: the column layout of the
// mapping table, the type classification table and the namespace rules.
//
// Every field is optional; missing values fall back to Default:
//
//	columns:
//	  description: 3
//	  source: 4
//	  type: 6
//	  map: 11
//	  alt: 12
//	header_sentinel: revision
//	reserved_prefix: "rsa."
//	related_ip_field: related.ip
//	mac_storage: keyword      # or: mac
//	types:                    # replaces the default table when present
//	  Text: ""
//	  IPv4: ip
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fieldmap-generator/internal/convert"
	"fieldmap-generator/internal/mapping"
	"fieldmap-generator/internal/namespace"
)

// Columns holds the zero-based positions of the mapping table columns.
type Columns struct {
	Description int `yaml:"description"`
	Source      int `yaml:"source"`
	Type        int `yaml:"type"`
	Map         int `yaml:"map"`
	Alt         int `yaml:"alt"`
}

// DefaultColumns is the layout of the NetWitness meta spreadsheet export.
func DefaultColumns() Columns {
	return Columns{Description: 3, Source: 4, Type: 6, Map: 11, Alt: 12}
}

// Width returns the minimum record length covering every column.
func (c Columns) Width() int {
	return max(c.Description, c.Source, c.Type, c.Map, c.Alt) + 1
}

// Config is the project configuration.
type Config struct {
	Columns        *Columns          `yaml:"columns,omitempty"`
	HeaderSentinel string            `yaml:"header_sentinel,omitempty"`
	ReservedPrefix string            `yaml:"reserved_prefix,omitempty"`
	RelatedIPField string            `yaml:"related_ip_field,omitempty"`
	MACStorage     string            `yaml:"mac_storage,omitempty"`
	Types          map[string]string `yaml:"types,omitempty"`
}

// Defaults.
const (
	DefaultHeaderSentinel = "revision"
	DefaultMACStorage     = "keyword"
)

// Default returns the configuration of the NetWitness meta table layout.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)

	return c
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses and validates YAML configuration data.
func Parse(data []byte) (*Config, error) {
	// Columns missing from a partial columns block keep their defaults.
	cols := DefaultColumns()
	c := Config{Columns: &cols}

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Columns == nil {
		cols := DefaultColumns()
		c.Columns = &cols
	}

	if c.HeaderSentinel == "" {
		c.HeaderSentinel = DefaultHeaderSentinel
	}

	if c.ReservedPrefix == "" {
		c.ReservedPrefix = namespace.DefaultPrefix
	}

	if c.RelatedIPField == "" {
		c.RelatedIPField = mapping.DefaultRelatedIPField
	}

	if c.MACStorage == "" {
		c.MACStorage = DefaultMACStorage
	}
}

// Validate checks column positions, conversion names and the MAC policy.
func (c *Config) Validate() error {
	var errs []error

	if cols := c.Columns; cols != nil {
		for name, idx := range map[string]int{
			"description": cols.Description,
			"source":      cols.Source,
			"type":        cols.Type,
			"map":         cols.Map,
			"alt":         cols.Alt,
		} {
			if idx < 0 {
				errs = append(errs, fmt.Errorf("column %s: negative index %d", name, idx))
			}
		}
	}

	for declared, conv := range c.Types {
		if _, err := convert.ParseConversion(conv); err != nil {
			errs = append(errs, fmt.Errorf("type %q: %w", declared, err))
		}
	}

	if _, err := ParseMACStorage(c.MACStorage); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ParseMACStorage parses a MAC storage policy name.
func ParseMACStorage(s string) (convert.MACStorage, error) {
	for _, m := range []convert.MACStorage{convert.MACAsKeyword, convert.MACAsMAC} {
		if m.String() == s {
			return m, nil
		}
	}

	return convert.MACAsKeyword, fmt.Errorf("unknown mac_storage %q (want keyword or mac)", s)
}

// TypeTable returns the configured classification table.
func (c *Config) TypeTable() convert.Table {
	if len(c.Types) == 0 {
		return convert.DefaultTable()
	}

	kinds := make(map[string]convert.Conversion, len(c.Types))
	for declared, name := range c.Types {
		// Validate has already rejected unknown names.
		kinds[declared], _ = convert.ParseConversion(name)
	}

	return convert.NewTable(kinds)
}

// MAC returns the configured MAC storage policy.
func (c *Config) MAC() convert.MACStorage {
	m, _ := ParseMACStorage(c.MACStorage)
	return m
}

// Mapping returns the compiler configuration.
func (c *Config) Mapping() mapping.Config {
	return mapping.Config{
		Types:          c.TypeTable(),
		Namespaces:     namespace.NewClassifier(c.ReservedPrefix),
		RelatedIPField: c.RelatedIPField,
	}
}
