package mapping

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// overrideEntry is the YAML form of one override record.
type overrideEntry struct {
	Field   string   `yaml:"field"`
	Mode    string   `yaml:"mode"`
	Ranking []string `yaml:"ranking,omitempty"`
}

// ParseOverridesYAML parses a YAML list of overrides.
func ParseOverridesYAML(data []byte) (*Overrides, error) {
	var entries []overrideEntry

	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse overrides YAML: %w", err)
	}

	o := NewOverrides()

	for _, e := range entries {
		record := append([]string{e.Field, e.Mode}, e.Ranking...)
		if err := o.AddRecord(record); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// IsYAMLFile reports whether path names a YAML override file.
func IsYAMLFile(path string) bool {
	switch filepath.Ext(path) {
	case ".yml", ".yaml":
		return true
	default:
		return false
	}
}

// LoadOverridesYAMLFile reads and parses a YAML override file.
func LoadOverridesYAMLFile(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides file %s: %w", path, err)
	}

	return ParseOverridesYAML(data)
}
