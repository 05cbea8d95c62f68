package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// lexiconFile is the YAML shape of an overlay file.
type lexiconFile struct {
	Locations  map[string][]string `yaml:"locations"`
	Categories map[string][]string `yaml:"categories"`
}

// LoadFile builds a Lexicon from the built-in tables overlaid with the YAML
// file at path. A file entry replaces the built-in entry with the same
// canonical term. An empty path returns the built-ins unchanged. On error
// the caller should fall back to Default; lookups must keep working.
func LoadFile(path string) (*Lexicon, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon: %w", err)
	}
	var file lexiconFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon: %w", err)
	}
	return New(
		mergeTables(defaultLocations, file.Locations),
		mergeTables(defaultCategories, file.Categories),
	), nil
}

func mergeTables(base, overlay map[string][]string) map[string][]string {
	merged := make(map[string][]string, len(base)+len(overlay))
	for canonical, variants := range base {
		merged[canonical] = variants
	}
	for canonical, variants := range overlay {
		merged[canonical] = variants
	}
	return merged
}
