package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/addonmodel/cli/internal/output"
)

// Default file names looked for when loading a catalog from a directory.
var defaultCatalogFiles = []string{"catalog.yaml", "catalog.yml", "catalog.cue"}

// Load reads a catalog from the given path: a YAML file, a CUE file, or a
// directory holding one of the default catalog files.
func Load(path string) (*Catalog, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving catalog path: %w", err)
	}

	info, err := os.Stat(absPath)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("catalog not found: %s", absPath)
	}
	if err != nil {
		return nil, fmt.Errorf("reading catalog path: %w", err)
	}

	if info.IsDir() {
		for _, name := range defaultCatalogFiles {
			candidate := filepath.Join(absPath, name)
			if _, err := os.Stat(candidate); err == nil {
				return Load(candidate)
			}
		}
		return nil, fmt.Errorf("no catalog file in %s (looked for %s)",
			absPath, strings.Join(defaultCatalogFiles, ", "))
	}

	switch strings.ToLower(filepath.Ext(absPath)) {
	case ".yaml", ".yml":
		return LoadYAML(absPath)
	case ".cue":
		return LoadCUE(absPath)
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s", absPath)
	}
}

// LoadYAML reads a YAML catalog document.
func LoadYAML(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding catalog %s: %w", path, err)
	}

	c, err := m.catalog()
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	output.Debug("loaded catalog", "path", path, "addons", c.Len())
	return c, nil
}
