package catalog

import (
	"fmt"
	"path/filepath"

	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"

	"github.com/addonmodel/cli/internal/output"
)

// LoadCUE reads a catalog from a CUE file. The file must evaluate to a
// value with an addOns list matching the catalog document shape.
func LoadCUE(path string) (*Catalog, error) {
	dir := filepath.Dir(path)

	cfg := &load.Config{Dir: dir}
	instances := load.Instances([]string{filepath.Base(path)}, cfg)
	if len(instances) == 0 {
		return nil, fmt.Errorf("no CUE instances found in %s", path)
	}

	inst := instances[0]
	if inst.Err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, inst.Err)
	}

	value := cuecontext.New().BuildInstance(inst)
	if value.Err() != nil {
		return nil, fmt.Errorf("building catalog %s: %w", path, value.Err())
	}

	var m manifest
	if err := value.Decode(&m); err != nil {
		return nil, fmt.Errorf("decoding catalog %s: %w", path, err)
	}

	c, err := m.catalog()
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	output.Debug("loaded CUE catalog", "path", path, "addons", c.Len())
	return c, nil
}
