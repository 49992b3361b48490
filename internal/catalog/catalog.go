// Package catalog loads add-on catalogs from YAML or CUE sources and
// exposes them as candidate sets for the resolver.
package catalog

import (
	"github.com/addonmodel/cli/internal/addon"
	"github.com/addonmodel/cli/internal/compat"
)

// Catalog is an ordered collection of add-on records. Order follows the
// source document; lookups return the first record with a matching id.
type Catalog struct {
	addons []*addon.AddOn
}

// New creates a catalog from the given records.
func New(addons ...*addon.AddOn) *Catalog {
	return &Catalog{addons: addons}
}

// AddOns returns the records in catalog order.
func (c *Catalog) AddOns() []*addon.AddOn {
	return c.addons
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.addons)
}

// Lookup returns the first record with the given id, or nil.
func (c *Catalog) Lookup(id string) *addon.AddOn {
	for _, a := range c.addons {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// LoadableIn returns the records loadable in the given host application
// version, preserving catalog order. An empty host version keeps every
// record.
func (c *Catalog) LoadableIn(hostVersion string, cmp compat.ReleaseComparator) []*addon.AddOn {
	if hostVersion == "" {
		return c.addons
	}
	loadable := make([]*addon.AddOn, 0, len(c.addons))
	for _, a := range c.addons {
		if compat.CanLoadIn(a, hostVersion, cmp) {
			loadable = append(loadable, a)
		}
	}
	return loadable
}
