package catalog

import (
	"fmt"

	"github.com/addonmodel/cli/internal/addon"
	"github.com/addonmodel/cli/internal/output"
	"github.com/addonmodel/cli/internal/semver"
)

// manifest is the on-disk shape of a catalog document.
type manifest struct {
	AddOns []addOnEntry `yaml:"addOns" json:"addOns"`
}

// addOnEntry is one add-on record in a catalog document.
type addOnEntry struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Author      string `yaml:"author,omitempty" json:"author,omitempty"`
	Changes     string `yaml:"changes,omitempty" json:"changes,omitempty"`

	Status      string `yaml:"status,omitempty" json:"status,omitempty"`
	FileVersion int    `yaml:"fileVersion" json:"fileVersion"`
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`

	NotBeforeVersion string `yaml:"notBeforeVersion,omitempty" json:"notBeforeVersion,omitempty"`
	NotFromVersion   string `yaml:"notFromVersion,omitempty" json:"notFromVersion,omitempty"`

	URL          string `yaml:"url,omitempty" json:"url,omitempty"`
	InfoURL      string `yaml:"infoUrl,omitempty" json:"infoUrl,omitempty"`
	Size         int64  `yaml:"size,omitempty" json:"size,omitempty"`
	Hash         string `yaml:"hash,omitempty" json:"hash,omitempty"`
	Installation string `yaml:"installation,omitempty" json:"installation,omitempty"`

	Dependencies *dependenciesEntry `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
}

// dependenciesEntry is the dependency block of an add-on entry.
type dependenciesEntry struct {
	RuntimeVersion string            `yaml:"runtimeVersion,omitempty" json:"runtimeVersion,omitempty"`
	AddOns         []dependencyEntry `yaml:"addOns,omitempty" json:"addOns,omitempty"`
}

// dependencyEntry is one declared dependency. The file-version bounds are
// pointers so that an absent bound is distinguishable from a zero bound.
type dependencyEntry struct {
	ID                   string `yaml:"id" json:"id"`
	NotBeforeFileVersion *int   `yaml:"notBeforeFileVersion,omitempty" json:"notBeforeFileVersion,omitempty"`
	NotFromFileVersion   *int   `yaml:"notFromFileVersion,omitempty" json:"notFromFileVersion,omitempty"`
	SemVer               string `yaml:"semver,omitempty" json:"semver,omitempty"`
}

// record converts a catalog entry to an add-on record. Malformed versions
// and statuses degrade instead of failing: the record is kept with the
// affected field absent or at its loosest value.
func (e addOnEntry) record() (*addon.AddOn, error) {
	if e.ID == "" {
		return nil, fmt.Errorf("catalog entry without id")
	}
	if e.FileVersion < 0 {
		return nil, fmt.Errorf("add-on %s: negative fileVersion %d", e.ID, e.FileVersion)
	}

	a := &addon.AddOn{
		ID:               e.ID,
		Name:             e.Name,
		Description:      e.Description,
		Author:           e.Author,
		Changes:          e.Changes,
		FileVersion:      e.FileVersion,
		NotBeforeVersion: e.NotBeforeVersion,
		NotFromVersion:   e.NotFromVersion,
		URL:              e.URL,
		InfoURL:          e.InfoURL,
		Size:             e.Size,
		Hash:             e.Hash,
		InstallState:     addon.InstallState(e.Installation),
	}
	if a.Name == "" {
		a.Name = a.ID
	}
	if a.InstallState == "" {
		a.InstallState = addon.InstallStateNotInstalled
	}

	if e.Status != "" {
		status, err := addon.ParseStatus(e.Status)
		if err != nil {
			output.Warn("unknown add-on status, treating as unknown", "addon", e.ID, "status", e.Status)
		}
		a.Status = status
	}

	if e.Version != "" {
		v, err := semver.Parse(e.Version)
		if err != nil {
			output.Debug("unparseable add-on version, treating as absent", "addon", e.ID, "version", e.Version)
		} else {
			a.Version = v
		}
	}

	if e.Dependencies != nil {
		deps := &addon.Dependencies{RuntimeVersion: e.Dependencies.RuntimeVersion}
		for _, d := range e.Dependencies.AddOns {
			dep := addon.Dependency{
				ID:                   d.ID,
				NotBeforeFileVersion: addon.NoFileVersionBound,
				NotFromFileVersion:   addon.NoFileVersionBound,
				SemVer:               d.SemVer,
			}
			if d.NotBeforeFileVersion != nil {
				dep.NotBeforeFileVersion = *d.NotBeforeFileVersion
			}
			if d.NotFromFileVersion != nil {
				dep.NotFromFileVersion = *d.NotFromFileVersion
			}
			deps.AddOns = append(deps.AddOns, dep)
		}
		a.Dependencies = deps
	}

	return a, nil
}

// catalog converts a decoded manifest into a Catalog.
func (m manifest) catalog() (*Catalog, error) {
	addons := make([]*addon.AddOn, 0, len(m.AddOns))
	for _, entry := range m.AddOns {
		a, err := entry.record()
		if err != nil {
			return nil, err
		}
		addons = append(addons, a)
	}
	return &Catalog{addons: addons}, nil
}
