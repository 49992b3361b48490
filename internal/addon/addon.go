// Package addon defines the add-on record: the identity, versioning and
// declared dependencies of one pluggable unit, as described by a catalog.
//
// Records are constructed by the catalog package (or by hand in tests) and
// are treated as immutable by the resolver.
package addon

import (
	"fmt"

	"github.com/addonmodel/cli/internal/semver"
)

// NoFileVersionBound marks an absent file-version bound on a dependency.
const NoFileVersionBound = -1

// InstallState is the installation status of an add-on in the host.
type InstallState string

const (
	// InstallStateAvailable means the add-on can be installed, e.g. a
	// marketplace entry that may still need to be downloaded.
	InstallStateAvailable InstallState = "available"

	// InstallStateNotInstalled means the add-on is present but not installed,
	// e.g. because a dependency is missing or being updated.
	InstallStateNotInstalled InstallState = "not-installed"

	// InstallStateInstalled means the add-on is installed.
	InstallStateInstalled InstallState = "installed"

	// InstallStateDownloading means the add-on package is being downloaded.
	InstallStateDownloading InstallState = "downloading"

	// InstallStateUninstallFailed means the uninstallation of the add-on
	// failed.
	InstallStateUninstallFailed InstallState = "uninstallation-failed"

	// InstallStateSoftUninstallFailed means the uninstallation failed while
	// updating a dependency.
	InstallStateSoftUninstallFailed InstallState = "soft-uninstallation-failed"
)

// Dependency is one declared requirement on another add-on.
type Dependency struct {
	// ID is the id of the required add-on.
	ID string

	// NotBeforeFileVersion is the inclusive lower bound on the dependency's
	// file version, or NoFileVersionBound.
	NotBeforeFileVersion int

	// NotFromFileVersion is the exclusive upper bound on the dependency's
	// file version, or NoFileVersionBound.
	NotFromFileVersion int

	// SemVer is a semantic version range the dependency must match.
	// Empty means no constraint.
	SemVer string
}

// Dependencies is the dependency block of an add-on manifest.
//
// A record without a block (nil) declares nothing and is trivially
// satisfied; a record with an empty block still declares "no dependencies"
// and participates in the runtime-version check.
type Dependencies struct {
	// RuntimeVersion is the minimum platform runtime version required to
	// run the add-on. Empty means no requirement.
	RuntimeVersion string

	// AddOns are the required add-ons, in declaration order. The order is
	// significant: resolution reports the first violated requirement.
	AddOns []Dependency
}

// AddOn is one add-on record from a catalog.
type AddOn struct {
	ID          string
	Name        string
	Description string
	Author      string
	Changes     string

	// FileVersion is the packaging revision, increasing with every release.
	FileVersion int

	// Version is the semantic version, nil for legacy records.
	Version *semver.Version

	Status Status

	// NotBeforeVersion and NotFromVersion bound the host application
	// versions this add-on is valid for. Either may be empty.
	NotBeforeVersion string
	NotFromVersion   string

	URL     string
	InfoURL string
	Size    int64
	Hash    string

	InstallState InstallState

	Dependencies *Dependencies
}

// SameAddOn reports whether o is a record for the same add-on id,
// regardless of version.
func (a *AddOn) SameAddOn(o *AddOn) bool {
	return a.ID == o.ID
}

// SameIdentity reports whether a and o are the same release: same id,
// same file version and same semantic version. Two records may share an id
// while differing in version.
func (a *AddOn) SameIdentity(o *AddOn) bool {
	if o == nil {
		return false
	}
	return a.ID == o.ID && a.FileVersion == o.FileVersion && a.Version.Equal(o.Version)
}

// IsUpgradeOf reports whether a is a newer release than o of the same
// add-on. A greater file version wins; on equal file versions the more
// mature status tier wins. Returns an error when the records are not for
// the same add-on id.
func (a *AddOn) IsUpgradeOf(o *AddOn) (bool, error) {
	if !a.SameAddOn(o) {
		return false, fmt.Errorf("different add-ons: %s != %s", a.ID, o.ID)
	}
	if a.FileVersion > o.FileVersion {
		return true, nil
	}
	return a.Status.After(o.Status), nil
}

// MinimumRuntimeVersion returns the minimum platform runtime version the
// add-on requires, or the empty string when it declares none.
func (a *AddOn) MinimumRuntimeVersion() string {
	if a.Dependencies == nil {
		return ""
	}
	return a.Dependencies.RuntimeVersion
}

// DependencyIDs returns the ids of the declared dependencies, in
// declaration order. Empty when none.
func (a *AddOn) DependencyIDs() []string {
	if a.Dependencies == nil {
		return nil
	}
	ids := make([]string, 0, len(a.Dependencies.AddOns))
	for _, dep := range a.Dependencies.AddOns {
		ids = append(ids, dep.ID)
	}
	return ids
}

// DependsOn reports whether a has a direct dependency on the given record,
// with all declared version bounds satisfied by it.
func (a *AddOn) DependsOn(o *AddOn) bool {
	if a.Dependencies == nil {
		return false
	}
	for _, dep := range a.Dependencies.AddOns {
		if dep.ID != o.ID {
			continue
		}
		if dep.NotBeforeFileVersion > NoFileVersionBound && o.FileVersion < dep.NotBeforeFileVersion {
			return false
		}
		if dep.NotFromFileVersion > NoFileVersionBound && o.FileVersion > dep.NotFromFileVersion {
			return false
		}
		if dep.SemVer != "" && !semver.MatchRange(o.Version, dep.SemVer) {
			return false
		}
		return true
	}
	return false
}

// DependsOnAny reports whether a directly depends on any of the given
// records.
func (a *AddOn) DependsOnAny(addons []*AddOn) bool {
	if a.Dependencies == nil || len(a.Dependencies.AddOns) == 0 {
		return false
	}
	for _, o := range addons {
		if a.DependsOn(o) {
			return true
		}
	}
	return false
}

// String renders the identity of the record.
func (a *AddOn) String() string {
	if a.Version == nil {
		return fmt.Sprintf("%s@%d", a.ID, a.FileVersion)
	}
	return fmt.Sprintf("%s@%d (%s)", a.ID, a.FileVersion, a.Version)
}
