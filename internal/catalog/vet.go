package catalog

import (
	"fmt"
	"path"

	"github.com/addonmodel/cli/internal/addon"
	"github.com/addonmodel/cli/internal/semver"
)

// Problem is one finding from vetting a catalog.
type Problem struct {
	// AddOn is the id of the record the problem concerns.
	AddOn string

	// Message describes the problem.
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.AddOn, p.Message)
}

// Vet checks a catalog for internal consistency: duplicate releases,
// dependencies on ids absent from the catalog, malformed range
// expressions and inverted file-version bounds. Records with problems
// stay in the catalog; the findings are advisory.
func Vet(c *Catalog) []Problem {
	var problems []Problem

	seen := make(map[string][]*addon.AddOn)
	for _, a := range c.AddOns() {
		for _, prev := range seen[a.ID] {
			if prev.SameIdentity(a) {
				problems = append(problems, Problem{
					AddOn:   a.ID,
					Message: fmt.Sprintf("duplicate release %s", a),
				})
			}
		}
		seen[a.ID] = append(seen[a.ID], a)
	}

	for _, a := range c.AddOns() {
		problems = append(problems, vetPackageURL(a)...)

		if a.Dependencies == nil {
			continue
		}
		for _, dep := range a.Dependencies.AddOns {
			if dep.ID == "" {
				problems = append(problems, Problem{
					AddOn:   a.ID,
					Message: "dependency without id",
				})
				continue
			}
			if c.Lookup(dep.ID) == nil {
				problems = append(problems, Problem{
					AddOn:   a.ID,
					Message: fmt.Sprintf("depends on %s, which is not in the catalog", dep.ID),
				})
			}
			if dep.SemVer != "" {
				if _, err := semver.ParseConstraint(dep.SemVer); err != nil {
					problems = append(problems, Problem{
						AddOn:   a.ID,
						Message: fmt.Sprintf("invalid version range %q for dependency %s", dep.SemVer, dep.ID),
					})
				}
			}
			if dep.NotBeforeFileVersion > addon.NoFileVersionBound &&
				dep.NotFromFileVersion > addon.NoFileVersionBound &&
				dep.NotBeforeFileVersion > dep.NotFromFileVersion {
				problems = append(problems, Problem{
					AddOn: a.ID,
					Message: fmt.Sprintf("impossible file-version bounds [%d, %d] for dependency %s",
						dep.NotBeforeFileVersion, dep.NotFromFileVersion, dep.ID),
				})
			}
		}
	}

	return problems
}

// vetPackageURL checks that a record's download URL, when it points at a
// package file, encodes the same identity as the record itself.
func vetPackageURL(a *addon.AddOn) []Problem {
	if a.URL == "" {
		return nil
	}
	name := path.Base(a.URL)
	if !addon.IsPackageFileName(name) {
		return nil
	}

	info, err := addon.ParseFileName(name)
	if err != nil {
		return nil
	}

	var problems []Problem
	if info.ID != a.ID {
		problems = append(problems, Problem{
			AddOn:   a.ID,
			Message: fmt.Sprintf("package file %s names add-on %s", name, info.ID),
		})
	}
	if info.FileVersion != a.FileVersion {
		problems = append(problems, Problem{
			AddOn:   a.ID,
			Message: fmt.Sprintf("package file %s carries file version %d, record says %d", name, info.FileVersion, a.FileVersion),
		})
	}
	if info.Status != a.Status {
		problems = append(problems, Problem{
			AddOn:   a.ID,
			Message: fmt.Sprintf("package file %s carries status %s, record says %s", name, info.Status, a.Status),
		})
	}
	return problems
}
