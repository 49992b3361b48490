package compat

import (
	"strconv"
	"strings"

	"github.com/addonmodel/cli/internal/addon"
)

// ReleaseComparator orders two host application release strings.
// It returns a negative value when a orders before b, zero when they are
// the same release and a positive value when a orders after b.
type ReleaseComparator func(a, b string) int

// devBuildPrefix marks development builds of the host application.
// A development build orders after every numbered release.
const devBuildPrefix = "D-"

// CompareReleases is the default ReleaseComparator. Release strings are
// compared component-wise as dotted integers, missing components counting
// as zero. Components that are not integers are compared as plain strings.
func CompareReleases(a, b string) int {
	aDev := strings.HasPrefix(a, devBuildPrefix)
	bDev := strings.HasPrefix(b, devBuildPrefix)
	if aDev || bDev {
		if aDev && bDev {
			return strings.Compare(a, b)
		}
		if aDev {
			return 1
		}
		return -1
	}

	aParts := strings.Split(a, ".")
	bParts := strings.Split(b, ".")
	for i := 0; i < len(aParts) || i < len(bParts); i++ {
		av, bv := "0", "0"
		if i < len(aParts) {
			av = aParts[i]
		}
		if i < len(bParts) {
			bv = bParts[i]
		}

		an, aErr := strconv.Atoi(av)
		bn, bErr := strconv.Atoi(bv)
		if aErr != nil || bErr != nil {
			if c := strings.Compare(av, bv); c != 0 {
				return c
			}
			continue
		}
		if an != bn {
			return an - bn
		}
	}
	return 0
}

// CanLoadIn reports whether the add-on is loadable in the given host
// application version, honoring the record's platform bounds.
//
// When notBeforeVersion is set and the host version orders strictly before
// it the add-on is not loadable. Otherwise, when notFromVersion is set its
// check alone decides the verdict: loadable exactly when the host version
// orders strictly before notFromVersion.
func CanLoadIn(a *addon.AddOn, hostVersion string, cmp ReleaseComparator) bool {
	if cmp == nil {
		cmp = CompareReleases
	}
	if a.NotBeforeVersion != "" && cmp(hostVersion, a.NotBeforeVersion) < 0 {
		return false
	}
	if a.NotFromVersion != "" {
		return cmp(hostVersion, a.NotFromVersion) < 0
	}
	return true
}
