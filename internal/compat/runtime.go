// Package compat implements the version compatibility checks the resolver
// relies on: platform runtime version comparison and host release bounds.
package compat

import (
	"strconv"
	"strings"

	"github.com/addonmodel/cli/internal/addon"
)

// runtimeVersionSeparators are the characters that may separate the numeric
// components of a platform runtime version string.
const runtimeVersionSeparators = "._- "

// RuntimeVersionValue encodes a runtime version string as an integer for
// comparison. Up to two numeric components are taken, encoded as
// major*100 + minor*10. Components that do not parse as integers are
// skipped, so a corrupt version string degrades to a lower value instead
// of failing.
func RuntimeVersionValue(version string) int {
	fields := strings.FieldsFunc(version, func(r rune) bool {
		return strings.ContainsRune(runtimeVersionSeparators, r)
	})

	parts := make([]int, 0, 2)
	for _, field := range fields {
		if len(parts) == 2 {
			break
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		parts = append(parts, n)
	}

	value := 0
	if len(parts) >= 1 {
		value = parts[0] * 100
	}
	if len(parts) >= 2 {
		value += parts[1] * 10
	}
	return value
}

// MeetsRuntimeVersion reports whether the actual runtime version satisfies
// the required minimum. An empty requirement is always satisfied; an empty
// actual version satisfies no requirement.
func MeetsRuntimeVersion(actual, required string) bool {
	if required == "" {
		return true
	}
	if actual == "" {
		return false
	}
	return RuntimeVersionValue(actual) >= RuntimeVersionValue(required)
}

// CanRunOnRuntime reports whether the add-on can run on the given platform
// runtime version. A record without a dependency block declares no
// requirement and can always run.
func CanRunOnRuntime(a *addon.AddOn, runtimeVersion string) bool {
	if a.Dependencies == nil {
		return true
	}
	return MeetsRuntimeVersion(runtimeVersion, a.Dependencies.RuntimeVersion)
}
