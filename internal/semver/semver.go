// Package semver wraps the semantic version primitives used by the add-on
// resolver. Range matching and version comparison are delegated to
// github.com/Masterminds/semver/v3; this package only pins down the behavior
// for absent versions, which legacy catalog entries are allowed to have.
package semver

import (
	"fmt"

	mm "github.com/Masterminds/semver/v3"
)

// Version is the semantic version of an add-on.
//
// The zero value is not usable; construct values with Parse or MustParse.
// A nil *Version represents a record without a semantic version.
type Version struct {
	v *mm.Version
}

// Constraint is a semantic version range expression.
//
// Examples:
//   - ">=1.2.0 <2.0.0"
//   - "^1.0.0"
//   - "~1.4"
type Constraint struct {
	c *mm.Constraints
}

// Parse parses a semantic version string.
func Parse(raw string) (*Version, error) {
	v, err := mm.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("semver: parse version %q: %w", raw, err)
	}
	return &Version{v: v}, nil
}

// MustParse is like Parse but panics on invalid input. For tests and
// compiled-in defaults only.
func MustParse(raw string) *Version {
	v, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseConstraint parses a range expression.
func ParseConstraint(raw string) (Constraint, error) {
	c, err := mm.NewConstraint(raw)
	if err != nil {
		return Constraint{}, fmt.Errorf("semver: parse constraint %q: %w", raw, err)
	}
	return Constraint{c: c}, nil
}

// MustParseConstraint is like ParseConstraint but panics on invalid input.
func MustParseConstraint(raw string) Constraint {
	c, err := ParseConstraint(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the canonical form of the version, or the empty string for
// a nil version.
func (v *Version) String() string {
	if v == nil || v.v == nil {
		return ""
	}
	return v.v.String()
}

// Equal reports whether v and o denote the same version. Two nil versions
// are equal; a nil version never equals a non-nil one.
func (v *Version) Equal(o *Version) bool {
	if v == nil || v.v == nil {
		return o == nil || o.v == nil
	}
	if o == nil || o.v == nil {
		return false
	}
	return v.v.Equal(o.v)
}

// Compare returns -1, 0 or 1 when a sorts before, equal to or after b.
// A nil version sorts before every non-nil version.
func Compare(a, b *Version) int {
	if a == nil || a.v == nil {
		if b == nil || b.v == nil {
			return 0
		}
		return -1
	}
	if b == nil || b.v == nil {
		return 1
	}
	return a.v.Compare(b.v)
}

// Satisfies reports whether v matches the constraint. A nil version never
// satisfies any constraint.
func Satisfies(v *Version, c Constraint) bool {
	if v == nil || v.v == nil || c.c == nil {
		return false
	}
	return c.c.Check(v.v)
}

// MatchRange reports whether v matches the raw range expression.
// A malformed range matches nothing, a nil version matches nothing.
func MatchRange(v *Version, rawRange string) bool {
	c, err := ParseConstraint(rawRange)
	if err != nil {
		return false
	}
	return Satisfies(v, c)
}
