package addon

import "fmt"

// Status is the maturity tier of an add-on release.
//
// The declaration order is the total order used when deciding whether one
// release of an add-on is newer than another: earlier constants are less
// mature than later ones.
type Status int

const (
	// StatusUnknown is the tier for records with no or an unrecognized status.
	StatusUnknown Status = iota

	// StatusExample marks example add-ons not meant for production use.
	StatusExample

	// StatusAlpha marks alpha-quality add-ons.
	StatusAlpha

	// StatusBeta marks beta-quality add-ons.
	StatusBeta

	// StatusWeekly marks add-ons released with weekly builds.
	StatusWeekly

	// StatusRelease marks fully released add-ons.
	StatusRelease
)

var statusNames = [...]string{
	StatusUnknown: "unknown",
	StatusExample: "example",
	StatusAlpha:   "alpha",
	StatusBeta:    "beta",
	StatusWeekly:  "weekly",
	StatusRelease: "release",
}

// String returns the manifest spelling of the status.
func (s Status) String() string {
	if s < StatusUnknown || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// After reports whether s is a more mature tier than o.
func (s Status) After(o Status) bool {
	return s > o
}

// ParseStatus parses the manifest spelling of a status tier.
func ParseStatus(raw string) (Status, error) {
	for s, name := range statusNames {
		if raw == name {
			return Status(s), nil
		}
	}
	return StatusUnknown, fmt.Errorf("unknown add-on status %q", raw)
}
