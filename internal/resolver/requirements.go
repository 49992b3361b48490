package resolver

import "github.com/addonmodel/cli/internal/addon"

// IssueKind identifies the blocking reason preventing an add-on from
// running. Exactly one issue is reported per resolution.
type IssueKind int

const (
	// IssueCyclic means a dependency cycle was found.
	// Issue.Cycle holds every record participating in the cycle.
	IssueCyclic IssueKind = iota + 1

	// IssueOlderVersion means a different release of the same add-on is
	// already present in the candidate set. Issue.Record holds it.
	IssueOlderVersion

	// IssueMissing means a declared dependency has no record in the
	// candidate set. Issue.MissingID holds the id.
	IssueMissing

	// IssuePackageVersionNotBefore means a dependency's file version is
	// below the declared lower bound. Issue.Record holds the dependency,
	// Issue.Bound the violated bound.
	IssuePackageVersionNotBefore

	// IssuePackageVersionNotFrom means a dependency's file version is
	// above the declared upper bound. Issue.Record holds the dependency,
	// Issue.Bound the violated bound.
	IssuePackageVersionNotFrom

	// IssueVersion means a dependency's semantic version does not match
	// the declared range. Issue.Record holds the dependency, Issue.Range
	// the range expression.
	IssueVersion
)

// String returns a short name for the issue kind.
func (k IssueKind) String() string {
	switch k {
	case IssueCyclic:
		return "cyclic-dependency"
	case IssueOlderVersion:
		return "older-version-present"
	case IssueMissing:
		return "missing-dependency"
	case IssuePackageVersionNotBefore:
		return "package-version-too-old"
	case IssuePackageVersionNotFrom:
		return "package-version-too-new"
	case IssueVersion:
		return "version-mismatch"
	default:
		return "unknown"
	}
}

// Issue describes the first blocking problem found during resolution.
// Which detail fields are set depends on Kind; see the kind constants.
type Issue struct {
	Kind      IssueKind
	Record    *addon.AddOn
	Bound     int
	Range     string
	MissingID string
	Cycle     []*addon.AddOn
}

// RunRequirements is the outcome of resolving one add-on against a
// candidate set: whether it can run, the blocking issue if any, the
// resolved transitive dependencies and the strictest platform runtime
// requirement found along the walk.
//
// It is created fresh per Resolve call, mutated only during that call and
// read-only afterwards.
type RunRequirements struct {
	subject  *addon.AddOn
	runnable bool
	issue    *Issue

	minRuntimeVersion string
	runtimeRequiredBy *addon.AddOn

	deps []*addon.AddOn
}

func newRunRequirements() *RunRequirements {
	return &RunRequirements{runnable: true}
}

// AddOn returns the add-on the resolution was made for.
func (r *RunRequirements) AddOn() *addon.AddOn {
	return r.subject
}

// Runnable reports whether the add-on can run.
func (r *RunRequirements) Runnable() bool {
	return r.runnable
}

// HasIssue reports whether a blocking dependency issue was found.
func (r *RunRequirements) HasIssue() bool {
	return r.issue != nil
}

// Issue returns the blocking issue, or nil when there is none.
func (r *RunRequirements) Issue() *Issue {
	return r.issue
}

// Dependencies returns the resolved transitive dependencies of the add-on,
// ordered so that every record appears after the records it depends on.
// When the issue kind is IssueCyclic the returned records are instead the
// members of the detected cycle; callers must check the issue kind first.
func (r *RunRequirements) Dependencies() []*addon.AddOn {
	return r.deps
}

// RuntimeUpgradeRequired reports whether the add-on, or one of its
// dependencies, needs a newer platform runtime than the one resolved
// against. Use MinimumRuntimeVersion and RuntimeRequiredBy for details.
func (r *RunRequirements) RuntimeUpgradeRequired() bool {
	return r.minRuntimeVersion != ""
}

// MinimumRuntimeVersion returns the strictest platform runtime requirement
// found, or the empty string when the resolved runtime satisfies everything.
func (r *RunRequirements) MinimumRuntimeVersion() string {
	return r.minRuntimeVersion
}

// RuntimeRequiredBy returns the add-on that imposed the minimum runtime
// version, or nil when there is no requirement.
func (r *RunRequirements) RuntimeRequiredBy() *addon.AddOn {
	return r.runtimeRequiredBy
}

func (r *RunRequirements) setIssue(issue *Issue) {
	r.issue = issue
}

// noteRuntimeRequirement records the requirement when it is stricter than
// the one already held. Strictness is decided by plain string order of the
// raw version values, kept for compatibility with existing catalogs.
func (r *RunRequirements) noteRuntimeRequirement(src *addon.AddOn, required string) {
	if r.minRuntimeVersion == "" || required > r.minRuntimeVersion {
		r.minRuntimeVersion = required
		r.runtimeRequiredBy = src
	}
}
