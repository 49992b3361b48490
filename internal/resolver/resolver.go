// Package resolver decides whether an add-on can be activated given a
// catalog of available add-ons and the platform runtime version.
//
// Resolution walks the declared dependencies depth-first, in declaration
// order, building a dependency graph as it goes. The walk stops at the
// first blocking condition: a conflicting release of the walked add-on, a
// dependency cycle, a missing dependency or a violated version bound.
// Platform runtime requirements do not stop the walk; the strictest one
// seen is accumulated instead.
//
// Each call owns its graph and its accumulator, so concurrent calls over
// immutable catalogs need no locking.
package resolver

import (
	"github.com/addonmodel/cli/internal/addon"
	"github.com/addonmodel/cli/internal/compat"
	"github.com/addonmodel/cli/internal/output"
	"github.com/addonmodel/cli/internal/semver"
)

// Resolver resolves run requirements against a fixed platform runtime
// version.
type Resolver struct {
	runtimeVersion string
}

// New creates a Resolver for the given platform runtime version. An empty
// version means the runtime is unknown: every declared runtime requirement
// will then be reported as unmet.
func New(runtimeVersion string) *Resolver {
	return &Resolver{runtimeVersion: runtimeVersion}
}

// Resolve calculates the requirements to run target given the available
// add-ons. The available set is expected to hold the add-ons loadable in
// the current host version; see compat.CanLoadIn.
func (r *Resolver) Resolve(target *addon.AddOn, available []*addon.AddOn) *RunRequirements {
	req := newRunRequirements()
	g := newDepGraph()

	r.walk(req, g, available, target)

	if !req.HasIssue() {
		req.deps = g.closure(g.addVertex(target))
	}
	return req
}

// frame is one level of the depth-first walk: a node whose dependency list
// is partially processed.
type frame struct {
	node *addon.AddOn
	deps []addon.Dependency
	next int
}

// walk performs the depth-first traversal with an explicit stack, so that
// pathological dependency chains cannot exhaust goroutine stack space.
func (r *Resolver) walk(req *RunRequirements, g *depGraph, available []*addon.AddOn, target *addon.AddOn) {
	if !r.enter(req, g, available, nil, target) {
		return
	}

	stack := []*frame{{node: target, deps: target.Dependencies.AddOns}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		if f.next >= len(f.deps) {
			stack = stack[:len(stack)-1]
			continue
		}
		dep := f.deps[f.next]
		f.next++
		if dep.ID == "" {
			continue
		}

		found := lookup(available, dep.ID)
		if found == nil {
			req.runnable = false
			req.setIssue(&Issue{Kind: IssueMissing, MissingID: dep.ID})
			return
		}
		if dep.NotBeforeFileVersion > addon.NoFileVersionBound && found.FileVersion < dep.NotBeforeFileVersion {
			req.runnable = false
			req.setIssue(&Issue{Kind: IssuePackageVersionNotBefore, Record: found, Bound: dep.NotBeforeFileVersion})
			return
		}
		if dep.NotFromFileVersion > addon.NoFileVersionBound && found.FileVersion > dep.NotFromFileVersion {
			req.runnable = false
			req.setIssue(&Issue{Kind: IssuePackageVersionNotFrom, Record: found, Bound: dep.NotFromFileVersion})
			return
		}
		if dep.SemVer != "" {
			if found.Version == nil || !semver.MatchRange(found.Version, dep.SemVer) {
				req.runnable = false
				req.setIssue(&Issue{Kind: IssueVersion, Record: found, Range: dep.SemVer})
				return
			}
		}

		if !r.enter(req, g, available, f.node, found) {
			if req.HasIssue() {
				return
			}
			continue
		}
		stack = append(stack, &frame{node: found, deps: found.Dependencies.AddOns})
	}
}

// enter performs the per-node checks and reports whether the walk should
// descend into the node's dependency list. It returns false both when the
// node blocks resolution (req then carries the issue) and when the node
// declares no dependencies at all.
func (r *Resolver) enter(req *RunRequirements, g *depGraph, available []*addon.AddOn, parent, node *addon.AddOn) bool {
	// A different release of this add-on in the candidate set always wins
	// over whatever was found so far.
	if present := lookup(available, node.ID); present != nil && !node.SameIdentity(present) {
		req.runnable = false
		req.setIssue(&Issue{Kind: IssueOlderVersion, Record: present})
		output.Debug("add-on not runnable, another release present",
			"addon", node.String(),
			"present", present.String(),
		)
		return false
	}

	if parent == nil {
		req.subject = node
		g.addVertex(node)
	} else if g.addEdge(parent, node) {
		cycle := g.cycleVertices()
		req.deps = cycle
		req.runnable = false
		req.setIssue(&Issue{Kind: IssueCyclic, Cycle: cycle})
		output.Warn("cyclic add-on dependency", "addon", node.String())
		return false
	}

	// No dependency block at all: trivially satisfied, nothing to check.
	if node.Dependencies == nil {
		return false
	}

	if !compat.CanRunOnRuntime(node, r.runtimeVersion) {
		req.noteRuntimeRequirement(node, node.Dependencies.RuntimeVersion)
		// Only the add-on under test itself blocks on a runtime shortfall;
		// for transitive dependencies the requirement is recorded and the
		// walk goes on.
		if parent == nil {
			req.runnable = false
		}
	}

	return true
}

// lookup returns the first add-on with the given id, or nil.
func lookup(available []*addon.AddOn, id string) *addon.AddOn {
	for _, a := range available {
		if a.ID == id {
			return a
		}
	}
	return nil
}
