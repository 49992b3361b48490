package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/addonmodel/cli/internal/addon"
	"github.com/addonmodel/cli/internal/compat"
	"github.com/addonmodel/cli/internal/output"
	"github.com/addonmodel/cli/internal/resolver"
)

// Check command flags
var (
	checkHostVersionFlag    string
	checkRuntimeVersionFlag string
)

// NewCheckCmd creates the addon check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <id>",
		Short: "Check whether an add-on can run",
		Long: `Resolve an add-on against the catalog and report whether it can run.

The check walks the add-on's transitive dependencies, verifying that every
declared requirement is satisfiable from the catalog: the dependency exists,
its file version falls inside the declared bounds, its semantic version
matches the declared range, and no dependency cycle is present. When a host
application version is given, records outside their valid host version
window are excluded from the candidate set first.

Arguments:
  id    Id of the add-on to check

Examples:
  # Check an add-on against the default catalog
  apm addon check websocket

  # Check against a specific catalog and host version
  apm addon check websocket -c marketplace.yaml --host-version 2.16.1

  # Check with a platform runtime version, JSON report
  apm addon check websocket --runtime-version 17.0.2 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}

	cmd.Flags().StringVar(&checkHostVersionFlag, "host-version", "",
		"Host application version (default: from config)")
	cmd.Flags().StringVar(&checkRuntimeVersionFlag, "runtime-version", "",
		"Platform runtime version (default: from config)")

	return cmd
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	id := args[0]

	format, err := validateOutputFormat(GetOutputFormat())
	if err != nil {
		return &ExitError{Code: ExitValidationError, Err: err}
	}

	cat, err := loadCatalog(ctx, "")
	if err != nil {
		return &ExitError{Code: ExitCodeFromError(err), Err: err}
	}

	target := cat.Lookup(id)
	if target == nil {
		return &ExitError{
			Code: ExitNotFound,
			Err:  fmt.Errorf("%w: add-on %q not in catalog", ErrNotFound, id),
		}
	}

	hostVersion := resolveFlag(checkHostVersionFlag, GetHostVersion())
	runtimeVersion := resolveFlag(checkRuntimeVersionFlag, GetRuntimeVersion())

	// Report the target's own host window before resolving, so an add-on
	// that cannot even be loaded does not get a misleading dependency report.
	if hostVersion != "" && !compat.CanLoadIn(target, hostVersion, nil) {
		if format == output.FormatTable {
			output.Println(renderNotLoadable(target, hostVersion))
		} else {
			if err := printCheckReport(notLoadableReport(target, hostVersion), format); err != nil {
				return &ExitError{Code: ExitGeneralError, Err: err}
			}
		}
		return &ExitError{
			Code:    ExitNotRunnable,
			Err:     fmt.Errorf("%w: %s not loadable in host version %s", ErrNotRunnable, target, hostVersion),
			Printed: true,
		}
	}

	available := cat.LoadableIn(hostVersion, nil)

	output.Debug("resolving add-on",
		"id", id,
		"host_version", hostVersion,
		"runtime_version", runtimeVersion,
		"candidates", len(available),
	)

	res := resolver.New(runtimeVersion).Resolve(target, available)

	switch format {
	case output.FormatTable:
		output.Println(renderCheckResult(res))
	default:
		if err := printCheckReport(newCheckReport(res), format); err != nil {
			return &ExitError{Code: ExitGeneralError, Err: err}
		}
	}

	if !res.Runnable() {
		return &ExitError{
			Code:    ExitNotRunnable,
			Err:     fmt.Errorf("%w: %s", ErrNotRunnable, target),
			Printed: true,
		}
	}
	return nil
}

// checkReport is the structured form of a resolution, for yaml/json output.
type checkReport struct {
	AddOn    reportRecord   `yaml:"addon" json:"addon"`
	Runnable bool           `yaml:"runnable" json:"runnable"`
	Issue    *reportIssue   `yaml:"issue,omitempty" json:"issue,omitempty"`
	Runtime  *reportRuntime `yaml:"runtimeUpgrade,omitempty" json:"runtimeUpgrade,omitempty"`

	Dependencies []reportRecord `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
}

type reportRecord struct {
	ID          string `yaml:"id" json:"id"`
	FileVersion int    `yaml:"fileVersion" json:"fileVersion"`
	Version     string `yaml:"version,omitempty" json:"version,omitempty"`
	Status      string `yaml:"status" json:"status"`
}

type reportIssue struct {
	Kind      string         `yaml:"kind" json:"kind"`
	Record    *reportRecord  `yaml:"record,omitempty" json:"record,omitempty"`
	Bound     *int           `yaml:"bound,omitempty" json:"bound,omitempty"`
	Range     string         `yaml:"range,omitempty" json:"range,omitempty"`
	MissingID string         `yaml:"missingId,omitempty" json:"missingId,omitempty"`
	Cycle     []reportRecord `yaml:"cycle,omitempty" json:"cycle,omitempty"`
	Message   string         `yaml:"message" json:"message"`
}

type reportRuntime struct {
	MinimumVersion string       `yaml:"minimumVersion" json:"minimumVersion"`
	RequiredBy     reportRecord `yaml:"requiredBy" json:"requiredBy"`
}

func newReportRecord(a *addon.AddOn) reportRecord {
	r := reportRecord{
		ID:          a.ID,
		FileVersion: a.FileVersion,
		Status:      a.Status.String(),
	}
	if a.Version != nil {
		r.Version = a.Version.String()
	}
	return r
}

func newCheckReport(res *resolver.RunRequirements) checkReport {
	report := checkReport{
		AddOn:    newReportRecord(res.AddOn()),
		Runnable: res.Runnable(),
	}

	if res.HasIssue() {
		issue := res.Issue()
		ri := &reportIssue{
			Kind:    issue.Kind.String(),
			Message: describeIssue(issue),
		}
		if issue.Record != nil {
			rec := newReportRecord(issue.Record)
			ri.Record = &rec
		}
		switch issue.Kind {
		case resolver.IssuePackageVersionNotBefore, resolver.IssuePackageVersionNotFrom:
			bound := issue.Bound
			ri.Bound = &bound
		case resolver.IssueVersion:
			ri.Range = issue.Range
		case resolver.IssueMissing:
			ri.MissingID = issue.MissingID
		case resolver.IssueCyclic:
			for _, a := range issue.Cycle {
				ri.Cycle = append(ri.Cycle, newReportRecord(a))
			}
		}
		report.Issue = ri
	}

	if res.RuntimeUpgradeRequired() {
		report.Runtime = &reportRuntime{
			MinimumVersion: res.MinimumRuntimeVersion(),
			RequiredBy:     newReportRecord(res.RuntimeRequiredBy()),
		}
	}

	// The dependency list carries cycle members when the issue is cyclic;
	// only expose it as dependencies for the other outcomes.
	if !res.HasIssue() || res.Issue().Kind != resolver.IssueCyclic {
		for _, a := range res.Dependencies() {
			report.Dependencies = append(report.Dependencies, newReportRecord(a))
		}
	}

	return report
}

func notLoadableReport(target *addon.AddOn, hostVersion string) checkReport {
	return checkReport{
		AddOn:    newReportRecord(target),
		Runnable: false,
		Issue: &reportIssue{
			Kind:    "host-version-mismatch",
			Message: fmt.Sprintf("not loadable in host version %s", hostVersion),
		},
	}
}

func printCheckReport(report checkReport, format output.OutputFormat) error {
	switch format {
	case output.FormatJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling report: %w", err)
		}
		output.Println(string(data))
	default:
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("marshaling report: %w", err)
		}
		output.Print(string(data))
	}
	return nil
}

// describeIssue renders a one-line human description of a blocking issue.
func describeIssue(issue *resolver.Issue) string {
	switch issue.Kind {
	case resolver.IssueCyclic:
		ids := make([]string, 0, len(issue.Cycle))
		for _, a := range issue.Cycle {
			ids = append(ids, a.ID)
		}
		return fmt.Sprintf("dependency cycle: %s", strings.Join(ids, " -> "))
	case resolver.IssueOlderVersion:
		return fmt.Sprintf("a different release of %s is already present (%s)", issue.Record.ID, issue.Record)
	case resolver.IssueMissing:
		return fmt.Sprintf("dependency %s not in catalog", issue.MissingID)
	case resolver.IssuePackageVersionNotBefore:
		return fmt.Sprintf("%s has file version %d, need at least %d", issue.Record.ID, issue.Record.FileVersion, issue.Bound)
	case resolver.IssuePackageVersionNotFrom:
		return fmt.Sprintf("%s has file version %d, limit is %d", issue.Record.ID, issue.Record.FileVersion, issue.Bound)
	case resolver.IssueVersion:
		return fmt.Sprintf("%s version %s does not match required range %q", issue.Record.ID, issue.Record.Version, issue.Range)
	default:
		return issue.Kind.String()
	}
}

// renderCheckResult renders the table form of a resolution.
func renderCheckResult(res *resolver.RunRequirements) string {
	var b strings.Builder

	target := res.AddOn()
	fmt.Fprintf(&b, "%s %s\n", output.StyleNoun.Render(target.String()),
		output.StyleDim.Render("("+target.Status.String()+")"))

	if res.Runnable() {
		b.WriteString(output.StyleRunnable.Render("runnable"))
	} else {
		b.WriteString(output.StyleBlocked.Render("blocked"))
	}
	b.WriteString("\n")

	if res.HasIssue() {
		issue := res.Issue()
		fmt.Fprintf(&b, "%s %s\n",
			output.StyleBlocked.Render(issue.Kind.String()+":"),
			describeIssue(issue))
	}

	if res.RuntimeUpgradeRequired() {
		fmt.Fprintf(&b, "%s\n", output.StyleWarning.Render(fmt.Sprintf(
			"runtime upgrade required: %s needs platform runtime %s",
			res.RuntimeRequiredBy().ID, res.MinimumRuntimeVersion())))
	}

	deps := res.Dependencies()
	if len(deps) > 0 && (!res.HasIssue() || res.Issue().Kind != resolver.IssueCyclic) {
		b.WriteString("\n")
		b.WriteString(renderRecordTable(deps))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderNotLoadable renders the table form for an add-on outside its host
// version window.
func renderNotLoadable(target *addon.AddOn, hostVersion string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", output.StyleNoun.Render(target.String()),
		output.StyleDim.Render("("+target.Status.String()+")"))
	b.WriteString(output.StyleBlocked.Render("blocked"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s not loadable in host version %s",
		output.StyleBlocked.Render("host-version-mismatch:"), hostVersion)
	if target.NotBeforeVersion != "" {
		fmt.Fprintf(&b, " (requires >= %s)", target.NotBeforeVersion)
	}
	if target.NotFromVersion != "" {
		fmt.Fprintf(&b, " (valid until %s)", target.NotFromVersion)
	}
	return b.String()
}

// renderRecordTable renders add-on records as a table, in the given order.
func renderRecordTable(addons []*addon.AddOn) string {
	tbl := output.NewTable("ID", "FILE VERSION", "VERSION", "STATUS")
	for _, a := range addons {
		version := "-"
		if a.Version != nil {
			version = a.Version.String()
		}
		tbl.Row(a.ID, fmt.Sprintf("%d", a.FileVersion), version, a.Status.String())
	}
	return tbl.String()
}
