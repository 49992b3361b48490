package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/addonmodel/cli/internal/output"
	"github.com/addonmodel/cli/internal/resolver"
)

// Deps command flags
var (
	depsHostVersionFlag    string
	depsRuntimeVersionFlag string
)

// NewDepsCmd creates the addon deps command.
func NewDepsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deps <id>",
		Short: "List resolved transitive dependencies",
		Long: `Resolve an add-on and list its transitive dependencies.

Records are listed in installation order: every record appears after the
records it depends on. The resolution fails with the same diagnostics as
addon check when a requirement cannot be satisfied.

Arguments:
  id    Id of the add-on to resolve

Examples:
  # List dependencies in installation order
  apm addon deps websocket

  # Machine-readable output
  apm addon deps websocket -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runDeps,
	}

	cmd.Flags().StringVar(&depsHostVersionFlag, "host-version", "",
		"Host application version (default: from config)")
	cmd.Flags().StringVar(&depsRuntimeVersionFlag, "runtime-version", "",
		"Platform runtime version (default: from config)")

	return cmd
}

// runDeps executes the deps command.
func runDeps(cmd *cobra.Command, args []string) error {
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

	hostVersion := resolveFlag(depsHostVersionFlag, GetHostVersion())
	runtimeVersion := resolveFlag(depsRuntimeVersionFlag, GetRuntimeVersion())

	available := cat.LoadableIn(hostVersion, nil)
	res := resolver.New(runtimeVersion).Resolve(target, available)

	if res.HasIssue() {
		issue := res.Issue()
		printValidationError("dependency resolution failed", fmt.Errorf("%s", describeIssue(issue)))
		return &ExitError{
			Code:    ExitNotRunnable,
			Err:     fmt.Errorf("%w: %s", ErrNotRunnable, describeIssue(issue)),
			Printed: true,
		}
	}

	deps := res.Dependencies()

	switch format {
	case output.FormatTable:
		if len(deps) == 0 {
			output.Println(fmt.Sprintf("%s has no dependencies", output.StyleNoun.Render(target.String())))
			return nil
		}
		output.Println(renderRecordTable(deps))
	default:
		report := newCheckReport(res)
		if err := printCheckReport(report, format); err != nil {
			return &ExitError{Code: ExitGeneralError, Err: err}
		}
	}

	return nil
}
