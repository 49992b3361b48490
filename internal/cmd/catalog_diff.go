package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/addonmodel/cli/internal/output"
)

// Diff command flags
var (
	diffNoColorFlag bool
)

// NewCatalogDiffCmd creates the catalog diff command.
func NewCatalogDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <catalog-a> <catalog-b>",
		Short: "Compare two catalogs",
		Long: `Compare two catalog files and show a structural diff.

The comparison is semantic, not textual: key order and formatting changes
are ignored, only added, removed and changed values are reported.

Arguments:
  catalog-a    Path to the first catalog file
  catalog-b    Path to the second catalog file

Examples:
  # Compare yesterday's marketplace snapshot with today's
  apm catalog diff marketplace-old.yaml marketplace.yaml

  # Plain output for scripting
  apm catalog diff old.yaml new.yaml --no-color`,
		Args: cobra.ExactArgs(2),
		RunE: runCatalogDiff,
	}

	cmd.Flags().BoolVar(&diffNoColorFlag, "no-color", false,
		"Disable colored diff output")

	return cmd
}

// runCatalogDiff executes the catalog diff command.
func runCatalogDiff(cmd *cobra.Command, args []string) error {
	aPath, bPath := args[0], args[1]

	aData, err := os.ReadFile(aPath)
	if err != nil {
		return &ExitError{Code: ExitNotFound, Err: fmt.Errorf("reading %s: %w", aPath, err)}
	}
	bData, err := os.ReadFile(bPath)
	if err != nil {
		return &ExitError{Code: ExitNotFound, Err: fmt.Errorf("reading %s: %w", bPath, err)}
	}

	useColor := !diffNoColorFlag && output.IsTTY()
	report, err := output.DiffYAML(aPath, aData, bPath, bData, useColor)
	if err != nil {
		return &ExitError{Code: ExitGeneralError, Err: fmt.Errorf("comparing catalogs: %w", err)}
	}

	if report == "" {
		output.Println("No differences")
		return nil
	}

	output.Print(report)
	return nil
}
