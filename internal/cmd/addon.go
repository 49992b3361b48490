package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/addonmodel/cli/internal/catalog"
	"github.com/addonmodel/cli/internal/output"
)

// NewAddOnCmd creates the addon command group.
func NewAddOnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "addon",
		Short: "Add-on operations",
		Long:  `Commands for checking add-on compatibility and dependencies.`,
	}

	cmd.AddCommand(
		NewCheckCmd(),
		NewDepsCmd(),
		NewListCmd(),
	)

	return cmd
}

// loadCatalog loads the catalog from the given path, or from the global
// catalog setting when the path is empty. A spinner is shown on TTYs.
func loadCatalog(ctx context.Context, path string) (*catalog.Catalog, error) {
	if path == "" {
		path = GetCatalogPath()
	}
	if path == "" {
		return nil, fmt.Errorf("%w: no catalog given, use --catalog or APM_CATALOG", ErrNotFound)
	}

	var cat *catalog.Catalog
	err := output.RunWithSpinner(ctx, func() error {
		var err error
		cat, err = catalog.Load(path)
		return err
	}, output.WithTitle(fmt.Sprintf("Loading catalog %s...", path)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return cat, nil
}

// validateOutputFormat parses and validates an output format value.
func validateOutputFormat(raw string) (output.OutputFormat, error) {
	format, ok := output.ParseOutputFormat(raw)
	if !ok {
		return format, fmt.Errorf("%w: invalid output format %q, use one of %v",
			ErrValidation, raw, output.ValidFormats())
	}
	return format, nil
}
