package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/addonmodel/cli/internal/catalog"
	"github.com/addonmodel/cli/internal/output"
)

// NewCatalogVetCmd creates the catalog vet command.
func NewCatalogVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet [path]",
		Short: "Validate a catalog",
		Long: `Validate an add-on catalog without resolving anything.

The check reports duplicate releases, dependencies on ids not present in
the catalog, dependency entries without an id, malformed semantic version
ranges and inverted file version bounds. A purely pass/fail tool with
per-problem feedback.

Arguments:
  path    Path to the catalog file or directory (default: configured catalog)

Examples:
  # Validate the configured catalog
  apm catalog vet

  # Validate a specific file
  apm catalog vet marketplace.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCatalogVet,
	}

	return cmd
}

// runCatalogVet executes the catalog vet command.
func runCatalogVet(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	cat, err := loadCatalog(ctx, path)
	if err != nil {
		return &ExitError{Code: ExitCodeFromError(err), Err: err}
	}

	problems := catalog.Vet(cat)
	if len(problems) > 0 {
		for _, p := range problems {
			output.Println(output.StyleBlocked.Render("problem:") + " " + p.String())
		}
		return &ExitError{
			Code:    ExitValidationError,
			Err:     fmt.Errorf("%w: %d catalog problem(s)", ErrValidation, len(problems)),
			Printed: true,
		}
	}

	output.Println(fmt.Sprintf("Catalog valid (%d add-ons)", cat.Len()))
	return nil
}
