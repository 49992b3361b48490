package cmd

import (
	"github.com/spf13/cobra"
)

// NewCatalogCmd creates the catalog command group.
func NewCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Catalog operations",
		Long:  `Commands for validating and comparing add-on catalogs.`,
	}

	cmd.AddCommand(
		NewCatalogVetCmd(),
		NewCatalogDiffCmd(),
	)

	return cmd
}
