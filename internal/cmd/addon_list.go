package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/addonmodel/cli/internal/addon"
	"github.com/addonmodel/cli/internal/output"
)

// List command flags
var (
	listHostVersionFlag string
	listStatusFlag      string
)

// NewListCmd creates the addon list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog add-ons",
		Long: `List the add-on records of the catalog.

With --host-version only records loadable in that host application version
are shown. With --status only records at that status tier or above are
shown (example < alpha < beta < weekly < release).

Examples:
  # List every record in the catalog
  apm addon list

  # List records loadable by host 2.16.1, releases only
  apm addon list --host-version 2.16.1 --status release`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().StringVar(&listHostVersionFlag, "host-version", "",
		"Only records loadable in this host application version")
	cmd.Flags().StringVar(&listStatusFlag, "status", "",
		"Only records at this status tier or above")

	return cmd
}

// runList executes the list command.
func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	format, err := validateOutputFormat(GetOutputFormat())
	if err != nil {
		return &ExitError{Code: ExitValidationError, Err: err}
	}

	var minStatus addon.Status
	filterStatus := listStatusFlag != ""
	if filterStatus {
		minStatus, err = addon.ParseStatus(listStatusFlag)
		if err != nil {
			return &ExitError{
				Code: ExitValidationError,
				Err:  fmt.Errorf("%w: %v", ErrValidation, err),
			}
		}
	}

	cat, err := loadCatalog(ctx, "")
	if err != nil {
		return &ExitError{Code: ExitCodeFromError(err), Err: err}
	}

	hostVersion := resolveFlag(listHostVersionFlag, GetHostVersion())

	records := cat.LoadableIn(hostVersion, nil)
	if filterStatus {
		filtered := make([]*addon.AddOn, 0, len(records))
		for _, a := range records {
			if a.Status == minStatus || a.Status.After(minStatus) {
				filtered = append(filtered, a)
			}
		}
		records = filtered
	}

	switch format {
	case output.FormatTable:
		if len(records) == 0 {
			output.Println("No add-ons match")
			return nil
		}
		output.Println(renderListTable(records))
	default:
		if err := printList(records, format); err != nil {
			return &ExitError{Code: ExitGeneralError, Err: err}
		}
	}

	return nil
}

// renderListTable renders catalog records with name and install state.
func renderListTable(records []*addon.AddOn) string {
	tbl := output.NewTable("ID", "NAME", "FILE VERSION", "VERSION", "STATUS", "STATE")
	for _, a := range records {
		version := "-"
		if a.Version != nil {
			version = a.Version.String()
		}
		state := output.InstallStateStyle(string(a.InstallState)).Render(string(a.InstallState))
		tbl.Row(a.ID, a.Name, fmt.Sprintf("%d", a.FileVersion), version, a.Status.String(), state)
	}
	return tbl.String()
}

func printList(records []*addon.AddOn, format output.OutputFormat) error {
	type listEntry struct {
		ID           string `yaml:"id" json:"id"`
		Name         string `yaml:"name" json:"name"`
		FileVersion  int    `yaml:"fileVersion" json:"fileVersion"`
		Version      string `yaml:"version,omitempty" json:"version,omitempty"`
		Status       string `yaml:"status" json:"status"`
		InstallState string `yaml:"installState" json:"installState"`
	}
	entries := make([]listEntry, 0, len(records))
	for _, a := range records {
		version := ""
		if a.Version != nil {
			version = a.Version.String()
		}
		entries = append(entries, listEntry{
			ID:           a.ID,
			Name:         a.Name,
			FileVersion:  a.FileVersion,
			Version:      version,
			Status:       a.Status.String(),
			InstallState: string(a.InstallState),
		})
	}

	switch format {
	case output.FormatJSON:
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling list: %w", err)
		}
		output.Println(string(data))
	default:
		data, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("marshaling list: %w", err)
		}
		output.Print(string(data))
	}
	return nil
}
