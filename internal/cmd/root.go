package cmd

import (
	"github.com/spf13/cobra"

	"github.com/addonmodel/cli/internal/config"
	"github.com/addonmodel/cli/internal/output"
)

var (
	// Global flags
	catalogFlag      string
	configFlag       string
	outputFormatFlag string
	verboseFlag      bool
	timestampsFlag   bool

	// Loaded configuration (set during PersistentPreRunE)
	apmConfig *config.Config
)

// NewRootCmd creates the root command for the APM CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "apm",
		Short: "Add-on Platform Model CLI",
		Long: `APM CLI inspects add-on catalogs and resolves add-on compatibility.

It provides commands to:
  - Check whether an add-on can run, and why not
  - List the transitive dependencies of an add-on
  - Validate and compare add-on catalogs`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&catalogFlag, "catalog", "c", "", "Path to the add-on catalog (env: APM_CATALOG)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: APM_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&outputFormatFlag, "output", "o", "table", "Output format: table, yaml, json")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	// Add subcommands
	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(NewAddOnCmd())
	rootCmd.AddCommand(NewCatalogCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	cfg, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Commands that don't need config should still work.
		cfg = (&config.Config{}).WithDefaults()
	}
	apmConfig = cfg

	// Timestamps precedence: flag (if explicitly set) > config > default.
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if apmConfig.Log.Timestamps != nil {
		logCfg.Timestamps = apmConfig.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	if verboseFlag {
		output.Debug("initializing CLI",
			"catalog", GetCatalogPath(),
			"config", configFlag,
			"output", outputFormatFlag,
			"hostVersion", GetHostVersion(),
			"runtimeVersion", GetRuntimeVersion(),
		)
	}

	return nil
}

// GetCatalogPath returns the catalog path, flag taking precedence over
// configuration.
func GetCatalogPath() string {
	if catalogFlag != "" {
		return catalogFlag
	}
	if apmConfig != nil {
		return apmConfig.Catalog
	}
	return ""
}

// GetHostVersion returns the configured host application version.
func GetHostVersion() string {
	if apmConfig != nil {
		return apmConfig.HostVersion
	}
	return ""
}

// GetRuntimeVersion returns the configured platform runtime version.
func GetRuntimeVersion() string {
	if apmConfig != nil {
		return apmConfig.RuntimeVersion
	}
	return ""
}

// GetOutputFormat returns the requested output format.
func GetOutputFormat() string {
	return outputFormatFlag
}

// resolveFlag returns the flag value when set, the fallback otherwise.
func resolveFlag(flagValue, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	return fallback
}
