// Package config provides configuration loading for the APM CLI.
package config

// Config is the CLI configuration, merged from the config file,
// environment variables and defaults. Flags override all of it.
type Config struct {
	// Catalog is the default catalog path (file or directory).
	Catalog string `mapstructure:"catalog"`

	// HostVersion is the version of the host application add-ons are
	// checked against. Empty disables the host compatibility filter.
	HostVersion string `mapstructure:"hostVersion"`

	// RuntimeVersion is the platform runtime version used when resolving
	// runtime requirements. Empty means the runtime is unknown.
	RuntimeVersion string `mapstructure:"runtimeVersion"`

	// Log holds logging settings.
	Log LogSettings `mapstructure:"log"`
}

// LogSettings holds logging configuration.
type LogSettings struct {
	// Timestamps toggles timestamps in log output. Nil means default.
	Timestamps *bool `mapstructure:"timestamps"`
}

// WithDefaults returns a copy of the config with defaults applied.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Catalog == "" {
		out.Catalog = "catalog.yaml"
	}
	return &out
}
