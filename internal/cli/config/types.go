// Package config provides configuration management for the cfglint CLI.
//
// Configuration comes from four layers, lowest precedence first: built-in
// defaults, a cfglint.yaml file, CFGLINT_-prefixed environment variables,
// and explicitly set CLI flags.
package config

// Default configuration values.
const (
	DefaultRepo = "."
)

// Config is the resolved CLI configuration.
type Config struct {
	// Repo is the configuration repository root to lint.
	Repo string `koanf:"repo"`

	// Plugins selects which lint plugins run; empty means all registered.
	Plugins []string `koanf:"plugins"`

	// Errors maps error kind names to severity actions (error, warning,
	// silent), overriding the defaults plugins declare.
	Errors map[string]string `koanf:"errors"`

	Verbose bool `koanf:"verbose"`
}
