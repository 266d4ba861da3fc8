// Package config provides configuration management for the nbcheck CLI.
//
// Configuration is layered with koanf. Precedence (highest to lowest):
// CLI flags > NBCHECK_* environment variables > nbcheck.yaml > defaults.
package config

// Config holds all CLI configuration options.
type Config struct {
	Root         string        `koanf:"root"`
	OutputFormat string        `koanf:"output"`
	Verbose      bool          `koanf:"verbose"`
	Checks       *ChecksConfig `koanf:"checks"`
}

// ChecksConfig controls which checks run and how.
type ChecksConfig struct {
	// Disable lists check IDs to skip.
	Disable []string `koanf:"disable"`

	// Sequential runs checks one at a time instead of concurrently.
	Sequential bool `koanf:"sequential"`
}

// Default configuration values.
const (
	DefaultRoot   = "."
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// DisabledChecks returns the disabled check IDs as a set.
func (c *Config) DisabledChecks() map[string]bool {
	disabled := make(map[string]bool)
	if c.Checks == nil {
		return disabled
	}
	for _, id := range c.Checks.Disable {
		disabled[id] = true
	}
	return disabled
}

// SequentialChecks reports whether checks should run sequentially.
func (c *Config) SequentialChecks() bool {
	return c.Checks != nil && c.Checks.Sequential
}
