package config

import (
	"github.com/arthur-debert/mmv/pkg/errors"
)

// Output formats
const (
	FormatAuto = "auto"
	FormatTerm = "term"
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the effective configuration of one run
type Config struct {
	Force     bool          `koanf:"force" toml:"force"`
	DryRun    bool          `koanf:"dry_run" toml:"dry_run"`
	Preflight bool          `koanf:"preflight" toml:"preflight"`
	Output    OutputConfig  `koanf:"output" toml:"output"`
	Logging   LoggingConfig `koanf:"logging" toml:"logging"`
}

// OutputConfig controls how moves are printed
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"`
}

// LoggingConfig controls the log level
type LoggingConfig struct {
	Verbosity int `koanf:"verbosity" toml:"verbosity"`
}

// Validate rejects values no component can act on
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatAuto, FormatTerm, FormatText, FormatJSON:
	default:
		return errors.Newf(errors.ErrConfig, "unknown output format '%s' (want auto, term, text or json)", c.Output.Format).
			WithDetail("format", c.Output.Format)
	}
	if c.Logging.Verbosity < 0 {
		return errors.Newf(errors.ErrConfig, "logging verbosity must not be negative, got %d", c.Logging.Verbosity)
	}
	return nil
}
