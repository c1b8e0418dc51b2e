// Package config handles configuration management for mmv.
//
// Values are layered, later sources winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/mmv/config.toml or --config
//  3. MMV_* environment variables (MMV_FORCE, MMV_OUTPUT_FORMAT, ...)
//  4. command-line flags the user actually set
package config
