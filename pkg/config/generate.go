package config

import (
	"github.com/arthur-debert/mmv/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

const generatedHeader = `# mmv configuration
# Place this file at $XDG_CONFIG_HOME/mmv/config.toml or pass it with --config.
# Every value can also be set with an MMV_ environment variable,
# e.g. MMV_FORCE=true or MMV_OUTPUT_FORMAT=json.

`

// GenerateConfigContent renders cfg as a config file
func GenerateConfigContent(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrConfig, "failed to render configuration")
	}
	return generatedHeader + string(data), nil
}
