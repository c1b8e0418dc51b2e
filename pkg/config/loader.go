package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/mmv/pkg/errors"
	"github.com/arthur-debert/mmv/pkg/logging"
	"github.com/arthur-debert/mmv/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read as configuration
const EnvPrefix = "MMV_"

// sections whose keys are nested one level down, so that
// MMV_OUTPUT_FORMAT becomes output.format while MMV_DRY_RUN stays dry_run
var sections = []string{"output", "logging"}

// LoadOptions tell Load where to look beyond the defaults
type LoadOptions struct {
	// ConfigPath is an explicit config file; it must exist when set.
	// When empty the user file under the XDG config dir is used if present.
	ConfigPath string

	// Overrides are applied last, keyed by dotted path ("output.format")
	Overrides map[string]interface{}
}

// Load builds the effective configuration
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfig, "failed to load defaults")
	}

	// 2. User config file
	configPath, required := opts.ConfigPath, true
	if configPath == "" {
		configPath, required = paths.New().ConfigFilePath(), false
	}
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfig, "failed to load config from %s", configPath)
		}
		logger.Debug().Str("path", configPath).Msg("loaded config file")
	} else if required {
		return nil, errors.Wrapf(err, errors.ErrConfig, "config file %s not found", configPath)
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfig, "failed to load env vars")
	}

	// 4. Explicit overrides
	for key, value := range opts.Overrides {
		if err := k.Set(key, value); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfig, "failed to set %s", key)
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfig, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Bool("force", cfg.Force).
		Bool("dry_run", cfg.DryRun).
		Bool("preflight", cfg.Preflight).
		Str("format", cfg.Output.Format).
		Msg("configuration loaded")
	return &cfg, nil
}

// envKey maps MMV_OUTPUT_FORMAT to output.format and MMV_DRY_RUN to dry_run
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	for _, section := range sections {
		if strings.HasPrefix(key, section+"_") {
			return section + "." + strings.TrimPrefix(key, section+"_")
		}
	}
	return key
}
