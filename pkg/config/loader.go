package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/renum/pkg/errors"
	"github.com/arthur-debert/renum/pkg/paths"
)

const (
	// envPrefix is the prefix for configuration environment variables
	envPrefix = "RENUM_"

	// LocalConfigName is the project-local config file name
	LocalConfigName = ".renum.toml"
)

// Load reads settings from all configuration sources.
func Load() (*Settings, error) {
	return LoadFrom(paths.New())
}

// LoadFrom reads settings using the given Paths for the user config
// file location.
func LoadFrom(p paths.Paths) (*Settings, error) {
	k := koanf.New(".")

	// 1. Load built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load built-in defaults")
	}

	// 2. Load user config if it exists
	userPath := p.ConfigFilePath()
	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", userPath)
		}
	}

	// 3. Load project-local config if it exists
	if _, err := os.Stat(LocalConfigName); err == nil {
		if err := k.Load(file.Provider(LocalConfigName), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", LocalConfigName)
		}
	}

	// 4. Load env vars
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Unmarshal
	var settings Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &settings,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &settings, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	log.Debug().
		Str("order", settings.Order).
		Str("sort_by", settings.SortBy).
		Bool("allow_warnings", settings.AllowWarnings).
		Bool("no_lock", settings.NoLock).
		Str("format", settings.Format).
		Msg("Configuration loaded")

	return &settings, nil
}
