package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps command flag names to configuration keys.
var flagKeys = map[string]string{
	"base-url":        KeyBaseURL,
	"log-level":       KeyLogLevel,
	"theme":           KeyTheme,
	"no-color":        KeyNoColor,
	"non-interactive": KeyNonInteractive,
	"timeout":         KeyTimeout,
}

// @MX:ANCHOR: [AUTO] Load resolves settings for every command
// @MX:REASON: [AUTO] fan_in=3, called from cli.newDependencies, catalog command, loader tests
// Load resolves Settings with precedence flag > environment > file > default.
// path selects the config file; empty means DefaultPath, where a missing
// file is not an error. flags may be nil; only flags the user changed
// override lower layers.
func Load(path string, flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := bindFlags(v, flags); err != nil {
		return nil, err
	}

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound):
			if explicit {
				return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
			}
		default:
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidYAML, path, err)
		}
	}

	s := &Settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	s.BaseURL = strings.TrimSpace(s.BaseURL)
	s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))

	if err := Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}
	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
