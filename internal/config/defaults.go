package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Default value constants.
const (
	DefaultBaseURL  = "https://start.spring.io"
	DefaultLogLevel = "warn"
	DefaultTheme    = "dark"

	// EnvPrefix prefixes environment overrides, e.g. SPRINGINIT_BASE_URL.
	EnvPrefix = "SPRINGINIT"

	appDir   = "springinit"
	fileName = "config.yaml"
)

// NewDefaultSettings returns Settings with every default applied.
func NewDefaultSettings() *Settings {
	return &Settings{
		BaseURL:  DefaultBaseURL,
		LogLevel: DefaultLogLevel,
		Theme:    DefaultTheme,
	}
}

// DefaultPath returns the config file location under the user config
// directory ($XDG_CONFIG_HOME/springinit/config.yaml on Linux).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "."+appDir, fileName)
	}
	return filepath.Join(dir, appDir, fileName)
}

// setDefaults registers every key with viper. Keys must be known to viper
// for AutomaticEnv to reach them during Unmarshal.
func setDefaults(v *viper.Viper) {
	d := NewDefaultSettings()
	v.SetDefault(KeyBaseURL, d.BaseURL)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyTheme, d.Theme)
	v.SetDefault(KeyNoColor, d.NoColor)
	v.SetDefault(KeyNonInteractive, d.NonInteractive)
	v.SetDefault(KeyTimeout, d.Timeout)
}
