package config

import "time"

// Settings is the resolved runtime configuration.
type Settings struct {
	BaseURL        string        `mapstructure:"base_url"`
	LogLevel       string        `mapstructure:"log_level"`
	Theme          string        `mapstructure:"theme"`
	NoColor        bool          `mapstructure:"no_color"`
	NonInteractive bool          `mapstructure:"non_interactive"`
	Timeout        time.Duration `mapstructure:"timeout"` // Zero means no client timeout
}

// Configuration keys, shared by the YAML file, SPRINGINIT_* environment
// variables and flag bindings.
const (
	KeyBaseURL        = "base_url"
	KeyLogLevel       = "log_level"
	KeyTheme          = "theme"
	KeyNoColor        = "no_color"
	KeyNonInteractive = "non_interactive"
	KeyTimeout        = "timeout"
)
