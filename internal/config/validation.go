package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// validLogLevels lists the accepted log_level values.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// validThemes lists the accepted theme values.
var validThemes = []string{"dark", "light"}

// Validate checks the settings for correctness. All problems are reported
// together as *ValidationErrors.
func Validate(s *Settings) error {
	var errs []ValidationError

	errs = append(errs, validateBaseURL(s.BaseURL)...)

	if !slices.Contains(validLogLevels, s.LogLevel) {
		errs = append(errs, ValidationError{
			Field:   KeyLogLevel,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
			Value:   s.LogLevel,
			Wrapped: ErrInvalidConfig,
		})
	}

	if !slices.Contains(validThemes, s.Theme) {
		errs = append(errs, ValidationError{
			Field:   KeyTheme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validThemes, ", ")),
			Value:   s.Theme,
			Wrapped: ErrInvalidConfig,
		})
	}

	if s.Timeout < 0 {
		errs = append(errs, ValidationError{
			Field:   KeyTimeout,
			Message: "must not be negative",
			Value:   s.Timeout,
			Wrapped: ErrInvalidConfig,
		})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

// validateBaseURL requires an absolute http(s) URL without query or fragment.
func validateBaseURL(raw string) []ValidationError {
	invalid := func(msg string) []ValidationError {
		return []ValidationError{{Field: KeyBaseURL, Message: msg, Value: raw, Wrapped: ErrInvalidConfig}}
	}

	if raw == "" {
		return invalid("required field is empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return invalid("not a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return invalid("scheme must be http or https")
	}
	if u.Host == "" {
		return invalid("host is required")
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return invalid("must not carry a query or fragment")
	}
	return nil
}
