package config

import (
	"fmt"
	"strings"

	"github.com/legible-dev/legible/internal/domain/contrast"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateContrast(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateHistory(config)...)
	validationErrors = append(validationErrors, validateWatch(config)...)
	validationErrors = append(validationErrors, validateServer(config)...)

	// Palette entries are deliberately not validated: they are handed to the
	// editor settings as-is, and unknown or malformed entries round-trip intact.

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateContrast(config *Config) []string {
	var validationErrors []string
	if _, err := contrast.ParseLevel(config.Contrast.Level); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"contrast.level must be 'aa' or 'aaa' (got: %s)",
			config.Contrast.Level,
		))
	}
	if _, err := contrast.ParseTransparentPolicy(config.Contrast.TransparentPolicy); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"contrast.transparent_policy must be 'skip' or 'assume:<color>' (got: %s)",
			config.Contrast.TransparentPolicy,
		))
	}
	if config.Contrast.LargeTextPx < 0 {
		validationErrors = append(validationErrors, "contrast.large_text_px must be non-negative")
	}
	if config.Contrast.LargeTextBoldPx < 0 {
		validationErrors = append(validationErrors, "contrast.large_text_bold_px must be non-negative")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "fatal", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, fatal (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "text", "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: text, json, console (got: %s)",
			config.Logging.Format,
		))
	}
	return validationErrors
}

func validateHistory(config *Config) []string {
	if config.History.MaxEntries < 0 {
		return []string{"history.max_entries must be non-negative"}
	}
	return nil
}

func validateWatch(config *Config) []string {
	if config.Watch.DebounceMs < 0 {
		return []string{"watch.debounce_ms must be non-negative"}
	}
	return nil
}

func validateServer(config *Config) []string {
	var validationErrors []string
	if strings.TrimSpace(config.Server.Addr) == "" {
		validationErrors = append(validationErrors, "server.addr cannot be empty")
	}
	if config.Server.MaxBodyBytes <= 0 {
		validationErrors = append(validationErrors, "server.max_body_bytes must be positive")
	}
	return validationErrors
}
