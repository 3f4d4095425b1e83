package config

import (
	"fmt"
	"strings"

	"github.com/74587/srec-dash/internal/theme"
)

// normalizeConfig fills defaults for values the user left empty and
// canonicalizes enums.
func normalizeConfig(c *Config) {
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = "127.0.0.1:8765"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}

	switch strings.ToLower(string(c.Theme.Base)) {
	case string(theme.BaseImported):
		c.Theme.Base = theme.BaseImported
	default:
		c.Theme.Base = theme.BasePreset
	}
	if c.Theme.Preset == "" {
		c.Theme.Preset = theme.DefaultPresetName
	}
}

// validateConfig checks all config values.
func validateConfig(c *Config) error {
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unknown format %q", c.Logging.Format)
	}

	if c.Server.PreferencePollInterval < 0 {
		return fmt.Errorf("server.preference_poll_interval: must be positive")
	}

	if c.Theme.Base == theme.BaseImported && c.Theme.Imported == nil {
		return fmt.Errorf("theme.base: imported selected but no imported theme given")
	}

	for key, value := range c.Theme.Overrides {
		if key == "" {
			return fmt.Errorf("theme.overrides: empty variable name")
		}
		if strings.HasPrefix(value, "#") {
			if err := theme.ValidateHexColor(value); err != nil {
				return fmt.Errorf("theme.overrides[%s]: %w", key, err)
			}
		}
	}

	return nil
}
