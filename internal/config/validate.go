package config

import (
	"fmt"

	"reel/internal/faults"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTMDB() error {
	if c.TMDB.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/reel/config.toml"
		}
		return fmt.Errorf("%w: tmdb.api_key is required; set TMDB_API_KEY or edit %s (create with 'reel config init')",
			faults.ErrConfiguration, defaultPath)
	}
	if len(c.TMDB.Region) != 2 {
		return fmt.Errorf("%w: tmdb.region must be a 2-letter country code, got %q",
			faults.ErrConfiguration, c.TMDB.Region)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be console or json, got %q",
			faults.ErrConfiguration, c.Logging.Format)
	}
	return nil
}
