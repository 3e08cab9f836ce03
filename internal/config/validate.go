package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateStorage(); err != nil {
		return err
	}
	if err := c.validateRecipes(); err != nil {
		return err
	}
	if err := c.validateDisplay(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateStorage() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("storage.backend must be %q or %q, got %q", BackendJSON, BackendSQLite, c.Storage.Backend)
	}
	if c.Storage.LockTimeoutSeconds < 0 {
		return errors.New("storage.lock_timeout_seconds must be zero or positive")
	}
	if c.Paths.StoreFile == c.Paths.DataDir {
		return errors.New("paths.store_file must name a file, not the data directory")
	}
	return nil
}

func (c *Config) validateRecipes() error {
	if c.Recipes.DefaultServings < 0 || int64(c.Recipes.DefaultServings) > math.MaxUint32 {
		return fmt.Errorf("recipes.default_servings must be between 0 and %d", uint64(math.MaxUint32))
	}
	return nil
}

func (c *Config) validateDisplay() error {
	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("display.color must be one of auto, always, never (got %q)", c.Display.Color)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json (got %q)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error (got %q)", c.Logging.Level)
	}
}
