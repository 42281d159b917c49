package config

import (
	"errors"
	"fmt"
)

const maxWorkers = 256

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateCorpus(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateOutput() error {
	if c.Output.Precision < -1 || c.Output.Precision > 17 {
		return fmt.Errorf("output.precision must be between -1 and 17, got %d", c.Output.Precision)
	}
	return nil
}

func (c *Config) validateCorpus() error {
	if c.Corpus.Workers < 1 || c.Corpus.Workers > maxWorkers {
		return fmt.Errorf("corpus.workers must be between 1 and %d, got %d", maxWorkers, c.Corpus.Workers)
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.Enabled && c.Paths.CachePath == "" {
		return errors.New("paths.cache_path must be set when cache.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
