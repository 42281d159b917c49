package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables that override file values when set.
const (
	EnvLogLevel      = "STYLOMETRY_LOG_LEVEL"
	EnvLogFormat     = "STYLOMETRY_LOG_FORMAT"
	EnvDefaultAuthor = "STYLOMETRY_DEFAULT_AUTHOR"
	EnvWorkers       = "STYLOMETRY_WORKERS"
)

func (c *Config) applyEnv() {
	if value, ok := lookupEnv(EnvLogLevel); ok {
		c.Logging.Level = value
	}
	if value, ok := lookupEnv(EnvLogFormat); ok {
		c.Logging.Format = value
	}
	if value, ok := lookupEnv(EnvDefaultAuthor); ok {
		c.Extraction.DefaultAuthor = value
	}
	if value, ok := lookupEnv(EnvWorkers); ok {
		if n, err := strconv.Atoi(value); err == nil {
			c.Corpus.Workers = n
		}
	}
}

func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeExtraction()
	c.normalizeCorpus()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.CachePath) == "" {
		c.Paths.CachePath = defaultCachePath()
	}
	if c.Paths.CachePath, err = expandPath(strings.TrimSpace(c.Paths.CachePath)); err != nil {
		return fmt.Errorf("paths.cache_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeExtraction() {
	c.Extraction.DefaultAuthor = strings.TrimSpace(c.Extraction.DefaultAuthor)
	if c.Extraction.DefaultAuthor == "" {
		c.Extraction.DefaultAuthor = defaultAuthor
	}
}

func (c *Config) normalizeCorpus() {
	if c.Corpus.Workers <= 0 {
		c.Corpus.Workers = defaultWorkers
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
