package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"stylometry/internal/cache"
	"stylometry/internal/config"
	"stylometry/internal/corpus"
	"stylometry/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// runContext tags the command's context with a fresh run identifier and
// returns a logger carrying it.
func (c *commandContext) runContext(cmd *cobra.Command) (context.Context, *slog.Logger, error) {
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithRunID(ctx, uuid.NewString())
	return ctx, logging.WithContext(ctx, logger), nil
}

// openCache returns the feature cache, or nil when caching is disabled.
// Callers close a non-nil store.
func (c *commandContext) openCache(cfg *config.Config) (*cache.Store, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	store, err := cache.Open(cfg.Paths.CachePath)
	if err != nil {
		return nil, fmt.Errorf("open feature cache: %w", err)
	}
	return store, nil
}

// withBuilder runs fn with a corpus builder wired from configuration.
// adjust, when non-nil, edits a copy of the loaded config first so flags can
// override file settings for one run.
func (c *commandContext) withBuilder(cmd *cobra.Command, adjust func(*config.Config), fn func(context.Context, *corpus.Builder) error) error {
	loaded, err := c.ensureConfig()
	if err != nil {
		return err
	}
	cfg := *loaded
	if adjust != nil {
		adjust(&cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	ctx, logger, err := c.runContext(cmd)
	if err != nil {
		return err
	}
	store, err := c.openCache(&cfg)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	return fn(ctx, corpus.NewBuilderFromConfig(&cfg, logger, store))
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
