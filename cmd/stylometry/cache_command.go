package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"stylometry/internal/cache"
	"stylometry/internal/logging"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the feature cache",
	}
	cacheCmd.AddCommand(newCacheStatsCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))
	return cacheCmd
}

type cacheStatsJSON struct {
	Path      string `json:"path"`
	Enabled   bool   `json:"enabled"`
	Entries   int    `json:"entries"`
	Authors   int    `json:"authors"`
	SizeBytes int64  `json:"size_bytes"`
}

func newCacheStatsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show cached document counts and database size",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, enabled, err := withCacheStore(ctx, cmd, func(store *cache.Store) (cache.Stats, error) {
				return store.Stats(cmd.Context())
			})
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, cacheStatsJSON{
					Path:      stats.Path,
					Enabled:   enabled,
					Entries:   stats.Entries,
					Authors:   stats.Authors,
					SizeBytes: stats.SizeBytes,
				})
			}

			rows := [][]string{
				{"Path", stats.Path},
				{"Enabled", enabledLabel(enabled)},
				{"Documents", strconv.Itoa(stats.Entries)},
				{"Authors", strconv.Itoa(stats.Authors)},
				{"Size", humanize.Bytes(uint64(stats.SizeBytes))},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Cache", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached feature set",
		RunE: func(cmd *cobra.Command, args []string) error {
			var removed int64
			_, _, err := withCacheStore(ctx, cmd, func(store *cache.Store) (cache.Stats, error) {
				var err error
				removed, err = store.Clear(cmd.Context())
				return cache.Stats{}, err
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d cached feature sets\n", removed)
			return nil
		},
	}
}

// withCacheStore opens the configured cache even when caching is disabled
// for extraction, so stale entries can still be inspected or removed.
func withCacheStore(ctx *commandContext, cmd *cobra.Command, fn func(*cache.Store) (cache.Stats, error)) (cache.Stats, bool, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return cache.Stats{}, false, err
	}
	if cfg.Paths.CachePath == "" {
		return cache.Stats{}, false, errors.New("paths.cache_path is not configured")
	}
	_, logger, err := ctx.runContext(cmd)
	if err != nil {
		return cache.Stats{}, false, err
	}

	store, err := cache.Open(cfg.Paths.CachePath)
	if err != nil {
		return cache.Stats{}, false, fmt.Errorf("open feature cache: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("close feature cache", logging.Error(err))
		}
	}()

	stats, err := fn(store)
	return stats, cfg.Cache.Enabled, err
}
