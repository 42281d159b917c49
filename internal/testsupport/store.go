package testsupport

import (
	"testing"

	"stylometry/internal/cache"
	"stylometry/internal/config"
)

// MustOpenCache opens the feature cache at the config's cache path and
// registers cleanup.
func MustOpenCache(t testing.TB, cfg *config.Config) *cache.Store {
	t.Helper()

	store, err := cache.Open(cfg.Paths.CachePath)
	if err != nil {
		t.Fatalf("cache.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
