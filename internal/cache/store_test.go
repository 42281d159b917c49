package cache_test

import (
	"context"
	"testing"

	"stylometry/internal/cache"
	"stylometry/internal/stylo"
	"stylometry/internal/testsupport"
)

func TestPutGetRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithCache())
	store := testsupport.MustOpenCache(t, cfg)
	ctx := context.Background()

	fs, err := stylo.Extract("It was the best of times, it was the worst of times.", "Dickens", "two-cities.txt")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	key := cache.Key("text", fs.Author, fs.Title, "sig")

	if _, ok, err := store.Get(ctx, key); err != nil || ok {
		t.Fatalf("expected miss before Put, ok=%v err=%v", ok, err)
	}
	if err := store.Put(ctx, key, fs); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := store.Get(ctx, key)
	if err != nil || !ok {
		t.Fatalf("expected hit, ok=%v err=%v", ok, err)
	}
	if got != fs {
		t.Fatalf("cached features differ:\n got %+v\nwant %+v", got, fs)
	}
}

func TestKeyVariesWithInputs(t *testing.T) {
	base := cache.Key("text", "a", "t", "sig")
	for name, other := range map[string]string{
		"text":      cache.Key("text!", "a", "t", "sig"),
		"author":    cache.Key("text", "b", "t", "sig"),
		"title":     cache.Key("text", "a", "u", "sig"),
		"signature": cache.Key("text", "a", "t", "legacy"),
	} {
		if other == base {
			t.Errorf("key unchanged when %s differs", name)
		}
	}
	if cache.Key("text", "a", "t", "sig") != base {
		t.Fatal("key is not deterministic")
	}
}

func TestStatsAndClear(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithCache())
	store := testsupport.MustOpenCache(t, cfg)
	ctx := context.Background()

	for i, author := range []string{"austen", "austen", "bronte"} {
		fs := stylo.FeatureSet{Author: author, Title: string(rune('a' + i))}
		if err := store.Put(ctx, cache.Key(fs.Title, author, fs.Title, ""), fs); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Entries != 3 || stats.Authors != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.Path != cfg.Paths.CachePath {
		t.Fatalf("unexpected path %q", stats.Path)
	}

	removed, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if removed != 3 {
		t.Fatalf("removed %d entries, want 3", removed)
	}
	stats, _ = store.Stats(ctx)
	if stats.Entries != 0 {
		t.Fatalf("expected empty cache, got %d", stats.Entries)
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := cache.Open(" "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
