package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"stylometry/internal/stylo"
)

// Store manages cached feature sets backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Stats summarizes cache contents.
type Stats struct {
	Path      string
	Entries   int
	Authors   int
	SizeBytes int64
}

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

const schema = `CREATE TABLE IF NOT EXISTS features (
    cache_key     TEXT PRIMARY KEY,
    digest        TEXT NOT NULL,
    author        TEXT NOT NULL,
    title         TEXT NOT NULL,
    features_json TEXT NOT NULL,
    created_at    TEXT NOT NULL
)`

// Key derives the cache key for one extraction.
func Key(text, author, title, signature string) string {
	sum := sha256.Sum256([]byte(text))
	meta := sha256.Sum256([]byte(strings.Join([]string{author, title, signature}, "\x00")))
	return hex.EncodeToString(sum[:]) + ":" + hex.EncodeToString(meta[:8])
}

// Open initializes or connects to the cache database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("cache path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init cache schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Get returns the cached FeatureSet for key. The bool is false on a miss.
func (s *Store) Get(ctx context.Context, key string) (stylo.FeatureSet, bool, error) {
	ctx = ensureContext(ctx)
	var payload string
	err := retryOnBusy(ctx, func() error {
		return s.db.QueryRowContext(ctx, `SELECT features_json FROM features WHERE cache_key = ?`, key).Scan(&payload)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return stylo.FeatureSet{}, false, nil
	}
	if err != nil {
		return stylo.FeatureSet{}, false, fmt.Errorf("query cache: %w", err)
	}

	var fs stylo.FeatureSet
	if err := json.Unmarshal([]byte(payload), &fs); err != nil {
		return stylo.FeatureSet{}, false, fmt.Errorf("decode cached features: %w", err)
	}
	return fs, true, nil
}

// Put stores fs under key, replacing any previous entry.
func (s *Store) Put(ctx context.Context, key string, fs stylo.FeatureSet) error {
	ctx = ensureContext(ctx)
	payload, err := json.Marshal(fs)
	if err != nil {
		return fmt.Errorf("encode features: %w", err)
	}
	digest, _, _ := strings.Cut(key, ":")
	err = retryOnBusy(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx,
			`INSERT OR REPLACE INTO features (cache_key, digest, author, title, features_json, created_at)
             VALUES (?, ?, ?, ?, ?, ?)`,
			key, digest, fs.Author, fs.Title, string(payload), time.Now().UTC().Format(time.RFC3339Nano),
		)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("store features: %w", err)
	}
	return nil
}

// Stats reports entry counts and the database file size.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	ctx = ensureContext(ctx)
	stats := Stats{Path: s.path}
	err := retryOnBusy(ctx, func() error {
		return s.db.QueryRowContext(ctx, `SELECT COUNT(*), COUNT(DISTINCT author) FROM features`).Scan(&stats.Entries, &stats.Authors)
	})
	if err != nil {
		return Stats{}, fmt.Errorf("count cache entries: %w", err)
	}
	if info, err := os.Stat(s.path); err == nil {
		stats.SizeBytes = info.Size()
	}
	return stats, nil
}

// Clear removes every cached entry and returns how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	ctx = ensureContext(ctx)
	var res sql.Result
	err := retryOnBusy(ctx, func() error {
		var execErr error
		res, execErr = s.db.ExecContext(ctx, `DELETE FROM features`)
		return execErr
	})
	if err != nil {
		return 0, fmt.Errorf("clear cache: %w", err)
	}
	return res.RowsAffected()
}

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}
