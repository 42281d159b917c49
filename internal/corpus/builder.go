package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"stylometry/internal/cache"
	"stylometry/internal/config"
	"stylometry/internal/export"
	"stylometry/internal/logging"
	"stylometry/internal/stylo"
	"stylometry/internal/textutil"
)

// Builder constructs Corpus values. It is safe to reuse across builds.
type Builder struct {
	extractor *stylo.Extractor
	store     *cache.Store
	logger    *slog.Logger
	lenient   bool
	workers   int
	format    export.Format
}

// Option customizes a Builder.
type Option func(*Builder)

// WithExtractor sets the extractor used for raw documents.
func WithExtractor(e *stylo.Extractor) Option {
	return func(b *Builder) {
		if e != nil {
			b.extractor = e
		}
	}
}

// WithCache memoizes extraction results in store. A nil store disables caching.
func WithCache(store *cache.Store) Option {
	return func(b *Builder) { b.store = store }
}

// WithLogger attaches a logger for build progress and skipped documents.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) { b.logger = logger }
}

// WithLenient skips documents that fail extraction instead of aborting.
func WithLenient(enabled bool) Option {
	return func(b *Builder) { b.lenient = enabled }
}

// WithWorkers extracts up to n documents concurrently.
func WithWorkers(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.workers = n
		}
	}
}

// WithFormat sets the number formatting used by Export.
func WithFormat(format export.Format) Option {
	return func(b *Builder) { b.format = format }
}

// NewBuilder returns a sequential, strict builder using the default extractor.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		workers: 1,
		format:  export.DefaultFormat(),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.extractor == nil {
		b.extractor = stylo.NewExtractor(stylo.WithLogger(b.logger))
	}
	b.logger = logging.NewComponentLogger(b.logger, "corpus")
	return b
}

// NewBuilderFromConfig wires a builder from loaded configuration. store may
// be nil when caching is disabled.
func NewBuilderFromConfig(cfg *config.Config, logger *slog.Logger, store *cache.Store) *Builder {
	extractor := stylo.NewExtractor(
		stylo.WithDefaultAuthor(cfg.Extraction.DefaultAuthor),
		stylo.WithLegacyStdSentenceLen(cfg.Extraction.LegacyStdSentenceLen),
		stylo.WithFoldCase(cfg.Extraction.FoldCase),
		stylo.WithLogger(logger),
	)
	return NewBuilder(
		WithExtractor(extractor),
		WithCache(store),
		WithLogger(logger),
		WithLenient(cfg.Corpus.Lenient),
		WithWorkers(cfg.Corpus.Workers),
		WithFormat(export.Format{Precision: cfg.Output.Precision}),
	)
}

// Extractor exposes the builder's extractor.
func (b *Builder) Extractor() *stylo.Extractor {
	return b.extractor
}

// source is one document to extract under an author label.
type source struct {
	author string
	path   string
}

type outcome struct {
	fs  stylo.FeatureSet
	err error
}

// FromPaths extracts every path under one author. A blank author uses the
// extractor's default label.
func (b *Builder) FromPaths(ctx context.Context, paths []string, author string) (*Corpus, error) {
	author = b.resolveAuthor(author)
	sources := make([]source, 0, len(paths))
	for _, path := range paths {
		sources = append(sources, source{author: author, path: path})
	}
	c := newCorpus(b.format)
	c.ensureAuthor(author)
	if err := b.collect(ctx, c, sources); err != nil {
		return nil, err
	}
	return c, nil
}

// FromFeatureSets groups precomputed sets under author, relabelling each.
func (b *Builder) FromFeatureSets(sets []stylo.FeatureSet, author string) *Corpus {
	author = b.resolveAuthor(author)
	c := newCorpus(b.format)
	c.ensureAuthor(author)
	for _, fs := range sets {
		c.add(author, fs.WithAuthor(author))
	}
	return c
}

// FromFeatureSetsByAuthor uses groups as given. Authors are ordered by name
// since map iteration carries no order.
func (b *Builder) FromFeatureSetsByAuthor(groups map[string][]stylo.FeatureSet) *Corpus {
	c := newCorpus(b.format)
	for _, author := range sortedKeys(groups) {
		c.ensureAuthor(author)
		for _, fs := range groups[author] {
			c.add(author, fs)
		}
	}
	return c
}

// FromPathsByAuthor extracts each author's documents. Authors are ordered by
// name; documents keep their given order.
func (b *Builder) FromPathsByAuthor(ctx context.Context, groups map[string][]string) (*Corpus, error) {
	c := newCorpus(b.format)
	var sources []source
	for _, author := range sortedKeys(groups) {
		c.ensureAuthor(author)
		for _, path := range groups[author] {
			sources = append(sources, source{author: author, path: path})
		}
	}
	if err := b.collect(ctx, c, sources); err != nil {
		return nil, err
	}
	return c, nil
}

// FromGlob expands each pattern in turn and labels every match with the
// name of its parent directory. Later patterns append to authors created by
// earlier ones; a file matched twice is extracted twice.
func (b *Builder) FromGlob(ctx context.Context, patterns ...string) (*Corpus, error) {
	c := newCorpus(b.format)
	var sources []source
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			b.logger.Debug("glob matched no files", logging.String("pattern", pattern))
		}
		for _, path := range matches {
			info, err := os.Stat(path)
			if err == nil && info.IsDir() {
				continue
			}
			author := filepath.Base(filepath.Dir(path))
			c.ensureAuthor(author)
			sources = append(sources, source{author: author, path: path})
		}
	}
	if err := b.collect(ctx, c, sources); err != nil {
		return nil, err
	}
	return c, nil
}

func (b *Builder) resolveAuthor(author string) string {
	if author = strings.TrimSpace(author); author != "" {
		return author
	}
	return b.extractor.DefaultAuthor()
}

// collect extracts sources and appends them to c in input order.
func (b *Builder) collect(ctx context.Context, c *Corpus, sources []source) error {
	start := time.Now()
	logger := logging.WithContext(ctx, b.logger)

	results := b.extractAll(ctx, sources)
	skipped := 0
	for i, res := range results {
		src := sources[i]
		if res.err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if !b.lenient {
				return fmt.Errorf("extract %s: %w", src.path, res.err)
			}
			skipped++
			logging.WarnWithContext(logger, "skipping document",
				"document_skipped",
				logging.String(logging.FieldDocument, src.path),
				logging.String(logging.FieldAuthor, src.author),
				logging.Error(res.err),
				logging.String(logging.FieldErrorHint, "check the file is readable text with at least one sentence"),
				logging.String(logging.FieldImpact, "document omitted from the corpus"),
			)
			continue
		}
		c.add(src.author, res.fs)
	}

	logger.Info("corpus built",
		logging.Int("authors", len(c.authors)),
		logging.Int("documents", c.Len()),
		logging.Int("skipped", skipped),
		logging.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// extractAll runs extraction across the configured number of workers. The
// result slice is index-aligned with sources regardless of finish order.
func (b *Builder) extractAll(ctx context.Context, sources []source) []outcome {
	results := make([]outcome, len(sources))
	workers := min(b.workers, len(sources))

	if workers <= 1 {
		for i, src := range sources {
			results[i] = b.extractOne(ctx, src)
			if results[i].err != nil && !b.lenient {
				return results[:i+1]
			}
		}
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = b.extractOne(ctx, sources[i])
			}
		}()
	}
	for i := range sources {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

func (b *Builder) extractOne(ctx context.Context, src source) outcome {
	if err := ctx.Err(); err != nil {
		return outcome{err: err}
	}
	if b.store == nil {
		fs, err := b.extractor.ExtractFile(src.path, src.author)
		return outcome{fs: fs, err: err}
	}

	raw, err := os.ReadFile(src.path)
	if err != nil {
		return outcome{err: &stylo.InputError{Source: src.path, Reason: "read", Err: err}}
	}
	text := textutil.Decode(raw)
	title := filepath.Base(src.path)
	key := cache.Key(text, src.author, title, b.extractor.Signature())

	fs, ok, err := b.store.Get(ctx, key)
	switch {
	case err != nil:
		b.logger.Debug("cache lookup failed", logging.String(logging.FieldDocument, src.path), logging.Error(err))
	case ok:
		return outcome{fs: fs}
	}

	fs, err = b.extractor.Extract(text, src.author, title)
	if err != nil {
		return outcome{err: err}
	}
	if err := b.store.Put(ctx, key, fs); err != nil {
		b.logger.Debug("cache store failed", logging.String(logging.FieldDocument, src.path), logging.Error(err))
	}
	return outcome{fs: fs}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
