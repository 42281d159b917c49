package corpus_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stylometry/internal/cache"
	"stylometry/internal/corpus"
	"stylometry/internal/export"
	"stylometry/internal/stylo"
	"stylometry/internal/testsupport"
)

const (
	docOne   = "It was the best of times. It was the worst of times, and all went on."
	docTwo   = "Call me Ishmael. Some years ago, never mind how long, I went to sea!"
	docThree = "Happy families are all alike; every unhappy family is unhappy in its own way."
)

func rowsOf(t *testing.T, table string) []string {
	t.Helper()
	if !strings.HasSuffix(table, "\n") {
		t.Fatalf("table must end with newline: %q", table)
	}
	return strings.Split(strings.TrimSuffix(table, "\n"), "\n")
}

func columnIndex(t *testing.T, name string) int {
	t.Helper()
	for i, n := range export.FeatureNames() {
		if n == name {
			return i
		}
	}
	t.Fatalf("unknown column %s", name)
	return -1
}

func TestFromFeatureSetsByAuthorExport(t *testing.T) {
	a1, _ := stylo.Extract(docOne, "A", "a1.txt")
	a2, _ := stylo.Extract(docTwo, "A", "a2.txt")
	b1, _ := stylo.Extract(docThree, "B", "b1.txt")

	c := corpus.NewBuilder().FromFeatureSetsByAuthor(map[string][]stylo.FeatureSet{
		"B": {b1},
		"A": {a1, a2},
	})

	if got := c.Authors(); len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Fatalf("Authors() = %v, want [A B]", got)
	}
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}

	table, err := c.Export("")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	rows := rowsOf(t, table)
	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(rows))
	}
	if rows[0] != export.Header(export.FeatureNames()) {
		t.Fatalf("unexpected header %q", rows[0])
	}

	titleCol := columnIndex(t, "title")
	var titles []string
	for _, row := range rows[1:] {
		titles = append(titles, strings.Split(row, ",")[titleCol])
	}
	if strings.Join(titles, " ") != "a1.txt a2.txt b1.txt" {
		t.Fatalf("rows out of order: %v", titles)
	}

	onlyA, err := c.Export("A")
	if err != nil {
		t.Fatalf("Export(A): %v", err)
	}
	aRows := rowsOf(t, onlyA)
	if len(aRows) != 3 {
		t.Fatalf("expected header + 2 rows for A, got %d", len(aRows))
	}
	if strings.Split(aRows[1], ",")[titleCol] != "a1.txt" || strings.Split(aRows[2], ",")[titleCol] != "a2.txt" {
		t.Fatalf("author A rows out of order:\n%s", onlyA)
	}
}

func TestExportUnknownAuthor(t *testing.T) {
	c := corpus.NewBuilder().FromFeatureSets(nil, "Known")
	_, err := c.Export("Missing")
	if !errors.Is(err, corpus.ErrUnknownAuthor) {
		t.Fatalf("expected ErrUnknownAuthor, got %v", err)
	}
	var aggErr *corpus.AggregationError
	if !errors.As(err, &aggErr) || aggErr.Author != "Missing" {
		t.Fatalf("expected AggregationError for Missing, got %#v", err)
	}

	table, err := c.Export("Known")
	if err != nil {
		t.Fatalf("Export(Known): %v", err)
	}
	if len(rowsOf(t, table)) != 1 {
		t.Fatalf("author without documents should export only the header: %q", table)
	}
}

func TestFromFeatureSetsRelabels(t *testing.T) {
	fs, err := stylo.Extract(docOne, "", "one.txt")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	c := corpus.NewBuilder().FromFeatureSets([]stylo.FeatureSet{fs}, "Dickens")

	docs := c.Documents("Dickens")
	if len(docs) != 1 || docs[0].Author != "Dickens" {
		t.Fatalf("expected document relabelled to Dickens, got %+v", docs)
	}
	if fs.Author != stylo.DefaultAuthor {
		t.Fatal("input feature set must not be mutated")
	}
	if c.Documents("nobody") != nil {
		t.Fatal("unknown author should yield nil documents")
	}
}

func TestFromPathsDefaultAuthor(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithDefaultAuthor("Anon"))
	dir := testsupport.BaseDir(cfg)
	p1 := testsupport.WriteText(t, filepath.Join(dir, "docs", "one.txt"), docOne)
	p2 := testsupport.WriteText(t, filepath.Join(dir, "docs", "two.txt"), docTwo)

	b := corpus.NewBuilderFromConfig(cfg, nil, nil)
	c, err := b.FromPaths(context.Background(), []string{p1, p2}, "")
	if err != nil {
		t.Fatalf("FromPaths: %v", err)
	}
	docs := c.Documents("Anon")
	if len(docs) != 2 || docs[0].Title != "one.txt" || docs[1].Title != "two.txt" {
		t.Fatalf("unexpected documents: %+v", docs)
	}
}

func TestFromGlobUsesParentDirectory(t *testing.T) {
	root := testsupport.WriteCorpus(t, t.TempDir(), map[string]string{
		"authorA/x.txt": docOne,
		"authorA/y.txt": docTwo,
		"authorB/z.txt": docThree,
	})

	c, err := corpus.NewBuilder().FromGlob(context.Background(), filepath.Join(root, "*", "*.txt"))
	if err != nil {
		t.Fatalf("FromGlob: %v", err)
	}
	if got := c.Authors(); len(got) != 2 || got[0] != "authorA" || got[1] != "authorB" {
		t.Fatalf("Authors() = %v", got)
	}
	if len(c.Documents("authorA")) != 2 || len(c.Documents("authorB")) != 1 {
		t.Fatalf("unexpected grouping: A=%d B=%d", len(c.Documents("authorA")), len(c.Documents("authorB")))
	}
	for _, fs := range c.Documents("authorA") {
		if fs.Author != "authorA" {
			t.Fatalf("feature set carries author %q", fs.Author)
		}
	}
}

func TestFromGlobMultiplePatternsAppend(t *testing.T) {
	root := testsupport.WriteCorpus(t, t.TempDir(), map[string]string{
		"authorA/x.txt": docOne,
		"authorA/y.md":  docTwo,
	})

	c, err := corpus.NewBuilder().FromGlob(context.Background(),
		filepath.Join(root, "authorA", "*.txt"),
		filepath.Join(root, "authorA", "*"),
	)
	if err != nil {
		t.Fatalf("FromGlob: %v", err)
	}
	docs := c.Documents("authorA")
	if len(docs) != 3 {
		t.Fatalf("expected x.txt matched twice plus y.md, got %d documents", len(docs))
	}
	if docs[0].Title != "x.txt" || docs[1].Title != "x.txt" || docs[2].Title != "y.md" {
		t.Fatalf("unexpected order: %s %s %s", docs[0].Title, docs[1].Title, docs[2].Title)
	}
}

func TestFromGlobInvalidPattern(t *testing.T) {
	if _, err := corpus.NewBuilder().FromGlob(context.Background(), "[unterminated"); err == nil {
		t.Fatal("expected error for malformed pattern")
	}
}

func TestStrictBuildAbortsOnBadDocument(t *testing.T) {
	dir := t.TempDir()
	good := testsupport.WriteText(t, filepath.Join(dir, "good.txt"), docOne)
	empty := testsupport.WriteText(t, filepath.Join(dir, "empty.txt"), "   \n")

	_, err := corpus.NewBuilder().FromPaths(context.Background(), []string{good, empty}, "A")
	if !errors.Is(err, stylo.ErrInput) {
		t.Fatalf("expected ErrInput, got %v", err)
	}
	if !strings.Contains(err.Error(), empty) {
		t.Fatalf("error should name the failing path: %v", err)
	}

	missing := filepath.Join(dir, "missing.txt")
	_, err = corpus.NewBuilder().FromPaths(context.Background(), []string{missing}, "A")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLenientBuildSkipsBadDocument(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithLenient())
	dir := testsupport.BaseDir(cfg)
	good := testsupport.WriteText(t, filepath.Join(dir, "good.txt"), docOne)
	empty := testsupport.WriteText(t, filepath.Join(dir, "empty.txt"), "")
	other := testsupport.WriteText(t, filepath.Join(dir, "other.txt"), docTwo)

	c, err := corpus.NewBuilderFromConfig(cfg, nil, nil).FromPaths(context.Background(), []string{good, empty, other}, "A")
	if err != nil {
		t.Fatalf("lenient build failed: %v", err)
	}
	docs := c.Documents("A")
	if len(docs) != 2 || docs[0].Title != "good.txt" || docs[1].Title != "other.txt" {
		t.Fatalf("unexpected documents after skip: %+v", docs)
	}
}

func TestWorkersPreserveOrder(t *testing.T) {
	dir := t.TempDir()
	texts := []string{docOne, docTwo, docThree}
	var paths []string
	for i := 0; i < 12; i++ {
		name := filepath.Join(dir, string(rune('a'+i))+".txt")
		paths = append(paths, testsupport.WriteText(t, name, texts[i%len(texts)]))
	}

	sequential, err := corpus.NewBuilder().FromPaths(context.Background(), paths, "A")
	if err != nil {
		t.Fatalf("sequential build: %v", err)
	}
	parallel, err := corpus.NewBuilder(corpus.WithWorkers(4)).FromPaths(context.Background(), paths, "A")
	if err != nil {
		t.Fatalf("parallel build: %v", err)
	}

	want, _ := sequential.Export("")
	got, _ := parallel.Export("")
	if got != want {
		t.Fatalf("parallel export differs from sequential:\n%s\nvs\n%s", got, want)
	}
}

func TestCanceledContext(t *testing.T) {
	path := testsupport.WriteText(t, filepath.Join(t.TempDir(), "a.txt"), docOne)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := corpus.NewBuilder(corpus.WithLenient(true)).FromPaths(ctx, []string{path}, "A")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCacheHitSkipsExtraction(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithCache())
	store := testsupport.MustOpenCache(t, cfg)
	path := testsupport.WriteText(t, filepath.Join(testsupport.BaseDir(cfg), "A", "doc.txt"), docOne)

	b := corpus.NewBuilderFromConfig(cfg, nil, store)
	first, err := b.FromPaths(context.Background(), []string{path}, "A")
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	stats, err := store.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Entries != 1 {
		t.Fatalf("expected 1 cached entry, got %d", stats.Entries)
	}

	key := cache.Key(docOne, "A", "doc.txt", b.Extractor().Signature())
	sentinel := first.Documents("A")[0]
	sentinel.Commas = 999
	if err := store.Put(context.Background(), key, sentinel); err != nil {
		t.Fatalf("Put: %v", err)
	}

	second, err := b.FromPaths(context.Background(), []string{path}, "A")
	if err != nil {
		t.Fatalf("second build: %v", err)
	}
	if got := second.Documents("A")[0].Commas; got != 999 {
		t.Fatalf("expected cached value 999, got %v", got)
	}
}

func TestWriteCSV(t *testing.T) {
	fs, _ := stylo.Extract(docOne, "A", "one.txt")
	c := corpus.NewBuilder().FromFeatureSets([]stylo.FeatureSet{fs}, "A")

	dest := filepath.Join(t.TempDir(), "features.csv")
	if err := os.WriteFile(dest, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}
	table, err := c.WriteCSV(dest, "")
	if err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != table {
		t.Fatalf("file contents differ from returned table")
	}
	if got := export.ParseHeader(string(data)); strings.Join(got, ",") != export.Header(export.FeatureNames()) {
		t.Fatalf("header did not round-trip: %v", got)
	}

	entries, err := os.ReadDir(filepath.Dir(dest))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only features.csv beside the export, found %d entries", len(entries))
	}
}

func TestWriteCSVFailureReturnsTable(t *testing.T) {
	fs, _ := stylo.Extract(docOne, "A", "one.txt")
	c := corpus.NewBuilder().FromFeatureSets([]stylo.FeatureSet{fs}, "A")

	dest := filepath.Join(t.TempDir(), "no-such-dir", "features.csv")
	table, err := c.WriteCSV(dest, "A")
	if !errors.Is(err, corpus.ErrExportIO) {
		t.Fatalf("expected ErrExportIO, got %v", err)
	}
	if want, _ := c.Export("A"); table != want {
		t.Fatal("rendered table should be returned despite write failure")
	}

	if _, err := c.WriteCSV(dest, "B"); !errors.Is(err, corpus.ErrUnknownAuthor) {
		t.Fatalf("expected ErrUnknownAuthor, got %v", err)
	}
}

func TestFromPathsByAuthor(t *testing.T) {
	dir := t.TempDir()
	a := testsupport.WriteText(t, filepath.Join(dir, "a.txt"), docOne)
	b := testsupport.WriteText(t, filepath.Join(dir, "b.txt"), docTwo)
	z := testsupport.WriteText(t, filepath.Join(dir, "z.txt"), docThree)

	c, err := corpus.NewBuilder().FromPathsByAuthor(context.Background(), map[string][]string{
		"Zola":   {z},
		"Austen": {b, a},
	})
	if err != nil {
		t.Fatalf("FromPathsByAuthor: %v", err)
	}
	if got := c.Authors(); len(got) != 2 || got[0] != "Austen" || got[1] != "Zola" {
		t.Fatalf("Authors() = %v", got)
	}
	docs := c.Documents("Austen")
	if len(docs) != 2 || docs[0].Title != "b.txt" || docs[1].Title != "a.txt" {
		t.Fatalf("documents must keep given order: %+v", docs)
	}
	if docs[0].Author != "Austen" || c.Documents("Zola")[0].Author != "Zola" {
		t.Fatal("documents must carry their group's author")
	}
}
