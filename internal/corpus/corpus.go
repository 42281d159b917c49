package corpus

import (
	"fmt"

	"stylometry/internal/export"
	"stylometry/internal/fileutil"
	"stylometry/internal/stylo"
)

// Corpus maps authors to their documents' feature sets.
type Corpus struct {
	authors []string
	docs    map[string][]stylo.FeatureSet
	format  export.Format
}

func newCorpus(format export.Format) *Corpus {
	return &Corpus{docs: make(map[string][]stylo.FeatureSet), format: format}
}

// add appends fs under author, registering the author on first sight.
func (c *Corpus) add(author string, fs stylo.FeatureSet) {
	if _, ok := c.docs[author]; !ok {
		c.authors = append(c.authors, author)
		c.docs[author] = nil
	}
	c.docs[author] = append(c.docs[author], fs)
}

// ensureAuthor registers author even when none of its documents survived.
func (c *Corpus) ensureAuthor(author string) {
	if _, ok := c.docs[author]; !ok {
		c.authors = append(c.authors, author)
		c.docs[author] = []stylo.FeatureSet{}
	}
}

// Authors returns the author labels in insertion order.
func (c *Corpus) Authors() []string {
	return append([]string(nil), c.authors...)
}

// Documents returns a copy of author's feature sets in insertion order, or
// nil when the author is unknown.
func (c *Corpus) Documents(author string) []stylo.FeatureSet {
	docs, ok := c.docs[author]
	if !ok {
		return nil
	}
	return append([]stylo.FeatureSet{}, docs...)
}

// Len reports the total number of documents across all authors.
func (c *Corpus) Len() int {
	total := 0
	for _, docs := range c.docs {
		total += len(docs)
	}
	return total
}

// Export renders the CSV table. An empty author exports every author in
// insertion order; otherwise only that author's rows are emitted.
func (c *Corpus) Export(author string) (string, error) {
	if author == "" {
		var sets []stylo.FeatureSet
		for _, name := range c.authors {
			sets = append(sets, c.docs[name]...)
		}
		return export.Table(sets, c.format), nil
	}
	docs, ok := c.docs[author]
	if !ok {
		return "", &AggregationError{Author: author}
	}
	return export.Table(docs, c.format), nil
}

// WriteCSV renders the table for author and replaces path with it. The
// rendered table is returned even when the write fails.
func (c *Corpus) WriteCSV(path, author string) (string, error) {
	table, err := c.Export(author)
	if err != nil {
		return "", err
	}
	if err := fileutil.WriteFileLocked(path, []byte(table), 0o644); err != nil {
		return table, &ExportIOError{Path: path, Err: err}
	}
	return table, nil
}

func (c *Corpus) String() string {
	return fmt.Sprintf("corpus(%d authors, %d documents)", len(c.authors), c.Len())
}
