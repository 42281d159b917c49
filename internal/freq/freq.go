// Package freq counts term occurrences over a token sequence and reports
// per-thousand-token rates.
package freq

import (
	"errors"
	"sort"
)

// ErrEmptyModel is returned by rate queries on a model built from no tokens.
var ErrEmptyModel = errors.New("frequency model has no tokens")

// Model maps each distinct term to its occurrence count. The sum of all
// counts always equals N.
type Model struct {
	counts map[string]int
	total  int
}

// Build counts every token occurrence, duplicates included.
func Build(tokens []string) *Model {
	counts := make(map[string]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	return &Model{counts: counts, total: len(tokens)}
}

// N returns the total number of tokens the model was built from.
func (m *Model) N() int {
	if m == nil {
		return 0
	}
	return m.total
}

// Distinct returns the number of distinct terms.
func (m *Model) Distinct() int {
	if m == nil {
		return 0
	}
	return len(m.counts)
}

// Count returns the occurrences of term, or 0 when it was never seen.
func (m *Model) Count(term string) int {
	if m == nil {
		return 0
	}
	return m.counts[term]
}

// Terms returns the distinct terms in ascending order.
func (m *Model) Terms() []string {
	if m == nil {
		return nil
	}
	terms := make([]string, 0, len(m.counts))
	for term := range m.counts {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// PerThousand returns count(term) * 1000 / N.
func (m *Model) PerThousand(term string) (float64, error) {
	if m.N() == 0 {
		return 0, ErrEmptyModel
	}
	return float64(m.counts[term]) * 1000 / float64(m.total), nil
}
