// Package stylo extracts a fixed set of stylometric statistics from a single
// document.
//
// Extraction tokenizes the text, segments it into sentences and paragraphs,
// builds a term-frequency model, and packages lexical, punctuation, and
// structural measurements into an immutable FeatureSet. Every FeatureSet has
// the same fields in the same order, so sets from different documents line
// up as rows of one table.
//
// Degenerate input (no tokens or no sentences) fails with a
// DegenerateDocumentError instead of producing NaN statistics.
package stylo
