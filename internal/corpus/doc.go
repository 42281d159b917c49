// Package corpus groups per-document feature sets by author and renders
// them as one CSV table.
//
// A Builder carries the shared construction settings (extractor, cache,
// logger, lenient mode, worker count) and exposes one factory per input
// shape: explicit paths, precomputed feature sets, author maps and glob
// patterns. The Corpus it returns is read-only; authors keep their
// insertion order so exports are deterministic.
package corpus
