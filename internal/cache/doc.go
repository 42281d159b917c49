// Package cache memoizes extracted FeatureSets in SQLite so repeated runs
// over a large corpus skip re-tokenizing unchanged documents.
//
// Entries are keyed by the SHA-256 digest of the decoded document text
// together with every input that changes the result: author, title, and the
// extractor's settings signature. A changed byte or setting is a cache miss.
package cache
