// Package logging assembles the structured slog loggers used across the
// stylometry tools.
//
// It owns the console and JSON handlers, level parsing, and output plumbing,
// and exposes context helpers so extraction code can tag log lines with the
// run identifier, document, and author it is working on. Diagnostics go to
// stderr by default because stdout carries tabular output.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same keys.
package logging
