// Package config loads, normalizes, and validates stylometry configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, loads a .env file from the working directory, and applies
// STYLOMETRY_* environment overrides. The Config type centralizes every knob
// the CLI and the corpus builder need: the default author label, extraction
// compatibility switches, output precision, cache location, and logging.
//
// Always obtain settings through this package so downstream code receives
// expanded paths and clear validation errors.
package config
