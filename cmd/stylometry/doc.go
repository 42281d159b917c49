// Command stylometry extracts stylometric feature vectors from text files
// and writes them as a CSV table, one row per document.
package main
