// Package export renders FeatureSets as CSV rows under a sorted header and as
// a human-readable report.
//
// Header names are sorted ascending and every row lists its values in that
// same order, so header and row columns always correspond. Floats use a fixed
// precision, which makes repeated renderings of one FeatureSet byte-identical.
package export
