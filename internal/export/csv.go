package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"stylometry/internal/stylo"
)

// DefaultPrecision is the number of decimals written for float features.
const DefaultPrecision = 4

// Format controls how feature values are rendered.
type Format struct {
	// Precision is the decimal count for floats; -1 writes the shortest
	// representation that round-trips.
	Precision int
}

// DefaultFormat returns the standard rendering settings.
func DefaultFormat() Format {
	return Format{Precision: DefaultPrecision}
}

// FeatureNames returns every feature name sorted ascending.
func FeatureNames() []string {
	names := stylo.FieldNames()
	sort.Strings(names)
	return names
}

// Header joins names, sorted ascending, with commas. The caller's slice is
// left untouched.
func Header(names []string) string {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}

// Row renders fs as one CSV record without a line terminator. Values follow
// the order of FeatureNames.
func Row(fs stylo.FeatureSet, format Format) string {
	values := make(map[string]any, 32)
	for _, field := range fs.Fields() {
		values[field.Name] = field.Value
	}

	names := FeatureNames()
	record := make([]string, len(names))
	for i, name := range names {
		record[i] = formatValue(values[name], format)
	}
	return encodeRecord(record)
}

// Table renders the header followed by one row per set, each line ending in
// "\n".
func Table(sets []stylo.FeatureSet, format Format) string {
	var b strings.Builder
	b.WriteString(Header(FeatureNames()))
	b.WriteByte('\n')
	for _, fs := range sets {
		b.WriteString(Row(fs, format))
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseHeader returns the column names of a rendered table's first line.
func ParseHeader(table string) []string {
	line, _, _ := strings.Cut(table, "\n")
	line = strings.TrimRight(line, "\r")
	if line == "" {
		return nil
	}
	return strings.Split(line, ",")
}

func formatValue(value any, format Format) string {
	switch v := value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', format.Precision, 64)
	default:
		return fmt.Sprint(v)
	}
}

// encodeRecord applies CSV quoting so titles containing commas, quotes, or
// newlines stay in one column.
func encodeRecord(record []string) string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(record)
	w.Flush()
	return strings.TrimRight(buf.String(), "\r\n")
}
