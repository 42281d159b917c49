package export

import (
	"bytes"
	"strings"
	"testing"

	"stylometry/internal/stylo"
)

func TestReportSections(t *testing.T) {
	fs := stylo.FeatureSet{Author: "Dickens", Title: "oliver.txt", MeanSentenceLen: 20.4014, Commas: 12.5}
	lang := &stylo.Language{Name: "English", Code: "eng", Confidence: 0.9, Reliable: true}

	var buf bytes.Buffer
	if err := Report(&buf, fs, ReportOptions{Format: DefaultFormat(), Language: lang}); err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Name:   oliver.txt",
		"Author: Dickens",
		"Language: English (eng, confidence 0.90, reliable)",
		"== Phraseology Analysis ==",
		"== Punctuation Analysis (per 1000 tokens) ==",
		"== Lexical Usage Analysis (per 1000 tokens) ==",
		"Mean sentence length",
		"20.4014",
		"12.5000",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("expected no ANSI codes without colorize")
	}
}

func TestReportColorize(t *testing.T) {
	var buf bytes.Buffer
	if err := Report(&buf, stylo.FeatureSet{}, ReportOptions{Format: DefaultFormat(), Colorize: true}); err != nil {
		t.Fatalf("Report returned error: %v", err)
	}
	if !strings.Contains(buf.String(), ansiBlue+"== Phraseology Analysis ==") {
		t.Fatalf("expected colorized header:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "Language:") {
		t.Fatal("language line printed without detection")
	}
}

func TestShouldColorizeNonFile(t *testing.T) {
	if ShouldColorize(&bytes.Buffer{}) {
		t.Fatal("buffers are never terminals")
	}
}
