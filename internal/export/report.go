package export

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"stylometry/internal/stylo"
)

const (
	ansiReset = "\x1b[0m"
	ansiBlue  = "\x1b[34m"
)

// ReportOptions controls the human-readable report.
type ReportOptions struct {
	Format   Format
	Colorize bool
	// Language is printed when detection ran.
	Language *stylo.Language
}

type reportLine struct {
	label string
	value any
}

// Report writes a multi-section description of fs for interactive reading.
// It is not meant to be parsed.
func Report(w io.Writer, fs stylo.FeatureSet, opts ReportOptions) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Name:   %s\n", fs.Title)
	fmt.Fprintf(&b, "Author: %s\n", fs.Author)
	if lang := opts.Language; lang != nil {
		reliability := "reliable"
		if !lang.Reliable {
			reliability = "unreliable"
		}
		fmt.Fprintf(&b, "Language: %s (%s, confidence %.2f, %s)\n", lang.Name, lang.Code, lang.Confidence, reliability)
	}

	sections := []struct {
		title string
		lines []reportLine
	}{
		{"Phraseology Analysis", []reportLine{
			{"Lexical diversity", fs.LexicalDiversity},
			{"Mean word length", fs.MeanWordLen},
			{"Mean sentence length", fs.MeanSentenceLen},
			{"STDEV sentence length", fs.StdSentenceLen},
			{"Mean paragraph length", fs.MeanParagraphLen},
			{"Document length", fs.DocumentLen},
		}},
		{"Punctuation Analysis (per 1000 tokens)", []reportLine{
			{"Commas", fs.Commas},
			{"Semicolons", fs.Semicolons},
			{"Quotations", fs.Quotes},
			{"Exclamations", fs.Exclamations},
			{"Colons", fs.Colons},
			{"Hyphens", fs.Dashes},
			{"Double hyphens", fs.MDashes},
		}},
		{"Lexical Usage Analysis (per 1000 tokens)", []reportLine{
			{"and", fs.Ands},
			{"but", fs.Buts},
			{"however", fs.Howevers},
			{"if", fs.Ifs},
			{"that", fs.Thats},
			{"more", fs.Mores},
			{"must", fs.Musts},
			{"might", fs.Mights},
			{"this", fs.This},
			{"very", fs.Verys},
		}},
	}

	for _, section := range sections {
		b.WriteByte('\n')
		for _, line := range sectionHeader(section.title, opts.Colorize) {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteString(renderLines(section.lines, opts.Format))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderLines(lines []reportLine, format Format) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Feature", "Value"})
	for _, line := range lines {
		tw.AppendRow(table.Row{line.label, formatValue(line.value, format)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func sectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	if colorize {
		line = ansiBlue + line + ansiReset
	}
	return []string{line}
}

// ShouldColorize reports whether w is a terminal that can render ANSI color.
func ShouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
