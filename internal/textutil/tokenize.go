package textutil

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Tokenizer converts document text into ordered word tokens and sentences.
type Tokenizer interface {
	Words(text string) []string
	Sentences(text string) []string
}

// DefaultTokenizer splits words the way Treebank-style tokenizers do:
// punctuation runes become standalone tokens, runs of hyphens collapse into a
// single "--" token, and contraction clitics split from their stem.
type DefaultTokenizer struct{}

// NewTokenizer returns the default tokenizer.
func NewTokenizer() DefaultTokenizer {
	return DefaultTokenizer{}
}

// tokenPattern is ordered: ellipsis, dash runs, dotted initialisms, words,
// numbers, then any other single non-space rune.
var tokenPattern = regexp.MustCompile(
	`\.{3}` +
		`|-{2,}` +
		`|\p{L}(?:\.\p{L})+\.` +
		`|[\p{L}\p{M}][\p{L}\p{M}\p{N}_]*(?:['’\-][\p{L}\p{M}\p{N}_]+)*` +
		`|\p{N}+(?:[.,:]\p{N}+)*` +
		`|\S`,
)

var cliticSuffixes = []string{"'s", "'re", "'ve", "'ll", "'d", "'m", "’s", "’re", "’ve", "’ll", "’d", "’m"}

// Words returns the word and punctuation tokens of text in order. A period
// directly after a known abbreviation or a capital initial stays attached,
// matching where SplitSentences declines to break.
func (DefaultTokenizer) Words(text string) []string {
	spans := tokenPattern.FindAllStringIndex(text, -1)
	tokens := make([]string, 0, len(spans))
	for i := 0; i < len(spans); i++ {
		match := text[spans[i][0]:spans[i][1]]
		if strings.HasPrefix(match, "--") {
			tokens = append(tokens, "--")
			continue
		}
		if i+1 < len(spans) && spans[i+1][0] == spans[i][1] &&
			text[spans[i+1][0]:spans[i+1][1]] == "." && isAbbreviation(match) {
			tokens = append(tokens, match+".")
			i++
			continue
		}
		tokens = append(tokens, splitClitic(match)...)
	}
	return tokens
}

// Sentences returns the trimmed sentences of text in order.
func (DefaultTokenizer) Sentences(text string) []string {
	return SplitSentences(text)
}

func splitClitic(word string) []string {
	lower := strings.ToLower(word)
	for _, neg := range []string{"n't", "n’t"} {
		if strings.HasSuffix(lower, neg) && len(lower) > len(neg) {
			cut := len(word) - len(neg)
			return []string{word[:cut], word[cut:]}
		}
	}
	for _, suffix := range cliticSuffixes {
		if strings.HasSuffix(lower, suffix) && len(lower) > len(suffix) {
			cut := len(word) - len(suffix)
			return []string{word[:cut], word[cut:]}
		}
	}
	return []string{word}
}

// Paragraphs splits text on blank-line boundaries and discards empty or
// whitespace-only spans.
func Paragraphs(text string) []string {
	parts := strings.Split(text, "\n\n")
	paragraphs := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		paragraphs = append(paragraphs, part)
	}
	return paragraphs
}

// WordCount counts whitespace-delimited substrings.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// CharCount counts runes, not bytes.
func CharCount(s string) int {
	return utf8.RuneCountInString(s)
}

// FoldTokens case-folds every token, returning a new slice.
// A Caser is stateful, so each call builds its own.
func FoldTokens(tokens []string) []string {
	folder := cases.Fold()
	out := make([]string, len(tokens))
	for i, token := range tokens {
		out[i] = folder.String(token)
	}
	return out
}
