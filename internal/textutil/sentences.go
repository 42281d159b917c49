package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

var blankLinePattern = regexp.MustCompile(`\n[ \t\r\f\v]*\n`)

// initialismPattern matches dotted initialisms such as "U.S" once the final
// period is removed.
var initialismPattern = regexp.MustCompile(`^\p{L}(?:\.\p{L})+$`)

// abbreviations never end a sentence when followed by a period.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "st": {}, "jr": {}, "sr": {},
	"prof": {}, "rev": {}, "hon": {}, "gen": {}, "col": {}, "capt": {},
	"lt": {}, "sgt": {}, "messrs": {}, "mme": {}, "vs": {}, "viz": {},
	"e.g": {}, "i.e": {}, "cf": {}, "vol": {}, "fig": {}, "ch": {},
	"inc": {}, "ltd": {}, "mt": {}, "ft": {},
}

// SplitSentences segments text into trimmed sentences. Boundaries fall after
// terminal punctuation (plus any closing quotes or brackets) that is followed
// by whitespace, and at blank lines. A single period after a known
// abbreviation or a capital initial, or one followed by a lowercase word, does
// not end a sentence.
func SplitSentences(text string) []string {
	var sentences []string
	for _, block := range blankLinePattern.Split(text, -1) {
		sentences = appendSentences(sentences, []rune(block))
	}
	return sentences
}

func appendSentences(dst []string, runes []rune) []string {
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminator(runes[i]) {
			continue
		}
		end := i + 1
		periodsOnly := runes[i] == '.'
		for end < len(runes) && isTerminator(runes[end]) {
			if runes[end] != '.' {
				periodsOnly = false
			}
			end++
		}
		runLen := end - i
		for end < len(runes) && isCloser(runes[end]) {
			end++
		}
		if end < len(runes) && !unicode.IsSpace(runes[end]) {
			i = end - 1
			continue
		}
		if periodsOnly {
			if runLen == 1 && isAbbreviation(precedingWord(runes[start:i])) {
				i = end - 1
				continue
			}
			if next, ok := nextNonSpace(runes[end:]); ok && unicode.IsLower(next) {
				i = end - 1
				continue
			}
		}
		dst = appendTrimmed(dst, runes[start:end])
		start = end
		i = end - 1
	}
	return appendTrimmed(dst, runes[start:])
}

func appendTrimmed(dst []string, runes []rune) []string {
	sentence := strings.TrimSpace(string(runes))
	if sentence == "" {
		return dst
	}
	return append(dst, sentence)
}

func precedingWord(runes []rune) string {
	start := len(runes)
	for start > 0 && !unicode.IsSpace(runes[start-1]) {
		start--
	}
	return strings.TrimLeft(string(runes[start:]), "\"'([{“‘")
}

func isAbbreviation(word string) bool {
	if word == "" {
		return false
	}
	letters := []rune(word)
	if len(letters) == 1 && unicode.IsUpper(letters[0]) {
		return true
	}
	if _, ok := abbreviations[strings.ToLower(word)]; ok {
		return true
	}
	return initialismPattern.MatchString(word)
}

func nextNonSpace(runes []rune) (rune, bool) {
	for _, r := range runes {
		if !unicode.IsSpace(r) {
			return r, true
		}
	}
	return 0, false
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '}', '”', '’', '»':
		return true
	}
	return false
}
