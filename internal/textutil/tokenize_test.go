package textutil

import (
	"reflect"
	"testing"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple words",
			input: "Hello World",
			want:  []string{"Hello", "World"},
		},
		{
			name:  "punctuation is tokenized",
			input: "Well, I said: stop; now!",
			want:  []string{"Well", ",", "I", "said", ":", "stop", ";", "now", "!"},
		},
		{
			name:  "double quotes kept literal",
			input: `"Yes," she said.`,
			want:  []string{`"`, "Yes", ",", `"`, "she", "said", "."},
		},
		{
			name:  "dash runs collapse",
			input: "wait--no---stop",
			want:  []string{"wait", "--", "no", "--", "stop"},
		},
		{
			name:  "hyphenated word stays whole",
			input: "a well-known fact - truly",
			want:  []string{"a", "well-known", "fact", "-", "truly"},
		},
		{
			name:  "contractions split",
			input: "don't it's we'll",
			want:  []string{"do", "n't", "it", "'s", "we", "'ll"},
		},
		{
			name:  "numbers",
			input: "pi is 3.14, not 1,000",
			want:  []string{"pi", "is", "3.14", ",", "not", "1,000"},
		},
		{
			name:  "ellipsis",
			input: "and then...",
			want:  []string{"and", "then", "..."},
		},
		{
			name:  "unicode letters",
			input: "café résumé",
			want:  []string{"café", "résumé"},
		},
		{
			name:  "abbreviation keeps its period",
			input: "Mr. Smith went home.",
			want:  []string{"Mr.", "Smith", "went", "home", "."},
		},
		{
			name:  "dotted initialism stays whole",
			input: "The U.S. Army, e.g. troops.",
			want:  []string{"The", "U.S.", "Army", ",", "e.g.", "troops", "."},
		},
		{
			name:  "capital initial keeps its period",
			input: "J. Smith",
			want:  []string{"J.", "Smith"},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
	}

	tok := NewTokenizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tok.Words(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Words(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParagraphs(t *testing.T) {
	text := "First para here.\n\n\n\nSecond one\nspans lines.\n\n   \n\nThird."
	got := Paragraphs(text)
	want := []string{"First para here.", "Second one\nspans lines.", "Third."}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Paragraphs() = %q, want %q", got, want)
	}
}

func TestParagraphsAllBlank(t *testing.T) {
	if got := Paragraphs("\n\n  \n\n"); len(got) != 0 {
		t.Fatalf("expected no paragraphs, got %q", got)
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"one", 1},
		{"  two\twords\n", 2},
		{"a, b, c.", 3},
	}
	for _, tt := range tests {
		if got := WordCount(tt.input); got != tt.want {
			t.Errorf("WordCount(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestCharCountCountsRunes(t *testing.T) {
	if got := CharCount("café"); got != 4 {
		t.Fatalf("CharCount = %d, want 4", got)
	}
}

func TestFoldTokens(t *testing.T) {
	got := FoldTokens([]string{"And", "THIS", "Émile"})
	want := []string{"and", "this", "émile"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FoldTokens() = %q, want %q", got, want)
	}
}
