package stylo

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"stylometry/internal/freq"
	"stylometry/internal/logging"
	"stylometry/internal/textutil"
)

// Extractor computes FeatureSets. The zero value is not usable; construct
// one with NewExtractor.
type Extractor struct {
	tokenizer     textutil.Tokenizer
	defaultAuthor string
	legacyStd     bool
	foldCase      bool
	logger        *slog.Logger
}

// Option customizes an Extractor.
type Option func(*Extractor)

// WithTokenizer substitutes the word tokenizer and sentence segmenter.
func WithTokenizer(t textutil.Tokenizer) Option {
	return func(e *Extractor) {
		if t != nil {
			e.tokenizer = t
		}
	}
}

// WithDefaultAuthor sets the label used when a caller passes no author.
func WithDefaultAuthor(author string) Option {
	return func(e *Extractor) {
		if author = strings.TrimSpace(author); author != "" {
			e.defaultAuthor = author
		}
	}
}

// WithLegacyStdSentenceLen reports std_sentence_len as the mean sentence
// length, reproducing historical output. Off by default.
func WithLegacyStdSentenceLen(enabled bool) Option {
	return func(e *Extractor) { e.legacyStd = enabled }
}

// WithFoldCase case-folds tokens before counting, so "And" counts as "and".
func WithFoldCase(enabled bool) Option {
	return func(e *Extractor) { e.foldCase = enabled }
}

// WithLogger attaches a logger for per-document debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) { e.logger = logger }
}

// NewExtractor builds an extractor with the default tokenizer and author.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		tokenizer:     textutil.NewTokenizer(),
		defaultAuthor: DefaultAuthor,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = logging.NewComponentLogger(e.logger, "extractor")
	return e
}

// Signature identifies the settings that change extraction output.
func (e *Extractor) Signature() string {
	return fmt.Sprintf("legacy_std=%t;fold_case=%t", e.legacyStd, e.foldCase)
}

// DefaultAuthor returns the label applied when no author is supplied.
func (e *Extractor) DefaultAuthor() string {
	return e.defaultAuthor
}

// Extract computes the FeatureSet of text using the default extractor.
func Extract(text, author, title string) (FeatureSet, error) {
	return NewExtractor().Extract(text, author, title)
}

// ExtractFile reads path fully, decodes it leniently, and extracts its
// FeatureSet. The title is the file's base name.
func (e *Extractor) ExtractFile(path, author string) (FeatureSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return FeatureSet{}, &InputError{Source: path, Reason: "open", Err: err}
	}
	defer file.Close()

	return e.ExtractReader(file, author, filepath.Base(path))
}

// ExtractReader reads r to completion and extracts its FeatureSet under the
// given title. Invalid UTF-8 is dropped rather than rejected.
func (e *Extractor) ExtractReader(r io.Reader, author, title string) (FeatureSet, error) {
	if strings.TrimSpace(title) == "" {
		title = "unknown"
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return FeatureSet{}, &InputError{Source: title, Reason: "read", Err: err}
	}
	return e.Extract(textutil.Decode(raw), author, title)
}

// Extract computes the FeatureSet of text.
func (e *Extractor) Extract(text, author, title string) (FeatureSet, error) {
	if strings.TrimSpace(text) == "" {
		return FeatureSet{}, &InputError{Source: title, Reason: "empty text"}
	}
	if strings.TrimSpace(author) == "" {
		author = e.defaultAuthor
	}

	tokens := e.tokenizer.Words(text)
	if e.foldCase {
		tokens = textutil.FoldTokens(tokens)
	}
	sentences := e.tokenizer.Sentences(text)
	if len(tokens) == 0 || len(sentences) == 0 {
		return FeatureSet{}, &DegenerateDocumentError{Source: title, Tokens: len(tokens), Sentences: len(sentences)}
	}

	sentenceWords := make([]float64, len(sentences))
	documentLen := 0
	for i, sentence := range sentences {
		documentLen += textutil.CharCount(sentence)
		sentenceWords[i] = float64(textutil.WordCount(sentence))
	}

	paragraphs := textutil.Paragraphs(text)
	paragraphWords := make([]float64, len(paragraphs))
	for i, paragraph := range paragraphs {
		paragraphWords[i] = float64(textutil.WordCount(paragraph))
	}

	model := freq.Build(tokens)
	rates := make(map[string]float64, len(markerTerms))
	for _, term := range markerTerms {
		rate, err := model.PerThousand(term)
		if err != nil {
			return FeatureSet{}, fmt.Errorf("rate of %q in %q: %w", term, title, err)
		}
		rates[term] = rate
	}

	meanSentence := mean(sentenceWords)
	stdSentence := populationStdDev(sentenceWords)
	if e.legacyStd {
		stdSentence = meanSentence
	}

	fs := FeatureSet{
		Author:           author,
		Title:            title,
		LexicalDiversity: float64(model.Distinct()) / float64(model.N()) * 100,
		MeanWordLen:      meanDistinctLen(model.Terms()),
		MeanSentenceLen:  meanSentence,
		StdSentenceLen:   stdSentence,
		MeanParagraphLen: mean(paragraphWords),
		DocumentLen:      documentLen,
		Commas:           rates[","],
		Semicolons:       rates[";"],
		Quotes:           rates["\""],
		Exclamations:     rates["!"],
		Colons:           rates[":"],
		Dashes:           rates["-"],
		MDashes:          rates["--"],
		Ands:             rates["and"],
		Buts:             rates["but"],
		Howevers:         rates["however"],
		Ifs:              rates["if"],
		Thats:            rates["that"],
		Mores:            rates["more"],
		Musts:            rates["must"],
		Mights:           rates["might"],
		This:             rates["this"],
		Verys:            rates["very"],
	}

	e.logger.Debug("document extracted",
		logging.String(logging.FieldDocument, title),
		logging.String(logging.FieldAuthor, author),
		logging.Int("tokens", model.N()),
		logging.Int("distinct_tokens", model.Distinct()),
		logging.Int("sentences", len(sentences)),
		logging.Int("paragraphs", len(paragraphs)),
	)
	return fs, nil
}

// meanDistinctLen averages the rune length of each distinct term. Terms
// arrive sorted so the float sum is reproducible.
func meanDistinctLen(terms []string) float64 {
	if len(terms) == 0 {
		return 0
	}
	total := 0
	for _, term := range terms {
		total += textutil.CharCount(term)
	}
	return float64(total) / float64(len(terms))
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func populationStdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var sq float64
	for _, v := range values {
		d := v - m
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)))
}
