// Package textutil turns raw document text into the token, sentence, and
// paragraph sequences the feature extractor measures.
//
// The primary use cases are:
//   - Lossy UTF-8 decoding of document bytes (invalid sequences dropped)
//   - Word tokenization that keeps punctuation runes as their own tokens
//   - Sentence segmentation with abbreviation and initial awareness
//   - Paragraph splitting on blank-line boundaries
//
// DefaultTokenizer satisfies the Tokenizer interface; callers that need a
// different segmentation strategy can supply their own implementation.
package textutil
