package stylo

import (
	"github.com/abadojack/whatlanggo"
)

// Language describes the detected natural language of a document.
type Language struct {
	Name       string
	Code       string
	Confidence float64
	Reliable   bool
}

// DetectLanguage guesses the language of text from its trigram profile.
// It is informational only and never part of a FeatureSet.
func DetectLanguage(text string) Language {
	info := whatlanggo.Detect(text)
	return Language{
		Name:       info.Lang.String(),
		Code:       info.Lang.Iso6393(),
		Confidence: info.Confidence,
		Reliable:   info.IsReliable(),
	}
}
