package services

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

var languageDetector = lingua.NewLanguageDetectorBuilder().
	FromLanguages(
		lingua.English,
		lingua.Russian,
		lingua.French,
		lingua.German,
		lingua.Spanish,
		lingua.Japanese,
		lingua.Chinese,
	).
	WithLowAccuracyMode().
	Build()

// DetectLanguage guesses the language of the post text, "unknown" when the
// detector has no confident answer.
func DetectLanguage(content string) string {
	if language, ok := languageDetector.DetectLanguageOf(content); ok {
		return strings.ToLower(language.IsoCode639_1().String())
	}
	return "unknown"
}
