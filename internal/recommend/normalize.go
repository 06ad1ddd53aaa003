package recommend

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/french"
)

// Normalize prepares free text for vectorization: lowercase, replace
// every non-alphanumeric character with a space, split on whitespace,
// drop French stopwords, and Snowball-stem every surviving token.
// Accented characters are letters and pass through untouched, so
// "Développeur" tokenizes correctly. Empty input yields an empty string.
//
// Stemming is deliberate: job and skill texts are short, so reducing
// inflected forms ("développement", "développeur") to a common root is
// what makes sparse vocabularies overlap at all.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if _, stop := frenchStopwords[tok]; stop {
			continue
		}
		tokens = append(tokens, french.Stem(tok, false))
	}

	return strings.Join(tokens, " ")
}
