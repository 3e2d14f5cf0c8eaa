package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and drops combining marks, so diacritics
// vanish ("Nestlé" -> "Nestle") while base characters in any script survive.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Normalize canonicalizes text for comparison: diacritics stripped,
// lowercased, every run of Unicode whitespace collapsed to a single space,
// leading/trailing whitespace trimmed. Idempotent and total. Every substring
// test in the classifiers compares Normalize(haystack) against
// Normalize(needle) - never a raw string against a normalized one.
func Normalize(text string) string {
	stripped, _, err := transform.String(stripMarks, text)
	if err != nil {
		stripped = text
	}
	return collapseWhitespace(strings.ToLower(stripped))
}

func collapseWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			inSpace = true
			continue
		}
		if inSpace && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
