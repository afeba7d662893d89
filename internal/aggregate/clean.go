package aggregate

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CleanTitle normalizes a page title for grouping.
// The title is lowercased, every rune that is not a letter, number,
// underscore, whitespace or hyphen becomes a space, and whitespace runs
// collapse to a single space with the ends trimmed.
//
//	CleanTitle("Hello, World!!") == "hello world"
func CleanTitle(s string) string {
	// cases.Caser keeps state between calls and must not be shared.
	lowered := cases.Lower(language.Und).String(s)

	mapped := strings.Map(func(r rune) rune {
		if keepRune(r) {
			return r
		}
		return ' '
	}, lowered)

	return strings.Join(strings.Fields(mapped), " ")
}

func keepRune(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.IsNumber(r) ||
		unicode.IsSpace(r) ||
		r == '_' ||
		r == '-'
}
