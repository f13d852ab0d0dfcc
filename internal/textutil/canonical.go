package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Canonical returns the comparison token for a raw word. Two words match when
// their canonical tokens are equal; an empty token equals every other empty
// token.
//
// Lowercasing runs before symbol removal so that marks produced by case
// mapping are stripped too, which keeps Canonical idempotent.
func Canonical(word string) string {
	if word == "" {
		return ""
	}
	// cases.Caser carries state and must not be shared between goroutines.
	lowered := cases.Lower(language.Und).String(word)
	kept := strings.Map(func(r rune) rune {
		if IsWordRune(r) || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, lowered)
	return strings.TrimSpace(kept)
}

// CanonicalAll maps Canonical over words, preserving order and length.
func CanonicalAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = Canonical(w)
	}
	return out
}

// IsFieldSeparator reports whether r separates words: any Unicode space,
// plus the ASCII file, group, record and unit separators (0x1C-0x1F).
func IsFieldSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Fields splits s around runs of field separators.
func Fields(s string) []string {
	return strings.FieldsFunc(s, IsFieldSeparator)
}

// IsWordRune reports whether r is a word character: any Unicode letter or
// number, or the underscore.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
