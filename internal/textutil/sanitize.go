package textutil

import "strings"

// fileNameReplacer replaces filesystem-unsafe characters with safe alternatives.
var fileNameReplacer = strings.NewReplacer(
	"/", "-",
	"\\", "-",
	":", "-",
	"*", "-",
	"?", "",
	"\"", "",
	"<", "",
	">", "",
	"|", "",
)

// SanitizeFileName makes a song title usable as a file name. Path separators,
// colons, and asterisks become dashes; other unsafe characters are dropped and
// whitespace runs collapse to a single space. Returns fallback when nothing
// usable is left.
func SanitizeFileName(name, fallback string) string {
	cleaned := fileNameReplacer.Replace(name)
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	cleaned = strings.Trim(cleaned, ".")
	if cleaned == "" {
		return fallback
	}
	return cleaned
}
