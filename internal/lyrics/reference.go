package lyrics

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lyricsync/internal/align"
)

// Reference is a loaded reference text.
type Reference struct {
	Title  string
	Path   string
	Text   string
	Tokens []align.ReferenceToken
}

// LoadReference reads a reference file. Files ending in .srt or .lrc are
// reduced to their text lines; anything else is taken verbatim.
func LoadReference(path string) (*Reference, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reference: %w", err)
	}
	content := normalizeNewlines(string(data))

	var text string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".srt":
		text = srtText(content)
	case ".lrc":
		text = lrcText(content)
	default:
		text = content
	}

	ref := NewReference(titleFromPath(path), text)
	ref.Path = path
	return ref, nil
}

// NewReference tokenizes text into a Reference.
func NewReference(title, text string) *Reference {
	text = normalizeNewlines(text)
	return &Reference{
		Title:  strings.TrimSpace(title),
		Text:   text,
		Tokens: align.Tokenize(text),
	}
}

func normalizeNewlines(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
