package lyrics

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"lyricsync/internal/align"
)

// Format selects an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatSRT  Format = "srt"
	FormatLRC  Format = "lrc"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name. An empty name selects JSON.
func ParseFormat(value string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(value))); f {
	case "":
		return FormatJSON, nil
	case "yml":
		return FormatYAML, nil
	case FormatJSON, FormatSRT, FormatLRC, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want json, srt, lrc, or yaml)", value)
	}
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatSRT:
		return ".srt"
	case FormatLRC:
		return ".lrc"
	case FormatYAML:
		return ".yaml"
	default:
		return ".json"
	}
}

// DefaultFileName is the output name used when none is given.
func DefaultFileName(f Format) string {
	return "synced_lyrics" + f.Extension()
}

// TimedLine groups the aligned words of one reference line.
type TimedLine struct {
	Line  int
	Words []align.SyncedWord
	Start float64
	End   float64
}

// Text joins the words of the line with single spaces.
func (l TimedLine) Text() string {
	parts := make([]string, len(l.Words))
	for i, w := range l.Words {
		parts[i] = w.Word
	}
	return strings.Join(parts, " ")
}

// GroupLines pairs tokens with their aligned words and groups them by source
// line. Start is the first word's start and End the last word's end. tokens
// and words must have equal length.
func GroupLines(tokens []align.ReferenceToken, words []align.SyncedWord) []TimedLine {
	var lines []TimedLine
	for i, tok := range tokens {
		if i >= len(words) {
			break
		}
		if len(lines) == 0 || lines[len(lines)-1].Line != tok.Line {
			lines = append(lines, TimedLine{Line: tok.Line, Start: words[i].Start})
		}
		cur := &lines[len(lines)-1]
		cur.Words = append(cur.Words, words[i])
		cur.End = words[i].End
	}
	return lines
}

// EncodeOptions tunes Encode.
type EncodeOptions struct {
	Indent bool
}

// Encode writes words for ref in the given format.
func Encode(w io.Writer, format Format, ref *Reference, words []align.SyncedWord, opts EncodeOptions) error {
	if ref == nil {
		ref = &Reference{}
	}
	if len(words) != len(ref.Tokens) {
		return fmt.Errorf("encode %s: %d aligned words for %d reference words", format, len(words), len(ref.Tokens))
	}
	switch format {
	case FormatJSON, "":
		return writeJSON(w, words, opts.Indent)
	case FormatSRT:
		return writeSRT(w, GroupLines(ref.Tokens, words))
	case FormatLRC:
		return writeLRC(w, ref.Title, GroupLines(ref.Tokens, words))
	case FormatYAML:
		return writeYAML(w, ref.Title, GroupLines(ref.Tokens, words))
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func writeJSON(w io.Writer, words []align.SyncedWord, indent bool) error {
	if words == nil {
		words = []align.SyncedWord{}
	}
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(words)
}

// yamlSheet is the YAML document layout: words nested under their lines.
type yamlSheet struct {
	Title string     `yaml:"title,omitempty"`
	Lines []yamlLine `yaml:"lines"`
}

type yamlLine struct {
	Text  string     `yaml:"text"`
	Start float64    `yaml:"start"`
	End   float64    `yaml:"end"`
	Words []yamlWord `yaml:"words"`
}

type yamlWord struct {
	Word    string  `yaml:"word"`
	Start   float64 `yaml:"start"`
	End     float64 `yaml:"end"`
	Matched bool    `yaml:"matched"`
}

func writeYAML(w io.Writer, title string, lines []TimedLine) error {
	sheet := yamlSheet{Title: title, Lines: make([]yamlLine, 0, len(lines))}
	for _, line := range lines {
		yl := yamlLine{Text: line.Text(), Start: line.Start, End: line.End, Words: make([]yamlWord, len(line.Words))}
		for i, word := range line.Words {
			yl.Words[i] = yamlWord{Word: word.Word, Start: word.Start, End: word.End, Matched: word.Matched}
		}
		sheet.Lines = append(sheet.Lines, yl)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sheet); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
