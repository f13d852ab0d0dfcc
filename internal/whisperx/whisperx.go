package whisperx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"lyricsync/internal/align"
)

// ErrUnsupportedPayload reports JSON that is neither a word array nor a
// WhisperX result object.
var ErrUnsupportedPayload = errors.New("unsupported whisperx payload")

type whisperXWord struct {
	Word  string   `json:"word"`
	Start *float64 `json:"start"`
	End   *float64 `json:"end"`
	Score *float64 `json:"score"`
}

type whisperXSegment struct {
	Text  string         `json:"text"`
	Start float64        `json:"start"`
	End   float64        `json:"end"`
	Words []whisperXWord `json:"words"`
}

type whisperXPayload struct {
	Segments     []whisperXSegment `json:"segments"`
	WordSegments []whisperXWord    `json:"word_segments"`
	Language     string            `json:"language"`
}

// Transcript is the decoded recognizer output.
type Transcript struct {
	Words    []align.RecognizedWord
	Language string
	// Skipped counts records dropped for lacking a start or end time.
	Skipped int
}

// Load reads and decodes a WhisperX JSON file.
func Load(path string) (*Transcript, error) {
	if strings.TrimSpace(path) == "" {
		return nil, os.ErrNotExist
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	transcript, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse whisperx json %s: %w", path, err)
	}
	return transcript, nil
}

// Decode reads r fully and parses it.
func Decode(r io.Reader) (*Transcript, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read whisperx json: %w", err)
	}
	return Parse(data)
}

// Parse decodes a WhisperX JSON document.
func Parse(data []byte) (*Transcript, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrUnsupportedPayload)
	}

	switch trimmed[0] {
	case '[':
		var words []whisperXWord
		if err := json.Unmarshal(trimmed, &words); err != nil {
			return nil, fmt.Errorf("decode word list: %w", err)
		}
		return collect(words, ""), nil
	case '{':
		var payload whisperXPayload
		if err := json.Unmarshal(trimmed, &payload); err != nil {
			return nil, fmt.Errorf("decode result object: %w", err)
		}
		if payload.WordSegments != nil {
			return collect(payload.WordSegments, payload.Language), nil
		}
		if payload.Segments == nil {
			return nil, fmt.Errorf("%w: object has neither segments nor word_segments", ErrUnsupportedPayload)
		}
		var words []whisperXWord
		for _, seg := range payload.Segments {
			words = append(words, seg.Words...)
		}
		return collect(words, payload.Language), nil
	default:
		return nil, fmt.Errorf("%w: document starts with %q", ErrUnsupportedPayload, trimmed[0])
	}
}

func collect(words []whisperXWord, language string) *Transcript {
	t := &Transcript{
		Words:    make([]align.RecognizedWord, 0, len(words)),
		Language: strings.TrimSpace(language),
	}
	for _, w := range words {
		if w.Start == nil || w.End == nil {
			t.Skipped++
			continue
		}
		t.Words = append(t.Words, align.RecognizedWord{
			Word:  w.Word,
			Start: *w.Start,
			End:   *w.End,
			Score: w.Score,
		})
	}
	return t
}
