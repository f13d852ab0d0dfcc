package whisperx

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseWordArray(t *testing.T) {
	data := `[
  {"word": "Is", "start": 0.5, "end": 0.7, "score": 0.91},
  {"word": "this", "start": 0.7, "end": 0.9},
  {"word": "1975", "score": 0.2},
  {"word": "real", "start": 1.0, "end": 1.3}
]`
	tr, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tr.Words) != 3 {
		t.Fatalf("expected 3 words, got %d", len(tr.Words))
	}
	if tr.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", tr.Skipped)
	}
	if tr.Words[0].Score == nil || *tr.Words[0].Score != 0.91 {
		t.Errorf("expected score to be kept, got %+v", tr.Words[0])
	}
	if tr.Words[1].Score != nil {
		t.Errorf("expected missing score to stay nil")
	}
	if tr.Words[2].Word != "real" || tr.Words[2].Start != 1.0 || tr.Words[2].End != 1.3 {
		t.Errorf("unexpected third word %+v", tr.Words[2])
	}
}

func TestParseSegmentsPayload(t *testing.T) {
	data := `{
  "language": "en",
  "segments": [
    {"text": " Open your eyes", "start": 10.0, "end": 11.5, "words": [
      {"word": "Open", "start": 10.0, "end": 10.3},
      {"word": "your", "start": 10.3, "end": 10.6},
      {"word": "eyes", "start": 10.6, "end": 11.5}
    ]},
    {"text": " look up", "start": 12.0, "end": 13.0, "words": [
      {"word": "look", "start": 12.0, "end": 12.4},
      {"word": "up", "start": 12.4, "end": 13.0}
    ]}
  ]
}`
	tr, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if tr.Language != "en" {
		t.Errorf("Language = %q, want en", tr.Language)
	}
	var got []string
	for _, w := range tr.Words {
		got = append(got, w.Word)
	}
	if strings.Join(got, " ") != "Open your eyes look up" {
		t.Fatalf("words = %v", got)
	}
}

func TestParsePrefersWordSegments(t *testing.T) {
	data := `{"segments": [{"text": "x", "words": [{"word": "x", "start": 0, "end": 1}]}],
  "word_segments": [{"word": "y", "start": 2, "end": 3}]}`
	tr, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tr.Words) != 1 || tr.Words[0].Word != "y" {
		t.Fatalf("expected word_segments to win, got %+v", tr.Words)
	}
}

func TestParseEmptyList(t *testing.T) {
	tr, err := Parse([]byte(" [] "))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(tr.Words) != 0 {
		t.Fatalf("expected no words, got %d", len(tr.Words))
	}
}

func TestParseRejectsUnsupported(t *testing.T) {
	for _, input := range []string{"", "   ", `"words"`, `{"text": "hello"}`} {
		_, err := Parse([]byte(input))
		if !errors.Is(err, ErrUnsupportedPayload) {
			t.Errorf("Parse(%q) error = %v, want ErrUnsupportedPayload", input, err)
		}
	}
	if _, err := Parse([]byte(`[{"word": 3}]`)); err == nil {
		t.Error("expected decode error for malformed word")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	if err := os.WriteFile(path, []byte(`[{"word": "hi", "start": 1, "end": 2}]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	tr, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(tr.Words) != 1 {
		t.Fatalf("expected 1 word, got %d", len(tr.Words))
	}

	if _, err := Load(""); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(\"\") error = %v, want ErrNotExist", err)
	}
	if _, err := Decode(strings.NewReader(`{"word_segments": []}`)); err != nil {
		t.Errorf("Decode: %v", err)
	}
}
