package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"lyricsync/internal/align"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteTranscript writes words as a bare WhisperX word_segments array.
func WriteTranscript(t testing.TB, path string, words []align.RecognizedWord) string {
	t.Helper()

	if words == nil {
		words = []align.RecognizedWord{}
	}
	data, err := json.Marshal(words)
	if err != nil {
		t.Fatalf("marshal transcript: %v", err)
	}
	return WriteFile(t, path, string(data))
}

// WriteSong writes <name>.txt and <name>.json into dir and returns both paths.
func WriteSong(t testing.TB, dir, name, text string, words []align.RecognizedWord) (string, string) {
	t.Helper()

	ref := WriteFile(t, filepath.Join(dir, name+".txt"), text)
	transcript := WriteTranscript(t, filepath.Join(dir, name+".json"), words)
	return ref, transcript
}
