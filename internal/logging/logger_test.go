package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"lyricsync/internal/config"
	"lyricsync/internal/logging"
)

func newFileLogger(t *testing.T, format, level string) (*slog.Logger, string) {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "out.log")
	logger, err := logging.New(logging.Options{
		Format:      format,
		Level:       level,
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return logger, logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(content)
}

func TestConsoleLoggerOmitsCallerForInfo(t *testing.T) {
	logger, path := newFileLogger(t, "console", "info")
	logger.Info("message without caller")

	if content := readLog(t, path); strings.Contains(content, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", content)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	logger, path := newFileLogger(t, "console", "debug")
	logger.Info("message with caller")

	if content := readLog(t, path); !strings.Contains(content, "logger_test.go:") {
		t.Fatalf("expected caller information in debug logs, got %q", content)
	}
}

func TestConsoleLoggerPrefixesComponentAndRunID(t *testing.T) {
	logger, path := newFileLogger(t, "console", "info")
	ctx := logging.WithRunID(context.Background(), "1a2b3c4d-5e6f-7081-92a3-b4c5d6e7f809")
	component := logging.NewComponentLogger(logging.WithContext(ctx, logger), "workflow")
	component.Info("aligned", logging.Int("words", 12), logging.String("job", "my song"))

	content := readLog(t, path)
	if !strings.Contains(content, " INFO workflow [1a2b3c4d]: aligned") {
		t.Fatalf("expected component and short run id prefix, got %q", content)
	}
	if !strings.Contains(content, `words=12 job="my song"`) {
		t.Fatalf("expected formatted attributes, got %q", content)
	}
	if strings.Contains(content, "component=") || strings.Contains(content, "run_id=") {
		t.Fatalf("prefix fields should not repeat as attributes: %q", content)
	}
}

func TestJSONLoggerRenamesKeys(t *testing.T) {
	logger, path := newFileLogger(t, "json", "info")
	logger.Warn("careful", logging.String("word", "hello"))

	var record map[string]any
	if err := json.Unmarshal([]byte(readLog(t, path)), &record); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	for _, key := range []string{"ts", "level", "msg", "word"} {
		if _, ok := record[key]; !ok {
			t.Fatalf("expected key %q in %v", key, record)
		}
	}
	if record["level"] != "warn" {
		t.Fatalf("expected lowercase level, got %v", record["level"])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewFromConfigWritesJSONFile(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = t.TempDir()
	cfg.Logging.File = true
	cfg.Logging.Level = "error"

	logger, logPath, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	if filepath.Dir(logPath) != cfg.Paths.LogDir {
		t.Fatalf("log file %q should live under %q", logPath, cfg.Paths.LogDir)
	}
	if matched, _ := filepath.Match(logging.LogFilePattern, filepath.Base(logPath)); !matched {
		t.Fatalf("log file %q does not match %q", logPath, logging.LogFilePattern)
	}
	logger.Error("boom", logging.Error(os.ErrPermission))

	content := readLog(t, logPath)
	if !strings.Contains(content, `"msg":"boom"`) {
		t.Fatalf("expected json record in log file, got %q", content)
	}
}

func TestNewFromConfigWithoutFile(t *testing.T) {
	cfg := config.Default()
	logger, logPath, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	if logger == nil || logPath != "" {
		t.Fatalf("unexpected logger=%v path=%q", logger, logPath)
	}
}

func TestWarnWithContextInjectsDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logging.WarnWithContext(logger, "odd timing", "timeline_anomaly",
		logging.String(logging.FieldImpact, "word may flash early"))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if record[logging.FieldEventType] != "timeline_anomaly" {
		t.Fatalf("event_type = %v", record[logging.FieldEventType])
	}
	if record[logging.FieldErrorHint] == nil {
		t.Fatal("expected default error_hint")
	}
	if record[logging.FieldImpact] != "word may flash early" {
		t.Fatalf("explicit impact should win, got %v", record[logging.FieldImpact])
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("nop logger should not be enabled")
	}
	logging.WarnWithContext(nil, "ignored", "noop")
}

func TestRunIDFromContext(t *testing.T) {
	if _, ok := logging.RunIDFromContext(context.Background()); ok {
		t.Fatal("expected no run id on empty context")
	}
	ctx := logging.WithRunID(context.Background(), "abc")
	if id, ok := logging.RunIDFromContext(ctx); !ok || id != "abc" {
		t.Fatalf("unexpected run id %q %v", id, ok)
	}
}

func TestPruneLogs(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "lyricsync-20200101T000000.log")
	current := filepath.Join(dir, "lyricsync-20200102T000000.log")
	other := filepath.Join(dir, "notes.txt")
	for _, path := range []string{old, current, other} {
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
		past := time.Now().AddDate(0, 0, -90)
		if err := os.Chtimes(path, past, past); err != nil {
			t.Fatalf("chtimes: %v", err)
		}
	}

	if removed := logging.PruneLogs(nil, dir, 30, current); removed != 1 {
		t.Fatalf("expected 1 removal, got %d", removed)
	}
	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Fatalf("expected old log removed, stat err=%v", err)
	}
	for _, path := range []string{current, other} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected %s kept: %v", path, err)
		}
	}
	if removed := logging.PruneLogs(nil, dir, 0, ""); removed != 0 {
		t.Fatalf("retention 0 should disable pruning, removed %d", removed)
	}
}
