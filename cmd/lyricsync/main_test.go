package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAlignCommandWritesOutputAndReusesCache(t *testing.T) {
	env := setupCLITestEnv(t)
	ref, transcript := writeHelloSong(t, filepath.Join(env.baseDir, "in"), "song")

	out, _, err := runCLI(t, []string{"align", ref, transcript}, env.configPath)
	if err != nil {
		t.Fatalf("align: %v", err)
	}
	requireContains(t, out, "Total words: 3 (matched 2, interpolated 1")
	target := filepath.Join(env.outputDir, "synced_lyrics.json")
	requireContains(t, out, "Synced lyrics saved to "+target)
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected output at %s: %v", target, err)
	}

	out, _, err = runCLI(t, []string{"align", ref, transcript, "--table"}, env.configPath)
	if err != nil {
		t.Fatalf("second align: %v", err)
	}
	requireContains(t, out, "Result reused from cache")
	requireContains(t, out, "1.750")
	requireContains(t, out, "Matched")
}

func TestAlignCommandFormatsAndFlags(t *testing.T) {
	env := setupCLITestEnv(t)
	ref, transcript := writeHelloSong(t, env.baseDir, "song")
	target := filepath.Join(env.baseDir, "custom.lrc")

	out, _, err := runCLI(t, []string{"align", ref, transcript, "-o", target, "--format", "lrc", "--no-cache"}, env.configPath)
	if err != nil {
		t.Fatalf("align: %v", err)
	}
	requireContains(t, out, "Synced lyrics saved to "+target)
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read lrc: %v", err)
	}
	requireContains(t, string(data), "[00:01.00]<00:01.00>hello")
	if _, err := os.Stat(filepath.Join(env.cacheDir, "alignments.db")); err == nil {
		t.Fatal("--no-cache must not create the cache database")
	}

	if _, _, err := runCLI(t, []string{"align", ref, transcript, "--format", "vtt"}, env.configPath); err == nil {
		t.Fatal("expected unsupported format error")
	}
	if _, _, err := runCLI(t, []string{"align", ref}, env.configPath); err == nil {
		t.Fatal("expected argument count error")
	}
}

func TestBatchCommandReportsFailures(t *testing.T) {
	env := setupCLITestEnv(t)
	in := filepath.Join(env.baseDir, "in")
	writeHelloSong(t, in, "one")
	writeHelloSong(t, in, "two")
	if err := os.WriteFile(filepath.Join(in, "three.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(in, "three.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLI(t, []string{"batch", in, "--format", "srt"}, env.configPath)
	if err == nil || err.Error() != "1 of 3 songs failed" {
		t.Fatalf("expected one failure, got %v", err)
	}
	requireContains(t, out, "Aligned 2 of 3 songs")
	for _, name := range []string{"one.synced.srt", "two.synced.srt"} {
		if _, err := os.Stat(filepath.Join(env.outputDir, name)); err != nil {
			t.Fatalf("expected %s: %v", name, err)
		}
	}
}

func TestBatchCommandEmptyDirectory(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, []string{"batch", env.baseDir}, env.configPath)
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	requireContains(t, out, "No lyrics with matching transcripts")
}

func TestCacheStatsAndClear(t *testing.T) {
	env := setupCLITestEnv(t)
	ref, transcript := writeHelloSong(t, env.baseDir, "song")
	if _, _, err := runCLI(t, []string{"align", ref, transcript}, env.configPath); err != nil {
		t.Fatalf("align: %v", err)
	}

	out, _, err := runCLI(t, []string{"cache", "stats"}, env.configPath)
	if err != nil {
		t.Fatalf("cache stats: %v", err)
	}
	requireContains(t, out, "Entries")
	requireContains(t, out, filepath.Join(env.cacheDir, "alignments.db"))

	out, _, err = runCLI(t, []string{"cache", "clear"}, env.configPath)
	if err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	requireContains(t, out, "Cleared 1 cached alignments")
}

func TestDoctorCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, []string{"doctor"}, env.configPath)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	requireContains(t, out, "Output directory")
	requireContains(t, out, "All checks passed")
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, "Config path: "+env.configPath)

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected refusal to overwrite existing config")
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, target)
	if err != nil {
		t.Fatalf("validate sample: %v", err)
	}
	requireContains(t, out, "Configuration valid")
}

func TestConfigValidateRejectsBadValues(t *testing.T) {
	env := setupCLITestEnv(t)
	bad := filepath.Join(env.baseDir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[output]\nformat = \"vtt\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err := runCLI(t, []string{"config", "validate"}, bad)
	if err == nil {
		t.Fatal("expected validation error")
	}
	requireContains(t, err.Error(), "output.format")
}

func TestAlignCommandFromClipboard(t *testing.T) {
	env := setupCLITestEnv(t)
	_, transcript := writeHelloSong(t, env.baseDir, "song")

	original := readClipboard
	t.Cleanup(func() { readClipboard = original })

	readClipboard = func() (string, error) { return "hello big world", nil }
	out, _, err := runCLI(t, []string{"align", "--clipboard", "--no-cache", transcript}, env.configPath)
	if err != nil {
		t.Fatalf("align --clipboard: %v", err)
	}
	requireContains(t, out, "Total words: 3")

	readClipboard = func() (string, error) { return "  \n", nil }
	if _, _, err := runCLI(t, []string{"align", "--clipboard", transcript}, env.configPath); err == nil {
		t.Fatal("expected empty clipboard error")
	}
}

func TestAlignCommandReadsTranscriptFromStdin(t *testing.T) {
	env := setupCLITestEnv(t)
	ref, transcript := writeHelloSong(t, env.baseDir, "song")
	data, err := os.ReadFile(transcript)
	if err != nil {
		t.Fatal(err)
	}

	cmd := newRootCommand()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(bytes.NewReader(data))
	cmd.SetArgs([]string{"--config", env.configPath, "align", ref, "-", "--no-cache"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("align from stdin: %v", err)
	}
	requireContains(t, stdout.String(), "Total words: 3 (matched 2, interpolated 1")

	cmd = newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("not json"))
	cmd.SetArgs([]string{"--config", env.configPath, "align", ref, "-", "--no-cache"})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected decode error for malformed stdin")
	}
}
