package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lyricsync/internal/align"
	"lyricsync/internal/testsupport"
)

type cliTestEnv struct {
	baseDir    string
	outputDir  string
	cacheDir   string
	configPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(base, "xdg-cache"))

	env := &cliTestEnv{
		baseDir:    base,
		outputDir:  filepath.Join(base, "output"),
		cacheDir:   filepath.Join(base, "cache"),
		configPath: filepath.Join(base, "lyricsync.toml"),
	}
	content := fmt.Sprintf("[paths]\noutput_dir = %q\ncache_dir = %q\nlog_dir = %q\n\n[batch]\nworkers = 2\n\n[logging]\nlevel = \"error\"\n",
		env.outputDir, env.cacheDir, filepath.Join(base, "logs"))
	testsupport.WriteFile(t, env.configPath, content)
	return env
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeHelloSong(t *testing.T, dir, name string) (string, string) {
	t.Helper()
	return testsupport.WriteSong(t, dir, name, "hello big world\n", []align.RecognizedWord{
		{Word: "hello", Start: 1.0, End: 1.5},
		{Word: "world", Start: 2.0, End: 2.5},
	})
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
