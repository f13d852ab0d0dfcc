package preflight

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lyricsync/internal/cache"
	"lyricsync/internal/config"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckDirectoryCreatable(t *testing.T) {
	base := t.TempDir()

	missing := CheckDirectoryCreatable("test", filepath.Join(base, "a", "b"))
	if !missing.Passed || !strings.Contains(missing.Detail, "will be created") {
		t.Fatalf("expected creatable pass, got %+v", missing)
	}

	existing := CheckDirectoryCreatable("test", base)
	if !existing.Passed || !strings.Contains(existing.Detail, "read/write ok") {
		t.Fatalf("expected access pass, got %+v", existing)
	}

	file := filepath.Join(base, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	blocked := CheckDirectoryCreatable("test", filepath.Join(file, "sub"))
	if blocked.Passed {
		t.Fatalf("expected failure below a regular file, got %+v", blocked)
	}

	if empty := CheckDirectoryCreatable("test", ""); empty.Passed {
		t.Fatal("expected failure for empty path")
	}
}

func TestCheckCacheDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "alignments.db")

	if result := CheckCacheDatabase(ctx, path); !result.Passed {
		t.Fatalf("missing database should pass, got %+v", result)
	}

	store, err := cache.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	store.Close()
	if result := CheckCacheDatabase(ctx, path); !result.Passed || !strings.Contains(result.Detail, "0 entries") {
		t.Fatalf("fresh database should pass, got %+v", result)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 42"); err != nil {
		t.Fatal(err)
	}
	db.Close()

	result := CheckCacheDatabase(ctx, path)
	if result.Passed || !strings.Contains(result.Detail, "cache clear") {
		t.Fatalf("expected schema mismatch failure, got %+v", result)
	}
}

func TestRunAllGatesOnConfig(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.OutputDir = base
	cfg.Paths.CacheDir = filepath.Join(base, "cache")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	cfg.Cache.Enabled = false
	cfg.Logging.File = false
	if results := RunAll(context.Background(), &cfg); len(results) != 1 {
		t.Fatalf("expected only the output check, got %+v", results)
	}

	cfg.Cache.Enabled = true
	cfg.Logging.File = true
	results := RunAll(context.Background(), &cfg)
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Name)
	}
	want := []string{"Output directory", "Cache directory", "Cache database", "Log directory"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("checks = %v, want %v", names, want)
	}
	if failed := Failed(results); len(failed) != 0 {
		t.Fatalf("expected all checks to pass, failed: %+v", failed)
	}

	if RunAll(context.Background(), nil) != nil {
		t.Fatal("expected nil results for nil config")
	}
}
