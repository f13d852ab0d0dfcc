package preflight

import (
	"context"

	"lyricsync/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
// Checks are only run when the corresponding feature is enabled.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	results := []Result{
		CheckDirectoryCreatable("Output directory", cfg.Paths.OutputDir),
	}

	if cfg.Cache.Enabled {
		dirCheck := CheckDirectoryCreatable("Cache directory", cfg.Paths.CacheDir)
		results = append(results, dirCheck)
		if dirCheck.Passed {
			results = append(results, CheckCacheDatabase(ctx, cfg.CacheDBPath()))
		}
	}

	if cfg.Logging.File {
		results = append(results, CheckDirectoryCreatable("Log directory", cfg.Paths.LogDir))
	}

	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}
