package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"lyricsync/internal/cache"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the alignment cache",
	}

	cacheCmd.AddCommand(newCacheStatsCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))

	return cacheCmd
}

func newCacheStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show alignment cache usage",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !cfg.Cache.Enabled {
				fmt.Fprintln(out, "Alignment cache disabled (cache.enabled = false)")
				return nil
			}

			store, err := cache.Open(cfg.CacheDBPath())
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.Stats(cmd.Context())
			if err != nil {
				return err
			}
			rows := [][]string{
				{"Database", store.Path()},
				{"Entries", strconv.Itoa(stats.Entries)},
				{"Hits", strconv.Itoa(stats.Hits)},
				{"Reference words", strconv.Itoa(stats.ReferenceWords)},
				{"Mean match ratio", fmt.Sprintf("%.2f", stats.MeanRatio)},
				{"Oldest", formatStamp(stats.Oldest)},
				{"Newest", formatStamp(stats.Newest)},
			}
			fmt.Fprintln(out, renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached alignment",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			path := cfg.CacheDBPath()

			store, err := cache.Open(path)
			if errors.Is(err, cache.ErrSchemaMismatch) {
				if err := cache.Remove(path); err != nil {
					return fmt.Errorf("remove outdated cache: %w", err)
				}
				fmt.Fprintf(out, "Removed outdated cache database %s\n", path)
				return nil
			}
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Cleared %d cached alignments\n", removed)
			return nil
		},
	}
}

func formatStamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
