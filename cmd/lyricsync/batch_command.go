package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"lyricsync/internal/lyrics"
	"lyricsync/internal/workflow"
)

func newBatchCommand(ctx *commandContext) *cobra.Command {
	var (
		workers int
		format  string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Align every lyrics file in a directory that has a matching transcript",
		Long: "Align every <name>.txt (or .lrc/.srt) in dir that has a sibling <name>.json.\n" +
			"Results are written to paths.output_dir as <name>.synced.<ext>.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			parsed, err := lyrics.ParseFormat(format)
			if err != nil {
				return err
			}
			if format == "" {
				if parsed, err = lyrics.ParseFormat(cfg.Output.Format); err != nil {
					return err
				}
			}

			jobs, err := workflow.DiscoverJobs(args[0], cfg.Paths.OutputDir, parsed)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(jobs) == 0 {
				fmt.Fprintf(out, "No lyrics with matching transcripts found in %s\n", args[0])
				return nil
			}
			for i := range jobs {
				jobs[i].NoCache = noCache
			}

			opts := []workflow.RunnerOption{}
			if store := ctx.openCache(logger, noCache); store != nil {
				defer store.Close()
				opts = append(opts, workflow.WithCache(store))
			}
			runner := workflow.NewRunner(cfg, logger, opts...)

			report, err := runner.RunBatch(cmd.Context(), jobs, workers)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(jobs))
			for _, o := range report.Outcomes {
				rows = append(rows, []string{
					filepath.Base(o.Job.ReferencePath),
					"ok",
					fmt.Sprintf("%d/%d", o.Result.Stats.Matched, o.Result.Stats.ReferenceWords),
					yesNo(o.CacheHit),
					filepath.Base(o.OutputPath),
				})
			}
			for _, f := range report.Failures {
				rows = append(rows, []string{
					filepath.Base(f.Job.ReferencePath),
					"failed",
					"-",
					"-",
					f.Err.Error(),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Lyrics", "Status", "Matched", "Cached", "Output"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
			))
			fmt.Fprintf(out, "Aligned %d of %d songs into %s\n", len(report.Outcomes), len(jobs), cfg.Paths.OutputDir)

			if report.Failed() {
				return fmt.Errorf("%d of %d songs failed", len(report.Failures), len(jobs))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent alignments (default from batch.workers)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json, srt, lrc, or yaml (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Skip the alignment cache for this batch")
	return cmd
}
