package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"lyricsync/internal/align"
	"lyricsync/internal/lyrics"
	"lyricsync/internal/workflow"
)

// readClipboard is swapped out in tests.
var readClipboard = clipboard.ReadAll

func newAlignCommand(ctx *commandContext) *cobra.Command {
	var (
		outputPath    string
		format        string
		noCache       bool
		showTable     bool
		fromClipboard bool
	)

	cmd := &cobra.Command{
		Use:   "align <lyrics> <transcript.json>",
		Short: "Align a lyrics file against a WhisperX transcript",
		Long: "Align reference lyrics (.txt, .lrc, or .srt) against WhisperX word timings.\n" +
			"Unmatched words are interpolated between the nearest matched neighbours.\n" +
			"With --clipboard the lyrics come from the clipboard and only the transcript is given.\n" +
			"A transcript of - is read from standard input.",
		Args: func(cmd *cobra.Command, args []string) error {
			if fromClipboard {
				return cobra.ExactArgs(1)(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			var parsed lyrics.Format
			if format != "" {
				if parsed, err = lyrics.ParseFormat(format); err != nil {
					return err
				}
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			opts := []workflow.RunnerOption{}
			if store := ctx.openCache(logger, noCache); store != nil {
				defer store.Close()
				opts = append(opts, workflow.WithCache(store))
			}
			runner := workflow.NewRunner(cfg, logger, opts...)

			job := workflow.Job{
				OutputPath: outputPath,
				Format:     parsed,
				NoCache:    noCache,
			}
			if fromClipboard {
				text, err := readClipboard()
				if err != nil {
					return fmt.Errorf("read clipboard: %w", err)
				}
				if strings.TrimSpace(text) == "" {
					return errors.New("clipboard is empty; copy the lyrics first")
				}
				job.ReferenceText = text
				job.ReferenceTitle = "clipboard"
				job.TranscriptPath = args[0]
			} else {
				job.ReferencePath = args[0]
				job.TranscriptPath = args[1]
			}
			if job.TranscriptPath == "-" {
				job.TranscriptPath = ""
				job.TranscriptReader = cmd.InOrStdin()
			}

			outcome, err := runner.Run(cmd.Context(), job)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !cmd.Flags().Changed("table") {
				showTable = isTerminal(out)
			}
			if showTable {
				fmt.Fprintln(out, renderTable(
					[]string{"#", "Word", "Start", "End", "Matched"},
					wordRows(outcome.Result.Words),
					[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignLeft},
				))
			}
			printOutcome(out, outcome)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default <output_dir>/synced_lyrics.<ext>)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json, srt, lrc, or yaml (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Skip the alignment cache for this run")
	cmd.Flags().BoolVar(&fromClipboard, "clipboard", false, "Read the lyrics from the clipboard")
	cmd.Flags().BoolVar(&showTable, "table", false, "Print the word timeline as a table (default on a terminal)")
	return cmd
}

func wordRows(words []align.SyncedWord) [][]string {
	rows := make([][]string, len(words))
	for i, w := range words {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			w.Word,
			formatSeconds(w.Start),
			formatSeconds(w.End),
			yesNo(w.Matched),
		}
	}
	return rows
}

func printOutcome(out io.Writer, outcome *workflow.Outcome) {
	stats := outcome.Result.Stats
	fmt.Fprintf(out, "Total words: %d (matched %d, interpolated %d, ratio %.2f)\n",
		stats.ReferenceWords, stats.Matched, stats.Interpolated, stats.Ratio)
	if n := len(outcome.Result.Anomalies); n > 0 {
		fmt.Fprintf(out, "Timeline anomalies: %d (timestamps left as computed)\n", n)
	}
	if outcome.CacheHit {
		fmt.Fprintln(out, "Result reused from cache")
	}
	fmt.Fprintf(out, "Synced lyrics saved to %s\n", outcome.OutputPath)
}

func formatSeconds(value float64) string {
	return strconv.FormatFloat(value, 'f', 3, 64)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
