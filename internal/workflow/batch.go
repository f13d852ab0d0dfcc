package workflow

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"lyricsync/internal/logging"
	"lyricsync/internal/lyrics"
	"lyricsync/internal/preflight"
	"lyricsync/internal/textutil"
)

// referenceExtensions lists the reference formats DiscoverJobs picks up, in
// order of preference when several share a base name.
var referenceExtensions = []string{".txt", ".lrc", ".srt"}

// ErrPreflightFailed reports that RunBatch refused to start.
var ErrPreflightFailed = errors.New("preflight checks failed")

// DiscoverJobs scans dir for reference files that have a sibling
// <name>.json transcript. Each base name yields at most one job; when several
// reference files share it the extension order is .txt, .lrc, .srt, compared
// case-insensitively. Outputs are named <name>.synced.<ext> under outputDir so
// they never overwrite an input transcript; names that sanitize to the same
// output get a numeric suffix in reference order.
func DiscoverJobs(dir, outputDir string, format lyrics.Format) ([]Job, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read batch directory: %w", err)
	}

	references := make(map[string][]string)
	transcripts := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		base := strings.TrimSuffix(name, ext)
		switch {
		case strings.EqualFold(ext, ".json"):
			if _, ok := transcripts[base]; !ok || ext == ".json" {
				transcripts[base] = name
			}
		case referenceRank(ext) >= 0:
			references[base] = append(references[base], name)
		}
	}

	var jobs []Job
	for base, names := range references {
		transcript, ok := transcripts[base]
		if !ok {
			continue
		}
		jobs = append(jobs, Job{
			ReferencePath:  filepath.Join(dir, preferredReference(names)),
			TranscriptPath: filepath.Join(dir, transcript),
			Format:         format,
		})
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].ReferencePath < jobs[j].ReferencePath })

	used := make(map[string]struct{}, len(jobs))
	for i := range jobs {
		name := filepath.Base(jobs[i].ReferencePath)
		stem := textutil.SanitizeFileName(strings.TrimSuffix(name, filepath.Ext(name)), "lyrics")
		outName := stem + ".synced" + format.Extension()
		for n := 2; ; n++ {
			if _, taken := used[strings.ToLower(outName)]; !taken {
				break
			}
			outName = fmt.Sprintf("%s (%d).synced%s", stem, n, format.Extension())
		}
		used[strings.ToLower(outName)] = struct{}{}
		jobs[i].OutputPath = filepath.Join(outputDir, outName)
	}
	return jobs, nil
}

// referenceRank returns the preference index of ext in referenceExtensions,
// or -1 when ext is not a reference format.
func referenceRank(ext string) int {
	for i, candidate := range referenceExtensions {
		if strings.EqualFold(ext, candidate) {
			return i
		}
	}
	return -1
}

// preferredReference picks the best-ranked name. Ties between case variants
// of one extension go to the lexically smallest name.
func preferredReference(names []string) string {
	best := ""
	bestRank := len(referenceExtensions)
	for _, name := range names {
		rank := referenceRank(filepath.Ext(name))
		if rank < bestRank || (rank == bestRank && name < best) {
			best, bestRank = name, rank
		}
	}
	return best
}

// RunBatch runs jobs over a pool of workers. Preflight runs once up front and
// a failure there aborts the batch with ErrPreflightFailed. Afterwards every
// job runs to completion or failure independently; jobs not started before
// ctx is cancelled are reported as failures carrying ctx.Err().
func (r *Runner) RunBatch(ctx context.Context, jobs []Job, workers int) (*BatchReport, error) {
	if failed := preflight.Failed(preflight.RunAll(ctx, r.cfg)); len(failed) > 0 {
		details := make([]string, 0, len(failed))
		for _, f := range failed {
			details = append(details, f.Name+": "+f.Detail)
		}
		return nil, fmt.Errorf("%w: %s", ErrPreflightFailed, strings.Join(details, "; "))
	}

	if workers <= 0 {
		workers = r.cfg.Batch.Workers
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	r.logger.Info("batch started",
		logging.String(logging.FieldEventType, "batch_started"),
		logging.Int("jobs", len(jobs)),
		logging.Int("workers", workers),
	)

	outcomes := make([]*Outcome, len(jobs))
	errs := make([]error, len(jobs))
	indexes := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				outcomes[idx], errs[idx] = r.Run(ctx, jobs[idx])
			}
		}()
	}

	next := 0
feed:
	for ; next < len(jobs); next++ {
		select {
		case indexes <- next:
		case <-ctx.Done():
			break feed
		}
	}
	close(indexes)
	wg.Wait()
	for ; next < len(jobs); next++ {
		errs[next] = ctx.Err()
	}

	report := &BatchReport{}
	for i, job := range jobs {
		if errs[i] != nil {
			jobErr := &JobError{Job: job, Err: errs[i]}
			report.Failures = append(report.Failures, jobErr)
			logging.ErrorWithContext(r.logger, "alignment job failed", "job_failed",
				logging.String(logging.FieldJob, job.Name()),
				logging.Error(errs[i]),
				logging.String(logging.FieldErrorHint, "fix the inputs and re-run the batch; finished songs are cached"),
			)
			continue
		}
		report.Outcomes = append(report.Outcomes, outcomes[i])
	}

	r.logger.Info("batch finished",
		logging.String(logging.FieldEventType, "batch_finished"),
		logging.Int("succeeded", len(report.Outcomes)),
		logging.Int("failed", len(report.Failures)),
	)
	return report, nil
}
