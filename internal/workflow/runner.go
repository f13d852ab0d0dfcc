package workflow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"lyricsync/internal/align"
	"lyricsync/internal/cache"
	"lyricsync/internal/config"
	"lyricsync/internal/fileutil"
	"lyricsync/internal/logging"
	"lyricsync/internal/lyrics"
	"lyricsync/internal/textutil"
	"lyricsync/internal/whisperx"
)

// maxLoggedAnomalies caps per-word anomaly warnings for a single run; the
// rest are summarized in one line.
const maxLoggedAnomalies = 10

// Runner executes alignment jobs against a shared config and cache.
type Runner struct {
	cfg      *config.Config
	store    *cache.Store
	logger   *slog.Logger
	newRunID func() string
}

// RunnerOption configures optional Runner behavior.
type RunnerOption func(*Runner)

// WithCache enables result caching through store. A nil store disables it.
func WithCache(store *cache.Store) RunnerOption {
	return func(r *Runner) {
		r.store = store
	}
}

// WithRunIDGenerator replaces the UUID run ID source.
func WithRunIDGenerator(fn func() string) RunnerOption {
	return func(r *Runner) {
		if fn != nil {
			r.newRunID = fn
		}
	}
}

// NewRunner constructs a Runner. A nil logger discards output.
func NewRunner(cfg *config.Config, logger *slog.Logger, opts ...RunnerOption) *Runner {
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}
	r := &Runner{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "workflow"),
		newRunID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run performs a single job: load both inputs, align (or reuse a cached
// alignment), and write the encoded timeline.
func (r *Runner) Run(ctx context.Context, job Job) (*Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	started := time.Now()

	format, err := r.resolveFormat(job.Format)
	if err != nil {
		return nil, err
	}

	runID := r.newRunID()
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, r.logger).With(
		logging.String(logging.FieldJob, job.Name()),
	)

	ref, err := loadReference(job)
	if err != nil {
		return nil, fmt.Errorf("load reference: %w", err)
	}
	transcript, err := loadTranscript(job)
	if err != nil {
		return nil, fmt.Errorf("load transcript: %w", err)
	}
	if transcript.Skipped > 0 {
		logging.WarnWithContext(logger, "transcript words without timings dropped", "transcript_words_skipped",
			logging.Int("skipped", transcript.Skipped),
			logging.String("transcript", job.TranscriptPath),
			logging.String(logging.FieldErrorHint, "re-run WhisperX alignment so every word carries start and end"),
			logging.String(logging.FieldImpact, "dropped words cannot anchor reference lines"),
		)
	}

	outcome := &Outcome{
		Job:          job,
		RunID:        runID,
		Title:        ref.Title,
		Format:       format,
		SkippedWords: transcript.Skipped,
		Similarity:   r.checkSimilarity(logger, ref, transcript),
	}

	result, hit := r.lookup(ctx, logger, job, ref, transcript)
	if !hit {
		result = align.AlignTokens(ref.Tokens, transcript.Words, AlignOptions(r.cfg)...)
		r.remember(ctx, logger, job, runID, ref, transcript, result)
	}
	outcome.Result = result
	outcome.CacheHit = hit
	r.reportAnomalies(logger, result.Anomalies)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	outcome.OutputPath = r.outputPath(job, format)
	encodeOpts := lyrics.EncodeOptions{Indent: r.cfg.Output.Indent}
	if err := fileutil.WriteLocked(outcome.OutputPath, 0o644, func(w io.Writer) error {
		return lyrics.Encode(w, format, ref, result.Words, encodeOpts)
	}); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}

	outcome.Duration = time.Since(started)
	logger.Info("alignment complete",
		logging.String(logging.FieldEventType, "alignment_complete"),
		logging.Int("reference_words", result.Stats.ReferenceWords),
		logging.Int("recognized_words", result.Stats.RecognizedWords),
		logging.Int("matched", result.Stats.Matched),
		logging.Int("interpolated", result.Stats.Interpolated),
		logging.Float64("ratio", result.Stats.Ratio),
		logging.Bool("cache_hit", hit),
		logging.String("output", outcome.OutputPath),
		logging.Duration("duration", outcome.Duration),
	)
	return outcome, nil
}

func loadReference(job Job) (*lyrics.Reference, error) {
	if job.ReferencePath == "" && job.ReferenceText != "" {
		return lyrics.NewReference(job.ReferenceTitle, job.ReferenceText), nil
	}
	return lyrics.LoadReference(job.ReferencePath)
}

func loadTranscript(job Job) (*whisperx.Transcript, error) {
	if job.TranscriptPath == "" && job.TranscriptReader != nil {
		return whisperx.Decode(job.TranscriptReader)
	}
	return whisperx.Load(job.TranscriptPath)
}

func (r *Runner) resolveFormat(format lyrics.Format) (lyrics.Format, error) {
	if format != "" {
		return lyrics.ParseFormat(string(format))
	}
	return lyrics.ParseFormat(r.cfg.Output.Format)
}

func (r *Runner) outputPath(job Job, format lyrics.Format) string {
	if job.OutputPath != "" {
		return job.OutputPath
	}
	return filepath.Join(r.cfg.Paths.OutputDir, lyrics.DefaultFileName(format))
}

// checkSimilarity compares reference and transcript vocabularies and warns
// when they look unrelated, which usually means mismatched input files.
func (r *Runner) checkSimilarity(logger *slog.Logger, ref *lyrics.Reference, transcript *whisperx.Transcript) float64 {
	refPrint := textutil.NewFingerprint(ref.Text)
	recognized := make([]string, len(transcript.Words))
	for i, w := range transcript.Words {
		recognized[i] = textutil.Canonical(w.Word)
	}
	recPrint := textutil.NewFingerprintFromTokens(recognized)
	if refPrint == nil || recPrint == nil {
		return -1
	}

	similarity := refPrint.Similarity(recPrint)
	threshold := r.cfg.Alignment.MinSimilarity
	if threshold > 0 && similarity < threshold {
		logging.WarnWithContext(logger, "reference and transcript vocabularies barely overlap", "low_similarity",
			logging.Float64("similarity", similarity),
			logging.Float64("threshold", threshold),
			logging.Int("reference_vocabulary", refPrint.TokenCount()),
			logging.Int("transcript_vocabulary", recPrint.TokenCount()),
			logging.String(logging.FieldErrorHint, "confirm the lyrics file belongs to the transcribed recording"),
			logging.String(logging.FieldImpact, "most words will be interpolated rather than matched"),
		)
	}
	return similarity
}

func (r *Runner) cacheKey(ref *lyrics.Reference, transcript *whisperx.Transcript) string {
	return cache.Key(ref.Text, transcript.Words, optionsFingerprint(r.cfg))
}

func (r *Runner) lookup(ctx context.Context, logger *slog.Logger, job Job, ref *lyrics.Reference, transcript *whisperx.Transcript) (align.Result, bool) {
	if r.store == nil || job.NoCache {
		reason := "cache disabled"
		if job.NoCache {
			reason = "bypassed by request"
		}
		logger.Debug("alignment cache decision", logging.Args(logging.DecisionAttrs("cache", "skip", reason)...)...)
		return align.Result{}, false
	}

	entry, err := r.store.Get(ctx, r.cacheKey(ref, transcript))
	if err != nil {
		logging.WarnWithContext(logger, "alignment cache lookup failed; aligning from scratch", "cache_lookup_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "run 'lyricsync doctor' to inspect the cache database"),
			logging.String(logging.FieldImpact, "result is recomputed"),
		)
		return align.Result{}, false
	}
	if entry == nil || len(entry.Result.Words) != len(ref.Tokens) {
		logger.Debug("alignment cache decision", logging.Args(logging.DecisionAttrs("cache", "miss", "no entry for inputs")...)...)
		return align.Result{}, false
	}
	logger.Debug("alignment cache decision", logging.Args(append(
		logging.DecisionAttrs("cache", "hit", "inputs and options unchanged"),
		logging.String("cached_run_id", entry.RunID),
	)...)...)
	return entry.Result, true
}

func (r *Runner) remember(ctx context.Context, logger *slog.Logger, job Job, runID string, ref *lyrics.Reference, transcript *whisperx.Transcript, result align.Result) {
	if r.store == nil || job.NoCache {
		return
	}
	err := r.store.Put(ctx, cache.Entry{
		Key:            r.cacheKey(ref, transcript),
		RunID:          runID,
		ReferencePath:  job.ReferencePath,
		TranscriptPath: job.TranscriptPath,
		Result:         result,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.WarnWithContext(logger, "alignment cache store failed", "cache_store_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check free space and permissions under paths.cache_dir"),
			logging.String(logging.FieldImpact, "next run over the same inputs will realign"),
		)
	}
}

func (r *Runner) reportAnomalies(logger *slog.Logger, anomalies []align.Anomaly) {
	for i, a := range anomalies {
		if i == maxLoggedAnomalies {
			logging.WarnWithContext(logger, "further timeline anomalies suppressed", "timeline_anomaly",
				logging.Int("suppressed", len(anomalies)-maxLoggedAnomalies),
				logging.Int("total", len(anomalies)),
			)
			return
		}
		logging.WarnWithContext(logger, "timeline anomaly", "timeline_anomaly",
			logging.Alert(string(a.Kind)),
			logging.Int("index", a.Index),
			logging.String("word", a.Word),
			logging.Float64("start", a.Start),
			logging.Float64("end", a.End),
			logging.Bool("matched", a.Matched),
			logging.String(logging.FieldErrorHint, "inspect the transcript timings around this word"),
			logging.String(logging.FieldImpact, "timestamps are written unchanged and may run backwards"),
		)
	}
}
