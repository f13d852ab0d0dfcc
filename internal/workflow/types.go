package workflow

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"lyricsync/internal/align"
	"lyricsync/internal/lyrics"
)

// Job describes one alignment to perform.
type Job struct {
	ReferencePath  string
	TranscriptPath string

	// ReferenceText, when ReferencePath is empty, supplies the lyrics
	// directly. ReferenceTitle names them in logs and LRC output.
	ReferenceText  string
	ReferenceTitle string

	// TranscriptReader, when TranscriptPath is empty, supplies the WhisperX
	// JSON document directly.
	TranscriptReader io.Reader

	// OutputPath defaults to synced_lyrics.<ext> in the configured output
	// directory.
	OutputPath string

	// Format defaults to the configured output format.
	Format lyrics.Format

	// NoCache bypasses both cache lookup and cache store.
	NoCache bool
}

// Name identifies the job in logs and reports.
func (j Job) Name() string {
	if j.ReferencePath == "" {
		if j.ReferenceTitle != "" {
			return j.ReferenceTitle
		}
		return "inline"
	}
	return filepath.Base(j.ReferencePath)
}

// Outcome reports a finished job.
type Outcome struct {
	Job        Job
	RunID      string
	Title      string
	OutputPath string
	Format     lyrics.Format
	Result     align.Result
	CacheHit   bool
	Duration   time.Duration

	// SkippedWords counts transcript records dropped for missing timings.
	SkippedWords int

	// Similarity is the cosine similarity between reference and transcript
	// vocabularies, or -1 when either side has no words.
	Similarity float64
}

// JobError ties a failure to the job that produced it.
type JobError struct {
	Job Job
	Err error
}

func (e *JobError) Error() string {
	return fmt.Sprintf("%s: %v", e.Job.Name(), e.Err)
}

func (e *JobError) Unwrap() error {
	return e.Err
}

// BatchReport collects the outcomes of a batch in job order.
type BatchReport struct {
	Outcomes []*Outcome
	Failures []*JobError
}

// Failed reports whether any job in the batch failed.
func (r *BatchReport) Failed() bool {
	return r != nil && len(r.Failures) > 0
}
