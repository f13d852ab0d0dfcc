package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"lyricsync/internal/align"
)

// keyVersion is mixed into every key so a change in how results are computed
// invalidates old entries without a schema bump.
const keyVersion = "lyricsync-align-v1"

// Entry is one cached alignment.
type Entry struct {
	Key            string
	RunID          string
	ReferencePath  string
	TranscriptPath string
	Result         align.Result
	CreatedAt      time.Time
	Hits           int
}

// Stats summarizes the cache contents.
type Stats struct {
	Entries        int
	Hits           int
	ReferenceWords int
	MeanRatio      float64
	Oldest         time.Time
	Newest         time.Time
}

// Key derives the cache key for a reference text, its recognized words, and
// an options fingerprint describing every setting that affects the output.
func Key(reference string, recognized []align.RecognizedWord, options string) string {
	h := sha256.New()
	writeField := func(value string) {
		h.Write([]byte(strconv.Itoa(len(value))))
		h.Write([]byte{':'})
		h.Write([]byte(value))
	}
	writeField(keyVersion)
	writeField(reference)
	for _, w := range recognized {
		writeField(w.Word)
		writeField(strconv.FormatFloat(w.Start, 'g', -1, 64))
		writeField(strconv.FormatFloat(w.End, 'g', -1, 64))
	}
	writeField(options)
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the entry stored under key, or nil when absent. A hit bumps
// the entry's hit counter.
func (s *Store) Get(ctx context.Context, key string) (*Entry, error) {
	ctx = ensureContext(ctx)
	var (
		entry     Entry
		payload   string
		createdAt string
	)
	err := retryOnBusy(ctx, func() error {
		return s.db.QueryRowContext(ctx, `SELECT cache_key, run_id, reference_path, transcript_path, result_json, created_at, hits
			FROM alignments WHERE cache_key = ?`, key).
			Scan(&entry.Key, &entry.RunID, &entry.ReferencePath, &entry.TranscriptPath, &payload, &createdAt, &entry.Hits)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache lookup: %w", err)
	}
	if err := json.Unmarshal([]byte(payload), &entry.Result); err != nil {
		return nil, fmt.Errorf("decode cached result: %w", err)
	}
	entry.CreatedAt = parseTime(createdAt)

	if _, err := s.execWithRetry(ctx,
		`UPDATE alignments SET hits = hits + 1, last_hit_at = ? WHERE cache_key = ?`,
		time.Now().UTC().Format(time.RFC3339Nano), key,
	); err != nil {
		return nil, fmt.Errorf("cache record hit: %w", err)
	}
	entry.Hits++
	return &entry, nil
}

// Put stores entry, replacing any previous entry with the same key.
func (s *Store) Put(ctx context.Context, entry Entry) error {
	if entry.Key == "" {
		return errors.New("cache key cannot be empty")
	}
	payload, err := json.Marshal(entry.Result)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	created := entry.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err = s.execWithRetry(ctx, `INSERT INTO alignments (
			cache_key, run_id, reference_path, transcript_path,
			reference_words, matched_words, ratio, result_json, created_at, hits
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0)
		ON CONFLICT(cache_key) DO UPDATE SET
			run_id = excluded.run_id,
			reference_path = excluded.reference_path,
			transcript_path = excluded.transcript_path,
			reference_words = excluded.reference_words,
			matched_words = excluded.matched_words,
			ratio = excluded.ratio,
			result_json = excluded.result_json,
			created_at = excluded.created_at`,
		entry.Key,
		entry.RunID,
		entry.ReferencePath,
		entry.TranscriptPath,
		entry.Result.Stats.ReferenceWords,
		entry.Result.Stats.Matched,
		entry.Result.Stats.Ratio,
		string(payload),
		created.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("cache store: %w", err)
	}
	return nil
}

// Stats aggregates entry counts, hit totals, and age bounds.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	ctx = ensureContext(ctx)
	var (
		stats          Stats
		hits, words    sql.NullInt64
		ratio          sql.NullFloat64
		oldest, newest sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1), SUM(hits), SUM(reference_words), AVG(ratio), MIN(created_at), MAX(created_at)
		FROM alignments`).Scan(&stats.Entries, &hits, &words, &ratio, &oldest, &newest)
	if err != nil {
		return Stats{}, fmt.Errorf("cache stats: %w", err)
	}
	stats.Hits = int(hits.Int64)
	stats.ReferenceWords = int(words.Int64)
	stats.MeanRatio = ratio.Float64
	stats.Oldest = parseTime(oldest.String)
	stats.Newest = parseTime(newest.String)
	return stats, nil
}

// Clear removes every entry and returns how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.execWithRetry(ctx, `DELETE FROM alignments`)
	if err != nil {
		return 0, fmt.Errorf("cache clear: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cache clear: %w", err)
	}
	return n, nil
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
