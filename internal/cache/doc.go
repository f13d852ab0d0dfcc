// Package cache persists finished alignments in SQLite so repeated runs over
// unchanged inputs skip the matcher entirely.
//
// Entries are keyed by a SHA-256 digest of the reference text, the recognized
// words, and every option that changes the output. The database lives under
// paths.cache_dir; a schema version mismatch is reported as ErrSchemaMismatch
// and resolved with `lyricsync cache clear`.
package cache
