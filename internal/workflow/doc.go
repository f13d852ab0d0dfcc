// Package workflow runs alignment jobs end to end.
//
// A Runner loads a reference and a WhisperX transcript, consults the result
// cache, aligns, reports anomalies as structured warnings, and writes the
// encoded timeline under a file lock. RunBatch fans a list of jobs out over a
// fixed pool of workers after a single preflight pass, collecting per-job
// failures instead of stopping at the first one.
//
// Every run carries a UUID run ID that tags its log lines and cache row.
package workflow
