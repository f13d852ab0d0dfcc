// Package logging assembles structured slog loggers and formatting helpers used
// across lyricsync.
//
// It owns the console and JSON handlers, routes output to stderr and an
// optional log file, and exposes context helpers so alignment runs tag every
// line with their run ID. A no-op logger is provided for tests and wiring
// code that cannot fail.
package logging
