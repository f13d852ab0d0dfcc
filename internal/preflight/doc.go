// Package preflight provides readiness checks for the filesystem paths and
// cache database lyricsync depends on.
//
// The workflow runner calls RunAll before a batch so a misconfigured output
// directory fails once instead of once per song, and `lyricsync doctor`
// renders the same results as a table. Each check is gated by its config
// toggle; disabled features are skipped.
package preflight
