// Package main hosts the lyricsync CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration and logging once, then hands
// off to internal/workflow for single and batch alignments. Maintenance
// commands inspect the alignment cache, scaffold configuration, and run
// preflight checks. Keep this package thin: new behavior belongs in the
// internal packages and is surfaced here as commands or flags.
package main
