// Package config loads, normalizes, and validates lyricsync configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from an explicit path, the user config
// directory, or a project-local lyricsync.toml. Alignment constants, output
// format, cache, batch, and logging knobs all live on the Config type.
package config
