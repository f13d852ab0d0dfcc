// Package lyrics reads reference lyrics and writes aligned timelines.
//
// References load from plain text, SRT, or LRC files; timing in the latter
// two is discarded and only their text lines are kept, one reference line per
// cue or lyric line. Aligned words encode as a JSON word list, as SRT with one
// cue per reference line, as enhanced LRC carrying per-word stamps, or as a
// YAML sheet grouping words under their lines.
package lyrics
