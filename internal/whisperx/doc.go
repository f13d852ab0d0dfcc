// Package whisperx decodes word-level output of the WhisperX aligner into
// recognized words.
//
// Three JSON shapes are accepted: the bare word_segments array WhisperX users
// usually dump, an object carrying word_segments, and the full result object
// whose segments each hold a words array. WhisperX omits timings for tokens
// it cannot align (digits, symbols); those records are dropped here and
// counted in Transcript.Skipped so the aligner only ever sees complete words.
package whisperx
