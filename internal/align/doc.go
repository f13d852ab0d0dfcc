// Package align maps a trusted reference text onto time-stamped word
// hypotheses from a speech recognizer.
//
// Alignment runs in three steps. Reference and recognized words are reduced to
// canonical tokens (see textutil.Canonical). Matching blocks between the two
// token sequences are found with the Ratcliff/Obershelp longest-block
// heuristic, reproducing the block choices of Python's
// difflib.SequenceMatcher, leftmost-longest ties and the popular-element
// autojunk rule included. Matched reference words take the recognized
// timestamps verbatim; every run of unmatched words is spread evenly between
// the end of the preceding matched word and the start of the following one,
// or along a synthetic half-second-per-word timeline when no following match
// exists.
//
// Everything here is pure and allocation-local: callers may align independent
// inputs from any number of goroutines. Nothing is clamped; inverted or
// regressing timestamps caused by non-monotonic recognizer output are kept and
// reported through Result.Anomalies.
package align
