package align

import (
	"strings"

	"lyricsync/internal/textutil"
)

// Tokenize splits reference text into whitespace-delimited words, keeping
// surface form and recording the source line of each word.
func Tokenize(text string) []ReferenceToken {
	var tokens []ReferenceToken
	for line, content := range strings.Split(text, "\n") {
		for _, word := range textutil.Fields(content) {
			tokens = append(tokens, ReferenceToken{Index: len(tokens), Word: word, Line: line})
		}
	}
	return tokens
}

// Align tokenizes reference and aligns it against recognized.
func Align(reference string, recognized []RecognizedWord, opts ...Option) Result {
	return AlignTokens(Tokenize(reference), recognized, opts...)
}

// AlignTokens aligns pre-tokenized reference words against recognized. The
// result holds exactly one SyncedWord per token, in token order. It never
// fails: empty reference yields no words and empty recognized yields a fully
// interpolated timeline.
func AlignTokens(tokens []ReferenceToken, recognized []RecognizedWord, opts ...Option) Result {
	s := newSettings(opts)

	a := make([]string, len(tokens))
	for i, tok := range tokens {
		a[i] = textutil.Canonical(tok.Word)
	}
	b := make([]string, len(recognized))
	for j, w := range recognized {
		b[j] = textutil.Canonical(w.Word)
	}

	blocks := newSequenceMatcher(a, b, s.autoJunk).matchingBlocks()
	words := resolve(tokens, recognized, IndexMap(blocks), s)

	stats := Stats{
		ReferenceWords:  len(tokens),
		RecognizedWords: len(recognized),
		Ratio:           Ratio(blocks, len(a), len(b)),
	}
	for _, w := range words {
		if w.Matched {
			stats.Matched++
		} else {
			stats.Interpolated++
		}
	}

	return Result{
		Words:     words,
		Blocks:    blocks,
		Anomalies: detectAnomalies(words),
		Stats:     stats,
	}
}

