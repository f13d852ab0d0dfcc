package textutil

import "math"

// Fingerprint represents a term-frequency vector for text similarity comparison.
type Fingerprint struct {
	tokens map[string]float64
	norm   float64
}

// NewFingerprint creates a fingerprint from the provided text.
// Returns nil if the text produces no tokens.
func NewFingerprint(text string) *Fingerprint {
	return NewFingerprintFromTokens(Tokenize(text))
}

// NewFingerprintFromTokens builds a fingerprint from canonical tokens that were
// already split, skipping empty ones. Returns nil when nothing remains.
func NewFingerprintFromTokens(tokens []string) *Fingerprint {
	counts := make(map[string]float64, len(tokens))
	for _, token := range tokens {
		if token == "" {
			continue
		}
		counts[token]++
	}
	if len(counts) == 0 {
		return nil
	}
	var norm float64
	for _, count := range counts {
		norm += count * count
	}
	return &Fingerprint{
		tokens: counts,
		norm:   math.Sqrt(norm),
	}
}

// Tokenize splits text into Fields and returns the non-empty canonical
// token of every word.
func Tokenize(text string) []string {
	fields := Fields(text)
	terms := make([]string, 0, len(fields))
	for _, field := range fields {
		if token := Canonical(field); token != "" {
			terms = append(terms, token)
		}
	}
	return terms
}

// TokenCount returns the number of unique tokens in the fingerprint.
func (f *Fingerprint) TokenCount() int {
	if f == nil {
		return 0
	}
	return len(f.tokens)
}

// Similarity returns the cosine similarity between f and other, or 0 when
// either side is nil or empty.
func (f *Fingerprint) Similarity(other *Fingerprint) float64 {
	if f == nil || other == nil || f.norm == 0 || other.norm == 0 {
		return 0
	}
	small, large := f, other
	if len(large.tokens) < len(small.tokens) {
		small, large = large, small
	}
	var dot float64
	for token, count := range small.tokens {
		dot += count * large.tokens[token]
	}
	if dot == 0 {
		return 0
	}
	return dot / (f.norm * other.norm)
}
