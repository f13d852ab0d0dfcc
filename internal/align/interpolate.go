package align

// Interpolate resolves a timestamp for every reference token. Tokens present
// in index take the start and end of the recognized word they map to and are
// marked matched. Each run of unmatched tokens is spread evenly between its
// anchors: the end of the closest preceding matched word (0 when there is
// none) and the start of the closest following matched word. A run with no
// following match is extrapolated at the tail pace, 0.5 seconds per word by
// default.
//
// For the k-th word of a run of n, with step = (next - prev) / (n + 1):
//
//	start = round(prev + step*k)
//	end   = round(start + step*0.8)
//
// Interpolated words never serve as anchors for later runs.
func Interpolate(tokens []ReferenceToken, recognized []RecognizedWord, index map[int]int, opts ...Option) []SyncedWord {
	return resolve(tokens, recognized, index, newSettings(opts))
}

func resolve(tokens []ReferenceToken, recognized []RecognizedWord, index map[int]int, s settings) []SyncedWord {
	out := make([]SyncedWord, len(tokens))
	anchored := make([]bool, len(tokens))
	for i, tok := range tokens {
		out[i].Word = tok.Word
		j, ok := index[i]
		if !ok || j < 0 || j >= len(recognized) {
			continue
		}
		out[i].Start = recognized[j].Start
		out[i].End = recognized[j].End
		out[i].Matched = true
		anchored[i] = true
	}

	for i := 0; i < len(out); {
		if anchored[i] {
			i++
			continue
		}
		first := i
		for i < len(out) && !anchored[i] {
			i++
		}
		fillGap(out, first-1, i, s)
	}
	return out
}

// fillGap assigns times to out[prev+1:next]. prev is -1 when the gap opens the
// sequence and next is len(out) when it closes it.
func fillGap(out []SyncedWord, prev, next int, s settings) {
	var prevTime float64
	if prev >= 0 {
		prevTime = out[prev].End
	}

	var nextTime float64
	if next < len(out) {
		nextTime = out[next].Start
	} else {
		nextTime = prevTime + s.tailPerWord*float64(next-prev)
	}

	missing := next - prev - 1
	step := (nextTime - prevTime) / float64(missing+1)
	for k := 1; k <= missing; k++ {
		start := roundTo(prevTime+step*float64(k), s.precision)
		out[prev+k].Start = start
		out[prev+k].End = roundTo(start+step*s.durationRatio, s.precision)
		out[prev+k].Matched = false
	}
}

// detectAnomalies lists words whose resolved interval is inverted or that
// start before the previous word.
func detectAnomalies(words []SyncedWord) []Anomaly {
	var anomalies []Anomaly
	for i, w := range words {
		if w.Start > w.End {
			anomalies = append(anomalies, newAnomaly(i, w, AnomalyInvertedInterval))
		}
		if i > 0 && w.Start < words[i-1].Start {
			anomalies = append(anomalies, newAnomaly(i, w, AnomalyTimelineRegression))
		}
	}
	return anomalies
}

func newAnomaly(i int, w SyncedWord, kind AnomalyKind) Anomaly {
	return Anomaly{
		Index:   i,
		Word:    w.Word,
		Kind:    kind,
		Start:   w.Start,
		End:     w.End,
		Matched: w.Matched,
	}
}
