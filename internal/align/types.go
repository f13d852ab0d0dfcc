package align

// ReferenceToken is one whitespace-delimited word of the reference text.
type ReferenceToken struct {
	Index int
	Word  string
	// Line is the 0-based source line the word came from.
	Line int
}

// RecognizedWord is a word hypothesis produced by the recognition backend.
// Times are in seconds.
type RecognizedWord struct {
	Word  string   `json:"word"`
	Start float64  `json:"start"`
	End   float64  `json:"end"`
	Score *float64 `json:"score,omitempty"`
}

// SyncedWord is the resolved timing of one reference word.
type SyncedWord struct {
	Word    string  `json:"word"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Matched bool    `json:"matched"`
}

// MatchingBlock describes a run where reference tokens A..A+Size equal
// recognized tokens B..B+Size.
type MatchingBlock struct {
	A    int `json:"a"`
	B    int `json:"b"`
	Size int `json:"size"`
}

// AnomalyKind classifies a suspicious resolved timestamp.
type AnomalyKind string

const (
	// AnomalyInvertedInterval marks a word whose start is after its end.
	AnomalyInvertedInterval AnomalyKind = "inverted_interval"
	// AnomalyTimelineRegression marks a word starting before its predecessor.
	AnomalyTimelineRegression AnomalyKind = "timeline_regression"
)

// Anomaly reports a resolved word whose timing breaks monotonicity.
type Anomaly struct {
	Index   int         `json:"index"`
	Word    string      `json:"word"`
	Kind    AnomalyKind `json:"kind"`
	Start   float64     `json:"start"`
	End     float64     `json:"end"`
	Matched bool        `json:"matched"`
}

// Stats summarizes an alignment.
type Stats struct {
	ReferenceWords  int `json:"reference_words"`
	RecognizedWords int `json:"recognized_words"`
	Matched         int `json:"matched"`
	Interpolated    int `json:"interpolated"`
	// Ratio is 2*M/T over canonical tokens, M matched and T the combined
	// length; 1 when both sides are empty.
	Ratio float64 `json:"ratio"`
}

// Result is the outcome of Align.
type Result struct {
	Words     []SyncedWord    `json:"words"`
	Blocks    []MatchingBlock `json:"blocks"`
	Anomalies []Anomaly       `json:"anomalies,omitempty"`
	Stats     Stats           `json:"stats"`
}
