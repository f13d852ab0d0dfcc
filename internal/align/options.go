package align

const (
	// DefaultTailSecondsPerWord is the synthetic pace assumed after the last
	// matched word.
	DefaultTailSecondsPerWord = 0.5
	// DefaultInterpolatedDurationRatio is the share of an interpolation step an
	// unmatched word is assumed to occupy.
	DefaultInterpolatedDurationRatio = 0.8
	// DefaultPrecision is the number of decimals interpolated times keep.
	DefaultPrecision = 3
)

type settings struct {
	autoJunk      bool
	tailPerWord   float64
	durationRatio float64
	precision     int
}

func defaultSettings() settings {
	return settings{
		autoJunk:      true,
		tailPerWord:   DefaultTailSecondsPerWord,
		durationRatio: DefaultInterpolatedDurationRatio,
		precision:     DefaultPrecision,
	}
}

func newSettings(opts []Option) settings {
	s := defaultSettings()
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// Option tunes alignment behavior. The defaults reproduce the reference
// force-mapper output exactly.
type Option func(*settings)

// WithAutoJunk toggles the popular-element heuristic applied to recognized
// sequences of 200 or more tokens.
func WithAutoJunk(enabled bool) Option {
	return func(s *settings) {
		s.autoJunk = enabled
	}
}

// WithTailSecondsPerWord sets the synthetic pace used when no matched word
// follows a gap. Non-positive values are ignored.
func WithTailSecondsPerWord(seconds float64) Option {
	return func(s *settings) {
		if seconds > 0 {
			s.tailPerWord = seconds
		}
	}
}

// WithInterpolatedDurationRatio sets how much of each interpolation step an
// unmatched word spans. Values outside (0, 1] are ignored.
func WithInterpolatedDurationRatio(ratio float64) Option {
	return func(s *settings) {
		if ratio > 0 && ratio <= 1 {
			s.durationRatio = ratio
		}
	}
}

// WithPrecision sets the decimals kept on interpolated times. Values outside
// [0, 9] are ignored.
func WithPrecision(places int) Option {
	return func(s *settings) {
		if places >= 0 && places <= 9 {
			s.precision = places
		}
	}
}
