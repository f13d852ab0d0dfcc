package workflow

import (
	"fmt"

	"lyricsync/internal/align"
	"lyricsync/internal/config"
)

// AlignOptions translates the [alignment] config section into engine options.
func AlignOptions(cfg *config.Config) []align.Option {
	if cfg == nil {
		return nil
	}
	a := cfg.Alignment
	return []align.Option{
		align.WithAutoJunk(a.AutoJunk),
		align.WithTailSecondsPerWord(a.TailSecondsPerWord),
		align.WithInterpolatedDurationRatio(a.InterpolatedDurationRatio),
		align.WithPrecision(a.Precision),
	}
}

// optionsFingerprint names every setting that changes alignment output, for
// use in cache keys.
func optionsFingerprint(cfg *config.Config) string {
	a := cfg.Alignment
	return fmt.Sprintf("autojunk=%t tail=%g ratio=%g precision=%d",
		a.AutoJunk, a.TailSecondsPerWord, a.InterpolatedDurationRatio, a.Precision)
}
