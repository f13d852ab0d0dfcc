package config

const (
	defaultConfigPath                = "~/.config/lyricsync/config.toml"
	projectConfigName                = "lyricsync.toml"
	cacheDBName                      = "alignments.db"
	defaultOutputDir                 = "."
	defaultLogDir                    = "~/.local/share/lyricsync/logs"
	defaultLogFormat                 = "console"
	defaultLogLevel                  = "info"
	defaultLogRetentionDays          = 30
	defaultOutputFormat              = "json"
	defaultTailSecondsPerWord        = 0.5
	defaultInterpolatedDurationRatio = 0.8
	defaultPrecision                 = 3
	defaultMinSimilarity             = 0.2
	defaultBatchWorkers              = 4
	maxPrecision                     = 9
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
			CacheDir:  defaultCacheDir(),
		},
		Alignment: Alignment{
			AutoJunk:                  true,
			TailSecondsPerWord:        defaultTailSecondsPerWord,
			InterpolatedDurationRatio: defaultInterpolatedDurationRatio,
			Precision:                 defaultPrecision,
			MinSimilarity:             defaultMinSimilarity,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Indent: true,
		},
		Cache: Cache{
			Enabled: true,
		},
		Batch: Batch{
			Workers: defaultBatchWorkers,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
	}
}
