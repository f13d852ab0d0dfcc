package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"lyricsync/internal/cache"
	"lyricsync/internal/config"
	"lyricsync/internal/logging"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	loggerOnce sync.Once
	logger     *slog.Logger
	logPath    string
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag != nil {
			if level := strings.TrimSpace(*c.logLevelFlag); level != "" {
				cfg.Logging.Level = level
			}
		}
		c.config = cfg
		c.configPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

// ensureLogger builds the process logger once and prunes expired log files.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, logPath, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logging: %w", err)
			return
		}
		if logPath != "" {
			logging.PruneLogs(logger, cfg.Paths.LogDir, cfg.Logging.RetentionDays, logPath)
		}
		c.logger = logger
		c.logPath = logPath
	})
	return c.logger, c.loggerErr
}

// openCache opens the alignment cache when enabled. Failures degrade to an
// uncached run with a warning rather than aborting the command.
func (c *commandContext) openCache(logger *slog.Logger, bypass bool) *cache.Store {
	cfg, err := c.ensureConfig()
	if err != nil || bypass || !cfg.Cache.Enabled {
		return nil
	}
	store, err := cache.Open(cfg.CacheDBPath())
	if err != nil {
		logging.WarnWithContext(logger, "alignment cache unavailable; continuing without it", "cache_open_failed",
			logging.String("path", cfg.CacheDBPath()),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "run 'lyricsync cache clear' or 'lyricsync doctor'"),
			logging.String(logging.FieldImpact, "results are neither reused nor stored"),
		)
		return nil
	}
	return store
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
