package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAlignment(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateBatch(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAlignment() error {
	a := c.Alignment
	if a.TailSecondsPerWord <= 0 {
		return errors.New("alignment.tail_seconds_per_word must be positive")
	}
	if a.InterpolatedDurationRatio <= 0 || a.InterpolatedDurationRatio > 1 {
		return errors.New("alignment.interpolated_duration_ratio must be greater than 0 and at most 1")
	}
	if a.Precision < 0 || a.Precision > maxPrecision {
		return fmt.Errorf("alignment.precision must be between 0 and %d", maxPrecision)
	}
	if a.MinSimilarity < 0 || a.MinSimilarity > 1 {
		return errors.New("alignment.min_similarity must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "json", "srt", "lrc", "yaml":
		return nil
	default:
		return fmt.Errorf("output.format must be one of json, srt, lrc, yaml (got %q)", c.Output.Format)
	}
}

func (c *Config) validateBatch() error {
	if c.Batch.Workers < 1 {
		return errors.New("batch.workers must be positive")
	}
	return nil
}
