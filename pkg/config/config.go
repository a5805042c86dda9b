package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and fills in defaults for zero values.
func Validate(cfg *Config) error {
	if len(cfg.Sources) == 0 {
		return errors.New("sources: at least one hosts file is required")
	}
	for i, s := range cfg.Sources {
		if s == "" {
			return fmt.Errorf("sources[%d]: path is empty", i)
		}
	}

	if cfg.MaxEagerSize < 0 {
		return fmt.Errorf("max_eager_size: must not be negative, got %d", cfg.MaxEagerSize)
	}
	if cfg.MaxEagerSize == 0 {
		cfg.MaxEagerSize = DefaultMaxEagerSize
	}

	if cfg.LockTimeout < 0 {
		return fmt.Errorf("lock_timeout: must not be negative, got %s", cfg.LockTimeout)
	}

	switch cfg.Output {
	case "":
		cfg.Output = DefaultOutput
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("output: invalid format %q (must be text, json, or yaml)", cfg.Output)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	return nil
}

// Level returns the parsed log level, falling back to the default.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level, _ = logrus.ParseLevel(DefaultLogLevel)
	}
	return level
}
