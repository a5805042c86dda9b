// Package config provides configuration loading and validation for hostparse.
package config

import "time"

// OutputFormat names a report format.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Sources lists hosts file paths or glob patterns to parse.
	Sources []string `yaml:"sources"`

	// Strict turns lines without a domain into syntax errors.
	Strict bool `yaml:"strict"`

	// MaxEagerSize is the largest file, in bytes, parsed eagerly without force_large.
	MaxEagerSize int64 `yaml:"max_eager_size,omitempty"`

	// ForceLarge bypasses the MaxEagerSize guard.
	ForceLarge bool `yaml:"force_large,omitempty"`

	// LockTimeout bounds the wait for the exclusive file lock. Zero waits forever.
	LockTimeout time.Duration `yaml:"lock_timeout,omitempty"`

	// Output is the report format (text, json, yaml).
	Output OutputFormat `yaml:"output,omitempty"`

	// LogLevel is a logrus level name (panic through trace).
	LogLevel string `yaml:"log_level,omitempty"`
}
