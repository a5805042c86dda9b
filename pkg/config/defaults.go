package config

import (
	"os"
	"strconv"
	"strings"
)

// Default values for configuration.
const (
	DefaultMaxEagerSize int64 = 64 * 1024 * 1024
	DefaultSource             = "/etc/hosts"
	DefaultOutput             = OutputText
	DefaultLogLevel           = "warning"
)

// Environment variable names.
const (
	EnvSources  = "HOSTPARSE_SOURCES"
	EnvStrict   = "HOSTPARSE_STRICT"
	EnvLogLevel = "HOSTPARSE_LOG_LEVEL"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Sources:      []string{DefaultSource},
		MaxEagerSize: DefaultMaxEagerSize,
		Output:       DefaultOutput,
		LogLevel:     DefaultLogLevel,
	}
}

// FromEnvironment returns the default configuration with environment overrides applied.
func FromEnvironment() *Config {
	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()
	return cfg
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if sources := os.Getenv(EnvSources); sources != "" {
		var list []string
		for _, s := range strings.Split(sources, ",") {
			if s = strings.TrimSpace(s); s != "" {
				list = append(list, s)
			}
		}
		c.Sources = list
	}

	if v := os.Getenv(EnvStrict); v != "" {
		if strict, err := strconv.ParseBool(v); err == nil {
			c.Strict = strict
		}
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
}
