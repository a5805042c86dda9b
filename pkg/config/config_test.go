package config

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	content := `
sources:
  - /etc/hosts
  - /etc/hosts.d/*.conf
strict: true
max_eager_size: 1024
lock_timeout: 5s
output: json
log_level: debug
`
	path := writeTempFile(t, "config.yaml", content)
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !slices.Equal(cfg.Sources, []string{"/etc/hosts", "/etc/hosts.d/*.conf"}) {
		t.Errorf("Sources = %v", cfg.Sources)
	}
	if !cfg.Strict {
		t.Error("Strict = false, want true")
	}
	if cfg.MaxEagerSize != 1024 {
		t.Errorf("MaxEagerSize = %d, want 1024", cfg.MaxEagerSize)
	}
	if cfg.LockTimeout != 5*time.Second {
		t.Errorf("LockTimeout = %v, want 5s", cfg.LockTimeout)
	}
	if cfg.Output != OutputJSON {
		t.Errorf("Output = %q, want json", cfg.Output)
	}
	if cfg.Level() != logrus.DebugLevel {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeTempFile(t, "config.yaml", "sources: [/tmp/hosts]\n")
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Strict {
		t.Error("Strict should default to false")
	}
	if cfg.MaxEagerSize != DefaultMaxEagerSize {
		t.Errorf("MaxEagerSize = %d, want %d", cfg.MaxEagerSize, DefaultMaxEagerSize)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("Output = %q, want %q", cfg.Output, DefaultOutput)
	}
	if cfg.LockTimeout != 0 {
		t.Errorf("LockTimeout = %v, want 0", cfg.LockTimeout)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	if _, err := Load(context.Background(), "/nonexistent/config.yaml"); err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeTempFile(t, "invalid.yaml", `invalid: yaml: content: [`)
	if _, err := Load(context.Background(), path); err == nil {
		t.Error("Load() expected error for invalid YAML")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvSources, "/a/hosts, /b/hosts")
	t.Setenv(EnvStrict, "true")
	t.Setenv(EnvLogLevel, "info")

	path := writeTempFile(t, "config.yaml", "sources: [/etc/hosts]\nstrict: false\n")
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !slices.Equal(cfg.Sources, []string{"/a/hosts", "/b/hosts"}) {
		t.Errorf("Sources = %v, want env override", cfg.Sources)
	}
	if !cfg.Strict {
		t.Error("Strict = false, want env override true")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestFromEnvironment_InvalidStrictIgnored(t *testing.T) {
	t.Setenv(EnvStrict, "maybe")

	cfg := FromEnvironment()
	if cfg.Strict {
		t.Error("invalid HOSTPARSE_STRICT should be ignored")
	}
	if !slices.Equal(cfg.Sources, []string{DefaultSource}) {
		t.Errorf("Sources = %v, want default", cfg.Sources)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Sources: []string{"/etc/hosts"}}, false},
		{"no sources", Config{}, true},
		{"empty source", Config{Sources: []string{""}}, true},
		{"negative size", Config{Sources: []string{"/etc/hosts"}, MaxEagerSize: -1}, true},
		{"negative lock timeout", Config{Sources: []string{"/etc/hosts"}, LockTimeout: -time.Second}, true},
		{"bad output", Config{Sources: []string{"/etc/hosts"}, Output: "xml"}, true},
		{"yaml output", Config{Sources: []string{"/etc/hosts"}, Output: OutputYAML}, false},
		{"bad log level", Config{Sources: []string{"/etc/hosts"}, LogLevel: "loud"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			err := Validate(&cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_FillsDefaults(t *testing.T) {
	cfg := &Config{Sources: []string{"/etc/hosts"}}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.MaxEagerSize != DefaultMaxEagerSize {
		t.Errorf("MaxEagerSize = %d, want default", cfg.MaxEagerSize)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("Output = %q, want default", cfg.Output)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %q, want default", cfg.LogLevel)
	}
}
