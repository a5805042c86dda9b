package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/hostparse/pkg/config"
	"github.com/ccollicutt/hostparse/pkg/hostsfile"
	"github.com/ccollicutt/hostparse/pkg/metrics"
	"github.com/ccollicutt/hostparse/pkg/output"
	"github.com/ccollicutt/hostparse/pkg/parser"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// SourceOptions holds the flags shared by commands that read hosts files.
type SourceOptions struct {
	ConfigFile   string
	Strict       bool
	ForceLarge   bool
	MaxEagerSize int64
	LockTimeout  time.Duration
	LogLevel     string
}

func (o *SourceOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.ConfigFile, "config", "c", "", "Configuration file")
	cmd.Flags().BoolVar(&o.Strict, "strict", false, "Fail on lines that have an address but no domain")
	cmd.Flags().BoolVar(&o.ForceLarge, "force-large", false, "Parse files larger than --max-eager-size into memory anyway")
	cmd.Flags().Int64Var(&o.MaxEagerSize, "max-eager-size", config.DefaultMaxEagerSize, "Largest file in bytes parsed into memory")
	cmd.Flags().DurationVar(&o.LockTimeout, "lock-timeout", 0, "How long to wait for the file lock (0 waits forever)")
	cmd.Flags().StringVar(&o.LogLevel, "log-level", config.DefaultLogLevel, "Log level (debug|info|warning|error)")
}

// resolveConfig builds the effective configuration: the config file (or
// defaults and environment), then explicitly set flags, then positional sources.
func (o *SourceOptions) resolveConfig(ctx context.Context, cmd *cobra.Command, sources []string) (*config.Config, error) {
	var cfg *config.Config
	if o.ConfigFile != "" {
		loaded, err := config.Load(ctx, o.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.FromEnvironment()
	}

	flags := cmd.Flags()
	if flags.Changed("strict") {
		cfg.Strict = o.Strict
	}
	if flags.Changed("force-large") {
		cfg.ForceLarge = o.ForceLarge
	}
	if flags.Changed("max-eager-size") {
		cfg.MaxEagerSize = o.MaxEagerSize
	}
	if flags.Changed("lock-timeout") {
		cfg.LockTimeout = o.LockTimeout
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.LogLevel
	}
	if len(sources) > 0 {
		cfg.Sources = sources
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(cfg.Level())
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return logger
}

// sourceRun carries what parseSources needs besides the configuration.
type sourceRun struct {
	cfg       *config.Config
	logger    *logrus.Logger
	collector *metrics.Collector
	stream    bool
}

// parseSources parses every configured source. A failing source is recorded
// in its result and does not stop the others.
func (r *sourceRun) parseSources(ctx context.Context) ([]*output.SourceResult, error) {
	files, err := hostsfile.ExpandSources(r.cfg.Sources)
	if err != nil {
		return nil, fmt.Errorf("expanding sources: %w", err)
	}

	results := make([]*output.SourceResult, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result := r.parseSource(ctx, file)
		if result.HasError() {
			r.logger.WithField("source", file).Error(result.Error)
		}
		results = append(results, result)
	}

	return results, nil
}

func (r *sourceRun) parseSource(ctx context.Context, path string) *output.SourceResult {
	result := &output.SourceResult{Source: path}

	src, err := hostsfile.Open(path, hostsfile.WithLockTimeout(r.cfg.LockTimeout))
	if err != nil {
		result.Error = err.Error()
		return result
	}

	p, err := parser.New(src,
		parser.WithStrict(r.cfg.Strict),
		parser.WithMaxEagerSize(r.cfg.MaxEagerSize),
		parser.WithLogger(r.logger),
		parser.WithMetrics(r.collector),
	)
	if err != nil {
		_ = src.Close()
		result.Error = err.Error()
		return result
	}
	defer p.Close()

	if r.stream {
		stream := p.Parse()
		for {
			h, err := stream.Next(ctx)
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				recordError(result, err)
				break
			}
			result.Hosts = append(result.Hosts, h)
		}
		return result
	}

	hosts, err := p.ParseAll(ctx, r.cfg.ForceLarge)
	if err != nil {
		recordError(result, err)
		return result
	}
	result.Hosts = hosts
	return result
}

func recordError(result *output.SourceResult, err error) {
	result.Error = err.Error()
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		result.ErrorLine = syntaxErr.Line
	}
}
