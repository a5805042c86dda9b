package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/hostparse/pkg/config"
	"github.com/ccollicutt/hostparse/pkg/metrics"
	"github.com/ccollicutt/hostparse/pkg/output"
)

// ParseOptions holds command-line options for the parse command.
type ParseOptions struct {
	SourceOptions

	Output      string
	Stream      bool
	Verbose     bool
	Quiet       bool
	MetricsFile string
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [hosts-file...]",
		Short: "Parse hosts files into entries",
		Long: `Parse hosts files and print every entry with the line it came from.

Files are taken from the arguments, or from the configuration file, or from
HOSTPARSE_SOURCES, defaulting to /etc/hosts. Glob patterns are expanded.

Lines that only hold an address are skipped, or reported as syntax errors
with --strict. By default each file is read into memory, which is refused for
files over --max-eager-size; use --stream to read entries one at a time.

Exit codes:
  0 - All files parsed
  1 - At least one file could not be parsed
  2 - Configuration or runtime error`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&opts.Output, "output", "o", string(config.DefaultOutput), "Output format (text|json|yaml)")
	cmd.Flags().BoolVar(&opts.Stream, "stream", false, "Read entries lazily instead of loading each file into memory")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show line numbers and run details")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no entries")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "Write Prometheus metrics in text format to this file")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts *ParseOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := opts.resolveConfig(ctx, cmd, args)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = config.OutputFormat(opts.Output)
	}

	formatter, err := output.New(string(cfg.Output), output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	var collector *metrics.Collector
	if opts.MetricsFile != "" {
		collector = metrics.New()
	}

	run := &sourceRun{
		cfg:       cfg,
		logger:    newLogger(cfg, cmd.ErrOrStderr()),
		collector: collector,
		stream:    opts.Stream,
	}

	start := time.Now()
	results, err := run.parseSources(ctx)
	if err != nil {
		return err
	}

	report := output.NewReport(results, output.Metadata{
		ConfigFile: opts.ConfigFile,
		Strict:     cfg.Strict,
		Streamed:   opts.Stream,
		ParsedAt:   start,
		Duration:   time.Since(start),
	})

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if err := collector.WriteToTextfile(opts.MetricsFile); err != nil {
		return fmt.Errorf("writing metrics: %w", err)
	}

	if report.HasErrors() {
		ExitCode = 1
	}

	return nil
}
