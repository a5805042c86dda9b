package output

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	_, err := fmt.Fprintf(w, "hostparse: %d sources, %d entries, %d domains, %d errors\n",
		report.Summary.Sources,
		report.Summary.Entries,
		report.Summary.Domains,
		report.Summary.SourcesWithErrors)
	return err
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	for _, result := range report.Results {
		if err := f.formatSourceResult(result, w); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d sources, %d entries, %d domains, %d errors\n",
		report.Summary.Sources,
		report.Summary.Entries,
		report.Summary.Domains,
		report.Summary.SourcesWithErrors)

	if f.opts.Verbose {
		mode := "lenient"
		if report.Metadata.Strict {
			mode = "strict"
		}
		fmt.Fprintf(w, "Mode: %s\n", mode)
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return nil
}

func (f *TextFormatter) formatSourceResult(result *SourceResult, w io.Writer) error {
	fmt.Fprintf(w, "[%s] %d entries\n", result.Source, len(result.Hosts))

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, h := range result.Hosts {
		if f.opts.Verbose {
			fmt.Fprintf(tw, "  %d\t%s\t%s\n", h.Line(), h.IP(), strings.Join(h.Domains(), " "))
		} else {
			fmt.Fprintf(tw, "  %s\t%s\n", h.IP(), strings.Join(h.Domains(), " "))
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if result.HasError() {
		fmt.Fprintf(w, "  Error: %s\n", result.Error)
	}

	fmt.Fprintln(w)
	return nil
}
