// Package output provides formatting and output generation for parse results.
package output

import (
	"time"

	"github.com/ccollicutt/hostparse/pkg/parser"
)

// Report is the complete parse output.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary

	// Results contains the entries parsed from each source.
	Results []*SourceResult

	// Metadata provides context about the run.
	Metadata Metadata
}

// SourceResult holds the entries parsed from one hosts file.
type SourceResult struct {
	// Source is the hosts file path.
	Source string

	// Hosts are the accepted entries, in file order.
	Hosts []parser.Host

	// Error describes why parsing stopped, if it did.
	Error string `json:",omitempty" yaml:",omitempty"`

	// ErrorLine is the offending line of a syntax error.
	ErrorLine int `json:",omitempty" yaml:",omitempty"`
}

// HasError returns true if parsing this source failed.
func (r *SourceResult) HasError() bool {
	return r.Error != ""
}

// Summary provides aggregate statistics.
type Summary struct {
	// Sources is the number of hosts files read.
	Sources int

	// SourcesWithErrors is the number of hosts files that failed to parse.
	SourcesWithErrors int

	// Entries is the total number of entries.
	Entries int

	// Domains is the total number of domain names across all entries.
	Domains int
}

// Metadata provides context about the parse run.
type Metadata struct {
	// ConfigFile is the path to the configuration file used, if any.
	ConfigFile string `json:",omitempty" yaml:",omitempty"`

	// Strict reports whether strict syntax mode was enabled.
	Strict bool

	// Streamed reports whether entries were read lazily instead of with ParseAll.
	Streamed bool

	// ParsedAt is when parsing started.
	ParsedAt time.Time

	// Duration is how long parsing took.
	Duration time.Duration
}

// NewReport creates a Report from per-source results.
func NewReport(results []*SourceResult, meta Metadata) *Report {
	report := &Report{
		Results:  results,
		Metadata: meta,
		Summary:  Summary{Sources: len(results)},
	}

	for _, r := range results {
		if r.HasError() {
			report.Summary.SourcesWithErrors++
		}
		report.Summary.Entries += len(r.Hosts)
		for _, h := range r.Hosts {
			report.Summary.Domains += len(h.Domains())
		}
	}

	return report
}

// HasErrors returns true if any source failed to parse.
func (r *Report) HasErrors() bool {
	return r.Summary.SourcesWithErrors > 0
}
