package output

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ccollicutt/hostparse/pkg/parser"
)

func createTestReport() *Report {
	return NewReport([]*SourceResult{
		{
			Source: "/etc/hosts",
			Hosts: []parser.Host{
				parser.NewHost("127.0.0.1", []string{"localhost"}, 1),
				parser.NewHost("10.0.0.1", []string{"a.com", "b.com", "c.com"}, 3),
			},
		},
		{
			Source:    "/etc/hosts.d/broken.conf",
			Hosts:     []parser.Host{parser.NewHost("10.0.0.2", []string{"d.com"}, 1)},
			Error:     `syntax error at line 2: "broken-line" has no domain`,
			ErrorLine: 2,
		},
	}, Metadata{
		Strict:   true,
		ParsedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		Duration: 3 * time.Millisecond,
	})
}

func TestNewReport_Summary(t *testing.T) {
	report := createTestReport()

	want := Summary{Sources: 2, SourcesWithErrors: 1, Entries: 3, Domains: 5}
	if report.Summary != want {
		t.Errorf("Summary = %+v, want %+v", report.Summary, want)
	}
	if !report.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
}

func TestNewTextFormatter(t *testing.T) {
	f := NewTextFormatter(FormatOptions{})
	if f.Name() != "text" {
		t.Errorf("Name() = %q, want %q", f.Name(), "text")
	}
}

func TestTextFormatter_Format(t *testing.T) {
	f := NewTextFormatter(FormatOptions{})

	var buf bytes.Buffer
	if err := f.Format(context.Background(), createTestReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"[/etc/hosts] 2 entries",
		"127.0.0.1",
		"a.com b.com c.com",
		"Error: syntax error at line 2",
		"Summary: 2 sources, 3 entries, 5 domains, 1 errors",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Output missing %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, "Mode:") {
		t.Error("non-verbose output should not include mode")
	}
}

func TestTextFormatter_Format_Verbose(t *testing.T) {
	f := NewTextFormatter(FormatOptions{Verbose: true})

	var buf bytes.Buffer
	if err := f.Format(context.Background(), createTestReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Mode: strict") {
		t.Errorf("Output missing mode:\n%s", output)
	}
	if !strings.Contains(output, "  3  10.0.0.1") {
		t.Errorf("Output missing line number column:\n%s", output)
	}
}

func TestTextFormatter_Format_Quiet(t *testing.T) {
	f := NewTextFormatter(FormatOptions{Quiet: true})

	var buf bytes.Buffer
	if err := f.Format(context.Background(), createTestReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "hostparse: 2 sources, 3 entries, 5 domains, 1 errors\n"
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

func TestTextFormatter_Format_Empty(t *testing.T) {
	f := NewTextFormatter(FormatOptions{})

	var buf bytes.Buffer
	if err := f.Format(context.Background(), NewReport(nil, Metadata{}), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), "0 sources, 0 entries") {
		t.Errorf("Output missing summary:\n%s", buf.String())
	}
}

func TestNew(t *testing.T) {
	for _, name := range []string{"text", "json", "yaml"} {
		f, err := New(name, FormatOptions{})
		if err != nil {
			t.Fatalf("New(%q) error = %v", name, err)
		}
		if f.Name() != name {
			t.Errorf("New(%q).Name() = %q", name, f.Name())
		}
	}

	if _, err := New("xml", FormatOptions{}); err == nil {
		t.Error("New(xml) expected error")
	}
}
