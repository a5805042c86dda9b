package parser

import (
	"slices"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"   ", ""},
		{"\t \t", ""},
		{"127.0.0.1 localhost", "127.0.0.1 localhost"},
		{"  127.0.0.1\t\tlocalhost   ", "127.0.0.1 localhost"},
		{"10.0.0.1 \t a.com  \t b.com", "10.0.0.1 a.com b.com"},
		{"   # comment   here", "# comment here"},
		{"single", "single"},
		{"::1 ip6-localhost", "::1 ip6-localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		input string
		want  LineKind
	}{
		{"", KindBlank},
		{"# comment", KindComment},
		{"#127.0.0.1 localhost", KindComment},
		{"127.0.0.1 localhost # trailing", KindData},
		{"broken-line", KindData},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Classify(tt.input); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCountDelimiters(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"broken-line", 0},
		{"127.0.0.1 localhost", 1},
		{"10.0.0.1 a.com b.com c.com", 3},
	}

	for _, tt := range tests {
		if got := CountDelimiters(tt.input); got != tt.want {
			t.Errorf("CountDelimiters(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestBuildHost(t *testing.T) {
	tests := []struct {
		input   string
		line    int
		ip      string
		domains []string
	}{
		{"127.0.0.1 localhost", 1, "127.0.0.1", []string{"localhost"}},
		{"10.0.0.1 a.com b.com c.com", 3, "10.0.0.1", []string{"a.com", "b.com", "c.com"}},
		{"::1 ip6-localhost ip6-loopback", 7, "::1", []string{"ip6-localhost", "ip6-loopback"}},
		{"not-an-ip whatever", 2, "not-an-ip", []string{"whatever"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			h := BuildHost(tt.input, tt.line)
			if h.IP() != tt.ip {
				t.Errorf("IP() = %q, want %q", h.IP(), tt.ip)
			}
			if !slices.Equal(h.Domains(), tt.domains) {
				t.Errorf("Domains() = %v, want %v", h.Domains(), tt.domains)
			}
			if h.Line() != tt.line {
				t.Errorf("Line() = %d, want %d", h.Line(), tt.line)
			}
		})
	}
}

func TestLineKind_String(t *testing.T) {
	if KindBlank.String() != "blank" || KindComment.String() != "comment" || KindData.String() != "data" {
		t.Error("unexpected LineKind names")
	}
	if LineKind(42).String() != "unknown" {
		t.Error("out of range LineKind should be unknown")
	}
}
