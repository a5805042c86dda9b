package parser

import "strings"

// Delimiter separates tokens in a normalized line.
const Delimiter = " "

// LineKind classifies a normalized line.
type LineKind int

const (
	// KindBlank is an empty or whitespace-only line.
	KindBlank LineKind = iota
	// KindComment is a line whose first character is '#'.
	KindComment
	// KindData is any other line; it still has to pass validation.
	KindData
)

func (k LineKind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindComment:
		return "comment"
	case KindData:
		return "data"
	default:
		return "unknown"
	}
}

// Normalize collapses every run of whitespace into a single Delimiter and
// trims leading and trailing whitespace.
func Normalize(line string) string {
	return strings.Join(strings.Fields(line), Delimiter)
}

// Classify reports the kind of a normalized line.
func Classify(normalized string) LineKind {
	switch {
	case normalized == "":
		return KindBlank
	case normalized[0] == '#':
		return KindComment
	default:
		return KindData
	}
}

// CountDelimiters returns the number of delimiters in a normalized line,
// which is one less than its number of tokens.
func CountDelimiters(normalized string) int {
	return strings.Count(normalized, Delimiter)
}

// BuildHost splits a normalized data line with at least two tokens into its
// address and domains.
func BuildHost(normalized string, line int) Host {
	ip, rest, _ := strings.Cut(normalized, Delimiter)
	return Host{
		ip:      ip,
		domains: strings.Split(rest, Delimiter),
		line:    line,
	}
}
