package parser

import (
	"errors"
	"fmt"

	"github.com/ccollicutt/hostparse/pkg/hostsfile"
)

var (
	// ErrSyntax is matched by every strict-mode syntax error.
	ErrSyntax = errors.New("syntax error")

	// ErrTooLarge is returned by ParseAll when the source exceeds the eager size limit.
	ErrTooLarge = errors.New("hosts file too large for eager parsing")
)

// SyntaxError reports a data line without any domain in strict mode.
// It is a specialization of a file-level error and also matches
// hostsfile.ErrHostsFile.
type SyntaxError struct {
	Source string
	Line   int
	Text   string
}

func (e *SyntaxError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("syntax error at line %d: %q has no domain", e.Line, e.Text)
	}
	return fmt.Sprintf("%s: syntax error at line %d: %q has no domain", e.Source, e.Line, e.Text)
}

// Unwrap exposes ErrSyntax and hostsfile.ErrHostsFile to errors.Is.
func (e *SyntaxError) Unwrap() []error {
	return []error{ErrSyntax, hostsfile.ErrHostsFile}
}

// SizeError reports an eager parse refused by the size guard.
type SizeError struct {
	Source string
	Size   int64
	Limit  int64
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s is %d bytes, over the %d byte limit for ParseAll; use Parse to stream it or force a large parse",
		e.Source, e.Size, e.Limit)
}

// Unwrap returns ErrTooLarge.
func (e *SizeError) Unwrap() error {
	return ErrTooLarge
}
